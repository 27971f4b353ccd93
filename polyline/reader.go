package polyline

import (
	"bufio"
	"context"
	"io"

	"github.com/hashicorp/hcl/v2"
	"github.com/maseology/mmio"

	"github.com/delfland/hydroio/blockfile"
	"github.com/delfland/hydroio/internal/ctxlog"
)

func options(d Dialect, path string) blockfile.Options {
	return blockfile.Options{
		Path:   path,
		Format: d.String(),
		Policy: blockfile.CommentsPerBlock,
	}
}

// Parse converts already-loaded lines into polyline objects. Warnings are
// returned alongside the result and never raise; a structurally invalid
// block makes the whole parse fail with a *blockfile.ParseError.
func Parse(lines []string, d Dialect, path string) ([]Object, hcl.Diagnostics, error) {
	blocks, warns, err := blockfile.Parse(lines, d.grammar(), options(d, path))
	if err != nil {
		return nil, warns, err
	}
	objs := make([]Object, len(blocks))
	for i, b := range blocks {
		objs[i] = fromBlock(b)
	}
	return objs, warns, nil
}

// Read streams r through the parser line by line, so arbitrarily large
// files never need to be held in memory at once.
func Read(r io.Reader, d Dialect, path string) ([]Object, hcl.Diagnostics, error) {
	p := blockfile.NewParser(d.grammar(), options(d, path))
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if err := p.FeedLine(sc.Text()); err != nil {
			return nil, nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	blocks, warns, err := p.Finalize()
	if err != nil {
		return nil, warns, err
	}
	objs := make([]Object, len(blocks))
	for i, b := range blocks {
		objs[i] = fromBlock(b)
	}
	return objs, warns, nil
}

// ReadFile loads one polyline file, sniffing the dialect from its
// extension. Coalesced parse warnings are logged through the context
// logger.
func ReadFile(ctx context.Context, path string) ([]Object, error) {
	lines, err := mmio.ReadTextLines(path)
	if err != nil {
		return nil, err
	}
	objs, warns, err := Parse(lines, DialectForFile(path), path)
	if err != nil {
		return nil, err
	}
	logger := ctxlog.FromContext(ctx)
	for _, w := range warns {
		logger.Warn(blockfile.Message(w), "file", path)
	}
	return objs, nil
}
