package forcing

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/maseology/mmio"

	"github.com/delfland/hydroio/blockfile"
	"github.com/delfland/hydroio/internal/ctxlog"
)

// General is the file-level header block of a .bc file.
type General struct {
	FileVersion string
	FileType    string
}

// File is one parsed .bc file: the leading comments, the [General] header
// and the forcing blocks in input order.
type File struct {
	Comments []string
	General  General
	Forcings []*Forcing
}

// Parse converts already-loaded lines into a forcing file. Structural
// failures surface as a *blockfile.ParseError; domain failures from the
// forcing constructor (unknown function, quantity bookkeeping) propagate
// unchanged.
func Parse(lines []string, path string) (*File, hcl.Diagnostics, error) {
	sc := newSectionScanner(path)
	for _, ln := range lines {
		if err := sc.feedLine(ln); err != nil {
			return nil, sc.diags.Diags(), err
		}
	}
	return assemble(sc)
}

// Read streams r through the scanner line by line, so arbitrarily large
// files never need to be held in memory at once.
func Read(r io.Reader, path string) (*File, hcl.Diagnostics, error) {
	sc := newSectionScanner(path)
	br := bufio.NewScanner(r)
	for br.Scan() {
		if err := sc.feedLine(br.Text()); err != nil {
			return nil, sc.diags.Diags(), err
		}
	}
	if err := br.Err(); err != nil {
		return nil, nil, err
	}
	return assemble(sc)
}

// assemble finalizes the scanner and interprets its generic sections.
func assemble(sc *sectionScanner) (*File, hcl.Diagnostics, error) {
	sections, warns, err := sc.finalize()
	if err != nil {
		return nil, warns, err
	}

	file := &File{Comments: sc.comments}
	for _, sec := range sections {
		switch {
		case strings.EqualFold(sec.Header, "general"):
			file.General.FileVersion, _ = sec.Value("fileVersion")
			file.General.FileType, _ = sec.Value("fileType")
		case strings.EqualFold(sec.Header, "forcing"):
			f, err := NewForcing(sec)
			if err != nil {
				return nil, warns, err
			}
			file.Forcings = append(file.Forcings, f)
		default:
			return nil, warns, fmt.Errorf("line %d: unsupported block header %q", sec.Start, sec.Header)
		}
	}
	return file, warns, nil
}

// ReadFile loads one .bc file, logging coalesced parse warnings through the
// context logger.
func ReadFile(ctx context.Context, path string) (*File, error) {
	lines, err := mmio.ReadTextLines(path)
	if err != nil {
		return nil, err
	}
	file, warns, err := Parse(lines, path)
	if err != nil {
		return nil, err
	}
	logger := ctxlog.FromContext(ctx)
	for _, w := range warns {
		logger.Warn(blockfile.Message(w), "file", path)
	}
	return file, nil
}
