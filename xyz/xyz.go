// Package xyz reads and writes sample-point files: '*'-comment lines and
// uncounted "x y z" rows. Trailing free text after the three coordinates is
// truncated, matching the engine's data-row contract.
package xyz

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/maseology/mmio"

	"github.com/delfland/hydroio/blockfile"
	"github.com/delfland/hydroio/internal/ctxlog"
)

// Point is one sample location with its value.
type Point struct {
	X float64
	Y float64
	Z float64
}

// File is one parsed sample-point file.
type File struct {
	Comments []string
	Points   []Point
}

var grammar = blockfile.Grammar{CommentMarker: '*', HasZ: true, MinColumns: 3}

const reasonBadSample = "Expected a valid sample point"

// Parse converts already-loaded lines into a sample-point file.
func Parse(lines []string, path string) (*File, hcl.Diagnostics, error) {
	diags := blockfile.NewDiagBuilder(path)
	file := &File{}
	for idx, raw := range lines {
		ln := grammar.Classify(raw, blockfile.Context{Cols: 3})
		switch ln.Kind {
		case blockfile.KindBlank:
			diags.Warn(blockfile.ReasonBlankLines, idx)
			continue
		case blockfile.KindComment:
			diags.EndWarnings()
			file.Comments = append(file.Comments, ln.Comment)
		case blockfile.KindDataRow:
			diags.EndWarnings()
			file.Points = append(file.Points, Point{X: ln.Row.X, Y: ln.Row.Y, Z: *ln.Row.Z})
		default:
			diags.EndWarnings()
			diags.StartInvalidBlock(idx, idx, reasonBadSample)
			diags.EndInvalidBlock(idx)
			diags.FinalizePreviousError()
		}
	}
	ds := diags.Diags()
	if ds.HasErrors() {
		return nil, blockfile.Warnings(ds), &blockfile.ParseError{Format: "samples", Path: path, Diags: ds}
	}
	return file, blockfile.Warnings(ds), nil
}

// ReadFile loads one sample-point file, logging coalesced parse warnings
// through the context logger.
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

// Write renders a sample-point file.
func Write(w io.Writer, file *File, cfg blockfile.WriteConfig) error {
	cfg = cfg.WithDefaults()
	bw := bufio.NewWriter(w)
	for _, c := range file.Comments {
		if _, err := fmt.Fprintf(bw, "*%s\n", c); err != nil {
			return err
		}
	}
	for _, p := range file.Points {
		fields := []string{
			fmt.Sprintf(cfg.FloatFormat, p.X),
			fmt.Sprintf(cfg.FloatFormat, p.Y),
			fmt.Sprintf(cfg.FloatFormat, p.Z),
		}
		if _, err := fmt.Fprintf(bw, "%s\n", strings.Join(fields, cfg.Separator)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes a sample-point file to path.
func WriteFile(path string, file *File, cfg blockfile.WriteConfig) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(f, file, cfg)
}
