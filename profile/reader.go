package profile

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

const (
	reasonBadRow  = "Expected a valid data row"
	reasonBadTime = "Expected a TIME line"
)

var grammar = blockfile.Grammar{CommentMarker: '#', KeyValue: true}

// scanner is the vertical-profile instantiation of the stream engine. The
// whole file is one block: metadata keys first, then strictly alternating
// TIME and data lines.
type scanner struct {
	path  string
	diags *blockfile.DiagBuilder

	line        int
	dataStarted bool

	profile     Profile
	layerTypeOK bool
	pendingTime *string
}

func newScanner(path string) *scanner {
	return &scanner{path: path, diags: blockfile.NewDiagBuilder(path)}
}

func (s *scanner) feedLine(raw string) error {
	idx := s.line
	s.line++

	ln := grammar.Classify(raw, blockfile.Context{})
	switch ln.Kind {
	case blockfile.KindBlank:
		s.diags.Warn(blockfile.ReasonBlankLines, idx)
		return nil
	case blockfile.KindComment:
		s.diags.EndWarnings()
		if s.dataStarted {
			return fmt.Errorf("Line %d: comments are only supported at the start of the file, before the time series data.", idx)
		}
		s.profile.Comments = append(s.profile.Comments, ln.Comment)
		return nil
	}
	s.diags.EndWarnings()
	s.dataStarted = true

	if ln.Kind == blockfile.KindKeyValue {
		return s.keyword(idx, ln.Key, ln.Value)
	}

	// The Name fallback: the one data line owed to the pending TIME.
	if s.pendingTime == nil {
		s.invalidate(idx, reasonBadTime)
		return nil
	}
	values, err := blockfile.ParseFloats(raw)
	if err != nil || len(values) != len(s.profile.Layers) {
		s.invalidate(idx, reasonBadRow)
		return nil
	}
	s.profile.Records = append(s.profile.Records, Record{Time: *s.pendingTime, Values: values})
	s.pendingTime = nil
	return nil
}

func (s *scanner) keyword(idx int, key, value string) error {
	if s.pendingTime != nil {
		// Two TIME lines in a row, or metadata after a TIME.
		s.invalidate(idx, reasonBadRow)
		return nil
	}
	switch strings.ToUpper(key) {
	case "LAYER_TYPE":
		t, err := ParseLayerType(value)
		if err != nil {
			s.invalidate(idx, reasonBadTime)
			return nil
		}
		s.profile.LayerType = t
		s.layerTypeOK = true
	case "LAYERS":
		layers, err := blockfile.ParseFloats(value)
		if err != nil || len(layers) == 0 {
			s.invalidate(idx, reasonBadRow)
			return nil
		}
		s.profile.Layers = layers
	case "TIME":
		if !s.layerTypeOK || len(s.profile.Layers) == 0 {
			s.invalidate(idx, reasonBadTime)
			return nil
		}
		v := value
		s.pendingTime = &v
	default:
		s.invalidate(idx, reasonBadTime)
	}
	return nil
}

func (s *scanner) invalidate(idx int, reason string) {
	s.diags.StartInvalidBlock(0, idx, reason)
}

func (s *scanner) finalize() (*Profile, hcl.Diagnostics, error) {
	last := s.line - 1
	if last < 0 {
		last = 0
	}
	if s.pendingTime != nil && !s.diags.InvalidOpen() {
		s.diags.StartInvalidBlock(0, last, blockfile.ReasonEOF)
	}
	if s.diags.InvalidOpen() {
		s.diags.EndInvalidBlock(last)
		s.diags.FinalizePreviousError()
	}
	diags := s.diags.Diags()
	if diags.HasErrors() {
		return nil, blockfile.Warnings(diags), &blockfile.ParseError{
			Format: "vertical profile",
			Path:   s.path,
			Diags:  diags,
		}
	}
	return &s.profile, blockfile.Warnings(diags), nil
}

// Parse converts already-loaded lines into a profile.
func Parse(lines []string, path string) (*Profile, hcl.Diagnostics, error) {
	sc := newScanner(path)
	for _, ln := range lines {
		if err := sc.feedLine(ln); err != nil {
			return nil, sc.diags.Diags(), err
		}
	}
	return sc.finalize()
}

// Read streams r through the scanner line by line.
func Read(r io.Reader, path string) (*Profile, hcl.Diagnostics, error) {
	sc := newScanner(path)
	br := bufio.NewScanner(r)
	for br.Scan() {
		if err := sc.feedLine(br.Text()); err != nil {
			return nil, nil, err
		}
	}
	if err := br.Err(); err != nil {
		return nil, nil, err
	}
	return sc.finalize()
}

// ReadFile loads one vertical-profile file, logging coalesced parse
// warnings through the context logger.
func ReadFile(ctx context.Context, path string) (*Profile, error) {
	lines, err := mmio.ReadTextLines(path)
	if err != nil {
		return nil, err
	}
	p, warns, err := Parse(lines, path)
	if err != nil {
		return nil, err
	}
	logger := ctxlog.FromContext(ctx)
	for _, w := range warns {
		logger.Warn(blockfile.Message(w), "file", path)
	}
	return p, nil
}
