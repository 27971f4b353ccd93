package forcing

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"

	"github.com/delfland/hydroio/blockfile"
)

// Section is one generic keyword block: the header label, the ordered
// properties, and the raw numeric rows of its data table. Field semantics
// are left to the domain constructors; the scanner only enforces structural
// shape.
type Section struct {
	Header     string
	Start, End int // 0-based physical line span
	Properties []blockfile.Property
	Rows       [][]float64
}

// Value returns the last value of key (case-insensitive) and whether it was
// present at all.
func (s *Section) Value(key string) (string, bool) {
	value, found := "", false
	for _, p := range s.Properties {
		if strings.EqualFold(p.Key, key) {
			value, found = p.Value, true
		}
	}
	return value, found
}

const (
	reasonBadRow    = "Expected a valid data row"
	reasonNoSection = "Expected a new block header"
)

var grammar = blockfile.Grammar{CommentMarker: '#', KeyValue: true}

// sectionScanner is the keyword-block instantiation of the stream engine.
// It has no declared row counts: a block runs until the next [header] line
// or EOF. Comments follow the file-start-only placement policy.
type sectionScanner struct {
	path  string
	diags *blockfile.DiagBuilder

	line        int
	dataStarted bool
	comments    []string

	cur        *Section
	recovering bool
	sections   []*Section
}

func newSectionScanner(path string) *sectionScanner {
	return &sectionScanner{path: path, diags: blockfile.NewDiagBuilder(path)}
}

// header matches a "[name]" section header line.
func header(trimmed string) (string, bool) {
	if len(trimmed) < 2 || trimmed[0] != '[' || trimmed[len(trimmed)-1] != ']' {
		return "", false
	}
	return strings.TrimSpace(trimmed[1 : len(trimmed)-1]), true
}

func (s *sectionScanner) feedLine(raw string) error {
	idx := s.line
	s.line++

	ln := grammar.Classify(raw, blockfile.Context{})
	if ln.Kind == blockfile.KindBlank {
		s.diags.Warn(blockfile.ReasonBlankLines, idx)
		return nil
	}
	s.diags.EndWarnings()

	if ln.Kind == blockfile.KindComment {
		if s.dataStarted {
			return fmt.Errorf("Line %d: comments are only supported at the start of the file, before the time series data.", idx)
		}
		s.comments = append(s.comments, ln.Comment)
		return nil
	}
	s.dataStarted = true

	if name, ok := header(strings.TrimSpace(raw)); ok {
		s.closeCurrent(idx - 1)
		s.cur = &Section{Header: name, Start: idx}
		s.recovering = false
		return nil
	}
	if s.recovering {
		// Inside a broken block: consume until the next header.
		return nil
	}

	switch ln.Kind {
	case blockfile.KindKeyValue:
		if s.cur == nil || len(s.cur.Rows) > 0 {
			s.invalidate(idx, reasonNoSection)
			return nil
		}
		s.cur.Properties = append(s.cur.Properties, blockfile.Property{
			Key: ln.Key, Value: ln.Value, Line: idx,
		})
	default:
		// The Name fallback: either a data row or garbage.
		if s.cur == nil {
			s.invalidate(idx, reasonNoSection)
			return nil
		}
		values, err := blockfile.ParseFloats(raw)
		if err != nil || len(values) == 0 {
			s.invalidate(idx, reasonBadRow)
			return nil
		}
		s.cur.Rows = append(s.cur.Rows, values)
	}
	return nil
}

// invalidate abandons the current block and enters recovery until the next
// header line. Nested failures flatten into the outermost span.
func (s *sectionScanner) invalidate(idx int, reason string) {
	start := idx
	if s.cur != nil {
		start = s.cur.Start
	}
	s.diags.StartInvalidBlock(start, idx, reason)
	s.cur = nil
	s.recovering = true
}

// closeCurrent finalizes the open section, if any, ending at end. It also
// resolves a pending invalid span: the span ends where the next good block
// begins.
func (s *sectionScanner) closeCurrent(end int) {
	if s.diags.InvalidOpen() {
		s.diags.EndInvalidBlock(end)
		s.diags.FinalizePreviousError()
	}
	if s.cur == nil {
		return
	}
	s.cur.End = end
	s.sections = append(s.sections, s.cur)
	s.cur = nil
}

func (s *sectionScanner) finalize() ([]*Section, hcl.Diagnostics, error) {
	last := s.line - 1
	if last < 0 {
		last = 0
	}
	s.closeCurrent(last)
	diags := s.diags.Diags()
	if diags.HasErrors() {
		return nil, blockfile.Warnings(diags), &blockfile.ParseError{
			Format: "forcing",
			Path:   s.path,
			Diags:  diags,
		}
	}
	return s.sections, blockfile.Warnings(diags), nil
}
