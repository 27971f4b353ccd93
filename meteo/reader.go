package meteo

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
	reasonBadRow    = "Expected a valid data row"
	reasonBadHeader = "Expected an event header"
)

// scanner is the precipitation instantiation of the stream engine: a
// counted-row grammar whose header is a single ten-integer line instead of
// a name plus dimensions pair.
type scanner struct {
	path  string
	diags *blockfile.DiagBuilder

	line        int
	dataStarted bool
	comments    []string

	cur        *Event
	curStart   int
	steps      int
	width      int
	recovering bool
	events     []*Event
}

func newScanner(path string) *scanner {
	return &scanner{path: path, diags: blockfile.NewDiagBuilder(path)}
}

func (s *scanner) feedLine(raw string) error {
	idx := s.line
	s.line++

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		s.diags.Warn(blockfile.ReasonBlankLines, idx)
		return nil
	}
	s.diags.EndWarnings()

	if trimmed[0] == '*' {
		if s.dataStarted {
			return fmt.Errorf("Line %d: comments are only supported at the start of the file, before the time series data.", idx)
		}
		s.comments = append(s.comments, trimmed[1:])
		return nil
	}
	s.dataStarted = true

	// Inside an incomplete event the declared count wins: every line is a
	// data row until the count is satisfied.
	if s.cur != nil {
		values, err := blockfile.ParseFloats(trimmed)
		if err != nil || (s.width > 0 && len(values) != s.width) {
			s.invalidate(idx, reasonBadRow)
			return nil
		}
		if s.width == 0 {
			s.width = len(values)
		}
		s.cur.Rows = append(s.cur.Rows, values)
		if len(s.cur.Rows) == s.steps {
			s.closeEvent()
		}
		return nil
	}

	if h, ok := s.tryHeader(trimmed); ok {
		s.cur = &Event{
			Start:           h.start,
			SeriesIndex:     h.seriesIndex,
			Interpolation:   h.interpolation,
			TimestepSeconds: h.timestepSeconds,
		}
		s.curStart = idx
		s.steps = h.steps
		s.width = 0
		s.recovering = false
		return nil
	}
	if !s.recovering {
		// A stray row between events: the event length was exceeded.
		s.invalidate(idx, reasonBadHeader)
	}
	return nil
}

func (s *scanner) tryHeader(trimmed string) (header, bool) {
	values, err := blockfile.ParseInts(trimmed)
	if err != nil {
		return header{}, false
	}
	return decodeHeader(values)
}

func (s *scanner) closeEvent() {
	if s.diags.InvalidOpen() {
		s.diags.EndInvalidBlock(s.curStart - 1)
		s.diags.FinalizePreviousError()
	}
	s.events = append(s.events, s.cur)
	s.cur = nil
}

func (s *scanner) invalidate(idx int, reason string) {
	start := idx
	if s.cur != nil {
		start = s.curStart
	}
	s.diags.StartInvalidBlock(start, idx, reason)
	s.cur = nil
	s.recovering = true
}

func (s *scanner) finalize() ([]*Event, hcl.Diagnostics, error) {
	last := s.line - 1
	if last < 0 {
		last = 0
	}
	if s.cur != nil {
		s.diags.StartInvalidBlock(s.curStart, last, blockfile.ReasonEOF)
	}
	if s.diags.InvalidOpen() {
		s.diags.EndInvalidBlock(last)
		s.diags.FinalizePreviousError()
	}
	diags := s.diags.Diags()
	if diags.HasErrors() {
		return nil, blockfile.Warnings(diags), &blockfile.ParseError{
			Format: "precipitation",
			Path:   s.path,
			Diags:  diags,
		}
	}
	return s.events, blockfile.Warnings(diags), nil
}

// Parse converts already-loaded lines into a precipitation file.
func Parse(lines []string, path string) (*File, hcl.Diagnostics, error) {
	sc := newScanner(path)
	for _, ln := range lines {
		if err := sc.feedLine(ln); err != nil {
			return nil, sc.diags.Diags(), err
		}
	}
	events, warns, err := sc.finalize()
	if err != nil {
		return nil, warns, err
	}
	return &File{Comments: sc.comments, Events: events}, warns, nil
}

// Read streams r through the scanner line by line.
func Read(r io.Reader, path string) (*File, hcl.Diagnostics, error) {
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
	events, warns, err := sc.finalize()
	if err != nil {
		return nil, warns, err
	}
	return &File{Comments: sc.comments, Events: events}, warns, nil
}

// ReadFile loads one precipitation file, logging coalesced parse warnings
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
