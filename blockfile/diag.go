package blockfile

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// Failure reasons produced by the accumulator and driver. The wording is
// part of the diagnostic contract and is matched by downstream tooling.
const (
	ReasonEOF             = "EoF encountered before the block is finished"
	ReasonBadDimensions   = "Expected valid dimensions"
	ReasonBadPoint        = "Expected a valid next point"
	ReasonBlankLines      = "Empty lines are ignored"
	ReasonMisplacedHeader = "Expected a new block header"
)

// DiagBuilder accumulates the diagnostics of one parse call: fatal
// invalid-block spans and non-fatal coalesced warnings. All line numbers
// are 0-based physical indices; hcl.Range carries them in Start.Line and
// End.Line with no column information.
type DiagBuilder struct {
	path  string
	diags hcl.Diagnostics

	// Invalid-span tracking. Starting a new span while one is open keeps
	// the outer span: nested invalidity flattens to the outermost range and
	// the inner reason is discarded. This mirrors the historical behaviour
	// of the suite; confirm against nested-error fixtures before changing.
	open      bool
	closed    bool
	start     int
	end       int
	offending int
	reason    string

	warnOpen   bool
	warnReason string
	warnStart  int
	warnEnd    int
}

// NewDiagBuilder returns a builder attributing diagnostics to path. The
// path only decorates messages; it is never opened.
func NewDiagBuilder(path string) *DiagBuilder {
	return &DiagBuilder{path: path}
}

// StartInvalidBlock opens an invalid span beginning at start, with the
// offending line and reason that triggered it. A call while a span is
// already open is a no-op apart from the span staying open: the outer
// boundaries and reason win.
func (b *DiagBuilder) StartInvalidBlock(start, offending int, reason string) {
	if b.open {
		return
	}
	if b.closed {
		// An unfinalized closed span would otherwise be lost silently.
		b.FinalizePreviousError()
	}
	b.open = true
	b.closed = false
	b.start = start
	b.offending = offending
	b.reason = reason
}

// EndInvalidBlock closes the currently open span at end (inclusive).
// Without an open span it is a no-op.
func (b *DiagBuilder) EndInvalidBlock(end int) {
	if !b.open {
		return
	}
	b.open = false
	b.closed = true
	b.end = end
}

// FinalizePreviousError converts the most recently closed span into one
// error diagnostic. It is an idempotent no-op when no span is closed.
func (b *DiagBuilder) FinalizePreviousError() {
	if !b.closed {
		return
	}
	b.closed = false
	b.flushWarning()
	rng := b.lineRange(b.start, b.end)
	b.diags = b.diags.Append(&hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  fmt.Sprintf("%s at line %d.", b.reason, b.offending),
		Detail:   fmt.Sprintf("%s\nFile: %s", blockSuffix(b.start, b.end), b.path),
		Subject:  &rng,
	})
}

// InvalidOpen reports whether an invalid span is currently open.
func (b *DiagBuilder) InvalidOpen() bool { return b.open }

// Warn records a non-fatal finding at one line. Contiguous lines with the
// same reason coalesce into a single diagnostic spanning the range; a
// reason change or a gap of at least one normal line ends the range.
func (b *DiagBuilder) Warn(reason string, line int) {
	if b.warnOpen && b.warnReason == reason && line == b.warnEnd+1 {
		b.warnEnd = line
		return
	}
	b.flushWarning()
	b.warnOpen = true
	b.warnReason = reason
	b.warnStart = line
	b.warnEnd = line
}

// EndWarnings marks that a normal, non-warning line was seen, closing any
// open coalesced range.
func (b *DiagBuilder) EndWarnings() { b.flushWarning() }

func (b *DiagBuilder) flushWarning() {
	if !b.warnOpen {
		return
	}
	b.warnOpen = false
	rng := b.lineRange(b.warnStart, b.warnEnd)
	b.diags = b.diags.Append(&hcl.Diagnostic{
		Severity: hcl.DiagWarning,
		Summary:  b.warnReason,
		Detail:   fmt.Sprintf("%s\nFile: %s", spanSuffix(b.warnStart, b.warnEnd), b.path),
		Subject:  &rng,
	})
}

// Diags closes any open coalesced warning range and returns everything
// collected so far, in emission order.
func (b *DiagBuilder) Diags() hcl.Diagnostics {
	b.flushWarning()
	return b.diags
}

func (b *DiagBuilder) lineRange(start, end int) hcl.Range {
	return hcl.Range{
		Filename: b.path,
		Start:    hcl.Pos{Line: start},
		End:      hcl.Pos{Line: end},
	}
}

// spanSuffix renders the span-suffix of a warning: a single line renders as
// "Invalid line n", a range as "Invalid block s:e". Fatal diagnostics use
// blockSuffix: an invalid block keeps the block form even when its span is
// one line.
func spanSuffix(start, end int) string {
	if start == end {
		return fmt.Sprintf("Invalid line %d", start)
	}
	return blockSuffix(start, end)
}

func blockSuffix(start, end int) string {
	return fmt.Sprintf("Invalid block %d:%d", start, end)
}

// Warnings filters ds down to the warning-severity entries.
func Warnings(ds hcl.Diagnostics) hcl.Diagnostics {
	var out hcl.Diagnostics
	for _, d := range ds {
		if d.Severity == hcl.DiagWarning {
			out = append(out, d)
		}
	}
	return out
}

// Message renders one diagnostic in the suite's user-facing form:
// the summary, a period if missing, then the detail on following lines.
func Message(d *hcl.Diagnostic) string {
	summary := d.Summary
	if len(summary) > 0 && summary[len(summary)-1] != '.' {
		summary += "."
	}
	if d.Detail == "" {
		return summary
	}
	return summary + "\n" + d.Detail
}

// ParseError is the fatal outcome of a parse call. It aggregates the first
// error-severity diagnostic into its message; the full list stays available
// on Diags for callers that want every finding.
type ParseError struct {
	Format string
	Path   string
	Diags  hcl.Diagnostics
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	for _, d := range e.Diags {
		if d.Severity != hcl.DiagError {
			continue
		}
		suffix := ""
		if d.Subject != nil {
			suffix = blockSuffix(d.Subject.Start.Line, d.Subject.End.Line)
		}
		return fmt.Sprintf("Invalid formatted %s file, %s\n%s\nFile: %s",
			e.Format, d.Summary, suffix, e.Path)
	}
	return fmt.Sprintf("Invalid formatted %s file\nFile: %s", e.Format, e.Path)
}
