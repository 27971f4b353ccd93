package blockfile

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// CommentPolicy selects where comment lines are legal in a stream.
type CommentPolicy int

const (
	// CommentsPerBlock treats comment lines before a block's name line as
	// that block's description. The polyline grammar works this way.
	CommentsPerBlock CommentPolicy = iota

	// CommentsFileStartOnly allows comments only before the first
	// structured content of the whole stream; a comment after data has
	// started is immediately fatal. The forcing and precipitation grammars
	// work this way.
	CommentsFileStartOnly
)

// Options configure one Parser beyond its lexical grammar.
type Options struct {
	// Path decorates diagnostics; the parser never opens it.
	Path string
	// Format is the noun used in fatal messages ("polyline", "forcing").
	Format string
	Policy CommentPolicy
}

// Parser is the stream driver. Feed one physical line at a time with
// FeedLine, then call Finalize exactly once. The parser owns its
// accumulator and diagnostic builder for the duration of the parse; nothing
// is shared between Parser instances, so independent streams may be parsed
// concurrently with separate parsers.
type Parser struct {
	grammar Grammar
	opts    Options

	acc   *Accumulator
	diags *DiagBuilder

	line         int // 0-based index of the next physical line
	dataStarted  bool
	fileComments []string
	blocks       []Block
	finalized    bool
}

// NewParser returns a parser for one stream.
func NewParser(g Grammar, opts Options) *Parser {
	if opts.Format == "" {
		opts.Format = "block"
	}
	return &Parser{
		grammar: g,
		opts:    opts,
		acc:     NewAccumulator(g),
		diags:   NewDiagBuilder(opts.Path),
	}
}

// FeedLine consumes one physical line, already stripped of its trailing
// newline. The only non-nil return is a placement-policy failure, which is
// fatal for the whole stream: the file uses an unsupported dialect.
func (p *Parser) FeedLine(raw string) error {
	if p.finalized {
		panic("blockfile: FeedLine after Finalize")
	}
	idx := p.line
	p.line++

	ln := p.grammar.Classify(raw, Context{Cols: p.acc.OpenCols()})
	if ln.Kind == KindBlank {
		// Blank lines are never data, inside or between blocks; they only
		// produce one coalesced warning per contiguous range.
		p.diags.Warn(ReasonBlankLines, idx)
		return nil
	}
	p.diags.EndWarnings()

	if ln.Kind == KindComment && p.opts.Policy == CommentsFileStartOnly {
		if p.dataStarted {
			return fmt.Errorf("Line %d: comments are only supported at the start of the file, before the time series data.", idx)
		}
		p.fileComments = append(p.fileComments, ln.Comment)
		return nil
	}
	if ln.Kind != KindComment {
		p.dataStarted = true
	}

	switch p.acc.Feed(idx, ln) {
	case ResultComplete:
		b := p.acc.Finalize()
		p.acc.Reset()
		if p.diags.InvalidOpen() {
			// The invalid region ends where the good block began.
			p.diags.EndInvalidBlock(b.Start - 1)
			p.diags.FinalizePreviousError()
		}
		p.blocks = append(p.blocks, b)
	case ResultInvalid:
		off, reason := p.acc.Invalid()
		p.diags.StartInvalidBlock(p.acc.Start(), off, reason)
		p.acc.Reset()
	}
	return nil
}

// FileComments returns the leading comment content collected under the
// CommentsFileStartOnly policy, verbatim after the marker.
func (p *Parser) FileComments() []string { return p.fileComments }

// Finalize ends the stream. An in-progress block converts into an invalid
// span, and any unresolved invalid span raises one aggregated *ParseError.
// Otherwise the ordered finalized blocks are returned together with the
// coalesced warning diagnostics, which never raise.
func (p *Parser) Finalize() ([]Block, hcl.Diagnostics, error) {
	if p.finalized {
		panic("blockfile: Finalize called twice")
	}
	p.finalized = true

	last := p.line - 1
	if last < 0 {
		last = 0
	}
	if p.acc.FinishEOF(last) == ResultInvalid {
		off, reason := p.acc.Invalid()
		p.diags.StartInvalidBlock(p.acc.Start(), off, reason)
	}
	if p.diags.InvalidOpen() {
		p.diags.EndInvalidBlock(last)
		p.diags.FinalizePreviousError()
	}

	diags := p.diags.Diags()
	if diags.HasErrors() {
		return nil, Warnings(diags), &ParseError{
			Format: p.opts.Format,
			Path:   p.opts.Path,
			Diags:  diags,
		}
	}
	return p.blocks, Warnings(diags), nil
}

// Parse feeds every line of an already-loaded file through a fresh Parser.
// It is the convenience entry point for callers that do not stream.
func Parse(lines []string, g Grammar, opts Options) ([]Block, hcl.Diagnostics, error) {
	p := NewParser(g, opts)
	for _, ln := range lines {
		if err := p.FeedLine(ln); err != nil {
			return nil, p.diags.Diags(), err
		}
	}
	return p.Finalize()
}
