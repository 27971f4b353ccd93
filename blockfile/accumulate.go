package blockfile

type accState int

const (
	stateEmpty accState = iota // description may accumulate
	stateNamed                 // name stored, dimensions pending
	stateRows                  // k of n rows consumed
	stateComplete
	stateInvalid
)

// Result is the outcome of feeding one classified line to an Accumulator.
type Result int

const (
	// ResultContinue means the line was consumed and the block is still
	// in progress.
	ResultContinue Result = iota
	// ResultComplete means the line completed the block; call Finalize to
	// take the value and Reset before feeding further lines.
	ResultComplete
	// ResultInvalid means the block can no longer become valid; Invalid
	// reports the offending line and reason.
	ResultInvalid
)

// Accumulator is the per-block state machine. It consumes classified lines
// and builds one Block, enforcing the block-local structural invariants:
// name before dimensions, dimensions before rows, and exactly the declared
// number of rows.
type Accumulator struct {
	grammar Grammar

	state   accState
	started bool
	block   Block
	k       int

	offending int
	reason    string
}

// NewAccumulator returns an empty accumulator for one grammar.
func NewAccumulator(g Grammar) *Accumulator {
	return &Accumulator{grammar: g}
}

// Reset returns the accumulator to the empty state so the next block can be
// built. The grammar is retained.
func (a *Accumulator) Reset() {
	*a = Accumulator{grammar: a.grammar}
}

// Started reports whether the current block has consumed at least one line.
func (a *Accumulator) Started() bool { return a.started }

// Start returns the 0-based line index the current block began at. Only
// meaningful when Started reports true.
func (a *Accumulator) Start() int { return a.block.Start }

// OpenCols returns the declared column count while rows are being
// accumulated, and zero otherwise. It is the classification context the
// driver must pass to Grammar.Classify.
func (a *Accumulator) OpenCols() int {
	if a.state == stateRows {
		return a.block.Header.Cols
	}
	return 0
}

// Feed consumes one classified line read from physical index idx.
func (a *Accumulator) Feed(idx int, ln Line) Result {
	if !a.started {
		a.started = true
		a.block.Start = idx
	}
	switch a.state {
	case stateEmpty:
		switch ln.Kind {
		case KindComment:
			a.block.Description = append(a.block.Description, ln.Comment)
			return ResultContinue
		case KindName:
			a.block.Header.Name = ln.Name
			a.state = stateNamed
			return ResultContinue
		default:
			return a.invalidate(idx, ReasonMisplacedHeader)
		}
	case stateNamed:
		if ln.Kind != KindDimensions {
			return a.invalidate(idx, ReasonBadDimensions)
		}
		a.block.Header.Rows = ln.Rows
		a.block.Header.Cols = ln.Cols
		a.state = stateRows
		return ResultContinue
	case stateRows:
		if ln.Kind != KindDataRow {
			return a.invalidate(idx, ReasonBadPoint)
		}
		a.block.Rows = append(a.block.Rows, ln.Row)
		a.k++
		if a.k == a.block.Header.Rows {
			a.block.End = idx
			a.state = stateComplete
			return ResultComplete
		}
		return ResultContinue
	default:
		// Feeding a complete or invalid accumulator is a driver bug.
		panic("blockfile: accumulator fed after completion")
	}
}

// FinishEOF signals end of stream. A block still in progress becomes
// invalid with its offending line at lastLine.
func (a *Accumulator) FinishEOF(lastLine int) Result {
	if !a.started || a.state == stateComplete || a.state == stateInvalid {
		return ResultContinue
	}
	return a.invalidate(lastLine, ReasonEOF)
}

// Finalize converts the completed state into the immutable Block value. It
// must be called exactly once, after Feed returned ResultComplete.
func (a *Accumulator) Finalize() Block {
	if a.state != stateComplete {
		panic("blockfile: finalize of an incomplete block")
	}
	return a.block
}

// Invalid reports the offending line and reason after ResultInvalid.
func (a *Accumulator) Invalid() (offending int, reason string) {
	return a.offending, a.reason
}

func (a *Accumulator) invalidate(idx int, reason string) Result {
	a.state = stateInvalid
	a.offending = idx
	a.reason = reason
	return ResultInvalid
}
