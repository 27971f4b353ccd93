package blockfile

// Header is the metadata of a block: its label plus the declared structural
// counts from the dimensions line. Rows and Cols are always positive on a
// finalized block.
type Header struct {
	Name string
	Rows int
	Cols int
}

// Row is one positional data row. Z is nil when the row carries no
// z-coordinate; Data holds the auxiliary values that follow the coordinate
// fields, in input order.
type Row struct {
	X    float64
	Y    float64
	Z    *float64
	Data []float64
}

// Property is one key=value line of a keyword-block format. Keys need not be
// unique within a block; duplicates keep their input order. Line is the
// 0-based physical index the property was read from.
type Property struct {
	Key   string
	Value string
	Line  int
}

// Block is one finalized structured unit of the input stream. Description
// holds the content of the leading comment lines verbatim (everything after
// the comment marker, including leading whitespace). Start and End are the
// 0-based physical line span the block was read from.
//
// A Block is immutable once handed out by the parser: len(Rows) equals
// Header.Rows, and every row satisfied the declared column count when it was
// classified.
type Block struct {
	Description []string
	Header      Header
	Rows        []Row

	Start int
	End   int
}
