package blockfile

import "strings"

// Kind is the lexical category of one input line.
type Kind int

const (
	KindBlank Kind = iota
	KindComment
	KindName
	KindDimensions
	KindDataRow
	KindKeyValue
	// KindInvalid is returned for a line that cannot serve as a data row
	// while a data section is open.
	KindInvalid
)

// Grammar holds the format-specific lexical rules of a dialect.
type Grammar struct {
	// CommentMarker is the character that starts a comment line, after
	// optional leading whitespace. Typically '*' or '#'.
	CommentMarker byte

	// HasZ selects whether the third numeric token of a data row is the
	// z-coordinate. It is a format-level decision, fixed for a whole parse,
	// never inferred per line.
	HasZ bool

	// Dimensions enables recognition of dimensions lines (two strictly
	// positive integers). Keyword-block formats leave this off: there a
	// pair of integers is ordinary data.
	Dimensions bool

	// KeyValue enables recognition of "key = value" lines. When disabled
	// such lines fall through to the Name fallback.
	KeyValue bool

	// MinColumns is the minimum number of numeric fields a data row must
	// supply regardless of the declared column count. Zero means two.
	MinColumns int
}

func (g Grammar) minColumns() int {
	if g.MinColumns > 0 {
		return g.MinColumns
	}
	return 2
}

// Context tells the classifier what the surrounding parser state allows.
// Cols is the declared column count of the open data section, or zero when
// no data section is open.
type Context struct {
	Cols int
}

// Line is the classification of one physical input line. Only the fields
// matching Kind are meaningful.
type Line struct {
	Kind    Kind
	Comment string // KindComment: content after the marker, verbatim
	Name    string // KindName: trimmed label
	Rows    int    // KindDimensions
	Cols    int    // KindDimensions
	Key     string // KindKeyValue
	Value   string // KindKeyValue
	Row     Row    // KindDataRow
}

// Classify categorizes one line, already stripped of its trailing newline.
// It is a pure function of (line, context).
//
// The checks run in a fixed order: blank, comment, then — with an open data
// section — data row only; otherwise dimensions, key=value (when enabled),
// and finally the Name fallback. Name is deliberately the last resort: any
// non-blank, non-comment line that is not a dimensions or key=value line is
// a label. Reordering these checks changes the grammar.
func (g Grammar) Classify(raw string, ctx Context) Line {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Line{Kind: KindBlank}
	}
	if trimmed[0] == g.CommentMarker {
		return Line{Kind: KindComment, Comment: trimmed[1:]}
	}
	if ctx.Cols > 0 {
		row, ok := g.dataRow(trimmed, ctx.Cols)
		if !ok {
			return Line{Kind: KindInvalid}
		}
		return Line{Kind: KindDataRow, Row: row}
	}
	if g.Dimensions {
		if rows, cols, ok := dimensions(trimmed); ok {
			return Line{Kind: KindDimensions, Rows: rows, Cols: cols}
		}
	}
	if g.KeyValue {
		if key, value, ok := keyValue(trimmed); ok {
			return Line{Kind: KindKeyValue, Key: key, Value: value}
		}
	}
	return Line{Kind: KindName, Name: trimmed}
}

// dimensions matches exactly two whitespace-separated, strictly positive
// integer tokens. Zero or negative values, non-integer tokens, or any other
// token count do not match.
func dimensions(trimmed string) (rows, cols int, ok bool) {
	fields := strings.Fields(trimmed)
	if len(fields) != 2 {
		return 0, 0, false
	}
	rows, err := ParseInt(fields[0])
	if err != nil || rows <= 0 {
		return 0, 0, false
	}
	cols, err = ParseInt(fields[1])
	if err != nil || cols <= 0 {
		return 0, 0, false
	}
	return rows, cols, true
}

// keyValue splits on the first '='. The key must be non-empty after
// trimming; the value may be empty.
func keyValue(trimmed string) (key, value string, ok bool) {
	i := strings.IndexByte(trimmed, '=')
	if i < 0 {
		return "", "", false
	}
	key = strings.TrimSpace(trimmed[:i])
	if key == "" {
		return "", "", false
	}
	return key, strings.TrimSpace(trimmed[i+1:]), true
}

// dataRow parses a data row against the declared column count. The first
// two tokens must be floats (x, y); with HasZ the third is the
// z-coordinate, otherwise it is the first auxiliary value. Tokens are
// consumed greedily until one fails to parse: trailing free text is
// truncated rather than failing, provided the declared count was already
// satisfied. Parsable tokens beyond the declared count are discarded; that
// truncation is part of the parse contract, not an error.
func (g Grammar) dataRow(trimmed string, cols int) (Row, bool) {
	if cols < g.minColumns() {
		cols = g.minColumns()
	}
	fields := strings.Fields(trimmed)
	var values []float64
	for _, f := range fields {
		v, err := ParseFloat(f)
		if err != nil {
			break
		}
		values = append(values, v)
		if len(values) == cols {
			break
		}
	}
	if len(values) < cols {
		return Row{}, false
	}
	row := Row{X: values[0], Y: values[1]}
	rest := values[2:]
	if g.HasZ && len(rest) > 0 {
		z := rest[0]
		row.Z = &z
		rest = rest[1:]
	}
	if len(rest) > 0 {
		row.Data = append(row.Data, rest...)
	}
	return row, true
}
