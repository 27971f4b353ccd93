package polyline

import "github.com/delfland/hydroio/blockfile"

// Object is one named polyline with its description and coordinate rows.
type Object struct {
	// Description holds the leading comment content verbatim, one entry per
	// '*' line.
	Description []string
	Name        string
	Points      []blockfile.Row
}

// columns is the declared column count an object serializes with.
func (o *Object) columns(hasZ bool) int {
	cols := 2
	if hasZ {
		cols++
	}
	if len(o.Points) > 0 {
		cols += len(o.Points[0].Data)
	}
	return cols
}

func fromBlock(b blockfile.Block) Object {
	return Object{
		Description: b.Description,
		Name:        b.Header.Name,
		Points:      b.Rows,
	}
}

func (o *Object) toBlock(hasZ bool) blockfile.Block {
	return blockfile.Block{
		Description: o.Description,
		Header: blockfile.Header{
			Name: o.Name,
			Rows: len(o.Points),
			Cols: o.columns(hasZ),
		},
		Rows: o.Points,
	}
}
