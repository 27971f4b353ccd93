package forcing

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/delfland/hydroio/blockfile"
)

// Forcing is one boundary-condition block, already validated. Quantities
// and Rows form the data table: every row has exactly one value per
// quantity. Attributes is the side-table of extra keyword-prefixed
// properties allowed by the prefix list.
type Forcing struct {
	Name     string
	Function Function

	Quantities []Quantity
	Rows       [][]float64

	TimeInterpolation string
	Offset            *float64
	Factor            *float64

	VertPositions     []float64
	VertInterpolation string
	VertPositionType  string

	Attributes map[string]cty.Value
}

// NewForcing is the domain constructor for a [Forcing] section: it selects
// the variant by the function discriminator and validates the block's
// cross-field shape. The scanner has already guaranteed structural shape
// only; everything here is domain validation and its errors propagate
// unchanged to the caller.
func NewForcing(sec *Section) (*Forcing, error) {
	f := &Forcing{Rows: sec.Rows}
	var pendingUnit bool

	for _, p := range sec.Properties {
		switch strings.ToLower(p.Key) {
		case "name":
			f.Name = p.Value
		case "function":
			fn, err := ParseFunction(p.Value, p.Line)
			if err != nil {
				return nil, err
			}
			f.Function = fn
		case "timeinterpolation":
			f.TimeInterpolation = p.Value
		case "offset":
			v, err := blockfile.ParseFloat(p.Value)
			if err != nil {
				return nil, &QuantityError{Block: f.Name, Line: p.Line, Detail: "offset " + err.Error()}
			}
			f.Offset = &v
		case "factor":
			v, err := blockfile.ParseFloat(p.Value)
			if err != nil {
				return nil, &QuantityError{Block: f.Name, Line: p.Line, Detail: "factor " + err.Error()}
			}
			f.Factor = &v
		case "vertpositions":
			vs, err := blockfile.ParseFloats(p.Value)
			if err != nil {
				return nil, &QuantityError{Block: f.Name, Line: p.Line, Detail: "vertPositions " + err.Error()}
			}
			f.VertPositions = vs
		case "vertinterpolation":
			f.VertInterpolation = p.Value
		case "vertpositiontype":
			f.VertPositionType = p.Value
		case "quantity":
			if pendingUnit {
				return nil, &QuantityError{Block: f.Name, Line: p.Line,
					Detail: "quantity declared before the previous quantity received a unit"}
			}
			f.Quantities = append(f.Quantities, Quantity{Name: p.Value})
			pendingUnit = true
		case "unit":
			if !pendingUnit {
				return nil, &QuantityError{Block: f.Name, Line: p.Line,
					Detail: "unit with no preceding quantity"}
			}
			f.Quantities[len(f.Quantities)-1].Unit = p.Value
			pendingUnit = false
		default:
			if !allowedAttribute(p.Key) {
				return nil, &UnknownKeywordError{Block: f.Name, Key: p.Key, Line: p.Line}
			}
			if f.Attributes == nil {
				f.Attributes = make(map[string]cty.Value)
			}
			f.Attributes[p.Key] = attributeValue(p.Value)
		}
	}

	if pendingUnit {
		return nil, &QuantityError{Block: f.Name, Line: sec.End,
			Detail: "quantity/unit counts do not match"}
	}
	return f, f.validate(sec)
}

func (f *Forcing) validate(sec *Section) error {
	if f.Name == "" {
		return &QuantityError{Block: "", Line: sec.Start, Detail: "forcing block has no name"}
	}
	if len(f.Quantities) == 0 {
		return &QuantityError{Block: f.Name, Line: sec.Start, Detail: "forcing block declares no quantities"}
	}
	for i, row := range f.Rows {
		if len(row) != len(f.Quantities) {
			return &QuantityError{Block: f.Name, Line: sec.Start,
				Detail: fmt.Sprintf("data row %d has %d values for %d quantities",
					i, len(row), len(f.Quantities))}
		}
	}

	switch f.Function {
	case FuncTimeSeries, FuncT3D:
		if !strings.EqualFold(f.Quantities[0].Name, "time") {
			return &QuantityError{Block: f.Name, Line: sec.Start,
				Detail: "first quantity of a " + f.Function.String() + " block must be time"}
		}
		if len(f.Rows) == 0 {
			return &QuantityError{Block: f.Name, Line: sec.End,
				Detail: f.Function.String() + " block has no data rows"}
		}
		if f.Function == FuncT3D && len(f.VertPositions) == 0 {
			return &QuantityError{Block: f.Name, Line: sec.Start,
				Detail: "t3d block has no vertPositions"}
		}
	case FuncConstant:
		if len(f.Rows) != 1 {
			return &QuantityError{Block: f.Name, Line: sec.End,
				Detail: "constant block must have exactly one data row"}
		}
	case FuncQHTable:
		if len(f.Rows) == 0 {
			return &QuantityError{Block: f.Name, Line: sec.End,
				Detail: "qhtable block has no data rows"}
		}
	}
	return nil
}
