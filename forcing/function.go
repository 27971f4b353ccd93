package forcing

import (
	"fmt"
	"strings"
)

// Function discriminates the concrete forcing variant of a block. The
// on-disk discriminator is the "function" property.
type Function int

const (
	FuncTimeSeries Function = iota
	FuncHarmonic
	FuncAstronomic
	FuncHarmonicCorrection
	FuncAstronomicCorrection
	FuncT3D
	FuncQHTable
	FuncConstant
)

// functionNames holds the canonical on-disk spellings.
var functionNames = map[Function]string{
	FuncTimeSeries:           "timeseries",
	FuncHarmonic:             "harmonic",
	FuncAstronomic:           "astronomic",
	FuncHarmonicCorrection:   "harmonic-correction",
	FuncAstronomicCorrection: "astronomic-correction",
	FuncT3D:                  "t3d",
	FuncQHTable:              "qhtable",
	FuncConstant:             "constant",
}

func (f Function) String() string {
	if s, ok := functionNames[f]; ok {
		return s
	}
	return fmt.Sprintf("function(%d)", int(f))
}

// UnknownFunctionError reports a discriminator value outside the known
// variant set.
type UnknownFunctionError struct {
	Name string
	Line int
}

func (e *UnknownFunctionError) Error() string {
	return fmt.Sprintf("line %d: unrecognized forcing function %q", e.Line, e.Name)
}

// ParseFunction matches a discriminator string case-insensitively after
// trimming. Unknown values yield an *UnknownFunctionError.
func ParseFunction(s string, line int) (Function, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for f, name := range functionNames {
		if want == name {
			return f, nil
		}
	}
	return 0, &UnknownFunctionError{Name: strings.TrimSpace(s), Line: line}
}
