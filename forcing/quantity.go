package forcing

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/delfland/hydroio/blockfile"
)

// Quantity is one column of a forcing table: the physical quantity name and
// its unit, paired in input order.
type Quantity struct {
	Name string
	Unit string
}

// QuantityError reports a quantity/unit bookkeeping failure in one block:
// a unit with no preceding quantity, a quantity left without a unit, or a
// data row whose width disagrees with the declared columns.
type QuantityError struct {
	Block  string
	Line   int
	Detail string
}

func (e *QuantityError) Error() string {
	return fmt.Sprintf("forcing %q, line %d: %s", e.Block, e.Line, e.Detail)
}

// attributePrefixes is the allow-list for extra keyword-prefixed properties.
// Anything else unknown fails the block instead of silently growing the
// model.
var attributePrefixes = []string{"tracer", "initialtracer", "sedfrac"}

// allowedAttribute reports whether key may enter the attribute side-table.
func allowedAttribute(key string) bool {
	lower := strings.ToLower(key)
	for _, p := range attributePrefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

// UnknownKeywordError reports a property key that is neither a forcing
// keyword nor covered by the attribute prefix allow-list.
type UnknownKeywordError struct {
	Block string
	Key   string
	Line  int
}

func (e *UnknownKeywordError) Error() string {
	return fmt.Sprintf("forcing %q, line %d: unsupported keyword %q", e.Block, e.Line, e.Key)
}

// attributeValue converts a raw property value for the side-table: numeric
// text becomes a cty number, everything else stays a string.
func attributeValue(raw string) cty.Value {
	if v, err := blockfile.ParseFloat(raw); err == nil {
		return cty.NumberFloatVal(v)
	}
	return cty.StringVal(raw)
}
