package blockfile

import (
	"fmt"
	"strconv"
	"strings"
)

// Token conversion is strict: a token either converts exactly or the
// conversion fails. There is no truncation of "1.5" to 1 and no locale
// awareness; the formats are machine-written ASCII.

// ParseInt converts one token to an int.
func ParseInt(tok string) (int, error) {
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", tok)
	}
	return int(v), nil
}

// ParsePositiveInt converts one token to a strictly positive int.
func ParsePositiveInt(tok string) (int, error) {
	v, err := ParseInt(tok)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("%q is not a positive integer", tok)
	}
	return v, nil
}

// ParseFloat converts one token to a float64.
func ParseFloat(tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", tok)
	}
	return v, nil
}

// ParseFloats converts every whitespace-separated token of a line. It fails
// on the first token that is not a number.
func ParseFloats(line string) ([]float64, error) {
	fields := strings.Fields(line)
	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := ParseFloat(f)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// ParseInts converts every whitespace-separated token of a line. It fails
// on the first token that is not an integer.
func ParseInts(line string) ([]int, error) {
	fields := strings.Fields(line)
	values := make([]int, len(fields))
	for i, f := range fields {
		v, err := ParseInt(f)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}
