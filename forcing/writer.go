package forcing

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/delfland/hydroio/blockfile"
)

// Write renders a forcing file. Reparsing the output yields an equal File,
// modulo float formatting when a lossy FloatFormat is configured.
func Write(w io.Writer, file *File, cfg blockfile.WriteConfig) error {
	cfg.Marker = '#'
	bw := bufio.NewWriter(w)

	for _, c := range file.Comments {
		if _, err := fmt.Fprintf(bw, "#%s\n", c); err != nil {
			return err
		}
	}

	general := []property{
		{"fileVersion", file.General.FileVersion},
		{"fileType", file.General.FileType},
	}
	if err := writeSection(bw, "General", general, nil, cfg); err != nil {
		return err
	}

	for _, f := range file.Forcings {
		if err := writeSection(bw, "Forcing", f.properties(cfg), f.Rows, cfg); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes a forcing file to path.
func WriteFile(path string, file *File, cfg blockfile.WriteConfig) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(f, file, cfg)
}

type property struct {
	key   string
	value string
}

// properties renders the forcing's fields back to the canonical keyword
// order: identification, interpolation, transforms, the attribute table,
// then the quantity/unit pairs.
func (f *Forcing) properties(cfg blockfile.WriteConfig) []property {
	float := cfg.FloatFormat
	if float == "" {
		float = "%g"
	}
	props := []property{
		{"name", f.Name},
		{"function", f.Function.String()},
	}
	if f.TimeInterpolation != "" {
		props = append(props, property{"timeInterpolation", f.TimeInterpolation})
	}
	if f.Offset != nil {
		props = append(props, property{"offset", fmt.Sprintf(float, *f.Offset)})
	}
	if f.Factor != nil {
		props = append(props, property{"factor", fmt.Sprintf(float, *f.Factor)})
	}
	if len(f.VertPositions) > 0 {
		vals := make([]string, len(f.VertPositions))
		for i, v := range f.VertPositions {
			vals[i] = fmt.Sprintf(float, v)
		}
		props = append(props, property{"vertPositions", strings.Join(vals, " ")})
	}
	if f.VertPositionType != "" {
		props = append(props, property{"vertPositionType", f.VertPositionType})
	}
	if f.VertInterpolation != "" {
		props = append(props, property{"vertInterpolation", f.VertInterpolation})
	}

	keys := make([]string, 0, len(f.Attributes))
	for k := range f.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		props = append(props, property{k, attributeString(f.Attributes[k], float)})
	}

	for _, q := range f.Quantities {
		props = append(props,
			property{"quantity", q.Name},
			property{"unit", q.Unit})
	}
	return props
}

func attributeString(v cty.Value, float string) string {
	if v.Type() == cty.Number {
		f, _ := v.AsBigFloat().Float64()
		return fmt.Sprintf(float, f)
	}
	return v.AsString()
}

func writeSection(bw *bufio.Writer, header string, props []property, rows [][]float64, cfg blockfile.WriteConfig) error {
	cfg = blockfile.WriteConfig{
		FloatFormat: cfg.FloatFormat,
		Indent:      cfg.Indent,
		Separator:   cfg.Separator,
	}.WithDefaults()

	if _, err := fmt.Fprintf(bw, "[%s]\n", header); err != nil {
		return err
	}
	width := 0
	for _, p := range props {
		if len(p.key) > width {
			width = len(p.key)
		}
	}
	indent := strings.Repeat(" ", cfg.Indent)
	for _, p := range props {
		if _, err := fmt.Fprintf(bw, "%s%-*s = %s\n", indent, width, p.key, p.value); err != nil {
			return err
		}
	}
	for _, row := range rows {
		fields := make([]string, len(row))
		for i, v := range row {
			fields[i] = fmt.Sprintf(cfg.FloatFormat, v)
		}
		if _, err := fmt.Fprintf(bw, "%s%s%s\n", indent, indent, strings.Join(fields, cfg.Separator)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(bw)
	return err
}
