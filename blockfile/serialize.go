package blockfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteConfig controls rendering of blocks back to the line format.
// The zero value is usable; defaults are applied per call.
type WriteConfig struct {
	// FloatFormat is the fmt verb for every numeric field. The default
	// "%g" round-trips float64 values exactly.
	FloatFormat string
	// Indent is the number of spaces before each data row. Default 4.
	Indent int
	// Marker is the comment marker for description lines. Default '*'.
	Marker byte
	// Separator joins fields on the dimensions and data lines with a fixed
	// width. Default four spaces.
	Separator string
}

// WithDefaults fills unset fields with the suite defaults.
func (c WriteConfig) WithDefaults() WriteConfig {
	if c.FloatFormat == "" {
		c.FloatFormat = "%g"
	}
	if c.Indent == 0 {
		c.Indent = 4
	}
	if c.Marker == 0 {
		c.Marker = '*'
	}
	if c.Separator == "" {
		c.Separator = "    "
	}
	return c
}

// Write renders blocks in order. Reparsing the output with the matching
// grammar yields structurally equal blocks, modulo float formatting when a
// lossy FloatFormat is configured.
func Write(w io.Writer, blocks []Block, cfg WriteConfig) error {
	cfg = cfg.WithDefaults()
	bw := bufio.NewWriter(w)
	for i := range blocks {
		if err := writeBlock(bw, &blocks[i], cfg); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeBlock(bw *bufio.Writer, b *Block, cfg WriteConfig) error {
	marker := string(cfg.Marker)
	for _, content := range b.Description {
		// Content is re-emitted verbatim after the marker. Empty content
		// renders as a bare marker line, never marker+space.
		if _, err := fmt.Fprintf(bw, "%s%s\n", marker, content); err != nil {
			return err
		}
	}
	// Metadata is two lines: the name line, then the dimensions line.
	if _, err := fmt.Fprintf(bw, "%s\n", b.Header.Name); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "%d%s%d\n", b.Header.Rows, cfg.Separator, b.Header.Cols); err != nil {
		return err
	}
	indent := strings.Repeat(" ", cfg.Indent)
	for _, row := range b.Rows {
		fields := make([]string, 0, 3+len(row.Data))
		fields = append(fields,
			fmt.Sprintf(cfg.FloatFormat, row.X),
			fmt.Sprintf(cfg.FloatFormat, row.Y))
		if row.Z != nil {
			// Z presence is independent per row.
			fields = append(fields, fmt.Sprintf(cfg.FloatFormat, *row.Z))
		}
		for _, v := range row.Data {
			fields = append(fields, fmt.Sprintf(cfg.FloatFormat, v))
		}
		if _, err := fmt.Fprintf(bw, "%s%s\n", indent, strings.Join(fields, cfg.Separator)); err != nil {
			return err
		}
	}
	return nil
}
