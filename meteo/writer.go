package meteo

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/delfland/hydroio/blockfile"
)

// Write renders a precipitation file. Reparsing the output yields an equal
// File, modulo float formatting when a lossy FloatFormat is configured.
func Write(w io.Writer, file *File, cfg blockfile.WriteConfig) error {
	cfg = cfg.WithDefaults()
	bw := bufio.NewWriter(w)

	for _, c := range file.Comments {
		if _, err := fmt.Fprintf(bw, "*%s\n", c); err != nil {
			return err
		}
	}
	indent := strings.Repeat(" ", cfg.Indent)
	for _, e := range file.Events {
		t := e.Start
		if _, err := fmt.Fprintf(bw, "%d %d %d %d %d %d %d %d %d %d\n",
			t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second(),
			e.SeriesIndex, e.Interpolation, len(e.Rows), e.TimestepSeconds); err != nil {
			return err
		}
		for _, row := range e.Rows {
			fields := make([]string, len(row))
			for i, v := range row {
				fields[i] = fmt.Sprintf(cfg.FloatFormat, v)
			}
			if _, err := fmt.Fprintf(bw, "%s%s\n", indent, strings.Join(fields, cfg.Separator)); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// WriteFile writes a precipitation file to path.
func WriteFile(path string, file *File, cfg blockfile.WriteConfig) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(f, file, cfg)
}
