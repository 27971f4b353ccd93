package profile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/delfland/hydroio/blockfile"
)

// Write renders a vertical-profile file. Reparsing the output yields an
// equal Profile, modulo float formatting when a lossy FloatFormat is
// configured.
func Write(w io.Writer, p *Profile, cfg blockfile.WriteConfig) error {
	cfg = cfg.WithDefaults()
	bw := bufio.NewWriter(w)

	for _, c := range p.Comments {
		if _, err := fmt.Fprintf(bw, "#%s\n", c); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(bw, "LAYER_TYPE=%s\n", p.LayerType); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "LAYERS=%s\n", joinFloats(p.Layers, cfg.FloatFormat)); err != nil {
		return err
	}
	for _, r := range p.Records {
		if _, err := fmt.Fprintf(bw, "TIME=%s\n", r.Time); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(bw, "%s\n", joinFloats(r.Values, cfg.FloatFormat)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes a vertical-profile file to path.
func WriteFile(path string, p *Profile, cfg blockfile.WriteConfig) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(f, p, cfg)
}

func joinFloats(values []float64, format string) string {
	fields := make([]string, len(values))
	for i, v := range values {
		fields[i] = fmt.Sprintf(format, v)
	}
	return strings.Join(fields, " ")
}
