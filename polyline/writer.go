package polyline

import (
	"io"
	"os"

	"github.com/delfland/hydroio/blockfile"
)

// Write renders objects in order. Reparsing the output with the same
// dialect yields structurally equal objects, modulo float formatting when a
// lossy WriteConfig.FloatFormat is configured.
func Write(w io.Writer, objs []Object, d Dialect, cfg blockfile.WriteConfig) error {
	blocks := make([]blockfile.Block, len(objs))
	for i := range objs {
		blocks[i] = objs[i].toBlock(d.HasZ())
	}
	return blockfile.Write(w, blocks, cfg)
}

// WriteFile writes objects to path, sniffing the dialect from the
// extension.
func WriteFile(path string, objs []Object, cfg blockfile.WriteConfig) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(f, objs, DialectForFile(path), cfg)
}
