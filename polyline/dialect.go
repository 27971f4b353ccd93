package polyline

import (
	"path/filepath"
	"strings"

	"github.com/delfland/hydroio/blockfile"
)

// Dialect is the format-specific variation of the polyline grammar. It is
// an explicit parse parameter: parsing never infers z-presence from the
// shape of the data.
type Dialect int

const (
	// DialectPol is a closed polygon file without z-values.
	DialectPol Dialect = iota
	// DialectPli is a polyline file without z-values.
	DialectPli
	// DialectPliz is a polyline file whose third column is a z-value.
	DialectPliz
)

// HasZ reports whether rows of this dialect carry a z-coordinate.
func (d Dialect) HasZ() bool { return d == DialectPliz }

func (d Dialect) String() string {
	switch d {
	case DialectPol:
		return "pol"
	case DialectPli:
		return "pli"
	case DialectPliz:
		return "pliz"
	}
	return "unknown"
}

// DialectForFile sniffs the dialect from a file name's extension. This is a
// thin adapter over the filesystem naming convention; everything past this
// point takes the dialect as an explicit parameter.
func DialectForFile(path string) Dialect {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pol":
		return DialectPol
	case ".pliz":
		return DialectPliz
	default:
		return DialectPli
	}
}

// grammar instantiates the block grammar for one dialect.
func (d Dialect) grammar() blockfile.Grammar {
	g := blockfile.Grammar{CommentMarker: '*', HasZ: d.HasZ(), Dimensions: true}
	if d.HasZ() {
		g.MinColumns = 3
	}
	return g
}
