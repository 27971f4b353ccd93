// Package fsutil provides file system utility functions: gathering model
// input files and mapping file names to format kinds. File-extension logic
// lives here and nowhere else; the parsers take its result as an explicit
// parameter.
package fsutil

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// Kind is the on-disk format family a file name implies.
type Kind int

const (
	KindUnknown Kind = iota
	KindPolyline
	KindForcing
	KindMeteo
	KindProfile
	KindSamples
	KindPipeline
)

// kinds maps the suite's file extensions to format kinds.
var kinds = map[string]Kind{
	".pol":  KindPolyline,
	".pli":  KindPolyline,
	".pliz": KindPolyline,
	".bc":   KindForcing,
	".bui":  KindMeteo,
	".t3d":  KindProfile,
	".xyz":  KindSamples,
	".xml":  KindPipeline,
}

// KindOf sniffs the format kind from a file name's extension,
// case-insensitively.
func KindOf(path string) Kind {
	return kinds[strings.ToLower(filepath.Ext(path))]
}

// FindFilesByExtension recursively searches the given root path for all files ending
// with the specified extension. It returns a slice of their full paths.
func FindFilesByExtension(rootPath string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), extension) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}

// FindModelInputs gathers every recognized input file under root, grouped
// by format kind.
func FindModelInputs(root string) (map[Kind][]string, error) {
	out := make(map[Kind][]string)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if k := KindOf(d.Name()); k != KindUnknown {
			out[k] = append(out[k], path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
