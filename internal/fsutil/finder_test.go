package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

func TestKindOf(t *testing.T) {
	require.Equal(t, KindPolyline, KindOf("a/b/bank.pli"))
	require.Equal(t, KindPolyline, KindOf("AREA.POL"))
	require.Equal(t, KindForcing, KindOf("east.bc"))
	require.Equal(t, KindMeteo, KindOf("rain.bui"))
	require.Equal(t, KindProfile, KindOf("salinity.t3d"))
	require.Equal(t, KindSamples, KindOf("bed.xyz"))
	require.Equal(t, KindPipeline, KindOf("dimr_config.xml"))
	require.Equal(t, KindUnknown, KindOf("model.mdu"))
	require.Equal(t, KindUnknown, KindOf("noext"))
}

func TestFindModelInputs(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "geometry", "bank.pli"))
	touch(t, filepath.Join(root, "geometry", "area.pol"))
	touch(t, filepath.Join(root, "boundary", "east.bc"))
	touch(t, filepath.Join(root, "readme.txt"))

	got, err := FindModelInputs(root)
	require.NoError(t, err)
	require.Len(t, got[KindPolyline], 2)
	require.Len(t, got[KindForcing], 1)
	require.NotContains(t, got, KindUnknown)
}

func TestFindFilesByExtension(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a", "one.pli"))
	touch(t, filepath.Join(root, "b", "TWO.PLI"))
	touch(t, filepath.Join(root, "b", "three.bc"))

	files, err := FindFilesByExtension(root, ".pli")
	require.NoError(t, err)
	require.Len(t, files, 2)

	require.Panics(t, func() { _, _ = FindFilesByExtension(root, "") })
}
