package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLogger_LevelFiltering(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	logger := newLogger("warn", "text", out)
	logger.Info("dropped")
	logger.Warn("kept")
	require.NotContains(t, out.String(), "dropped")
	require.Contains(t, out.String(), "kept")
}

func TestNewLogger_JSONFormat(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	newLogger("info", "json", out).Info("hello")
	require.Contains(t, out.String(), `"msg":"hello"`)
}

func TestNewLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	logger := newLogger("verbose", "text", out)
	logger.Debug("dropped")
	logger.Info("kept")
	require.NotContains(t, out.String(), "dropped")
	require.Contains(t, out.String(), "kept")
}
