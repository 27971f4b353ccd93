package app

import (
	"io"
	"log/slog"
)

// newLogger builds the App's isolated slog.Logger. The global logger is
// left untouched. Unknown level strings fall back to info; the CLI layer
// has already rejected them for interactive use.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}
