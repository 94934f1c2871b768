package logs

import (
	"io"
	"log/slog"
	"strings"
)

// New builds the check logger. It never writes to stdout, which carries the
// plugin result line.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Level resolves the effective level: verbose forces debug, otherwise the
// configured name is used and unknown names fall back to warn.
func Level(configured string, verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}

	switch strings.ToUpper(strings.TrimSpace(configured)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
