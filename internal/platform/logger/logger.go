package logger

import (
	"io"
	"log/slog"
	"os"

	"curpcheck/internal/platform/config"
)

// New returns a structured logger writing to stdout.
func New(cfg config.Log) *slog.Logger {
	return NewWithWriter(os.Stdout, cfg)
}

// NewWithWriter returns a structured logger writing to w, using a JSON
// handler unless cfg asks for text.
func NewWithWriter(w io.Writer, cfg config.Log) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	var h slog.Handler
	if cfg.Format == "text" {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}
	return slog.New(h).With("service", "curpcheck")
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
