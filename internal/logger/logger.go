package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/config"
)

// New creates a JSON slog.Logger writing to stdout at the configured level.
func New(cfg *config.Config) *slog.Logger {
	return newLogger(os.Stdout, cfg.LogLevel)
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
