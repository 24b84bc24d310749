package ess

import (
	"io"
	"log/slog"
)

// logger receives debug traces and cleanup failures that could not be
// returned because a primary error was already being reported. It discards
// everything until SetLogger is called.
var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogger routes the package's log output to l. A nil l restores the
// discarding default. Call it during start-up, before compounds are read or
// written.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger = l
}

// logMasked records a cleanup error that lost out to the primary failure.
func logMasked(op string, primary, cleanup error) {
	if cleanup == nil {
		return
	}
	logger.Warn("cleanup failed after earlier error",
		"op", op,
		"error", primary,
		"cleanup_error", cleanup,
	)
}
