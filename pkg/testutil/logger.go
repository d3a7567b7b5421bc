package testutil

import (
	"io"
	"log/slog"
)

// DiscardLogger returns a logger that drops everything. Handler and service
// tests use it so assertions stay about behavior, not log output.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
