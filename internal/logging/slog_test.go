package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlogLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlog(slog.New(handler))

	logger.Debug("debug message", "key", "value")
	logger.Info("info message", "capacity", 100)
	logger.Warn("warn message")
	logger.Error("error message", "error", "boom")

	out := buf.String()
	require.Contains(t, out, "debug message")
	require.Contains(t, out, "key=value")
	require.Contains(t, out, "capacity=100")
	require.Contains(t, out, "warn message")
	require.Contains(t, out, "error message")
}

func TestNopLogger(t *testing.T) {
	logger := NewNop()

	// Must not panic, and Fatal must not exit.
	logger.Debug("msg")
	logger.Info("msg", "k", "v")
	logger.Warn("msg")
	logger.Error("msg")
	logger.Fatal("msg")
}
