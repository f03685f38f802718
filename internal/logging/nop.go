package logging

import "github.com/Anoushka222/DAA-Project/types"

// NopLogger discards all log messages. It is the Engine default so the
// library stays silent unless a logger is injected.
type NopLogger struct{}

// Compile-time assertion that NopLogger implements Logger.
var _ types.Logger = (*NopLogger)(nil)

// NewNop creates a new no-op logger.
func NewNop() *NopLogger {
	return &NopLogger{}
}

// Debug discards the message.
func (l *NopLogger) Debug(_ string, _ ...any) {}

// Info discards the message.
func (l *NopLogger) Info(_ string, _ ...any) {}

// Warn discards the message.
func (l *NopLogger) Warn(_ string, _ ...any) {}

// Error discards the message.
func (l *NopLogger) Error(_ string, _ ...any) {}

// Fatal discards the message without exiting. A silent logger must never
// terminate the program.
func (l *NopLogger) Fatal(_ string, _ ...any) {}
