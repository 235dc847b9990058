// Package notify delivers user-visible warnings from the alignment
// ledger. Failures are absorbed locally: no warning ever propagates an
// error back to the event source.
package notify

import (
	"context"
	"fmt"
	"log"
)

// Sink receives user-visible warning messages.
type Sink interface {
	Warnf(ctx context.Context, format string, args ...any)
}

// LogSink writes warnings through the standard logger.
// It is nil-safe so callers can pass it around unconditionally.
type LogSink struct {
	logger *log.Logger
}

// NewLogSink creates a sink backed by the provided logger.
// A nil logger falls back to the process default.
func NewLogSink(logger *log.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Warnf emits a formatted warning.
func (s *LogSink) Warnf(_ context.Context, format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	if s == nil || s.logger == nil {
		log.Printf("force alignment: %s", message)
		return
	}
	s.logger.Printf("force alignment: %s", message)
}

// Recorder is a sink that captures warnings for inspection in tests.
type Recorder struct {
	Warnings []string
}

// Warnf records the formatted warning.
func (r *Recorder) Warnf(_ context.Context, format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}
