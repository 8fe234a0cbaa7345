// File: timer.go
// Title: Performance Timer
// Description: Measures an operation and logs its duration when stopped.
//              The parser and converters time each document they process.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with performance timing
// - 2026-10-19 v0.2.0: Duration carried on the entry instead of as fields

package log

import (
	"time"
)

// Timer represents a performance timer for measuring operation duration
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the log level for the timer completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the elapsed time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop stops the timer and logs "<operation> completed"
func (t *Timer) Stop(fields ...Fields) time.Duration {
	return t.finish(t.level, t.operation+" completed", nil, fields)
}

// StopWithError stops the timer and logs "<operation> failed" with the error.
// The entry is logged at the timer's level; callers decide how loud a
// failed document is.
func (t *Timer) StopWithError(err error, fields ...Fields) time.Duration {
	return t.finish(t.level, t.operation+" failed", err, fields)
}

func (t *Timer) finish(level Level, message string, err error, fields []Fields) time.Duration {
	if t.stopped {
		return 0
	}
	elapsed := t.Elapsed()
	t.stopped = true

	if t.logger != nil {
		all := append([]Fields{t.fields, {"operation": t.operation}}, fields...)
		t.logger.logTimed(level, message, err, elapsed, all...)
	}
	return elapsed
}

// IsRunning returns true if the timer is still running
func (t *Timer) IsRunning() bool {
	return !t.stopped
}
