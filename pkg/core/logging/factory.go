// ============================================================================
// PAML - Whitespace-delimited data format
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating CLI loggers from configuration
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"

	pamllog "github.com/msto63/paml/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name
	Name string

	// Log level (trace, debug, info, warn, error, off)
	Level string

	// Output format: json, text, console or logfmt (default: console)
	Format string

	// Output writer (default: stderr)
	Output io.Writer

	// Additional outputs (besides Output)
	AdditionalOutputs []io.Writer

	// Correlation id attached to every entry; empty means a new uuid
	CorrelationID string
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "console",
	}
}

// NewLogger creates a Foundation logger tagged with a correlation id.
// Unknown levels fall back to info and unknown formats to console.
func NewLogger(cfg LoggerConfig) *pamllog.Logger {
	level := parseLevel(cfg.Level)

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	format, err := pamllog.ParseFormat(cfg.Format)
	if err != nil || cfg.Format == "" {
		format = pamllog.FormatConsole
	}

	correlationID := cfg.CorrelationID
	if correlationID == "" {
		correlationID = NewCorrelationID()
	}

	return pamllog.NewWithConfig(pamllog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	}).WithCorrelationID(correlationID)
}

// NewSimpleLogger creates a console logger with the default configuration
func NewSimpleLogger(name string) *pamllog.Logger {
	return NewLogger(DefaultLoggerConfig(name))
}

// NewCorrelationID returns a random id for one CLI run
func NewCorrelationID() string {
	return uuid.New().String()
}

// parseLevel converts a string level to pamllog.Level
func parseLevel(level string) pamllog.Level {
	l, err := pamllog.ParseLevel(level)
	if err != nil {
		return pamllog.LevelInfo
	}
	return l
}
