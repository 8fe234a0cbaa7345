// File: level.go
// Title: Log Level Definitions
// Description: Defines log levels for filtering output. The CLI maps
//              --verbose and the [logging] config section onto these.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-19 v0.2.0: Console styling moved to lipgloss, audit level removed

package log

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace logs every token the lexer produces
	LevelTrace Level = iota

	// LevelDebug logs parse and conversion steps with timings
	LevelDebug

	// LevelInfo is the default level
	LevelInfo

	// LevelWarn indicates recoverable problems
	LevelWarn

	// LevelError represents failed operations
	LevelError

	// LevelFatal terminates the program after logging
	LevelFatal

	// LevelOff disables all output
	LevelOff
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	case LevelOff:
		return "off"
	default:
		return "unknown"
	}
}

// ShortString returns a short string representation of the log level
func (l Level) ShortString() string {
	switch l {
	case LevelTrace:
		return "TRC"
	case LevelDebug:
		return "DBG"
	case LevelInfo:
		return "INF"
	case LevelWarn:
		return "WRN"
	case LevelError:
		return "ERR"
	case LevelFatal:
		return "FTL"
	default:
		return "???"
	}
}

var levelColors = map[Level]lipgloss.Color{
	LevelTrace: lipgloss.Color("7"),
	LevelDebug: lipgloss.Color("6"),
	LevelInfo:  lipgloss.Color("2"),
	LevelWarn:  lipgloss.Color("3"),
	LevelError: lipgloss.Color("1"),
	LevelFatal: lipgloss.Color("5"),
}

// Style returns the console style for the level
func (l Level) Style() lipgloss.Style {
	style := lipgloss.NewStyle()
	if c, ok := levelColors[l]; ok {
		style = style.Foreground(c)
	}
	if l >= LevelError {
		style = style.Bold(true)
	}
	return style
}

// ShouldLog returns true if this level should be logged given the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	if minLevel == LevelOff || l == LevelOff {
		return false
	}
	return l >= minLevel
}

// ParseLevel parses a string into a log level
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "trc":
		return LevelTrace, nil
	case "debug", "dbg":
		return LevelDebug, nil
	case "info", "inf", "":
		return LevelInfo, nil
	case "warn", "wrn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	case "fatal", "ftl":
		return LevelFatal, nil
	case "off", "none":
		return LevelOff, nil
	default:
		return LevelInfo, &ParseError{
			Input: level,
			Type:  "level",
		}
	}
}

// ParseError represents an error parsing a log configuration value
type ParseError struct {
	Input string
	Type  string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return "invalid log " + e.Type + ": " + e.Input
}

// DefaultLevel returns the default log level
func DefaultLevel() Level {
	return LevelInfo
}
