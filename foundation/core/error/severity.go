// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger picks its level
//              from the severity when an error is logged with LogError.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-19 v0.2.0: Severity mapping for the PAML codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow covers problems in the input document itself
	SeverityLow Severity = iota

	// SeverityMedium covers failures with a workaround (conversion limits)
	SeverityMedium

	// SeverityHigh covers environment failures (unreadable config, I/O)
	SeverityHigh

	// SeverityCritical covers broken invariants inside the module
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should be surfaced loudly
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError, CodeInvalidConfig, CodeIOError:
		return SeverityHigh
	case CodeUnsupportedType, CodeConversionFailed, CodeNestingTooDeep, CodeInputTooLarge:
		return SeverityMedium
	case CodeLexError, CodeSyntaxError, CodeDuplicateKey, CodeInvalidInput:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
