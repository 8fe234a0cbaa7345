// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the PAML module so the CLI
//              and library callers can classify failures without matching on
//              message text.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Codes re-cut for parsing, conversion and configuration

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Document syntax
	CodeLexError       Code = "LEX_ERROR"
	CodeSyntaxError    Code = "SYNTAX_ERROR"
	CodeDuplicateKey   Code = "DUPLICATE_KEY"
	CodeNestingTooDeep Code = "NESTING_TOO_DEEP"
	CodeInputTooLarge  Code = "INPUT_TOO_LARGE"

	// Conversion between PAML and other representations
	CodeUnsupportedType  Code = "UNSUPPORTED_TYPE"
	CodeConversionFailed Code = "CONVERSION_FAILED"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
	CodeIOError       Code = "IO_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeLexError, CodeSyntaxError, CodeDuplicateKey, CodeNestingTooDeep, CodeInputTooLarge,
		CodeUnsupportedType, CodeConversionFailed,
		CodeConfigError, CodeInvalidConfig, CodeIOError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeLexError, CodeSyntaxError, CodeDuplicateKey, CodeNestingTooDeep, CodeInputTooLarge:
		return "syntax"
	case CodeUnsupportedType, CodeConversionFailed:
		return "conversion"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeIOError:
		return "io"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status the CLI uses for this code
func (c Code) ExitCode() int {
	switch c.Category() {
	case "syntax":
		return 2
	case "conversion":
		return 3
	case "configuration":
		return 4
	case "io":
		return 5
	default:
		return 1
	}
}
