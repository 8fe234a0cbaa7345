// Package error provides structured error handling for the PAML module.
//
// Package: error
// Title: PAML Error Handling
// Description: Structured errors with codes, severity, details and the name
//              of the document that failed. The parser keeps its own typed
//              LexError/ParseError values; everything layered on top of it
//              (codec, converters, configuration, CLI) wraps failures here.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Adapted for document processing
//
// Usage:
//
//	import pamlerror "github.com/msto63/paml/foundation/core/error"
//
//	err := pamlerror.Wrap(ioErr, "read document").
//		WithCode(pamlerror.CodeIOError).
//		WithSource("config.paml")
//
//	if pamlerror.HasCode(err, pamlerror.CodeIOError) {
//		// ...
//	}
//
// GetCode and HasCode also see through errors that only implement a
// Code() Code method, so a parser.ParseError wrapped by this package keeps
// reporting CodeSyntaxError, CodeDuplicateKey and so on.
package error
