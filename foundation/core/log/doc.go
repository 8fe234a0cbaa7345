// Package log provides structured logging for the PAML module.
//
// Package: log
// Title: PAML Structured Logging
// Description: Leveled, structured logging with contextual fields, a run
//              correlation id, four output formats and operation timers.
//              The parser logs under component "paml-parser"; the CLI
//              configures the default logger from flags and config.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Adapted for document processing, output defaults to stderr
//
// Usage:
//
//	import pamllog "github.com/msto63/paml/foundation/core/log"
//
//	logger := pamllog.New().
//		WithLevel(pamllog.LevelDebug).
//		WithFormat(pamllog.FormatJSON).
//		WithField("component", "paml-parser")
//
//	timer := logger.StartTimer("parse")
//	doc, err := parse(input)
//	if err != nil {
//		timer.StopWithError(err)
//		return err
//	}
//	timer.Stop(pamllog.Field("input_bytes", len(input)))
package log
