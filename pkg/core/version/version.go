// ============================================================================
// PAML - Whitespace-delimited data format
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and the CLI
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for PAML components
const (
	// Release version of the module
	Platform = "0.1.0"

	// Component versions
	Format  = "0.1.0"
	Parser  = "0.1.0"
	Printer = "0.1.0"
	Codec   = "0.1.0"
	Convert = "0.1.0"
	CLI     = "0.1.0"
)

// Commit is set at build time with -ldflags "-X .../version.Commit=..."
var Commit = "unknown"

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "format":
		return Format
	case "parser":
		return Parser
	case "printer":
		return Printer
	case "codec":
		return Codec
	case "convert":
		return Convert
	case "cli", "paml":
		return CLI
	default:
		return Platform
	}
}

// Components lists the names ComponentVersion knows, in display order
func Components() []string {
	return []string{"format", "parser", "printer", "codec", "convert", "cli"}
}

// String returns the one-line version banner of the CLI
func String() string {
	return fmt.Sprintf("paml %s (commit %s, %s %s/%s)", Platform, Commit, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
