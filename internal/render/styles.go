// File: styles.go
// Title: Terminal Styles
// Description: Color palette and lipgloss styles for tree and status output.
//              Plain styles are used when color is off.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial palette for the terminal UI
// - 2026-10-19 v0.2.0: Reduced to the styles of tree and status rendering

package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
	colorInfo      = lipgloss.Color("#3B82F6")
)

// Styles
type styles struct {
	key       lipgloss.Style
	index     lipgloss.Style
	str       lipgloss.Style
	number    lipgloss.Style
	boolean   lipgloss.Style
	null      lipgloss.Style
	container lipgloss.Style
	meta      lipgloss.Style
	title     lipgloss.Style
	errorMsg  lipgloss.Style
	ok        lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{plain, plain, plain, plain, plain, plain, plain, plain, plain, plain, plain}
	}
	return styles{
		key:   lipgloss.NewStyle().Foreground(colorPrimary).Bold(true),
		index: lipgloss.NewStyle().Foreground(colorMuted),
		str:   lipgloss.NewStyle().Foreground(colorSecondary),
		number: lipgloss.NewStyle().
			Foreground(colorAccent),
		boolean: lipgloss.NewStyle().
			Foreground(colorInfo),
		null: lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true),
		container: lipgloss.NewStyle().Bold(true),
		meta: lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true),
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary),
		errorMsg: lipgloss.NewStyle().Foreground(colorError).Bold(true),
		ok:       lipgloss.NewStyle().Foreground(colorSecondary),
	}
}
