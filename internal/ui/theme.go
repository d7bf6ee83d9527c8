// Package ui provides the terminal presentation layer: headless detection,
// progress feedback during generation, and the post-generation summary.
package ui

import "github.com/charmbracelet/lipgloss"

// Theme bundles the lipgloss styles used across the CLI output.
type Theme struct {
	NoColor bool

	Title   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Path    lipgloss.Style
	Muted   lipgloss.Style
}

// NewTheme creates a Theme. With noColor set, every style renders plain text.
func NewTheme(noColor bool) *Theme {
	if noColor {
		plain := lipgloss.NewStyle()
		return &Theme{NoColor: true, Title: plain, Success: plain, Error: plain, Path: plain, Muted: plain}
	}
	return &Theme{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Path:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	}
}
