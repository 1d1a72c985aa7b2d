// Package ui renders recipes for the terminal.
package ui

import "github.com/charmbracelet/lipgloss"

// Palette, adaptive to light and dark terminals.
var (
	ColorTitle = lipgloss.AdaptiveColor{
		Light: "#15803d",
		Dark:  "#22c55e",
	}
	ColorHeading = lipgloss.AdaptiveColor{
		Light: "#b91c1c",
		Dark:  "#f87171",
	}
	ColorMuted = lipgloss.AdaptiveColor{
		Light: "#6b7280",
		Dark:  "#9ca3af",
	}
)

var (
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorTitle)
	HeadingStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeading)
	NameStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorTitle)
	LabelStyle   = lipgloss.NewStyle().Bold(true)
	MutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	CardStyle    = lipgloss.NewStyle().PaddingLeft(2)
)
