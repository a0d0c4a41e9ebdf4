package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrompt = lipgloss.Color("#10B981")
	colorError  = lipgloss.Color("#EF4444")
	colorMuted  = lipgloss.Color("#6B7280")
)

var (
	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrompt)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	headingStyle = lipgloss.NewStyle().
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)
