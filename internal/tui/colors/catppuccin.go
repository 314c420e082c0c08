package colors

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha colors used by the command line output
var (
	Surface1 = lipgloss.Color("#45475a")
	Overlay0 = lipgloss.Color("#6c7086")
	Text     = lipgloss.Color("#cdd6f4")

	Green = lipgloss.Color("#a6e3a1") // Driven high, success
	Red   = lipgloss.Color("#f38ba8") // Failure
	Mauve = lipgloss.Color("#cba6f7") // Headings
	Peach = lipgloss.Color("#fab387") // Warnings
)
