package styles

import (
	"fmt"
	"strings"

	"github.com/allbin/go-bitpulse"
	"github.com/allbin/go-bitpulse/internal/tui/colors"
	"github.com/charmbracelet/lipgloss"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Mauve)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(colors.Green).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colors.Red).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(colors.Peach)

	MutedStyle = lipgloss.NewStyle().
			Foreground(colors.Overlay0)

	// Output line levels
	LineHighStyle = lipgloss.NewStyle().
			Foreground(colors.Green).
			Bold(true)

	LineLowStyle = lipgloss.NewStyle().
			Foreground(colors.Overlay0)

	// Device table
	TableBaseStyle = lipgloss.NewStyle().
			Foreground(colors.Text).
			BorderForeground(colors.Surface1).
			Align(lipgloss.Left)

	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(colors.Mauve).
				Bold(true)
)

// RenderLines shows the level of each driven line of out, D5 first.
func RenderLines(out byte) string {
	levels := bitpulse.Pattern(out & bitpulse.OutputMask)
	parts := make([]string, 0, bitpulse.PatternWidth)
	for n := bitpulse.PatternWidth - 1; n >= 0; n-- {
		label := fmt.Sprintf("D%d", n)
		if levels.Line(n) {
			parts = append(parts, LineHighStyle.Render(label+" ●"))
		} else {
			parts = append(parts, LineLowStyle.Render(label+" ○"))
		}
	}
	return strings.Join(parts, "  ")
}
