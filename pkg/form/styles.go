/* pkg/form/styles.go */

package form

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#00ffff")
	colorSuccess = lipgloss.Color("#00ff00")
	colorWarning = lipgloss.Color("#ffaa00")
	colorError   = lipgloss.Color("#ff0000")
	colorMuted   = lipgloss.Color("#666666")
	colorBorder  = lipgloss.Color("#3d5a80")
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).MarginBottom(1)

	labelStyle   = lipgloss.NewStyle().Width(10)
	focusedStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	blurredStyle = lipgloss.NewStyle()
	helpStyle    = lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	statusStyle  = lipgloss.NewStyle().Foreground(colorSuccess)

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder)
	activeButtonStyle = buttonStyle.
				BorderForeground(colorPrimary).
				Foreground(colorPrimary).
				Bold(true)

	passwordStyle = lipgloss.NewStyle().Bold(true)
)

func strengthStyle(label string) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	switch label {
	case "Strong":
		return s.Foreground(colorSuccess)
	case "Medium":
		return s.Foreground(colorWarning)
	case "Weak":
		return s.Foreground(colorError)
	}
	return s.Foreground(colorMuted)
}
