package tui

import "github.com/charmbracelet/lipgloss"

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted      lipgloss.TerminalColor = ac("240", "243")
	colorAccent     lipgloss.TerminalColor = ac("#005f87", "#5fafd7")
	colorError      lipgloss.TerminalColor = ac("#af0000", "#ff5f5f")
	colorOK         lipgloss.TerminalColor = ac("#005f00", "#87d787")
	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg lipgloss.TerminalColor = ac("235", "255")
	colorBorder     lipgloss.TerminalColor = ac("250", "243")
)

func styleMuted() lipgloss.Style   { return lipgloss.NewStyle().Foreground(colorMuted) }
func styleHeading() lipgloss.Style { return lipgloss.NewStyle().Bold(true).Foreground(colorAccent) }
func styleError() lipgloss.Style   { return lipgloss.NewStyle().Foreground(colorError) }
func styleOK() lipgloss.Style      { return lipgloss.NewStyle().Foreground(colorOK) }
func styleSelected() lipgloss.Style {
	return lipgloss.NewStyle().Background(colorSelectedBg).Foreground(colorSelectedFg).Bold(true)
}

func styleSection(active bool) lipgloss.Style {
	st := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(0, 1)
	if active {
		st = st.BorderForeground(colorAccent)
	}
	return st
}
