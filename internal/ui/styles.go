package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#818CF8")
	colorMuted  = lipgloss.Color("#94A3B8")
	colorBorder = lipgloss.Color("#334155")
	colorDone   = lipgloss.Color("#6EE7B7")
	colorText   = lipgloss.Color("#F8FAFC")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	accentStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	doneBoxStyle = lipgloss.NewStyle().Foreground(colorDone)
	doneStyle    = lipgloss.NewStyle().Foreground(colorMuted).Strikethrough(true)
	statusStyle  = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 2).
			Align(lipgloss.Center)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	activeTabStyle = tabStyle.
			BorderForeground(colorAccent).
			Foreground(colorText).
			Bold(true)

	emptyStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorBorder).
			Foreground(colorMuted).
			Padding(0, 2)
)
