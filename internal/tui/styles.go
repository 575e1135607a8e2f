package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7D79F6"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#6C7086"}
	colorBorder  = lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#45475A"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "#1F8A4C", Dark: "#A6E3A1"}
	colorDanger  = lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#F38BA8"}
	colorSelect  = lipgloss.AdaptiveColor{Light: "#E8E6FF", Dark: "#313244"}
)

var (
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	headerStyle      = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.Border{Bottom: "─"}, false, false, true, false).BorderForeground(colorBorder)
	sectionStyle     = lipgloss.NewStyle().Bold(true).MarginTop(1)
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorMuted)
	rowStyle         = lipgloss.NewStyle()
	selectedRowStyle = lipgloss.NewStyle().Background(colorSelect).Bold(true)
	mutedStyle       = lipgloss.NewStyle().Foreground(colorMuted)
	creditStyle      = lipgloss.NewStyle().Foreground(colorSuccess)
	debitStyle       = lipgloss.NewStyle().Foreground(colorDanger)
	statusStyle      = lipgloss.NewStyle().Foreground(colorDanger).Bold(true)
	modalStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorAccent).Padding(1, 2)
	labelStyle       = lipgloss.NewStyle().Width(8).Foreground(colorMuted)
	activeLabelStyle = lipgloss.NewStyle().Width(8).Bold(true).Foreground(colorAccent)
	barStyle         = lipgloss.NewStyle().Foreground(colorAccent)
	footerStyle      = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.Border{Top: "─"}, true, false, false, false).BorderForeground(colorBorder)
)
