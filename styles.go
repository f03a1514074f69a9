package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ztrade/launchweek/launch"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3ECF8E"))
	statusStyles = map[launch.Status]lipgloss.Style{
		launch.StatusPlanning:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		launch.StatusInProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		launch.StatusReady:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		launch.StatusShipped:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	}
)

func renderStatus(st launch.Status) string {
	if style, ok := statusStyles[st]; ok {
		return style.Render(string(st))
	}
	return string(st)
}
