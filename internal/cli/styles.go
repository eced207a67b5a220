package cli

import (
	"github.com/charmbracelet/lipgloss"

	"pingline/internal/latency"
)

var (
	colorPrimary = lipgloss.Color("#7D56F4") // Indigo/Purple
	colorGood    = lipgloss.Color("#04B575") // Green
	colorBad     = lipgloss.Color("#FF5F87") // Pink/Red
	colorWarn    = lipgloss.Color("#FFAF00") // Gold
	colorSubtle  = lipgloss.Color("#767676") // Gray
)

var (
	styleTitle  = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	styleGood   = lipgloss.NewStyle().Foreground(colorGood).Bold(true)
	styleBad    = lipgloss.NewStyle().Foreground(colorBad)
	styleWarn   = lipgloss.NewStyle().Foreground(colorWarn)
	styleSubtle = lipgloss.NewStyle().Foreground(colorSubtle)
	styleBox    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#3C3C3C")).Padding(0, 1)
)

func tierStyle(t latency.Tier) lipgloss.Style {
	switch t {
	case latency.TierFast:
		return styleGood
	case latency.TierMedium:
		return styleWarn
	case latency.TierSlow:
		return styleBad
	default:
		return styleSubtle
	}
}
