package tui

import (
	"github.com/charmbracelet/lipgloss"

	"gadget/internal/config"
	"gadget/pkg/types"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("213")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	filterLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39"))
)

// tierColor maps a progress tier to its themed color.
func tierColor(cfg *config.Config, tier types.Tier) string {
	switch tier {
	case types.TierMid:
		return cfg.Theme.ProgressMid
	case types.TierHigh:
		return cfg.Theme.ProgressHigh
	default:
		return cfg.Theme.ProgressLow
	}
}

// tierStyle renders text in the tier's color.
func tierStyle(cfg *config.Config, tier types.Tier) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(tierColor(cfg, tier)))
}
