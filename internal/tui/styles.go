package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary  = lipgloss.Color("#C72828")
	colorInactive = lipgloss.Color("#B7B7CC")
	colorFavorite = lipgloss.Color("#FFB84D")
	colorText     = lipgloss.Color("#3D3D4D")
	colorSuccess  = lipgloss.Color("#39B100")
	colorMuted    = lipgloss.Color("#6C6C80")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorPrimary).
			Padding(0, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			MarginTop(1)

	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)

	priceStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSuccess)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	categoryStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorInactive)

	activeCategoryStyle = categoryStyle.
				BorderForeground(colorPrimary).
				Foreground(colorPrimary)

	favoriteStyle = lipgloss.NewStyle().Foreground(colorFavorite)

	errorStyle = lipgloss.NewStyle().Foreground(colorPrimary)

	alertStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 3)

	confirmationStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorSuccess).
				Foreground(colorSuccess).
				Bold(true).
				Padding(1, 4)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorInactive).
			MarginTop(1)
)
