package tui

import "github.com/charmbracelet/lipgloss"

// Color palette. Single source of truth for the reader's colors.
var (
	parchment = lipgloss.Color("#F5E9D0") // primary text
	burgundy  = lipgloss.Color("#8C2B32") // headings and accents
	oliveGold = lipgloss.Color("#B8A24A") // selection highlight
	slateGray = lipgloss.Color("#6B7280") // secondary text and hints
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(burgundy).
			Bold(true).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(parchment).
			Bold(true).
			Padding(0, 1)

	hintStyle = lipgloss.NewStyle().
			Foreground(slateGray).
			Padding(0, 1)

	searchBoxStyle = lipgloss.NewStyle().
			Foreground(parchment).
			Padding(0, 1)

	resultStyle = lipgloss.NewStyle().
			Foreground(parchment)

	selectedResultStyle = lipgloss.NewStyle().
				Foreground(oliveGold).
				Bold(true)

	separatorStyle = lipgloss.NewStyle().
			Foreground(slateGray)
)
