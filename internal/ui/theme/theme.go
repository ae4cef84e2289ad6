// Package theme holds the colors and lipgloss styles of the terminal
// renderer.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette. Bright, with enough contrast on dark and light terminals.
var (
	Primary   = lipgloss.Color("#8B5CF6") // purple
	Secondary = lipgloss.Color("#14B8A6") // teal
	Accent    = lipgloss.Color("#F97316") // orange
	Star      = lipgloss.Color("#FACC15") // yellow
	Success   = lipgloss.Color("#22C55E")
	Error     = lipgloss.Color("#F43F5E")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	Border    = lipgloss.Color("#334155")
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Prompt = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	// OptionIndex styles the "1." in front of a choice.
	OptionIndex = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// Blank marks the value the child has to find.
	Blank = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	Stars = lipgloss.NewStyle().
		Foreground(Star)
)

// Boxes.
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	// GridFrame surrounds a drawn grid.
	GridFrame = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(Border)

	Tile = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	TileSelected = Tile.
			BorderForeground(Primary).
			Bold(true)

	TileMatched = Tile.
			BorderForeground(Success).
			Foreground(TextDim)
)

// Answer states.
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)
