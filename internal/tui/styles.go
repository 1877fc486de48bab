package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	Header       lipgloss.Style
	Cell         lipgloss.Style
	CellActive   lipgloss.Style
	CellGrabbed  lipgloss.Style
	Title        lipgloss.Style
	Name         lipgloss.Style
	Clock        lipgloss.Style
	Badge        lipgloss.Style
	Timeline     lipgloss.Style
	ItemSelected lipgloss.Style
	Match        lipgloss.Style
	Help         lipgloss.Style
	Empty        lipgloss.Style
	Status       lipgloss.Style
	HintKey      lipgloss.Style // Key portion of hints (e.g., "a", "2-9")
	HintDesc     lipgloss.Style // Description portion of hints (e.g., "add", "fill")
	HintLabel    lipgloss.Style
	TableHeader  lipgloss.Style
	TableCell    lipgloss.Style
}

// DefaultStyles returns the default style configuration.
// Industrial design: grayscale with single desaturated teal accent.
func DefaultStyles() Styles {
	// Industrial color palette
	primary := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"} // main text
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}  // secondary text
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}  // desaturated teal
	border := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#505050"}  // inactive borders

	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(subtle),

		Cell: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border),

		CellActive: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(accent),

		CellGrabbed: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(accent),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Name: lipgloss.NewStyle().
			Foreground(primary),

		Clock: lipgloss.NewStyle().
			Foreground(subtle),

		Badge: lipgloss.NewStyle().
			Foreground(accent),

		Timeline: lipgloss.NewStyle().
			Foreground(subtle),

		ItemSelected: lipgloss.NewStyle().
			Background(accent).
			Foreground(lipgloss.Color("#1A1A1A")),

		Match: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Help: lipgloss.NewStyle().
			Foreground(subtle).
			Padding(1, 0),

		Empty: lipgloss.NewStyle().
			Foreground(subtle),

		Status: lipgloss.NewStyle().
			Foreground(primary),

		HintKey: lipgloss.NewStyle().
			Foreground(subtle),

		HintDesc: lipgloss.NewStyle().
			Foreground(subtle),

		HintLabel: lipgloss.NewStyle().
			Foreground(accent),

		TableHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Padding(0, 1),

		TableCell: lipgloss.NewStyle().
			Foreground(primary).
			Padding(0, 1),
	}
}
