// Package picker is a small standalone selector for the pick command.
package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nikbrunner/vidgrid/internal/model"
	"github.com/nikbrunner/vidgrid/internal/search"
)

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"})

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}).
			Italic(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}).
			Bold(true).
			MarginBottom(1)
)

var keys = struct {
	up, down, pick, cancel key.Binding
}{
	up:     key.NewBinding(key.WithKeys("k", "up", "ctrl+p")),
	down:   key.NewBinding(key.WithKeys("j", "down", "ctrl+n")),
	pick:   key.NewBinding(key.WithKeys("enter")),
	cancel: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
}

// Picker is a simple TUI for choosing one display from fuzzy search results.
type Picker struct {
	displays  []model.Display
	results   []search.Result
	query     string
	cursor    int
	selected  bool
	cancelled bool
	width     int
	height    int
}

// New runs query against displays and creates a Picker over the matches.
func New(displays []model.Display, query string) Picker {
	return Picker{
		displays: displays,
		results:  search.FuzzyFindDisplays(displays, query),
		query:    query,
		cursor:   0,
		width:    80,
		height:   24,
	}
}

// Len returns the number of matches.
func (p Picker) Len() int {
	return len(p.results)
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.cancel):
			p.cancelled = true
			return p, tea.Quit
		case key.Matches(msg, keys.pick):
			p.selected = true
			return p, tea.Quit
		case key.Matches(msg, keys.down):
			p.move(1)
		case key.Matches(msg, keys.up):
			p.move(-1)
		}
	}
	return p, nil
}

func (p *Picker) move(delta int) {
	p.cursor = min(max(p.cursor+delta, 0), max(len(p.results)-1, 0))
}

// View implements tea.Model.
func (p Picker) View() string {
	header := headerStyle.Render(fmt.Sprintf("Pick: %s (%d results)", p.query, len(p.results)))

	// Two lines per result; header and footer take five.
	visible := max((p.height-5)/2, 1)
	start := max(p.cursor-visible+1, 0)
	end := min(start+visible, len(p.results))

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, p.renderRow(i))
	}

	footer := pathStyle.Render("j/k: move  Enter: pick  q/Esc: cancel")
	return lipgloss.JoinVertical(lipgloss.Left, header, "", strings.Join(rows, "\n"), "", footer)
}

func (p Picker) renderRow(i int) string {
	result := p.results[i]
	marker, style := "  ", normalStyle
	if i == p.cursor {
		marker, style = "> ", selectedStyle
	}
	path := p.displays[result.Index].Source.Path
	return marker + style.Render(result.Name) + "\n   " + pathStyle.Render(path)
}

// Selected returns the chosen display, or nil if cancelled.
func (p Picker) Selected() *model.Display {
	if p.cancelled || !p.selected {
		return nil
	}
	if p.cursor < len(p.results) {
		return &p.displays[p.results[p.cursor].Index]
	}
	return nil
}

// Best returns the top-scoring match, or nil when nothing matched.
func (p Picker) Best() *model.Display {
	if len(p.results) == 0 {
		return nil
	}
	return &p.displays[p.results[0].Index]
}

// Cancelled returns true if the user cancelled the selection.
func (p Picker) Cancelled() bool {
	return p.cancelled
}
