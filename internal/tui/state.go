package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/nikbrunner/vidgrid/internal/model"
	"github.com/nikbrunner/vidgrid/internal/search"
	"github.com/nikbrunner/vidgrid/internal/tui/layout"
)

// AddState holds state for the add-files prompt. Dropping files onto a
// terminal pastes their paths, so the prompt doubles as the drop target.
type AddState struct {
	Input textinput.Model
}

// NewAddState creates a new AddState with initialized input.
func NewAddState(cfg layout.LayoutConfig) AddState {
	input := textinput.New()
	input.Placeholder = "/path/to/video.mp4, a folder or a playlist"
	input.CharLimit = cfg.Input.PathCharLimit
	input.Width = cfg.Input.PathWidth

	return AddState{Input: input}
}

// Reset clears the prompt for a new session.
func (s *AddState) Reset() {
	s.Input.Reset()
}

// FinderState holds state for the fuzzy finder.
type FinderState struct {
	Input   textinput.Model
	Results []search.Result
	Cursor  int
}

// NewFinderState creates a new FinderState with initialized input.
func NewFinderState(cfg layout.LayoutConfig) FinderState {
	input := textinput.New()
	input.Placeholder = "file name"
	input.CharLimit = cfg.Input.SearchCharLimit
	input.Width = cfg.Input.SearchWidth

	return FinderState{Input: input}
}

// Reset clears the query and the results.
func (s *FinderState) Reset() {
	s.Input.Reset()
	s.Results = nil
	s.Cursor = 0
}

// Refresh reruns the query against displays and keeps the cursor in range.
func (s *FinderState) Refresh(displays []model.Display) {
	s.Results = search.FuzzyFindDisplays(displays, s.Input.Value())
	if s.Cursor >= len(s.Results) {
		s.Cursor = max(len(s.Results)-1, 0)
	}
}

// Move shifts the cursor by delta, clamped to the results.
func (s *FinderState) Move(delta int) {
	if len(s.Results) == 0 {
		s.Cursor = 0
		return
	}
	s.Cursor = min(max(s.Cursor+delta, 0), len(s.Results)-1)
}

// Selected returns the result under the cursor.
func (s FinderState) Selected() (search.Result, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Results) {
		return search.Result{}, false
	}
	return s.Results[s.Cursor], true
}
