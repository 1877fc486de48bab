package tui

import tea "github.com/charmbracelet/bubbletea"

// PendingLoads starts loading every display without media, as Init does,
// without the playback clock.
func (a App) PendingLoads() tea.Cmd {
	return a.loadPending()
}
