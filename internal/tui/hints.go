package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Hint represents a single keybind hint for display.
type Hint struct {
	Key  string // Display key (e.g., "a", "Enter")
	Desc string // Short description (e.g., "add", "confirm")
}

// renderHint renders a single hint as "key:desc" with styling.
func (a App) renderHint(h Hint) string {
	return a.styles.HintKey.Render(h.Key) + ":" + a.styles.HintDesc.Render(h.Desc)
}

// renderHints renders hints in horizontal format for bottom bar: "tab:next a:add q:quit"
func (a App) renderHints(hints HintSet) string {
	allHints := hints.All()
	if len(allHints) == 0 {
		return ""
	}

	parts := make([]string, len(allHints))
	for i, h := range allHints {
		parts[i] = a.renderHint(h)
	}
	return strings.Join(parts, " ")
}

// renderHintsInline renders hints in inline format for modals: "Enter confirm  Esc cancel"
func (a App) renderHintsInline(hints []Hint) string {
	if len(hints) == 0 {
		return ""
	}

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = a.styles.HintKey.Render(h.Key) + " " + a.styles.HintDesc.Render(h.Desc)
	}
	return strings.Join(parts, "  ")
}

// HintSet is an ordered collection of hints by group.
type HintSet struct {
	Nav    []Hint // Focus and selection hints
	Edit   []Hint // Grid editing hints (copy, fill, remove)
	Action []Hint // Action hints (Enter, /)
	System []Hint // System hints (h, q, Esc)
}

// All returns all hints flattened in display order: Nav + Action + Edit + System.
func (h HintSet) All() []Hint {
	result := make([]Hint, 0, len(h.Nav)+len(h.Action)+len(h.Edit)+len(h.System))
	result = append(result, h.Nav...)
	result = append(result, h.Action...)
	result = append(result, h.Edit...)
	result = append(result, h.System...)
	return result
}

// getContextualHints returns the appropriate hints for the current mode.
func (a App) getContextualHints() HintSet {
	switch a.mode {
	case ModeNormal:
		return a.getNormalModeHints()
	case ModeAdd:
		return HintSet{
			Action: []Hint{{Key: "Enter", Desc: "add"}},
			System: []Hint{{Key: "Esc", Desc: "cancel"}},
		}
	case ModeFind:
		return HintSet{
			Nav:    []Hint{{Key: "↑/↓", Desc: "move"}},
			Action: []Hint{{Key: "Enter", Desc: "focus"}},
			System: []Hint{{Key: "Esc", Desc: "cancel"}},
		}
	default:
		return HintSet{}
	}
}

// hint labels a binding with its own help key and a short description.
func hint(b key.Binding, desc string) Hint {
	return Hint{Key: b.Help().Key, Desc: desc}
}

// getNormalModeHints returns hints for the grid. With nothing loaded only
// the ways in are shown; with errors pending the dismiss key is added.
func (a App) getNormalModeHints() HintSet {
	k := a.keys
	system := []Hint{hint(k.Help, "help"), hint(k.Quit, "quit")}
	if len(a.store.Errors) > 0 {
		system = append([]Hint{hint(k.DismissErrors, "dismiss errors")}, system...)
	}

	if a.store.Len() == 0 {
		return HintSet{Action: []Hint{hint(k.Add, "add")}, System: system}
	}

	edit := []Hint{hint(k.Copy, "copy"), hint(k.Fill, "fill"), hint(k.Distribute, "spread"), hint(k.Grab, "grab")}
	if a.store.DragSourceID != "" {
		edit = []Hint{hint(k.Grab, "drop after focus")}
	}
	return HintSet{
		Nav:    []Hint{hint(k.Next, "next"), hint(k.Find, "find")},
		Action: []Hint{hint(k.Add, "add")},
		Edit:   edit,
		System: system,
	}
}
