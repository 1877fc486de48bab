package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/vidgrid/internal/model"
)

// KeyMap defines all key bindings for the application.
type KeyMap struct {
	Help          key.Binding
	Fit           key.Binding
	Thumbnails    key.Binding
	Aspect        key.Binding
	Add           key.Binding
	Find          key.Binding
	Next          key.Binding
	Prev          key.Binding
	Copy          key.Binding
	Fill          key.Binding
	Distribute    key.Binding
	Isolate       key.Binding
	In            key.Binding
	Out           key.Binding
	Mute          key.Binding
	Remove        key.Binding
	Back          key.Binding
	Forward       key.Binding
	BackPercent   key.Binding
	FwdPercent    key.Binding
	Slower        key.Binding
	Faster        key.Binding
	SyncRates     key.Binding
	Grab          key.Binding
	Yank          key.Binding
	DismissErrors key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "help"),
		),
		Fit: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "fit mode"),
		),
		Thumbnails: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "timelines"),
		),
		Aspect: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "aspect ratio"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add files"),
		),
		Find: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "find"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy"),
		),
		Fill: key.NewBinding(
			key.WithKeys("2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("2-9", "fill grid"),
		),
		Distribute: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "distribute"),
		),
		Isolate: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "isolate"),
		),
		In: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "in point"),
		),
		Out: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "out point"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Remove: key.NewBinding(
			key.WithKeys("r", "delete"),
			key.WithHelp("r/del", "remove"),
		),
		Back: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "-60s"),
		),
		Forward: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "+60s"),
		),
		BackPercent: key.NewBinding(
			key.WithKeys("shift+left"),
			key.WithHelp("S-←", "-10%"),
		),
		FwdPercent: key.NewBinding(
			key.WithKeys("shift+right"),
			key.WithHelp("S-→", "+10%"),
		),
		Slower: key.NewBinding(
			key.WithKeys("ctrl+left"),
			key.WithHelp("C-←", "half speed"),
		),
		Faster: key.NewBinding(
			key.WithKeys("ctrl+right"),
			key.WithHelp("C-→", "double speed"),
		),
		SyncRates: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "sync rates"),
		),
		Grab: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "grab/drop"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yank path"),
		),
		DismissErrors: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "dismiss errors"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Find, k.Fill, k.Distribute, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap. Columns are grouped by what they act on.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Find, k.Next, k.Prev, k.Grab, k.Yank, k.Remove, k.Isolate},
		{k.Copy, k.Fill, k.Distribute, k.In, k.Out, k.Mute},
		{k.Back, k.Forward, k.BackPercent, k.FwdPercent, k.Slower, k.Faster, k.SyncRates},
		{k.Aspect, k.Fit, k.Thumbnails, k.DismissErrors, k.Help, k.Quit},
	}
}

// intentBinding maps one key binding to the intent it dispatches.
// Scoped intents act on the active display.
type intentBinding struct {
	binding key.Binding
	intent  model.Intent
	scoped  bool
}

// intentBindings builds the static key to intent table.
func intentBindings(k KeyMap) []intentBinding {
	return []intentBinding{
		{binding: k.Help, intent: model.Intent{Kind: model.IntentToggleHelp}},
		{binding: k.Fit, intent: model.Intent{Kind: model.IntentNextFit}},
		{binding: k.Thumbnails, intent: model.Intent{Kind: model.IntentToggleThumbnails}},
		{binding: k.Aspect, intent: model.Intent{Kind: model.IntentNextAspect}},
		{binding: k.DismissErrors, intent: model.Intent{Kind: model.IntentDismissErrors}},
		{binding: k.Copy, intent: model.Intent{Kind: model.IntentCopy}, scoped: true},
		{binding: k.Fill, intent: model.Intent{Kind: model.IntentFill}, scoped: true},
		{binding: k.Distribute, intent: model.Intent{Kind: model.IntentDistribute}, scoped: true},
		{binding: k.Isolate, intent: model.Intent{Kind: model.IntentIsolate}, scoped: true},
		{binding: k.In, intent: model.Intent{Kind: model.IntentToggleInOut, Marker: model.MarkerIn}, scoped: true},
		{binding: k.Out, intent: model.Intent{Kind: model.IntentToggleInOut, Marker: model.MarkerOut}, scoped: true},
		{binding: k.Mute, intent: model.Intent{Kind: model.IntentToggleMute}, scoped: true},
		{binding: k.Remove, intent: model.Intent{Kind: model.IntentRemove}, scoped: true},
		{binding: k.Back, intent: model.Intent{Kind: model.IntentSkip, Seconds: -60}, scoped: true},
		{binding: k.Forward, intent: model.Intent{Kind: model.IntentSkip, Seconds: 60}, scoped: true},
		{binding: k.BackPercent, intent: model.Intent{Kind: model.IntentSkipFraction, Fraction: -0.1}, scoped: true},
		{binding: k.FwdPercent, intent: model.Intent{Kind: model.IntentSkipFraction, Fraction: 0.1}, scoped: true},
		{binding: k.Slower, intent: model.Intent{Kind: model.IntentAdjustRate, Factor: 0.5}, scoped: true},
		{binding: k.Faster, intent: model.Intent{Kind: model.IntentAdjustRate, Factor: 2}, scoped: true},
		{binding: k.SyncRates, intent: model.Intent{Kind: model.IntentSyncRates}, scoped: true},
		{binding: k.Grab, intent: model.Intent{Kind: model.IntentGrab}, scoped: true},
	}
}

// intentFor looks msg up in the table and fills in the active display.
// scoped reports whether the intent acts on the active display.
func intentFor(table []intentBinding, msg tea.KeyMsg, activeID string) (in model.Intent, scoped, ok bool) {
	for _, b := range table {
		if !key.Matches(msg, b.binding) {
			continue
		}
		in = b.intent
		if b.scoped {
			in.ID = activeID
		}
		if in.Kind == model.IntentFill {
			n, err := strconv.Atoi(msg.String())
			if err != nil {
				return model.Intent{}, false, false
			}
			in.Count = n
		}
		return in, b.scoped, true
	}
	return model.Intent{}, false, false
}
