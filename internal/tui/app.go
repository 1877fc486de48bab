package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nikbrunner/vidgrid/internal/config"
	"github.com/nikbrunner/vidgrid/internal/importer"
	"github.com/nikbrunner/vidgrid/internal/media"
	"github.com/nikbrunner/vidgrid/internal/model"
	"github.com/nikbrunner/vidgrid/internal/tui/layout"
)

// Mode is what the keyboard is currently talking to.
type Mode int

const (
	ModeNormal Mode = iota
	ModeAdd
	ModeFind
)

// MessageType selects the styling of the status message.
type MessageType int

const (
	MessageInfo MessageType = iota
	MessageSuccess
	MessageWarning
	MessageError
)

type tickMsg time.Time

// mediaLoadedMsg and mediaErrorMsg are the replies of a display's load command.
type mediaLoadedMsg struct {
	id   string
	meta media.Metadata
}

type mediaErrorMsg struct {
	id  string
	err error
}

// App is the main bubbletea model. Update is the only place the store is
// mutated: keys, mouse events and load replies all become intents there.
type App struct {
	ctx          context.Context
	store        *model.Store
	engine       *media.Engine
	config       *config.Config
	logger       *log.Logger
	keys         KeyMap
	bindings     []intentBinding
	styles       Styles
	layoutConfig layout.LayoutConfig
	help         help.Model
	copyText     func(string) error

	mode   Mode
	add    AddState
	finder FinderState

	// Display IDs with a load command in flight.
	pending map[string]bool

	messageText string
	messageType MessageType

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Context      context.Context         // optional, cancels load commands
	Store        *model.Store            // optional, empty store if nil
	Engine       *media.Engine           // optional, built from Config if nil
	Config       *config.Config          // optional, uses default if nil
	Logger       *log.Logger             // optional, discards if nil
	Keys         *KeyMap                 // optional, uses default if nil
	Styles       *Styles                 // optional, uses default if nil
	LayoutConfig *layout.LayoutConfig    // optional, uses default if nil
	Clipboard    func(text string) error // optional, system clipboard if nil
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	ctx := params.Context
	if ctx == nil {
		ctx = context.Background()
	}

	store := params.Store
	if store == nil {
		store = model.NewStore()
	}

	cfg := params.Config
	if cfg == nil {
		defaults := config.DefaultConfig()
		cfg = &defaults
	}

	logger := params.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	engine := params.Engine
	if engine == nil {
		engine = media.NewEngine(media.EngineParams{Prober: cfg.NewProber(), Logger: logger})
	}

	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	layoutCfg := layout.DefaultConfig()
	if params.LayoutConfig != nil {
		layoutCfg = *params.LayoutConfig
	}

	copyText := params.Clipboard
	if copyText == nil {
		copyText = clipboard.WriteAll
	}

	app := App{
		ctx:          ctx,
		store:        store,
		engine:       engine,
		config:       cfg,
		logger:       logger,
		keys:         keys,
		bindings:     intentBindings(keys),
		styles:       styles,
		layoutConfig: layoutCfg,
		help:         help.New(),
		copyText:     copyText,
		add:          NewAddState(layoutCfg),
		finder:       NewFinderState(layoutCfg),
		pending:      make(map[string]bool),
	}
	return app.WithDimensions(80, 24)
}

// WithDimensions returns a copy of the app sized to the terminal.
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	a.help.Width = width
	a.store.Apply(model.Intent{Kind: model.IntentResize, Width: width, Height: height})
	return a
}

// Store returns the display store.
func (a App) Store() *model.Store {
	return a.store
}

// Engine returns the media engine.
func (a App) Engine() *media.Engine {
	return a.engine
}

// Mode returns the current input mode.
func (a App) Mode() Mode {
	return a.mode
}

// Message returns the current status message.
func (a App) Message() (string, MessageType) {
	return a.messageText, a.messageType
}

// Grid solves the layout for the current terminal size.
func (a App) Grid() layout.Grid {
	viewport := layout.TerminalViewport(a.store.Viewport.Width, a.store.Viewport.Height, a.layoutConfig.Grid)
	return layout.SolveGrid(a.store.AspectRatio().Ratio, a.store.Len(), viewport)
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.tick(), a.loadPending())
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a.WithDimensions(msg.Width, msg.Height), nil

	case tickMsg:
		a.engine.Advance(a.store.Displays, a.config.Tick())
		return a, a.tick()

	case mediaLoadedMsg:
		cmd := a.handleLoaded(msg)
		return a, cmd

	case mediaErrorMsg:
		cmd := a.handleLoadError(msg)
		return a, cmd

	case tea.MouseMsg:
		if a.mode != ModeNormal || !a.gridVisible() {
			return a, nil
		}
		cmd := a.handleMouse(msg)
		return a, cmd

	case tea.KeyMsg:
		switch a.mode {
		case ModeAdd:
			return a.handleAddMode(msg)
		case ModeFind:
			return a.handleFindMode(msg)
		}
		return a.handleNormalMode(msg)
	}

	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}

func (a App) tick() tea.Cmd {
	return tea.Tick(a.config.Tick(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// dispatch applies in to the store, releases players of displays that are
// gone and starts loading displays that are new.
func (a *App) dispatch(in model.Intent) (tea.Cmd, bool) {
	if !a.store.Apply(in) {
		a.logger.Debug("intent ignored", "intent", in.Kind, "id", in.ID)
		return nil, false
	}
	a.logger.Debug("intent applied", "intent", in.Kind, "id", in.ID, "count", a.store.Len())

	if released := a.engine.Prune(a.store.Displays); released > 0 {
		a.logger.Debug("players released", "count", released)
	}
	return a.loadPending(), true
}

// loadPending issues one load command per display that has no media yet.
func (a App) loadPending() tea.Cmd {
	var cmds []tea.Cmd
	for _, d := range a.store.Displays {
		if d.Loaded() || a.pending[d.ID] {
			continue
		}
		a.pending[d.ID] = true
		cmds = append(cmds, a.loadCmd(d))
	}
	return tea.Batch(cmds...)
}

func (a App) loadCmd(d model.Display) tea.Cmd {
	ctx, engine, id, src := a.ctx, a.engine, d.ID, d.Source
	return func() tea.Msg {
		meta, err := engine.Load(ctx, src)
		if err != nil {
			return mediaErrorMsg{id: id, err: err}
		}
		return mediaLoadedMsg{id: id, meta: meta}
	}
}

func (a *App) handleLoaded(msg mediaLoadedMsg) tea.Cmd {
	delete(a.pending, msg.id)

	player := a.engine.Open(msg.id, msg.meta)
	if !a.store.AttachMedia(msg.id, player) {
		// Removed while loading.
		a.engine.Release(msg.id)
		return nil
	}
	if d := a.store.GetDisplayByID(msg.id); d != nil {
		a.logger.Info("media loaded", "id", msg.id, "path", d.Source.Path, "duration", msg.meta.Duration)
	}

	if a.config.AutoAspect {
		if i, ok := model.RecommendAspect(a.engine.NativeRatios(a.store.Displays)); ok {
			cmd, _ := a.dispatch(model.Intent{Kind: model.IntentSetAspect, Count: i})
			return cmd
		}
	}
	return nil
}

func (a *App) handleLoadError(msg mediaErrorMsg) tea.Cmd {
	delete(a.pending, msg.id)

	d := a.store.GetDisplayByID(msg.id)
	if d == nil {
		return nil
	}
	name := d.Source.Name
	a.logger.Warn("load failed", "id", msg.id, "path", d.Source.Path, "err", msg.err)

	cmd, _ := a.dispatch(model.Intent{Kind: model.IntentLoadError, ID: msg.id})
	a.setMessage(MessageError, "Could not play "+name)
	return cmd
}

func (a App) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.clearMessage()

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Add):
		a.mode = ModeAdd
		a.add.Reset()
		cmd := a.add.Input.Focus()
		return a, cmd

	case key.Matches(msg, a.keys.Find):
		if a.store.Len() == 0 {
			a.setMessage(MessageWarning, "Nothing to find")
			return a, nil
		}
		a.mode = ModeFind
		a.finder.Reset()
		a.finder.Refresh(a.store.Displays)
		cmd := a.finder.Input.Focus()
		return a, cmd

	case key.Matches(msg, a.keys.Next):
		cmd := a.cycleFocus(1)
		return a, cmd

	case key.Matches(msg, a.keys.Prev):
		cmd := a.cycleFocus(-1)
		return a, cmd

	case key.Matches(msg, a.keys.Yank):
		a.yankActive()
		return a, nil
	}

	in, scoped, ok := intentFor(a.bindings, msg, a.store.ActiveID)
	if !ok {
		return a, nil
	}
	if scoped && a.store.Active() == nil {
		a.setMessage(MessageWarning, "No display focused (Tab or hover one)")
		return a, nil
	}
	if scoped && !a.gridVisible() {
		a.setMessage(MessageWarning, a.gridHiddenReason())
		return a, nil
	}

	cmd, changed := a.dispatch(in)
	if !changed && scoped {
		if d := a.store.Active(); d != nil && !d.Loaded() {
			a.setMessage(MessageWarning, "Still loading: "+d.Source.Name)
		}
	}
	if changed {
		a.confirm(in)
	}
	return a, cmd
}

// confirm reports the outcome of intents whose effect is not obvious on screen.
func (a *App) confirm(in model.Intent) {
	switch in.Kind {
	case model.IntentFill:
		a.setMessage(MessageSuccess, fmt.Sprintf("Filled %d cells", in.Count))
	case model.IntentSyncRates:
		if d := a.store.Active(); d != nil {
			a.setMessage(MessageSuccess, fmt.Sprintf("All rates set to %s", formatRate(d.PlaybackRate)))
		}
	case model.IntentDismissErrors:
		a.setMessage(MessageInfo, "Errors dismissed")
	case model.IntentNextAspect:
		a.setMessage(MessageInfo, a.store.AspectRatio().Name)
	case model.IntentNextFit:
		a.setMessage(MessageInfo, "Fit: "+string(a.store.FitMode()))
	}
}

// cycleFocus moves the active display by delta in grid order, wrapping.
func (a *App) cycleFocus(delta int) tea.Cmd {
	n := a.store.Len()
	if n == 0 {
		return nil
	}

	i := a.store.IndexOf(a.store.ActiveID)
	switch {
	case i < 0 && delta > 0:
		i = 0
	case i < 0:
		i = n - 1
	default:
		i = ((i+delta)%n + n) % n
	}
	cmd, _ := a.dispatch(model.Intent{Kind: model.IntentSetActive, ID: a.store.Displays[i].ID})
	return cmd
}

func (a *App) yankActive() {
	d := a.store.Active()
	if d == nil {
		a.setMessage(MessageWarning, "No display focused")
		return
	}
	if err := a.copyText(d.Source.Path); err != nil {
		a.logger.Error("clipboard write failed", "err", err)
		a.setMessage(MessageError, "Clipboard: "+err.Error())
		return
	}
	a.setMessage(MessageSuccess, "Yanked: "+d.Source.Path)
}

func (a App) handleAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.mode = ModeNormal
		a.add.Input.Blur()
		return a, nil

	case tea.KeyEnter:
		value := a.add.Input.Value()
		a.mode = ModeNormal
		a.add.Input.Blur()
		cmd := a.addFromInput(value)
		return a, cmd
	}

	var cmd tea.Cmd
	a.add.Input, cmd = a.add.Input.Update(msg)
	return a, cmd
}

// addFromInput resolves the typed or dropped paths and adds one display each.
func (a *App) addFromInput(value string) tea.Cmd {
	var args []string
	for _, p := range importer.SplitDropped(value) {
		if strings.TrimSpace(p) != "" {
			args = append(args, p)
		}
	}
	if len(args) == 0 {
		return nil
	}

	sources, err := importer.Resolve(args)
	if err != nil {
		a.logger.Warn("add failed", "input", value, "err", err)
		a.setMessage(MessageError, err.Error())
		return nil
	}
	if len(sources) == 0 {
		a.setMessage(MessageWarning, "No videos found")
		return nil
	}

	cmd, _ := a.dispatch(model.Intent{Kind: model.IntentAdd, Sources: sources})
	a.logger.Info("sources added", "count", len(sources))
	if len(sources) == 1 {
		a.setMessage(MessageSuccess, "Added "+sources[0].Name)
	} else {
		a.setMessage(MessageSuccess, fmt.Sprintf("Added %d videos", len(sources)))
	}
	return cmd
}

func (a App) handleFindMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.mode = ModeNormal
		a.finder.Input.Blur()
		return a, nil

	case tea.KeyEnter:
		a.mode = ModeNormal
		a.finder.Input.Blur()
		if r, ok := a.finder.Selected(); ok {
			cmd, _ := a.dispatch(model.Intent{Kind: model.IntentSetActive, ID: r.ID})
			return a, cmd
		}
		return a, nil

	case tea.KeyUp, tea.KeyCtrlP:
		a.finder.Move(-1)
		return a, nil

	case tea.KeyDown, tea.KeyCtrlN:
		a.finder.Move(1)
		return a, nil
	}

	var cmd tea.Cmd
	a.finder.Input, cmd = a.finder.Input.Update(msg)
	a.finder.Refresh(a.store.Displays)
	return a, cmd
}

// gridVisible reports whether the body shows the grid rather than the help
// overlay or the errors panel.
func (a App) gridVisible() bool {
	return !a.store.HelpVisible && len(a.store.Errors) == 0
}

func (a App) gridHiddenReason() string {
	if a.store.HelpVisible {
		return "Grid hidden (h closes help)"
	}
	return "Grid hidden (X dismisses errors)"
}

// handleMouse maps pointer events onto grid cells. Motion focuses the cell
// under the pointer, a left press grabs it and the release drops it after
// the cell the pointer ends on.
func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	idx := layout.TerminalCellAt(a.Grid(), msg.X, msg.Y, a.layoutConfig.Grid)
	id := ""
	if idx >= 0 {
		id = a.store.Displays[idx].ID
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		if id == "" {
			cmd, _ := a.dispatch(model.Intent{Kind: model.IntentClearActive})
			return cmd
		}
		cmd, _ := a.dispatch(model.Intent{Kind: model.IntentSetActive, ID: id})
		return cmd

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || id == "" {
			return nil
		}
		focus, _ := a.dispatch(model.Intent{Kind: model.IntentSetActive, ID: id})
		// Picks the cell up, or drops a pending keyboard grab after it.
		grab, _ := a.dispatch(model.Intent{Kind: model.IntentGrab, ID: id})
		return tea.Batch(focus, grab)

	case tea.MouseActionRelease:
		src := a.store.DragSourceID
		if src == "" {
			return nil
		}
		if id == "" {
			// Released outside the grid: grabbing the source again cancels.
			id = src
		}
		cmd, _ := a.dispatch(model.Intent{Kind: model.IntentGrab, ID: id})
		return cmd
	}
	return nil
}

func (a *App) setMessage(t MessageType, text string) {
	a.messageType = t
	a.messageText = text
}

func (a *App) clearMessage() {
	a.messageText = ""
	a.messageType = MessageInfo
}
