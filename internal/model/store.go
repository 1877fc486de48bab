package model

// DefaultCopyOffset is how far ahead of its source a copy starts, in seconds.
const DefaultCopyOffset = 60

// Viewport is the drawable area reported by the presentation layer.
type Viewport struct {
	Width  int
	Height int
}

// Store holds the ordered displays and the session's transient state.
// It is mutated only from one dispatch point (the TUI update loop);
// operations on ids that no longer exist are no-ops.
type Store struct {
	Displays []Display
	Errors   []Display // displays that failed to load, kept for diagnostics

	ActiveID     string // hovered/focused display, "" = none
	DragSourceID string // display being relocated, "" = none

	Viewport          Viewport
	Aspect            int // index into AspectRatios
	Fit               int // index into FitModes
	HelpVisible       bool
	ThumbnailsVisible bool
	FirstLoad         bool

	CopyOffset float64
}

// NewStore creates an empty Store with the default session settings.
func NewStore() *Store {
	return &Store{
		Displays:          []Display{},
		Errors:            []Display{},
		HelpVisible:       true,
		ThumbnailsVisible: true,
		FirstLoad:         true,
		CopyOffset:        DefaultCopyOffset,
	}
}

// Len returns the number of displays in the grid.
func (s *Store) Len() int {
	return len(s.Displays)
}

// IndexOf returns the position of the display with id, or -1.
func (s *Store) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.Displays {
		if s.Displays[i].ID == id {
			return i
		}
	}
	return -1
}

// GetDisplayByID finds a display by ID, returns nil if not found.
func (s *Store) GetDisplayByID(id string) *Display {
	i := s.IndexOf(id)
	if i < 0 {
		return nil
	}
	return &s.Displays[i]
}

// Active returns the active display, or nil.
func (s *Store) Active() *Display {
	return s.GetDisplayByID(s.ActiveID)
}

// forget clears selection state that points at id.
func (s *Store) forget(id string) {
	if s.ActiveID == id {
		s.ActiveID = ""
	}
	if s.DragSourceID == id {
		s.DragSourceID = ""
	}
}
