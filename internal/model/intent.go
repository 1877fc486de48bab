package model

// IntentKind names one operation of the closed set the store understands.
type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentAdd
	IntentCopy
	IntentAddCopies
	IntentFill
	IntentRemove
	IntentIsolate
	IntentReorder
	IntentToggleInOut
	IntentAdjustRate
	IntentSyncRates
	IntentLoadError
	IntentDismissErrors
	IntentDistribute
	IntentSkip
	IntentSkipFraction
	IntentToggleMute
	IntentSetActive
	IntentClearActive
	IntentGrab
	IntentNextAspect
	IntentSetAspect
	IntentNextFit
	IntentToggleHelp
	IntentToggleThumbnails
	IntentResize
)

var intentNames = map[IntentKind]string{
	IntentNone:             "none",
	IntentAdd:              "add",
	IntentCopy:             "copy",
	IntentAddCopies:        "add-copies",
	IntentFill:             "fill",
	IntentRemove:           "remove",
	IntentIsolate:          "isolate",
	IntentReorder:          "reorder",
	IntentToggleInOut:      "toggle-in-out",
	IntentAdjustRate:       "adjust-rate",
	IntentSyncRates:        "sync-rates",
	IntentLoadError:        "load-error",
	IntentDismissErrors:    "dismiss-errors",
	IntentDistribute:       "distribute",
	IntentSkip:             "skip",
	IntentSkipFraction:     "skip-fraction",
	IntentToggleMute:       "toggle-mute",
	IntentSetActive:        "set-active",
	IntentClearActive:      "clear-active",
	IntentGrab:             "grab",
	IntentNextAspect:       "next-aspect",
	IntentSetAspect:        "set-aspect",
	IntentNextFit:          "next-fit",
	IntentToggleHelp:       "toggle-help",
	IntentToggleThumbnails: "toggle-thumbnails",
	IntentResize:           "resize",
}

func (k IntentKind) String() string {
	if name, ok := intentNames[k]; ok {
		return name
	}
	return "unknown"
}

// Intent is a request to mutate the store. Only the fields the kind needs
// are read: ID is the display acted on (usually the active one).
type Intent struct {
	Kind     IntentKind
	ID       string
	TargetID string
	Marker   Marker
	Factor   float64 // rate factor, or the absolute rate for IntentSyncRates
	Count    int     // copies to add, or the aspect index for IntentSetAspect
	Seconds  float64
	Fraction float64
	Sources  []Source
	Width    int
	Height   int
}

// Apply runs the operation named by in and reports whether anything changed.
func (s *Store) Apply(in Intent) bool {
	switch in.Kind {
	case IntentAdd:
		return len(s.Add(in.Sources...)) > 0
	case IntentCopy:
		_, ok := s.Copy(in.ID)
		return ok
	case IntentAddCopies:
		return len(s.AddCopies(in.ID, in.Count)) > 0
	case IntentFill:
		// A grid of Count cells: the display itself plus Count-1 copies, spread out.
		if len(s.AddCopies(in.ID, in.Count-1)) == 0 {
			return false
		}
		s.DistributeTimes(in.ID)
		return true
	case IntentRemove:
		return s.Remove(in.ID)
	case IntentIsolate:
		return s.Isolate(in.ID)
	case IntentReorder:
		return s.Reorder(in.ID, in.TargetID)
	case IntentToggleInOut:
		return s.ToggleInOut(in.ID, in.Marker)
	case IntentAdjustRate:
		return s.AdjustPlaybackRate(in.ID, in.Factor)
	case IntentSyncRates:
		rate := in.Factor
		if rate == 0 {
			d := s.GetDisplayByID(in.ID)
			if d == nil {
				return false
			}
			rate = d.PlaybackRate
		}
		return s.SyncPlaybackRates(rate)
	case IntentLoadError:
		return s.HandleLoadError(in.ID)
	case IntentDismissErrors:
		if len(s.Errors) == 0 {
			return false
		}
		s.DismissErrors()
		return true
	case IntentDistribute:
		return s.DistributeTimes(in.ID)
	case IntentSkip:
		return s.Skip(in.ID, in.Seconds)
	case IntentSkipFraction:
		return s.SkipFraction(in.ID, in.Fraction)
	case IntentToggleMute:
		return s.ToggleMute(in.ID)
	case IntentSetActive:
		return s.SetActive(in.ID)
	case IntentClearActive:
		if s.ActiveID == "" {
			return false
		}
		s.ClearActive()
		return true
	case IntentGrab:
		if s.DragSourceID == "" {
			return s.SetDragSource(in.ID)
		}
		if s.DragSourceID == in.ID {
			s.DragSourceID = ""
			return true
		}
		return s.DropOn(in.ID)
	case IntentNextAspect:
		s.NextAspect()
		return true
	case IntentSetAspect:
		if in.Count == s.Aspect {
			return false
		}
		return s.SetAspect(in.Count)
	case IntentNextFit:
		s.NextFit()
		return true
	case IntentToggleHelp:
		s.ToggleHelp()
		return true
	case IntentToggleThumbnails:
		s.ToggleThumbnails()
		return true
	case IntentResize:
		s.SetViewport(in.Width, in.Height)
		return true
	}
	return false
}
