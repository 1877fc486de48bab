package model

import (
	"math"
	"slices"
)

// Marker selects the in or the out point of a display's loop region.
type Marker int

const (
	MarkerIn Marker = iota
	MarkerOut
)

func (m Marker) String() string {
	if m == MarkerOut {
		return "out"
	}
	return "in"
}

// Add appends a fresh display for each source and returns the new IDs.
// Fresh displays have no start hint; they begin at their midpoint once loaded.
func (s *Store) Add(sources ...Source) []string {
	ids := make([]string, 0, len(sources))
	for _, src := range sources {
		d := NewDisplay(src)
		s.Displays = append(s.Displays, d)
		ids = append(ids, d.ID)
	}

	s.FirstLoad = false
	if len(ids) > 0 {
		s.HelpVisible = false
	}
	return ids
}

// Copy appends a copy of the display with id, starting CopyOffset seconds
// ahead of it. The source must be loaded so its position can be read.
func (s *Store) Copy(id string) (string, bool) {
	ids := s.AddCopies(id, 1)
	if len(ids) == 0 {
		return "", false
	}
	return ids[0], true
}

// AddCopies appends count copies of the display with id.
// The source position is read once; every copy gets the same start hint.
func (s *Store) AddCopies(id string, count int) []string {
	if count <= 0 {
		return nil
	}
	src := s.GetDisplayByID(id)
	if src == nil {
		return nil
	}
	duration, ok := src.liveDuration()
	if !ok {
		return nil
	}

	hint := wrapTime(src.Media.Position()+s.CopyOffset, duration)
	base := *src

	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		c := base.derive(hint)
		s.Displays = append(s.Displays, c)
		ids = append(ids, c.ID)
	}
	return ids
}

// derive creates an unloaded copy sharing the source and playback rate.
func (d Display) derive(hint float64) Display {
	c := NewDisplay(d.Source)
	c.PlaybackRate = d.PlaybackRate
	c.StartHint = &hint
	return c
}

// Remove deletes the display with id and clears selection pointing at it.
func (s *Store) Remove(id string) bool {
	i := s.IndexOf(id)
	if i < 0 {
		return false
	}
	s.Displays = slices.Delete(s.Displays, i, i+1)
	s.forget(id)
	return true
}

// Isolate discards every display except id and makes it active.
func (s *Store) Isolate(id string) bool {
	i := s.IndexOf(id)
	if i < 0 {
		return false
	}
	s.Displays = []Display{s.Displays[i]}
	s.ActiveID = id
	s.DragSourceID = ""
	return true
}

// Reorder moves movingID to sit immediately after targetID.
// An unknown target moves it to the end.
func (s *Store) Reorder(movingID, targetID string) bool {
	if movingID == targetID {
		return false
	}
	from := s.IndexOf(movingID)
	if from < 0 {
		return false
	}

	moving := s.Displays[from]
	rest := slices.Delete(slices.Clone(s.Displays), from, from+1)

	to := len(rest)
	for i := range rest {
		if rest[i].ID == targetID {
			to = i + 1
			break
		}
	}
	s.Displays = slices.Insert(rest, to, moving)
	return true
}

// ToggleInOut sets the in or out point to the live position, or clears it
// when already set. Requires a loaded display.
func (s *Store) ToggleInOut(id string, marker Marker) bool {
	d := s.GetDisplayByID(id)
	if d == nil || d.Media == nil {
		return false
	}

	slot := &d.In
	if marker == MarkerOut {
		slot = &d.Out
	}
	if *slot != nil {
		*slot = nil
		return true
	}
	pos := d.Media.Position()
	*slot = &pos
	return true
}

// AdjustPlaybackRate multiplies the display's rate by factor.
// Repeated calls compound; no clamp is applied, but a step that would leave
// the rate zero or infinite is ignored.
func (s *Store) AdjustPlaybackRate(id string, factor float64) bool {
	if !validRate(factor) {
		return false
	}
	d := s.GetDisplayByID(id)
	if d == nil {
		return false
	}
	next := d.PlaybackRate * factor
	if !validRate(next) {
		return false
	}
	d.PlaybackRate = next
	if d.Media != nil {
		d.Media.SetRate(d.PlaybackRate)
	}
	return true
}

// SyncPlaybackRates sets every display to rate.
func (s *Store) SyncPlaybackRates(rate float64) bool {
	if !validRate(rate) {
		return false
	}
	for i := range s.Displays {
		d := &s.Displays[i]
		d.PlaybackRate = rate
		if d.Media != nil {
			d.Media.SetRate(rate)
		}
	}
	return true
}

func validRate(r float64) bool {
	return r > 0 && !math.IsInf(r, 0)
}

// HandleLoadError moves the display with id to the error list.
func (s *Store) HandleLoadError(id string) bool {
	i := s.IndexOf(id)
	if i < 0 {
		return false
	}
	d := s.Displays[i]
	d.Media = nil
	s.Displays = slices.Delete(s.Displays, i, i+1)
	s.Errors = append(s.Errors, d)
	s.forget(id)
	return true
}

// DismissErrors clears the error list.
func (s *Store) DismissErrors() {
	s.Errors = []Display{}
}

// SetActive focuses the display with id. Unknown ids leave focus unchanged.
func (s *Store) SetActive(id string) bool {
	if s.IndexOf(id) < 0 {
		return false
	}
	s.ActiveID = id
	return true
}

// ClearActive removes focus.
func (s *Store) ClearActive() {
	s.ActiveID = ""
}

// SetDragSource marks the display with id as being relocated.
func (s *Store) SetDragSource(id string) bool {
	if s.IndexOf(id) < 0 {
		return false
	}
	s.DragSourceID = id
	return true
}

// DropOn moves the drag source after targetID and ends the drag.
func (s *Store) DropOn(targetID string) bool {
	src := s.DragSourceID
	s.DragSourceID = ""
	if src == "" {
		return false
	}
	return s.Reorder(src, targetID)
}

// AttachMedia records the media handle once the engine reports metadata,
// pushes rate and mute to it and performs the initial seek.
// It returns false when the display is gone, so the caller can release the handle.
func (s *Store) AttachMedia(id string, h MediaHandle) bool {
	d := s.GetDisplayByID(id)
	if d == nil || h == nil {
		return false
	}
	d.Media = h
	h.SetRate(d.PlaybackRate)
	h.SetMuted(d.Muted)
	h.Seek(InitialPosition(*d, h.Duration()))
	d.StartHint = nil
	return true
}

// Skip seeks the display by seconds, wrapping around its duration.
func (s *Store) Skip(id string, seconds float64) bool {
	d := s.GetDisplayByID(id)
	if d == nil {
		return false
	}
	duration, ok := d.liveDuration()
	if !ok {
		return false
	}
	d.Media.Seek(wrapTime(d.Media.Position()+seconds, duration))
	return true
}

// SkipFraction seeks the display by a fraction of its duration.
func (s *Store) SkipFraction(id string, fraction float64) bool {
	d := s.GetDisplayByID(id)
	if d == nil {
		return false
	}
	duration, ok := d.liveDuration()
	if !ok {
		return false
	}
	return s.Skip(id, duration*fraction)
}

// ToggleMute flips the mute flag of the display with id.
func (s *Store) ToggleMute(id string) bool {
	d := s.GetDisplayByID(id)
	if d == nil {
		return false
	}
	d.Muted = !d.Muted
	if d.Media != nil {
		d.Media.SetMuted(d.Muted)
	}
	return true
}
