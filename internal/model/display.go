package model

import "math"

// Display is one cell of the grid: a source plus its playback settings.
type Display struct {
	ID           string
	Source       Source
	PlaybackRate float64
	In           *float64 // loop start, nil = unset
	Out          *float64 // loop end, nil = unset
	StartHint    *float64 // one-shot seek target for the first load
	Muted        bool

	// Media is nil until the media engine reports metadata.
	Media MediaHandle
}

// NewDisplay creates a fresh Display for src with a generated ID.
func NewDisplay(src Source) Display {
	return Display{
		ID:           generateUUID(),
		Source:       src,
		PlaybackRate: 1,
		Muted:        true,
	}
}

// Loaded reports whether a media handle is attached.
func (d Display) Loaded() bool {
	return d.Media != nil
}

// Position returns the live playback position, 0 when not loaded.
func (d Display) Position() float64 {
	if d.Media == nil {
		return 0
	}
	return d.Media.Position()
}

// liveDuration returns the media duration when it is loaded and usable.
func (d Display) liveDuration() (float64, bool) {
	if d.Media == nil {
		return 0, false
	}
	duration := d.Media.Duration()
	if duration <= 0 || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return 0, false
	}
	return duration, true
}

// LoopTarget applies the in/out loop region to position.
// It returns the position playback should jump to and whether a jump is needed:
// past the out point or before the in point playback restarts at the in point
// (or 0 without one). An out point at or before the in point is ignored.
func (d Display) LoopTarget(position float64) (float64, bool) {
	out := d.Out
	if out != nil && d.In != nil && *out <= *d.In {
		out = nil
	}

	pastOut := out != nil && position > *out
	beforeIn := d.In != nil && position < *d.In
	if !pastOut && !beforeIn {
		return position, false
	}
	if d.In != nil {
		return *d.In, true
	}
	return 0, true
}

// InitialPosition returns where a display starts once its duration is known:
// the start hint wrapped into the duration, or the midpoint for fresh loads.
func InitialPosition(d Display, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	if d.StartHint != nil {
		return wrapTime(*d.StartHint, duration)
	}
	return duration / 2
}

// wrapTime folds t into [0, duration).
func wrapTime(t, duration float64) float64 {
	r := math.Mod(t, duration)
	if r < 0 {
		r += duration
	}
	return r
}
