package model

// MediaHandle is the live playback element behind a loaded display.
// The media engine owns it; the store reads position and duration and
// forwards seek, rate and mute requests, but never manages its lifecycle.
type MediaHandle interface {
	Position() float64
	Duration() float64
	Seek(t float64)
	SetRate(rate float64)
	SetMuted(muted bool)
}
