package media

import (
	"math"
	"time"
)

// Player is a clock-driven playback head for one display. It loops at the
// end of the clip, like an autoplaying looped video element.
type Player struct {
	position float64
	duration float64
	rate     float64
	muted    bool
	aspect   float64
}

// NewPlayer creates a muted player at position 0 playing at normal speed.
func NewPlayer(meta Metadata) *Player {
	return &Player{duration: meta.Duration, rate: 1, muted: true, aspect: meta.AspectRatio()}
}

func (p *Player) Position() float64 { return p.position }
func (p *Player) Duration() float64 { return p.duration }
func (p *Player) Rate() float64     { return p.rate }
func (p *Player) Muted() bool       { return p.muted }

// AspectRatio is the native frame ratio, 0 when the probe did not report one.
func (p *Player) AspectRatio() float64 { return p.aspect }

// Seek moves the playhead, wrapping into the clip.
func (p *Player) Seek(t float64) {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return
	}
	p.position = p.wrap(t)
}

// SetRate changes the playback speed. Non-positive rates are ignored.
func (p *Player) SetRate(rate float64) {
	if rate > 0 && !math.IsInf(rate, 0) {
		p.rate = rate
	}
}

func (p *Player) SetMuted(muted bool) {
	p.muted = muted
}

// Advance moves the playhead by dt of wall time scaled by the rate.
func (p *Player) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	p.position = p.wrap(p.position + dt.Seconds()*p.rate)
}

func (p *Player) wrap(t float64) float64 {
	if p.duration <= 0 {
		return 0
	}
	t = math.Mod(t, p.duration)
	if t < 0 {
		t += p.duration
	}
	return t
}
