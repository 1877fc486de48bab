package media

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nikbrunner/vidgrid/internal/model"
)

// Engine owns the players of every loaded display, keyed by display ID.
// Load may run on any goroutine; everything else belongs to the UI loop.
type Engine struct {
	prober  Prober
	players map[string]*Player
	logger  *log.Logger
}

// EngineParams holds parameters for creating an Engine.
type EngineParams struct {
	Prober Prober
	Logger *log.Logger
}

// NewEngine creates an Engine. A nil prober falls back to ffprobe on $PATH.
func NewEngine(p EngineParams) *Engine {
	prober := p.Prober
	if prober == nil {
		prober = FFProbe{}
	}
	logger := p.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{
		prober:  prober,
		players: make(map[string]*Player),
		logger:  logger,
	}
}

// Load checks that src is playable and probes its metadata.
func (e *Engine) Load(ctx context.Context, src model.Source) (Metadata, error) {
	if !Supported(src.MIMEType, src.Path) {
		return Metadata{}, fmt.Errorf("%s (%s): %w", src.Name, src.TypeLabel(), ErrUnsupported)
	}
	meta, err := e.prober.Probe(ctx, src.Path)
	if err != nil {
		return Metadata{}, fmt.Errorf("load %s: %w", src.Name, err)
	}
	return meta, nil
}

// Open creates the player for display id, replacing any previous one.
func (e *Engine) Open(id string, meta Metadata) *Player {
	p := NewPlayer(meta)
	e.players[id] = p
	e.logger.Debug("player opened", "id", id, "duration", meta.Duration)
	return p
}

// Release drops the player for display id.
func (e *Engine) Release(id string) {
	if _, ok := e.players[id]; ok {
		delete(e.players, id)
		e.logger.Debug("player released", "id", id)
	}
}

// Len returns the number of open players.
func (e *Engine) Len() int {
	return len(e.players)
}

// Advance moves every loaded display's player forward by dt and sends it
// back to the in point when it leaves the loop region.
func (e *Engine) Advance(displays []model.Display, dt time.Duration) {
	for _, d := range displays {
		p := e.players[d.ID]
		if p == nil || d.Media == nil {
			continue
		}
		p.Advance(dt)
		if t, jump := d.LoopTarget(p.Position()); jump {
			p.Seek(t)
		}
	}
}

// Prune releases players whose display is no longer in displays and
// returns how many were released.
func (e *Engine) Prune(displays []model.Display) int {
	live := make(map[string]struct{}, len(displays))
	for _, d := range displays {
		live[d.ID] = struct{}{}
	}

	released := 0
	for id := range e.players {
		if _, ok := live[id]; !ok {
			e.Release(id)
			released++
		}
	}
	return released
}

// NativeRatios returns the native aspect ratio of every loaded display that
// reported frame dimensions.
func (e *Engine) NativeRatios(displays []model.Display) []float64 {
	var ratios []float64
	for _, d := range displays {
		if p := e.players[d.ID]; p != nil && p.aspect > 0 {
			ratios = append(ratios, p.aspect)
		}
	}
	return ratios
}
