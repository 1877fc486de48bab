package media_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gotest.tools/v3/assert"

	"github.com/nikbrunner/vidgrid/internal/media"
	"github.com/nikbrunner/vidgrid/internal/model"
)

func newEngine() *media.Engine {
	return media.NewEngine(media.EngineParams{
		Prober: media.StaticProber{
			Meta:     media.Metadata{Duration: 100, Width: 1280, Height: 720},
			Failures: map[string]error{"/broken.mp4": errors.New("moov atom not found")},
		},
	})
}

func addLoaded(t *testing.T, s *model.Store, e *media.Engine, path string) string {
	t.Helper()
	src := model.NewSource(model.NewSourceParams{Path: path, MIMEType: "video/mp4"})
	id := s.Add(src)[0]

	meta, err := e.Load(context.Background(), src)
	assert.NilError(t, err)
	assert.Assert(t, s.AttachMedia(id, e.Open(id, meta)))
	return id
}

func TestEngine_Load(t *testing.T) {
	e := newEngine()

	tests := []struct {
		name    string
		src     model.Source
		wantErr error
	}{
		{"video", model.Source{Path: "/a.mp4", Name: "a.mp4", MIMEType: "video/mp4"}, nil},
		{"sniffed as text", model.Source{Path: "/a.txt", Name: "a.txt", MIMEType: "text/plain"}, media.ErrUnsupported},
		{"no type, no extension", model.Source{Path: "/a", Name: "a"}, media.ErrUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Load(context.Background(), tt.src)
			if tt.wantErr == nil {
				assert.NilError(t, err)
				return
			}
			assert.Assert(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestEngine_LoadProbeFailure(t *testing.T) {
	e := newEngine()

	_, err := e.Load(context.Background(), model.Source{Path: "/broken.mp4", Name: "broken.mp4", MIMEType: "video/mp4"})

	assert.ErrorContains(t, err, "moov atom not found")
}

func TestEngine_AttachStartsAtMidpoint(t *testing.T) {
	s := model.NewStore()
	e := newEngine()

	id := addLoaded(t, s, e, "/a.mp4")

	assert.Equal(t, s.GetDisplayByID(id).Position(), 50.0)
	assert.Equal(t, e.Len(), 1)
}

func TestEngine_Advance(t *testing.T) {
	s := model.NewStore()
	e := newEngine()
	id := addLoaded(t, s, e, "/a.mp4")
	s.AdjustPlaybackRate(id, 2)

	e.Advance(s.Displays, 3*time.Second)

	assert.Equal(t, s.GetDisplayByID(id).Position(), 56.0)
}

func TestEngine_AdvanceHonoursLoop(t *testing.T) {
	s := model.NewStore()
	e := newEngine()
	id := addLoaded(t, s, e, "/a.mp4")
	p := s.GetDisplayByID(id).Media

	p.Seek(40)
	s.ToggleInOut(id, model.MarkerIn)
	p.Seek(45)
	s.ToggleInOut(id, model.MarkerOut)

	e.Advance(s.Displays, 2*time.Second)
	assert.Equal(t, p.Position(), 40.0, "past the out point jumps back to in")

	// Outside the region (e.g. after a seek) playback returns to the in point.
	p.Seek(10)
	e.Advance(s.Displays, time.Second)
	assert.Equal(t, p.Position(), 40.0)
}

func TestEngine_SkipsUnloaded(t *testing.T) {
	s := model.NewStore()
	e := newEngine()
	s.Add(model.NewSource(model.NewSourceParams{Path: "/a.mp4"}))

	e.Advance(s.Displays, time.Second)

	assert.Equal(t, e.Len(), 0)
}

func TestEngine_Prune(t *testing.T) {
	s := model.NewStore()
	e := newEngine()
	a := addLoaded(t, s, e, "/a.mp4")
	b := addLoaded(t, s, e, "/b.mp4")

	s.Remove(a)
	released := e.Prune(s.Displays)

	assert.Equal(t, released, 1)
	assert.Equal(t, e.Len(), 1)
	assert.Equal(t, e.Prune(s.Displays), 0, "%s still has its player", b)
}

func TestEngine_NativeRatios(t *testing.T) {
	s := model.NewStore()
	e := newEngine()
	addLoaded(t, s, e, "/a.mp4")
	s.Add(model.NewSource(model.NewSourceParams{Path: "/b.mp4"}))

	ratios := e.NativeRatios(s.Displays)

	assert.DeepEqual(t, ratios, []float64{1280.0 / 720.0})
}
