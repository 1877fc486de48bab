package model_test

import (
	"math"
	"testing"

	"github.com/nikbrunner/vidgrid/internal/model"
)

// fakeMedia is a MediaHandle whose position only moves when seeked.
type fakeMedia struct {
	pos   float64
	dur   float64
	rate  float64
	muted bool
	seeks []float64
}

func (f *fakeMedia) Position() float64    { return f.pos }
func (f *fakeMedia) Duration() float64    { return f.dur }
func (f *fakeMedia) SetRate(rate float64) { f.rate = rate }
func (f *fakeMedia) SetMuted(muted bool)  { f.muted = muted }

func (f *fakeMedia) Seek(t float64) {
	f.pos = t
	f.seeks = append(f.seeks, t)
}

func floatPtr(f float64) *float64 { return &f }

func source(path string) model.Source {
	return model.NewSource(model.NewSourceParams{Path: path, MIMEType: "video/mp4"})
}

func ids(displays []model.Display) []string {
	out := make([]string, len(displays))
	for i, d := range displays {
		out[i] = d.ID
	}
	return out
}

// load attaches a fake handle without the initial seek AttachMedia performs.
func load(t *testing.T, s *model.Store, id string, pos, dur float64) *fakeMedia {
	t.Helper()
	d := s.GetDisplayByID(id)
	if d == nil {
		t.Fatalf("display %s not found", id)
	}
	m := &fakeMedia{pos: pos, dur: dur, rate: 1}
	d.Media = m
	return m
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewSource(t *testing.T) {
	src := model.NewSource(model.NewSourceParams{Path: "/videos/clip one.mp4", MIMEType: "video/mp4", Size: 42})

	if src.Name != "clip one.mp4" {
		t.Errorf("Name = %q, want %q", src.Name, "clip one.mp4")
	}
	if got := src.URL(); got != "file:///videos/clip%20one.mp4" {
		t.Errorf("URL() = %q", got)
	}
	if got := (model.Source{}).TypeLabel(); got != "unknown" {
		t.Errorf("TypeLabel() of empty source = %q, want unknown", got)
	}
}

func TestStore_Add(t *testing.T) {
	s := model.NewStore()
	added := s.Add(source("/a.mp4"), source("/b.mp4"))

	if len(added) != 2 || s.Len() != 2 {
		t.Fatalf("expected 2 displays, got %d (ids %v)", s.Len(), added)
	}
	if added[0] == added[1] {
		t.Error("displays must get distinct ids")
	}
	for _, d := range s.Displays {
		if d.PlaybackRate != 1 {
			t.Errorf("fresh display rate = %v, want 1", d.PlaybackRate)
		}
		if d.In != nil || d.Out != nil || d.StartHint != nil {
			t.Errorf("fresh display should have no in/out/hint: %+v", d)
		}
		if d.Loaded() {
			t.Error("fresh display should not be loaded")
		}
	}
	if s.HelpVisible {
		t.Error("adding files should hide help")
	}
	if s.FirstLoad {
		t.Error("adding files should clear FirstLoad")
	}

	// Appends preserve order.
	more := s.Add(source("/c.mp4"))
	want := append(added, more...)
	if !equalIDs(ids(s.Displays), want) {
		t.Errorf("order = %v, want %v", ids(s.Displays), want)
	}
}

func TestStore_Add_NothingKeepsHelp(t *testing.T) {
	s := model.NewStore()
	s.Add()
	if !s.HelpVisible {
		t.Error("empty add should keep help visible")
	}
}

func TestStore_Copy_WrapsOffset(t *testing.T) {
	tests := []struct {
		name     string
		position float64
		duration float64
		wantHint float64
	}{
		{"middle of clip", 50, 100, 10},
		{"near end wraps", 99, 100, 59},
		{"short clip wraps more than once", 10, 25, 20},
		{"start of clip", 0, 600, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := model.NewStore()
			id := s.Add(source("/a.mp4"))[0]
			load(t, s, id, tt.position, tt.duration)

			copyID, ok := s.Copy(id)
			if !ok {
				t.Fatal("Copy returned false for a loaded display")
			}
			c := s.GetDisplayByID(copyID)
			if c.StartHint == nil || *c.StartHint != tt.wantHint {
				t.Errorf("StartHint = %v, want %v", c.StartHint, tt.wantHint)
			}
			if s.Displays[1].ID != copyID {
				t.Error("copy should be appended at the end")
			}
		})
	}
}

func TestStore_Copy_InheritsSourceAndRate(t *testing.T) {
	s := model.NewStore()
	id := s.Add(source("/a.mp4"))[0]
	load(t, s, id, 5, 100)
	s.AdjustPlaybackRate(id, 2)
	s.ToggleInOut(id, model.MarkerIn)

	copyID, _ := s.Copy(id)
	c := s.GetDisplayByID(copyID)

	if c.ID == id {
		t.Fatal("copy must get a new id")
	}
	if c.Source != s.Displays[0].Source {
		t.Error("copy should share the source")
	}
	if c.PlaybackRate != 2 {
		t.Errorf("copy rate = %v, want 2", c.PlaybackRate)
	}
	if c.In != nil || c.Loaded() {
		t.Error("copy should start without loop points and unloaded")
	}
}

func TestStore_Copy_NoOps(t *testing.T) {
	s := model.NewStore()
	id := s.Add(source("/a.mp4"))[0]

	if _, ok := s.Copy("missing"); ok {
		t.Error("copy of missing id should be a no-op")
	}
	if _, ok := s.Copy(id); ok {
		t.Error("copy of unloaded display should be a no-op")
	}
	load(t, s, id, 10, 0)
	if _, ok := s.Copy(id); ok {
		t.Error("copy without a known duration should be a no-op")
	}
	if s.Len() != 1 {
		t.Errorf("expected collection unchanged, got %d displays", s.Len())
	}
}

func TestStore_AddCopies_SameBaseOffset(t *testing.T) {
	s := model.NewStore()
	id := s.Add(source("/a.mp4"))[0]
	load(t, s, id, 30, 100)

	copies := s.AddCopies(id, 3)
	if len(copies) != 3 || s.Len() != 4 {
		t.Fatalf("expected 3 copies appended, got %d (len %d)", len(copies), s.Len())
	}

	seen := map[string]bool{id: true}
	for _, cid := range copies {
		if seen[cid] {
			t.Errorf("duplicate id %s", cid)
		}
		seen[cid] = true

		c := s.GetDisplayByID(cid)
		if c.StartHint == nil || *c.StartHint != 90 {
			t.Errorf("copy %s hint = %v, want 90", cid, c.StartHint)
		}
	}

	// Hints are independent values.
	*s.GetDisplayByID(copies[0]).StartHint = 1
	if *s.GetDisplayByID(copies[1]).StartHint != 90 {
		t.Error("copies must not share a hint pointer")
	}

	if got := s.AddCopies(id, 0); got != nil {
		t.Errorf("AddCopies(0) = %v, want nil", got)
	}
}

func TestStore_Remove(t *testing.T) {
	s := model.NewStore()
	added := s.Add(source("/a.mp4"), source("/b.mp4"), source("/c.mp4"))
	s.SetActive(added[1])
	s.SetDragSource(added[1])

	if !s.Remove(added[1]) {
		t.Fatal("Remove returned false for existing display")
	}
	if !equalIDs(ids(s.Displays), []string{added[0], added[2]}) {
		t.Errorf("order after remove = %v", ids(s.Displays))
	}
	if s.ActiveID != "" || s.DragSourceID != "" {
		t.Error("removing the active display should clear active and drag source")
	}

	// Second remove is a no-op.
	before := ids(s.Displays)
	if s.Remove(added[1]) {
		t.Error("second Remove should report no change")
	}
	if !equalIDs(ids(s.Displays), before) {
		t.Error("second Remove changed the collection")
	}
}

func TestStore_Remove_KeepsOtherActive(t *testing.T) {
	s := model.NewStore()
	added := s.Add(source("/a.mp4"), source("/b.mp4"))
	s.SetActive(added[0])
	s.Remove(added[1])

	if s.ActiveID != added[0] {
		t.Errorf("ActiveID = %q, want %q", s.ActiveID, added[0])
	}
}

func TestStore_Isolate(t *testing.T) {
	s := model.NewStore()
	added := s.Add(source("/a.mp4"), source("/b.mp4"), source("/c.mp4"))

	if !s.Isolate(added[1]) {
		t.Fatal("Isolate returned false")
	}
	if s.Len() != 1 || s.Displays[0].ID != added[1] {
		t.Errorf("Isolate left %v, want only %s", ids(s.Displays), added[1])
	}
	if s.ActiveID != added[1] {
		t.Errorf("ActiveID = %q, want %q", s.ActiveID, added[1])
	}

	if s.Isolate("missing") {
		t.Error("Isolate of missing id should be a no-op")
	}
	if s.Len() != 1 {
		t.Error("Isolate of missing id changed the collection")
	}
}

func TestStore_Reorder(t *testing.T) {
	tests := []struct {
		name   string
		moving int
		target int // -1 = unknown id
		want   []int
	}{
		{"forward after target", 0, 2, []int{1, 2, 0, 3}},
		{"backward after target", 3, 0, []int{0, 3, 1, 2}},
		{"after neighbour", 1, 2, []int{0, 2, 1, 3}},
		{"already after target", 2, 1, []int{0, 1, 2, 3}},
		{"unknown target goes to end", 1, -1, []int{0, 2, 3, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := model.NewStore()
			added := s.Add(source("/a.mp4"), source("/b.mp4"), source("/c.mp4"), source("/d.mp4"))

			target := "missing"
			if tt.target >= 0 {
				target = added[tt.target]
			}
			if !s.Reorder(added[tt.moving], target) {
				t.Fatal("Reorder returned false")
			}

			want := make([]string, len(tt.want))
			for i, idx := range tt.want {
				want[i] = added[idx]
			}
			if !equalIDs(ids(s.Displays), want) {
				t.Errorf("order = %v, want %v", ids(s.Displays), want)
			}
		})
	}
}

func TestStore_Reorder_NoOps(t *testing.T) {
	s := model.NewStore()
	added := s.Add(source("/a.mp4"), source("/b.mp4"))

	if s.Reorder("missing", added[0]) {
		t.Error("Reorder of missing id should be a no-op")
	}
	if s.Reorder(added[0], added[0]) {
		t.Error("Reorder onto itself should be a no-op")
	}
	if !equalIDs(ids(s.Displays), added) {
		t.Error("no-op reorders changed the collection")
	}
}

func TestStore_ToggleInOut(t *testing.T) {
	s := model.NewStore()
	id := s.Add(source("/a.mp4"))[0]

	if s.ToggleInOut(id, model.MarkerIn) {
		t.Error("ToggleInOut on unloaded display should be a no-op")
	}

	m := load(t, s, id, 12, 100)
	s.ToggleInOut(id, model.MarkerIn)
	m.pos = 40
	s.ToggleInOut(id, model.MarkerOut)

	d := s.GetDisplayByID(id)
	if d.In == nil || *d.In != 12 {
		t.Errorf("In = %v, want 12", d.In)
	}
	if d.Out == nil || *d.Out != 40 {
		t.Errorf("Out = %v, want 40", d.Out)
	}

	s.ToggleInOut(id, model.MarkerIn)
	if d.In != nil {
		t.Error("second toggle should clear the in point")
	}
	if d.Out == nil {
		t.Error("clearing in should leave out untouched")
	}
}

func TestStore_AdjustPlaybackRate_Compounds(t *testing.T) {
	s := model.NewStore()
	id := s.Add(source("/a.mp4"))[0]
	m := load(t, s, id, 0, 100)

	s.AdjustPlaybackRate(id, 0.5)
	s.AdjustPlaybackRate(id, 0.5)

	if got := s.GetDisplayByID(id).PlaybackRate; got != 0.25 {
		t.Errorf("rate after two halvings = %v, want 0.25", got)
	}
	if m.rate != 0.25 {
		t.Errorf("media rate = %v, want 0.25", m.rate)
	}

	for _, factor := range []float64{0, -2} {
		if s.AdjustPlaybackRate(id, factor) {
			t.Errorf("factor %v should be ignored", factor)
		}
	}
	if s.AdjustPlaybackRate("missing", 2) {
		t.Error("missing id should be a no-op")
	}
}

func TestStore_AdjustPlaybackRate_StaysPositive(t *testing.T) {
	s := model.NewStore()
	id := s.Add(source("/a.mp4"))[0]
	m := load(t, s, id, 0, 100)

	for range 1100 {
		s.AdjustPlaybackRate(id, 0.5)
	}
	d := s.GetDisplayByID(id)
	if d.PlaybackRate <= 0 {
		t.Fatalf("rate after repeated halving = %v, want > 0", d.PlaybackRate)
	}
	if s.AdjustPlaybackRate(id, 0.5) {
		t.Error("halving the smallest rate should be ignored")
	}
	if m.rate != d.PlaybackRate {
		t.Errorf("media rate = %v, store rate = %v", m.rate, d.PlaybackRate)
	}

	slowest := d.PlaybackRate
	if !s.AdjustPlaybackRate(id, 2) || d.PlaybackRate <= slowest {
		t.Errorf("doubling from %v gave %v", slowest, d.PlaybackRate)
	}

	for range 3000 {
		s.AdjustPlaybackRate(id, 2)
	}
	if math.IsInf(d.PlaybackRate, 0) || d.PlaybackRate <= 1 {
		t.Errorf("rate after repeated doubling = %v, want finite and > 1", d.PlaybackRate)
	}
	if m.rate != d.PlaybackRate {
		t.Errorf("media rate = %v, store rate = %v", m.rate, d.PlaybackRate)
	}
}

func TestStore_SyncPlaybackRates(t *testing.T) {
	s := model.NewStore()
	added := s.Add(source("/a.mp4"), source("/b.mp4"), source("/c.mp4"))
	s.AdjustPlaybackRate(added[0], 0.5)
	s.AdjustPlaybackRate(added[1], 4)
	m := load(t, s, added[2], 0, 10)

	s.SyncPlaybackRates(2)

	for _, d := range s.Displays {
		if d.PlaybackRate != 2 {
			t.Errorf("display %s rate = %v, want 2", d.ID, d.PlaybackRate)
		}
	}
	if m.rate != 2 {
		t.Errorf("loaded media rate = %v, want 2", m.rate)
	}
}

func TestStore_HandleLoadError(t *testing.T) {
	s := model.NewStore()
	added := s.Add(source("/a.mp4"), source("/broken.txt"))
	s.SetActive(added[1])

	if !s.HandleLoadError(added[1]) {
		t.Fatal("HandleLoadError returned false")
	}
	if s.Len() != 1 || s.Displays[0].ID != added[0] {
		t.Errorf("displays = %v, want only %s", ids(s.Displays), added[0])
	}
	if len(s.Errors) != 1 || s.Errors[0].ID != added[1] {
		t.Fatalf("errors = %v, want %s", ids(s.Errors), added[1])
	}
	if s.Errors[0].Source.Name != "broken.txt" {
		t.Errorf("error entry lost its source: %+v", s.Errors[0].Source)
	}
	if s.ActiveID != "" {
		t.Error("failed display should no longer be active")
	}

	// A late callback for the same id is a no-op.
	if s.HandleLoadError(added[1]) {
		t.Error("second HandleLoadError should be a no-op")
	}

	s.DismissErrors()
	if len(s.Errors) != 0 {
		t.Errorf("DismissErrors left %d entries", len(s.Errors))
	}
}

func TestStore_DragAndDrop(t *testing.T) {
	s := model.NewStore()
	added := s.Add(source("/a.mp4"), source("/b.mp4"), source("/c.mp4"))

	if s.DropOn(added[2]) {
		t.Error("drop without a drag source should be a no-op")
	}

	s.SetDragSource(added[0])
	if !s.DropOn(added[2]) {
		t.Fatal("DropOn returned false")
	}
	if !equalIDs(ids(s.Displays), []string{added[1], added[2], added[0]}) {
		t.Errorf("order = %v", ids(s.Displays))
	}
	if s.DragSourceID != "" {
		t.Error("drop should end the drag")
	}
}

func TestStore_AttachMedia(t *testing.T) {
	s := model.NewStore()
	id := s.Add(source("/a.mp4"))[0]
	m := &fakeMedia{dur: 200}

	if !s.AttachMedia(id, m) {
		t.Fatal("AttachMedia returned false")
	}
	if m.pos != 100 {
		t.Errorf("fresh load should seek to midpoint, got %v", m.pos)
	}
	if !m.muted || m.rate != 1 {
		t.Errorf("handle should get rate 1 and muted, got rate %v muted %v", m.rate, m.muted)
	}

	if s.AttachMedia("gone", &fakeMedia{dur: 10}) {
		t.Error("AttachMedia for a removed display should report false")
	}
}

func TestStore_AttachMedia_UsesHintOnce(t *testing.T) {
	s := model.NewStore()
	id := s.Add(source("/a.mp4"))[0]
	load(t, s, id, 50, 100)
	copyID, _ := s.Copy(id)

	m := &fakeMedia{dur: 100}
	s.AttachMedia(copyID, m)

	if m.pos != 10 {
		t.Errorf("copy should start at its hint 10, got %v", m.pos)
	}
	if s.GetDisplayByID(copyID).StartHint != nil {
		t.Error("start hint should be consumed by the first load")
	}
}

func TestStore_Skip(t *testing.T) {
	s := model.NewStore()
	id := s.Add(source("/a.mp4"))[0]
	m := load(t, s, id, 90, 100)

	s.Skip(id, 60)
	if m.pos != 50 {
		t.Errorf("skip past end should wrap, got %v", m.pos)
	}
	s.Skip(id, -60)
	if m.pos != 90 {
		t.Errorf("skip before start should wrap, got %v", m.pos)
	}
	s.SkipFraction(id, 0.1)
	if m.pos != 0 {
		t.Errorf("skip 10%% from 90 of 100 should land on 0, got %v", m.pos)
	}
}

func TestStore_ToggleMute(t *testing.T) {
	s := model.NewStore()
	id := s.Add(source("/a.mp4"))[0]
	m := load(t, s, id, 0, 10)
	m.muted = true

	s.ToggleMute(id)
	if s.GetDisplayByID(id).Muted || m.muted {
		t.Error("toggle should unmute display and media")
	}
}

func TestDisplay_LoopTarget(t *testing.T) {
	tests := []struct {
		name     string
		in, out  *float64
		position float64
		want     float64
		jump     bool
	}{
		{"no loop region", nil, nil, 50, 50, false},
		{"inside region", floatPtr(10), floatPtr(20), 15, 15, false},
		{"past out returns to in", floatPtr(10), floatPtr(20), 21, 10, true},
		{"before in jumps to in", floatPtr(10), nil, 5, 10, true},
		{"past out without in restarts", nil, floatPtr(20), 25, 0, true},
		{"out before in is ignored", floatPtr(30), floatPtr(20), 40, 40, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := model.Display{In: tt.in, Out: tt.out}
			got, jump := d.LoopTarget(tt.position)
			if got != tt.want || jump != tt.jump {
				t.Errorf("LoopTarget(%v) = (%v, %v), want (%v, %v)",
					tt.position, got, jump, tt.want, tt.jump)
			}
		})
	}
}

func TestInitialPosition(t *testing.T) {
	tests := []struct {
		name     string
		hint     *float64
		duration float64
		want     float64
	}{
		{"fresh load starts at midpoint", nil, 120, 60},
		{"hint is used", floatPtr(30), 120, 30},
		{"zero hint is a hint", floatPtr(0), 120, 0},
		{"hint wraps", floatPtr(130), 120, 10},
		{"unknown duration", nil, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.InitialPosition(model.Display{StartHint: tt.hint}, tt.duration)
			if got != tt.want {
				t.Errorf("InitialPosition = %v, want %v", got, tt.want)
			}
		})
	}
}
