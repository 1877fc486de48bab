package model_test

import (
	"testing"

	"github.com/nikbrunner/vidgrid/internal/model"
)

func TestStore_NextAspect_Cycles(t *testing.T) {
	s := model.NewStore()
	for i := 0; i < len(model.AspectRatios); i++ {
		s.NextAspect()
	}
	if s.Aspect != 0 {
		t.Errorf("cycling through all ratios should wrap to 0, got %d", s.Aspect)
	}

	s.Aspect = 42
	if got := s.AspectRatio(); got != model.AspectRatios[0] {
		t.Errorf("out of range index should fall back to the first ratio, got %+v", got)
	}
}

func TestStore_NextFit_Cycles(t *testing.T) {
	s := model.NewStore()
	want := []model.FitMode{model.FitCover, model.FitFill, model.FitScaleDown, model.FitContain}
	for _, w := range want {
		s.NextFit()
		if s.FitMode() != w {
			t.Errorf("NextFit = %q, want %q", s.FitMode(), w)
		}
	}
}

func TestAspectIndex(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int
		wantOK bool
	}{
		{"short label", "16:9", 0, true},
		{"vertical", "9:16", 3, true},
		{"full name", "1:1 (Square)", 2, true},
		{"cinematic", "2.35:1", 5, true},
		{"unknown", "21:9", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := model.AspectIndex(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("AspectIndex(%q) = (%d, %v), want (%d, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFitIndex(t *testing.T) {
	if i, ok := model.FitIndex("Scale-Down"); !ok || i != 3 {
		t.Errorf("FitIndex(Scale-Down) = (%d, %v), want (3, true)", i, ok)
	}
	if _, ok := model.FitIndex("stretch"); ok {
		t.Error("FitIndex(stretch) should fail")
	}
}

func TestRecommendAspect(t *testing.T) {
	tests := []struct {
		name   string
		ratios []float64
		want   int
		wantOK bool
	}{
		{"hd sources", []float64{1920.0 / 1080.0, 1280.0 / 720.0}, 0, true},
		{"sd sources", []float64{640.0 / 480.0}, 1, true},
		{"phone footage", []float64{1080.0 / 1920.0}, 3, true},
		{"mixed averages to square", []float64{0.5625, 1.4375}, 2, true},
		{"scope", []float64{2.39}, 5, true},
		{"unknown sizes skipped", []float64{0, 1.85}, 4, true},
		{"nothing known", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := model.RecommendAspect(tt.ratios)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("RecommendAspect(%v) = (%d, %v), want (%d, %v)", tt.ratios, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
