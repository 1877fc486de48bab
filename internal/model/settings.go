package model

import (
	"math"
	"strings"
)

// AspectRatio is a named width/height ratio the grid is laid out for.
type AspectRatio struct {
	Ratio float64
	Name  string
}

// AspectRatios lists the selectable ratios in cycling order.
var AspectRatios = []AspectRatio{
	{Ratio: 16.0 / 9.0, Name: "16:9 (High Definition)"},
	{Ratio: 4.0 / 3.0, Name: "4:3 (Standard Definition)"},
	{Ratio: 1, Name: "1:1 (Square)"},
	{Ratio: 9.0 / 16.0, Name: "9:16 (Vertical HD)"},
	{Ratio: 1.85, Name: "1.85:1 (Cinematic Wide)"},
	{Ratio: 2.35, Name: "2.35:1 (Anamorphic Wide)"},
}

// FitMode is how media is scaled inside its cell.
type FitMode string

const (
	FitContain   FitMode = "contain"
	FitCover     FitMode = "cover"
	FitFill      FitMode = "fill"
	FitScaleDown FitMode = "scale-down"
)

// FitModes lists the fit modes in cycling order.
var FitModes = []FitMode{FitContain, FitCover, FitFill, FitScaleDown}

// AspectIndex resolves a ratio by its short label ("16:9") or full name.
func AspectIndex(name string) (int, bool) {
	name = strings.TrimSpace(name)
	for i, a := range AspectRatios {
		short, _, _ := strings.Cut(a.Name, " ")
		if strings.EqualFold(name, short) || strings.EqualFold(name, a.Name) {
			return i, true
		}
	}
	return 0, false
}

// FitIndex resolves a fit mode by name.
func FitIndex(name string) (int, bool) {
	for i, f := range FitModes {
		if strings.EqualFold(strings.TrimSpace(name), string(f)) {
			return i, true
		}
	}
	return 0, false
}

// AspectRatio returns the selected aspect ratio.
func (s *Store) AspectRatio() AspectRatio {
	return AspectRatios[clampIndex(s.Aspect, len(AspectRatios))]
}

// FitMode returns the selected fit mode.
func (s *Store) FitMode() FitMode {
	return FitModes[clampIndex(s.Fit, len(FitModes))]
}

// NextAspect cycles to the next aspect ratio.
func (s *Store) NextAspect() {
	s.Aspect = (clampIndex(s.Aspect, len(AspectRatios)) + 1) % len(AspectRatios)
}

// NextFit cycles to the next fit mode.
func (s *Store) NextFit() {
	s.Fit = (clampIndex(s.Fit, len(FitModes)) + 1) % len(FitModes)
}

// SetAspect selects aspect ratio i.
func (s *Store) SetAspect(i int) bool {
	if i < 0 || i >= len(AspectRatios) {
		return false
	}
	s.Aspect = i
	return true
}

// SetFit selects fit mode i.
func (s *Store) SetFit(i int) bool {
	if i < 0 || i >= len(FitModes) {
		return false
	}
	s.Fit = i
	return true
}

// ToggleHelp shows or hides the help overlay.
func (s *Store) ToggleHelp() {
	s.HelpVisible = !s.HelpVisible
}

// ToggleThumbnails shows or hides the per-cell timeline.
func (s *Store) ToggleThumbnails() {
	s.ThumbnailsVisible = !s.ThumbnailsVisible
}

// SetViewport records the drawable size. Negative sizes clamp to 0.
func (s *Store) SetViewport(width, height int) {
	s.Viewport = Viewport{Width: max(width, 0), Height: max(height, 0)}
}

// RecommendAspect returns the index of the aspect ratio closest to the mean
// of the given native ratios. Non-positive ratios are skipped.
func RecommendAspect(ratios []float64) (int, bool) {
	var sum float64
	var n int
	for _, r := range ratios {
		if r > 0 && !math.IsInf(r, 0) {
			sum += r
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	mean := sum / float64(n)

	best := 0
	for i, a := range AspectRatios {
		if math.Abs(mean-a.Ratio) < math.Abs(mean-AspectRatios[best].Ratio) {
			best = i
		}
	}
	return best, true
}

func clampIndex(i, n int) int {
	if i < 0 || i >= n {
		return 0
	}
	return i
}
