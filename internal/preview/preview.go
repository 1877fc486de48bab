// Package preview draws the solved grid as a PNG so a layout can be checked
// without playing anything.
package preview

import (
	"image"
	"io"

	"github.com/fogleman/gg"

	"github.com/nikbrunner/vidgrid/internal/model"
	"github.com/nikbrunner/vidgrid/internal/tui/layout"
)

// Options describes what to draw. One cell is drawn per label.
type Options struct {
	Viewport layout.Size
	Aspect   float64
	Fit      model.FitMode
	Labels   []string
}

// OptionsFromStore draws the store's displays with its current settings.
func OptionsFromStore(store *model.Store, viewport layout.Size) Options {
	labels := make([]string, len(store.Displays))
	for i, d := range store.Displays {
		labels[i] = d.Source.Name
	}
	return Options{
		Viewport: viewport,
		Aspect:   store.AspectRatio().Ratio,
		Fit:      store.FitMode(),
		Labels:   labels,
	}
}

// Render draws the grid: each cell box, the media rectangle inside it as the
// fit mode would place it, and the label along the bottom edge.
func Render(opts Options) image.Image {
	w, h := max(opts.Viewport.Width, 1), max(opts.Viewport.Height, 1)
	dc := gg.NewContext(w, h)

	dc.SetRGB(0.07, 0.07, 0.07)
	dc.Clear()

	grid := layout.SolveGrid(opts.Aspect, len(opts.Labels), opts.Viewport)
	cw, ch := float64(grid.Cell.Width), float64(grid.Cell.Height)

	for i, label := range opts.Labels {
		x := float64(i%grid.Cols) * cw
		y := float64(i/grid.Cols) * ch

		dc.SetRGB(0.15, 0.15, 0.15)
		dc.DrawRectangle(x, y, cw, ch)
		dc.Fill()

		mw, mh := FitRect(grid.Cell, opts.Aspect, opts.Fit)
		dc.SetRGB(0.2, 0.45, 0.8)
		dc.DrawRectangle(x+(cw-mw)/2, y+(ch-mh)/2, mw, mh)
		dc.Fill()

		dc.SetRGB(0.4, 0.4, 0.4)
		dc.SetLineWidth(1)
		dc.DrawRectangle(x+0.5, y+0.5, cw-1, ch-1)
		dc.Stroke()

		dc.SetRGB(1, 1, 1)
		dc.DrawStringAnchored(label, x+cw/2, y+ch-8, 0.5, 0)
	}

	return dc.Image()
}

// RenderPNG writes Render's output to w as PNG.
func RenderPNG(w io.Writer, opts Options) error {
	dc := gg.NewContextForImage(Render(opts))
	return dc.EncodePNG(w)
}

// FitRect returns the size media of the given aspect ratio takes up inside
// cell. Contain and scale-down letterbox; cover and fill use the whole cell
// (cover crops, fill stretches).
func FitRect(cell layout.Size, aspect float64, fit model.FitMode) (float64, float64) {
	w, h := float64(cell.Width), float64(cell.Height)
	if w <= 0 || h <= 0 || aspect <= 0 {
		return max(w, 0), max(h, 0)
	}

	switch fit {
	case model.FitCover, model.FitFill:
		return w, h
	}
	if aspect > w/h {
		return w, w / aspect
	}
	return h * aspect, h
}
