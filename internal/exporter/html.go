// Package exporter writes the current grid as a standalone HTML page.
package exporter

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/nikbrunner/vidgrid/internal/model"
	"github.com/nikbrunner/vidgrid/internal/tui/layout"
)

// Options controls the exported page.
type Options struct {
	Title    string
	Viewport layout.Size // page size in CSS pixels the grid is solved for
}

// DefaultOptions returns options for a 1080p page.
func DefaultOptions() Options {
	return Options{Title: "vidgrid", Viewport: layout.Size{Width: 1920, Height: 1080}}
}

// DefaultExportPath returns the default export file path.
// Format: ~/Downloads/vidgrid-YYYY-MM-DD.html
func DefaultExportPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("vidgrid-%s.html", time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// playerScript applies rate, start time and loop region from data attributes.
// Videos without a start time begin at their midpoint.
const playerScript = `for (const v of document.querySelectorAll("video")) {
  v.addEventListener("loadedmetadata", () => {
    v.playbackRate = Number(v.dataset.rate || 1);
    v.currentTime = v.dataset.start !== undefined ? Number(v.dataset.start) % v.duration : v.duration / 2;
  });
  v.addEventListener("timeupdate", () => {
    const lo = v.dataset.in !== undefined ? Number(v.dataset.in) : 0;
    const hi = v.dataset.out !== undefined ? Number(v.dataset.out) : Infinity;
    if (v.currentTime > hi || v.currentTime < lo) v.currentTime = lo;
  });
}
`

// ExportHTML renders the store's displays as a grid page. Cells are sized
// with the same solver the terminal grid uses, for opts.Viewport.
func ExportHTML(store *model.Store, opts Options) string {
	aspect := store.AspectRatio()
	grid := layout.SolveGrid(aspect.Ratio, store.Len(), opts.Viewport)

	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html>\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(opts.Title))
	b.WriteString("<style>\n")
	b.WriteString("body { margin: 0; background: #000; }\n")
	fmt.Fprintf(&b, ".grid { display: grid; grid-template-columns: repeat(%d, %dpx); grid-auto-rows: %dpx; }\n",
		max(grid.Cols, 1), grid.Cell.Width, grid.Cell.Height)
	fmt.Fprintf(&b, "video { width: 100%%; height: 100%%; object-fit: %s; }\n", store.FitMode())
	b.WriteString("</style>\n")
	b.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&b, "<div class=\"grid\" data-aspect=\"%s\">\n", html.EscapeString(aspect.Name))

	for _, d := range store.Displays {
		writeVideo(&b, d)
	}

	b.WriteString("</div>\n")
	fmt.Fprintf(&b, "<script>\n%s</script>\n", playerScript)
	b.WriteString("</body>\n</html>\n")

	return b.String()
}

func writeVideo(b *strings.Builder, d model.Display) {
	attrs := []string{
		fmt.Sprintf("src=\"%s\"", html.EscapeString(d.Source.URL())),
		fmt.Sprintf("title=\"%s\"", html.EscapeString(d.Source.Name)),
		"autoplay", "loop", "playsinline",
	}
	if d.Muted {
		attrs = append(attrs, "muted")
	}
	attrs = append(attrs, fmt.Sprintf("data-rate=\"%s\"", formatSeconds(d.PlaybackRate)))

	switch {
	case d.StartHint != nil:
		attrs = append(attrs, fmt.Sprintf("data-start=\"%s\"", formatSeconds(*d.StartHint)))
	case d.Loaded():
		attrs = append(attrs, fmt.Sprintf("data-start=\"%s\"", formatSeconds(d.Position())))
	}
	if d.In != nil {
		attrs = append(attrs, fmt.Sprintf("data-in=\"%s\"", formatSeconds(*d.In)))
	}
	if d.Out != nil {
		attrs = append(attrs, fmt.Sprintf("data-out=\"%s\"", formatSeconds(*d.Out)))
	}

	fmt.Fprintf(b, "  <video %s></video>\n", strings.Join(attrs, " "))
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
