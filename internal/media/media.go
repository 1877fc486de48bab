// Package media is the playback side of the grid: it probes sources for
// metadata and runs one clock-driven player per loaded display.
package media

import (
	"context"
	"errors"
)

// ErrUnsupported is returned for sources that are not playable video.
var ErrUnsupported = errors.New("unsupported media type")

// Metadata is what the engine learns about a source before playback starts.
type Metadata struct {
	Duration float64 // seconds
	Width    int
	Height   int
}

// AspectRatio returns the native width/height ratio, 0 when unknown.
func (m Metadata) AspectRatio() float64 {
	if m.Width <= 0 || m.Height <= 0 {
		return 0
	}
	return float64(m.Width) / float64(m.Height)
}

// Prober reads metadata for a media file.
type Prober interface {
	Probe(ctx context.Context, path string) (Metadata, error)
}
