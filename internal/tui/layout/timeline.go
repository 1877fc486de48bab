package layout

import (
	"fmt"
	"strings"
)

const (
	timelineTrack    = '─'
	timelineLoop     = '━'
	timelinePlayhead = '●'
	timelineIn       = '['
	timelineOut      = ']'
	timelineUnknown  = '·'
)

// Timeline draws a width-cell scrub bar for a clip: the playhead, the in and
// out markers, and a heavier track between them. An unknown duration draws
// a dotted placeholder.
func Timeline(position, duration float64, in, out *float64, width int) string {
	if width <= 0 {
		return ""
	}
	if !(duration > 0) {
		return strings.Repeat(string(timelineUnknown), width)
	}

	slot := func(t float64) int {
		i := int(t / duration * float64(width))
		return min(max(i, 0), width-1)
	}

	bar := make([]rune, width)
	for i := range bar {
		bar[i] = timelineTrack
	}

	lo, hi := 0, width-1
	if in != nil {
		lo = slot(*in)
	}
	if out != nil {
		hi = slot(*out)
	}
	if (in != nil || out != nil) && lo <= hi {
		for i := lo; i <= hi; i++ {
			bar[i] = timelineLoop
		}
	}
	if in != nil {
		bar[lo] = timelineIn
	}
	if out != nil {
		bar[hi] = timelineOut
	}
	bar[slot(position)] = timelinePlayhead
	return string(bar)
}

// FormatClock renders seconds as m:ss, or h:mm:ss past an hour.
func FormatClock(seconds float64) string {
	if !(seconds > 0) {
		seconds = 0
	}
	s := int(seconds)
	if h := s / 3600; h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, s/60%60, s%60)
	}
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
