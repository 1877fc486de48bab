package layout

import "github.com/charmbracelet/x/ansi"

// VisibleLength returns the printed width of s, ignoring escape codes.
func VisibleLength(s string) int {
	return ansi.StringWidth(s)
}

// StripANSI removes escape codes from s.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// TruncateText shortens text to maxWidth cells, ending in the ellipsis.
// Styled text keeps its escape codes. Reports whether anything was cut.
func TruncateText(text string, maxWidth int, cfg TextConfig) (string, bool) {
	if maxWidth <= 0 {
		return "", text != ""
	}
	if ansi.StringWidth(text) <= maxWidth {
		return text, false
	}
	if ansi.StringWidth(cfg.Ellipsis) >= maxWidth {
		return ansi.Truncate(cfg.Ellipsis, maxWidth, ""), true
	}
	return ansi.Truncate(text, maxWidth, cfg.Ellipsis), true
}
