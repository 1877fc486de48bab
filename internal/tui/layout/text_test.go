package layout

import "testing"

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no ANSI", "hello", "hello"},
		{"bold", "\x1b[1mhello\x1b[0m", "hello"},
		{"mixed", "normal \x1b[1;4mbold\x1b[0m normal", "normal bold normal"},
		{"only ANSI", "\x1b[1m\x1b[0m", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestVisibleLength(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"plain text", "clip.mp4", 8},
		{"with ANSI bold", "\x1b[1mclip.mp4\x1b[0m", 8},
		{"accented", "café.mov", 8},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VisibleLength(tt.input); got != tt.want {
				t.Errorf("VisibleLength(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncateText(t *testing.T) {
	cfg := DefaultConfig().Text

	tests := []struct {
		name     string
		text     string
		maxWidth int
		want     string
		wantCut  bool
	}{
		{"fits", "hi", 5, "hi", false},
		{"exact", "hello", 5, "hello", false},
		{"long", "hello world", 8, "hello...", true},
		{"room for ellipsis only", "hello", 2, "..", true},
		{"zero width", "hello", 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, cut := TruncateText(tt.text, tt.maxWidth, cfg)
			if got != tt.want || cut != tt.wantCut {
				t.Errorf("TruncateText(%q, %d) = (%q, %v), want (%q, %v)",
					tt.text, tt.maxWidth, got, cut, tt.want, tt.wantCut)
			}
		})
	}
}

func TestTruncateText_Styled(t *testing.T) {
	got, cut := TruncateText("\x1b[1mhello world\x1b[0m", 8, DefaultConfig().Text)

	if !cut || StripANSI(got) != "hello..." {
		t.Errorf("TruncateText(styled) = %q, want visible %q", got, "hello...")
	}
}
