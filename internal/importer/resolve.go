package importer

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/nikbrunner/vidgrid/internal/model"
	"github.com/nikbrunner/vidgrid/internal/probe"
)

// IsPlaylist reports whether path has a playlist extension LoadPlaylist reads.
func IsPlaylist(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".m3u", ".m3u8", ".html", ".htm":
		return true
	}
	return false
}

// Resolve turns command line style arguments into sources, in order.
// Playlists are expanded to the files they reference, directories are
// walked and anything else is taken as a media file.
func Resolve(args []string) ([]model.Source, error) {
	var sources []model.Source
	for _, arg := range args {
		if IsPlaylist(arg) {
			paths, err := LoadPlaylist(arg)
			if err != nil {
				return nil, err
			}
			for _, p := range paths {
				sources = append(sources, probe.SourceFromPath(p))
			}
			continue
		}

		found, err := probe.ResolvePaths([]string{arg})
		if err != nil {
			return nil, err
		}
		sources = append(sources, found...)
	}
	return sources, nil
}

// SplitDropped splits the text a terminal pastes when files are dropped on
// it. Paths may be quoted or use backslash-escaped spaces. Text naming an
// existing file as a whole is kept as one path.
func SplitDropped(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := os.Stat(s); err == nil {
		return []string{s}
	}

	var (
		paths   []string
		current strings.Builder
		quote   rune
		escaped bool
		started bool
	)
	flush := func() {
		if started {
			paths = append(paths, current.String())
		}
		current.Reset()
		started = false
	}

	for _, r := range s {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\' && quote != '\'':
			escaped = true
			started = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			started = true
		case unicode.IsSpace(r):
			flush()
		default:
			current.WriteRune(r)
			started = true
		}
	}
	flush()
	return paths
}
