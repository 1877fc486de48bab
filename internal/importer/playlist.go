// Package importer reads lists of media files from playlists.
package importer

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnknownFormat is returned for playlist files that are neither HTML nor M3U.
var ErrUnknownFormat = errors.New("unknown playlist format")

// LoadPlaylist reads the playlist at path, choosing the parser by extension.
// The returned paths are absolute.
func LoadPlaylist(path string) ([]string, error) {
	var parse func(r io.Reader, baseDir string) ([]string, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".m3u", ".m3u8":
		parse = ParseM3U
	case ".html", ".htm":
		parse = ParseHTMLSources
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(abs)
	if err != nil {
		return nil, fmt.Errorf("open playlist: %w", err)
	}
	defer f.Close()

	paths, err := parse(f, filepath.Dir(abs))
	if err != nil {
		return nil, fmt.Errorf("parse playlist %s: %w", path, err)
	}
	return paths, nil
}

// resolveRef turns a playlist reference into a local path.
// file:// URLs and plain paths are accepted; other schemes are not.
func resolveRef(ref, baseDir string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", false
	}

	if u, err := url.Parse(ref); err == nil && u.Scheme != "" {
		// A single letter is a Windows drive, not a scheme.
		if len(u.Scheme) > 1 {
			if u.Scheme != "file" {
				return "", false
			}
			return filepath.Clean(filepath.FromSlash(u.Path)), true
		}
	}

	ref = stripQuery(ref)
	if unescaped, err := url.PathUnescape(ref); err == nil {
		ref = unescaped
	}
	ref = filepath.FromSlash(ref)
	if !filepath.IsAbs(ref) {
		ref = filepath.Join(baseDir, ref)
	}
	return filepath.Clean(ref), true
}

func stripQuery(ref string) string {
	if i := strings.IndexAny(ref, "?#"); i >= 0 {
		return ref[:i]
	}
	return ref
}
