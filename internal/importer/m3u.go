package importer

import (
	"bufio"
	"io"
	"strings"
)

// ParseM3U reads a plain or extended M3U playlist. Comment and directive
// lines are skipped; every other line is a media reference resolved
// against baseDir.
func ParseM3U(r io.Reader, baseDir string) ([]string, error) {
	var paths []string
	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if path, ok := resolveRef(line, baseDir); ok {
			paths = append(paths, path)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return paths, nil
}
