package importer

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/nikbrunner/vidgrid/internal/media"
)

// ParseHTMLSources collects the local media files an HTML page references:
// <video src>, <source src> and <a href> links to video files.
// Relative references resolve against baseDir; remote URLs are skipped.
func ParseHTMLSources(r io.Reader, baseDir string) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var paths []string
	seen := make(map[string]bool)
	add := func(ref string) {
		path, ok := resolveRef(ref, baseDir)
		if !ok || seen[path] {
			return
		}
		seen[path] = true
		paths = append(paths, path)
	}

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "video", "source":
				if src := getAttr(n, "src"); src != "" {
					add(src)
				}
			case "a":
				// Plain links only count when they point at a video file.
				if href := getAttr(n, "href"); href != "" && media.IsVideoPath(stripQuery(href)) {
					add(href)
				}
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return paths, nil
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if strings.EqualFold(attr.Key, key) {
			return strings.TrimSpace(attr.Val)
		}
	}
	return ""
}
