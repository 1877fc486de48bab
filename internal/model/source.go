package model

import (
	"net/url"
	"path/filepath"
)

// Source is the media file behind one or more displays.
// Copies of a display share the same Source; Path is its identity.
type Source struct {
	Path     string `json:"path"`
	Name     string `json:"name"`
	MIMEType string `json:"mimeType"`
	Size     int64  `json:"size"`
}

// NewSourceParams holds parameters for creating a new Source.
type NewSourceParams struct {
	Path     string
	MIMEType string
	Size     int64
}

// NewSource creates a Source with its display name derived from the path.
func NewSource(params NewSourceParams) Source {
	return Source{
		Path:     params.Path,
		Name:     filepath.Base(params.Path),
		MIMEType: params.MIMEType,
		Size:     params.Size,
	}
}

// URL returns the playable file:// URL of the source.
func (s Source) URL() string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(s.Path)}
	return u.String()
}

// TypeLabel returns the reported MIME type, or "unknown" when none was sniffed.
func (s Source) TypeLabel() string {
	if s.MIMEType == "" {
		return "unknown"
	}
	return s.MIMEType
}
