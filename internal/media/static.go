package media

import (
	"context"
	"fmt"
)

// StaticProber reports the same metadata for every video path without
// touching the file. Failures lets individual paths fail.
type StaticProber struct {
	Meta     Metadata
	Failures map[string]error
}

// Probe returns Meta for video paths, ErrUnsupported for anything else.
func (p StaticProber) Probe(ctx context.Context, path string) (Metadata, error) {
	if err := ctx.Err(); err != nil {
		return Metadata{}, err
	}
	if err, ok := p.Failures[path]; ok {
		return Metadata{}, err
	}
	if !IsVideoPath(path) {
		return Metadata{}, fmt.Errorf("%s: %w", path, ErrUnsupported)
	}
	return p.Meta, nil
}
