package media

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// DefaultProbeTimeout bounds a single ffprobe run.
const DefaultProbeTimeout = 15 * time.Second

// FFProbe reads metadata by running the ffprobe binary.
type FFProbe struct {
	Bin     string // defaults to "ffprobe" on $PATH
	Timeout time.Duration
}

type ffprobeOutput struct {
	Streams []struct {
		CodecType string `json:"codec_type"`
		Width     int    `json:"width"`
		Height    int    `json:"height"`
	} `json:"streams"`
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// Probe runs ffprobe on path and parses its JSON report.
func (p FFProbe) Probe(ctx context.Context, path string) (Metadata, error) {
	bin := p.Bin
	if bin == "" {
		bin = "ffprobe"
	}
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, bin,
		"-v", "error",
		"-show_entries", "format=duration:stream=codec_type,width,height",
		"-of", "json",
		path)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return Metadata{}, fmt.Errorf("ffprobe %s: %s: %w", path, msg, err)
		}
		return Metadata{}, fmt.Errorf("ffprobe %s: %w", path, err)
	}
	return ParseFFProbe(out)
}

// ParseFFProbe extracts metadata from ffprobe's JSON output.
// Files without a video stream or without a duration are unsupported.
func ParseFFProbe(data []byte) (Metadata, error) {
	var report ffprobeOutput
	if err := json.Unmarshal(data, &report); err != nil {
		return Metadata{}, fmt.Errorf("parse ffprobe output: %w", err)
	}

	var meta Metadata
	found := false
	for _, s := range report.Streams {
		if s.CodecType == "video" {
			meta.Width, meta.Height = s.Width, s.Height
			found = true
			break
		}
	}
	if !found {
		return Metadata{}, fmt.Errorf("no video stream: %w", ErrUnsupported)
	}

	d, err := strconv.ParseFloat(strings.TrimSpace(report.Format.Duration), 64)
	if err != nil || d <= 0 {
		return Metadata{}, fmt.Errorf("no duration %q: %w", report.Format.Duration, errors.Join(ErrUnsupported, err))
	}
	meta.Duration = d
	return meta, nil
}
