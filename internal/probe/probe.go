// Package probe turns command-line arguments into sources and checks in
// bulk which of them the player can handle.
package probe

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/nikbrunner/vidgrid/internal/media"
	"github.com/nikbrunner/vidgrid/internal/model"
)

// ErrNotVideo marks a source whose type is not video.
var ErrNotVideo = errors.New("not a video file")

// Status is the outcome of checking one source.
type Status int

const (
	Playable    Status = iota // probed, has a video stream and a duration
	Unsupported               // not video, or no usable stream
	Missing                   // file does not exist
	Failed                    // probe error, timeout, permissions, etc.
)

func (s Status) String() string {
	switch s {
	case Playable:
		return "playable"
	case Unsupported:
		return "unsupported"
	case Missing:
		return "missing"
	default:
		return "failed"
	}
}

// Result holds the check result for a single source.
type Result struct {
	Source model.Source
	Status Status
	Meta   media.Metadata
	Err    error
}

// Reason returns a short human-readable cause for a non-playable result.
func (r Result) Reason() string {
	if r.Err == nil {
		return ""
	}
	return normalizeError(r.Err)
}

// ProgressFunc is called after each source is checked.
// completed is the number of sources checked so far, total is the total count.
type ProgressFunc func(completed, total int)

// SourceFromPath builds a source for path. Size and type are filled in when
// the file can be read; a missing file yields a source with an unknown type.
func SourceFromPath(path string) model.Source {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	params := model.NewSourceParams{Path: path}
	if info, err := os.Stat(path); err == nil {
		params.Size = info.Size()
	}
	if t, err := media.DetectType(path); err == nil {
		params.MIMEType = t
	}
	return model.NewSource(params)
}

// ResolvePaths expands files and directories into sources.
// Directories are walked recursively and only video files are kept;
// files named explicitly are kept whatever their type.
func ResolvePaths(args []string) ([]model.Source, error) {
	var sources []model.Source
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", arg, err)
		}
		if !info.IsDir() {
			sources = append(sources, SourceFromPath(arg))
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != arg && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if media.IsVideoPath(path) {
				sources = append(sources, SourceFromPath(path))
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", arg, err)
		}
	}
	return sources, nil
}

// CheckSources probes all sources concurrently and returns results in input order.
func CheckSources(ctx context.Context, sources []model.Source, concurrency int, prober media.Prober, onProgress ProgressFunc) []Result {
	if len(sources) == 0 {
		return nil
	}
	concurrency = max(min(concurrency, len(sources)), 1)

	results := make([]Result, len(sources))
	jobs := make(chan int, len(sources))
	var wg sync.WaitGroup

	var progressMu sync.Mutex
	completed := 0

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = checkSource(ctx, prober, sources[idx])

				if onProgress != nil {
					progressMu.Lock()
					completed++
					onProgress(completed, len(sources))
					progressMu.Unlock()
				}
			}
		}()
	}

	for i := range sources {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

func checkSource(ctx context.Context, prober media.Prober, src model.Source) Result {
	result := Result{Source: src}

	if err := ctx.Err(); err != nil {
		result.Status = Failed
		result.Err = err
		return result
	}
	if _, err := os.Stat(src.Path); err != nil {
		result.Status = Missing
		if !errors.Is(err, fs.ErrNotExist) {
			result.Status = Failed
		}
		result.Err = err
		return result
	}
	if !media.Supported(src.MIMEType, src.Path) {
		result.Status = Unsupported
		result.Err = fmt.Errorf("%s: %w", src.TypeLabel(), ErrNotVideo)
		return result
	}

	meta, err := prober.Probe(ctx, src.Path)
	switch {
	case err == nil:
		result.Status = Playable
		result.Meta = meta
	case errors.Is(err, media.ErrUnsupported):
		result.Status = Unsupported
		result.Err = err
	default:
		result.Status = Failed
		result.Err = err
	}
	return result
}

// PlayableSources returns the sources of the playable results, in order.
func PlayableSources(results []Result) []model.Source {
	var out []model.Source
	for _, r := range results {
		if r.Status == Playable {
			out = append(out, r.Source)
		}
	}
	return out
}

// Summary counts results per status.
func Summary(results []Result) map[Status]int {
	counts := make(map[Status]int)
	for _, r := range results {
		counts[r.Status]++
	}
	return counts
}

// normalizeError simplifies verbose error messages into readable categories.
func normalizeError(err error) string {
	switch {
	case errors.Is(err, ErrNotVideo):
		return "Not a video"
	case errors.Is(err, fs.ErrNotExist):
		return "File not found"
	case errors.Is(err, fs.ErrPermission):
		return "Permission denied"
	case errors.Is(err, context.DeadlineExceeded):
		return "Timeout"
	case errors.Is(err, context.Canceled):
		return "Cancelled"
	}

	msg := err.Error()
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "executable file not found"):
		return "ffprobe not installed"
	case strings.Contains(lower, "moov atom not found"):
		return "Truncated file"
	case strings.Contains(lower, "invalid data found"):
		return "Corrupt file"
	case strings.Contains(lower, "no video stream"):
		return "No video stream"
	default:
		return msg
	}
}
