// Package config loads the user's settings from a TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/nikbrunner/vidgrid/internal/media"
	"github.com/nikbrunner/vidgrid/internal/model"
)

const (
	ProberFFProbe = "ffprobe"
	ProberStatic  = "static"
)

// Config holds application configuration.
type Config struct {
	Aspect         string  `toml:"aspect"`
	Fit            string  `toml:"fit"`
	ShowHelp       bool    `toml:"show_help"`
	ShowThumbnails bool    `toml:"show_thumbnails"`
	AutoAspect     bool    `toml:"auto_aspect"`
	CopyOffset     float64 `toml:"copy_offset"`

	Prober           string  `toml:"prober"`
	FFProbePath      string  `toml:"ffprobe_path"`
	StaticDuration   float64 `toml:"static_duration"`
	StaticWidth      int     `toml:"static_width"`
	StaticHeight     int     `toml:"static_height"`
	TickMS           int     `toml:"tick_ms"`
	ProbeConcurrency int     `toml:"probe_concurrency"`

	LogFile string `toml:"log_file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Aspect:           "16:9",
		Fit:              string(model.FitContain),
		ShowHelp:         true,
		ShowThumbnails:   true,
		AutoAspect:       false,
		CopyOffset:       model.DefaultCopyOffset,
		Prober:           ProberFFProbe,
		FFProbePath:      "ffprobe",
		StaticDuration:   600,
		StaticWidth:      1920,
		StaticHeight:     1080,
		TickMS:           250,
		ProbeConcurrency: 4,
	}
}

// LoadConfig reads config from the TOML file.
// Creates the file with defaults if it doesn't exist.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// Non-fatal: return defaults even if save fails
			_ = SaveConfig(path, &config)
			return &config, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Keys missing from the file keep their defaults.
	if _, err := toml.Decode(string(data), &config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &config, nil
}

// SaveConfig writes config to the TOML file.
// Creates the directory if it doesn't exist.
func SaveConfig(path string, config *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(config); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// Validate checks the values that have a closed set of choices.
func (c *Config) Validate() error {
	if _, ok := model.AspectIndex(c.Aspect); !ok {
		return fmt.Errorf("unknown aspect %q", c.Aspect)
	}
	if _, ok := model.FitIndex(c.Fit); !ok {
		return fmt.Errorf("unknown fit %q", c.Fit)
	}
	if c.Prober != ProberFFProbe && c.Prober != ProberStatic {
		return fmt.Errorf("unknown prober %q (want %s or %s)", c.Prober, ProberFFProbe, ProberStatic)
	}
	return nil
}

// NewProber builds the metadata prober the config selects.
func (c *Config) NewProber() media.Prober {
	if c.Prober == ProberStatic {
		return media.StaticProber{Meta: media.Metadata{
			Duration: c.StaticDuration,
			Width:    c.StaticWidth,
			Height:   c.StaticHeight,
		}}
	}
	return media.FFProbe{Bin: c.FFProbePath}
}

// Tick returns the playback clock interval.
func (c *Config) Tick() time.Duration {
	if c.TickMS <= 0 {
		return 250 * time.Millisecond
	}
	return time.Duration(c.TickMS) * time.Millisecond
}

// ApplyTo copies the session defaults into a fresh store.
func (c *Config) ApplyTo(store *model.Store) {
	if i, ok := model.AspectIndex(c.Aspect); ok {
		store.SetAspect(i)
	}
	if i, ok := model.FitIndex(c.Fit); ok {
		store.SetFit(i)
	}
	store.HelpVisible = c.ShowHelp
	store.ThumbnailsVisible = c.ShowThumbnails
	if c.CopyOffset > 0 {
		store.CopyOffset = c.CopyOffset
	}
}

// DefaultConfigFilePath returns the default config path:
// $XDG_CONFIG_HOME/vidgrid/config.toml, usually ~/.config/vidgrid/config.toml.
func DefaultConfigFilePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "vidgrid", "config.toml"), nil
}

// DefaultLogFilePath returns the default log path:
// $XDG_CACHE_HOME/vidgrid/vidgrid.log.
func DefaultLogFilePath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "vidgrid", "vidgrid.log"), nil
}
