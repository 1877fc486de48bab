package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nikbrunner/vidgrid/internal/config"
	"github.com/nikbrunner/vidgrid/internal/importer"
	"github.com/nikbrunner/vidgrid/internal/model"
	"github.com/nikbrunner/vidgrid/internal/tui"
)

// rootOptions holds the flags shared by every command.
type rootOptions struct {
	configPath string
	verbose    bool
}

func (o *rootOptions) level() log.Level {
	if o.verbose {
		return log.DebugLevel
	}
	return log.InfoLevel
}

// loadConfig reads --config, or the default config file when unset.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	path := o.configPath
	if path == "" {
		p, err := config.DefaultConfigFilePath()
		if err != nil {
			return nil, fmt.Errorf("config path: %w", err)
		}
		path = p
	}
	return config.LoadConfig(path)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	var playlists []string

	root := &cobra.Command{
		Use:   "vidgrid [paths...]",
		Short: "Play many videos side by side in a terminal grid",
		Long: `vidgrid lays out video files in the grid that gives each one the most
screen area, then lets you copy, retime and rearrange them from the keyboard
or mouse. Paths may be files, directories or playlists (.m3u, .html).`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ctx := withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), opts.level()))
			cmd.SetContext(ctx)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrid(cmd, opts, append(args, playlists...))
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/vidgrid/config.toml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().StringSliceVarP(&playlists, "playlist", "p", nil, "playlist file to load (repeatable)")

	root.AddCommand(newLayoutCmd())
	root.AddCommand(newCheckCmd(opts))
	root.AddCommand(newExportCmd(opts))
	root.AddCommand(newPreviewCmd(opts))
	root.AddCommand(newPickCmd())

	return root
}

// runGrid opens the interactive grid with paths preloaded.
func runGrid(cmd *cobra.Command, opts *rootOptions, paths []string) error {
	ctx := cmd.Context()

	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}

	sources, err := importer.Resolve(paths)
	if err != nil {
		return err
	}

	logPath := cfg.LogFile
	if logPath == "" {
		if logPath, err = config.DefaultLogFilePath(); err != nil {
			return fmt.Errorf("log path: %w", err)
		}
	}
	logFile, err := openLogFile(logPath)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := newLogger(logFile, opts.level())
	logger.Info("starting", "sources", len(sources), "prober", cfg.Prober)

	store := model.NewStore()
	cfg.ApplyTo(store)
	store.Apply(model.Intent{Kind: model.IntentAdd, Sources: sources})

	app := tui.NewApp(tui.AppParams{
		Context: ctx,
		Store:   store,
		Config:  cfg,
		Logger:  logger,
	})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("run grid: %w", err)
	}
	logger.Info("exiting")
	return nil
}
