package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/nikbrunner/vidgrid/internal/config"
	"github.com/nikbrunner/vidgrid/internal/exporter"
	"github.com/nikbrunner/vidgrid/internal/importer"
	"github.com/nikbrunner/vidgrid/internal/model"
	"github.com/nikbrunner/vidgrid/internal/picker"
	"github.com/nikbrunner/vidgrid/internal/preview"
	"github.com/nikbrunner/vidgrid/internal/probe"
	"github.com/nikbrunner/vidgrid/internal/tui/layout"
)

func newLayoutCmd() *cobra.Command {
	var aspect string

	cmd := &cobra.Command{
		Use:   "layout COUNT WIDTH HEIGHT",
		Short: "Print the grid chosen for COUNT videos in a WIDTH x HEIGHT viewport",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := []string{"count", "width", "height"}
			nums := make([]int, len(args))
			for i, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil || n < 0 {
					return fmt.Errorf("invalid %s %q", names[i], arg)
				}
				nums[i] = n
			}

			i, ok := model.AspectIndex(aspect)
			if !ok {
				return fmt.Errorf("unknown aspect %q", aspect)
			}
			ratio := model.AspectRatios[i]
			grid := layout.SolveGrid(ratio.Ratio, nums[0], layout.Size{Width: nums[1], Height: nums[2]})

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", styleTitle.Render("Layout"), styleDim.Render(ratio.Name))
			fmt.Fprintf(out, "  rows %s\n", styleNumber.Render(strconv.Itoa(grid.Rows)))
			fmt.Fprintf(out, "  cols %s\n", styleNumber.Render(strconv.Itoa(grid.Cols)))
			fmt.Fprintf(out, "  cell %s\n", styleNumber.Render(fmt.Sprintf("%dx%d", grid.Cell.Width, grid.Cell.Height)))
			return nil
		},
	}

	cmd.Flags().StringVar(&aspect, "aspect", "16:9", "aspect ratio (16:9, 4:3, 1:1, 9:16, 1.85:1, 2.35:1)")
	return cmd
}

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check PATH...",
		Short: "Probe files and report which ones can be played",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			sources, err := checkTargets(args)
			if err != nil {
				return err
			}

			results := checkSources(cmd.Context(), cfg, sources)
			if err := cmd.Context().Err(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderResults(results))

			counts := probe.Summary(results)
			printSuccess(out, "%d playable", counts[probe.Playable])
			bad := len(results) - counts[probe.Playable]
			if bad > 0 {
				printWarning(out, "%d unsupported, %d missing, %d failed",
					counts[probe.Unsupported], counts[probe.Missing], counts[probe.Failed])
				return fmt.Errorf("%d of %d files cannot be played", bad, len(results))
			}
			return nil
		},
	}
}

// checkTargets resolves args like the grid does, except that missing files
// are kept so they show up in the report.
func checkTargets(args []string) ([]model.Source, error) {
	var sources []model.Source
	for _, arg := range args {
		if _, err := os.Stat(arg); errors.Is(err, fs.ErrNotExist) && !importer.IsPlaylist(arg) {
			sources = append(sources, probe.SourceFromPath(arg))
			continue
		}
		found, err := importer.Resolve([]string{arg})
		if err != nil {
			return nil, err
		}
		sources = append(sources, found...)
	}
	return sources, nil
}

func checkSources(ctx context.Context, cfg *config.Config, sources []model.Source) []probe.Result {
	logger := loggerFromContext(ctx)
	start := time.Now()
	results := probe.CheckSources(ctx, sources, cfg.ProbeConcurrency, cfg.NewProber(), func(completed, total int) {
		logger.Debug("probed", "completed", completed, "total", total)
	})
	logger.Debug("check done", "count", len(results), "elapsed", time.Since(start).Round(time.Millisecond))
	return results
}

func renderResults(results []probe.Result) string {
	rows := make([][]string, len(results))
	for i, r := range results {
		detail := r.Reason()
		if r.Status == probe.Playable {
			detail = fmt.Sprintf("%s  %dx%d", formatDuration(r.Meta.Duration), r.Meta.Width, r.Meta.Height)
		}
		rows[i] = []string{r.Source.Name, r.Status.String(), r.Source.TypeLabel(), detail}
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styleDim).
		Headers("File", "Status", "Type", "Details").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if col == 1 && results[row].Status != probe.Playable {
				return styleCell.Foreground(colorRed)
			}
			return styleCell
		}).
		String()
}

func formatDuration(seconds float64) string {
	d := time.Duration(seconds * float64(time.Second)).Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// playableStore probes the sources behind args and returns a store holding
// the playable ones, with the config's aspect and fit applied.
func playableStore(ctx context.Context, opts *rootOptions, args []string, errOut io.Writer) (*model.Store, error) {
	cfg, err := opts.loadConfig()
	if err != nil {
		return nil, err
	}
	sources, err := importer.Resolve(args)
	if err != nil {
		return nil, err
	}

	results := checkSources(ctx, cfg, sources)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, r := range results {
		if r.Status != probe.Playable {
			printWarning(errOut, "skipping %s: %s", r.Source.Name, r.Reason())
		}
	}

	playable := probe.PlayableSources(results)
	if len(playable) == 0 {
		return nil, errors.New("no playable videos")
	}

	store := model.NewStore()
	cfg.ApplyTo(store)
	store.Apply(model.Intent{Kind: model.IntentAdd, Sources: playable})
	return store, nil
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	var (
		output string
		title  string
		width  int
		height int
	)

	cmd := &cobra.Command{
		Use:   "export PATH...",
		Short: "Write the grid as a standalone HTML page",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := playableStore(cmd.Context(), opts, args, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			page := exporter.ExportHTML(store, exporter.Options{
				Title:    title,
				Viewport: layout.Size{Width: width, Height: height},
			})

			if output == "-" {
				_, err := io.WriteString(cmd.OutOrStdout(), page)
				return err
			}
			if output == "" {
				if output, err = exporter.DefaultExportPath(); err != nil {
					return fmt.Errorf("export path: %w", err)
				}
			}
			if err := os.WriteFile(output, []byte(page), 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			loggerFromContext(cmd.Context()).Debug("exported", "path", output, "count", store.Len())
			printSuccess(cmd.ErrOrStderr(), "Exported %d videos to %s", store.Len(), output)
			return nil
		},
	}

	defaults := exporter.DefaultOptions()
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, - for stdout (default ~/Downloads/vidgrid-DATE.html)")
	cmd.Flags().StringVar(&title, "title", defaults.Title, "page title")
	cmd.Flags().IntVar(&width, "width", defaults.Viewport.Width, "page width in pixels")
	cmd.Flags().IntVar(&height, "height", defaults.Viewport.Height, "page height in pixels")
	return cmd
}

func newPreviewCmd(opts *rootOptions) *cobra.Command {
	var (
		output string
		width  int
		height int
	)

	cmd := &cobra.Command{
		Use:   "preview PATH...",
		Short: "Render the grid layout to a PNG",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := playableStore(cmd.Context(), opts, args, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create preview: %w", err)
			}
			defer f.Close()

			viewport := layout.Size{Width: width, Height: height}
			if err := preview.RenderPNG(f, preview.OptionsFromStore(store, viewport)); err != nil {
				return fmt.Errorf("render preview: %w", err)
			}
			printSuccess(cmd.ErrOrStderr(), "Wrote %s", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "vidgrid.png", "output PNG file")
	cmd.Flags().IntVar(&width, "width", 1280, "image width in pixels")
	cmd.Flags().IntVar(&height, "height", 720, "image height in pixels")
	return cmd
}

func newPickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick QUERY [PATH...]",
		Short: "Fuzzy-pick one video and print its path",
		Long: `pick matches QUERY against the file names under PATH (default: the current
directory). A single match is printed directly; otherwise a picker opens.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, paths := args[0], args[1:]
			if len(paths) == 0 {
				paths = []string{"."}
			}

			sources, err := importer.Resolve(paths)
			if err != nil {
				return err
			}
			displays := make([]model.Display, len(sources))
			for i, src := range sources {
				displays[i] = model.NewDisplay(src)
			}

			p := picker.New(displays, query)
			var chosen *model.Display
			switch p.Len() {
			case 0:
				return fmt.Errorf("no videos match %q", query)
			case 1:
				chosen = p.Best()
			default:
				program := tea.NewProgram(p,
					tea.WithContext(cmd.Context()),
					tea.WithInput(cmd.InOrStdin()),
					tea.WithOutput(cmd.ErrOrStderr()))
				final, err := program.Run()
				if err != nil {
					if cmd.Context().Err() != nil {
						return cmd.Context().Err()
					}
					return fmt.Errorf("run picker: %w", err)
				}
				chosen = final.(picker.Picker).Selected()
			}

			if chosen == nil {
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), chosen.Source.Path)
			return nil
		},
	}
}
