package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/nikbrunner/vidgrid/internal/model"
	"github.com/nikbrunner/vidgrid/internal/search"
	"github.com/nikbrunner/vidgrid/internal/tui/layout"
)

// renderView renders the full screen: header, grid area and footer.
func (a App) renderView() string {
	switch a.mode {
	case ModeFind:
		return a.renderFinder()
	case ModeAdd:
		return a.renderModal()
	}

	cfg := a.layoutConfig.Grid
	bodyHeight := max(a.height-cfg.HeaderRows-cfg.FooterRows, 0)

	var body string
	switch {
	case a.store.HelpVisible:
		body = a.renderHelpOverlay(bodyHeight)
	case len(a.store.Errors) > 0:
		body = a.renderErrors(bodyHeight)
	default:
		body = a.renderGrid(bodyHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.renderHeader(),
		body,
		a.renderStatusLine(),
		a.fitLine(a.renderHints(a.getContextualHints())),
	)
}

// fitLine truncates a rendered line to the terminal width.
func (a App) fitLine(s string) string {
	line, _ := layout.TruncateText(s, a.width, a.layoutConfig.Text)
	return line
}

func (a App) renderHeader() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("vidgrid"))

	count := fmt.Sprintf("%d videos", a.store.Len())
	if a.store.Len() == 1 {
		count = "1 video"
	}
	parts := []string{count, a.store.AspectRatio().Name, string(a.store.FitMode())}
	if n := len(a.store.Errors); n > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", n))
	}
	if src := a.store.GetDisplayByID(a.store.DragSourceID); src != nil {
		parts = append(parts, "moving "+src.Source.Name)
	}
	b.WriteString("  " + a.styles.Header.Render(strings.Join(parts, " · ")))

	return a.fitLine(b.String())
}

// renderGrid draws the displays in the solved layout, row by row.
func (a App) renderGrid(height int) string {
	if a.store.Len() == 0 {
		return lipgloss.Place(a.width, height, lipgloss.Center, lipgloss.Center,
			a.styles.Empty.Render("No videos. Press a to add files, or drop them here."))
	}

	g := a.Grid()
	cellWidth := g.Cell.Width
	cellHeight := layout.CellRows(g.Cell, a.layoutConfig.Grid)

	var rows []string
	for r := 0; r < g.Rows; r++ {
		var cells []string
		for c := 0; c < g.Cols; c++ {
			i := r*g.Cols + c
			if i >= g.Count {
				break
			}
			cells = append(cells, a.renderCell(a.store.Displays[i], cellWidth, cellHeight))
		}
		if len(cells) == 0 {
			break
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.Place(a.width, height, lipgloss.Left, lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderCell draws one display in a width x height box, border included.
func (a App) renderCell(d model.Display, width, height int) string {
	cfg := a.layoutConfig.Grid
	innerWidth := width - cfg.CellChrome
	innerHeight := height - cfg.CellChrome
	if width < cfg.MinCellWidth || height < cfg.MinCellHeight || innerWidth < 1 || innerHeight < 1 {
		return a.styles.Empty.Width(max(width, 1)).Height(max(height, 1)).Render("·")
	}

	style := a.styles.Cell
	switch d.ID {
	case a.store.DragSourceID:
		style = a.styles.CellGrabbed
	case a.store.ActiveID:
		style = a.styles.CellActive
	}

	name := d.Source.Name
	if d.ID == a.store.DragSourceID {
		name = "⇄ " + name
	}
	fit := func(s string) string {
		out, _ := layout.TruncateText(s, innerWidth, a.layoutConfig.Text)
		return out
	}

	lines := []string{a.styles.Name.Render(fit(name))}
	if innerHeight > 1 {
		lines = append(lines, a.styles.Clock.Render(fit(displayClock(d))))
	}
	if badges := displayBadges(d); badges != "" && innerHeight > 2 {
		lines = append(lines, a.styles.Badge.Render(fit(badges)))
	}

	if a.store.ThumbnailsVisible && innerHeight > len(lines) {
		for len(lines) < innerHeight-1 {
			lines = append(lines, "")
		}
		duration := 0.0
		if d.Media != nil {
			duration = d.Media.Duration()
		}
		lines = append(lines, a.styles.Timeline.Render(
			layout.Timeline(d.Position(), duration, d.In, d.Out, innerWidth)))
	}

	return style.
		Width(innerWidth).
		Height(innerHeight).
		MaxHeight(height).
		Render(strings.Join(lines, "\n"))
}

// displayClock is "position / duration", or a loading note.
func displayClock(d model.Display) string {
	if d.Media == nil {
		return "loading..."
	}
	return layout.FormatClock(d.Media.Position()) + " / " + layout.FormatClock(d.Media.Duration())
}

// displayBadges lists the settings that differ from a fresh display.
func displayBadges(d model.Display) string {
	var badges []string
	if d.PlaybackRate != 1 {
		badges = append(badges, formatRate(d.PlaybackRate))
	}
	if !d.Muted {
		badges = append(badges, "♪")
	}
	if d.In != nil {
		badges = append(badges, "in "+layout.FormatClock(*d.In))
	}
	if d.Out != nil {
		badges = append(badges, "out "+layout.FormatClock(*d.Out))
	}
	return strings.Join(badges, " ")
}

func formatRate(rate float64) string {
	return "x" + strconv.FormatFloat(rate, 'g', 4, 64)
}

// renderStatusLine shows the message if there is one, otherwise the
// focused display.
func (a App) renderStatusLine() string {
	if a.messageText != "" {
		return a.fitLine(a.renderMessageLine())
	}

	d := a.store.Active()
	if d == nil {
		if a.store.Len() == 0 {
			return ""
		}
		return a.fitLine(a.styles.Empty.Render("Tab or hover to focus a display"))
	}

	parts := []string{d.Source.Name, displayClock(*d), formatRate(d.PlaybackRate)}
	if d.Muted {
		parts = append(parts, "muted")
	} else {
		parts = append(parts, "sound")
	}
	if d.In != nil {
		parts = append(parts, "in "+layout.FormatClock(*d.In))
	}
	if d.Out != nil {
		parts = append(parts, "out "+layout.FormatClock(*d.Out))
	}
	return a.fitLine(a.styles.Status.Render(strings.Join(parts, " · ")))
}

func (a App) renderMessageLine() string {
	var msgStyle lipgloss.Style
	var prefix string

	switch a.messageType {
	case MessageError:
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#CC3333", Dark: "#FF6666"}).
			Bold(true)
		prefix = "✗ "
	case MessageWarning:
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#CC8800", Dark: "#FFAA00"}).
			Bold(true)
		prefix = "⚠ "
	case MessageSuccess:
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#338833", Dark: "#66CC66"}).
			Bold(true)
		prefix = "✓ "
	default: // MessageInfo
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}).
			Bold(true)
		prefix = ""
	}

	return msgStyle.Render(prefix + a.messageText)
}

// renderHelpOverlay lists every binding in columns, top-left aligned.
func (a App) renderHelpOverlay(height int) string {
	full := a.help
	full.ShowAll = true

	var b strings.Builder
	b.WriteString(a.styles.Title.Render("keys") + "\n\n")
	b.WriteString(full.View(a.keys))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Title.Render("mouse") + "\n")
	b.WriteString("hover       focus a display\n")
	b.WriteString("drag        move a display after another\n")
	b.WriteString("\n")
	b.WriteString(a.styles.Empty.Render("[h/?] close  [q] quit"))

	return lipgloss.Place(a.width, height, lipgloss.Left, lipgloss.Top,
		lipgloss.NewStyle().Padding(1, 2).Render(b.String()))
}

// renderErrors shows the displays that failed to load in a table.
func (a App) renderErrors(height int) string {
	errs := a.store.Errors
	maxVisible := a.layoutConfig.Modal.ErrorsMaxVisible
	visible := errs[:min(len(errs), maxVisible)]

	rows := make([][]string, len(visible))
	for i, d := range visible {
		rows[i] = []string{d.Source.Name, d.Source.TypeLabel()}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#888888", Dark: "#505050"})).
		Headers("File", "Type").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return a.styles.TableHeader
			}
			return a.styles.TableCell
		})

	var content strings.Builder
	title := fmt.Sprintf("Could not play %d files", len(errs))
	if len(errs) == 1 {
		title = "Could not play 1 file"
	}
	content.WriteString(a.styles.Title.Render(title) + "\n\n")
	content.WriteString(t.String())
	if hidden := len(errs) - len(visible); hidden > 0 {
		content.WriteString("\n" + a.styles.Empty.Render(fmt.Sprintf("... and %d more", hidden)))
	}
	content.WriteString("\n\n")
	content.WriteString(a.renderHintsInline([]Hint{{Key: "X", Desc: "dismiss"}}))

	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}
	modalWidth := layout.CalculateModalWidth(a.width, a.layoutConfig.Modal.LargeWidthPercent, a.layoutConfig.Modal)
	modal := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(accent).
		Padding(1, 2).
		Width(modalWidth).
		Render(content.String())

	return lipgloss.Place(a.width, height, lipgloss.Center, lipgloss.Center, modal)
}

// renderModal renders the add prompt centered above the help bar.
func (a App) renderModal() string {
	var title, content strings.Builder

	// Industrial style: thick borders, teal accent
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}
	modalWidth := layout.CalculateModalWidth(a.width, a.layoutConfig.Modal.DefaultWidthPercent, a.layoutConfig.Modal)
	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(accent).
		Padding(1, 2).
		Width(modalWidth)

	title.WriteString("Add Videos\n\n")
	content.WriteString("Path:\n")
	content.WriteString(a.add.Input.View())
	content.WriteString("\n\n")
	content.WriteString(a.styles.Empty.Render("Files, folders, .m3u playlists or .html pages. Drop files to paste their paths."))
	content.WriteString("\n\n")
	content.WriteString(a.renderHintsInline([]Hint{
		{Key: "Enter", Desc: "add"},
		{Key: "Esc", Desc: "cancel"},
	}))

	modalContent := a.styles.Title.Render(title.String()) + content.String()

	// Place modal in center, then add help bar at bottom
	modal := lipgloss.Place(
		a.width,
		max(a.height-1, 0), // Leave room for help bar
		lipgloss.Center,
		lipgloss.Center,
		modalStyle.Render(modalContent),
	)

	return lipgloss.JoinVertical(lipgloss.Left, modal, a.fitLine(a.renderHints(a.getContextualHints())))
}

// renderFinder renders the full-screen fuzzy finder over display names.
func (a App) renderFinder() string {
	contentStyle := lipgloss.NewStyle().Padding(1, 2)
	finderLayout := layout.CalculateFinderLayout(a.width, a.height, a.layoutConfig.Finder)
	itemWidth := max(finderLayout.Width-2, 1)

	var results strings.Builder
	if len(a.finder.Results) == 0 {
		results.WriteString(a.styles.Empty.Render("No matches"))
	} else {
		start, end := layout.CalculateVisibleListItems(finderLayout.ListHeight, a.finder.Cursor, len(a.finder.Results))
		for i := start; i < end; i++ {
			results.WriteString(a.renderFinderItem(a.finder.Results[i], i == a.finder.Cursor, itemWidth))
			results.WriteString("\n")
		}
	}

	countStr := fmt.Sprintf("%d results", len(a.finder.Results))
	if len(a.finder.Results) == 1 {
		countStr = "1 result"
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		a.styles.Title.Render("Find")+"  "+a.styles.Empty.Render(countStr),
		"",
		a.finder.Input.View(),
		"",
		strings.TrimRight(results.String(), "\n"),
	)

	main := lipgloss.Place(
		a.width,
		max(a.height-1, 0),
		lipgloss.Left,
		lipgloss.Top,
		contentStyle.Render(content),
	)

	return lipgloss.JoinVertical(lipgloss.Left, main, a.fitLine(a.renderHints(a.getContextualHints())))
}

// renderFinderItem renders one result with its matched characters highlighted.
func (a App) renderFinderItem(r search.Result, selected bool, maxWidth int) string {
	name, _ := layout.TruncateText(r.Name, maxWidth-8, a.layoutConfig.Text)
	position := fmt.Sprintf(" #%d", r.Index+1)

	if selected {
		return a.styles.ItemSelected.Render("▸ " + name + position)
	}

	matched := make(map[int]bool, len(r.MatchedIndexes))
	for _, i := range r.MatchedIndexes {
		matched[i] = true
	}
	var b strings.Builder
	b.WriteString("  ")
	for i, ch := range name {
		if matched[i] {
			b.WriteString(a.styles.Match.Render(string(ch)))
		} else {
			b.WriteRune(ch)
		}
	}
	b.WriteString(a.styles.Empty.Render(position))
	return b.String()
}
