package layout

// FinderLayout holds calculated fuzzy finder dimensions.
type FinderLayout struct {
	Width      int
	ListHeight int
}

// CalculateModalWidth computes responsive modal width based on percentage of terminal width.
// Uses widthPercent of terminal width, clamped between MinWidth and MaxWidth.
func CalculateModalWidth(terminalWidth, widthPercent int, cfg ModalConfig) int {
	width := min(max(terminalWidth*widthPercent/100, cfg.MinWidth), cfg.MaxWidth)

	// Leave room for the border on narrow terminals.
	return max(min(width, terminalWidth-4), 1)
}

// CalculateFinderLayout computes the fuzzy finder dimensions.
// The list never shows more than MaxVisible rows.
func CalculateFinderLayout(terminalWidth, terminalHeight int, cfg FinderConfig) FinderLayout {
	height := max(terminalHeight-cfg.HeaderReduction, 1)
	if cfg.MaxVisible > 0 {
		height = min(height, cfg.MaxVisible)
	}
	return FinderLayout{
		Width:      max(terminalWidth*cfg.WidthPercent/100, 1),
		ListHeight: height,
	}
}

// CalculateVisibleListItems computes the start and end indices for a scrollable list.
// Returns (start, end) where items[start:end] should be displayed.
func CalculateVisibleListItems(maxVisible, selectedIdx, totalItems int) (start, end int) {
	if totalItems <= maxVisible {
		return 0, totalItems
	}
	if selectedIdx >= maxVisible {
		start = selectedIdx - maxVisible + 1
	}
	return start, min(start+maxVisible, totalItems)
}
