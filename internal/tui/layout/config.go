package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	Grid   GridConfig
	Modal  ModalConfig
	Input  InputConfig
	Text   TextConfig
	Finder FinderConfig
}

// GridConfig holds the terminal-to-grid conversion values.
type GridConfig struct {
	// HeaderRows is the title bar above the grid.
	HeaderRows int

	// FooterRows is the status line plus the short help bar.
	FooterRows int

	// CharAspect is how many width units one terminal row is worth.
	// Terminal cells are roughly twice as tall as they are wide.
	CharAspect int

	// CellChrome is the border drawn around each cell, per axis.
	CellChrome int

	// MinCellWidth and MinCellHeight are the smallest cell worth drawing.
	// Smaller cells render as a placeholder.
	MinCellWidth  int
	MinCellHeight int
}

// ModalConfig holds modal dialog configuration.
type ModalConfig struct {
	// DefaultWidthPercent is the standard modal width as percentage of terminal width.
	DefaultWidthPercent int

	// LargeWidthPercent is used for the errors panel.
	LargeWidthPercent int

	// MinWidth is the minimum modal width in characters.
	MinWidth int

	// MaxWidth is the maximum modal width in characters.
	MaxWidth int

	// ErrorsMaxVisible: max rows shown in the errors panel.
	ErrorsMaxVisible int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	PathCharLimit   int
	SearchCharLimit int

	// Display widths
	PathWidth   int
	SearchWidth int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// FinderConfig holds fuzzy finder layout configuration.
type FinderConfig struct {
	// WidthPercent: percentage of terminal width for the finder.
	WidthPercent int

	// HeaderReduction: lines for title, input, help, padding.
	HeaderReduction int

	// MaxVisible caps the result list.
	MaxVisible int
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Grid: GridConfig{
			HeaderRows:    1,
			FooterRows:    2, // status line (1) + help bar (1)
			CharAspect:    2,
			CellChrome:    2,
			MinCellWidth:  6,
			MinCellHeight: 3,
		},
		Modal: ModalConfig{
			DefaultWidthPercent: 50,
			LargeWidthPercent:   70,
			MinWidth:            40,
			MaxWidth:            100,
			ErrorsMaxVisible:    10,
		},
		Input: InputConfig{
			PathCharLimit:   1024,
			SearchCharLimit: 100,
			PathWidth:       60,
			SearchWidth:     40,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
		Finder: FinderConfig{
			WidthPercent:    60,
			HeaderReduction: 8,
			MaxVisible:      12,
		},
	}
}
