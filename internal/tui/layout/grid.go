package layout

import "math"

// Size is a width/height pair in layout units.
type Size struct {
	Width  int
	Height int
}

// Grid is a solved layout: Count items in Rows x Cols cells of size Cell,
// filled row by row from the top-left.
type Grid struct {
	Rows  int
	Cols  int
	Count int
	Cell  Size
}

// CalculateCellSize returns the cell size that gives itemCount items of the
// given aspect ratio the most visible area inside viewport.
func CalculateCellSize(aspectRatio float64, itemCount int, viewport Size) Size {
	return SolveGrid(aspectRatio, itemCount, viewport).Cell
}

// SolveGrid tries every row count from 1 to itemCount and keeps the shape
// whose cells, once shrunk to aspectRatio, cover the largest area.
// Ties keep the smallest row count. The returned cell is the unshrunk box;
// fitting media inside it is left to the renderer.
func SolveGrid(aspectRatio float64, itemCount int, viewport Size) Grid {
	viewport = Size{Width: max(viewport.Width, 0), Height: max(viewport.Height, 0)}

	switch {
	case itemCount <= 0:
		return Grid{Cell: Size{Width: 1, Height: 1}}
	case itemCount == 1:
		return Grid{Rows: 1, Cols: 1, Count: 1, Cell: viewport}
	}

	best := Grid{Count: itemCount}
	bestArea := -1.0
	for rows := 1; rows <= itemCount; rows++ {
		cols := (itemCount + rows - 1) / rows
		cell := Size{Width: viewport.Width / cols, Height: viewport.Height / rows}

		area := FittedArea(cell, aspectRatio)
		if area > bestArea {
			bestArea = area
			best.Rows, best.Cols, best.Cell = rows, cols, cell
		}
	}
	return best
}

// FittedArea is the area of the largest aspectRatio rectangle that fits in box.
// A box with no height or width has no area.
func FittedArea(box Size, aspectRatio float64) float64 {
	if box.Width <= 0 || box.Height <= 0 {
		return 0
	}
	x, y := float64(box.Width), float64(box.Height)
	if aspectRatio <= 0 || math.IsNaN(aspectRatio) || math.IsInf(aspectRatio, 0) {
		return x * y
	}

	if aspectRatio > x/y {
		y = x / aspectRatio
	} else {
		x = y * aspectRatio
	}
	return x * y
}

// CellIndexAt returns the index of the item under point (x, y), in layout
// units relative to the grid origin, or -1 when the point hits no item.
func CellIndexAt(g Grid, x, y int) int {
	if g.Cell.Width <= 0 || g.Cell.Height <= 0 || x < 0 || y < 0 {
		return -1
	}
	col := x / g.Cell.Width
	row := y / g.Cell.Height
	if col >= g.Cols || row >= g.Rows {
		return -1
	}

	i := row*g.Cols + col
	if i >= g.Count {
		return -1
	}
	return i
}

// TerminalViewport converts a terminal size in columns and rows into the
// solver's viewport. Rows left over after the header and footer are scaled
// by CharAspect so cells come out roughly square on screen.
func TerminalViewport(width, height int, cfg GridConfig) Size {
	rows := max(height-cfg.HeaderRows-cfg.FooterRows, 0)
	return Size{Width: max(width, 0), Height: rows * charAspect(cfg)}
}

// CellRows converts a cell height back into terminal rows.
func CellRows(cell Size, cfg GridConfig) int {
	return cell.Height / charAspect(cfg)
}

// TerminalCellAt hit-tests a mouse position given in terminal columns and
// rows against a grid solved for TerminalViewport.
func TerminalCellAt(g Grid, col, row int, cfg GridConfig) int {
	rows := CellRows(g.Cell, cfg)
	if rows <= 0 {
		return -1
	}
	row -= cfg.HeaderRows
	if row < 0 {
		return -1
	}
	// Rendered cells are whole rows tall, so hit-test in rows rather than units.
	return CellIndexAt(Grid{Rows: g.Rows, Cols: g.Cols, Count: g.Count, Cell: Size{Width: g.Cell.Width, Height: rows}}, col, row)
}

func charAspect(cfg GridConfig) int {
	if cfg.CharAspect <= 0 {
		return 1
	}
	return cfg.CharAspect
}
