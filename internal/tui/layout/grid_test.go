package layout

import (
	"math"
	"testing"
)

func TestCalculateCellSize(t *testing.T) {
	tests := []struct {
		name     string
		aspect   float64
		count    int
		viewport Size
		want     Size
	}{
		{"no items", 16.0 / 9.0, 0, Size{800, 600}, Size{1, 1}},
		{"negative count", 16.0 / 9.0, -3, Size{800, 600}, Size{1, 1}},
		{"single item fills viewport", 16.0 / 9.0, 1, Size{800, 600}, Size{800, 600}},
		{"single item ignores aspect", 9.0 / 16.0, 1, Size{800, 600}, Size{800, 600}},
		{"four hd in a square", 16.0 / 9.0, 4, Size{1000, 1000}, Size{500, 500}},        // (2,2) ties (3,2), fewer rows wins
		{"seven hd on a 1080p screen", 16.0 / 9.0, 7, Size{1920, 1080}, Size{640, 360}}, // 3x3
		{"two verticals side by side", 9.0 / 16.0, 2, Size{1000, 1000}, Size{500, 1000}},
		{"two wides stacked", 2.35, 2, Size{1000, 1000}, Size{1000, 500}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateCellSize(tt.aspect, tt.count, tt.viewport)
			if got != tt.want {
				t.Errorf("CalculateCellSize(%.3f, %d, %v) = %v, want %v",
					tt.aspect, tt.count, tt.viewport, got, tt.want)
			}
		})
	}
}

// bruteForce picks the best shape independently of SolveGrid.
func bruteForce(aspect float64, count int, viewport Size) (rows int, cell Size) {
	best := -1.0
	for r := 1; r <= count; r++ {
		c := int(math.Ceil(float64(count) / float64(r)))
		x := float64(viewport.Width / c)
		y := float64(viewport.Height / r)

		w := math.Min(x, y*aspect)
		area := w * (w / aspect)
		if y == 0 || x == 0 {
			area = 0
		}
		if area > best {
			best = area
			rows = r
			cell = Size{int(x), int(y)}
		}
	}
	return rows, cell
}

func TestSolveGrid_MatchesBruteForce(t *testing.T) {
	aspects := []float64{16.0 / 9.0, 4.0 / 3.0, 1, 9.0 / 16.0, 1.85, 2.35}
	viewports := []Size{{1000, 1000}, {1920, 1080}, {640, 480}, {120, 74}, {80, 10}}

	for _, aspect := range aspects {
		for _, vp := range viewports {
			for count := 2; count <= 25; count++ {
				g := SolveGrid(aspect, count, vp)
				wantRows, wantCell := bruteForce(aspect, count, vp)
				if g.Rows != wantRows || g.Cell != wantCell {
					t.Errorf("SolveGrid(%.3f, %d, %v) = %d rows %v, want %d rows %v",
						aspect, count, vp, g.Rows, g.Cell, wantRows, wantCell)
				}
			}
		}
	}
}

func TestSolveGrid_FourInSquare(t *testing.T) {
	g := SolveGrid(16.0/9.0, 4, Size{1000, 1000})

	if g.Rows != 2 || g.Cols != 2 || g.Count != 4 {
		t.Errorf("SolveGrid = %d x %d (%d items), want 2 x 2 (4 items)", g.Rows, g.Cols, g.Count)
	}
}

func TestSolveGrid_Properties(t *testing.T) {
	viewports := []Size{{800, 600}, {1, 1}, {333, 777}, {1920, 1080}}

	for _, vp := range viewports {
		for count := 1; count <= 40; count++ {
			g := SolveGrid(16.0/9.0, count, vp)
			if g.Cell.Width < 0 || g.Cell.Height < 0 || g.Cell.Width > vp.Width || g.Cell.Height > vp.Height {
				t.Errorf("SolveGrid(%d, %v) cell %v outside viewport", count, vp, g.Cell)
			}
			if g.Rows*g.Cols < count {
				t.Errorf("SolveGrid(%d, %v) = %d x %d cannot hold every item", count, vp, g.Rows, g.Cols)
			}
			if again := SolveGrid(16.0/9.0, count, vp); again != g {
				t.Errorf("SolveGrid(%d, %v) not deterministic: %v then %v", count, vp, g, again)
			}
		}
	}
}

func TestSolveGrid_FlatViewport(t *testing.T) {
	g := SolveGrid(16.0/9.0, 3, Size{800, 0})

	if g.Rows != 1 || g.Cell != (Size{266, 0}) {
		t.Errorf("SolveGrid on a flat viewport = %d rows %v, want 1 row {266 0}", g.Rows, g.Cell)
	}
}

func TestFittedArea(t *testing.T) {
	tests := []struct {
		name   string
		box    Size
		aspect float64
		want   float64
	}{
		{"wide clip in square", Size{100, 100}, 2, 5000},
		{"tall clip in square", Size{100, 100}, 0.5, 5000},
		{"exact fit", Size{160, 90}, 16.0 / 9.0, 14400},
		{"empty box", Size{0, 100}, 1, 0},
		{"bad aspect uses box", Size{10, 20}, 0, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FittedArea(tt.box, tt.aspect)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("FittedArea(%v, %.3f) = %f, want %f", tt.box, tt.aspect, got, tt.want)
			}
		})
	}
}

func TestCellIndexAt(t *testing.T) {
	g := Grid{Rows: 2, Cols: 3, Count: 5, Cell: Size{10, 4}}

	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"origin", 0, 0, 0},
		{"last column", 25, 0, 2},
		{"second row", 5, 5, 3},
		{"empty slot", 25, 5, -1},
		{"right of grid", 30, 0, -1},
		{"below grid", 0, 8, -1},
		{"negative", -1, 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CellIndexAt(g, tt.x, tt.y)
			if got != tt.want {
				t.Errorf("CellIndexAt(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestTerminalViewport(t *testing.T) {
	cfg := DefaultConfig().Grid

	tests := []struct {
		name          string
		width, height int
		want          Size
	}{
		{"normal terminal", 120, 40, Size{120, 74}}, // (40 - 3) * 2
		{"tiny terminal", 20, 2, Size{20, 0}},
		{"negative width", -5, 10, Size{0, 14}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TerminalViewport(tt.width, tt.height, cfg)
			if got != tt.want {
				t.Errorf("TerminalViewport(%d, %d) = %v, want %v", tt.width, tt.height, got, tt.want)
			}
		})
	}
}

func TestCellRows(t *testing.T) {
	cfg := DefaultConfig().Grid

	if got := CellRows(Size{60, 37}, cfg); got != 18 {
		t.Errorf("CellRows({60 37}) = %d, want 18", got)
	}
	if got := CellRows(Size{60, 37}, GridConfig{}); got != 37 {
		t.Errorf("CellRows without CharAspect = %d, want 37", got)
	}
}

func TestTerminalCellAt(t *testing.T) {
	cfg := DefaultConfig().Grid
	g := Grid{Rows: 2, Cols: 3, Count: 6, Cell: Size{40, 20}} // 10 terminal rows per cell

	tests := []struct {
		name     string
		col, row int
		want     int
	}{
		{"header row", 5, 0, -1},
		{"first cell", 5, 1, 0},
		{"second row middle", 45, 13, 4},
		{"below grid", 45, 21, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TerminalCellAt(g, tt.col, tt.row, cfg)
			if got != tt.want {
				t.Errorf("TerminalCellAt(%d, %d) = %d, want %d", tt.col, tt.row, got, tt.want)
			}
		})
	}
}
