package geometry

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance*math.Max(1, math.Abs(b))
}

func TestCanvas(t *testing.T) {
	width, height := Canvas()

	if !almostEqual(width, 279.4*96/2.54) {
		t.Errorf("width mismatch: got %v, want %v", width, 279.4*96/2.54)
	}
	if !almostEqual(height, 431.8*96/2.54) {
		t.Errorf("height mismatch: got %v, want %v", height, 431.8*96/2.54)
	}

	// 279.4 cm is exactly 110 inches, 431.8 cm exactly 170 inches.
	if !almostEqual(width, 10560) {
		t.Errorf("width mismatch: got %v, want 10560", width)
	}
	if !almostEqual(height, 16320) {
		t.Errorf("height mismatch: got %v, want 16320", height)
	}
}

func TestCmToPixels(t *testing.T) {
	tests := []struct {
		name string
		cm   float64
		want float64
	}{
		{"zero", 0, 0},
		{"one inch", 2.54, 96},
		{"one centimeter", 1, 96 / 2.54},
		{"ten inches", 25.4, 960},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CmToPixels(tt.cm); !almostEqual(got, tt.want) {
				t.Errorf("pixels mismatch: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name string
		grid Grid
	}{
		{"single cell", Grid{Rows: 1, Columns: 1}},
		{"four rows three columns", Grid{Rows: 4, Columns: 3}},
		{"tall grid", Grid{Rows: 100, Columns: 1}},
		{"wide grid", Grid{Rows: 1, Columns: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, err := Compute(tt.grid)
			if err != nil {
				t.Fatalf("Compute failed: %v", err)
			}

			wantCellWidth := (279.4 * 96 / 2.54) / float64(tt.grid.Columns)
			wantCellHeight := (431.8 * 96 / 2.54) / float64(tt.grid.Rows)

			if !almostEqual(layout.CellWidth, wantCellWidth) {
				t.Errorf("cell width mismatch: got %v, want %v", layout.CellWidth, wantCellWidth)
			}
			if !almostEqual(layout.CellHeight, wantCellHeight) {
				t.Errorf("cell height mismatch: got %v, want %v", layout.CellHeight, wantCellHeight)
			}

			width, height := Canvas()
			if layout.CanvasWidth != width || layout.CanvasHeight != height {
				t.Errorf("canvas depends on grid: got %vx%v, want %vx%v",
					layout.CanvasWidth, layout.CanvasHeight, width, height)
			}
		})
	}
}

func TestComputeConcreteScenario(t *testing.T) {
	layout, err := Compute(Grid{Rows: 4, Columns: 3})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	if !almostEqual(layout.CellWidth, 3520) {
		t.Errorf("column width mismatch: got %v, want 3520", layout.CellWidth)
	}
	if !almostEqual(layout.CellHeight, 4080) {
		t.Errorf("row height mismatch: got %v, want 4080", layout.CellHeight)
	}
}

func TestComputeInvalidGrid(t *testing.T) {
	tests := []struct {
		name string
		grid Grid
	}{
		{"zero rows", Grid{Rows: 0, Columns: 3}},
		{"zero columns", Grid{Rows: 4, Columns: 0}},
		{"both zero", Grid{}},
		{"negative rows", Grid{Rows: -1, Columns: 3}},
		{"negative columns", Grid{Rows: 4, Columns: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, err := Compute(tt.grid)
			if !errors.Is(err, ErrInvalidGrid) {
				t.Errorf("error mismatch: got %v, want ErrInvalidGrid", err)
			}
			if layout != (Layout{}) {
				t.Errorf("layout on error: got %+v, want zero value", layout)
			}
		})
	}
}
