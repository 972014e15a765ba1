package types

import "testing"

func TestGridDimensions(t *testing.T) {
	g := NewGrid(DefaultScreenWidth, DefaultScreenHeight, DefaultCellSize)

	if g.Columns() != 32 {
		t.Errorf("Expected 32 columns, got %d", g.Columns())
	}
	if g.Rows() != 24 {
		t.Errorf("Expected 24 rows, got %d", g.Rows())
	}
	if g.CellCount() != 768 {
		t.Errorf("Expected 768 cells, got %d", g.CellCount())
	}
	if c := g.Center(); c != (Point{X: 320, Y: 240}) {
		t.Errorf("Expected center (320,240), got %v", c)
	}
}

func TestGridCenterSnapsToCell(t *testing.T) {
	g := NewGrid(100, 60, 20)
	c := g.Center()
	if !g.Contains(c) {
		t.Fatalf("Center %v is not a cell origin", c)
	}
	if c != (Point{X: 40, Y: 20}) {
		t.Errorf("Expected center (40,20), got %v", c)
	}
}

func TestGridStepWrapsAroundEdges(t *testing.T) {
	g := NewGrid(640, 480, 20)

	tests := []struct {
		name string
		from Point
		dir  Direction
		want Point
	}{
		{"Right edge", Point{X: 620, Y: 100}, Right, Point{X: 0, Y: 100}},
		{"Left edge", Point{X: 0, Y: 100}, Left, Point{X: 620, Y: 100}},
		{"Bottom edge", Point{X: 200, Y: 460}, Down, Point{X: 200, Y: 0}},
		{"Top edge", Point{X: 200, Y: 0}, Up, Point{X: 200, Y: 460}},
		{"Interior", Point{X: 200, Y: 200}, Right, Point{X: 220, Y: 200}},
		{"Corner", Point{X: 620, Y: 460}, Down, Point{X: 620, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Step(tt.from, tt.dir)
			if got != tt.want {
				t.Errorf("Step(%v, %v) = %v, want %v", tt.from, tt.dir, got, tt.want)
			}
			if !g.Contains(got) {
				t.Errorf("Step result %v escaped the grid", got)
			}
		})
	}
}

func TestGridCellsAreUniqueAndInside(t *testing.T) {
	g := NewGrid(100, 60, 20)
	cells := g.Cells()

	if len(cells) != g.CellCount() {
		t.Fatalf("Expected %d cells, got %d", g.CellCount(), len(cells))
	}

	seen := make(map[Point]bool, len(cells))
	for _, c := range cells {
		if !g.Contains(c) {
			t.Errorf("Cell %v is outside the grid", c)
		}
		if seen[c] {
			t.Errorf("Cell %v listed twice", c)
		}
		seen[c] = true
	}
}

func TestGridContains(t *testing.T) {
	g := NewGrid(100, 60, 20)

	tests := []struct {
		p    Point
		want bool
	}{
		{Point{X: 0, Y: 0}, true},
		{Point{X: 80, Y: 40}, true},
		{Point{X: 100, Y: 0}, false},
		{Point{X: 0, Y: 60}, false},
		{Point{X: -20, Y: 0}, false},
		{Point{X: 10, Y: 0}, false},
	}

	for _, tt := range tests {
		if got := g.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestGridIndex(t *testing.T) {
	g := NewGrid(640, 480, 20)
	col, row := g.Index(Point{X: 620, Y: 40})
	if col != 31 || row != 2 {
		t.Errorf("Expected (31,2), got (%d,%d)", col, row)
	}
}
