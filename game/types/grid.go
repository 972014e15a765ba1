package types

// Grid is a toroidal playing field of Width x Height pixels tiled by
// square cells of CellSize pixels.
type Grid struct {
	Width    int
	Height   int
	CellSize int
}

// NewGrid returns a grid of the given pixel dimensions.
func NewGrid(width, height, cellSize int) Grid {
	return Grid{Width: width, Height: height, CellSize: cellSize}
}

// Columns is the number of cells per row.
func (g Grid) Columns() int {
	return g.Width / g.CellSize
}

// Rows is the number of cells per column.
func (g Grid) Rows() int {
	return g.Height / g.CellSize
}

// CellCount is the total number of cells.
func (g Grid) CellCount() int {
	return g.Columns() * g.Rows()
}

// Contains reports whether p is a cell origin inside the grid.
func (g Grid) Contains(p Point) bool {
	if p.X < 0 || p.X >= g.Width || p.Y < 0 || p.Y >= g.Height {
		return false
	}
	return p.X%g.CellSize == 0 && p.Y%g.CellSize == 0
}

// Center returns the cell nearest the middle of the grid.
func (g Grid) Center() Point {
	return Point{
		X: (g.Width / 2) / g.CellSize * g.CellSize,
		Y: (g.Height / 2) / g.CellSize * g.CellSize,
	}
}

// Wrap folds p back into the grid on both axes.
func (g Grid) Wrap(p Point) Point {
	return Point{
		X: ((p.X % g.Width) + g.Width) % g.Width,
		Y: ((p.Y % g.Height) + g.Height) % g.Height,
	}
}

// Step returns the cell one unit away from p in direction d, wrapping
// around the edges.
func (g Grid) Step(p Point, d Direction) Point {
	v := d.ToPoint()
	return g.Wrap(p.Add(Point{X: v.X * g.CellSize, Y: v.Y * g.CellSize}))
}

// Cells lists every cell column by column.
func (g Grid) Cells() []Point {
	cells := make([]Point, 0, g.CellCount())
	for x := 0; x < g.Columns(); x++ {
		for y := 0; y < g.Rows(); y++ {
			cells = append(cells, Point{X: x * g.CellSize, Y: y * g.CellSize})
		}
	}
	return cells
}

// Index converts a cell to its column and row.
func (g Grid) Index(p Point) (col, row int) {
	return p.X / g.CellSize, p.Y / g.CellSize
}
