package types

// Point is the top-left pixel of a grid cell.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Color is an opaque RGB colour.
type Color struct {
	R, G, B uint8
}

// Palette
var (
	BackgroundColor  = Color{R: 0, G: 0, B: 0}
	SnakeColor       = Color{R: 60, G: 179, B: 113}
	SnakeHeadColor   = Color{R: 78, G: 232, B: 147}
	FoodColor        = Color{R: 250, G: 20, B: 60}
	FoodOutlineColor = Color{R: 255, G: 160, B: 122}
)

// Surface is the drawing target entities render onto.
type Surface interface {
	// Fill paints the whole surface.
	Fill(c Color)
	// DrawCell paints the cell at p with an outline.
	DrawCell(p Point, fill, outline Color)
}

// Rand is the random source used for food placement and respawn
// direction. *rand.Rand from golang.org/x/exp/rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Game defaults
const (
	DefaultScreenWidth    = 640
	DefaultScreenHeight   = 480
	DefaultCellSize       = 20
	DefaultTicksPerSecond = 10
)
