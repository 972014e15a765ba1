package entity

import (
	"the-snake/game/types"

	"golang.org/x/exp/slices"
)

// Outcome reports what a call to Advance did.
type Outcome int

const (
	// Moved means the head entered a free cell.
	Moved Outcome = iota
	// Collided means the head ran into the body and the snake respawned.
	Collided
)

func (o Outcome) String() string {
	if o == Collided {
		return "collided"
	}
	return "moved"
}

// Snake is an ordered run of cells, head first, that advances one cell per
// tick and wraps around the grid edges.
type Snake struct {
	grid      types.Grid
	rng       types.Rand
	start     types.Point
	body      []types.Point
	length    int
	direction types.Direction
	pending   types.Direction
	vacated   types.Point
	hasVacant bool
}

// NewSnake places a one-cell snake at the grid centre heading right.
// rng picks the heading after every respawn.
func NewSnake(grid types.Grid, rng types.Rand) *Snake {
	s := &Snake{
		grid:  grid,
		rng:   rng,
		start: grid.Center(),
	}
	s.Reset()
	s.direction = types.Right
	return s
}

// Reset puts the snake back to a single cell at the start position with a
// random heading. Pending input and the vacated cell are discarded.
func (s *Snake) Reset() {
	s.length = 1
	s.body = []types.Point{s.start}
	s.direction = types.Directions[s.rng.Intn(len(types.Directions))]
	s.pending = types.None
	s.hasVacant = false
}

// SetDirection queues d for the next Advance. A reversal of the current
// heading is ignored.
func (s *Snake) SetDirection(d types.Direction) {
	if d == types.None || d == s.direction.Opposite() {
		return
	}
	s.pending = d
}

// Advance moves the snake one cell. Running into its own body resets it.
func (s *Snake) Advance() Outcome {
	if s.pending != types.None {
		s.direction = s.pending
		s.pending = types.None
	}
	s.hasVacant = false

	next := s.grid.Step(s.Head(), s.direction)
	if s.Occupies(next) {
		s.Reset()
		return Collided
	}

	s.body = slices.Insert(s.body, 0, next)
	if len(s.body) > s.length {
		s.vacated = s.body[len(s.body)-1]
		s.hasVacant = true
		s.body = s.body[:len(s.body)-1]
	}
	return Moved
}

// Grow raises the target length by one. The body catches up on the next
// Advance because the tail is kept instead of dropped.
func (s *Snake) Grow() {
	s.length++
}

// Head returns the leading cell.
func (s *Snake) Head() types.Point {
	return s.body[0]
}

// Body returns a copy of the occupied cells, head first.
func (s *Snake) Body() []types.Point {
	return slices.Clone(s.body)
}

// Occupies reports whether p is part of the body.
func (s *Snake) Occupies(p types.Point) bool {
	return slices.Contains(s.body, p)
}

// Length is the target length.
func (s *Snake) Length() int {
	return s.length
}

func (s *Snake) Direction() types.Direction {
	return s.direction
}

// Pending is the queued heading, or None.
func (s *Snake) Pending() types.Direction {
	return s.pending
}

// Start is the respawn cell.
func (s *Snake) Start() types.Point {
	return s.start
}

// Vacated returns the cell the tail left on the last Advance.
func (s *Snake) Vacated() (types.Point, bool) {
	return s.vacated, s.hasVacant
}

// Draw clears the vacated cell and paints the body with a highlighted head.
func (s *Snake) Draw(surface types.Surface) {
	if p, ok := s.Vacated(); ok {
		surface.DrawCell(p, types.BackgroundColor, types.BackgroundColor)
	}
	for _, p := range s.body[1:] {
		surface.DrawCell(p, types.SnakeColor, types.SnakeColor)
	}
	surface.DrawCell(s.Head(), types.SnakeHeadColor, types.SnakeColor)
}
