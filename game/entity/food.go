package entity

import (
	"the-snake/game/types"
)

// Placement reports the result of Food.Relocate.
type Placement int

const (
	// Relocated means the food moved to a free cell.
	Relocated Placement = iota
	// BoardFull means no free cell exists and the food stayed put.
	BoardFull
)

func (p Placement) String() string {
	if p == BoardFull {
		return "board full"
	}
	return "relocated"
}

// Food occupies a single cell.
type Food struct {
	grid     types.Grid
	rng      types.Rand
	position types.Point
}

// NewFood creates food at a random cell outside excluded. If every cell is
// excluded it sits at the grid centre.
func NewFood(grid types.Grid, rng types.Rand, excluded ...types.Point) *Food {
	f := &Food{
		grid:     grid,
		rng:      rng,
		position: grid.Center(),
	}
	f.Relocate(excluded)
	return f
}

// Relocate picks a cell uniformly among those not in excluded.
func (f *Food) Relocate(excluded []types.Point) Placement {
	taken := make(map[types.Point]struct{}, len(excluded))
	for _, p := range excluded {
		taken[p] = struct{}{}
	}

	free := make([]types.Point, 0, f.grid.CellCount())
	for _, c := range f.grid.Cells() {
		if _, ok := taken[c]; !ok {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		return BoardFull
	}

	f.position = free[f.rng.Intn(len(free))]
	return Relocated
}

// Position is the occupied cell.
func (f *Food) Position() types.Point {
	return f.position
}

// Place moves the food to p without consulting the random source.
func (f *Food) Place(p types.Point) {
	f.position = p
}

func (f *Food) Draw(surface types.Surface) {
	surface.DrawCell(f.position, types.FoodColor, types.FoodOutlineColor)
}
