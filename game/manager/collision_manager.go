package manager

import (
	"the-snake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsFoodCollision checks if the head sits on the food
func (cm *CollisionManager) IsFoodCollision(head types.Point, food types.Point) bool {
	return head == food
}

// FreeCells counts the cells not covered by body
func (cm *CollisionManager) FreeCells(body []types.Point) int {
	seen := make(map[types.Point]struct{}, len(body))
	for _, p := range body {
		if cm.grid.Contains(p) {
			seen[p] = struct{}{}
		}
	}
	return cm.grid.CellCount() - len(seen)
}
