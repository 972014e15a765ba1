package manager

import (
	"the-snake/game/entity"
	"the-snake/game/types"

	"github.com/golang/glog"
)

type FoodManager struct {
	grid         types.Grid
	food         *entity.Food
	collisionMgr *CollisionManager
	boardFull    bool
}

func NewFoodManager(grid types.Grid, food *entity.Food, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		food:         food,
		collisionMgr: collisionMgr,
	}
}

// Relocate moves the food off the snake. A full board leaves the food in
// place and is logged once until a relocation succeeds again.
func (fm *FoodManager) Relocate(body []types.Point) entity.Placement {
	placement := fm.food.Relocate(body)
	switch placement {
	case entity.BoardFull:
		if !fm.boardFull {
			glog.Warningf("board full: no free cell for food, %d cells covered", len(body))
		}
		fm.boardFull = true
	case entity.Relocated:
		fm.boardFull = false
		glog.V(2).Infof("food relocated to %v, %d free cells", fm.food.Position(), fm.collisionMgr.FreeCells(body))
	}
	return placement
}

// IsEaten reports whether head is on the food.
func (fm *FoodManager) IsEaten(head types.Point) bool {
	return fm.collisionMgr.IsFoodCollision(head, fm.food.Position())
}

func (fm *FoodManager) Food() *entity.Food {
	return fm.food
}

// BoardFull reports whether the last relocation found no free cell.
func (fm *FoodManager) BoardFull() bool {
	return fm.boardFull
}
