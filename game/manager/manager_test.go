package manager

import (
	"strings"
	"testing"

	"the-snake/game/entity"
	"the-snake/game/types"
)

type fixedRand int

func (f fixedRand) Intn(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}

func TestCollisionManager(t *testing.T) {
	g := types.NewGrid(60, 40, 20)
	cm := NewCollisionManager(g)

	if !cm.IsFoodCollision(types.Point{X: 20, Y: 0}, types.Point{X: 20, Y: 0}) {
		t.Errorf("Expected a food collision on the same cell")
	}
	if cm.IsFoodCollision(types.Point{X: 20, Y: 0}, types.Point{X: 0, Y: 0}) {
		t.Errorf("Unexpected food collision on different cells")
	}

	tests := []struct {
		name string
		body []types.Point
		want int
	}{
		{"Empty", nil, 6},
		{"One cell", []types.Point{{X: 0, Y: 0}}, 5},
		{"Duplicates counted once", []types.Point{{X: 0, Y: 0}, {X: 0, Y: 0}}, 5},
		{"Outside ignored", []types.Point{{X: 200, Y: 0}}, 6},
		{"Full", g.Cells(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cm.FreeCells(tt.body); got != tt.want {
				t.Errorf("FreeCells() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFoodManagerBoardFull(t *testing.T) {
	g := types.NewGrid(60, 40, 20)
	food := entity.NewFood(g, fixedRand(0))
	fm := NewFoodManager(g, food, NewCollisionManager(g))

	before := food.Position()
	if got := fm.Relocate(g.Cells()); got != entity.BoardFull {
		t.Fatalf("Expected board full, got %v", got)
	}
	if !fm.BoardFull() {
		t.Errorf("Expected BoardFull() after a failed relocation")
	}
	if food.Position() != before {
		t.Errorf("Food moved on a full board")
	}

	if got := fm.Relocate(nil); got != entity.Relocated {
		t.Fatalf("Expected relocated, got %v", got)
	}
	if fm.BoardFull() {
		t.Errorf("Board full flag not cleared by a successful relocation")
	}
}

func TestFoodManagerIsEaten(t *testing.T) {
	g := types.NewGrid(60, 40, 20)
	food := entity.NewFood(g, fixedRand(0))
	fm := NewFoodManager(g, food, NewCollisionManager(g))

	food.Place(types.Point{X: 40, Y: 20})
	if !fm.IsEaten(types.Point{X: 40, Y: 20}) {
		t.Errorf("Expected food at (40,20) to be eaten")
	}
	if fm.IsEaten(types.Point{X: 20, Y: 20}) {
		t.Errorf("Food eaten from the wrong cell")
	}
	if fm.Food() != food {
		t.Errorf("Food() returned a different entity")
	}
}

func TestStateManager(t *testing.T) {
	sm := NewStateManager()

	sm.RecordTick()
	sm.RecordTick()
	sm.RecordMeal(2, false)
	sm.RecordMeal(3, false)
	sm.RecordReset()
	sm.RecordMeal(2, true)

	got := sm.Stats()
	want := GameStats{Ticks: 2, Meals: 3, Resets: 1, Length: 2, BestLength: 3, BoardFull: true}
	if got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}

	status := sm.Status()
	for _, part := range []string{"Length: 2", "Best: 3", "Resets: 1", "Board full"} {
		if !strings.Contains(status, part) {
			t.Errorf("Status %q missing %q", status, part)
		}
	}

	sm.RecordReset()
	if strings.Contains(sm.Status(), "Board full") {
		t.Errorf("Board full shown after a reset")
	}
}
