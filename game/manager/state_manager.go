package manager

import (
	"fmt"
)

// GameStats is a snapshot of the session counters. Nothing is persisted.
type GameStats struct {
	Ticks      int
	Meals      int
	Resets     int
	Length     int
	BestLength int
	BoardFull  bool
}

type StateManager struct {
	stats GameStats
}

func NewStateManager() *StateManager {
	return &StateManager{
		stats: GameStats{Length: 1, BestLength: 1},
	}
}

func (sm *StateManager) RecordTick() {
	sm.stats.Ticks++
}

// RecordMeal notes a meal and the new target length.
func (sm *StateManager) RecordMeal(length int, boardFull bool) {
	sm.stats.Meals++
	sm.stats.BoardFull = boardFull
	sm.setLength(length)
}

// RecordReset notes a self-collision respawn.
func (sm *StateManager) RecordReset() {
	sm.stats.Resets++
	sm.stats.BoardFull = false
	sm.setLength(1)
}

func (sm *StateManager) setLength(length int) {
	sm.stats.Length = length
	if length > sm.stats.BestLength {
		sm.stats.BestLength = length
	}
}

func (sm *StateManager) Stats() GameStats {
	return sm.stats
}

// Status renders the counters for a title bar or status line.
func (sm *StateManager) Status() string {
	s := fmt.Sprintf("Length: %d  Best: %d  Resets: %d", sm.stats.Length, sm.stats.BestLength, sm.stats.Resets)
	if sm.stats.BoardFull {
		s += "  Board full!"
	}
	return s
}
