package game

import (
	"time"

	"the-snake/game/types"

	"github.com/pkg/errors"
)

// Frontends
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

// Config holds everything the game loop needs at construction.
type Config struct {
	Frontend       string
	Title          string
	ScreenWidth    int    // pixels
	ScreenHeight   int    // pixels
	CellSize       int    // pixels per cell side
	TicksPerSecond int    // simulation rate
	Seed           uint64 // 0 means seed from the clock
}

// DefaultConfig returns the classic 640x480 board at 10 ticks per second.
func DefaultConfig() Config {
	return Config{
		Frontend:       FrontendWindow,
		Title:          "The Snake",
		ScreenWidth:    types.DefaultScreenWidth,
		ScreenHeight:   types.DefaultScreenHeight,
		CellSize:       types.DefaultCellSize,
		TicksPerSecond: types.DefaultTicksPerSecond,
	}
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	switch {
	case c.CellSize <= 0:
		return errors.Errorf("cell size must be positive, got %d", c.CellSize)
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return errors.Errorf("screen must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	case c.ScreenWidth%c.CellSize != 0 || c.ScreenHeight%c.CellSize != 0:
		return errors.Errorf("screen %dx%d is not a multiple of cell size %d", c.ScreenWidth, c.ScreenHeight, c.CellSize)
	case c.TicksPerSecond <= 0:
		return errors.Errorf("ticks per second must be positive, got %d", c.TicksPerSecond)
	}
	switch c.Frontend {
	case FrontendWindow, FrontendTerminal:
	default:
		return errors.Errorf("unknown frontend %q", c.Frontend)
	}
	return nil
}

// Grid is the playing field described by c.
func (c Config) Grid() types.Grid {
	return types.NewGrid(c.ScreenWidth, c.ScreenHeight, c.CellSize)
}

// TickInterval is the time between two ticks.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TicksPerSecond)
}
