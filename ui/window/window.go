// Package window is the raylib frontend.
package window

import (
	"the-snake/game/input"
	"the-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	statusFontSize = 20
	statusPadding  = 4
)

var directionKeys = map[int32]types.Direction{
	rl.KeyUp:    types.Up,
	rl.KeyDown:  types.Down,
	rl.KeyLeft:  types.Left,
	rl.KeyRight: types.Right,
	rl.KeyW:     types.Up,
	rl.KeyS:     types.Down,
	rl.KeyA:     types.Left,
	rl.KeyD:     types.Right,
}

type Window struct {
	grid    types.Grid
	drawing bool
}

// New opens a window sized to the grid. Frames are paced by the game loop,
// and Escape arrives as a quit event instead of closing the window.
func New(grid types.Grid, title string) *Window {
	rl.InitWindow(int32(grid.Width), int32(grid.Height), title)
	rl.SetExitKey(rl.KeyNull)
	return &Window{grid: grid}
}

func (w *Window) begin() {
	if !w.drawing {
		rl.BeginDrawing()
		w.drawing = true
	}
}

func (w *Window) Fill(c types.Color) {
	w.begin()
	rl.ClearBackground(color(c))
}

func (w *Window) DrawCell(p types.Point, fill, outline types.Color) {
	w.begin()
	size := int32(w.grid.CellSize)
	rl.DrawRectangle(int32(p.X), int32(p.Y), size, size, color(fill))
	rl.DrawRectangleLines(int32(p.X), int32(p.Y), size, size, color(outline))
}

func (w *Window) SetStatus(status string) {
	w.begin()
	rl.DrawText(status, statusPadding, statusPadding, statusFontSize, rl.White)
}

// Poll reports the keys pressed since the last frame. Closing the window
// counts as a quit.
func (w *Window) Poll() []input.Event {
	var out []input.Event
	if rl.WindowShouldClose() {
		out = append(out, input.QuitEvent())
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if key == rl.KeyEscape {
			out = append(out, input.QuitEvent())
			continue
		}
		if d, ok := directionKeys[key]; ok {
			out = append(out, input.TurnEvent(d))
		}
	}
	return out
}

func (w *Window) Present() error {
	w.begin()
	rl.EndDrawing()
	w.drawing = false
	return nil
}

func (w *Window) Close() {
	rl.CloseWindow()
}

func color(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}
