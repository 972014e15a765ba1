// Package terminal is a tcell frontend. Each grid cell is drawn two
// columns wide so the board keeps roughly square proportions, and the row
// below the board carries the status line.
package terminal

import (
	"the-snake/game/input"
	"the-snake/game/types"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

const (
	cellColumns = 2
	eventBuffer = 100
)

var directionKeys = map[tcell.Key]types.Direction{
	tcell.KeyUp:    types.Up,
	tcell.KeyDown:  types.Down,
	tcell.KeyLeft:  types.Left,
	tcell.KeyRight: types.Right,
}

var directionRunes = map[rune]types.Direction{
	'w': types.Up,
	's': types.Down,
	'a': types.Left,
	'd': types.Right,
}

// Terminal draws the board on a tcell screen.
type Terminal struct {
	screen tcell.Screen
	grid   types.Grid
	events chan tcell.Event
	done   chan struct{}
}

// New opens the controlling terminal.
func New(grid types.Grid) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create terminal screen")
	}
	return NewWithScreen(screen, grid)
}

// NewWithScreen initialises screen and starts forwarding its events.
func NewWithScreen(screen tcell.Screen, grid types.Grid) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "init terminal screen")
	}
	screen.HideCursor()

	t := &Terminal{
		screen: screen,
		grid:   grid,
		events: make(chan tcell.Event, eventBuffer),
		done:   make(chan struct{}),
	}

	w, h := screen.Size()
	if need, needRows := grid.Columns()*cellColumns, grid.Rows()+1; w < need || h < needRows {
		glog.Warningf("terminal is %dx%d, board needs %dx%d", w, h, need, needRows)
	}

	go t.pump()
	return t, nil
}

// pump forwards screen events to the loop until Close.
func (t *Terminal) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// Poll drains the events that arrived since the last call.
func (t *Terminal) Poll() []input.Event {
	var out []input.Event
	for {
		select {
		case ev := <-t.events:
			if e, ok := t.translate(ev); ok {
				out = append(out, e)
			}
		default:
			return out
		}
	}
}

func (t *Terminal) translate(ev tcell.Event) (input.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return translateKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return input.Event{}, false
}

// translateKey maps a key press to a game event.
func translateKey(key tcell.Key, r rune) (input.Event, bool) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.QuitEvent(), true
	case tcell.KeyRune:
		if r == 'q' {
			return input.QuitEvent(), true
		}
		if d, ok := directionRunes[r]; ok {
			return input.TurnEvent(d), true
		}
	default:
		if d, ok := directionKeys[key]; ok {
			return input.TurnEvent(d), true
		}
	}
	return input.Event{}, false
}

func style(fill, outline types.Color) tcell.Style {
	return tcell.StyleDefault.Background(color(fill)).Foreground(color(outline))
}

func color(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Fill paints the board area and blanks the status row.
func (t *Terminal) Fill(c types.Color) {
	t.screen.Clear()
	st := style(c, c)
	for row := 0; row < t.grid.Rows(); row++ {
		for col := 0; col < t.grid.Columns()*cellColumns; col++ {
			t.screen.SetContent(col, row, ' ', nil, st)
		}
	}
}

// DrawCell paints one cell. The outline colour shows as a half-block on
// the right edge when it differs from the fill.
func (t *Terminal) DrawCell(p types.Point, fill, outline types.Color) {
	col, row := t.grid.Index(p)
	x := col * cellColumns
	t.screen.SetContent(x, row, ' ', nil, style(fill, fill))
	if outline == fill {
		t.screen.SetContent(x+1, row, ' ', nil, style(fill, fill))
		return
	}
	t.screen.SetContent(x+1, row, '▐', nil, style(fill, outline))
}

func (t *Terminal) SetStatus(status string) {
	row := t.grid.Rows()
	x := 0
	for _, r := range status {
		t.screen.SetContent(x, row, r, nil, tcell.StyleDefault)
		x++
	}
}

func (t *Terminal) Present() error {
	t.screen.Show()
	return nil
}

// Close stops the event pump and restores the terminal.
func (t *Terminal) Close() {
	close(t.done)
	t.screen.Fini()
}
