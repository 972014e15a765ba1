// Package input turns frontend key events into snake steering.
package input

import (
	"the-snake/game/types"

	"github.com/golang/glog"
)

// Kind classifies an input event.
type Kind int

const (
	// Turn asks the snake to head in Event.Direction.
	Turn Kind = iota
	// Quit asks the game loop to stop.
	Quit
)

// Event is a frontend-neutral input event.
type Event struct {
	Kind      Kind
	Direction types.Direction
}

// TurnEvent is shorthand for a Turn towards d.
func TurnEvent(d types.Direction) Event {
	return Event{Kind: Turn, Direction: d}
}

// QuitEvent is shorthand for a Quit.
func QuitEvent() Event {
	return Event{Kind: Quit}
}

// Steerer receives direction requests.
type Steerer interface {
	SetDirection(d types.Direction)
}

// Handler applies polled events to a steerer.
type Handler struct{}

// NewHandler returns a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Apply feeds events to s in order and reports whether a Quit was seen.
// Events after the first Quit are dropped.
func (h *Handler) Apply(events []Event, s Steerer) bool {
	for _, ev := range events {
		switch ev.Kind {
		case Quit:
			glog.V(1).Info("quit requested")
			return true
		case Turn:
			glog.V(2).Infof("turn %v", ev.Direction)
			s.SetDirection(ev.Direction)
		}
	}
	return false
}
