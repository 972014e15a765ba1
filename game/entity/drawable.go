package entity

import "the-snake/game/types"

// Drawable is anything that can paint itself onto a surface.
type Drawable interface {
	Draw(surface types.Surface)
}

var (
	_ Drawable = (*Snake)(nil)
	_ Drawable = (*Food)(nil)
)
