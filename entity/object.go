package entity

import (
	"github.com/milk9111/limitless/common"
	"github.com/milk9111/limitless/inventory"
)

// Object is a stack of items lying in the world, waiting to be picked up.
type Object struct {
	Item  inventory.Item
	X, Y  int
	Size  int
	Taken bool
}

func NewObject(it inventory.Item, x, y, size int) *Object {
	return &Object{Item: it, X: x, Y: y, Size: size}
}

func (o *Object) Kind() Kind { return KindObject }

func (o *Object) Bounds() common.Rect {
	return common.Rect{X: o.X, Y: o.Y, Width: o.Size, Height: o.Size}
}

// Interaction is a fixed point of interest that opens a script when the
// player presses interact nearby.
type Interaction struct {
	Name   string
	X, Y   int
	Radius int
	Script string
	// Shrine marks the point whose finished dialogue starts the boss
	// sequence.
	Shrine bool
}

// InRange reports whether a player at (x, y) can use the point.
func (i Interaction) InRange(x, y int) bool {
	return within(i.X, i.Y, x, y, i.Radius)
}

// Within reports whether the object lies less than reach pixels from (x, y)
// on both axes.
func (o *Object) Within(x, y, reach int) bool {
	dx, dy := o.X-x, o.Y-y
	return dx > -reach && dx < reach && dy > -reach && dy < reach
}
