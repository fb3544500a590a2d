// Package entity defines the shared shape of everything that lives in the
// world and the concrete player, NPC and pickup types built on it.
package entity

import (
	"github.com/milk9111/limitless/collision"
	"github.com/milk9111/limitless/common"
)

// Kind tags the closed set of entity variants.
type Kind int

const (
	KindPlayer Kind = iota
	KindNPC
	KindBoss
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindNPC:
		return "npc"
	case KindBoss:
		return "boss"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Actor is the contract every world entity satisfies for collision and
// presentation.
type Actor interface {
	Kind() Kind
	Bounds() common.Rect
}

// Entity is the base shape: a position, a facing, a per-tick speed and a
// hitbox relative to the position, plus animation counters.
type Entity struct {
	X, Y   int
	Facing common.Direction
	Speed  int
	Hitbox common.Rect

	SpriteCounter int
	SpriteFrame   int
}

// WorldHitbox is the hitbox translated to world pixels.
func (e *Entity) WorldHitbox() common.Rect {
	if e == nil {
		return common.Rect{}
	}
	return e.Hitbox.Offset(e.X, e.Y)
}

// Body is the collision view of the entity facing its current direction.
func (e *Entity) Body() collision.Body {
	return collision.Body{X: e.X, Y: e.Y, Hitbox: e.WorldHitbox(), Facing: e.Facing, Speed: e.Speed}
}

// Nudge moves the entity n pixels along d without any checks.
func (e *Entity) Nudge(d common.Direction, n int) {
	dx, dy := d.Delta()
	e.X += dx * n
	e.Y += dy * n
}

// Walk moves up to steps single pixels along d. blocked is asked after each
// pixel; a blocked pixel is rolled back and walking stops. Returns the
// pixels actually moved.
func (e *Entity) Walk(d common.Direction, steps int, blocked func(collision.Body) bool) int {
	e.Facing = d
	moved := 0
	for i := 0; i < steps; i++ {
		e.Nudge(d, 1)
		if blocked != nil && blocked(e.Body()) {
			e.Nudge(d, -1)
			break
		}
		moved++
	}
	return moved
}

// Animate advances SpriteFrame through [first, first+count) every
// threshold ticks.
func (e *Entity) Animate(threshold, first, count int) {
	if count <= 0 {
		return
	}
	if e.SpriteFrame < first || e.SpriteFrame >= first+count {
		e.SpriteFrame = first
		e.SpriteCounter = 0
	}
	e.SpriteCounter++
	if e.SpriteCounter > threshold {
		e.SpriteFrame++
		if e.SpriteFrame >= first+count {
			e.SpriteFrame = first
		}
		e.SpriteCounter = 0
	}
}
