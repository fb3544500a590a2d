package entity

import (
	"math/rand/v2"
	"time"

	"github.com/milk9111/limitless/collision"
	"github.com/milk9111/limitless/common"
)

const npcWanderTicks = 120

var wanderDirections = [...]common.Direction{common.DirUp, common.DirDown, common.DirLeft, common.DirRight}

// NPC wanders until the player comes near, then turns to face them and can
// be talked to.
type NPC struct {
	Entity
	Name   string
	Script string

	InRange bool

	rng           *rand.Rand
	actionCounter int
	lastTalkEnd   time.Duration
	talked        bool
}

func NewNPC(name, script string, x, y int, seed uint64) *NPC {
	return &NPC{
		Entity: Entity{
			X:      x,
			Y:      y,
			Facing: common.DirDown,
			Speed:  1,
			Hitbox: common.Rect{X: 24, Y: 0, Width: 32, Height: 88},
		},
		Name:   name,
		Script: script,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (n *NPC) Kind() Kind          { return KindNPC }
func (n *NPC) Bounds() common.Rect { return n.WorldHitbox() }

// Wander changes direction every couple of seconds and steps unless the
// next step is blocked.
func (n *NPC) Wander(blocked func(collision.Body) bool) {
	n.actionCounter++
	if n.actionCounter >= npcWanderTicks {
		n.Facing = wanderDirections[n.rng.IntN(len(wanderDirections))]
		n.actionCounter = 0
	}
	if blocked != nil && blocked(n.Body()) {
		return
	}
	n.Nudge(n.Facing, n.Speed)
}

// Near reports whether the point is within radius of the NPC.
func (n *NPC) Near(x, y, radius int) bool {
	return within(n.X, n.Y, x, y, radius)
}

// Face turns toward a player at (x, y), preferring vertical when the player
// is more than a tile above or below.
func (n *NPC) Face(x, y, tileSize int) {
	switch {
	case y < n.Y-tileSize:
		n.Facing = common.DirUp
	case y > n.Y+tileSize:
		n.Facing = common.DirDown
	case x < n.X:
		n.Facing = common.DirLeft
	default:
		n.Facing = common.DirRight
	}
}

// CanTalk applies the cooldown that follows a finished conversation.
func (n *NPC) CanTalk(now, cooldown time.Duration) bool {
	return !n.talked || now-n.lastTalkEnd >= cooldown
}

// EndTalk starts the post-conversation cooldown.
func (n *NPC) EndTalk(now time.Duration) {
	n.talked = true
	n.lastTalkEnd = now
}

func within(ax, ay, bx, by, radius int) bool {
	dx := ax - bx
	dy := ay - by
	return dx*dx+dy*dy < radius*radius
}
