// Package boss implements Noxar, the shrine boss: a pacing/casting state
// machine with a one-way death sequence.
package boss

import (
	"math"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/limitless/common"
)

type State int

const (
	StatePacing State = iota
	StateCasting
	StateDying
	StateDead
)

func (s State) String() string {
	switch s {
	case StatePacing:
		return "pacing"
	case StateCasting:
		return "casting"
	case StateDying:
		return "dying"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

type Rules struct {
	Health         int
	Width, Height  int
	Speed          int
	PaceHalfWidth  int
	FrameTime      time.Duration
	CastInterval   time.Duration
	CastFrames     int
	SpawnFrame     int
	HurtFrames     int
	WalkFrames     int
	WalkFrameTicks int
}

// Cast asks the caller to spawn one projectile from Origin toward Target.
type Cast struct {
	Origin cp.Vector
	Target cp.Vector
}

type Noxar struct {
	rules Rules
	id    int

	X, Y   int
	Facing common.Direction

	health int
	state  State

	paceMin, paceMax int
	paceSet          bool
	paceDir          int

	started     bool
	now         time.Duration
	lastCastEnd time.Duration

	frame          int
	frameAt        time.Duration
	lastSpawnFrame int

	walkCounter int
	walkFrame   int
}

// New spawns Noxar at (x, y) facing left. The pacing range is fixed on the
// first Update, not here.
func New(id int, rules Rules, x, y int) *Noxar {
	if rules.Health <= 0 {
		rules.Health = 1
	}
	if rules.WalkFrames <= 0 {
		rules.WalkFrames = 1
	}
	return &Noxar{
		rules:          rules,
		id:             id,
		X:              x,
		Y:              y,
		Facing:         common.DirLeft,
		health:         rules.Health,
		state:          StatePacing,
		paceDir:        1,
		lastSpawnFrame: -1,
	}
}

func (n *Noxar) ID() int {
	if n == nil {
		return 0
	}
	return n.id
}

func (n *Noxar) State() State {
	if n == nil {
		return StateDead
	}
	return n.state
}

func (n *Noxar) Health() int {
	if n == nil {
		return 0
	}
	return n.health
}

func (n *Noxar) MaxHealth() int {
	if n == nil {
		return 0
	}
	return n.rules.Health
}

// Alive reports whether the boss still takes part in combat.
func (n *Noxar) Alive() bool {
	return n != nil && n.state != StateDying && n.state != StateDead
}

// Bounds is the boss body in world pixels.
func (n *Noxar) Bounds() common.Rect {
	if n == nil {
		return common.Rect{}
	}
	return common.Rect{X: n.X, Y: n.Y, Width: n.rules.Width, Height: n.rules.Height}
}

// PaceBounds returns the pacing range; ok is false before the first tick.
func (n *Noxar) PaceBounds() (minX, maxX int, ok bool) {
	if n == nil {
		return 0, 0, false
	}
	return n.paceMin, n.paceMax, n.paceSet
}

// PaceDirection is +1 while walking right and -1 while walking left.
func (n *Noxar) PaceDirection() int {
	if n == nil {
		return 0
	}
	return n.paceDir
}

// Frame is the animation frame for the current state.
func (n *Noxar) Frame() int {
	if n == nil {
		return 0
	}
	if n.state == StatePacing {
		return n.walkFrame
	}
	return n.frame
}

// Update advances the state machine to now. target is the point the boss
// aims at, normally the player's hitbox center. A Cast is returned on the
// one tick per cast that should spawn a projectile.
func (n *Noxar) Update(now time.Duration, target cp.Vector) (Cast, bool) {
	if n == nil || n.state == StateDead {
		return Cast{}, false
	}
	n.now = now
	if !n.started {
		n.started = true
		n.lastCastEnd = now
	}
	if !n.paceSet {
		n.paceMin = n.X - n.rules.PaceHalfWidth
		n.paceMax = n.X + n.rules.PaceHalfWidth
		n.paceSet = true
	}

	switch n.state {
	case StateDying:
		if n.frameDue(now) {
			n.frame++
			if n.frame >= n.rules.HurtFrames {
				n.frame = max(n.rules.HurtFrames-1, 0)
				n.state = StateDead
			}
		}
		return Cast{}, false
	case StatePacing:
		if now-n.lastCastEnd >= n.rules.CastInterval {
			n.state = StateCasting
			n.frame = 0
			n.frameAt = now
			n.lastSpawnFrame = -1
			return n.castStep(target)
		}
		n.pace()
		return Cast{}, false
	case StateCasting:
		if n.frameDue(now) {
			n.frame++
			if n.frame >= n.rules.CastFrames {
				n.state = StatePacing
				n.frame = 0
				n.lastCastEnd = now
				n.lastSpawnFrame = -1
				return Cast{}, false
			}
		}
		return n.castStep(target)
	}
	return Cast{}, false
}

func (n *Noxar) frameDue(now time.Duration) bool {
	if now-n.frameAt < n.rules.FrameTime {
		return false
	}
	n.frameAt = now
	return true
}

func (n *Noxar) castStep(target cp.Vector) (Cast, bool) {
	if n.frame != n.rules.SpawnFrame || n.lastSpawnFrame == n.frame {
		return Cast{}, false
	}
	n.lastSpawnFrame = n.frame
	origin := n.center()
	n.face(target.Sub(origin))
	return Cast{Origin: origin, Target: target}, true
}

func (n *Noxar) center() cp.Vector {
	cx, cy := n.Bounds().Center()
	return cp.Vector{X: cx, Y: cy}
}

// face turns toward d, preferring the horizontal axis on ties.
func (n *Noxar) face(d cp.Vector) {
	if math.Abs(d.X) >= math.Abs(d.Y) {
		if d.X < 0 {
			n.Facing = common.DirLeft
		} else {
			n.Facing = common.DirRight
		}
		return
	}
	if d.Y < 0 {
		n.Facing = common.DirUp
	} else {
		n.Facing = common.DirDown
	}
}

func (n *Noxar) pace() {
	n.X += n.paceDir * n.rules.Speed
	if n.X >= n.paceMax {
		n.X = n.paceMax
		n.paceDir = -1
	} else if n.X <= n.paceMin {
		n.X = n.paceMin
		n.paceDir = 1
	}
	if n.paceDir > 0 {
		n.Facing = common.DirRight
	} else {
		n.Facing = common.DirLeft
	}

	n.walkCounter++
	if n.walkCounter > n.rules.WalkFrameTicks {
		n.walkFrame = (n.walkFrame + 1) % n.rules.WalkFrames
		n.walkCounter = 0
	}
}

// TakeDamage lowers health, clamped at zero. Reaching zero starts the death
// sequence in the same call. It is a no-op once dying or dead, or for
// non-positive amounts. Returns true when health changed.
func (n *Noxar) TakeDamage(amount int) bool {
	if !n.Alive() || amount <= 0 {
		return false
	}
	n.health -= amount
	if n.health <= 0 {
		n.health = 0
		n.state = StateDying
		n.frame = 0
		n.frameAt = n.now
	}
	return true
}
