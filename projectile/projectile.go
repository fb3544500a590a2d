// Package projectile moves the boss's straight-line shots and removes them
// when they hit the player or leave the play field.
package projectile

import (
	"math"
	"sync"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/limitless/common"
)

// DefaultDirection is used when a shot has no meaningful aim, i.e. source
// and target coincide.
var DefaultDirection = cp.Vector{X: 0, Y: 1}

type Rules struct {
	Speed  float64
	Damage int
	Size   int
}

// Projectile is a shot in flight. Pos is the top-left corner of its hitbox.
type Projectile struct {
	ID     int
	Pos    cp.Vector
	Vel    cp.Vector
	Size   int
	Damage int
	Active bool
}

// Bounds is the projectile hitbox in world pixels.
func (p *Projectile) Bounds() common.Rect {
	if p == nil {
		return common.Rect{}
	}
	return common.Rect{X: int(math.Floor(p.Pos.X)), Y: int(math.Floor(p.Pos.Y)), Width: p.Size, Height: p.Size}
}

// Direction returns the unit vector from origin to target, or
// DefaultDirection when the two points coincide.
func Direction(origin, target cp.Vector) cp.Vector {
	d := target.Sub(origin)
	length := d.Length()
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return DefaultDirection
	}
	return d.Mult(1 / length)
}

// Result summarizes one Update.
type Result struct {
	Hits    int
	Damage  int
	Expired int
}

// System owns the live projectiles.
type System struct {
	rules  Rules
	field  cp.BB
	active []*Projectile
	nextID int
	pool   sync.Pool
}

// NewSystem creates a system whose play field spans (0,0) to (width,height)
// inclusive.
func NewSystem(rules Rules, width, height int) *System {
	s := &System{
		rules: rules,
		field: cp.BB{L: 0, B: 0, R: float64(width), T: float64(height)},
	}
	s.pool.New = func() any { return &Projectile{} }
	return s
}

// Spawn fires a projectile centered on origin toward target and returns a
// copy of it as spawned. The live projectile is pooled and owned by s.
func (s *System) Spawn(origin, target cp.Vector) Projectile {
	if s == nil {
		return Projectile{}
	}
	half := float64(s.rules.Size) / 2
	p := s.pool.Get().(*Projectile)
	s.nextID++
	*p = Projectile{
		ID:     s.nextID,
		Pos:    origin.Sub(cp.Vector{X: half, Y: half}),
		Vel:    Direction(origin, target).Mult(s.rules.Speed),
		Size:   s.rules.Size,
		Damage: s.rules.Damage,
		Active: true,
	}
	if math.IsNaN(p.Pos.X) || math.IsNaN(p.Pos.Y) {
		p.Pos = cp.Vector{}
	}
	s.active = append(s.active, p)
	return *p
}

// Update advances every projectile one tick. A projectile overlapping
// target is deactivated and its damage counted; one whose position leaves
// the play field expires. Inactive projectiles are removed in the same call.
func (s *System) Update(target common.Rect) Result {
	var res Result
	if s == nil || len(s.active) == 0 {
		return res
	}
	writeIdx := 0
	for _, p := range s.active {
		if p == nil {
			continue
		}
		if p.Active {
			p.Pos = p.Pos.Add(p.Vel)
			switch {
			case p.Bounds().Intersects(target):
				p.Active = false
				res.Hits++
				res.Damage += p.Damage
			case !s.field.ContainsVect(p.Pos):
				p.Active = false
				res.Expired++
			}
		}
		if !p.Active {
			s.release(p)
			continue
		}
		s.active[writeIdx] = p
		writeIdx++
	}
	clear(s.active[writeIdx:])
	s.active = s.active[:writeIdx]
	return res
}

// Len is the number of live projectiles.
func (s *System) Len() int {
	if s == nil {
		return 0
	}
	return len(s.active)
}

// Snapshot copies the live projectiles for read-only consumers.
func (s *System) Snapshot() []Projectile {
	if s == nil || len(s.active) == 0 {
		return nil
	}
	out := make([]Projectile, 0, len(s.active))
	for _, p := range s.active {
		out = append(out, *p)
	}
	return out
}

// Clear drops every projectile.
func (s *System) Clear() {
	if s == nil {
		return
	}
	for _, p := range s.active {
		s.release(p)
	}
	clear(s.active)
	s.active = s.active[:0]
}

func (s *System) release(p *Projectile) {
	*p = Projectile{}
	s.pool.Put(p)
}
