package projectile

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/limitless/common"
)

func testRules() Rules {
	return Rules{Speed: 8, Damage: 30, Size: 32}
}

// far away from every test projectile
var noTarget = common.Rect{X: -10000, Y: -10000, Width: 1, Height: 1}

func TestDirection(t *testing.T) {
	cases := []struct {
		name           string
		origin, target cp.Vector
		want           cp.Vector
	}{
		{"degenerate", cp.Vector{}, cp.Vector{}, DefaultDirection},
		{"right", cp.Vector{}, cp.Vector{X: 10}, cp.Vector{X: 1}},
		{"up", cp.Vector{X: 5, Y: 5}, cp.Vector{X: 5, Y: -5}, cp.Vector{Y: -1}},
		{"diagonal", cp.Vector{}, cp.Vector{X: 3, Y: 4}, cp.Vector{X: 0.6, Y: 0.8}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Direction(c.origin, c.target)
			if math.Abs(got.X-c.want.X) > 1e-9 || math.Abs(got.Y-c.want.Y) > 1e-9 {
				t.Fatalf("Direction = %v, want %v", got, c.want)
			}
		})
	}
}

func TestSpawnDegenerateHasNoNaN(t *testing.T) {
	s := NewSystem(testRules(), 1536, 864)
	p := s.Spawn(cp.Vector{}, cp.Vector{})
	if math.IsNaN(p.Vel.X) || math.IsNaN(p.Vel.Y) {
		t.Fatalf("velocity is NaN: %v", p.Vel)
	}
	if p.Vel != (cp.Vector{X: 0, Y: 8}) {
		t.Fatalf("expected straight down at speed 8, got %v", p.Vel)
	}
}

func TestSpawnSpeedConstant(t *testing.T) {
	s := NewSystem(testRules(), 1536, 864)
	p := s.Spawn(cp.Vector{X: 700, Y: 400}, cp.Vector{X: 100, Y: 120})
	if math.Abs(p.Vel.Length()-8) > 1e-9 {
		t.Fatalf("speed should be 8, got %f", p.Vel.Length())
	}
	if p.Pos != (cp.Vector{X: 684, Y: 384}) {
		t.Fatalf("projectile should be centered on origin, got %v", p.Pos)
	}
}

func TestUpdateHitsPlayer(t *testing.T) {
	s := NewSystem(testRules(), 1536, 864)
	s.Spawn(cp.Vector{X: 100, Y: 100}, cp.Vector{X: 200, Y: 100})
	player := common.Rect{X: 130, Y: 90, Width: 24, Height: 48}

	var total Result
	for i := 0; i < 10 && s.Len() > 0; i++ {
		r := s.Update(player)
		total.Hits += r.Hits
		total.Damage += r.Damage
	}
	if total.Hits != 1 || total.Damage != 30 {
		t.Fatalf("expected one hit for 30, got %+v", total)
	}
	if s.Len() != 0 {
		t.Fatalf("hit projectile should be removed the same tick")
	}
}

func TestUpdateExpiresOutOfBounds(t *testing.T) {
	cases := []struct {
		name   string
		origin cp.Vector
		target cp.Vector
	}{
		{"left", cp.Vector{X: 20, Y: 400}, cp.Vector{X: -100, Y: 400}},
		{"right", cp.Vector{X: 1520, Y: 400}, cp.Vector{X: 2000, Y: 400}},
		{"top", cp.Vector{X: 400, Y: 20}, cp.Vector{X: 400, Y: -100}},
		{"bottom", cp.Vector{X: 400, Y: 850}, cp.Vector{X: 400, Y: 2000}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewSystem(testRules(), 1536, 864)
			s.Spawn(c.origin, c.target)
			expired := 0
			for i := 0; i < 200 && s.Len() > 0; i++ {
				expired += s.Update(noTarget).Expired
			}
			if expired != 1 || s.Len() != 0 {
				t.Fatalf("expected one expiry and no survivors, got %d expired, %d live", expired, s.Len())
			}
		})
	}
}

// Removing some projectiles mid-iteration must not skip or repeat others.
func TestUpdateRemovalDoesNotSkip(t *testing.T) {
	s := NewSystem(testRules(), 1536, 864)
	// Alternate shots that leave immediately with shots that stay in field.
	for i := 0; i < 10; i++ {
		if i%2 == 0 {
			s.Spawn(cp.Vector{X: 2, Y: 400}, cp.Vector{X: -100, Y: 400})
		} else {
			s.Spawn(cp.Vector{X: 700, Y: 100 + float64(i)*40}, cp.Vector{X: 800, Y: 100 + float64(i)*40})
		}
	}
	before := map[int]cp.Vector{}
	for _, p := range s.Snapshot() {
		before[p.ID] = p.Pos
	}

	r := s.Update(noTarget)
	if r.Expired != 5 || s.Len() != 5 {
		t.Fatalf("expected 5 expired and 5 live, got %+v live=%d", r, s.Len())
	}
	for _, p := range s.Snapshot() {
		moved := p.Pos.Sub(before[p.ID]).Length()
		if math.Abs(moved-8) > 1e-9 {
			t.Fatalf("projectile %d moved %f, want exactly one step", p.ID, moved)
		}
		if !p.Active {
			t.Fatalf("inactive projectile survived")
		}
	}
}

func TestClear(t *testing.T) {
	s := NewSystem(testRules(), 1536, 864)
	s.Spawn(cp.Vector{X: 10, Y: 10}, cp.Vector{X: 20, Y: 20})
	s.Spawn(cp.Vector{X: 10, Y: 10}, cp.Vector{X: 20, Y: 20})
	s.Clear()
	if s.Len() != 0 || s.Snapshot() != nil {
		t.Fatalf("Clear should drop all projectiles")
	}
}

// A spawned shot must not change when its pooled storage is recycled for
// a later one.
func TestSpawnResultSurvivesRecycling(t *testing.T) {
	s := NewSystem(testRules(), 1536, 864)
	first := s.Spawn(cp.Vector{X: 2, Y: 400}, cp.Vector{X: -100, Y: 400})
	if r := s.Update(noTarget); r.Expired != 1 {
		t.Fatalf("expected the first shot to expire, got %+v", r)
	}
	second := s.Spawn(cp.Vector{X: 700, Y: 400}, cp.Vector{X: 800, Y: 400})

	if first.ID != 1 || !first.Active || first.Pos != (cp.Vector{X: -14, Y: 384}) {
		t.Fatalf("first spawn changed after recycling: %+v", first)
	}
	if second.ID != 2 || first.ID == second.ID {
		t.Fatalf("second spawn id = %d, want 2", second.ID)
	}
}
