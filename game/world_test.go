package game

import (
	"context"
	"testing"

	"github.com/milk9111/limitless/config"
	"github.com/milk9111/limitless/input"
	"github.com/milk9111/limitless/save"
)

// A player already inside Elaria's hitbox must be able to step out of it,
// while further steps into her stay blocked.
func TestPlayerLeavesElariaOverlap(t *testing.T) {
	m := newTestMachine(t, nil)
	startPlay(t, m)
	p, n := m.world.Player, m.world.NPC
	p.X = n.Bounds().X + 4 - p.Hitbox.X - p.Hitbox.Width
	p.Y = n.Y
	x0 := p.X

	right := input.Build([]input.Action{input.ActionRight}, nil)
	for i := 0; i < 10; i++ {
		m.Step(right)
	}
	if p.X != x0 {
		t.Fatalf("walked further into Elaria: x %d -> %d", x0, p.X)
	}

	left := input.Build([]input.Action{input.ActionLeft}, nil)
	for i := 0; i < 60; i++ {
		m.Step(left)
	}
	if want := x0 - 60*p.Speed; p.X != want {
		t.Fatalf("x after walking away = %d, want %d", p.X, want)
	}
}

func TestPlaceable(t *testing.T) {
	m := newTestMachine(t, nil)
	w := m.world
	hb := w.Player.Hitbox
	n := w.NPC
	spawn := playerRules(config.Default())
	w.Map.Set(20, 20, 1)

	cases := []struct {
		name string
		x, y int
		want bool
	}{
		{"spawn", spawn.SpawnX, spawn.SpawnY, true},
		{"on_elaria", n.X, n.Y, false},
		{"four_px_into_elaria", n.Bounds().X + 4 - hb.X - hb.Width, n.Y, false},
		{"touching_elaria", n.Bounds().X - hb.X - hb.Width, n.Y, true},
		{"solid_tile", 20 * w.tile, 20 * w.tile, false},
		{"off_map", -w.tile, spawn.SpawnY, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := w.Placeable(tc.x, tc.y); got != tc.want {
				t.Fatalf("Placeable(%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

// A save taken on top of Elaria loads at spawn, and the player can walk
// in every direction afterwards.
func TestLoadOntoElariaFallsBackToSpawn(t *testing.T) {
	store := save.NewMemoryStore()
	m := newTestMachine(t, store)
	startPlay(t, m)
	n := m.world.NPC
	if err := store.Save(context.Background(), save.Record{X: n.X - 4, Y: n.Y - 6, Direction: "right"}); err != nil {
		t.Fatalf("store.Save() failed: %v", err)
	}

	m.Step(press(input.ActionLoad))
	settle(t, m)
	p := m.world.Player
	spawn := playerRules(config.Default())
	if p.X != spawn.SpawnX || p.Y != spawn.SpawnY {
		t.Fatalf("player at (%d,%d), want spawn (%d,%d)", p.X, p.Y, spawn.SpawnX, spawn.SpawnY)
	}

	for _, a := range []input.Action{input.ActionLeft, input.ActionRight, input.ActionUp, input.ActionDown} {
		x, y := p.X, p.Y
		held := input.Build([]input.Action{a}, nil)
		for i := 0; i < 30; i++ {
			m.Step(held)
		}
		if p.X == x && p.Y == y {
			t.Fatalf("player stuck at (%d,%d) holding %s", x, y, a)
		}
	}
}
