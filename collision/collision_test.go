package collision

import (
	"testing"

	"github.com/milk9111/limitless/common"
	"github.com/milk9111/limitless/tilemap"
)

const testTile = 10

func testMap() *tilemap.Map {
	table := tilemap.Table{{ID: 0}, {ID: 1, Solid: true}}
	m := tilemap.New(5, 5, table)
	m.Set(2, 0, 1)
	return m
}

func body(x, y int, d common.Direction) Body {
	return Body{Hitbox: common.Rect{X: x, Y: y, Width: 8, Height: 8}, Facing: d, Speed: 2}
}

func TestCheckTile(t *testing.T) {
	m := testMap()
	cases := []struct {
		name string
		b    Body
		want bool
	}{
		{"open_down", body(11, 11, common.DirDown), false},
		{"solid_ahead_right", body(11, 1, common.DirRight), true},
		{"solid_not_ahead_left", body(11, 1, common.DirLeft), false},
		{"solid_above", body(21, 11, common.DirUp), true},
		{"edge_up", body(11, 1, common.DirUp), true},
		{"edge_left", body(1, 11, common.DirLeft), true},
		{"edge_right", body(41, 11, common.DirRight), true},
		{"edge_down", body(11, 41, common.DirDown), true},
		{"already_outside", body(-20, 11, common.DirRight), true},
		{"zero_area", Body{Hitbox: common.Rect{X: 15, Y: 15}, Facing: common.DirDown, Speed: 1}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := CheckTile(m, testTile, c.b); got != c.want {
				t.Fatalf("CheckTile = %v, want %v", got, c.want)
			}
		})
	}
}

// Every direction that would carry the hitbox off the map must collide,
// no matter how far from the edge the step starts.
func TestCheckTileBoundaryAllDirections(t *testing.T) {
	table := tilemap.Table{{ID: 0}}
	m := tilemap.New(4, 4, table)
	size := 4 * testTile
	for _, d := range []common.Direction{common.DirUp, common.DirDown, common.DirLeft, common.DirRight} {
		for offset := 0; offset < 3; offset++ {
			var hb common.Rect
			switch d {
			case common.DirUp:
				hb = common.Rect{X: 15, Y: offset, Width: 5, Height: 5}
			case common.DirDown:
				hb = common.Rect{X: 15, Y: size - 5 - offset, Width: 5, Height: 5}
			case common.DirLeft:
				hb = common.Rect{X: offset, Y: 15, Width: 5, Height: 5}
			case common.DirRight:
				hb = common.Rect{X: size - 5 - offset, Y: 15, Width: 5, Height: 5}
			}
			b := Body{Hitbox: hb, Facing: d, Speed: 3}
			if !CheckTile(m, testTile, b) {
				t.Fatalf("%s at offset %d should collide with world edge", d, offset)
			}
		}
	}
}

func TestCheckTileNilMap(t *testing.T) {
	if !CheckTile(nil, testTile, body(0, 0, common.DirDown)) {
		t.Fatalf("nil map should block movement")
	}
	if !CheckTile(testMap(), 0, body(0, 0, common.DirDown)) {
		t.Fatalf("zero tile size should block movement")
	}
}

// at places a 10x10 body whose hitbox sits at its position.
func at(x, y int, d common.Direction) Body {
	return Body{X: x, Y: y, Hitbox: common.Rect{X: x, Y: y, Width: 10, Height: 10}, Facing: d, Speed: 1}
}

func TestCheckEntity(t *testing.T) {
	cases := []struct {
		name string
		a, b Body
		want EntityResult
	}{
		{
			name: "no_overlap",
			a:    at(0, 0, common.DirRight),
			b:    at(10, 0, common.DirLeft),
			want: EntityResult{},
		},
		{
			name: "a_walks_into_b",
			a:    at(0, 0, common.DirRight),
			b:    at(8, 0, common.DirDown),
			want: EntityResult{Overlap: true, A: true},
		},
		{
			name: "a_backs_away",
			a:    at(0, 0, common.DirLeft),
			b:    at(8, 0, common.DirDown),
			want: EntityResult{Overlap: true},
		},
		{
			name: "head_on",
			a:    at(0, 0, common.DirRight),
			b:    at(8, 0, common.DirLeft),
			want: EntityResult{Overlap: true, A: true, B: true},
		},
		{
			name: "a_drops_onto_b",
			a:    at(0, 0, common.DirDown),
			b:    at(1, 9, common.DirUp),
			want: EntityResult{Overlap: true, A: true, B: true},
		},
		{
			name: "b_climbs_into_a",
			a:    at(0, 0, common.DirRight),
			b:    at(1, 9, common.DirUp),
			want: EntityResult{Overlap: true, B: true},
		},
		{
			name: "sliding_across_axis",
			a:    at(0, 0, common.DirUp),
			b:    at(8, 0, common.DirDown),
			want: EntityResult{Overlap: true},
		},
		{
			// Hitbox edges line up, entity positions do not.
			name: "positions_decide_side",
			a:    Body{X: 0, Y: 0, Hitbox: common.Rect{X: 28, Y: 16, Width: 24, Height: 48}, Facing: common.DirRight},
			b:    Body{X: 4, Y: 0, Hitbox: common.Rect{X: 28, Y: 0, Width: 32, Height: 88}, Facing: common.DirLeft},
			want: EntityResult{Overlap: true, A: true, B: true},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := CheckEntity(c.a, c.b)
			if got != c.want {
				t.Fatalf("CheckEntity = %+v, want %+v", got, c.want)
			}
			if got.Colliding(true) != c.want.A || got.Colliding(false) != c.want.B {
				t.Fatalf("Colliding disagrees with flags: %+v", got)
			}
		})
	}
}
