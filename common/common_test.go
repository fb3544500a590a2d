package common

import "testing"

func TestFloorDiv(t *testing.T) {
	cases := []struct {
		a, b, want int
	}{
		{0, 96, 0},
		{95, 96, 0},
		{96, 96, 1},
		{-1, 96, -1},
		{-96, 96, -1},
		{-97, 96, -2},
		{5, 0, 0},
	}
	for _, c := range cases {
		if got := FloorDiv(c.a, c.b); got != c.want {
			t.Fatalf("FloorDiv(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", Rect{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"touching_edge", Rect{X: 10, Y: 0, Width: 10, Height: 10}, false},
		{"disjoint", Rect{X: 20, Y: 20, Width: 1, Height: 1}, false},
		{"contained", Rect{X: 2, Y: 2, Width: 2, Height: 2}, true},
		{"zero_area", Rect{X: 2, Y: 2, Width: 0, Height: 5}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := base.Intersects(c.other); got != c.want {
				t.Fatalf("Intersects = %v, want %v", got, c.want)
			}
		})
	}
}

func TestRectExpand(t *testing.T) {
	r := Rect{X: 28, Y: 16, Width: 24, Height: 48}.Expand(20)
	want := Rect{X: 8, Y: -4, Width: 64, Height: 88}
	if r != want {
		t.Fatalf("Expand = %+v, want %+v", r, want)
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		got, ok := ParseDirection(d.String())
		if !ok || got != d {
			t.Fatalf("ParseDirection(%q) = %v, %v", d.String(), got, ok)
		}
	}
	if got, ok := ParseDirection("sideways"); ok || got != DirDown {
		t.Fatalf("unknown direction should default to down, got %v %v", got, ok)
	}
}
