// Package collision tests hitboxes against the tile grid and against each
// other. It keeps no state: every call returns a fresh result and the caller
// decides whether to roll back its move.
package collision

import (
	"github.com/milk9111/limitless/common"
	"github.com/milk9111/limitless/tilemap"
)

// Body is a moving hitbox in world pixels. X and Y are the owner's position,
// which the hitbox is offset from.
type Body struct {
	X, Y   int
	Hitbox common.Rect
	Facing common.Direction
	Speed  int
}

// CheckTile projects b one movement step along its facing and reports
// whether that step is blocked. Only the two corners on the leading edge are
// sampled, so a fast diagonal mover can slip past a one-tile-wide corner.
// Anything outside the map counts as solid.
func CheckTile(m *tilemap.Map, tileSize int, b Body) bool {
	if m == nil || tileSize <= 0 {
		return true
	}

	hb := b.Hitbox
	if hb.Width <= 0 {
		hb.Width = 1
	}
	if hb.Height <= 0 {
		hb.Height = 1
	}
	speed := b.Speed
	if speed < 0 {
		speed = 0
	}

	left := hb.X
	right := hb.X + hb.Width - 1
	top := hb.Y
	bottom := hb.Y + hb.Height - 1

	leftCol := common.FloorDiv(left, tileSize)
	rightCol := common.FloorDiv(right, tileSize)
	topRow := common.FloorDiv(top, tileSize)
	bottomRow := common.FloorDiv(bottom, tileSize)

	if !m.InBounds(leftCol, topRow) || !m.InBounds(rightCol, bottomRow) {
		return true
	}

	switch b.Facing {
	case common.DirUp:
		row := common.FloorDiv(top-speed, tileSize)
		return m.Solid(leftCol, row) || m.Solid(rightCol, row)
	case common.DirDown:
		row := common.FloorDiv(bottom+speed, tileSize)
		return m.Solid(leftCol, row) || m.Solid(rightCol, row)
	case common.DirLeft:
		col := common.FloorDiv(left-speed, tileSize)
		return m.Solid(col, topRow) || m.Solid(col, bottomRow)
	case common.DirRight:
		col := common.FloorDiv(right+speed, tileSize)
		return m.Solid(col, topRow) || m.Solid(col, bottomRow)
	}
	return false
}

// EntityResult flags which of two overlapping bodies should roll back.
type EntityResult struct {
	Overlap bool
	A, B    bool
}

// Colliding reports whether the given side was flagged.
func (r EntityResult) Colliding(first bool) bool {
	if first {
		return r.A
	}
	return r.B
}

// CheckEntity tests a against b. On overlap only the axis with the smaller
// penetration is resolved, and a side is flagged when its facing carries it
// toward the other along that axis. Which side is which is judged by entity
// position, not hitbox position. A side moving away or across the axis stays
// free, so overlapping bodies can always separate.
func CheckEntity(a, b Body) EntityResult {
	ha, hb := a.Hitbox, b.Hitbox
	if !ha.Intersects(hb) {
		return EntityResult{}
	}

	overlapX := min(ha.Right()-hb.X, hb.Right()-ha.X)
	overlapY := min(ha.Bottom()-hb.Y, hb.Bottom()-ha.Y)
	horizontal := overlapX < overlapY
	return EntityResult{
		Overlap: true,
		A:       advancing(a, b, horizontal),
		B:       advancing(b, a, horizontal),
	}
}

func advancing(mover, other Body, horizontal bool) bool {
	dx, dy := mover.Facing.Delta()
	if horizontal {
		return dx != 0 && sign(other.X-mover.X) == dx
	}
	return dy != 0 && sign(other.Y-mover.Y) == dy
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// Overlaps is a strict AABB test.
func Overlaps(a, b common.Rect) bool {
	return a.Intersects(b)
}
