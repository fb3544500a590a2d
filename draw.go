package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/limitless/common"
	"github.com/milk9111/limitless/game"
	"github.com/milk9111/limitless/inventory"
	"github.com/milk9111/limitless/tilemap"
)

const (
	hudBarWidth  = 160
	hudBarHeight = 10
	lineHeight   = 16
	slotSize     = 48
	slotGap      = 4
)

var (
	backdrop     = color.RGBA{R: 12, G: 12, B: 20, A: 255}
	panelColor   = color.NRGBA{A: 200}
	hitboxColor  = color.RGBA{R: 255, A: 200}
	inRangeColor = colornames.Gold
)

// renderer draws a game.View with flat shapes. There are no sprites, so
// every actor is its hitbox in a per-kind color.
type renderer struct {
	face ebtext.Face
}

func newRenderer() *renderer {
	return &renderer{face: ebtext.NewGoXFace(basicfont.Face7x13)}
}

func (r *renderer) Draw(screen *ebiten.Image, v game.View) {
	screen.Fill(backdrop)
	switch {
	case v.World != nil:
		r.drawWorld(screen, v.World)
	case v.Shrine != nil:
		r.drawShrine(screen, v.Shrine)
	}
	if v.HUD != nil {
		r.drawHUD(screen, v.HUD)
	}
	if v.Inventory != nil {
		r.drawInventory(screen, v.Inventory)
	}
	if v.Dialogue != nil {
		r.drawDialogue(screen, v.Dialogue)
	}
}

func (r *renderer) drawWorld(screen *ebiten.Image, w *game.WorldView) {
	drawTiles(screen, w.Map, w.TileSize, w.CameraX, w.CameraY)
	cam := func(rect common.Rect) common.Rect {
		rect.X -= w.CameraX
		rect.Y -= w.CameraY
		return rect
	}
	for _, it := range w.Items {
		c := colornames.Red
		if it.Name == inventory.Solthorn {
			c = colornames.Lightsteelblue
		}
		fillRect(screen, cam(it.Bounds), c)
		if it.Quantity > 1 {
			b := cam(it.Bounds)
			r.label(screen, fmt.Sprintf("x%d", it.Quantity), b.Right(), b.Y)
		}
	}
	for _, p := range w.Points {
		c := colornames.Slategray
		if p.InRange {
			c = inRangeColor
		}
		dot := common.Rect{X: p.X - w.CameraX - 3, Y: p.Y - w.CameraY - 3, Width: 6, Height: 6}
		fillRect(screen, dot, c)
	}
	fillRect(screen, cam(w.NPC.Hitbox), colornames.Mediumpurple)
	r.label(screen, w.NPC.Name, w.NPC.Hitbox.X-w.CameraX, w.NPC.Hitbox.Y-w.CameraY-lineHeight)
	drawPlayer(screen, w.Player, cam)
}

func (r *renderer) drawShrine(screen *ebiten.Image, s *game.ShrineView) {
	fillRect(screen, s.Platform, colornames.Darkslategray)
	strokeRect(screen, s.Platform, colornames.Lightgrey)

	ident := func(rect common.Rect) common.Rect { return rect }
	b := s.Boss
	fillRect(screen, b.Hitbox, colornames.Indigo)
	strokeRect(screen, b.Hitbox, hitboxColor)
	r.label(screen, fmt.Sprintf("%s [%s]", b.Name, b.State), b.Hitbox.X, b.Hitbox.Y-lineHeight)
	if b.MaxHealth > 0 {
		bar := common.Rect{X: s.Platform.X, Y: s.Platform.Y - 2*hudBarHeight, Width: s.Platform.Width, Height: hudBarHeight}
		drawBar(screen, bar, b.Health, b.MaxHealth, colornames.Darkviolet)
	}

	for _, p := range s.Projectiles {
		fillRect(screen, p.Bounds(), colornames.Orangered)
	}
	drawPlayer(screen, s.Player, ident)
}

func drawPlayer(screen *ebiten.Image, p game.PlayerView, cam func(common.Rect) common.Rect) {
	c := colornames.Crimson
	if p.Running {
		c = colornames.Orange
	}
	box := cam(p.Hitbox)
	fillRect(screen, box, c)
	if p.Slash < 0 {
		return
	}
	dx, dy := p.Facing.Delta()
	slash := common.Rect{X: box.X + dx*box.Width, Y: box.Y + dy*box.Height, Width: box.Width, Height: box.Height}
	strokeRect(screen, slash, colornames.White)
}

func drawTiles(screen *ebiten.Image, m *tilemap.Map, tile, camX, camY int) {
	if m == nil || tile <= 0 {
		return
	}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	table := m.Table()
	firstCol, firstRow := common.FloorDiv(camX, tile), common.FloorDiv(camY, tile)
	lastCol, lastRow := common.FloorDiv(camX+sw, tile), common.FloorDiv(camY+sh, tile)
	for row := max(firstRow, 0); row <= min(lastRow, m.Rows()-1); row++ {
		for col := max(firstCol, 0); col <= min(lastCol, m.Cols()-1); col++ {
			id, ok := m.At(col, row)
			if !ok || !table.Valid(id) || table[id].Color == nil {
				continue
			}
			fillRect(screen, common.Rect{X: col*tile - camX, Y: row*tile - camY, Width: tile, Height: tile}, table[id].Color)
		}
	}
}

func (r *renderer) drawHUD(screen *ebiten.Image, h *game.HUDView) {
	drawBar(screen, common.Rect{X: 10, Y: 10, Width: hudBarWidth, Height: hudBarHeight}, h.Health, h.MaxHealth, colornames.Firebrick)
	drawBar(screen, common.Rect{X: 10, Y: 24, Width: hudBarWidth, Height: hudBarHeight}, h.Stamina, h.MaxStamina, colornames.Limegreen)
	weapon := h.Weapon
	if weapon == "" {
		weapon = "Unarmed"
	}
	r.label(screen, weapon, 10, 40)
	if h.Notice != "" {
		r.label(screen, h.Notice, 10, screen.Bounds().Dy()-lineHeight-10)
	}
	if h.ShowHistory {
		box := common.Rect{X: 10, Y: 60, Width: 200, Height: (len(h.History) + 2) * lineHeight}
		fillRect(screen, box, panelColor)
		r.label(screen, "Attack History:", box.X+6, box.Y+4)
		for i, target := range h.History {
			r.label(screen, fmt.Sprintf("%d: %s", i+1, target), box.X+6, box.Y+4+(i+1)*lineHeight)
		}
	}
}

func (r *renderer) drawInventory(screen *ebiten.Image, inv *game.InventoryView) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	w := inv.Cols*(slotSize+slotGap) + slotGap
	h := inv.Rows*(slotSize+slotGap) + slotGap + lineHeight
	panel := common.Rect{X: (sw - w) / 2, Y: (sh - h) / 2, Width: w, Height: h}
	fillRect(screen, panel, panelColor)
	strokeRect(screen, panel, colornames.White)
	r.label(screen, "Inventory", panel.X+slotGap, panel.Y+2)

	for i, it := range inv.Slots {
		row, col := i/inv.Cols, i%inv.Cols
		slot := common.Rect{
			X:      panel.X + slotGap + col*(slotSize+slotGap),
			Y:      panel.Y + lineHeight + slotGap + row*(slotSize+slotGap),
			Width:  slotSize,
			Height: slotSize,
		}
		fillRect(screen, slot, colornames.Dimgray)
		border := colornames.Black
		if (inventory.Slot{Row: row, Col: col}) == inv.Cursor {
			border = colornames.Gold
		}
		strokeRect(screen, slot, border)
		if it.Empty() {
			continue
		}
		name := it.Name
		if name == inv.Equipped {
			name += "*"
		}
		r.label(screen, name, slot.X+2, slot.Y+2)
		if it.Quantity > 1 {
			r.label(screen, fmt.Sprintf("x%d", it.Quantity), slot.X+2, slot.Bottom()-lineHeight)
		}
	}
}

func (r *renderer) drawDialogue(screen *ebiten.Image, d *game.DialogueView) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	box := common.Rect{X: 20, Y: sh - 4*lineHeight - 20, Width: sw - 40, Height: 4 * lineHeight}
	fillRect(screen, box, panelColor)
	strokeRect(screen, box, colornames.White)
	if d.Speaker != "" {
		r.label(screen, d.Speaker, box.X+10, box.Y+8)
	}
	r.label(screen, d.Text, box.X+10, box.Y+8+lineHeight)
	r.label(screen, fmt.Sprintf("%d/%d", d.Index+1, d.Total), box.Right()-40, box.Bottom()-lineHeight-4)
}

func (r *renderer) label(screen *ebiten.Image, s string, x, y int) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(colornames.White)
	ebtext.Draw(screen, s, r.face, op)
}

func drawBar(screen *ebiten.Image, bar common.Rect, value, limit int, c color.Color) {
	fillRect(screen, bar, colornames.Dimgray)
	if limit > 0 {
		fill := bar
		fill.Width = bar.Width * common.Clamp(value, 0, limit) / limit
		fillRect(screen, fill, c)
	}
	strokeRect(screen, bar, colornames.Black)
}

func fillRect(screen *ebiten.Image, r common.Rect, c color.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c, false)
}

func strokeRect(screen *ebiten.Image, r common.Rect, c color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 1, c, false)
}
