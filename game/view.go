package game

import (
	"github.com/milk9111/limitless/boss"
	"github.com/milk9111/limitless/common"
	"github.com/milk9111/limitless/config"
	"github.com/milk9111/limitless/dialogue"
	"github.com/milk9111/limitless/entity"
	"github.com/milk9111/limitless/inventory"
	"github.com/milk9111/limitless/projectile"
	"github.com/milk9111/limitless/tilemap"
)

// View is everything presentation may read for one tick. Exactly one mode
// fills it; sections the mode does not show are nil.
type View struct {
	Tick  uint64
	Mode  Mode
	Audio config.AudioConfig

	Menu      *MenuView
	World     *WorldView
	Shrine    *ShrineView
	Dialogue  *DialogueView
	HUD       *HUDView
	Inventory *InventoryView
}

type MenuView struct {
	Title  string
	Items  []string
	Cursor int
}

type DialogueView struct {
	Speaker string
	Text    string
	Index   int
	Total   int
}

// ActorView is one entity's position, facing and animation frame. Hitbox is
// in world pixels.
type ActorView struct {
	Kind   entity.Kind
	Name   string
	X, Y   int
	Facing common.Direction
	Frame  int
	Hitbox common.Rect
}

type PlayerView struct {
	ActorView
	Running bool
	// Slash is the slash animation frame, -1 when not swinging.
	Slash int
}

type BossView struct {
	ActorView
	State     boss.State
	Health    int
	MaxHealth int
}

type PointView struct {
	Name    string
	X, Y    int
	InRange bool
}

// WorldView is the overworld. Map is shared with the simulation and must
// not be modified.
type WorldView struct {
	Map      *tilemap.Map
	TileSize int
	CameraX  int
	CameraY  int

	Player PlayerView
	NPC    ActorView
	Items  []ItemView
	Points []PointView
}

// ItemView is a stack lying on the ground.
type ItemView struct {
	inventory.Item
	Bounds common.Rect
}

type ShrineView struct {
	Platform    common.Rect
	TileSize    int
	Player      PlayerView
	Boss        BossView
	Projectiles []projectile.Projectile
}

type HUDView struct {
	Health     int
	MaxHealth  int
	Stamina    int
	MaxStamina int
	Weapon     string
	Notice     string

	// History is the equipped weapon's hit list, nil while hidden.
	History     []string
	ShowHistory bool
}

// InventoryView is the open bag. Slots are in row order; empty slots are
// zero Items.
type InventoryView struct {
	Rows, Cols int
	Slots      []inventory.Item
	Cursor     inventory.Slot
	Equipped   string
}

func (m *Machine) playerView() PlayerView {
	p := m.world.Player
	return PlayerView{
		ActorView: ActorView{
			Kind:   p.Kind(),
			Name:   "Player",
			X:      p.X,
			Y:      p.Y,
			Facing: p.Facing,
			Frame:  p.SpriteFrame,
			Hitbox: p.Bounds(),
		},
		Running: p.Running,
		Slash:   p.Melee.Frame(m.now),
	}
}

func (m *Machine) worldView() *WorldView {
	w := m.world
	p := w.Player
	n := w.NPC
	v := &WorldView{
		Map:      w.Map,
		TileSize: w.tile,
		CameraX:  p.X - w.screenW/2 + w.tile/2,
		CameraY:  p.Y - w.screenH/2 + w.tile/2,
		Player:   m.playerView(),
		NPC: ActorView{
			Kind:   n.Kind(),
			Name:   n.Name,
			X:      n.X,
			Y:      n.Y,
			Facing: n.Facing,
			Frame:  n.SpriteFrame,
			Hitbox: n.Bounds(),
		},
	}
	for _, o := range w.Items {
		if !o.Taken {
			v.Items = append(v.Items, ItemView{Item: o.Item, Bounds: o.Bounds()})
		}
	}
	for _, pt := range w.Points {
		v.Points = append(v.Points, PointView{
			Name:    pt.Name,
			X:       pt.X,
			Y:       pt.Y,
			InRange: pt.InRange(p.X, p.Y),
		})
	}
	return v
}

func (m *Machine) shrineView() *ShrineView {
	e := m.encounter
	if e == nil {
		return nil
	}
	b := e.Boss
	return &ShrineView{
		Platform: e.Platform,
		TileSize: e.tile,
		Player:   m.playerView(),
		Boss: BossView{
			ActorView: ActorView{
				Kind:   entity.KindBoss,
				Name:   bossName,
				X:      b.X,
				Y:      b.Y,
				Facing: b.Facing,
				Frame:  b.Frame(),
				Hitbox: b.Bounds(),
			},
			State:     b.State(),
			Health:    b.Health(),
			MaxHealth: b.MaxHealth(),
		},
		Projectiles: e.Shots.Snapshot(),
	}
}

func (m *Machine) hudView() *HUDView {
	p := m.world.Player
	return &HUDView{
		Health:     p.Health.Current,
		MaxHealth:  p.Health.Max,
		Stamina:    p.Stamina.Display(),
		MaxStamina: p.Stamina.MaxDisplay(),
		Weapon:     p.Weapon,
		Notice:     m.activeNotice(),

		History:     m.historyView(),
		ShowHistory: m.showHistory,
	}
}

func dialogueView(s *dialogue.Session) *DialogueView {
	line, ok := s.Current()
	if !ok {
		return nil
	}
	return &DialogueView{
		Speaker: line.Speaker,
		Text:    line.Text,
		Index:   s.Index(),
		Total:   s.Script().Len(),
	}
}
