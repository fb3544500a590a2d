package game

import (
	"time"

	"github.com/milk9111/limitless/collision"
	"github.com/milk9111/limitless/combat"
	"github.com/milk9111/limitless/common"
	"github.com/milk9111/limitless/config"
	"github.com/milk9111/limitless/entity"
	"github.com/milk9111/limitless/input"
	"github.com/milk9111/limitless/inventory"
	"github.com/milk9111/limitless/tilemap"
)

const (
	npcName   = "Elaria"
	npcScript = "elaria"

	// The shrine point sits between tiles; its pixel position is given for
	// a 96px tile and scaled to the configured size.
	shrineX        = 2168
	shrineY        = 4116
	referenceTile  = 96
	shrineScript   = "shrine"
	cutsceneScript = "noxar"
)

var appleTiles = [][2]int{{15, 20}, {17, 22}, {25, 15}, {30, 10}, {10, 8}}

var pointTiles = []struct {
	name   string
	col    int
	row    int
	script string
}{
	{"Spawn Ruins", 12, 7, "spawn_ruins"},
	{"Ancient Pond", 35, 13, "ancient_pond"},
	{"Arrow Ruins", 51, 6, "arrow_ruins"},
	{"Forest Edge", 61, 20, "forest_edge"},
}

// Items within pickupTiles of the player can be picked up; a dropped apple
// joins a dropped stack within one tile.
const pickupTiles = 2

// World is the overworld scene: the map, the player, Elaria, items on the
// ground and the fixed interaction points.
type World struct {
	Map    *tilemap.Map
	Player *entity.Player
	NPC    *entity.NPC
	Items  []*entity.Object
	Points []entity.Interaction

	cfg      config.Config
	tile     int
	screenW  int
	screenH  int
	radius   int
	cooldown time.Duration
	seed     uint64

	lastTalkEnd time.Duration
	talked      bool
}

func NewWorld(cfg config.Config, m *tilemap.Map, seed uint64) *World {
	w := &World{
		Map:  m,
		tile: cfg.Game.TileSize,
		seed: seed,
	}
	w.Reconfigure(cfg)
	w.Reset()
	return w
}

// Reconfigure picks up the tunables that apply to a live world. The tile
// size is fixed for the life of the map.
func (w *World) Reconfigure(cfg config.Config) {
	cfg.Game.TileSize = w.tile
	w.cfg = cfg
	w.screenW = cfg.Game.ScreenWidth
	w.screenH = cfg.Game.ScreenHeight
	w.radius = cfg.Interaction.RadiusTiles * w.tile
	w.cooldown = cfg.Interaction.Cooldown
	for i := range w.Points {
		w.Points[i].Radius = w.radius
	}
}

// Reset puts every entity back to its starting state.
func (w *World) Reset() {
	w.Player = entity.NewPlayer(playerRules(w.cfg))
	w.NPC = entity.NewNPC(npcName, npcScript,
		w.screenW/2+w.tile*15, w.screenH/2+w.tile*7, w.seed)

	w.Items = w.Items[:0]
	for _, at := range appleTiles {
		if w.Map.Solid(at[0], at[1]) {
			continue
		}
		w.Items = append(w.Items, entity.NewObject(
			inventory.Item{Name: inventory.Apple, Quantity: 1},
			at[0]*w.tile, at[1]*w.tile, w.tile/2))
	}

	w.Points = w.Points[:0]
	for _, p := range pointTiles {
		w.Points = append(w.Points, entity.Interaction{
			Name:   p.name,
			X:      p.col * w.tile,
			Y:      p.row * w.tile,
			Radius: w.radius,
			Script: p.script,
		})
	}
	w.Points = append(w.Points, entity.Interaction{
		Name:   "Ancient Shrine",
		X:      shrineX * w.tile / referenceTile,
		Y:      shrineY * w.tile / referenceTile,
		Radius: w.radius,
		Script: shrineScript,
		Shrine: true,
	})

	w.lastTalkEnd = 0
	w.talked = false
}

// Update runs one overworld tick: player movement and Elaria.
func (w *World) Update(now time.Duration, in input.Snapshot) {
	p := w.Player
	dir, ok := in.MoveDirection()
	p.Move(now, dir, ok, in.Held(input.ActionSprint), w.playerBlocked)
	if in.Held(input.ActionAttack) && p.Armed() {
		p.Melee.TrySwing(now)
	}

	n := w.NPC
	n.InRange = n.Near(p.X, p.Y, w.radius)
	if n.InRange {
		n.Face(p.X, p.Y, w.tile)
	} else {
		n.Wander(w.npcBlocked)
	}
}

// PickupTarget is the closest item on the ground within reach of the
// player, or nil.
func (w *World) PickupTarget() *entity.Object {
	p := w.Player
	var best *entity.Object
	bestDist := 0
	for _, o := range w.Items {
		if o.Taken || !o.Within(p.X, p.Y, pickupTiles*w.tile) {
			continue
		}
		dx, dy := o.X-p.X, o.Y-p.Y
		if d := dx*dx + dy*dy; best == nil || d < bestDist {
			best, bestDist = o, d
		}
	}
	return best
}

// Pickup moves o into the player's bag. The item stays on the ground when
// the bag has no room.
func (w *World) Pickup(o *entity.Object) error {
	if o == nil || o.Taken {
		return nil
	}
	if err := w.Player.Bag.Add(o.Item); err != nil {
		return err
	}
	o.Taken = true
	return nil
}

// Drop puts it on the ground at the player's feet. An apple joins a
// dropped apple stack less than a tile away.
func (w *World) Drop(it inventory.Item) *entity.Object {
	p := w.Player
	if def, ok := inventory.Lookup(it.Name); ok && def.Stackable {
		for _, o := range w.Items {
			if !o.Taken && o.Item.Name == it.Name && o.Within(p.X, p.Y, w.tile) {
				o.Item.Quantity += it.Quantity
				return o
			}
		}
	}
	o := entity.NewObject(it, p.X, p.Y, w.tile/2)
	w.Items = append(w.Items, o)
	return o
}

// InteractTarget returns what an interact press would open: Elaria takes
// precedence over the fixed points. Both are nil when nothing is in range
// or the cooldown is running.
func (w *World) InteractTarget(now time.Duration) (*entity.NPC, *entity.Interaction) {
	p := w.Player
	if w.NPC.Near(p.X, p.Y, w.radius) && w.NPC.CanTalk(now, w.cooldown) {
		return w.NPC, nil
	}
	if w.talked && now-w.lastTalkEnd < w.cooldown {
		return nil, nil
	}
	for i := range w.Points {
		if w.Points[i].InRange(p.X, p.Y) {
			return nil, &w.Points[i]
		}
	}
	return nil, nil
}

// EndTalk starts the interaction cooldown after a conversation.
func (w *World) EndTalk(now time.Duration, npc *entity.NPC) {
	w.talked = true
	w.lastTalkEnd = now
	if npc != nil {
		npc.EndTalk(now)
	}
}

// Placeable reports whether the player's hitbox fits at (x, y) without
// touching a solid or out-of-range tile or standing on Elaria.
func (w *World) Placeable(x, y int) bool {
	hb := w.Player.Hitbox.Offset(x, y)
	left := common.FloorDiv(hb.X, w.tile)
	right := common.FloorDiv(hb.Right()-1, w.tile)
	top := common.FloorDiv(hb.Y, w.tile)
	bottom := common.FloorDiv(hb.Bottom()-1, w.tile)
	for col := left; col <= right; col++ {
		for row := top; row <= bottom; row++ {
			if w.Map.Solid(col, row) {
				return false
			}
		}
	}
	return !collision.Overlaps(hb, w.NPC.Bounds())
}

// playerBlocked rolls back a player step that hits a tile or walks into
// Elaria. Steps away from her are always allowed.
func (w *World) playerBlocked(b collision.Body) bool {
	if collision.CheckTile(w.Map, w.tile, b) {
		return true
	}
	return collision.CheckEntity(b, w.NPC.Body()).Colliding(true)
}

func (w *World) npcBlocked(b collision.Body) bool {
	if collision.CheckTile(w.Map, w.tile, b) {
		return true
	}
	dx, dy := b.Facing.Delta()
	next := b
	next.X += dx * b.Speed
	next.Y += dy * b.Speed
	next.Hitbox = b.Hitbox.Offset(dx*b.Speed, dy*b.Speed)
	return collision.CheckEntity(next, w.Player.Body()).Colliding(true)
}

func playerRules(cfg config.Config) entity.PlayerRules {
	t := cfg.Game.TileSize
	hb := cfg.Player.Hitbox
	return entity.PlayerRules{
		Health:         cfg.Player.Health,
		Speed:          cfg.Player.Speed,
		RunMultiplier:  cfg.Player.RunMultiplier,
		Hitbox:         common.Rect{X: hb.X, Y: hb.Y, Width: hb.Width, Height: hb.Height},
		SpawnX:         cfg.Player.SpawnCol * t,
		SpawnY:         cfg.Player.SpawnRow * t,
		WalkFrameTicks: cfg.Player.WalkFrameTicks,
		Stamina: combat.StaminaRules{
			Max:             cfg.Stamina.Max,
			DisplayScale:    cfg.Stamina.DisplayScale,
			DrainPerTick:    cfg.Stamina.DrainPerTick,
			RegenIdle:       cfg.Stamina.RegenIdle,
			RegenMoving:     cfg.Stamina.RegenMoving,
			RegenDelay:      cfg.Stamina.RegenDelay,
			ExhaustCooldown: cfg.Stamina.ExhaustCooldown,
		},
		Melee: combat.MeleeRules{
			SwingCooldown:  cfg.Melee.SwingCooldown,
			SlashFrames:    cfg.Melee.SlashFrames,
			SlashFrameTime: cfg.Melee.SlashFrameTime,
			HitCooldown:    cfg.Melee.HitCooldown,
			Margin:         cfg.Melee.Margin,
			Damage:         cfg.Melee.Damage,
		},
	}
}
