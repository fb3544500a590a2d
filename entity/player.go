package entity

import (
	"time"

	"github.com/milk9111/limitless/collision"
	"github.com/milk9111/limitless/combat"
	"github.com/milk9111/limitless/common"
	"github.com/milk9111/limitless/inventory"
)

// Animation frame ranges for the player sheet.
const (
	playerIdleFirst = 1
	playerIdleCount = 2
	playerWalkFirst = 5
	playerWalkCount = 5
	playerRunFirst  = 10
	playerRunCount  = 8
)

// historyLimit bounds the attack history kept for the equipped weapon.
const historyLimit = 10

type PlayerRules struct {
	Health         int
	Speed          int
	RunMultiplier  int
	Hitbox         common.Rect
	SpawnX, SpawnY int
	WalkFrameTicks int
	Stamina        combat.StaminaRules
	Melee          combat.MeleeRules
}

type Player struct {
	Entity
	rules PlayerRules

	Health  *combat.Health
	Stamina *combat.Stamina
	Melee   *combat.Melee

	// Weapon is the equipped weapon id, empty when unarmed.
	Weapon string

	// History lists what the equipped weapon has hit, oldest first. It
	// starts over on every equip.
	History []string

	Bag *inventory.Inventory

	Moving  bool
	Running bool
}

func NewPlayer(rules PlayerRules) *Player {
	p := &Player{
		rules:   rules,
		Health:  combat.NewHealth(rules.Health),
		Stamina: combat.NewStamina(rules.Stamina),
		Melee:   combat.NewMelee(rules.Melee),
		Bag:     inventory.New(),
	}
	p.Reset()
	return p
}

func (p *Player) Kind() Kind          { return KindPlayer }
func (p *Player) Bounds() common.Rect { return p.WorldHitbox() }

// Reset puts the player back at spawn with full resources, an empty bag
// and no weapon.
func (p *Player) Reset() {
	p.Entity = Entity{
		X:      p.rules.SpawnX,
		Y:      p.rules.SpawnY,
		Facing: common.DirDown,
		Speed:  p.rules.Speed,
		Hitbox: p.rules.Hitbox,
	}
	p.Health.Reset()
	p.Stamina.Reset()
	p.Melee.Reset()
	p.Weapon = ""
	p.History = nil
	p.Bag.Clear()
	p.Moving = false
	p.Running = false
}

// Armed reports whether a weapon is equipped.
func (p *Player) Armed() bool {
	return p.Weapon != ""
}

// Steps is the number of single-pixel moves for this tick.
func (p *Player) Steps(sprinting bool) int {
	if sprinting && p.Stamina.CanSprint() {
		return p.Speed * max(p.rules.RunMultiplier, 1)
	}
	return p.Speed
}

// Move handles one tick of movement input. ok is false when no direction
// is held. blocked decides whether each pixel is allowed.
func (p *Player) Move(now time.Duration, dir common.Direction, ok, sprintHeld bool, blocked func(collision.Body) bool) {
	p.Moving = ok
	p.Running = ok && sprintHeld && p.Stamina.CanSprint()
	if ok {
		p.Walk(dir, p.Steps(sprintHeld), blocked)
	}
	p.Stamina.Update(now, p.Running, p.Moving, sprintHeld)
	p.animate()
}

func (p *Player) animate() {
	switch {
	case p.Running:
		p.Animate(p.rules.WalkFrameTicks, playerRunFirst, playerRunCount)
	case p.Moving:
		p.Animate(p.rules.WalkFrameTicks, playerWalkFirst, playerWalkCount)
	default:
		p.Animate(p.rules.WalkFrameTicks, playerIdleFirst, playerIdleCount)
	}
}

// Restore applies food. stamina is in HUD units.
func (p *Player) Restore(heal, stamina int) {
	p.Health.Heal(heal)
	p.Stamina.Restore(stamina)
}

func (p *Player) EquippedWeapon() string {
	return p.Weapon
}

// Equip switches to the named weapon, or unarms on an empty name.
func (p *Player) Equip(name string) {
	p.Weapon = name
	p.History = nil
}

// RecordHit notes a landed hit in the weapon's history.
func (p *Player) RecordHit(target string) {
	if !p.Armed() {
		return
	}
	if len(p.History) == historyLimit {
		p.History = append(p.History[:0], p.History[1:]...)
	}
	p.History = append(p.History, target)
}
