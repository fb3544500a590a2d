package game

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/limitless/boss"
	"github.com/milk9111/limitless/common"
	"github.com/milk9111/limitless/input"
)

// newEncounterScheduler is the fixed encounter order: player, boss,
// projectiles, melee, then the outcome check.
func newEncounterScheduler() *Scheduler {
	return NewScheduler(
		NewPlayerControlSystem(),
		NewBossSystem(),
		NewProjectileSystem(),
		NewMeleeSystem(),
		NewOutcomeSystem(),
	)
}

// PlayerControlSystem moves the player inside the platform and starts
// swings.
type PlayerControlSystem struct{}

func NewPlayerControlSystem() *PlayerControlSystem {
	return &PlayerControlSystem{}
}

func (s *PlayerControlSystem) Update(e *Encounter, f *Frame) {
	p := e.player
	dir, ok := f.Input.MoveDirection()
	p.Move(f.Now, dir, ok, f.Input.Held(input.ActionSprint), nil)

	pl := e.Platform
	p.X = common.Clamp(p.X, pl.X+e.tile, pl.Right()-e.tile)
	p.Y = common.Clamp(p.Y, pl.Y+e.tile, pl.Bottom()-e.tile)

	if f.Input.Held(input.ActionAttack) && p.Armed() {
		p.Melee.TrySwing(f.Now)
	}
}

// BossSystem runs Noxar's state machine and fires the shot a cast
// releases.
type BossSystem struct{}

func NewBossSystem() *BossSystem {
	return &BossSystem{}
}

func (s *BossSystem) Update(e *Encounter, f *Frame) {
	cx, cy := e.player.Bounds().Center()
	cast, ok := e.Boss.Update(f.Now, cp.Vector{X: cx, Y: cy})
	if !ok {
		return
	}
	shot := e.Shots.Spawn(cast.Origin, cast.Target)
	e.log.Debug("noxar cast", "projectile", shot.ID)
}

// ProjectileSystem moves shots and applies the damage of those that hit.
type ProjectileSystem struct{}

func NewProjectileSystem() *ProjectileSystem {
	return &ProjectileSystem{}
}

func (s *ProjectileSystem) Update(e *Encounter, f *Frame) {
	p := e.player
	if res := e.Shots.Update(p.Bounds()); res.Damage > 0 {
		p.Health.ApplyDamage(res.Damage)
	}
}

// MeleeSystem lands the player's active swing on a living Noxar.
type MeleeSystem struct{}

func NewMeleeSystem() *MeleeSystem {
	return &MeleeSystem{}
}

func (s *MeleeSystem) Update(e *Encounter, f *Frame) {
	p := e.player
	if !e.Boss.Alive() {
		return
	}
	if p.Melee.Resolve(f.Now, p.Weapon, p.Bounds(), e.Boss) {
		p.RecordHit(bossName)
	}
}

// OutcomeSystem ends the fight. The player's death is reported by the
// health pool's death hook.
type OutcomeSystem struct{}

func NewOutcomeSystem() *OutcomeSystem {
	return &OutcomeSystem{}
}

func (s *OutcomeSystem) Update(e *Encounter, f *Frame) {
	switch {
	case e.defeated:
		f.Outcome = OutcomeDefeat
	case e.Boss.State() == boss.StateDead:
		f.Outcome = OutcomeVictory
	}
}
