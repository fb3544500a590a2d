package game

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/milk9111/limitless/boss"
	"github.com/milk9111/limitless/combat"
	"github.com/milk9111/limitless/common"
	"github.com/milk9111/limitless/config"
	"github.com/milk9111/limitless/entity"
	"github.com/milk9111/limitless/input"
	"github.com/milk9111/limitless/projectile"
)

const (
	noxarID  = 1
	bossName = "Noxar"
)

// Outcome is how an encounter tick ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeDefeat
	OutcomeVictory
)

// Encounter is the boss fight on the shrine platform.
type Encounter struct {
	Platform common.Rect
	Boss     *boss.Noxar
	Shots    *projectile.System

	player   *entity.Player
	tile     int
	log      *log.Logger
	systems  *Scheduler
	defeated bool

	// Overworld placement to restore if the fight is abandoned.
	returnX, returnY int
	returnFacing     common.Direction
}

// newEncounter centers the platform on screen, moves the player to its left
// quarter and spawns Noxar on the right quarter. The player's health hooks
// belong to the encounter until it ends.
func newEncounter(cfg config.Config, p *entity.Player, logger *log.Logger) *Encounter {
	t := cfg.Game.TileSize
	pw := cfg.Shrine.PlatformCols * t
	ph := cfg.Shrine.PlatformRows * t
	platform := common.Rect{
		X:      (cfg.Game.ScreenWidth - pw) / 2,
		Y:      (cfg.Game.ScreenHeight - ph) / 2,
		Width:  pw,
		Height: ph,
	}

	e := &Encounter{
		Platform:     platform,
		player:       p,
		tile:         t,
		log:          logger,
		systems:      newEncounterScheduler(),
		returnX:      p.X,
		returnY:      p.Y,
		returnFacing: p.Facing,
	}
	e.Boss = boss.New(noxarID, bossRules(cfg),
		platform.X+pw*3/4, platform.Y+ph/2-cfg.Boss.Height)
	e.Shots = projectile.NewSystem(projectile.Rules{
		Speed:  cfg.Projectile.Speed,
		Damage: cfg.Projectile.Damage,
		Size:   cfg.Projectile.Size,
	}, cfg.Game.ScreenWidth, cfg.Game.ScreenHeight)

	p.X = platform.X + pw/4
	p.Y = platform.Y + ph/2 - t/2
	p.Facing = common.DirRight
	p.Melee.Reset()
	p.Health.OnDamage = func(h *combat.Health, amount int) {
		e.log.Debug("player hit", "damage", amount, "hp", h.Current)
	}
	p.Health.OnDeath = func(h *combat.Health) {
		e.defeated = true
	}
	return e
}

// Update runs the encounter systems once.
func (e *Encounter) Update(now time.Duration, in input.Snapshot) Outcome {
	f := Frame{Now: now, Input: in}
	e.systems.Update(e, &f)
	return f.Outcome
}

func (e *Encounter) restorePlayer() {
	p := e.player
	p.X = e.returnX
	p.Y = e.returnY
	p.Facing = e.returnFacing
	p.Melee.Reset()
	e.release()
}

// release hands the player's health hooks back.
func (e *Encounter) release() {
	e.player.Health.OnDamage = nil
	e.player.Health.OnDeath = nil
}

func bossRules(cfg config.Config) boss.Rules {
	b := cfg.Boss
	return boss.Rules{
		Health:         b.Health,
		Width:          b.Width,
		Height:         b.Height,
		Speed:          b.Speed,
		PaceHalfWidth:  b.PaceHalfWidth,
		FrameTime:      b.FrameTime,
		CastInterval:   b.CastInterval,
		CastFrames:     b.CastFrames,
		SpawnFrame:     b.SpawnFrame,
		HurtFrames:     b.HurtFrames,
		WalkFrames:     b.WalkFrames,
		WalkFrameTicks: b.WalkFrameTicks,
	}
}
