// Package config holds the explicitly constructed settings object that
// replaces global settings state. Defaults are embedded; a user file and
// LIMITLESS_* environment variables layer on top.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "LIMITLESS_"

type Config struct {
	Game        GameConfig        `yaml:"game" envPrefix:"GAME_"`
	Player      PlayerConfig      `yaml:"player" envPrefix:"PLAYER_"`
	Stamina     StaminaConfig     `yaml:"stamina" envPrefix:"STAMINA_"`
	Melee       MeleeConfig       `yaml:"melee" envPrefix:"MELEE_"`
	Boss        BossConfig        `yaml:"boss" envPrefix:"BOSS_"`
	Projectile  ProjectileConfig  `yaml:"projectile" envPrefix:"PROJECTILE_"`
	Shrine      ShrineConfig      `yaml:"shrine" envPrefix:"SHRINE_"`
	Interaction InteractionConfig `yaml:"interaction" envPrefix:"INTERACTION_"`
	Audio       AudioConfig       `yaml:"audio" envPrefix:"AUDIO_"`
}

type GameConfig struct {
	TPS          int    `yaml:"tps" env:"TPS"`
	ScreenWidth  int    `yaml:"screen_width" env:"SCREEN_WIDTH"`
	ScreenHeight int    `yaml:"screen_height" env:"SCREEN_HEIGHT"`
	TileSize     int    `yaml:"tile_size" env:"TILE_SIZE"`
	WorldCols    int    `yaml:"world_cols" env:"WORLD_COLS"`
	WorldRows    int    `yaml:"world_rows" env:"WORLD_ROWS"`
	MaxCatchUp   int    `yaml:"max_catch_up" env:"MAX_CATCH_UP"`
	Map          string `yaml:"map" env:"MAP"`
}

type HitboxConfig struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type PlayerConfig struct {
	Health         int          `yaml:"health" env:"HEALTH"`
	Speed          int          `yaml:"speed" env:"SPEED"`
	RunMultiplier  int          `yaml:"run_multiplier" env:"RUN_MULTIPLIER"`
	Hitbox         HitboxConfig `yaml:"hitbox"`
	SpawnCol       int          `yaml:"spawn_col" env:"SPAWN_COL"`
	SpawnRow       int          `yaml:"spawn_row" env:"SPAWN_ROW"`
	WalkFrameTicks int          `yaml:"walk_frame_ticks" env:"WALK_FRAME_TICKS"`
}

type StaminaConfig struct {
	Max             int           `yaml:"max" env:"MAX"`
	DisplayScale    int           `yaml:"display_scale" env:"DISPLAY_SCALE"`
	DrainPerTick    int           `yaml:"drain_per_tick" env:"DRAIN_PER_TICK"`
	RegenIdle       int           `yaml:"regen_idle" env:"REGEN_IDLE"`
	RegenMoving     int           `yaml:"regen_moving" env:"REGEN_MOVING"`
	RegenDelay      time.Duration `yaml:"regen_delay" env:"REGEN_DELAY"`
	ExhaustCooldown time.Duration `yaml:"exhaust_cooldown" env:"EXHAUST_COOLDOWN"`
}

type MeleeConfig struct {
	SwingCooldown  time.Duration `yaml:"swing_cooldown" env:"SWING_COOLDOWN"`
	SlashFrames    int           `yaml:"slash_frames" env:"SLASH_FRAMES"`
	SlashFrameTime time.Duration `yaml:"slash_frame_time" env:"SLASH_FRAME_TIME"`
	HitCooldown    time.Duration `yaml:"hit_cooldown" env:"HIT_COOLDOWN"`
	Margin         int           `yaml:"margin" env:"MARGIN"`
	Damage         int           `yaml:"damage" env:"DAMAGE"`
}

type BossConfig struct {
	Health         int           `yaml:"health" env:"HEALTH"`
	Width          int           `yaml:"width" env:"WIDTH"`
	Height         int           `yaml:"height" env:"HEIGHT"`
	Speed          int           `yaml:"speed" env:"SPEED"`
	PaceHalfWidth  int           `yaml:"pace_half_width" env:"PACE_HALF_WIDTH"`
	FrameTime      time.Duration `yaml:"frame_time" env:"FRAME_TIME"`
	CastInterval   time.Duration `yaml:"cast_interval" env:"CAST_INTERVAL"`
	CastFrames     int           `yaml:"cast_frames" env:"CAST_FRAMES"`
	SpawnFrame     int           `yaml:"spawn_frame" env:"SPAWN_FRAME"`
	HurtFrames     int           `yaml:"hurt_frames" env:"HURT_FRAMES"`
	WalkFrames     int           `yaml:"walk_frames" env:"WALK_FRAMES"`
	WalkFrameTicks int           `yaml:"walk_frame_ticks" env:"WALK_FRAME_TICKS"`
}

type ProjectileConfig struct {
	Speed  float64 `yaml:"speed" env:"SPEED"`
	Damage int     `yaml:"damage" env:"DAMAGE"`
	Size   int     `yaml:"size" env:"SIZE"`
}

type ShrineConfig struct {
	PlatformCols int `yaml:"platform_cols" env:"PLATFORM_COLS"`
	PlatformRows int `yaml:"platform_rows" env:"PLATFORM_ROWS"`
}

type InteractionConfig struct {
	RadiusTiles int           `yaml:"radius_tiles" env:"RADIUS_TILES"`
	Cooldown    time.Duration `yaml:"cooldown" env:"COOLDOWN"`
}

type AudioConfig struct {
	MusicVolume float64 `yaml:"music_volume" env:"MUSIC_VOLUME"`
	SFXVolume   float64 `yaml:"sfx_volume" env:"SFX_VOLUME"`
}

// Default returns the embedded defaults. The embedded file is part of the
// binary, so a decode failure is a build defect.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		panic("config: embedded defaults: " + err.Error())
	}
	return cfg
}

// Load layers the user file at path (optional) and environment overrides on
// top of the embedded defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: unmarshal %s: %w", path, err)
		}
	}
	if err := ParseEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}
	positive("game.tps", c.Game.TPS)
	positive("game.screen_width", c.Game.ScreenWidth)
	positive("game.screen_height", c.Game.ScreenHeight)
	positive("game.tile_size", c.Game.TileSize)
	positive("game.world_cols", c.Game.WorldCols)
	positive("game.world_rows", c.Game.WorldRows)
	positive("player.health", c.Player.Health)
	positive("player.speed", c.Player.Speed)
	positive("stamina.max", c.Stamina.Max)
	positive("stamina.display_scale", c.Stamina.DisplayScale)
	positive("boss.health", c.Boss.Health)
	positive("boss.cast_frames", c.Boss.CastFrames)
	positive("boss.hurt_frames", c.Boss.HurtFrames)
	positive("melee.slash_frames", c.Melee.SlashFrames)
	if c.Projectile.Speed <= 0 {
		errs = append(errs, fmt.Errorf("projectile.speed must be positive, got %g", c.Projectile.Speed))
	}
	if c.Boss.SpawnFrame < 0 || c.Boss.SpawnFrame >= c.Boss.CastFrames {
		errs = append(errs, fmt.Errorf("boss.spawn_frame %d outside cast sequence", c.Boss.SpawnFrame))
	}
	durations := map[string]time.Duration{
		"stamina.regen_delay":      c.Stamina.RegenDelay,
		"stamina.exhaust_cooldown": c.Stamina.ExhaustCooldown,
		"melee.swing_cooldown":     c.Melee.SwingCooldown,
		"melee.hit_cooldown":       c.Melee.HitCooldown,
		"boss.cast_interval":       c.Boss.CastInterval,
		"interaction.cooldown":     c.Interaction.Cooldown,
	}
	for name, d := range durations {
		if d < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %s", name, d))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// TickDuration is the simulated time covered by one tick.
func (c Config) TickDuration() time.Duration {
	if c.Game.TPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.Game.TPS)
}
