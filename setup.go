package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/milk9111/limitless/config"
	"github.com/milk9111/limitless/levels"
	"github.com/milk9111/limitless/save"
	"github.com/milk9111/limitless/tilemap"
)

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "limitless",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig layers the user file and env over the defaults, then applies
// command-line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	applyFlags(&cfg)
	return cfg, cfg.Validate()
}

func applyFlags(cfg *config.Config) {
	if flagTPS > 0 {
		cfg.Game.TPS = flagTPS
	}
	if flagMap != "" {
		cfg.Game.Map = flagMap
	}
}

// loadWorldMap loads the configured map. Bad entries are logged and played
// as passable tiles; a map that cannot be loaded at all falls back to the
// built-in one.
func loadWorldMap(cfg config.Config, logger *log.Logger) (*tilemap.Map, error) {
	table, err := levels.LoadTileTable()
	if err != nil {
		return nil, err
	}

	m, err := loadMapLogged(cfg.Game.Map, cfg, table, logger)
	if err == nil {
		return m, nil
	}
	fallback := config.Default().Game.Map
	if cfg.Game.Map == fallback {
		return nil, err
	}
	logger.Warn("map load failed, using built-in map", "map", cfg.Game.Map, "err", err)
	return loadMapLogged(fallback, cfg, table, logger)
}

func loadMapLogged(name string, cfg config.Config, table tilemap.Table, logger *log.Logger) (*tilemap.Map, error) {
	var (
		m        *tilemap.Map
		problems []tilemap.Problem
		err      error
	)
	if _, statErr := os.Stat(name); statErr == nil {
		m, problems, err = levels.LoadMapFile(name, cfg.Game.WorldCols, cfg.Game.WorldRows, table)
	} else {
		m, problems, err = levels.LoadMap(name, cfg.Game.WorldCols, cfg.Game.WorldRows, table)
	}
	for _, p := range problems {
		logger.Warn("map entry replaced", "map", name, "problem", p.String())
	}
	return m, err
}

// openStore opens the save database, keeping saves in memory when no path
// is set or the database cannot be opened.
func openStore(logger *log.Logger) save.Store {
	if flagSave == "" {
		return save.NewMemoryStore()
	}
	store, err := save.OpenSQLite(flagSave)
	if err != nil {
		logger.Warn("save database unavailable, saves will not persist", "path", flagSave, "err", err)
		return save.NewMemoryStore()
	}
	return store
}

func seed() uint64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return uint64(time.Now().UnixNano())
}
