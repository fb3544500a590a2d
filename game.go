package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/spf13/cobra"

	"github.com/milk9111/limitless/config"
	"github.com/milk9111/limitless/game"
	"github.com/milk9111/limitless/input"
	"github.com/milk9111/limitless/loop"
	"github.com/milk9111/limitless/save"
	"github.com/milk9111/limitless/tilemap"
)

// Game adapts the state machine to ebiten. ebiten owns the frame callback,
// so the loop is advanced with Poll from Update and the last presented view
// is drawn in Draw.
type Game struct {
	machine *game.Machine
	loop    *loop.Loop
	keys    *input.Keyboard
	state   *input.State
	menu    *menuUI
	screen  *renderer
	watcher *config.Watcher
	log     *log.Logger

	view   game.View
	width  int
	height int
	debug  bool
}

func NewGame(cfg config.Config, m *tilemap.Map, store save.Store, logger *log.Logger) (*Game, error) {
	state := input.NewState()
	g := &Game{
		keys:   input.NewKeyboard(),
		state:  state,
		menu:   newMenuUI(state),
		screen: newRenderer(),
		log:    logger,
		width:  cfg.Game.ScreenWidth,
		height: cfg.Game.ScreenHeight,
		debug:  flagDebug,
	}
	machine, err := game.New(game.Services{
		Config:    cfg,
		Map:       m,
		Store:     store,
		Logger:    logger,
		Presenter: g,
		Input:     state,
		Seed:      seed(),
	})
	if err != nil {
		return nil, err
	}
	g.machine = machine
	g.loop = loop.New(machine, loop.Options{
		TPS:        cfg.Game.TPS,
		MaxCatchUp: cfg.Game.MaxCatchUp,
		Logger:     logger,
	})
	g.view = machine.View()
	return g, nil
}

// Present keeps the latest view for Draw.
func (g *Game) Present(v game.View) {
	g.view = v
}

// Watch reloads tunables whenever the config file at path changes.
func (g *Game) Watch(path string) error {
	w, err := config.NewWatcher(path)
	if err != nil {
		return err
	}
	g.watcher = w
	return nil
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) Update() error {
	g.keys.Poll(g.state)
	g.menu.Update(g.view.Menu)
	g.reloadConfig()
	g.loop.Poll()
	if g.machine.Done() {
		return ebiten.Termination
	}
	return nil
}

// reloadConfig applies a pending config change between ticks.
func (g *Game) reloadConfig() {
	if g.watcher == nil {
		return
	}
	select {
	case _, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		cfg, err := loadConfig()
		if err != nil {
			g.log.Warn("config reload failed", "err", err)
			return
		}
		g.machine.Reconfigure(cfg)
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.log.Warn("config watcher", "err", err)
		}
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Draw(screen, g.view)
	if g.view.Menu != nil {
		g.menu.Draw(screen)
	}
	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Tick: %d    Mode: %s    TPS: %.2f",
			g.view.Tick, g.view.Mode, ebiten.ActualTPS()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	m, err := loadWorldMap(cfg, logger)
	if err != nil {
		return err
	}
	store := openStore(logger)
	defer store.Close()

	g, err := NewGame(cfg, m, store, logger)
	if err != nil {
		return err
	}
	defer g.Close()
	if flagConfig != "" {
		if err := g.Watch(flagConfig); err != nil {
			logger.Warn("config hot reload disabled", "path", flagConfig, "err", err)
		}
	}

	ebiten.SetWindowSize(cfg.Game.ScreenWidth, cfg.Game.ScreenHeight)
	ebiten.SetWindowTitle("Limitless")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Game.TPS)
	return ebiten.RunGame(g)
}
