// Package game is the top-level state machine: it owns the overworld and the
// shrine encounter, decides which of them receives each tick and produces a
// read-only View for presentation.
package game

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/milk9111/limitless/config"
	"github.com/milk9111/limitless/dialogue"
	"github.com/milk9111/limitless/input"
	"github.com/milk9111/limitless/save"
	"github.com/milk9111/limitless/tilemap"
)

const noticeDuration = 2 * time.Second

var errNoMap = errors.New("no tile map")

var scriptNames = []string{
	"elaria",
	"spawn_ruins",
	"ancient_pond",
	"arrow_ruins",
	"forest_edge",
	"shrine",
	"noxar",
}

// Presenter receives one View per rendered tick. It must treat the view as
// read-only.
type Presenter interface {
	Present(v View)
}

// Services is everything the machine needs from outside the core. Store,
// Presenter and Input may be nil.
type Services struct {
	Config    config.Config
	Map       *tilemap.Map
	Store     save.Store
	Logger    *log.Logger
	Presenter Presenter
	Input     *input.State
	Seed      uint64
}

// Machine is the game state machine. All methods must be called from the
// loop goroutine.
type Machine struct {
	cfg     config.Config
	log     *log.Logger
	present Presenter
	sampler *input.Sampler
	tickDur time.Duration

	states  [modeCount]modeState
	current modeState
	pending modeState
	resume  Mode

	tick uint64
	now  time.Duration
	quit bool

	scripts   map[string]*dialogue.Script
	world     *World
	talk      *conversation
	cutscene  *dialogue.Session
	encounter *Encounter
	persist   *persister
	audio     config.AudioConfig

	bag         bagOverlay
	showHistory bool

	notice   string
	noticeAt time.Duration
}

func New(svc Services) (*Machine, error) {
	if svc.Map == nil {
		return nil, fmt.Errorf("game: new: %w", errNoMap)
	}
	logger := svc.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := &Machine{
		cfg:     svc.Config,
		log:     logger,
		present: svc.Presenter,
		sampler: input.NewSampler(svc.Input),
		tickDur: svc.Config.TickDuration(),
		scripts: make(map[string]*dialogue.Script, len(scriptNames)),
		audio:   svc.Config.Audio,
	}
	for _, name := range scriptNames {
		s, err := dialogue.Load(name)
		if err != nil {
			return nil, fmt.Errorf("game: new: %w", err)
		}
		m.scripts[name] = s
	}
	if svc.Store != nil {
		m.persist = newPersister(svc.Store)
	}
	m.world = NewWorld(svc.Config, svc.Map, svc.Seed)

	m.states = [modeCount]modeState{
		ModeMenu:          newMainMenu(),
		ModeOptions:       newOptionsMenu(),
		ModePause:         newPauseMenu(),
		ModeDialogue:      dialogueState{},
		ModePlay:          playState{},
		ModeShrine:        shrineState{},
		ModeNoxarCutscene: cutsceneState{},
		ModeGameOver:      newEndMenu(ModeGameOver, "Game Over"),
		ModeWin:           newEndMenu(ModeWin, "Victory"),
	}
	m.current = m.states[ModeMenu]
	m.current.Enter(m)
	return m, nil
}

// Mode is the active mode.
func (m *Machine) Mode() Mode {
	return m.current.Mode()
}

// Tick is the number of completed ticks.
func (m *Machine) Tick() uint64 {
	return m.tick
}

// Now is the simulated time of the last tick.
func (m *Machine) Now() time.Duration {
	return m.now
}

// Done reports whether Quit was selected.
func (m *Machine) Done() bool {
	return m.quit
}

// World exposes the overworld scene.
func (m *Machine) World() *World {
	return m.world
}

// Encounter is the running shrine encounter, nil outside the shrine.
func (m *Machine) Encounter() *Encounter {
	return m.encounter
}

// Update samples the shared input state and runs one tick.
func (m *Machine) Update() {
	m.Step(m.sampler.Sample())
}

// Step runs one tick with the given input. Only the active mode is updated;
// a transition it requests takes effect after it returns.
func (m *Machine) Step(in input.Snapshot) {
	m.now = time.Duration(m.tick) * m.tickDur
	if res, ok := m.persist.poll(); ok {
		m.finishPersist(res)
	}
	m.current.Update(m, in)
	m.applyPending()
	m.tick++
}

// Render hands the current view to the presenter.
func (m *Machine) Render() {
	if m.present == nil {
		return
	}
	m.present.Present(m.View())
}

// View builds the read-only view of the active mode.
func (m *Machine) View() View {
	v := View{Tick: m.tick, Mode: m.Mode(), Audio: m.audio}
	m.current.View(m, &v)
	return v
}

// Reconfigure applies tunables that can change between ticks. Player and
// boss rules take effect the next time the world resets.
func (m *Machine) Reconfigure(cfg config.Config) {
	m.cfg = cfg
	m.audio = cfg.Audio
	m.world.Reconfigure(cfg)
	m.log.Info("config reloaded")
}

func (m *Machine) change(to Mode) {
	if m.pending != nil || to < 0 || to >= modeCount {
		return
	}
	if to == ModePause {
		m.resume = m.current.Mode()
	}
	m.pending = m.states[to]
}

func (m *Machine) applyPending() {
	next := m.pending
	if next == nil {
		return
	}
	m.pending = nil
	prev := m.current
	prev.Exit(m)
	m.current = next
	next.Enter(m)
	m.log.Debug("mode transition", "tick", m.tick, "from", prev.Mode(), "to", next.Mode())
}

func (m *Machine) setNotice(msg string) {
	m.notice = msg
	m.noticeAt = m.now
}

func (m *Machine) activeNotice() string {
	if m.notice == "" || m.now-m.noticeAt > noticeDuration {
		return ""
	}
	return m.notice
}

// resetWorld starts a fresh run.
func (m *Machine) resetWorld() {
	m.encounter = nil
	m.talk = nil
	m.cutscene = nil
	m.bag = bagOverlay{}
	m.world.Reset()
}

// abandonEncounter leaves the shrine and returns the player to where the
// sequence started.
func (m *Machine) abandonEncounter() {
	if m.encounter == nil {
		return
	}
	m.encounter.restorePlayer()
	m.encounter = nil
	m.cutscene = nil
}
