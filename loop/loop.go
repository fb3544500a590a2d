// Package loop drives a game at a fixed tick rate from a wall clock, running
// one update followed by one render per tick.
package loop

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

const DefaultMaxCatchUp = 5

// Game is what the loop drives.
type Game interface {
	Update()
	Render()
	// Done reports that the game wants to stop.
	Done() bool
}

// Clock is the only source of wall-clock time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

type Options struct {
	TPS int
	// MaxCatchUp caps the ticks run by one Poll. Time beyond the cap is
	// dropped.
	MaxCatchUp int
	Clock      Clock
	Logger     *log.Logger
}

type Loop struct {
	game       Game
	step       time.Duration
	maxCatchUp int
	clock      Clock
	log        *log.Logger

	started bool
	last    time.Time
	acc     time.Duration
	ticks   uint64
	panics  uint64
}

func New(game Game, opts Options) *Loop {
	if opts.TPS <= 0 {
		opts.TPS = 60
	}
	if opts.MaxCatchUp <= 0 {
		opts.MaxCatchUp = DefaultMaxCatchUp
	}
	if opts.Clock == nil {
		opts.Clock = systemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Loop{
		game:       game,
		step:       time.Second / time.Duration(opts.TPS),
		maxCatchUp: opts.MaxCatchUp,
		clock:      opts.Clock,
		log:        opts.Logger,
	}
}

// Step is the wall-clock length of one tick.
func (l *Loop) Step() time.Duration {
	return l.step
}

// Ticks is the number of ticks run so far.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Panics is the number of ticks that were aborted by a recovered panic.
func (l *Loop) Panics() uint64 {
	return l.panics
}

// Poll reads the clock and runs as many ticks as the elapsed time covers,
// up to MaxCatchUp. The first Poll runs one tick. Returns the ticks run.
func (l *Loop) Poll() int {
	now := l.clock.Now()
	if !l.started {
		l.started = true
		l.acc = l.step
	} else if elapsed := now.Sub(l.last); elapsed > 0 {
		l.acc += elapsed
	}
	l.last = now

	n := 0
	for l.acc >= l.step && !l.game.Done() {
		if n == l.maxCatchUp {
			l.log.Debug("dropping ticks", "behind", l.acc, "ticks", l.acc/l.step)
			l.acc %= l.step
			break
		}
		l.acc -= l.step
		l.tick()
		n++
	}
	return n
}

// tick runs one update and its render. A panic in either is logged and
// the loop carries on with the next tick; a tick whose update panicked is
// not rendered.
func (l *Loop) tick() {
	defer func() {
		l.ticks++
		if r := recover(); r != nil {
			l.panics++
			l.log.Error("tick panicked", "tick", l.ticks, "panic", r)
		}
	}()
	l.game.Update()
	l.game.Render()
}

// Run polls until ctx is cancelled or the game is done. It returns nil when
// the game finished and ctx.Err() on cancellation.
func (l *Loop) Run(ctx context.Context) error {
	wake := time.NewTicker(l.step)
	defer wake.Stop()
	for {
		if l.game.Done() {
			return nil
		}
		l.Poll()
		if l.game.Done() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-wake.C:
		}
	}
}
