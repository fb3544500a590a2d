package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/milk9111/limitless/game"
	"github.com/milk9111/limitless/input"
	"github.com/milk9111/limitless/loop"
)

var (
	simTicks  int
	simScript string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the game headless with scripted input",
	Long: `Runs the simulation without a window, feeding actions from a script.

A script is a comma separated list of steps. Each step holds one or more
actions joined by "+" for a number of ticks:

  confirm*1,none*2,right+sprint*120,interact

Actions: up, down, left, right, sprint, interact, attack, confirm, escape,
save, load, delete_save, inventory, history, drop. "none" holds nothing.`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&simTicks, "ticks", 600, "Number of ticks to simulate")
	simCmd.Flags().StringVar(&simScript, "script", "confirm*1,none*1,right+sprint*120,down*60", "Input script")
}

// stepClock advances by one step every time it is read, so each Poll runs
// exactly one tick regardless of wall time.
type stepClock struct {
	now  time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

type simDriver struct {
	machine *game.Machine
	script  *input.Script
	state   *input.State
	limit   uint64
}

func (d *simDriver) Update() {
	d.script.Apply(d.state)
	d.machine.Update()
}

func (d *simDriver) Render() {
	d.machine.Render()
}

func (d *simDriver) Done() bool {
	return d.machine.Done() || d.machine.Tick() >= d.limit
}

func runSim(cmd *cobra.Command, args []string) error {
	if simTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", simTicks)
	}
	script, err := input.ParseScript(simScript)
	if err != nil {
		return err
	}

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

	state := input.NewState()
	machine, err := game.New(game.Services{
		Config: cfg,
		Map:    m,
		Store:  store,
		Logger: logger,
		Input:  state,
		Seed:   seed(),
	})
	if err != nil {
		return err
	}

	driver := &simDriver{machine: machine, script: script, state: state, limit: uint64(simTicks)}
	clock := &stepClock{now: time.Unix(0, 0), step: cfg.TickDuration()}
	l := loop.New(driver, loop.Options{
		TPS:        cfg.Game.TPS,
		MaxCatchUp: cfg.Game.MaxCatchUp,
		Clock:      clock,
		Logger:     logger,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	for !driver.Done() {
		if ctx.Err() != nil {
			break
		}
		l.Poll()
	}
	logger.Debug("simulation finished", "ticks", l.Ticks(), "panics", l.Panics())

	printSummary(cmd.OutOrStdout(), machine)
	if err := ctx.Err(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func printSummary(w io.Writer, m *game.Machine) {
	v := m.View()
	fmt.Fprintf(w, "mode:    %s\n", m.Mode())
	fmt.Fprintf(w, "tick:    %d\n", m.Tick())
	fmt.Fprintf(w, "time:    %s\n", m.Now())

	p := m.World().Player
	weapon := p.Weapon
	if weapon == "" {
		weapon = "none"
	}
	fmt.Fprintf(w, "player:  x=%d y=%d facing=%s hp=%d/%d weapon=%s\n",
		p.X, p.Y, p.Facing, p.Health.Current, p.Health.Max, weapon)

	var bag []string
	for _, it := range p.Bag.Items() {
		if !it.Empty() {
			bag = append(bag, fmt.Sprintf("%s x%d", it.Name, it.Quantity))
		}
	}
	if len(bag) > 0 {
		fmt.Fprintf(w, "bag:     %s\n", strings.Join(bag, ", "))
	}

	if v.Shrine != nil {
		b := v.Shrine.Boss
		fmt.Fprintf(w, "noxar:   state=%s hp=%d/%d projectiles=%d\n",
			b.State, b.Health, b.MaxHealth, len(v.Shrine.Projectiles))
	}
	if v.Dialogue != nil {
		fmt.Fprintf(w, "dialog:  %s: %s (%d/%d)\n",
			v.Dialogue.Speaker, v.Dialogue.Text, v.Dialogue.Index+1, v.Dialogue.Total)
	}
}
