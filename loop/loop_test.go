package loop

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

type fakeClock struct {
	now time.Time
	// auto advances the clock on every read.
	auto time.Duration
}

func (c *fakeClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.auto)
	return t
}

func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type fakeGame struct {
	calls    []string
	updates  int
	panicOn  int
	doneWhen int
}

func (g *fakeGame) Update() {
	g.updates++
	g.calls = append(g.calls, "update")
	if g.updates == g.panicOn {
		panic("boom")
	}
}

func (g *fakeGame) Render() {
	g.calls = append(g.calls, "render")
}

func (g *fakeGame) Done() bool {
	return g.doneWhen > 0 && g.updates >= g.doneWhen
}

func newTestLoop(g Game, clock Clock, logger *log.Logger) *Loop {
	return New(g, Options{TPS: 10, MaxCatchUp: 5, Clock: clock, Logger: logger})
}

func TestPollAccumulates(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	g := &fakeGame{}
	l := newTestLoop(g, clock, nil)
	step := l.Step()

	cases := []struct {
		name    string
		elapsed time.Duration
		want    int
	}{
		{"first_poll_runs_one", 0, 1},
		{"no_time_no_tick", 0, 0},
		{"partial_step", step / 2, 0},
		{"carries_remainder", step / 2, 1},
		{"two_and_a_half", step*5/2, 2},
		{"remainder_completes", step / 2, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clock.advance(tc.elapsed)
			if got := l.Poll(); got != tc.want {
				t.Fatalf("Poll() = %d, want %d", got, tc.want)
			}
		})
	}
	if l.Ticks() != 5 {
		t.Fatalf("Ticks() = %d, want 5", l.Ticks())
	}
}

func TestUpdateBeforeRender(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	g := &fakeGame{}
	l := newTestLoop(g, clock, nil)
	l.Poll()
	clock.advance(l.Step() * 2)
	l.Poll()

	want := []string{"update", "render", "update", "render", "update", "render"}
	if strings.Join(g.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("calls = %v, want %v", g.calls, want)
	}
}

func TestMaxCatchUpDropsBacklog(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	clock := &fakeClock{now: time.Unix(0, 0)}
	g := &fakeGame{}
	l := newTestLoop(g, clock, logger)
	l.Poll()

	clock.advance(10 * time.Second)
	if got := l.Poll(); got != 5 {
		t.Fatalf("Poll() after stall = %d, want 5", got)
	}
	if !strings.Contains(buf.String(), "dropping ticks") {
		t.Fatalf("backlog drop not logged: %q", buf.String())
	}

	clock.advance(l.Step())
	if got := l.Poll(); got != 1 {
		t.Fatalf("Poll() after drop = %d, want 1", got)
	}
}

func TestPanicIsLoggedAndLoopContinues(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	clock := &fakeClock{now: time.Unix(0, 0)}
	g := &fakeGame{panicOn: 2}
	l := newTestLoop(g, clock, logger)
	l.Poll()
	clock.advance(l.Step() * 3)

	if got := l.Poll(); got != 3 {
		t.Fatalf("Poll() = %d, want 3", got)
	}
	if l.Panics() != 1 {
		t.Fatalf("Panics() = %d, want 1", l.Panics())
	}
	if !strings.Contains(buf.String(), "tick panicked") {
		t.Fatalf("panic not logged: %q", buf.String())
	}

	want := []string{"update", "render", "update", "update", "render", "update", "render"}
	if strings.Join(g.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("calls = %v, want %v", g.calls, want)
	}
}

func TestPollStopsWhenDone(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	g := &fakeGame{doneWhen: 2}
	l := newTestLoop(g, clock, nil)
	l.Poll()
	clock.advance(l.Step() * 4)
	if got := l.Poll(); got != 1 {
		t.Fatalf("Poll() = %d, want 1", got)
	}
}

func TestRunReturnsWhenDone(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0), auto: 100 * time.Millisecond}
	g := &fakeGame{doneWhen: 4}
	l := New(g, Options{TPS: 1000, Clock: clock})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := l.Run(ctx); err != nil {
		t.Fatalf("Run() = %v, want nil", err)
	}
	if g.updates != 4 {
		t.Fatalf("updates = %d, want 4", g.updates)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	g := &fakeGame{}
	l := New(g, Options{TPS: 1000})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := l.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Run() = %v, want deadline exceeded", err)
	}
	if g.updates == 0 {
		t.Fatalf("no ticks ran before cancellation")
	}
}
