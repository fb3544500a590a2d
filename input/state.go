// Package input holds the shared record of pressed actions. The event source
// (the window's key polling, or a script) writes flags from any goroutine;
// the game loop samples one snapshot per tick and never writes back.
package input

import (
	"sync/atomic"

	"github.com/milk9111/limitless/common"
)

// NoChoice means no menu entry was picked with the pointer.
const NoChoice = -1

// State is safe for concurrent use. All held flags live in one word so a
// snapshot never observes half of an update.
type State struct {
	held   atomic.Uint32
	choice atomic.Int32
}

func NewState() *State {
	s := &State{}
	s.choice.Store(NoChoice)
	return s
}

// Set marks a as held or released.
func (s *State) Set(a Action, down bool) {
	if s == nil {
		return
	}
	bit := a.bit()
	if bit == 0 {
		return
	}
	if down {
		s.held.Or(bit)
	} else {
		s.held.And(^bit)
	}
}

func (s *State) Press(a Action)   { s.Set(a, true) }
func (s *State) Release(a Action) { s.Set(a, false) }

// ReleaseAll clears every held flag, e.g. when the window loses focus.
func (s *State) ReleaseAll() {
	if s == nil {
		return
	}
	s.held.Store(0)
}

// Choose records a pointer pick of menu entry i. It is consumed by the next
// sample.
func (s *State) Choose(i int) {
	if s == nil || i < 0 {
		return
	}
	s.choice.Store(int32(i))
}

func (s *State) load() (uint32, int) {
	return s.held.Load(), int(s.choice.Swap(NoChoice))
}

// Snapshot is the read-only view of input for one tick.
type Snapshot struct {
	held    uint32
	pressed uint32
	Choice  int
}

// Held reports the level-triggered state of a.
func (s Snapshot) Held(a Action) bool {
	return s.held&a.bit() != 0
}

// Pressed reports whether a went down since the previous tick.
func (s Snapshot) Pressed(a Action) bool {
	return s.pressed&a.bit() != 0
}

// HasChoice reports whether a pointer pick arrived this tick.
func (s Snapshot) HasChoice() bool {
	return s.Choice != NoChoice
}

// MoveDirection resolves held movement keys with priority up, down, left,
// right. ok is false when no movement key is held.
func (s Snapshot) MoveDirection() (common.Direction, bool) {
	switch {
	case s.Held(ActionUp):
		return common.DirUp, true
	case s.Held(ActionDown):
		return common.DirDown, true
	case s.Held(ActionLeft):
		return common.DirLeft, true
	case s.Held(ActionRight):
		return common.DirRight, true
	}
	return common.DirDown, false
}

// Build returns a snapshot with the given actions held and pressed. Useful
// for driving the simulation without a State.
func Build(held []Action, pressed []Action) Snapshot {
	snap := Snapshot{Choice: NoChoice}
	for _, a := range held {
		snap.held |= a.bit()
	}
	for _, a := range pressed {
		snap.pressed |= a.bit()
		snap.held |= a.bit()
	}
	return snap
}

// Sampler turns the shared State into per-tick snapshots with rising-edge
// detection. It belongs to the loop goroutine.
type Sampler struct {
	state *State
	prev  uint32
}

func NewSampler(state *State) *Sampler {
	return &Sampler{state: state}
}

// Sample reads the state once. Call exactly once per tick.
func (s *Sampler) Sample() Snapshot {
	if s == nil || s.state == nil {
		return Snapshot{Choice: NoChoice}
	}
	held, choice := s.state.load()
	snap := Snapshot{
		held:    held,
		pressed: held &^ s.prev,
		Choice:  choice,
	}
	s.prev = held
	return snap
}
