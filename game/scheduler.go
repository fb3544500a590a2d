package game

import (
	"time"

	"github.com/milk9111/limitless/input"
)

// EncounterSystem is one step of an encounter tick.
type EncounterSystem interface {
	Update(e *Encounter, f *Frame)
}

// Frame is the per-tick context handed to each system in turn. Systems
// report the fight's result through Outcome.
type Frame struct {
	Now     time.Duration
	Input   input.Snapshot
	Outcome Outcome
}

// Scheduler runs systems in the order they were added.
type Scheduler struct {
	systems []EncounterSystem
}

func NewScheduler(systems ...EncounterSystem) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system EncounterSystem) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(e *Encounter, f *Frame) {
	for _, system := range s.systems {
		system.Update(e, f)
	}
}

func (s *Scheduler) Systems() []EncounterSystem {
	systems := make([]EncounterSystem, 0, len(s.systems))
	return append(systems, s.systems...)
}
