package combat

import "time"

// StaminaRules are the tunables for the sprint resource. Values are in
// internal units; DisplayScale converts to the 0..100 HUD value.
type StaminaRules struct {
	Max             int
	DisplayScale    int
	DrainPerTick    int
	RegenIdle       int
	RegenMoving     int
	RegenDelay      time.Duration
	ExhaustCooldown time.Duration
}

// Stamina drains while sprinting and regenerates after an idle delay. Once
// it hits zero a short hard cooldown runs before any regeneration.
type Stamina struct {
	rules StaminaRules

	Current   int
	Exhausted bool

	exhaustedAt time.Duration
	regenFrom   time.Duration
	sprintHeld  bool
}

func NewStamina(rules StaminaRules) *Stamina {
	if rules.Max <= 0 {
		rules.Max = 1
	}
	if rules.DisplayScale <= 0 {
		rules.DisplayScale = 1
	}
	return &Stamina{rules: rules, Current: rules.Max}
}

// CanSprint reports whether there is stamina left to spend.
func (s *Stamina) CanSprint() bool {
	return s != nil && s.Current > 0
}

// Update advances the resource by one tick. sprinting means the sprint
// input is held while moving; sprintHeld is the raw input, used to restart
// the regen delay when it is released.
func (s *Stamina) Update(now time.Duration, sprinting, moving, sprintHeld bool) {
	if s == nil {
		return
	}
	if s.sprintHeld && !sprintHeld {
		s.regenFrom = now
	}
	s.sprintHeld = sprintHeld

	if sprinting && s.Current > 0 {
		s.drain(now)
		return
	}
	s.regenerate(now, moving)
}

func (s *Stamina) drain(now time.Duration) {
	s.Current -= s.rules.DrainPerTick
	if s.Current < 0 {
		s.Current = 0
	}
	s.regenFrom = now
	if s.Current == 0 {
		s.Exhausted = true
		s.exhaustedAt = now
	}
}

func (s *Stamina) regenerate(now time.Duration, moving bool) {
	if s.Exhausted {
		if now-s.exhaustedAt < s.rules.ExhaustCooldown {
			return
		}
		s.Exhausted = false
	}
	if now-s.regenFrom < s.rules.RegenDelay {
		return
	}
	rate := s.rules.RegenIdle
	if moving {
		rate = s.rules.RegenMoving
	}
	s.add(rate)
}

func (s *Stamina) add(v int) {
	s.Current += v
	if s.Current > s.rules.Max {
		s.Current = s.rules.Max
	}
	if s.Current < 0 {
		s.Current = 0
	}
}

// Display returns the 0..100 HUD value.
func (s *Stamina) Display() int {
	if s == nil {
		return 0
	}
	return s.Current / s.rules.DisplayScale
}

// MaxDisplay is the HUD value of a full pool.
func (s *Stamina) MaxDisplay() int {
	if s == nil {
		return 0
	}
	return s.rules.Max / s.rules.DisplayScale
}

// SetDisplay sets the value from HUD units, clamped.
func (s *Stamina) SetDisplay(v int) {
	if s == nil {
		return
	}
	s.Current = 0
	s.add(v * s.rules.DisplayScale)
}

// Restore adds HUD units, clamped.
func (s *Stamina) Restore(v int) {
	if s == nil || v <= 0 {
		return
	}
	s.add(v * s.rules.DisplayScale)
}

// Reset refills the resource and clears timers.
func (s *Stamina) Reset() {
	if s == nil {
		return
	}
	s.Current = s.rules.Max
	s.Exhausted = false
	s.exhaustedAt = 0
	s.regenFrom = 0
	s.sprintHeld = false
}
