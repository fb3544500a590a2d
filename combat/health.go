package combat

// Health is a clamped hit-point pool shared by the player and anything else
// that can take damage.
type Health struct {
	Max     int
	Current int
	Dead    bool

	OnDamage func(h *Health, amount int)
	OnDeath  func(h *Health)
}

// NewHealth creates a Health with max/current initialized.
func NewHealth(max int) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// IsAlive reports whether the owner is alive.
func (h *Health) IsAlive() bool {
	return h != nil && !h.Dead && h.Current > 0
}

// ApplyDamage subtracts amount, clamping at zero. Returns true if damage was
// applied.
func (h *Health) ApplyDamage(amount int) bool {
	if h == nil || h.Dead || amount <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	if h.OnDamage != nil {
		h.OnDamage(h, amount)
	}
	if h.Current <= 0 {
		h.Dead = true
		if h.OnDeath != nil {
			h.OnDeath(h)
		}
	}
	return true
}

// Heal restores health up to Max.
func (h *Health) Heal(amount int) {
	if h == nil || h.Dead || amount <= 0 {
		return
	}
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// SetCurrentHP sets the current value clamped to [0, Max].
func (h *Health) SetCurrentHP(v int) {
	if h == nil {
		return
	}
	h.Current = v
	if h.Current < 0 {
		h.Current = 0
	}
	if h.Current > h.Max {
		h.Current = h.Max
	}
	h.Dead = h.Current == 0
}

// Reset refills the pool and clears death.
func (h *Health) Reset() {
	if h == nil {
		return
	}
	h.Current = h.Max
	h.Dead = false
}
