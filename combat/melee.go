package combat

import (
	"time"

	"github.com/milk9111/limitless/common"
)

// Target is anything a melee swing can damage.
type Target interface {
	ID() int
	Bounds() common.Rect
	TakeDamage(amount int) bool
}

type MeleeRules struct {
	SwingCooldown  time.Duration
	SlashFrames    int
	SlashFrameTime time.Duration
	HitCooldown    time.Duration
	Margin         int
	Damage         int
}

// SwingDuration is the length of the slash animation, which is also the
// swing's hit window.
func (r MeleeRules) SwingDuration() time.Duration {
	return time.Duration(r.SlashFrames) * r.SlashFrameTime
}

type hitKey struct {
	Weapon   string
	TargetID int
}

// Melee gates swings and the hits they land. The swing cooldown limits how
// often a swing can start; the hit cooldown is tracked per target and stops
// one swing's multi-tick overlap from landing more than once.
type Melee struct {
	rules MeleeRules

	swingStart time.Duration
	swung      bool

	lastHits map[hitKey]time.Duration
}

func NewMelee(rules MeleeRules) *Melee {
	return &Melee{
		rules:    rules,
		lastHits: make(map[hitKey]time.Duration),
	}
}

func (m *Melee) Rules() MeleeRules {
	if m == nil {
		return MeleeRules{}
	}
	return m.rules
}

// TrySwing starts a swing if the swing cooldown since the last swing start
// has elapsed. It does not wait for the previous animation to finish.
func (m *Melee) TrySwing(now time.Duration) bool {
	if m == nil {
		return false
	}
	if m.swung && now-m.swingStart < m.rules.SwingCooldown {
		return false
	}
	m.swingStart = now
	m.swung = true
	return true
}

// Swinging reports whether a swing's animation is still playing.
func (m *Melee) Swinging(now time.Duration) bool {
	if m == nil || !m.swung {
		return false
	}
	elapsed := now - m.swingStart
	return elapsed >= 0 && elapsed < m.rules.SwingDuration()
}

// Frame returns the slash animation frame, or -1 when not swinging.
func (m *Melee) Frame(now time.Duration) int {
	if !m.Swinging(now) || m.rules.SlashFrameTime <= 0 {
		return -1
	}
	return int((now - m.swingStart) / m.rules.SlashFrameTime)
}

// Reach returns the swing hitbox for an attacker hitbox: the hitbox grown by
// the margin on every side, regardless of facing.
func (m *Melee) Reach(attacker common.Rect) common.Rect {
	return attacker.Expand(m.Rules().Margin)
}

// Resolve applies the swing to target if a swing is active, the reach
// overlaps the target and the target's hit cooldown has elapsed. Returns
// true when damage was applied.
func (m *Melee) Resolve(now time.Duration, weapon string, attacker common.Rect, target Target) bool {
	if m == nil || target == nil || !m.Swinging(now) {
		return false
	}
	if !m.Reach(attacker).Intersects(target.Bounds()) {
		return false
	}
	key := hitKey{Weapon: weapon, TargetID: target.ID()}
	if m.isOnCooldown(key, now) {
		return false
	}
	if !target.TakeDamage(m.rules.Damage) {
		return false
	}
	m.markHit(key, now)
	return true
}

func (m *Melee) isOnCooldown(key hitKey, now time.Duration) bool {
	if m.rules.HitCooldown <= 0 {
		return false
	}
	if m.lastHits == nil {
		m.lastHits = make(map[hitKey]time.Duration)
	}
	last, ok := m.lastHits[key]
	if !ok {
		return false
	}
	return now-last < m.rules.HitCooldown
}

func (m *Melee) markHit(key hitKey, now time.Duration) {
	if m.lastHits == nil {
		m.lastHits = make(map[hitKey]time.Duration)
	}
	m.lastHits[key] = now
}

// Reset forgets swings and hits, e.g. when a new encounter starts.
func (m *Melee) Reset() {
	if m == nil {
		return
	}
	m.swung = false
	m.swingStart = 0
	clear(m.lastHits)
}
