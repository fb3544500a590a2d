package game

import (
	"context"
	"errors"
	"time"

	"github.com/milk9111/limitless/common"
	"github.com/milk9111/limitless/input"
	"github.com/milk9111/limitless/inventory"
	"github.com/milk9111/limitless/save"
)

const persistTimeout = 5 * time.Second

type persistOp int

const (
	opSave persistOp = iota
	opLoad
	opDelete
)

func (op persistOp) String() string {
	switch op {
	case opSave:
		return "save"
	case opLoad:
		return "load"
	case opDelete:
		return "delete"
	default:
		return "unknown"
	}
}

type persistResult struct {
	op  persistOp
	rec save.Record
	err error
}

// persister runs store calls on their own goroutine so the loop never
// waits on disk. One operation is in flight at a time; its result is
// picked up at the start of a later tick.
type persister struct {
	store    save.Store
	results  chan persistResult
	inflight bool
}

func newPersister(store save.Store) *persister {
	return &persister{store: store, results: make(chan persistResult, 1)}
}

func (p *persister) start(op persistOp, rec save.Record) bool {
	if p == nil || p.inflight {
		return false
	}
	p.inflight = true
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		res := persistResult{op: op}
		switch op {
		case opSave:
			res.err = p.store.Save(ctx, rec)
		case opLoad:
			res.rec, res.err = p.store.Load(ctx)
		case opDelete:
			res.err = p.store.Delete(ctx)
		}
		p.results <- res
	}()
	return true
}

func (p *persister) poll() (persistResult, bool) {
	if p == nil || !p.inflight {
		return persistResult{}, false
	}
	select {
	case res := <-p.results:
		p.inflight = false
		return res, true
	default:
		return persistResult{}, false
	}
}

func (p *persister) busy() bool {
	return p != nil && p.inflight
}

// handlePersistKeys starts a save, load or delete. Returns true when a key
// was consumed.
func (m *Machine) handlePersistKeys(in input.Snapshot) bool {
	var op persistOp
	switch {
	case in.Pressed(input.ActionSave):
		op = opSave
	case in.Pressed(input.ActionLoad):
		op = opLoad
	case in.Pressed(input.ActionDeleteSave):
		op = opDelete
	default:
		return false
	}
	if m.persist == nil {
		m.setNotice("Saving is unavailable")
		return true
	}
	if !m.persist.start(op, m.snapshotRecord()) {
		m.setNotice("Busy")
	}
	return true
}

// snapshotRecord is the part of the game state a save holds.
func (m *Machine) snapshotRecord() save.Record {
	p := m.world.Player
	return save.Record{X: p.X, Y: p.Y, Direction: p.Facing.String(), Weapon: p.Weapon}
}

func (m *Machine) finishPersist(res persistResult) {
	switch res.op {
	case opSave:
		if res.err != nil {
			m.log.Warn("save failed", "err", res.err)
			m.setNotice("Save failed")
			return
		}
		m.setNotice("Game saved")
	case opLoad:
		if m.encounter != nil {
			m.log.Warn("load result dropped during encounter")
			return
		}
		if res.err != nil {
			if !errors.Is(res.err, save.ErrNotFound) {
				m.log.Warn("load failed", "err", res.err)
			}
			m.world.Player.Reset()
			m.setNotice("No save found")
			return
		}
		if !m.applyRecord(res.rec) {
			m.log.Warn("malformed save record", "x", res.rec.X, "y", res.rec.Y,
				"direction", res.rec.Direction, "weapon", res.rec.Weapon)
		}
		m.setNotice("Game loaded")
	case opDelete:
		if res.err != nil {
			m.log.Warn("delete save failed", "err", res.err)
			m.setNotice("Delete failed")
			return
		}
		if m.encounter == nil {
			m.world.Player.Reset()
		}
		m.setNotice("Save deleted")
	}
}

// applyRecord restores a loaded record. A position the player cannot stand
// on, including one overlapping Elaria, falls back to spawn; an unknown
// facing falls back to down and an unknown weapon to unarmed. A saved weapon
// is put back in the bag before it is equipped. Returns false when any field
// was replaced.
func (m *Machine) applyRecord(rec save.Record) bool {
	p := m.world.Player
	clean := true

	if m.world.Placeable(rec.X, rec.Y) {
		p.X, p.Y = rec.X, rec.Y
	} else {
		p.Reset()
		return false
	}

	dir, ok := common.ParseDirection(rec.Direction)
	if !ok {
		dir = common.DirDown
		clean = false
	}
	p.Facing = dir

	if rec.Weapon == "" {
		p.Equip("")
		return clean
	}
	def, ok := inventory.Lookup(rec.Weapon)
	if !ok || def.Kind != inventory.KindWeapon {
		p.Equip("")
		return false
	}
	if !p.Bag.Has(rec.Weapon) {
		if err := p.Bag.Add(inventory.Item{Name: rec.Weapon, Quantity: 1}); err != nil {
			m.log.Warn("no room for saved weapon", "weapon", rec.Weapon, "err", err)
			p.Equip("")
			return false
		}
	}
	if p.Weapon != rec.Weapon {
		p.Equip(rec.Weapon)
	}
	return clean
}
