package game

import (
	"github.com/milk9111/limitless/dialogue"
	"github.com/milk9111/limitless/entity"
	"github.com/milk9111/limitless/input"
)

type playState struct{}

func (playState) Mode() Mode       { return ModePlay }
func (playState) Enter(m *Machine) {}
func (playState) Exit(m *Machine)  {}
func (playState) View(m *Machine, v *View) {
	v.World = m.worldView()
	v.HUD = m.hudView()
	v.Inventory = m.inventoryView()
}

// Update handles pause first so a paused tick moves nothing. While the
// inventory is open the player stands still but the world keeps running.
func (playState) Update(m *Machine, in input.Snapshot) {
	m.toggleHistory(in)
	if m.bag.open {
		m.updateBag(in)
		m.world.Update(m.now, noInput)
		return
	}
	if in.Pressed(input.ActionEscape) {
		m.change(ModePause)
		return
	}
	if m.handlePersistKeys(in) {
		return
	}
	if in.Pressed(input.ActionInventory) {
		m.bag.open = true
		m.world.Update(m.now, noInput)
		return
	}
	if in.Pressed(input.ActionInteract) && !m.pickup() && m.startInteraction() {
		return
	}
	m.world.Update(m.now, in)
}

// startInteraction opens the dialogue for whatever is in range.
func (m *Machine) startInteraction() bool {
	npc, point := m.world.InteractTarget(m.now)
	var script *dialogue.Script
	switch {
	case npc != nil:
		p := m.world.Player
		npc.Face(p.X, p.Y, m.world.tile)
		script = m.scripts[npc.Script]
	case point != nil:
		script = m.scripts[point.Script]
	}
	if script == nil {
		return false
	}
	m.talk = &conversation{
		session: dialogue.NewSession(script),
		npc:     npc,
		point:   point,
	}
	m.change(ModeDialogue)
	return true
}

// conversation is an open overworld dialogue and what started it.
type conversation struct {
	session *dialogue.Session
	npc     *entity.NPC
	point   *entity.Interaction
}

type shrineState struct{}

func (shrineState) Mode() Mode       { return ModeShrine }
func (shrineState) Enter(m *Machine) {}
func (shrineState) Exit(m *Machine)  {}
func (shrineState) View(m *Machine, v *View) {
	v.Shrine = m.shrineView()
	v.HUD = m.hudView()
}

func (shrineState) Update(m *Machine, in input.Snapshot) {
	if in.Pressed(input.ActionEscape) {
		m.change(ModePause)
		return
	}
	if m.encounter == nil {
		m.change(ModePlay)
		return
	}
	m.toggleHistory(in)
	switch m.encounter.Update(m.now, in) {
	case OutcomeDefeat:
		m.log.Info("player defeated", "tick", m.tick)
		m.encounter.release()
		m.change(ModeGameOver)
	case OutcomeVictory:
		m.log.Info("noxar defeated", "tick", m.tick)
		m.encounter.release()
		m.change(ModeWin)
	}
}
