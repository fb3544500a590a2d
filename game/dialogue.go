package game

import (
	"github.com/milk9111/limitless/dialogue"
	"github.com/milk9111/limitless/input"
	"github.com/milk9111/limitless/inventory"
)

func advancePressed(in input.Snapshot) bool {
	return in.Pressed(input.ActionInteract) || in.Pressed(input.ActionConfirm)
}

type dialogueState struct{}

func (dialogueState) Mode() Mode { return ModeDialogue }

func (dialogueState) Enter(m *Machine) {
	if m.talk == nil {
		return
	}
	if line, ok := m.talk.session.Current(); ok {
		m.grant(line)
	}
}

func (dialogueState) Exit(m *Machine) {}

func (dialogueState) View(m *Machine, v *View) {
	v.World = m.worldView()
	v.HUD = m.hudView()
	if m.talk != nil {
		v.Dialogue = dialogueView(m.talk.session)
	}
}

// Update advances on interact or confirm. Escape closes the dialogue
// without completing it, so the shrine only opens on a finished read.
func (dialogueState) Update(m *Machine, in input.Snapshot) {
	if m.talk == nil {
		m.change(ModePlay)
		return
	}
	if in.Pressed(input.ActionEscape) {
		m.endConversation(false)
		return
	}
	if !advancePressed(in) {
		return
	}
	if line, ok := m.talk.session.Advance(); ok {
		m.grant(line)
		return
	}
	m.endConversation(true)
}

// grant puts a line's gift in the bag. It is not equipped until the player
// uses it from the inventory.
func (m *Machine) grant(line dialogue.Line) {
	p := m.world.Player
	if line.Grant == "" || p.Bag.Has(line.Grant) {
		return
	}
	if err := p.Bag.Add(inventory.Item{Name: line.Grant, Quantity: 1}); err != nil {
		m.log.Warn("grant failed", "item", line.Grant, "err", err)
		m.setNotice("Inventory full")
		return
	}
	m.log.Info("weapon granted", "weapon", line.Grant)
	m.setNotice("Received " + line.Grant)
}

func (m *Machine) endConversation(completed bool) {
	talk := m.talk
	m.talk = nil
	m.world.EndTalk(m.now, talk.npc)
	if completed && talk.point != nil && talk.point.Shrine {
		m.startShrine()
		return
	}
	m.change(ModePlay)
}

// startShrine builds the encounter and plays Noxar's introduction.
func (m *Machine) startShrine() {
	m.bag.open = false
	m.encounter = newEncounter(m.cfg, m.world.Player, m.log)
	m.change(ModeNoxarCutscene)
}

type cutsceneState struct{}

func (cutsceneState) Mode() Mode { return ModeNoxarCutscene }

func (cutsceneState) Enter(m *Machine) {
	m.cutscene = dialogue.NewSession(m.scripts[cutsceneScript])
}

func (cutsceneState) Exit(m *Machine) {
	m.cutscene = nil
}

func (cutsceneState) View(m *Machine, v *View) {
	v.Shrine = m.shrineView()
	v.Dialogue = dialogueView(m.cutscene)
}

func (cutsceneState) Update(m *Machine, in input.Snapshot) {
	if !advancePressed(in) {
		return
	}
	if _, ok := m.cutscene.Advance(); !ok {
		m.change(ModeShrine)
	}
}
