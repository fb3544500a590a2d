package game

import (
	"fmt"
	"slices"

	"github.com/milk9111/limitless/common"
	"github.com/milk9111/limitless/input"
	"github.com/milk9111/limitless/inventory"
)

// noInput drives the world while the inventory holds the player still.
var noInput = input.Build(nil, nil)

// bagOverlay is the inventory screen drawn over play.
type bagOverlay struct {
	open   bool
	cursor inventory.Slot
}

// updateBag handles one tick of input with the inventory open: arrows move
// the cursor, confirm uses the item under it and drop puts one on the
// ground. Escape or the inventory key closes it.
func (m *Machine) updateBag(in input.Snapshot) {
	if in.Pressed(input.ActionInventory) || in.Pressed(input.ActionEscape) {
		m.bag.open = false
		return
	}

	c := &m.bag.cursor
	switch {
	case in.Pressed(input.ActionUp):
		c.Row--
	case in.Pressed(input.ActionDown):
		c.Row++
	case in.Pressed(input.ActionLeft):
		c.Col--
	case in.Pressed(input.ActionRight):
		c.Col++
	}
	c.Row = common.Clamp(c.Row, 0, inventory.Rows-1)
	c.Col = common.Clamp(c.Col, 0, inventory.Cols-1)

	p := m.world.Player
	switch {
	case in.Pressed(input.ActionConfirm):
		it, _ := p.Bag.At(*c)
		eff, err := p.Bag.Use(*c, p)
		if err != nil {
			return
		}
		m.log.Info("item used", "item", it.Name, "effect", eff)
		m.setNotice(useNotice(eff, it.Name))
	case in.Pressed(input.ActionDrop):
		it, err := p.Bag.Drop(*c, p)
		if err != nil {
			return
		}
		o := m.world.Drop(it)
		m.log.Debug("item dropped", "item", it.Name, "x", o.X, "y", o.Y, "stack", o.Item.Quantity)
		m.setNotice("Dropped " + it.Name)
	}
}

func useNotice(eff inventory.Effect, name string) string {
	switch eff {
	case inventory.EffectAte:
		return "Ate " + name
	case inventory.EffectEquipped:
		return "Equipped " + name
	case inventory.EffectUnequipped:
		return "Unequipped " + name
	}
	return ""
}

// pickup takes the nearest item on the ground. Returns false when nothing
// is in reach, leaving the press to Elaria and the points.
func (m *Machine) pickup() bool {
	o := m.world.PickupTarget()
	if o == nil {
		return false
	}
	if err := m.world.Pickup(o); err != nil {
		m.log.Debug("pickup failed", "item", o.Item.Name, "err", err)
		m.setNotice("Inventory full")
		return true
	}
	m.log.Debug("picked up", "item", o.Item.Name, "quantity", o.Item.Quantity)
	m.setNotice(fmt.Sprintf("Picked up %s x%d", o.Item.Name, o.Item.Quantity))
	return true
}

func (m *Machine) toggleHistory(in input.Snapshot) {
	if in.Pressed(input.ActionHistory) {
		m.showHistory = !m.showHistory
	}
}

func (m *Machine) inventoryView() *InventoryView {
	if !m.bag.open {
		return nil
	}
	p := m.world.Player
	return &InventoryView{
		Rows:     inventory.Rows,
		Cols:     inventory.Cols,
		Slots:    p.Bag.Items(),
		Cursor:   m.bag.cursor,
		Equipped: p.Weapon,
	}
}

func (m *Machine) historyView() []string {
	if !m.showHistory {
		return nil
	}
	return slices.Clone(m.world.Player.History)
}
