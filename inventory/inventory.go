// Package inventory is the player's bag: a fixed grid of slots holding
// stackable food and weapons.
package inventory

import (
	"errors"
	"fmt"
)

const (
	Rows = 4
	Cols = 8
)

// Item names the bag knows about.
const (
	Apple    = "Apple"
	Solthorn = "Solthorn"
)

var (
	ErrFull        = errors.New("inventory full")
	ErrEmptySlot   = errors.New("empty slot")
	ErrBadSlot     = errors.New("slot out of range")
	ErrUnknownItem = errors.New("unknown item")
)

type Kind int

const (
	KindFood Kind = iota
	KindWeapon
)

// Def is what an item does when used.
type Def struct {
	Kind      Kind
	Stackable bool
	Heal      int
	// Stamina is in HUD units.
	Stamina int
}

var catalog = map[string]Def{
	Apple:    {Kind: KindFood, Stackable: true, Heal: 20, Stamina: 15},
	Solthorn: {Kind: KindWeapon},
}

// Lookup returns the definition of a named item.
func Lookup(name string) (Def, bool) {
	d, ok := catalog[name]
	return d, ok
}

// Item is a stack of one kind of thing. The zero Item is an empty slot.
type Item struct {
	Name     string
	Quantity int
}

func (it Item) Empty() bool {
	return it.Name == "" || it.Quantity <= 0
}

// Slot addresses one cell of the grid.
type Slot struct {
	Row, Col int
}

func (s Slot) Valid() bool {
	return s.Row >= 0 && s.Row < Rows && s.Col >= 0 && s.Col < Cols
}

func (s Slot) index() int {
	return s.Row*Cols + s.Col
}

// User is whoever the bag belongs to.
type User interface {
	Restore(heal, stamina int)
	EquippedWeapon() string
	// Equip switches weapons; an empty name unequips.
	Equip(name string)
}

// Effect is what a Use did.
type Effect int

const (
	EffectNone Effect = iota
	EffectAte
	EffectEquipped
	EffectUnequipped
)

func (e Effect) String() string {
	switch e {
	case EffectAte:
		return "ate"
	case EffectEquipped:
		return "equipped"
	case EffectUnequipped:
		return "unequipped"
	default:
		return "none"
	}
}

type Inventory struct {
	slots [Rows * Cols]Item
}

func New() *Inventory {
	return &Inventory{}
}

// Add puts it in the bag. Stackable items merge into an existing stack of
// the same name; anything else takes the first empty slot in row order.
func (inv *Inventory) Add(it Item) error {
	def, ok := Lookup(it.Name)
	if !ok {
		return fmt.Errorf("add %q: %w", it.Name, ErrUnknownItem)
	}
	if it.Quantity <= 0 {
		it.Quantity = 1
	}
	if def.Stackable {
		for i := range inv.slots {
			if inv.slots[i].Name == it.Name && !inv.slots[i].Empty() {
				inv.slots[i].Quantity += it.Quantity
				return nil
			}
		}
	}
	for i := range inv.slots {
		if inv.slots[i].Empty() {
			inv.slots[i] = it
			return nil
		}
	}
	return fmt.Errorf("add %q: %w", it.Name, ErrFull)
}

// At returns the item in s and whether the slot holds anything.
func (inv *Inventory) At(s Slot) (Item, bool) {
	if !s.Valid() {
		return Item{}, false
	}
	it := inv.slots[s.index()]
	return it, !it.Empty()
}

// Count is the total quantity of name across all slots.
func (inv *Inventory) Count(name string) int {
	n := 0
	for _, it := range inv.slots {
		if it.Name == name && !it.Empty() {
			n += it.Quantity
		}
	}
	return n
}

func (inv *Inventory) Has(name string) bool {
	return inv.Count(name) > 0
}

// Items copies the grid in row order. Empty slots are zero Items.
func (inv *Inventory) Items() []Item {
	out := make([]Item, len(inv.slots))
	copy(out, inv.slots[:])
	return out
}

// Clear empties every slot.
func (inv *Inventory) Clear() {
	inv.slots = [Rows * Cols]Item{}
}

// Use applies the item in s to u. Food restores health and stamina and is
// consumed; a weapon is equipped, or unequipped if it already is.
func (inv *Inventory) Use(s Slot, u User) (Effect, error) {
	it, err := inv.occupied(s)
	if err != nil {
		return EffectNone, err
	}
	def, ok := Lookup(it.Name)
	if !ok {
		return EffectNone, fmt.Errorf("use %q: %w", it.Name, ErrUnknownItem)
	}
	switch def.Kind {
	case KindFood:
		u.Restore(def.Heal, def.Stamina)
		inv.take(s)
		return EffectAte, nil
	case KindWeapon:
		if u.EquippedWeapon() == it.Name {
			u.Equip("")
			return EffectUnequipped, nil
		}
		u.Equip(it.Name)
		return EffectEquipped, nil
	}
	return EffectNone, nil
}

// Drop removes one unit from s and returns it. Dropping the last copy of
// the equipped weapon unequips it.
func (inv *Inventory) Drop(s Slot, u User) (Item, error) {
	it, err := inv.occupied(s)
	if err != nil {
		return Item{}, err
	}
	inv.take(s)
	if u != nil && u.EquippedWeapon() == it.Name && !inv.Has(it.Name) {
		u.Equip("")
	}
	return Item{Name: it.Name, Quantity: 1}, nil
}

func (inv *Inventory) occupied(s Slot) (Item, error) {
	if !s.Valid() {
		return Item{}, fmt.Errorf("slot %d,%d: %w", s.Row, s.Col, ErrBadSlot)
	}
	it := inv.slots[s.index()]
	if it.Empty() {
		return Item{}, fmt.Errorf("slot %d,%d: %w", s.Row, s.Col, ErrEmptySlot)
	}
	return it, nil
}

func (inv *Inventory) take(s Slot) {
	i := s.index()
	inv.slots[i].Quantity--
	if inv.slots[i].Quantity <= 0 {
		inv.slots[i] = Item{}
	}
}
