package inventory

import (
	"errors"
	"testing"
)

type fakeUser struct {
	heal, stamina int
	weapon        string
	equips        int
}

func (u *fakeUser) Restore(heal, stamina int) {
	u.heal += heal
	u.stamina += stamina
}

func (u *fakeUser) EquippedWeapon() string { return u.weapon }

func (u *fakeUser) Equip(name string) {
	u.weapon = name
	u.equips++
}

func TestAddStacksApples(t *testing.T) {
	inv := New()
	for _, it := range []Item{{Apple, 1}, {Solthorn, 1}, {Apple, 2}, {Apple, 0}} {
		if err := inv.Add(it); err != nil {
			t.Fatalf("Add(%+v) failed: %v", it, err)
		}
	}

	if got, ok := inv.At(Slot{0, 0}); !ok || got != (Item{Apple, 4}) {
		t.Fatalf("slot 0,0 = %+v, want 4 apples", got)
	}
	if got, ok := inv.At(Slot{0, 1}); !ok || got.Name != Solthorn {
		t.Fatalf("slot 0,1 = %+v, want Solthorn", got)
	}
	if _, ok := inv.At(Slot{0, 2}); ok {
		t.Fatalf("apples spilled into a second slot")
	}
	if inv.Count(Apple) != 4 {
		t.Fatalf("apple count = %d, want 4", inv.Count(Apple))
	}
}

func TestAddRejects(t *testing.T) {
	inv := New()
	if err := inv.Add(Item{"Stick", 1}); !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("Add(Stick) = %v, want ErrUnknownItem", err)
	}

	for i := 0; i < Rows*Cols; i++ {
		if err := inv.Add(Item{Solthorn, 1}); err != nil {
			t.Fatalf("Add #%d failed: %v", i, err)
		}
	}
	if err := inv.Add(Item{Solthorn, 1}); !errors.Is(err, ErrFull) {
		t.Fatalf("Add into a full bag = %v, want ErrFull", err)
	}
	if err := inv.Add(Item{Apple, 1}); !errors.Is(err, ErrFull) {
		t.Fatalf("Add apple into a full bag = %v, want ErrFull", err)
	}
}

func TestUseApple(t *testing.T) {
	inv := New()
	inv.Add(Item{Apple, 2})
	u := &fakeUser{}
	s := Slot{0, 0}

	for i, want := range []int{1, 0} {
		eff, err := inv.Use(s, u)
		if err != nil || eff != EffectAte {
			t.Fatalf("Use #%d = %s, %v", i, eff, err)
		}
		if inv.Count(Apple) != want {
			t.Fatalf("apples after use #%d = %d, want %d", i, inv.Count(Apple), want)
		}
	}
	if u.heal != 40 || u.stamina != 30 {
		t.Fatalf("restored %d health %d stamina, want 40 and 30", u.heal, u.stamina)
	}
	if _, err := inv.Use(s, u); !errors.Is(err, ErrEmptySlot) {
		t.Fatalf("Use on the emptied slot = %v, want ErrEmptySlot", err)
	}
}

func TestUseTogglesWeapon(t *testing.T) {
	inv := New()
	inv.Add(Item{Solthorn, 1})
	u := &fakeUser{}
	s := Slot{0, 0}

	cases := []struct {
		want   Effect
		weapon string
	}{
		{EffectEquipped, Solthorn},
		{EffectUnequipped, ""},
		{EffectEquipped, Solthorn},
	}
	for i, tc := range cases {
		eff, err := inv.Use(s, u)
		if err != nil {
			t.Fatalf("Use #%d failed: %v", i, err)
		}
		if eff != tc.want || u.weapon != tc.weapon {
			t.Fatalf("Use #%d = %s weapon %q, want %s weapon %q", i, eff, u.weapon, tc.want, tc.weapon)
		}
	}
	if !inv.Has(Solthorn) {
		t.Fatalf("equipping consumed the weapon")
	}
}

func TestDrop(t *testing.T) {
	cases := []struct {
		name       string
		add        []Item
		weapon     string
		wantDrop   Item
		wantLeft   int
		wantWeapon string
	}{
		{"one_apple_from_stack", []Item{{Apple, 3}}, "", Item{Apple, 1}, 2, ""},
		{"last_apple_clears_slot", []Item{{Apple, 1}}, "", Item{Apple, 1}, 0, ""},
		{"equipped_weapon_unequips", []Item{{Solthorn, 1}}, Solthorn, Item{Solthorn, 1}, 0, ""},
		{"spare_weapon_stays_equipped", []Item{{Solthorn, 1}, {Solthorn, 1}}, Solthorn, Item{Solthorn, 1}, 1, Solthorn},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inv := New()
			for _, it := range tc.add {
				inv.Add(it)
			}
			u := &fakeUser{weapon: tc.weapon}
			got, err := inv.Drop(Slot{0, 0}, u)
			if err != nil {
				t.Fatalf("Drop failed: %v", err)
			}
			if got != tc.wantDrop {
				t.Fatalf("dropped %+v, want %+v", got, tc.wantDrop)
			}
			if n := inv.Count(tc.wantDrop.Name); n != tc.wantLeft {
				t.Fatalf("%s left = %d, want %d", tc.wantDrop.Name, n, tc.wantLeft)
			}
			if u.weapon != tc.wantWeapon {
				t.Fatalf("weapon = %q, want %q", u.weapon, tc.wantWeapon)
			}
		})
	}
}

func TestSlotBounds(t *testing.T) {
	inv := New()
	for _, s := range []Slot{{-1, 0}, {0, -1}, {Rows, 0}, {0, Cols}} {
		if _, err := inv.Use(s, &fakeUser{}); !errors.Is(err, ErrBadSlot) {
			t.Fatalf("Use(%+v) = %v, want ErrBadSlot", s, err)
		}
		if _, err := inv.Drop(s, nil); !errors.Is(err, ErrBadSlot) {
			t.Fatalf("Drop(%+v) = %v, want ErrBadSlot", s, err)
		}
	}
}

func TestItemsAndClear(t *testing.T) {
	inv := New()
	inv.Add(Item{Solthorn, 1})
	items := inv.Items()
	if len(items) != Rows*Cols || items[0].Name != Solthorn {
		t.Fatalf("Items() = %d slots, first %+v", len(items), items[0])
	}
	items[0] = Item{}
	if !inv.Has(Solthorn) {
		t.Fatalf("Items() shares storage with the bag")
	}
	inv.Clear()
	if inv.Has(Solthorn) {
		t.Fatalf("Clear left items behind")
	}
}
