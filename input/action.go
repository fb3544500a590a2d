package input

// Action is a logical input, independent of the physical key bound to it.
type Action int

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionSprint
	ActionInteract
	ActionAttack
	ActionConfirm
	ActionEscape
	ActionSave
	ActionLoad
	ActionDeleteSave
	ActionInventory
	ActionHistory
	ActionDrop
	actionCount
)

// Actions lists every action in declaration order.
func Actions() []Action {
	out := make([]Action, 0, actionCount)
	for a := ActionUp; a < actionCount; a++ {
		out = append(out, a)
	}
	return out
}

func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionSprint:
		return "sprint"
	case ActionInteract:
		return "interact"
	case ActionAttack:
		return "attack"
	case ActionConfirm:
		return "confirm"
	case ActionEscape:
		return "escape"
	case ActionSave:
		return "save"
	case ActionLoad:
		return "load"
	case ActionDeleteSave:
		return "delete_save"
	case ActionInventory:
		return "inventory"
	case ActionHistory:
		return "history"
	case ActionDrop:
		return "drop"
	default:
		return "unknown"
	}
}

// ParseAction is the inverse of String.
func ParseAction(s string) (Action, bool) {
	for _, a := range Actions() {
		if a.String() == s {
			return a, true
		}
	}
	return 0, false
}

func (a Action) bit() uint32 {
	if a < 0 || a >= actionCount {
		return 0
	}
	return 1 << uint(a)
}
