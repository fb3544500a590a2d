package game

import "github.com/milk9111/limitless/input"

// Mode is one exclusive value of the top-level state machine.
type Mode int

const (
	ModeMenu Mode = iota
	ModeOptions
	ModePause
	ModeDialogue
	ModePlay
	ModeShrine
	ModeNoxarCutscene
	ModeGameOver
	ModeWin
	modeCount
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeOptions:
		return "options"
	case ModePause:
		return "pause"
	case ModeDialogue:
		return "dialogue"
	case ModePlay:
		return "play"
	case ModeShrine:
		return "shrine"
	case ModeNoxarCutscene:
		return "noxar_cutscene"
	case ModeGameOver:
		return "game_over"
	case ModeWin:
		return "win"
	default:
		return "unknown"
	}
}

// modeState is the behavior of one mode. Only the current state's Update
// runs in a tick; transitions it requests are applied after it returns.
type modeState interface {
	Mode() Mode
	Enter(m *Machine)
	Exit(m *Machine)
	Update(m *Machine, in input.Snapshot)
	View(m *Machine, v *View)
}
