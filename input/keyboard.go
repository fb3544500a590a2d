package input

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Keyboard maps physical keys and the first standard gamepad onto actions.
type Keyboard struct {
	keys    map[Action][]ebiten.Key
	buttons map[Action][]ebiten.StandardGamepadButton
}

func NewKeyboard() *Keyboard {
	return &Keyboard{
		keys: map[Action][]ebiten.Key{
			ActionUp:         {ebiten.KeyW, ebiten.KeyArrowUp},
			ActionDown:       {ebiten.KeyS, ebiten.KeyArrowDown},
			ActionLeft:       {ebiten.KeyA, ebiten.KeyArrowLeft},
			ActionRight:      {ebiten.KeyD, ebiten.KeyArrowRight},
			ActionSprint:     {ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
			ActionInteract:   {ebiten.KeyE},
			ActionAttack:     {ebiten.KeySpace},
			ActionConfirm:    {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
			ActionEscape:     {ebiten.KeyEscape},
			ActionSave:       {ebiten.KeyF5},
			ActionLoad:       {ebiten.KeyF6},
			ActionDeleteSave: {ebiten.KeyF7},
			ActionInventory:  {ebiten.KeyI},
			ActionHistory:    {ebiten.KeyH},
			ActionDrop:       {ebiten.KeyQ},
		},
		buttons: map[Action][]ebiten.StandardGamepadButton{
			ActionUp:        {ebiten.StandardGamepadButtonLeftTop},
			ActionDown:      {ebiten.StandardGamepadButtonLeftBottom},
			ActionLeft:      {ebiten.StandardGamepadButtonLeftLeft},
			ActionRight:     {ebiten.StandardGamepadButtonLeftRight},
			ActionSprint:    {ebiten.StandardGamepadButtonFrontBottomLeft},
			ActionInteract:  {ebiten.StandardGamepadButtonRightTop},
			ActionAttack:    {ebiten.StandardGamepadButtonRightLeft},
			ActionConfirm:   {ebiten.StandardGamepadButtonRightBottom},
			ActionEscape:    {ebiten.StandardGamepadButtonCenterRight},
			ActionInventory: {ebiten.StandardGamepadButtonCenterLeft},
			ActionDrop:      {ebiten.StandardGamepadButtonRightRight},
		},
	}
}

// Poll writes the current key state into s. Called from the window's update
// callback; it only ever writes flags.
func (k *Keyboard) Poll(s *State) {
	if k == nil || s == nil {
		return
	}
	if !ebiten.IsFocused() {
		s.ReleaseAll()
		return
	}

	var pad ebiten.GamepadID
	hasPad := false
	if ids := ebiten.AppendGamepadIDs(nil); len(ids) > 0 && ebiten.IsStandardGamepadLayoutAvailable(ids[0]) {
		pad = ids[0]
		hasPad = true
	}

	for _, a := range Actions() {
		down := false
		for _, key := range k.keys[a] {
			if ebiten.IsKeyPressed(key) {
				down = true
				break
			}
		}
		if !down && hasPad {
			for _, b := range k.buttons[a] {
				if ebiten.IsStandardGamepadButtonPressed(pad, b) {
					down = true
					break
				}
			}
		}
		s.Set(a, down)
	}
}
