package game

import (
	"fmt"
	"math"

	"github.com/milk9111/limitless/input"
)

const volumeStep = 0.1

// menuState is a vertical list with a wrapping cursor. Up and Down move on
// the press edge; Confirm or a pointer choice selects.
type menuState struct {
	mode   Mode
	title  string
	items  []string
	cursor int

	choose func(m *Machine, item int)
	cancel func(m *Machine)
	adjust func(m *Machine, item, delta int)
	label  func(m *Machine, item int) string
}

func (s *menuState) Mode() Mode       { return s.mode }
func (s *menuState) Enter(m *Machine) { s.cursor = 0 }
func (s *menuState) Exit(m *Machine)  {}

func (s *menuState) Update(m *Machine, in input.Snapshot) {
	n := len(s.items)
	if n == 0 {
		return
	}
	if in.HasChoice() {
		if in.Choice >= 0 && in.Choice < n {
			s.cursor = in.Choice
			s.choose(m, s.cursor)
		}
		return
	}
	switch {
	case in.Pressed(input.ActionEscape):
		if s.cancel != nil {
			s.cancel(m)
		}
	case in.Pressed(input.ActionUp):
		s.cursor = (s.cursor - 1 + n) % n
	case in.Pressed(input.ActionDown):
		s.cursor = (s.cursor + 1) % n
	case in.Pressed(input.ActionLeft):
		if s.adjust != nil {
			s.adjust(m, s.cursor, -1)
		}
	case in.Pressed(input.ActionRight):
		if s.adjust != nil {
			s.adjust(m, s.cursor, 1)
		}
	case in.Pressed(input.ActionConfirm):
		s.choose(m, s.cursor)
	}
}

func (s *menuState) View(m *Machine, v *View) {
	items := make([]string, len(s.items))
	for i, item := range s.items {
		if s.label != nil {
			item = s.label(m, i)
		}
		items[i] = item
	}
	v.Menu = &MenuView{Title: s.title, Items: items, Cursor: s.cursor}
}

func newMainMenu() *menuState {
	return &menuState{
		mode:  ModeMenu,
		title: "Limitless",
		items: []string{"Play", "Options", "Quit"},
		choose: func(m *Machine, item int) {
			switch item {
			case 0:
				m.change(ModePlay)
			case 1:
				m.change(ModeOptions)
			case 2:
				m.quit = true
			}
		},
	}
}

const (
	optionMusic = iota
	optionSound
	optionBack
)

func newOptionsMenu() *menuState {
	back := func(m *Machine) { m.change(ModeMenu) }
	return &menuState{
		mode:  ModeOptions,
		title: "Options",
		items: []string{"Music", "Sound", "Back"},
		choose: func(m *Machine, item int) {
			if item == optionBack {
				back(m)
			}
		},
		cancel: back,
		adjust: func(m *Machine, item, delta int) {
			step := float64(delta) * volumeStep
			switch item {
			case optionMusic:
				m.audio.MusicVolume = clampVolume(m.audio.MusicVolume + step)
			case optionSound:
				m.audio.SFXVolume = clampVolume(m.audio.SFXVolume + step)
			}
		},
		label: func(m *Machine, item int) string {
			switch item {
			case optionMusic:
				return fmt.Sprintf("Music: %d%%", percent(m.audio.MusicVolume))
			case optionSound:
				return fmt.Sprintf("Sound: %d%%", percent(m.audio.SFXVolume))
			}
			return "Back"
		},
	}
}

func newPauseMenu() *menuState {
	resume := func(m *Machine) { m.change(m.resume) }
	return &menuState{
		mode:  ModePause,
		title: "Paused",
		items: []string{"Resume", "Main Menu", "Quit"},
		choose: func(m *Machine, item int) {
			switch item {
			case 0:
				resume(m)
			case 1:
				m.abandonEncounter()
				m.change(ModeMenu)
			case 2:
				m.quit = true
			}
		},
		cancel: resume,
	}
}

// newEndMenu serves both GameOver and Win: Confirm starts over from the
// main menu, Escape exits.
func newEndMenu(mode Mode, title string) *menuState {
	exit := func(m *Machine) { m.quit = true }
	return &menuState{
		mode:  mode,
		title: title,
		items: []string{"Main Menu", "Quit"},
		choose: func(m *Machine, item int) {
			if item != 0 {
				exit(m)
				return
			}
			m.resetWorld()
			m.change(ModeMenu)
		},
		cancel: exit,
	}
}

func clampVolume(v float64) float64 {
	return math.Round(min(max(v, 0), 1)*10) / 10
}

func percent(v float64) int {
	return int(math.Round(v * 100))
}
