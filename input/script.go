package input

import (
	"fmt"
	"strconv"
	"strings"
)

// Step holds a set of actions for a number of ticks.
type Step struct {
	Actions []Action
	Ticks   int
}

// Script replays steps into a State, one tick at a time. It drives the
// headless simulation the same way a keyboard would.
type Script struct {
	steps []Step
	index int
	left  int
}

// ParseScript reads a comma separated list of `action+action*ticks` steps,
// e.g. "confirm*1,none*2,right+sprint*60". "none" holds nothing. A missing
// tick count means one tick.
func ParseScript(src string) (*Script, error) {
	var steps []Step
	for _, raw := range strings.Split(src, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		names, count, found := strings.Cut(raw, "*")
		ticks := 1
		if found {
			n, err := strconv.Atoi(strings.TrimSpace(count))
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("input: bad tick count in %q", raw)
			}
			ticks = n
		}
		var actions []Action
		for _, name := range strings.Split(names, "+") {
			name = strings.TrimSpace(name)
			if name == "none" {
				continue
			}
			a, ok := ParseAction(name)
			if !ok {
				return nil, fmt.Errorf("input: unknown action %q", name)
			}
			actions = append(actions, a)
		}
		steps = append(steps, Step{Actions: actions, Ticks: ticks})
	}
	return &Script{steps: steps}, nil
}

// Done reports whether every step has been played.
func (s *Script) Done() bool {
	return s == nil || s.index >= len(s.steps)
}

// Apply writes the current step's actions into state and advances by one
// tick. Once the script is done every action is released.
func (s *Script) Apply(state *State) {
	if state == nil {
		return
	}
	state.ReleaseAll()
	if s.Done() {
		return
	}
	step := s.steps[s.index]
	if s.left == 0 {
		s.left = step.Ticks
	}
	for _, a := range step.Actions {
		state.Press(a)
	}
	s.left--
	if s.left == 0 {
		s.index++
	}
}
