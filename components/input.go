package components

import (
	cfg "github.com/automoto/dashrunner/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

func (m InputMethod) String() string {
	if m == InputGamepad {
		return "gamepad"
	}
	return "keyboard"
}

// InputState is the temporal state of an action this tick.
type InputState int

const (
	InputNone     InputState = iota // not held
	InputPressed                    // went down this tick
	InputHeld                       // held since an earlier tick
	InputReleased                   // went up this tick
)

func (s InputState) String() string {
	switch s {
	case InputPressed:
		return "Pressed"
	case InputHeld:
		return "Held"
	case InputReleased:
		return "Released"
	}
	return "None"
}

// Down reports whether the action is currently held, including the tick it
// was pressed.
func (s InputState) Down() bool {
	return s == InputPressed || s == InputHeld
}

// InputData stores the current and previous frame's pressed state for all actions.
// Edge states are computed on demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod           // Most recently used input method
}

// Action returns the state of id this tick.
func (in *InputData) Action(id cfg.ActionID) InputState {
	if id <= cfg.ActionNone || id >= cfg.ActionCount {
		return InputNone
	}
	cur, prev := in.Current[id], in.Previous[id]
	switch {
	case cur && !prev:
		return InputPressed
	case cur:
		return InputHeld
	case prev:
		return InputReleased
	}
	return InputNone
}

// GetInputState looks an action up by name. Unknown names are InputNone.
func (in *InputData) GetInputState(action string) InputState {
	id, ok := cfg.ActionNames[action]
	if !ok {
		return InputNone
	}
	return in.Action(id)
}

func (in *InputData) MovingLeft() bool { return in.Current[cfg.ActionMoveLeft] }

func (in *InputData) MovingRight() bool { return in.Current[cfg.ActionMoveRight] }

// Idle reports that nothing that drives the character is held.
func (in *InputData) Idle() bool {
	return !in.MovingLeft() && !in.MovingRight() &&
		!in.Current[cfg.ActionDash] && !in.Current[cfg.ActionJump]
}

// Advance rolls the current frame into the previous one and clears current.
func (in *InputData) Advance() {
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
}

var Input = donburi.NewComponentType[InputData]()
