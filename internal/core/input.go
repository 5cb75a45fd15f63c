package core

// Action is a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - steer left
	ActionRight          // D, Right arrow - steer right
	ActionUp             // W, Up arrow - accelerate forward
	ActionDown           // S, Down arrow - fall back
	ActionBoost          // Space, Shift - nitro boost
	ActionPause          // P, Escape - pause/unpause
	ActionRestart        // R - restart after game over
	ActionConfirm        // Enter - start a run from the title screen
	ActionBack           // B - back to the mode menu
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionBoost:
		return "Boost"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Held reports whether the action is a continuous control that stays active
// for as long as the key is held. All other actions are edge-triggered and
// must fire once per press.
func (a Action) Held() bool {
	switch a {
	case ActionLeft, ActionRight, ActionUp, ActionDown, ActionBoost:
		return true
	default:
		return false
	}
}

// InputFrame is the input state read at the start of one simulation step.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action is active.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// HeldOnly returns a copy with edge-triggered actions removed.
// Catch-up steps within one frame use it so a single key press is
// not applied several times.
func (f InputFrame) HeldOnly() InputFrame {
	held := NewInputFrame()
	for k, v := range f.Actions {
		if v && k.Held() {
			held.Actions[k] = true
		}
	}
	return held
}

// EdgeOnly returns a copy with only edge-triggered actions.
func (f InputFrame) EdgeOnly() InputFrame {
	edge := NewInputFrame()
	for k, v := range f.Actions {
		if v && !k.Held() {
			edge.Actions[k] = true
		}
	}
	return edge
}

// Merge sets every action active in other.
func (f *InputFrame) Merge(other InputFrame) {
	for k, v := range other.Actions {
		if v {
			f.Set(k)
		}
	}
}
