package core

// Action is a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // Left arrow, h - shift the piece left
	ActionRight           // Right arrow, l - shift the piece right
	ActionRotateCW        // Up arrow, x, k - rotate clockwise
	ActionRotateCCW       // z - rotate counter-clockwise
	ActionSoftDrop        // Down arrow, j - move down one row
	ActionHardDrop        // Space - drop and lock
	ActionRestart         // r - restart after game over
	ActionQuit            // q, Ctrl+C - leave the session
	ActionPause           // p, Escape - pause or resume
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
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Repeatable reports whether holding the key for this action should keep
// firing it.
func (a Action) Repeatable() bool {
	switch a {
	case ActionLeft, ActionRight, ActionSoftDrop:
		return true
	}
	return false
}

// InputFrame holds the actions triggered during one frame, in arrival order.
// Games that care about order (a drop followed by a shift is not the same as
// a shift followed by a drop) read Actions; the rest use Has.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{actions: make([]Action, 0, 8)}
}

// Set appends an action to the frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.actions {
		if got == a {
			return true
		}
	}
	return false
}

// Actions returns the triggered actions in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Len returns the number of actions in the frame.
func (f InputFrame) Len() int {
	return len(f.actions)
}

// Clear resets the frame for reuse, keeping its storage.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{actions: make([]Action, len(f.actions), cap(f.actions))}
	copy(clone.actions, f.actions)
	return clone
}
