package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// Frontends map raw device events (keys, clicks, taps) to actions; anything
// that does not map is dropped before it reaches a game.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, Up, W, click, tap - jump, or start/restart when not running
	ActionRestart        // R - reset the run at any time
	ActionBack           // B, Escape - leave the game for the menu
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input collected between two simulation ticks.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Now is the host timestamp of the frame callback that delivers this
	// input. The zero value means "no wall clock": games fall back to a
	// nominal step derived from the tick rate.
	Now time.Time
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions and the timestamp for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Now = time.Time{}
}
