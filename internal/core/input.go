package core

// Action represents a semantic command, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - lane left / cursor left
	ActionRight          // D, Right arrow - lane right / cursor right
	ActionUp             // W, Up arrow - cursor up
	ActionDown           // S, Down arrow - cursor down
	ActionTap            // Space - primary tap (drop, hit, reveal at cursor)
	ActionConfirm        // Enter - confirm selection in menus
	ActionBack           // B, Escape - go back to the hub
	ActionRestart        // R - restart the round
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P - pause/unpause
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
	case ActionTap:
		return "Tap"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
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

// Pointer is a tap position normalized to the render surface:
// (0,0) is the top-left corner and (1,1) the bottom-right one.
type Pointer struct {
	X, Y float64
}

// InputFrame is everything the player did since the previous step.
// Engines consume taps in arrival order, then commands.
type InputFrame struct {
	Actions map[Action]bool
	Taps    []Pointer
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

// Tap queues a pointer tap. Coordinates are clamped into [0,1].
func (f *InputFrame) Tap(x, y float64) {
	f.Taps = append(f.Taps, Pointer{X: ClampF(x, 0, 1), Y: ClampF(y, 0, 1)})
}

// Empty reports whether nothing happened this frame.
func (f InputFrame) Empty() bool {
	return len(f.Taps) == 0 && len(f.Actions) == 0
}

// Clear resets all actions and taps for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Taps = f.Taps[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Taps = append([]Pointer(nil), f.Taps...)
	return clone
}
