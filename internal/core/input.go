package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, W - move up / previous button
	ActionDown           // Down arrow, S - move down / next button
	ActionLeft           // Left arrow, A - move left
	ActionRight          // Right arrow, D - move right
	ActionConfirm        // Enter - confirm selection, retry after a round
	ActionCancel         // Escape - quit after a round
	ActionPause          // P - pause/unpause game
	ActionQuit           // Q, Ctrl+C - exit program
	ActionSelect1        // 1..4 - pick a difficulty directly
	ActionSelect2
	ActionSelect3
	ActionSelect4
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionCancel:
		return "Cancel"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	case ActionSelect1, ActionSelect2, ActionSelect3, ActionSelect4:
		return "Select"
	default:
		return "Unknown"
	}
}

// SelectIndex returns the zero-based difficulty index for a Select action.
func (a Action) SelectIndex() (int, bool) {
	if a >= ActionSelect1 && a <= ActionSelect4 {
		return int(a - ActionSelect1), true
	}
	return 0, false
}

// Click is a pointer press in cell coordinates of the last rendered screen.
type Click struct {
	X, Y int
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered or held during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Clicks holds pointer presses received since the previous tick.
	Clicks []Click
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

// AddClick records a pointer press at cell (x, y).
func (f *InputFrame) AddClick(x, y int) {
	f.Clicks = append(f.Clicks, Click{X: x, Y: y})
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Clicks = f.Clicks[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Clicks = append(clone.Clicks, f.Clicks...)
	return clone
}

// Axis resolves held directions into a unit step on each axis.
// Left beats Right and Up beats Down when both are held.
func (f InputFrame) Axis() (dx, dy int) {
	switch {
	case f.Has(ActionLeft):
		dx = -1
	case f.Has(ActionRight):
		dx = 1
	}
	switch {
	case f.Has(ActionUp):
		dy = -1
	case f.Has(ActionDown):
		dy = 1
	}
	return dx, dy
}

// Decision is the player's answer once a round has ended.
type Decision int

const (
	DecisionRetry Decision = iota + 1
	DecisionQuit
)

// String returns a human-readable name for the decision.
func (d Decision) String() string {
	switch d {
	case DecisionRetry:
		return "retry"
	case DecisionQuit:
		return "quit"
	default:
		return "unknown"
	}
}
