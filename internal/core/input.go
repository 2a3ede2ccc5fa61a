package core

// Action is a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone            Action = iota
	ActionUp                     // W, Up arrow
	ActionDown                   // S, Down arrow
	ActionLeft                   // A, Left arrow
	ActionRight                  // D, Right arrow
	ActionStart                  // Enter, Space - start or resume
	ActionPause                  // P - toggle pause
	ActionRestart                // R - reset and start again
	ActionReset                  // X - back to idle
	ActionSpeedUp                // + or =
	ActionSpeedDown              // - or _
	ActionToggleObstacles        // O
	ActionObstaclesMore          // ]
	ActionObstaclesLess          // [
	ActionLeaderboard            // L - show leaderboard screen
	ActionBack                   // B, Esc
	ActionQuit                   // Q, Ctrl+C
)

var actionNames = map[Action]string{
	ActionNone:            "None",
	ActionUp:              "Up",
	ActionDown:            "Down",
	ActionLeft:            "Left",
	ActionRight:           "Right",
	ActionStart:           "Start",
	ActionPause:           "Pause",
	ActionRestart:         "Restart",
	ActionReset:           "Reset",
	ActionSpeedUp:         "SpeedUp",
	ActionSpeedDown:       "SpeedDown",
	ActionToggleObstacles: "ToggleObstacles",
	ActionObstaclesMore:   "ObstaclesMore",
	ActionObstaclesLess:   "ObstaclesLess",
	ActionLeaderboard:     "Leaderboard",
	ActionBack:            "Back",
	ActionQuit:            "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame collects the actions triggered between two platform frames.
// Order of arrival is kept: for direction requests the last valid one wins.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records an action for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Actions returns the recorded actions in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Clear resets the frame, keeping the backing storage.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}
