package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct {
	bindings map[string]core.Action
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{bindings: map[string]core.Action{
		"up":     core.ActionUp,
		"w":      core.ActionUp,
		"down":   core.ActionDown,
		"s":      core.ActionDown,
		"left":   core.ActionLeft,
		"a":      core.ActionLeft,
		"right":  core.ActionRight,
		"d":      core.ActionRight,
		"enter":  core.ActionStart,
		" ":      core.ActionStart,
		"p":      core.ActionPause,
		"r":      core.ActionRestart,
		"x":      core.ActionReset,
		"+":      core.ActionSpeedUp,
		"=":      core.ActionSpeedUp,
		"-":      core.ActionSpeedDown,
		"_":      core.ActionSpeedDown,
		"o":      core.ActionToggleObstacles,
		"]":      core.ActionObstaclesMore,
		"[":      core.ActionObstaclesLess,
		"l":      core.ActionLeaderboard,
		"tab":    core.ActionLeaderboard,
		"esc":    core.ActionBack,
		"b":      core.ActionBack,
		"q":      core.ActionQuit,
		"ctrl+c": core.ActionQuit,
	}}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action = km.bindings[msg.String()]
	return action, action == core.ActionQuit
}
