package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// CommandKind identifies a player command.
type CommandKind int

const (
	CmdDirection CommandKind = iota
	CmdStart
	CmdPause
	CmdRestart
	CmdReset
	CmdForfeit
	CmdSpeedUp
	CmdSpeedDown
	CmdToggleObstacles
	CmdObstaclesMore
	CmdObstaclesLess
)

// Command is one queued player request. Dir is set for CmdDirection only.
type Command struct {
	Kind CommandKind
	Dir  Direction
}

var actionCommands = map[core.Action]Command{
	core.ActionUp:              {Kind: CmdDirection, Dir: Up},
	core.ActionDown:            {Kind: CmdDirection, Dir: Down},
	core.ActionLeft:            {Kind: CmdDirection, Dir: Left},
	core.ActionRight:           {Kind: CmdDirection, Dir: Right},
	core.ActionStart:           {Kind: CmdStart},
	core.ActionPause:           {Kind: CmdPause},
	core.ActionRestart:         {Kind: CmdRestart},
	core.ActionReset:           {Kind: CmdReset},
	core.ActionBack:            {Kind: CmdForfeit},
	core.ActionSpeedUp:         {Kind: CmdSpeedUp},
	core.ActionSpeedDown:       {Kind: CmdSpeedDown},
	core.ActionToggleObstacles: {Kind: CmdToggleObstacles},
	core.ActionObstaclesMore:   {Kind: CmdObstaclesMore},
	core.ActionObstaclesLess:   {Kind: CmdObstaclesLess},
}

// CommandsFromInput turns a frame of actions into the command queue, keeping
// arrival order. Actions the game does not handle are dropped.
func CommandsFromInput(in core.InputFrame) []Command {
	var cmds []Command
	for _, a := range in.Actions() {
		if cmd, ok := actionCommands[a]; ok {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

// Apply executes one command.
func (g *Game) Apply(cmd Command, now time.Time) {
	switch cmd.Kind {
	case CmdDirection:
		g.RequestDirection(cmd.Dir)
	case CmdStart:
		g.Start(now)
	case CmdPause:
		g.TogglePause(now)
	case CmdRestart:
		g.Restart(now)
	case CmdReset:
		g.Reset()
	case CmdForfeit:
		g.Forfeit()
	case CmdSpeedUp:
		g.SetSpeed(g.speed + 1)
	case CmdSpeedDown:
		g.SetSpeed(g.speed - 1)
	case CmdToggleObstacles:
		g.SetObstaclesEnabled(!g.obstaclesEnabled)
	case CmdObstaclesMore:
		g.SetObstacleLimit(g.obstacleLimit + ObstacleLimitStep)
	case CmdObstaclesLess:
		g.SetObstacleLimit(g.obstacleLimit - ObstacleLimitStep)
	}
}

// Frame summarizes what one platform frame did.
type Frame struct {
	Result  StepResult
	Stepped bool
	State   State
	Score   int
}

// Update drains the frame's command queue, then advances the simulation if
// a step is due. At most one step runs per call.
func (g *Game) Update(in core.InputFrame, now time.Time) Frame {
	for _, cmd := range CommandsFromInput(in) {
		g.Apply(cmd, now)
	}

	result, stepped := g.Advance(now)
	return Frame{
		Result:  result,
		Stepped: stepped,
		State:   g.state,
		Score:   g.session.Score(),
	}
}
