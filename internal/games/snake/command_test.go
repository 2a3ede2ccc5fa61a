package snake

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestCommandsFromInput(t *testing.T) {
	in := core.NewInputFrame()
	in.Set(core.ActionUp)
	in.Set(core.ActionQuit)
	in.Set(core.ActionSpeedUp)
	in.Set(core.ActionLeaderboard)
	in.Set(core.ActionLeft)

	cmds := CommandsFromInput(in)
	want := []Command{
		{Kind: CmdDirection, Dir: Up},
		{Kind: CmdSpeedUp},
		{Kind: CmdDirection, Dir: Left},
	}
	if len(cmds) != len(want) {
		t.Fatalf("got %d commands, want %d: %+v", len(cmds), len(want), cmds)
	}
	for i := range want {
		if cmds[i] != want[i] {
			t.Errorf("command %d = %+v, want %+v", i, cmds[i], want[i])
		}
	}
}

func TestUpdateStartsAndSteps(t *testing.T) {
	g := newTestGame()
	in := core.NewInputFrame()
	in.Set(core.ActionStart)
	in.Set(core.ActionDown)

	f := g.Update(in, t0)
	if !f.Stepped || f.State != StateRunning {
		t.Fatalf("frame = %+v", f)
	}
	if g.Session().Head() != (Cell{8, 11}) {
		t.Errorf("head = %v, want (8,11)", g.Session().Head())
	}

	f = g.Update(core.NewInputFrame(), t0.Add(time.Millisecond))
	if f.Stepped {
		t.Error("stepped twice inside one interval")
	}
}

func TestApplySettings(t *testing.T) {
	g := newTestGame()
	now := t0

	g.Apply(Command{Kind: CmdSpeedUp}, now)
	g.Apply(Command{Kind: CmdSpeedUp}, now)
	g.Apply(Command{Kind: CmdSpeedDown}, now)
	if g.Speed() != 6 {
		t.Errorf("speed = %d, want 6", g.Speed())
	}

	g.Apply(Command{Kind: CmdToggleObstacles}, now)
	if !g.ObstaclesEnabled() {
		t.Fatal("obstacles not enabled")
	}
	g.Apply(Command{Kind: CmdObstaclesMore}, now)
	if g.ObstacleLimit() != 12+ObstacleLimitStep {
		t.Errorf("limit = %d", g.ObstacleLimit())
	}
	g.Apply(Command{Kind: CmdObstaclesLess}, now)
	g.Apply(Command{Kind: CmdObstaclesLess}, now)
	if g.ObstacleLimit() != 12-ObstacleLimitStep {
		t.Errorf("limit = %d", g.ObstacleLimit())
	}
}

func TestApplyLifecycle(t *testing.T) {
	g := newTestGame()

	g.Apply(Command{Kind: CmdStart}, t0)
	g.Apply(Command{Kind: CmdPause}, t0)
	if g.State() != StatePaused {
		t.Fatalf("state = %v, want paused", g.State())
	}
	g.Apply(Command{Kind: CmdForfeit}, t0)
	if g.State() != StateEnded {
		t.Fatalf("state = %v, want ended", g.State())
	}
	g.Apply(Command{Kind: CmdRestart}, t0)
	if g.State() != StateRunning {
		t.Fatalf("state = %v, want running", g.State())
	}
	g.Apply(Command{Kind: CmdReset}, t0)
	if g.State() != StateIdle {
		t.Fatalf("state = %v, want idle", g.State())
	}
}
