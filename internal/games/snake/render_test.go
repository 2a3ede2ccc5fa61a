package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRenderBoard(t *testing.T) {
	g := newTestGame()
	g.session = testSession(20, []Cell{{8, 10}, {7, 10}, {6, 10}}, Right, Cell{2, 3})
	g.Start(t0)

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	if row := strings.Split(scr.String(), "\n")[0]; !strings.Contains(row, "Score: 0") || !strings.Contains(row, "Best: 0") {
		t.Errorf("HUD row = %q", row)
	}

	board := core.NewRect(0, boardTop, 42, 22)
	if scr.GetCell(board.X, board.Y).Rune != '┌' || scr.GetCell(board.Right()-1, board.Bottom()-1).Rune != '┘' {
		t.Error("board frame missing")
	}

	hx, hy := cellOrigin(board, Cell{8, 10})
	if c := scr.GetCell(hx, hy); c.Rune != '█' || c.Color != core.ColorBrightGreen {
		t.Errorf("head cell = %+v", c)
	}
	fx, fy := cellOrigin(board, Cell{2, 3})
	if scr.GetCell(fx, fy).Rune != '(' || scr.GetCell(fx+1, fy).Rune != ')' {
		t.Error("food not drawn")
	}
	if strings.Contains(scr.String(), "Game Over") {
		t.Error("overlay drawn while running")
	}
	if !strings.Contains(scr.String(), "Top scores") {
		t.Error("sidebar missing")
	}
}

func TestRenderOverlay(t *testing.T) {
	g := newTestGame()
	scr := core.NewScreen(80, 24)

	g.Render(scr)
	if !strings.Contains(scr.String(), "Press Enter to begin") {
		t.Error("idle overlay missing")
	}

	g.Start(t0)
	g.TogglePause(t0)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Paused") {
		t.Error("pause overlay missing")
	}

	g.Forfeit()
	g.Render(scr)
	out := scr.String()
	if !strings.Contains(out, "Game Over") || !strings.Contains(out, "Press R to play again") {
		t.Errorf("end overlay missing:\n%s", out)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame()
	scr := core.NewScreen(30, 10)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Window too small") {
		t.Error("expected a too-small message")
	}
}

func TestResizePausesWhenTooSmall(t *testing.T) {
	g := newTestGame()
	g.Start(t0)

	g.Resize(30, 10)
	if g.State() != StatePaused || g.Fits() {
		t.Fatalf("state = %v, fits = %v", g.State(), g.Fits())
	}
	g.Resize(80, 24)
	if !g.Fits() || g.State() != StatePaused {
		t.Error("game should stay paused until the player resumes")
	}
}
