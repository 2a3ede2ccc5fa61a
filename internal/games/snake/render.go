package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Board layout: every grid cell is two characters wide so the field looks
// square in a terminal.
const (
	cellWidth   = 2
	boardTop    = 2
	sidebarGap  = 2
	sidebarMinW = 24
)

// MinScreenSize returns the smallest screen that fits the board.
func (g *Game) MinScreenSize() (w, h int) {
	return g.grid.Size*cellWidth + 2, boardTop + g.grid.Size + 2
}

// Render draws the HUD, board, sidebar and overlay into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	minW, minH := g.MinScreenSize()
	if dst.Width() < minW || dst.Height() < minH {
		dst.DrawTextCenteredColored(dst.Height()/2, "Window too small", core.ColorBrightRed)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	board := core.NewRect(0, boardTop, minW, g.grid.Size+2)
	dst.DrawBox(board, core.ColorGray)
	g.renderBoard(dst, board)

	if dst.Width() >= board.Right()+sidebarGap+sidebarMinW {
		g.renderSidebar(dst, board.Right()+sidebarGap)
	}

	if g.state != StateRunning {
		g.renderOverlay(dst, board)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake | Score: %d  Best: %d  [%s]", g.session.Score(), g.highScore, g.state)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightGreen)
	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorDarkGray)
	}
}

// cellOrigin returns the screen position of grid cell c inside board.
func cellOrigin(board core.Rect, c Cell) (int, int) {
	return board.X + 1 + c.X*cellWidth, board.Y + 1 + c.Y
}

func (g *Game) drawCell(dst *core.Screen, board core.Rect, c Cell, glyph string, col core.Color) {
	x, y := cellOrigin(board, c)
	dst.DrawTextColored(x, y, glyph, col)
}

func (g *Game) renderBoard(dst *core.Screen, board core.Rect) {
	for _, o := range g.session.Obstacles() {
		g.drawCell(dst, board, o, "▓▓", core.ColorGray)
	}
	if food, ok := g.session.Food(); ok {
		g.drawCell(dst, board, food, "()", core.ColorBrightRed)
	}

	snake := g.session.Snake()
	// Body first so the head stays visible after a self collision.
	for i := len(snake) - 1; i >= 1; i-- {
		g.drawCell(dst, board, snake[i], "██", core.ColorGreen)
	}
	headColor := core.ColorBrightGreen
	if g.state == StateEnded && g.lastResult != Won {
		headColor = core.ColorRed
	}
	g.drawCell(dst, board, snake[0], "██", headColor)
}

func (g *Game) renderSidebar(dst *core.Screen, x int) {
	y := boardTop
	line := func(text string, c core.Color) {
		dst.DrawTextColored(x, y, text, c)
		y++
	}

	obstacles := "off"
	if g.obstaclesEnabled {
		obstacles = fmt.Sprintf("on (%d)", g.obstacleLimit)
	}

	line("Player:    "+g.playerName, core.ColorCyan)
	line(fmt.Sprintf("Speed:     %d %s", g.speed, g.SpeedLabel()), core.ColorDefault)
	line("Obstacles: "+obstacles, core.ColorDefault)
	y++

	line("Top scores", core.ColorBrightYellow)
	if len(g.leaderboard) == 0 {
		line("  no scores yet", core.ColorDarkGray)
	}
	for i, e := range g.leaderboard {
		line(fmt.Sprintf("%d. %-12.12s %4d", i+1, e.Name, e.Score), core.ColorDefault)
	}
	y++

	for _, help := range []string{
		"arrows/wasd  move",
		"enter        start",
		"p            pause",
		"r            restart",
		"+/-          speed",
		"o  [ ]       obstacles",
		"l            scores",
		"q            quit",
	} {
		line(help, core.ColorDarkGray)
	}
}

func (g *Game) renderOverlay(dst *core.Screen, board core.Rect) {
	title := "Snake"
	switch g.state {
	case StatePaused:
		title = "Paused"
	case StateEnded:
		title = "Game Over"
		if g.lastResult == Won {
			title = "You Win!"
		}
	}

	lines := []string{title}
	if g.message != "" && g.message != title {
		lines = append(lines, g.message)
	}
	if g.state == StateEnded {
		lines = append(lines, fmt.Sprintf("Final score: %d", g.session.Score()), "Press R to play again")
	}

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := core.NewRect(0, 0, min(width+4, board.W), len(lines)+2)
	box.X = board.X + (board.W-box.W)/2
	box.Y = board.Y + (board.H-box.H)/2

	dst.FillRect(box, ' ')
	dst.DrawBox(box, core.ColorYellow)
	for i, l := range lines {
		lx := box.X + (box.W-len([]rune(l)))/2
		c := core.ColorDefault
		if i == 0 {
			c = core.ColorBrightYellow
		}
		dst.DrawTextColored(lx, box.Y+1+i, l, c)
	}
}
