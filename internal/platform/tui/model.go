package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// viewCache holds the last rendered frame. Shared by model copies.
type viewCache struct {
	revision uint64
	width    int
	height   int
	valid    bool
	view     string
}

// Model is the Bubble Tea model that plays one snake game.
type Model struct {
	game       *snake.Game
	screen     *core.Screen
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	tickRate   int
	logger     *log.Logger
	now        func() time.Time

	// Frame loop state: at most one tick is in flight, tagged with loopGen.
	ticking bool
	loopGen uint64

	board     LeaderboardModel
	showBoard bool

	cache    *viewCache
	quitting bool
}

// NewModel creates a model around game. history may be nil.
func NewModel(game *snake.Game, cfg core.RuntimeConfig, history storage.History, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	game.Resize(cfg.ScreenW, cfg.ScreenH)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		tickRate:   cfg.TickRate,
		logger:     logger,
		now:        time.Now,
		board:      NewLeaderboardModel(history, cfg.ScreenW, cfg.ScreenH),
		cache:      &viewCache{},
	}
}

// Init does nothing: the frame loop starts with the first key press.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showBoard {
			return m.updateBoard(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	if m.showBoard {
		return m.updateBoard(msg)
	}
	return m, nil
}

// handleKey buffers the key's action for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionNone:
		return m, nil
	case action == core.ActionLeaderboard:
		return m.openBoard()
	}

	m.inputFrame.Set(action)
	return m.ensureLoop()
}

func (m Model) openBoard() (tea.Model, tea.Cmd) {
	if m.game.State() == snake.StateRunning {
		m.game.TogglePause(m.now())
	}
	m.board.Open(context.Background(), m.game.Leaderboard())
	m.showBoard = true
	return m, nil
}

func (m Model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.board, cmd = m.board.Update(msg)
	if m.board.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.board.Closed() {
		m.showBoard = false
		m.cache.valid = false
	}
	return m, cmd
}

// ensureLoop starts a frame loop when none is running.
func (m Model) ensureLoop() (tea.Model, tea.Cmd) {
	if m.ticking {
		return m, nil
	}
	m.ticking = true
	m.loopGen++
	return m, tickCmd(m.tickRate, m.loopGen)
}

// handleResize processes window resize events. The game keeps its state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	m.board.SetSize(msg.Width, msg.Height)
	m.cache.valid = false
	return m, nil
}

// handleTick runs one frame: queued commands, then at most one step.
// The loop stops once the game is idle or ended.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.loopGen || !m.ticking {
		return m, nil
	}

	before := m.game.State()
	frame := m.game.Update(m.inputFrame, msg.Time)
	m.inputFrame.Clear()

	if frame.State == snake.StateEnded && before != snake.StateEnded {
		result := m.game.EndReason()
		gamesFinished.WithLabelValues(result).Inc()
		m.logger.Info("game over",
			"player", m.game.PlayerName(),
			"score", frame.Score,
			"result", result,
		)
	}

	switch frame.State {
	case snake.StateRunning, snake.StatePaused:
		return m, tickCmd(m.tickRate, m.loopGen)
	default:
		m.ticking = false
		return m, nil
	}
}

// saveScreenshot writes the current board as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the game, reusing the last frame when nothing changed.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showBoard {
		return m.board.View()
	}

	c := m.cache
	rev := m.game.Revision()
	if c.valid && c.revision == rev && c.width == m.screen.Width() && c.height == m.screen.Height() {
		return c.view
	}

	m.game.Render(m.screen)
	c.view = RenderScreen(m.screen)
	c.revision = rev
	c.width, c.height = m.screen.Width(), m.screen.Height()
	c.valid = true
	return c.view
}

// Run plays game in the local terminal until the player quits.
func Run(game *snake.Game, cfg core.RuntimeConfig, history storage.History, logger *log.Logger) error {
	model := NewModel(game, cfg, history, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
