package snake

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Keys used in the persistent store.
const (
	HighScoreKey   = "snake-game-high-score"
	LeaderboardKey = "snake-game-leaderboard"
)

// ObstacleLimitStep is how much one key press changes the obstacle limit.
const ObstacleLimitStep = 5

// State is the phase of the session state machine.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Store is the persistence the game needs. storage.KV satisfies it.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// Game drives sessions: it owns the current Session, the step clock, the
// runtime settings and the records that outlive a session.
type Game struct {
	grid   Grid
	placer *Placer
	clock  Clock

	session    *Session
	state      State
	lastResult StepResult
	message    string
	recorded   bool // score of the ended session already submitted

	speedMin, speedMax, speed int
	obstaclesEnabled          bool
	obstacleLimit             int
	playerName                string

	highScore   int
	leaderboard []Entry

	store    Store
	logger   *log.Logger
	now      func() time.Time
	revision uint64

	// Screen layout
	screenW, screenH int
}

// Option configures a Game.
type Option func(*Game)

// WithStore persists the high score and leaderboard in s.
func WithStore(s Store) Option {
	return func(g *Game) { g.store = s }
}

// WithLogger sets the logger used for persistence failures.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithNow overrides the wall clock used for leaderboard timestamps.
func WithNow(now func() time.Time) Option {
	return func(g *Game) { g.now = now }
}

// New creates a game in the Idle state from a sanitized configuration.
func New(cfg config.SnakeConfig, rt core.RuntimeConfig, opts ...Option) *Game {
	cfg = cfg.Sanitize()
	grid := Grid{Size: cfg.Grid.Size}

	g := &Game{
		grid:             grid,
		placer:           NewPlacer(grid, rt.Seed),
		speedMin:         cfg.Speed.Min,
		speedMax:         cfg.Speed.Max,
		speed:            cfg.Speed.Value,
		obstaclesEnabled: cfg.Obstacles.Enabled,
		obstacleLimit:    cfg.Obstacles.Limit,
		playerName:       PlayerName(cfg.Player.Name),
		leaderboard:      []Entry{},
		logger:           log.New(io.Discard),
		now:              time.Now,
		screenW:          rt.ScreenW,
		screenH:          rt.ScreenH,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.clock.SetInterval(g.Interval())
	g.Reset()
	return g
}

// LoadRecords reads the high score and leaderboard from the store.
// Missing or malformed values fall back to zero and an empty board.
func (g *Game) LoadRecords(ctx context.Context) {
	if g.store == nil {
		return
	}

	if raw, ok, err := g.store.Get(ctx, HighScoreKey); err != nil {
		g.logger.Warn("could not load high score", "error", err)
	} else if ok {
		g.highScore = DecodeHighScore(raw)
	}

	if raw, ok, err := g.store.Get(ctx, LeaderboardKey); err != nil {
		g.logger.Warn("could not load leaderboard", "error", err)
	} else if ok {
		g.leaderboard = DecodeLeaderboard(raw)
	}
	g.touch()
}

// Reset discards the current session and builds a fresh one in Idle.
func (g *Game) Reset() {
	g.clock.Stop()
	g.session = NewSession(g.grid, g.placer, g.obstaclesEnabled, g.obstacleLimit)
	g.state = StateIdle
	g.lastResult = Continue
	g.recorded = false
	g.message = "Press Enter to begin"
	g.touch()
}

// Start begins play from Idle, stepping on the first Advance, or resumes
// from Paused.
func (g *Game) Start(now time.Time) {
	switch g.state {
	case StateIdle:
		g.state = StateRunning
		g.clock.Start()
	case StatePaused:
		g.resume(now)
	default:
		return
	}
	g.message = ""
	g.touch()
}

// Restart resets and immediately starts a new session.
func (g *Game) Restart(now time.Time) {
	g.Reset()
	g.Start(now)
}

// TogglePause flips between Running and Paused. Other states ignore it.
func (g *Game) TogglePause(now time.Time) {
	switch g.state {
	case StateRunning:
		g.state = StatePaused
		g.message = "Paused - press P or Enter to resume"
	case StatePaused:
		g.resume(now)
		g.message = ""
	default:
		return
	}
	g.touch()
}

// resume opens a fresh interval window at now; no partial interval from
// before the pause is carried over.
func (g *Game) resume(now time.Time) {
	g.state = StateRunning
	g.clock.StartAt(now)
}

// Forfeit ends a running or paused session early.
func (g *Game) Forfeit() {
	if g.state != StateRunning && g.state != StatePaused {
		return
	}
	g.end(Continue, "Game abandoned")
}

// RequestDirection buffers a direction change for the next step.
// Requests are ignored while paused or after the session ended.
func (g *Game) RequestDirection(d Direction) {
	if g.state != StateIdle && g.state != StateRunning {
		return
	}
	g.session.RequestDirection(d)
}

// Advance runs one step when the game is running and the interval has
// elapsed. stepped is false when nothing happened.
func (g *Game) Advance(now time.Time) (result StepResult, stepped bool) {
	if g.state != StateRunning || !g.clock.Due(now) {
		return Continue, false
	}
	g.clock.Fire(now)

	result = g.session.Step()
	g.lastResult = result
	if result == Ate || result == Won {
		g.updateHighScore()
	}
	if result.Terminal() {
		g.end(result, result.Message())
	}
	g.touch()
	return result, true
}

// updateHighScore raises and persists the high score when beaten. The
// stored value is read first so a session sharing the store never lowers it.
func (g *Game) updateHighScore() {
	score := g.session.Score()
	if score <= g.highScore {
		return
	}
	g.syncHighScore()
	if score <= g.highScore {
		return
	}
	g.highScore = score
	g.persist(HighScoreKey, EncodeHighScore(score))
}

// syncHighScore picks up a higher score another session stored since
// LoadRecords.
func (g *Game) syncHighScore() {
	if g.store == nil {
		return
	}
	raw, ok, err := g.store.Get(context.Background(), HighScoreKey)
	if err != nil || !ok {
		return
	}
	g.highScore = max(g.highScore, DecodeHighScore(raw))
}

// end stops the clock and submits the score once.
func (g *Game) end(result StepResult, message string) {
	g.state = StateEnded
	g.clock.Stop()
	g.lastResult = result
	g.message = message
	g.touch()

	if g.recorded {
		return
	}
	g.recorded = true

	score := g.session.Score()
	if score <= 0 {
		return
	}

	g.syncLeaderboard()
	g.leaderboard = Insert(g.leaderboard, Entry{
		Name:      g.playerName,
		Score:     score,
		Timestamp: g.now().UnixMilli(),
	})
	g.persist(LeaderboardKey, EncodeLeaderboard(g.leaderboard))
	g.recordHistory(score)
}

// syncLeaderboard picks up entries other sessions sharing the store wrote
// since LoadRecords.
func (g *Game) syncLeaderboard() {
	if g.store == nil {
		return
	}
	raw, ok, err := g.store.Get(context.Background(), LeaderboardKey)
	if err != nil || !ok {
		return
	}
	g.leaderboard = DecodeLeaderboard(raw)
}

func (g *Game) persist(key, value string) {
	if g.store == nil {
		return
	}
	if err := g.store.Set(context.Background(), key, value); err != nil {
		g.logger.Warn("could not save", "key", key, "error", err)
	}
}

func (g *Game) recordHistory(score int) {
	h, ok := g.store.(storage.History)
	if !ok {
		return
	}
	_, err := h.RecordGame(context.Background(), storage.GameResult{
		Player: g.playerName,
		Score:  score,
		Reason: g.EndReason(),
	})
	if err != nil {
		g.logger.Warn("could not record game", "error", err)
	}
}

// SetSpeed moves the speed slider. While running, the next step fires
// immediately at the new interval.
func (g *Game) SetSpeed(value int) {
	g.speed = core.Clamp(value, g.speedMin, g.speedMax)
	g.clock.SetInterval(g.Interval())
	if g.state == StateRunning {
		g.clock.Reset()
	}
	g.touch()
}

// SetObstaclesEnabled turns obstacles on (fresh random set) or off (cleared).
func (g *Game) SetObstaclesEnabled(enabled bool) {
	g.obstaclesEnabled = enabled
	if enabled {
		g.regenerateObstacles()
	} else {
		g.session.ClearObstacles()
	}
	g.touch()
}

// SetObstacleLimit changes the obstacle count, regenerating when enabled.
func (g *Game) SetObstacleLimit(limit int) {
	g.obstacleLimit = core.Clamp(limit, 0, MaxObstacles)
	if g.obstaclesEnabled {
		g.regenerateObstacles()
	}
	g.touch()
}

func (g *Game) regenerateObstacles() {
	g.session.RegenerateObstacles(g.obstacleLimit)
	// Covering the last free cell with an obstacle leaves nowhere for food.
	if _, ok := g.session.Food(); !ok && (g.state == StateRunning || g.state == StatePaused) {
		g.end(Won, Won.Message())
	}
}

// SetPlayerName sets the name used for new leaderboard entries.
func (g *Game) SetPlayerName(name string) {
	g.playerName = PlayerName(name)
	g.touch()
}

// Resize records the screen size. A running game pauses when the board no
// longer fits, so the player never steers blind.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	if g.state == StateRunning && !g.Fits() {
		g.state = StatePaused
		g.message = "Window too small"
	}
	g.touch()
}

// Fits reports whether the last known screen size can show the board.
func (g *Game) Fits() bool {
	minW, minH := g.MinScreenSize()
	return g.screenW >= minW && g.screenH >= minH
}

// Interval returns the current step interval.
func (g *Game) Interval() time.Duration {
	return SpeedToInterval(g.speed, g.speedMin, g.speedMax)
}

func (g *Game) touch() {
	g.revision++
}

// Revision changes whenever anything visible changed.
func (g *Game) Revision() uint64 {
	return g.revision
}

// State returns the current state machine phase.
func (g *Game) State() State {
	return g.state
}

// Session returns the current session.
func (g *Game) Session() *Session {
	return g.session
}

// Score returns the score of the current session.
func (g *Game) Score() int {
	return g.session.Score()
}

// HighScore returns the best score ever recorded.
func (g *Game) HighScore() int {
	return g.highScore
}

// Leaderboard returns a copy of the top entries.
func (g *Game) Leaderboard() []Entry {
	out := make([]Entry, len(g.leaderboard))
	copy(out, g.leaderboard)
	return out
}

// LastResult returns the result of the most recent step.
func (g *Game) LastResult() StepResult {
	return g.lastResult
}

// EndReason names how the last session ended: a step result such as
// "hit_wall", or "forfeit". Empty while the session is still open.
func (g *Game) EndReason() string {
	if g.state != StateEnded {
		return ""
	}
	if !g.lastResult.Terminal() {
		return "forfeit"
	}
	return g.lastResult.String()
}

// Message returns the overlay text for the current state.
func (g *Game) Message() string {
	return g.message
}

// Speed returns the slider position.
func (g *Game) Speed() int {
	return g.speed
}

// SpeedLabel names the slider position.
func (g *Game) SpeedLabel() string {
	return SpeedLabel(g.speed, g.speedMin)
}

// ObstaclesEnabled reports whether obstacles are on.
func (g *Game) ObstaclesEnabled() bool {
	return g.obstaclesEnabled
}

// ObstacleLimit returns the configured obstacle count.
func (g *Game) ObstacleLimit() int {
	return g.obstacleLimit
}

// PlayerName returns the name recorded on the leaderboard.
func (g *Game) PlayerName() string {
	return g.playerName
}

// Grid returns the playing field.
func (g *Game) Grid() Grid {
	return g.grid
}
