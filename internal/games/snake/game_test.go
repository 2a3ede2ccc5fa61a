package snake

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var t0 = time.Unix(1_700_000_000, 0)

func newTestGame(opts ...Option) *Game {
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
	return New(config.DefaultSnakeConfig(), rt, opts...)
}

func fixedNow() time.Time { return t0 }

type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("unavailable")
}

func (failingStore) Set(context.Context, string, string) error {
	return errors.New("unavailable")
}

func TestNewGameIsIdle(t *testing.T) {
	g := newTestGame()
	if g.State() != StateIdle {
		t.Fatalf("state = %v, want idle", g.State())
	}
	if _, stepped := g.Advance(t0); stepped {
		t.Error("idle game stepped")
	}
	if g.Score() != 0 || len(g.Session().Snake()) != 3 {
		t.Errorf("unexpected fresh session: score %d, len %d", g.Score(), len(g.Session().Snake()))
	}
}

func TestStartStepsOnInterval(t *testing.T) {
	g := newTestGame()
	g.Start(t0)

	if _, stepped := g.Advance(t0); !stepped {
		t.Fatal("first step after start should be immediate")
	}
	if _, stepped := g.Advance(t0.Add(10 * time.Millisecond)); stepped {
		t.Error("stepped before the interval elapsed")
	}
	if _, stepped := g.Advance(t0.Add(g.Interval())); !stepped {
		t.Error("no step after a full interval")
	}
}

func TestHitWallEndsSession(t *testing.T) {
	g := newTestGame()
	start := []Cell{{0, 5}, {1, 5}, {2, 5}}
	g.session = testSession(20, start, Left, Cell{10, 10})
	g.Start(t0)

	result, stepped := g.Advance(t0)
	if !stepped || result != HitWall {
		t.Fatalf("Advance = %v, %v; want hit_wall", result, stepped)
	}
	if g.State() != StateEnded {
		t.Errorf("state = %v, want ended", g.State())
	}
	if !sameCells(g.Session().Snake(), start) {
		t.Errorf("snake changed: %v", g.Session().Snake())
	}
	if g.Message() != HitWall.Message() {
		t.Errorf("message = %q", g.Message())
	}
	if len(g.Leaderboard()) != 0 {
		t.Error("zero score must not reach the leaderboard")
	}
	if _, stepped := g.Advance(t0.Add(time.Second)); stepped {
		t.Error("ended game stepped")
	}
}

func TestPauseResumeWaitsFullInterval(t *testing.T) {
	g := newTestGame()
	g.Start(t0)
	g.Advance(t0)

	g.TogglePause(t0.Add(50 * time.Millisecond))
	if g.State() != StatePaused {
		t.Fatalf("state = %v, want paused", g.State())
	}
	if _, stepped := g.Advance(t0.Add(10 * time.Second)); stepped {
		t.Fatal("paused game stepped")
	}

	t1 := t0.Add(20 * time.Second)
	g.TogglePause(t1)
	if g.State() != StateRunning {
		t.Fatalf("state = %v, want running", g.State())
	}
	if _, stepped := g.Advance(t1); stepped {
		t.Error("resumed game stepped without waiting")
	}
	if _, stepped := g.Advance(t1.Add(g.Interval() - time.Millisecond)); stepped {
		t.Error("resumed game stepped before a full interval")
	}
	if _, stepped := g.Advance(t1.Add(g.Interval())); !stepped {
		t.Error("resumed game did not step after a full interval")
	}
}

func TestStartResumesFromPause(t *testing.T) {
	g := newTestGame()
	g.Start(t0)
	g.TogglePause(t0)
	g.Start(t0.Add(time.Second))
	if g.State() != StateRunning {
		t.Errorf("state = %v, want running", g.State())
	}
}

func TestSpeedChangeFiresImmediately(t *testing.T) {
	g := newTestGame()
	g.Start(t0)
	g.Advance(t0)

	g.SetSpeed(8)
	if g.Interval() != SpeedToInterval(8, 1, 10) {
		t.Errorf("interval = %v", g.Interval())
	}
	if _, stepped := g.Advance(t0.Add(time.Millisecond)); !stepped {
		t.Error("speed change should make the next step immediate")
	}

	g.SetSpeed(99)
	if g.Speed() != 10 {
		t.Errorf("speed = %d, want clamped to 10", g.Speed())
	}
	g.SetSpeed(-5)
	if g.Speed() != 1 {
		t.Errorf("speed = %d, want clamped to 1", g.Speed())
	}
}

func TestEndRecordsScoreOnce(t *testing.T) {
	store := storage.NewMemoryStore()
	g := newTestGame(WithStore(store), WithNow(fixedNow))
	g.SetPlayerName("  ada ")
	g.session = testSession(20, []Cell{{19, 5}, {18, 5}, {17, 5}}, Right, Cell{0, 0})
	g.session.score = 3
	g.Start(t0)

	if result, _ := g.Advance(t0); result != HitWall {
		t.Fatalf("result = %v, want hit_wall", result)
	}
	g.Forfeit()
	g.Advance(t0.Add(time.Second))
	g.end(HitWall, "again")

	lb := g.Leaderboard()
	if len(lb) != 1 {
		t.Fatalf("leaderboard has %d entries, want 1", len(lb))
	}
	if lb[0] != (Entry{Name: "ada", Score: 3, Timestamp: t0.UnixMilli()}) {
		t.Errorf("entry = %+v", lb[0])
	}

	raw, ok, _ := store.Get(context.Background(), LeaderboardKey)
	if !ok || len(DecodeLeaderboard(raw)) != 1 {
		t.Errorf("stored leaderboard = %q", raw)
	}
	games, _ := store.RecentGames(context.Background(), 10)
	if len(games) != 1 || games[0].Reason != "hit_wall" || games[0].Player != "ada" {
		t.Errorf("history = %+v", games)
	}
}

func TestForfeitRecordsScore(t *testing.T) {
	store := storage.NewMemoryStore()
	g := newTestGame(WithStore(store))
	g.Start(t0)
	g.session.score = 2

	g.Forfeit()
	if g.State() != StateEnded {
		t.Fatalf("state = %v, want ended", g.State())
	}
	if len(g.Leaderboard()) != 1 {
		t.Errorf("leaderboard = %+v", g.Leaderboard())
	}
	games, _ := store.RecentGames(context.Background(), 1)
	if len(games) != 1 || games[0].Reason != "forfeit" {
		t.Errorf("history = %+v", games)
	}
}

func TestForfeitIgnoredWhenIdle(t *testing.T) {
	g := newTestGame()
	g.Forfeit()
	if g.State() != StateIdle {
		t.Errorf("state = %v, want idle", g.State())
	}
}

func TestEatingRaisesHighScore(t *testing.T) {
	store := storage.NewMemoryStore()
	g := newTestGame(WithStore(store))
	g.session = testSession(20, []Cell{{8, 10}, {7, 10}, {6, 10}}, Right, Cell{9, 10})
	g.Start(t0)

	if result, _ := g.Advance(t0); result != Ate {
		t.Fatalf("result = %v, want ate", result)
	}
	if g.HighScore() != 1 {
		t.Errorf("high score = %d, want 1", g.HighScore())
	}
	if raw, _, _ := store.Get(context.Background(), HighScoreKey); raw != "1" {
		t.Errorf("stored high score = %q", raw)
	}
}

func TestLoadRecords(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	store.Set(ctx, HighScoreKey, "15")
	store.Set(ctx, LeaderboardKey, `[{"name":"ada","score":15,"timestamp":1},{"name":"bob","score":4,"timestamp":2}]`)

	g := newTestGame(WithStore(store))
	g.LoadRecords(ctx)
	if g.HighScore() != 15 {
		t.Errorf("high score = %d, want 15", g.HighScore())
	}
	if lb := g.Leaderboard(); len(lb) != 2 || lb[0].Name != "ada" {
		t.Errorf("leaderboard = %+v", lb)
	}
}

func TestLoadRecordsMalformed(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	store.Set(ctx, HighScoreKey, "lots")
	store.Set(ctx, LeaderboardKey, `{"not":"an array"}`)

	g := newTestGame(WithStore(store))
	g.LoadRecords(ctx)
	if g.HighScore() != 0 || len(g.Leaderboard()) != 0 {
		t.Errorf("expected empty records, got %d and %+v", g.HighScore(), g.Leaderboard())
	}
}

func TestStoreFailuresAreNotFatal(t *testing.T) {
	g := newTestGame(WithStore(failingStore{}))
	g.LoadRecords(context.Background())

	g.session = testSession(20, []Cell{{8, 10}, {7, 10}, {6, 10}}, Right, Cell{9, 10})
	g.Start(t0)
	g.Advance(t0)
	g.Forfeit()

	if g.HighScore() != 1 || len(g.Leaderboard()) != 1 {
		t.Errorf("in-memory records lost: %d, %+v", g.HighScore(), g.Leaderboard())
	}
}

func TestResetFromEnded(t *testing.T) {
	g := newTestGame()
	g.Start(t0)
	g.session.score = 4
	g.Forfeit()

	g.Start(t0)
	if g.State() != StateEnded {
		t.Fatalf("start from ended should be ignored, state = %v", g.State())
	}

	g.Reset()
	if g.State() != StateIdle || g.Score() != 0 || len(g.Session().Snake()) != 3 {
		t.Errorf("reset left state %v score %d", g.State(), g.Score())
	}
	if len(g.Leaderboard()) != 1 {
		t.Error("leaderboard should outlive the session")
	}
}

func TestRestart(t *testing.T) {
	g := newTestGame()
	g.Start(t0)
	g.Forfeit()
	g.Restart(t0)
	if g.State() != StateRunning {
		t.Errorf("state = %v, want running", g.State())
	}
}

func TestDirectionIgnoredWhilePaused(t *testing.T) {
	g := newTestGame()
	g.Start(t0)
	g.TogglePause(t0)
	g.RequestDirection(Up)
	if g.Session().Pending() != Right {
		t.Errorf("pending = %v, want right", g.Session().Pending())
	}

	g.TogglePause(t0)
	g.RequestDirection(Up)
	if g.Session().Pending() != Up {
		t.Errorf("pending = %v, want up", g.Session().Pending())
	}
}

func TestObstacleSettings(t *testing.T) {
	g := newTestGame()
	rev := g.Revision()

	g.SetObstaclesEnabled(true)
	if n := len(g.Session().Obstacles()); n != 12 {
		t.Errorf("got %d obstacles, want 12", n)
	}
	if g.Revision() == rev {
		t.Error("obstacle change did not mark the view dirty")
	}

	g.SetObstacleLimit(17)
	if n := len(g.Session().Obstacles()); n != 17 {
		t.Errorf("got %d obstacles, want 17", n)
	}
	g.SetObstacleLimit(500)
	if g.ObstacleLimit() != MaxObstacles || len(g.Session().Obstacles()) != MaxObstacles {
		t.Errorf("limit %d, obstacles %d", g.ObstacleLimit(), len(g.Session().Obstacles()))
	}

	food, ok := g.Session().Food()
	if !ok || NewCellSet(g.Session().Obstacles()).Has(food) {
		t.Errorf("food %v (ok %v) collides with obstacles", food, ok)
	}

	g.SetObstaclesEnabled(false)
	if n := len(g.Session().Obstacles()); n != 0 {
		t.Errorf("got %d obstacles after disabling", n)
	}
	g.SetObstacleLimit(3)
	if n := len(g.Session().Obstacles()); n != 0 {
		t.Errorf("limit change regenerated while disabled: %d", n)
	}
}

func TestObstaclesFillingBoardWins(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Grid.Size = 8
	cfg.Obstacles.Limit = MaxObstacles
	g := New(cfg, core.RuntimeConfig{Seed: 1})
	g.Start(t0)

	g.SetObstaclesEnabled(true)
	if g.State() != StateEnded || g.LastResult() != Won {
		t.Errorf("state %v result %v, want ended/won", g.State(), g.LastResult())
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame()
	g2 := newTestGame()

	now := t0
	for i := 0; i < 200; i++ {
		in := core.NewInputFrame()
		switch i {
		case 0:
			in.Set(core.ActionStart)
		case 5:
			in.Set(core.ActionDown)
		case 12:
			in.Set(core.ActionLeft)
		case 20:
			in.Set(core.ActionUp)
		}
		g1.Update(in, now)
		g2.Update(in, now)
		now = now.Add(g1.Interval())
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestEndReason(t *testing.T) {
	g := newTestGame()
	if g.EndReason() != "" {
		t.Errorf("idle game has end reason %q", g.EndReason())
	}
	g.Start(t0)
	g.Forfeit()
	if g.EndReason() != "forfeit" {
		t.Errorf("end reason = %q, want forfeit", g.EndReason())
	}

	g.Reset()
	g.session = testSession(20, []Cell{{0, 5}, {1, 5}, {2, 5}}, Left, Cell{10, 10})
	g.Start(t0)
	g.Advance(t0)
	if g.EndReason() != "hit_wall" {
		t.Errorf("end reason = %q, want hit_wall", g.EndReason())
	}
}

func TestSharedStoreMergesLeaderboards(t *testing.T) {
	store := storage.NewMemoryStore()
	a := newTestGame(WithStore(store), WithNow(fixedNow))
	b := newTestGame(WithStore(store), WithNow(func() time.Time { return t0.Add(time.Second) }))
	a.SetPlayerName("ada")
	b.SetPlayerName("bob")
	a.LoadRecords(context.Background())
	b.LoadRecords(context.Background())

	a.Start(t0)
	a.session.score = 5
	a.Forfeit()

	b.Start(t0)
	b.session.score = 8
	b.Forfeit()

	lb := b.Leaderboard()
	if len(lb) != 2 || lb[0].Name != "bob" || lb[1].Name != "ada" {
		t.Errorf("leaderboard = %+v", lb)
	}
	raw, _, _ := store.Get(context.Background(), LeaderboardKey)
	if len(DecodeLeaderboard(raw)) != 2 {
		t.Errorf("stored leaderboard = %s", raw)
	}
}

func TestSharedStoreHighScoreNeverDrops(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	a := newTestGame(WithStore(store))
	b := newTestGame(WithStore(store))
	a.LoadRecords(ctx)
	b.LoadRecords(ctx)

	b.session = testSession(20, []Cell{{8, 10}, {7, 10}, {6, 10}}, Right, Cell{9, 10})
	b.session.score = 2
	b.Start(t0)
	if result, _ := b.Advance(t0); result != Ate {
		t.Fatalf("b result = %v, want ate", result)
	}
	if raw, _, _ := store.Get(ctx, HighScoreKey); raw != "3" {
		t.Fatalf("stored high score after b = %q, want 3", raw)
	}

	a.session = testSession(20, []Cell{{8, 10}, {7, 10}, {6, 10}}, Right, Cell{9, 10})
	a.Start(t0)
	if result, _ := a.Advance(t0); result != Ate {
		t.Fatalf("a result = %v, want ate", result)
	}
	if raw, _, _ := store.Get(ctx, HighScoreKey); raw != "3" {
		t.Errorf("stored high score after a = %q, want 3", raw)
	}
	if a.HighScore() != 3 {
		t.Errorf("a high score = %d, want the shared 3", a.HighScore())
	}

	a.session.score = 4
	a.updateHighScore()
	if raw, _, _ := store.Get(ctx, HighScoreKey); raw != "4" {
		t.Errorf("stored high score = %q, want 4 once beaten", raw)
	}
}
