package snake

// Snapshot captures the observable game state for determinism tests.
type Snapshot struct {
	State     State
	Result    StepResult
	Score     int
	HighScore int
	SnakeLen  int
	Head      Cell
	Dir       Direction
	Food      Cell
	HasFood   bool
	Obstacles int
	Speed     int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	food, hasFood := g.session.Food()
	return Snapshot{
		State:     g.state,
		Result:    g.lastResult,
		Score:     g.session.Score(),
		HighScore: g.highScore,
		SnakeLen:  len(g.session.Snake()),
		Head:      g.session.Head(),
		Dir:       g.session.Direction(),
		Food:      food,
		HasFood:   hasFood,
		Obstacles: len(g.session.Obstacles()),
		Speed:     g.speed,
	}
}
