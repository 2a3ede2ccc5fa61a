package snake

// StepResult is the outcome of advancing the snake by one cell.
type StepResult int

const (
	Continue StepResult = iota
	Ate
	HitWall
	HitSelf
	HitObstacle
	Won
)

// Terminal reports whether the result ends the session.
func (r StepResult) Terminal() bool {
	return r != Continue && r != Ate
}

// Message returns the text shown to the player for a terminal result.
func (r StepResult) Message() string {
	switch r {
	case HitWall:
		return "You hit the wall!"
	case HitSelf:
		return "You ran into yourself!"
	case HitObstacle:
		return "You hit an obstacle!"
	case Won:
		return "You win! No space left."
	default:
		return ""
	}
}

func (r StepResult) String() string {
	switch r {
	case Continue:
		return "continue"
	case Ate:
		return "ate"
	case HitWall:
		return "hit_wall"
	case HitSelf:
		return "hit_self"
	case HitObstacle:
		return "hit_obstacle"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// Session is the state of one play-through: snake, heading, food, obstacles
// and score. It is discarded and rebuilt on every reset.
type Session struct {
	grid   Grid
	placer *Placer

	snake     []Cell    // Head at index 0
	direction Direction // Direction used by the last step
	pending   Direction // Applied at the start of the next step

	food    Cell
	hasFood bool

	obstacles   []Cell
	obstacleSet CellSet

	score int
}

// NewSession creates the starting position: a three-cell snake heading right,
// obstacles when enabled, then food.
func NewSession(grid Grid, placer *Placer, obstaclesEnabled bool, obstacleLimit int) *Session {
	hx, hy := grid.Size*2/5, grid.Size/2
	s := &Session{
		grid:   grid,
		placer: placer,
		snake: []Cell{
			{X: hx, Y: hy},
			{X: hx - 1, Y: hy},
			{X: hx - 2, Y: hy},
		},
		direction: Right,
		pending:   Right,
	}

	if obstaclesEnabled {
		s.RegenerateObstacles(obstacleLimit)
	}
	s.placeFood()
	return s
}

// RequestDirection buffers d for the next step.
// A reversal of the active direction is dropped silently.
func (s *Session) RequestDirection(d Direction) bool {
	if !d.Valid() || s.direction.IsOpposite(d) {
		return false
	}
	s.pending = d
	return true
}

// Step moves the snake one cell and resolves collisions and food.
// On a collision the snake is left untouched.
func (s *Session) Step() StepResult {
	s.direction = s.pending
	head := s.snake[0].Add(s.direction)

	if !s.grid.InBounds(head) {
		return HitWall
	}
	// The tail still occupies its cell during the check; following it is a collision.
	for _, seg := range s.snake[1:] {
		if seg == head {
			return HitSelf
		}
	}
	if s.obstacleSet.Has(head) {
		return HitObstacle
	}

	s.snake = append(s.snake, Cell{})
	copy(s.snake[1:], s.snake)
	s.snake[0] = head

	if s.hasFood && head == s.food {
		s.score++
		if !s.placeFood() {
			return Won
		}
		return Ate
	}

	s.snake = s.snake[:len(s.snake)-1]
	return Continue
}

// RegenerateObstacles replaces all obstacles with a fresh random set of up
// to limit cells and moves the food if it is now covered.
func (s *Session) RegenerateObstacles(limit int) {
	s.setObstacles(s.placer.PlaceObstacles(NewCellSet(s.snake), limit))
	if s.hasFood && s.obstacleSet.Has(s.food) {
		s.placeFood()
	}
}

// ClearObstacles removes every obstacle.
func (s *Session) ClearObstacles() {
	s.setObstacles(nil)
}

func (s *Session) setObstacles(cells []Cell) {
	s.obstacles = cells
	s.obstacleSet = NewCellSet(cells)
}

// placeFood moves the food to a random free cell.
// It returns false, leaving no food on the board, when none is free.
func (s *Session) placeFood() bool {
	s.food, s.hasFood = s.placer.PlaceFood(NewCellSet(s.snake, s.obstacles))
	return s.hasFood
}

// Snake returns the body, head first. The slice must not be modified.
func (s *Session) Snake() []Cell {
	return s.snake
}

// Head returns the head cell.
func (s *Session) Head() Cell {
	return s.snake[0]
}

// Direction returns the direction used by the last step.
func (s *Session) Direction() Direction {
	return s.direction
}

// Pending returns the direction the next step will use.
func (s *Session) Pending() Direction {
	return s.pending
}

// Food returns the food cell; ok is false when there is none.
func (s *Session) Food() (cell Cell, ok bool) {
	return s.food, s.hasFood
}

// Obstacles returns the obstacle cells. The slice must not be modified.
func (s *Session) Obstacles() []Cell {
	return s.obstacles
}

// Score returns the number of food items eaten.
func (s *Session) Score() int {
	return s.score
}
