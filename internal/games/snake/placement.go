package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// MaxObstacles caps the obstacle count regardless of configuration.
const MaxObstacles = 100

// Placer picks random free cells for food and obstacles.
// All randomness flows through one seeded source so games replay deterministically.
type Placer struct {
	grid Grid
	rng  *rand.Rand
}

// NewPlacer creates a placer for grid seeded with seed.
func NewPlacer(grid Grid, seed int64) *Placer {
	return &Placer{
		grid: grid,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// PlaceFood picks a uniformly random free cell.
// ok is false when the grid has no free cell left.
func (p *Placer) PlaceFood(occupied CellSet) (cell Cell, ok bool) {
	free := p.grid.FreeCells(occupied)
	if len(free) == 0 {
		return Cell{}, false
	}
	return free[p.rng.Intn(len(free))], true
}

// PlaceObstacles regenerates the whole obstacle set.
// Only the snake is excluded; previous obstacles are discarded, not kept.
func (p *Placer) PlaceObstacles(snake CellSet, target int) []Cell {
	target = core.Clamp(target, 0, MaxObstacles)
	free := p.grid.FreeCells(snake)
	p.shuffle(free)

	n := min(target, len(free))
	obstacles := make([]Cell, n)
	copy(obstacles, free[:n])
	return obstacles
}

// shuffle is a Fisher-Yates permutation driven by the placer's source.
func (p *Placer) shuffle(cells []Cell) {
	for i := len(cells) - 1; i > 0; i-- {
		j := p.rng.Intn(i + 1)
		cells[i], cells[j] = cells[j], cells[i]
	}
}
