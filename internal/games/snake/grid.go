package snake

// DefaultGridSize is the width and height of the playing field.
const DefaultGridSize = 20

// Cell is a grid coordinate, 0-indexed from the top-left corner.
type Cell struct {
	X, Y int
}

// Add returns the cell one step away in direction d.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Grid is a square NxN playing field.
type Grid struct {
	Size int
}

// InBounds reports whether c lies on the grid.
func (g Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.Size && c.Y < g.Size
}

// Area returns the number of cells on the grid.
func (g Grid) Area() int {
	return g.Size * g.Size
}

// FreeCells lists every grid cell not in occupied.
// Cells are scanned column by column (x outer, y inner) so the order is stable.
func (g Grid) FreeCells(occupied CellSet) []Cell {
	free := make([]Cell, 0, max(g.Area()-len(occupied), 0))
	for x := 0; x < g.Size; x++ {
		for y := 0; y < g.Size; y++ {
			c := Cell{X: x, Y: y}
			if !occupied.Has(c) {
				free = append(free, c)
			}
		}
	}
	return free
}

// CellSet is an unordered set of cells.
type CellSet map[Cell]struct{}

// NewCellSet builds a set from any number of cell slices.
func NewCellSet(groups ...[]Cell) CellSet {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	s := make(CellSet, n)
	for _, g := range groups {
		for _, c := range g {
			s[c] = struct{}{}
		}
	}
	return s
}

// Has reports whether c is in the set. A nil set is empty.
func (s CellSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Add inserts c into the set.
func (s CellSet) Add(c Cell) {
	s[c] = struct{}{}
}
