package domain

import "fmt"

// Default side length of the square delivery grid.
const GridSize = 10

// Immutable grid cell coordinates.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }

// InGrid reports whether p lies inside a gridSize x gridSize grid.
func (p Position) InGrid(gridSize int) bool {
	return p.X >= 0 && p.X < gridSize && p.Y >= 0 && p.Y < gridSize
}

// Manhattan distance between two cells. No diagonal moves exist on the grid.
func Distance(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// ExpandPath returns one cell per unit step from `from` (exclusive) to `to`
// (inclusive), moving along X first and then along Y.
//
// The L shape is a fixed tie-break, not a search: obstacles are not avoided,
// callers price them as penalties. Equal endpoints yield an empty path.
func ExpandPath(from, to Position) []Position {
	steps := make([]Position, 0, Distance(from, to))
	cur := from

	for cur.X != to.X {
		if cur.X < to.X {
			cur.X++
		} else {
			cur.X--
		}
		steps = append(steps, cur)
	}

	for cur.Y != to.Y {
		if cur.Y < to.Y {
			cur.Y++
		} else {
			cur.Y--
		}
		steps = append(steps, cur)
	}

	return steps
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
