package domain

import "sort"

// Set of grid cells currently carrying a traffic penalty.
type ObstacleSet map[Position]struct{}

func NewObstacleSet(cells ...Position) ObstacleSet {
	s := make(ObstacleSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

func (s ObstacleSet) Contains(p Position) bool {
	_, ok := s[p]
	return ok
}

// CountOn returns how many cells of path are obstacles.
func (s ObstacleSet) CountOn(path []Position) int {
	n := 0
	for _, p := range path {
		if s.Contains(p) {
			n++
		}
	}
	return n
}

// Cells returns the obstacle cells sorted row-major.
func (s ObstacleSet) Cells() []Position {
	out := make([]Position, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}
