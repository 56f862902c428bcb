package domain

type Algorithm string

const (
	AlgorithmNearestNeighbor Algorithm = "nearest_neighbor"
	AlgorithmHeuristic       Algorithm = "ai_heuristic"
	AlgorithmManual          Algorithm = "manual"
)

// Represents a planned round trip from the depot through every pending
// delivery point and back.
//
// Path holds every visited cell, depot first and last. TotalDistance is a
// cost score reported by the planner and is not derived from len(Path).
// A Route is never mutated after a planner returns it.
type Route struct {
	ID            string
	Path          []Position
	TotalDistance int
	EstimatedTime int
	OptimizedBy   Algorithm
}

// Stops is the number of moves along the path.
func (r *Route) Stops() int {
	if r == nil || len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}
