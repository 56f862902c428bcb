package domain

import "fmt"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities in the order used for uniform sampling.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Weight used to rank points against their depot distance.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	default:
		return 1
	}
}

// Score adjustment applied by the heuristic planner. Higher priority lowers
// the score so the point is picked earlier.
func (p Priority) Bonus() int {
	switch p {
	case PriorityHigh:
		return -2
	case PriorityMedium:
		return -1
	default:
		return 0
	}
}

// Represents a single delivery target on the grid.
// Delivered is the only field that changes after creation, and it only
// ever flips from false to true.
type DeliveryPoint struct {
	ID        string
	Position  Position
	Address   string
	Delivered bool
	Priority  Priority
}

// MarkDelivered flips the delivered flag exactly once.
func (dp *DeliveryPoint) MarkDelivered() error {
	if dp.Delivered {
		return fmt.Errorf("mark delivered: point %s already delivered", dp.ID)
	}
	dp.Delivered = true
	return nil
}
