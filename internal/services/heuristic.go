package services

import (
	"delivery-sim/internal/domain"
	"math"
	"slices"
	"sort"

	"github.com/sirupsen/logrus"
)

const (
	DefaultHeuristicPenalty         = 3
	DefaultHeuristicDiscount        = 0.85
	DefaultHeuristicMinutesPerUnit  = 1.8
	DefaultHeuristicLookaheadWeight = 0.5
)

// HeuristicPlanner is a greedy multi-factor variant of nearest neighbor.
//
// Each candidate is scored by leg distance, a lighter traffic penalty, a
// priority bonus and a one-step lookahead to its closest remaining neighbor.
// The accumulated distance is then scaled by a flat discount. The result is
// not a better tour in any provable sense; the constants are part of the
// planner's observable behavior and must stay stable.
type HeuristicPlanner struct {
	// Cost added per obstacle cell crossed on a leg.
	Penalty int
	// Multiplier applied to the finished tour distance.
	Discount float64
	// Minutes of travel per unit of discounted distance.
	MinutesPerUnit float64
	// Weight of the distance from a candidate to its nearest remaining point.
	LookaheadWeight float64
}

func NewHeuristicPlanner() *HeuristicPlanner {
	return &HeuristicPlanner{
		Penalty:         DefaultHeuristicPenalty,
		Discount:        DefaultHeuristicDiscount,
		MinutesPerUnit:  DefaultHeuristicMinutesPerUnit,
		LookaheadWeight: DefaultHeuristicLookaheadWeight,
	}
}

func (p *HeuristicPlanner) Algorithm() domain.Algorithm {
	return domain.AlgorithmHeuristic
}

// LegCost is the traffic-adjusted part of a candidate's score.
func (p *HeuristicPlanner) LegCost(from, to domain.Position, obstacles domain.ObstacleSet) int {
	return legCost(from, to, obstacles, p.Penalty)
}

// Score ranks candidate i of remaining when standing on current.
func (p *HeuristicPlanner) Score(
	current domain.Position,
	remaining []*domain.DeliveryPoint,
	i int,
	depot domain.Position,
	obstacles domain.ObstacleSet,
) float64 {
	dp := remaining[i]
	base := p.LegCost(current, dp.Position, obstacles) + dp.Priority.Bonus()
	return float64(base) + p.LookaheadWeight*float64(lookahead(remaining, i, depot))
}

func (p *HeuristicPlanner) PlanRoute(
	depot domain.Position,
	points []*domain.DeliveryPoint,
	obstacles domain.ObstacleSet,
	hint string,
) *domain.Route {
	remaining := pendingPoints(points)

	// Seed the scan order by priority per unit of depot distance, best first.
	sort.SliceStable(remaining, func(a, b int) bool {
		return depotRank(depot, remaining[a]) > depotRank(depot, remaining[b])
	})

	tour := newTourBuilder(depot)

	for len(remaining) > 0 {
		best := 0
		bestScore := math.Inf(1)

		for i := range remaining {
			score := p.Score(tour.current, remaining, i, depot, obstacles)
			if score < bestScore {
				best = i
				bestScore = score
			}
		}

		tour.visit(remaining[best].Position)
		remaining = slices.Delete(remaining, best, best+1)
	}

	tour.visit(depot)

	total := ceilInt(float64(tour.distance) * p.Discount)
	route := &domain.Route{
		ID:            newRouteID("ai-route"),
		Path:          tour.path,
		TotalDistance: total,
		EstimatedTime: ceilInt(float64(total) * p.MinutesPerUnit),
		OptimizedBy:   domain.AlgorithmHeuristic,
	}

	logrus.WithFields(logrus.Fields{
		"module":    "planner",
		"algorithm": route.OptimizedBy,
		"distance":  route.TotalDistance,
		"raw":       tour.distance,
		"steps":     len(route.Path),
		"obstacles": len(obstacles),
		"hint":      hint,
	}).Debug("route planned")

	return route
}

func depotRank(depot domain.Position, dp *domain.DeliveryPoint) float64 {
	return float64(dp.Priority.Weight()) / float64(domain.Distance(depot, dp.Position))
}

// lookahead is the distance from remaining[i] to the closest other pending
// point, or back to the depot when it is the last one.
func lookahead(remaining []*domain.DeliveryPoint, i int, depot domain.Position) int {
	if len(remaining) == 1 {
		return domain.Distance(remaining[i].Position, depot)
	}

	nearest := math.MaxInt
	for j, other := range remaining {
		if j == i {
			continue
		}
		if d := domain.Distance(remaining[i].Position, other.Position); d < nearest {
			nearest = d
		}
	}
	return nearest
}
