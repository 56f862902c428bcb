package services

import (
	"delivery-sim/internal/domain"
	"math"
	"slices"

	"github.com/sirupsen/logrus"
)

const (
	DefaultNearestNeighborPenalty        = 5
	DefaultNearestNeighborMinutesPerUnit = 2.0
)

// NearestNeighborPlanner plans a delivery tour with a greedy nearest-neighbor
// algorithm.
//
// At each step it moves to the pending point with the lowest traffic-adjusted
// cost. It does not attempt global tour optimization. Ties go to the point
// that appears first in the input, so equal inputs always give equal paths.
type NearestNeighborPlanner struct {
	// Cost added per obstacle cell crossed on a leg.
	Penalty int
	// Minutes of travel per unit of distance.
	MinutesPerUnit float64
}

func NewNearestNeighborPlanner() *NearestNeighborPlanner {
	return &NearestNeighborPlanner{
		Penalty:        DefaultNearestNeighborPenalty,
		MinutesPerUnit: DefaultNearestNeighborMinutesPerUnit,
	}
}

func (p *NearestNeighborPlanner) Algorithm() domain.Algorithm {
	return domain.AlgorithmNearestNeighbor
}

// LegCost is the selection cost of driving from one cell to another.
func (p *NearestNeighborPlanner) LegCost(from, to domain.Position, obstacles domain.ObstacleSet) int {
	return legCost(from, to, obstacles, p.Penalty)
}

func (p *NearestNeighborPlanner) PlanRoute(
	depot domain.Position,
	points []*domain.DeliveryPoint,
	obstacles domain.ObstacleSet,
	hint string,
) *domain.Route {
	remaining := pendingPoints(points)
	tour := newTourBuilder(depot)

	for len(remaining) > 0 {
		best := 0
		bestCost := math.MaxInt

		// Strict comparison keeps the first point on equal cost.
		for i, dp := range remaining {
			cost := p.LegCost(tour.current, dp.Position, obstacles)
			if cost < bestCost {
				best = i
				bestCost = cost
			}
		}

		tour.visit(remaining[best].Position)
		remaining = slices.Delete(remaining, best, best+1)
	}

	// Return leg to the depot closes the tour.
	tour.visit(depot)

	route := &domain.Route{
		ID:            newRouteID("route"),
		Path:          tour.path,
		TotalDistance: tour.distance,
		EstimatedTime: ceilInt(float64(tour.distance) * p.MinutesPerUnit),
		OptimizedBy:   domain.AlgorithmNearestNeighbor,
	}

	logrus.WithFields(logrus.Fields{
		"module":    "planner",
		"algorithm": route.OptimizedBy,
		"distance":  route.TotalDistance,
		"steps":     len(route.Path),
		"obstacles": len(obstacles),
		"hint":      hint,
	}).Debug("route planned")

	return route
}
