package services

import (
	"delivery-sim/internal/domain"
	"math"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// RoutePlanner turns the pending delivery points into a depot round trip.
//
// Planners are pure: they never mutate the points they are given, never
// fail for well-formed input, and always return a fresh Route. The hint is
// free text describing the disruption that prompted the request; it is
// logged but never scored.
type RoutePlanner interface {
	Algorithm() domain.Algorithm
	PlanRoute(
		depot domain.Position,
		points []*domain.DeliveryPoint,
		obstacles domain.ObstacleSet,
		hint string,
	) *domain.Route
}

// Select the planner for an algorithm, defaulting to the baseline.
func PlannerFor(alg domain.Algorithm, baseline, heuristic RoutePlanner) RoutePlanner {
	if alg == domain.AlgorithmHeuristic {
		return heuristic
	}
	return baseline
}

func pendingPoints(points []*domain.DeliveryPoint) []*domain.DeliveryPoint {
	return lo.Filter(points, func(dp *domain.DeliveryPoint, _ int) bool {
		return dp != nil && !dp.Delivered
	})
}

// legCost is the travel distance plus a flat penalty per obstacle cell on
// the L-shaped path between two cells.
func legCost(from, to domain.Position, obstacles domain.ObstacleSet, penalty int) int {
	return domain.Distance(from, to) + penalty*obstacles.CountOn(domain.ExpandPath(from, to))
}

func ceilInt(v float64) int {
	return int(math.Ceil(v))
}

func newRouteID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// tourBuilder accumulates the cell path and unpenalized distance of a tour.
type tourBuilder struct {
	path     []domain.Position
	current  domain.Position
	distance int
}

func newTourBuilder(depot domain.Position) *tourBuilder {
	return &tourBuilder{
		path:    []domain.Position{depot},
		current: depot,
	}
}

func (b *tourBuilder) visit(to domain.Position) {
	b.path = append(b.path, domain.ExpandPath(b.current, to)...)
	b.distance += domain.Distance(b.current, to)
	b.current = to
}
