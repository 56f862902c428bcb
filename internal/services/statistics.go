package services

import (
	"delivery-sim/internal/domain"
	"math"

	"github.com/samber/lo"
)

// Progress and cost figures for the active route.
type RouteStatistics struct {
	HasRoute              bool
	Algorithm             domain.Algorithm
	TotalDistance         int
	EstimatedTime         int
	Stops                 int
	Delivered             int
	Total                 int
	EfficiencyPercent     int
	AvgMinutesPerDelivery float64
	TrafficCells          int
}

func ComputeStatistics(route *domain.Route, points []domain.DeliveryPoint, trafficCells int) RouteStatistics {
	delivered := lo.CountBy(points, func(dp domain.DeliveryPoint) bool { return dp.Delivered })
	stats := RouteStatistics{
		Delivered:    delivered,
		Total:        len(points),
		TrafficCells: trafficCells,
	}

	if stats.Total > 0 {
		stats.EfficiencyPercent = int(math.Round(float64(delivered) / float64(stats.Total) * 100))
	}

	if route == nil {
		return stats
	}

	stats.HasRoute = true
	stats.Algorithm = route.OptimizedBy
	stats.TotalDistance = route.TotalDistance
	stats.EstimatedTime = route.EstimatedTime
	stats.Stops = route.Stops()
	if stats.Total > 0 {
		stats.AvgMinutesPerDelivery = float64(route.EstimatedTime) / float64(stats.Total)
	}

	return stats
}
