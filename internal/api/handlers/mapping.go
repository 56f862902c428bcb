package handlers

import (
	"delivery-sim/internal/api/dto"
	"delivery-sim/internal/domain"
	"delivery-sim/internal/services"

	"github.com/samber/lo"
)

func toPosition(p domain.Position) dto.PositionResponse {
	return dto.PositionResponse{X: p.X, Y: p.Y}
}

func toPositions(ps []domain.Position) []dto.PositionResponse {
	return lo.Map(ps, func(p domain.Position, _ int) dto.PositionResponse {
		return toPosition(p)
	})
}

func toRoute(r domain.Route) dto.RouteResponse {
	return dto.RouteResponse{
		ID:            r.ID,
		Path:          toPositions(r.Path),
		TotalDistance: r.TotalDistance,
		EstimatedTime: r.EstimatedTime,
		OptimizedBy:   string(r.OptimizedBy),
		Stops:         r.Stops(),
	}
}

func toGrid(g services.GridSnapshot) dto.GridResponse {
	res := dto.GridResponse{
		GridSize: g.GridSize,
		Depot:    toPosition(g.Depot),
		DeliveryPoints: lo.Map(g.DeliveryPoints, func(dp domain.DeliveryPoint, _ int) dto.DeliveryPointResponse {
			return dto.DeliveryPointResponse{
				ID:        dp.ID,
				Position:  toPosition(dp.Position),
				Address:   dp.Address,
				Delivered: dp.Delivered,
				Priority:  string(dp.Priority),
			}
		}),
		Vehicle: dto.VehicleResponse{
			ID:          g.Vehicle.ID,
			Position:    toPosition(g.Vehicle.Position),
			Status:      string(g.Vehicle.Status),
			Capacity:    g.Vehicle.Capacity,
			CurrentLoad: g.Vehicle.CurrentLoad,
		},
		Obstacles: toPositions(g.ObstacleCells),
	}

	if g.Route != nil {
		route := toRoute(*g.Route)
		res.Route = &route
	}

	return res
}

func toState(s domain.SimulationState) dto.SimulationStateResponse {
	return dto.SimulationStateResponse{
		Status:         string(s.Status()),
		Running:        s.Running,
		Paused:         s.Paused,
		CurrentStep:    s.CurrentStep,
		TotalSteps:     s.TotalSteps,
		TickIntervalMS: s.TickInterval.Milliseconds(),
	}
}

func toEvent(ev domain.DisruptionEvent) dto.EventResponse {
	return dto.EventResponse{
		ID:          ev.ID,
		Type:        string(ev.Type),
		Location:    toPosition(ev.Location),
		Description: ev.Description,
		Severity:    string(ev.Severity),
		CreatedAt:   ev.CreatedAt,
		ResolvedAt:  ev.ResolvedAt,
		Active:      ev.Active,
	}
}

func toEvents(evs []domain.DisruptionEvent) []dto.EventResponse {
	return lo.Map(evs, func(ev domain.DisruptionEvent, _ int) dto.EventResponse {
		return toEvent(ev)
	})
}

func toStatistics(s services.RouteStatistics) dto.StatisticsResponse {
	return dto.StatisticsResponse{
		HasRoute:              s.HasRoute,
		Algorithm:             string(s.Algorithm),
		TotalDistance:         s.TotalDistance,
		EstimatedTime:         s.EstimatedTime,
		Stops:                 s.Stops,
		Delivered:             s.Delivered,
		Total:                 s.Total,
		EfficiencyPercent:     s.EfficiencyPercent,
		AvgMinutesPerDelivery: s.AvgMinutesPerDelivery,
		TrafficCells:          s.TrafficCells,
	}
}
