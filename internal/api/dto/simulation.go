package dto

type SimulationStateResponse struct {
	Status         string `json:"status"`
	Running        bool   `json:"running"`
	Paused         bool   `json:"paused"`
	CurrentStep    int    `json:"current_step"`
	TotalSteps     int    `json:"total_steps"`
	TickIntervalMS int64  `json:"tick_interval_ms"`
}

type TickIntervalRequest struct {
	TickIntervalMS int64 `json:"tick_interval_ms"`
}

type StatisticsResponse struct {
	HasRoute              bool    `json:"has_route"`
	Algorithm             string  `json:"algorithm,omitempty"`
	TotalDistance         int     `json:"total_distance"`
	EstimatedTime         int     `json:"estimated_time"`
	Stops                 int     `json:"stops"`
	Delivered             int     `json:"delivered"`
	Total                 int     `json:"total"`
	EfficiencyPercent     int     `json:"efficiency_percent"`
	AvgMinutesPerDelivery float64 `json:"avg_minutes_per_delivery"`
	TrafficCells          int     `json:"traffic_cells"`
}
