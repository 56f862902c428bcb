package dto

type PositionResponse struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type DeliveryPointResponse struct {
	ID        string           `json:"id"`
	Position  PositionResponse `json:"position"`
	Address   string           `json:"address"`
	Delivered bool             `json:"delivered"`
	Priority  string           `json:"priority"`
}

type VehicleResponse struct {
	ID          string           `json:"id"`
	Position    PositionResponse `json:"position"`
	Status      string           `json:"status"`
	Capacity    int              `json:"capacity"`
	CurrentLoad int              `json:"current_load"`
}

type RouteResponse struct {
	ID            string             `json:"id"`
	Path          []PositionResponse `json:"path"`
	TotalDistance int                `json:"total_distance"`
	EstimatedTime int                `json:"estimated_time"`
	OptimizedBy   string             `json:"optimized_by"`
	Stops         int                `json:"stops"`
}

type GridResponse struct {
	GridSize       int                     `json:"grid_size"`
	Depot          PositionResponse        `json:"depot"`
	DeliveryPoints []DeliveryPointResponse `json:"delivery_points"`
	Vehicle        VehicleResponse         `json:"vehicle"`
	Route          *RouteResponse          `json:"route"`
	Obstacles      []PositionResponse      `json:"obstacles"`
}
