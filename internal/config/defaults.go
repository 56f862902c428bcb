package config

import (
	"delivery-sim/internal/services"
	"time"
)

// Default returns the stock configuration.
func Default() *Config {
	sim := services.DefaultSimulationConfig()
	nn := services.NewNearestNeighborPlanner()
	h := services.NewHeuristicPlanner()

	return &Config{
		Simulation: SimulationConfig{
			GridSize:        sim.GridSize,
			DepotX:          sim.Depot.X,
			DepotY:          sim.Depot.Y,
			DeliveryCount:   sim.DeliveryCount,
			TickInterval:    sim.TickInterval,
			VehicleID:       sim.VehicleID,
			VehicleCapacity: sim.VehicleCapacity,
			HistoryLimit:    sim.HistoryLimit,
			AutoReplan:      sim.AutoReplan,
		},
		Planner: PlannerConfig{
			NearestNeighborPenalty:        nn.Penalty,
			NearestNeighborMinutesPerUnit: nn.MinutesPerUnit,
			HeuristicPenalty:              h.Penalty,
			HeuristicDiscount:             h.Discount,
			HeuristicMinutesPerUnit:       h.MinutesPerUnit,
			HeuristicLookaheadWeight:      h.LookaheadWeight,
		},
		HTTP: HTTPConfig{
			Addr:            ":8080",
			CommandRate:     5,
			CommandBurst:    10,
			FeedSize:        50,
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// SetDefaults fills fields left at their zero value. Depot coordinates,
// penalties, history limit, seed and auto_replan are legitimately zero and
// are left alone.
func SetDefaults(cfg *Config) {
	d := Default()

	if cfg.Simulation.GridSize == 0 {
		cfg.Simulation.GridSize = d.Simulation.GridSize
	}
	if cfg.Simulation.TickInterval == 0 {
		cfg.Simulation.TickInterval = d.Simulation.TickInterval
	}
	if cfg.Simulation.VehicleID == "" {
		cfg.Simulation.VehicleID = d.Simulation.VehicleID
	}

	if cfg.Planner.NearestNeighborMinutesPerUnit == 0 {
		cfg.Planner.NearestNeighborMinutesPerUnit = d.Planner.NearestNeighborMinutesPerUnit
	}
	if cfg.Planner.HeuristicDiscount == 0 {
		cfg.Planner.HeuristicDiscount = d.Planner.HeuristicDiscount
	}
	if cfg.Planner.HeuristicMinutesPerUnit == 0 {
		cfg.Planner.HeuristicMinutesPerUnit = d.Planner.HeuristicMinutesPerUnit
	}

	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = d.HTTP.Addr
	}
	if cfg.HTTP.CommandRate == 0 {
		cfg.HTTP.CommandRate = d.HTTP.CommandRate
	}
	if cfg.HTTP.CommandBurst == 0 {
		cfg.HTTP.CommandBurst = d.HTTP.CommandBurst
	}
	if cfg.HTTP.FeedSize == 0 {
		cfg.HTTP.FeedSize = d.HTTP.FeedSize
	}
	if cfg.HTTP.ShutdownTimeout == 0 {
		cfg.HTTP.ShutdownTimeout = d.HTTP.ShutdownTimeout
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = d.Logging.Level
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = d.Logging.Format
	}
}
