package config

import (
	"delivery-sim/internal/domain"
	"delivery-sim/internal/services"
	"math/rand/v2"
	"time"
)

// SimulationConfig holds the scenario settings.
type SimulationConfig struct {
	GridSize        int           `mapstructure:"grid_size" validate:"min=1,max=100"`
	DepotX          int           `mapstructure:"depot_x" validate:"min=0"`
	DepotY          int           `mapstructure:"depot_y" validate:"min=0"`
	DeliveryCount   int           `mapstructure:"delivery_count" validate:"min=0"`
	TickInterval    time.Duration `mapstructure:"tick_interval" validate:"gt=0"`
	VehicleID       string        `mapstructure:"vehicle_id" validate:"required"`
	VehicleCapacity int           `mapstructure:"vehicle_capacity" validate:"min=0"`
	HistoryLimit    int           `mapstructure:"history_limit" validate:"min=0"`

	// Zero seeds from the system entropy source.
	Seed uint64 `mapstructure:"seed"`

	AutoReplan bool `mapstructure:"auto_replan"`
}

// PlannerConfig holds the tuning constants of both route planners.
type PlannerConfig struct {
	NearestNeighborPenalty        int     `mapstructure:"nearest_neighbor_penalty" validate:"min=0"`
	NearestNeighborMinutesPerUnit float64 `mapstructure:"nearest_neighbor_minutes_per_unit" validate:"gt=0"`
	HeuristicPenalty              int     `mapstructure:"heuristic_penalty" validate:"min=0"`
	HeuristicDiscount             float64 `mapstructure:"heuristic_discount" validate:"gt=0,lte=1"`
	HeuristicMinutesPerUnit       float64 `mapstructure:"heuristic_minutes_per_unit" validate:"gt=0"`
	HeuristicLookaheadWeight      float64 `mapstructure:"heuristic_lookahead_weight" validate:"min=0"`
}

// HTTPConfig holds the API server settings.
type HTTPConfig struct {
	Addr string `mapstructure:"addr" validate:"required"`

	// Sustained commands per second and burst size for mutating endpoints.
	CommandRate  float64 `mapstructure:"command_rate" validate:"gt=0"`
	CommandBurst int     `mapstructure:"command_burst" validate:"min=1"`

	FeedSize        int           `mapstructure:"feed_size" validate:"min=1"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

func (c SimulationConfig) Depot() domain.Position {
	return domain.Position{X: c.DepotX, Y: c.DepotY}
}

// Service converts the settings into the simulation's own config type.
func (c SimulationConfig) Service() services.SimulationConfig {
	return services.SimulationConfig{
		GridSize:        c.GridSize,
		Depot:           c.Depot(),
		DeliveryCount:   c.DeliveryCount,
		TickInterval:    c.TickInterval,
		VehicleID:       c.VehicleID,
		VehicleCapacity: c.VehicleCapacity,
		HistoryLimit:    c.HistoryLimit,
		AutoReplan:      c.AutoReplan,
	}
}

// Planners builds the baseline and heuristic planners from the tuning
// constants.
func (c PlannerConfig) Planners() (*services.NearestNeighborPlanner, *services.HeuristicPlanner) {
	baseline := &services.NearestNeighborPlanner{
		Penalty:        c.NearestNeighborPenalty,
		MinutesPerUnit: c.NearestNeighborMinutesPerUnit,
	}
	heuristic := &services.HeuristicPlanner{
		Penalty:         c.HeuristicPenalty,
		Discount:        c.HeuristicDiscount,
		MinutesPerUnit:  c.HeuristicMinutesPerUnit,
		LookaheadWeight: c.HeuristicLookaheadWeight,
	}
	return baseline, heuristic
}

// Rand returns the simulation's random source, seeded from Seed when set.
func (c SimulationConfig) Rand() *rand.Rand {
	if c.Seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(c.Seed, c.Seed))
}
