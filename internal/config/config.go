package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the main configuration struct combining all sub-configs.
type Config struct {
	Simulation SimulationConfig `mapstructure:"simulation"`
	Planner    PlannerConfig    `mapstructure:"planner"`
	HTTP       HTTPConfig       `mapstructure:"http"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// LoadConfig loads configuration with priority:
// 1. Environment variables (DSIM_ prefix)
// 2. Config file (config.yaml)
// 3. Defaults
func LoadConfig(configPath string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix("DSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Env vars are only consulted for keys viper already knows about.
	registerDefaults(v, Default())

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("load config: read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("load config: unmarshal: %w", err)
	}

	SetDefaults(&cfg)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return &cfg, nil
}

// MustLoadConfig loads configuration and panics on error.
func MustLoadConfig(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
	return cfg
}

// Get reads a raw environment variable, falling back when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func registerDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("simulation.grid_size", d.Simulation.GridSize)
	v.SetDefault("simulation.depot_x", d.Simulation.DepotX)
	v.SetDefault("simulation.depot_y", d.Simulation.DepotY)
	v.SetDefault("simulation.delivery_count", d.Simulation.DeliveryCount)
	v.SetDefault("simulation.tick_interval", d.Simulation.TickInterval)
	v.SetDefault("simulation.vehicle_id", d.Simulation.VehicleID)
	v.SetDefault("simulation.vehicle_capacity", d.Simulation.VehicleCapacity)
	v.SetDefault("simulation.history_limit", d.Simulation.HistoryLimit)
	v.SetDefault("simulation.seed", d.Simulation.Seed)
	v.SetDefault("simulation.auto_replan", d.Simulation.AutoReplan)

	v.SetDefault("planner.nearest_neighbor_penalty", d.Planner.NearestNeighborPenalty)
	v.SetDefault("planner.nearest_neighbor_minutes_per_unit", d.Planner.NearestNeighborMinutesPerUnit)
	v.SetDefault("planner.heuristic_penalty", d.Planner.HeuristicPenalty)
	v.SetDefault("planner.heuristic_discount", d.Planner.HeuristicDiscount)
	v.SetDefault("planner.heuristic_minutes_per_unit", d.Planner.HeuristicMinutesPerUnit)
	v.SetDefault("planner.heuristic_lookahead_weight", d.Planner.HeuristicLookaheadWeight)

	v.SetDefault("http.addr", d.HTTP.Addr)
	v.SetDefault("http.command_rate", d.HTTP.CommandRate)
	v.SetDefault("http.command_burst", d.HTTP.CommandBurst)
	v.SetDefault("http.feed_size", d.HTTP.FeedSize)
	v.SetDefault("http.shutdown_timeout", d.HTTP.ShutdownTimeout)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}
