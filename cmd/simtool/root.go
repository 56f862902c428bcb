package main

import (
	"delivery-sim/internal/config"
	"delivery-sim/internal/platform/obs"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	seed       uint64
	points     int
	cfg        *config.Config
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "simtool",
		Short: "Plan and run delivery simulations from the command line",
		Long: `Plan and run delivery simulations without the HTTP server.

Examples:
  simtool plan --seed 7
  simtool run --seed 7 --tick 50ms --events 2`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Simulation.Seed = opts.seed
			}
			if cmd.Flags().Changed("points") {
				cfg.Simulation.DeliveryCount = opts.points
			}
			if err := config.ValidateConfig(cfg); err != nil {
				return err
			}
			opts.cfg = cfg
			return obs.Setup(cfg.Logging.Level, cfg.Logging.Format)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config.yaml")
	cmd.PersistentFlags().Uint64Var(&opts.seed, "seed", 0, "random seed (0 picks one)")
	cmd.PersistentFlags().IntVar(&opts.points, "points", 0, "number of delivery points")

	cmd.AddCommand(newPlanCommand(opts))
	cmd.AddCommand(newRunCommand(opts))

	return cmd
}
