package main

import (
	"delivery-sim/internal/adapters/schedule"
	"delivery-sim/internal/domain"
	"delivery-sim/internal/services"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newPlanCommand(opts *rootOptions) *cobra.Command {
	var events int

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the routes both planners produce for one scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			baseline, heuristic := cfg.Planner.Planners()

			sim, err := services.NewSimulation(cfg.Simulation.Service(), services.SimulationDeps{
				Rand:      cfg.Simulation.Rand(),
				Scheduler: schedule.NewManualScheduler(),
				Baseline:  baseline,
				Heuristic: heuristic,
			})
			if err != nil {
				return err
			}
			defer sim.Close()

			for i := 0; i < events; i++ {
				ev := sim.TriggerRandomEvent()
				fmt.Fprintf(cmd.OutOrStdout(), "event: %s\n", ev.Description)
			}

			out := cmd.OutOrStdout()
			printRoute(out, sim.GenerateRoute())
			renderGrid(out, sim.GridState())
			printRoute(out, sim.OptimizeWithHeuristic())
			renderGrid(out, sim.GridState())
			return nil
		},
	}

	cmd.Flags().IntVar(&events, "events", 0, "random disruptions to inject before planning")
	return cmd
}

func printRoute(w io.Writer, r domain.Route) {
	fmt.Fprintf(w, "%s: distance=%d minutes=%d stops=%d\n", r.OptimizedBy, r.TotalDistance, r.EstimatedTime, r.Stops())
}

// renderGrid draws the grid row by row: D depot, P pending point, v
// delivered point, X obstacle, * route cell, . empty.
func renderGrid(w io.Writer, g services.GridSnapshot) {
	cells := make([][]byte, g.GridSize)
	for y := range cells {
		cells[y] = []byte(strings.Repeat(".", g.GridSize))
	}

	if g.Route != nil {
		for _, p := range g.Route.Path {
			cells[p.Y][p.X] = '*'
		}
	}
	for _, p := range g.ObstacleCells {
		cells[p.Y][p.X] = 'X'
	}
	for _, dp := range g.DeliveryPoints {
		if dp.Delivered {
			cells[dp.Position.Y][dp.Position.X] = 'v'
		} else {
			cells[dp.Position.Y][dp.Position.X] = 'P'
		}
	}
	cells[g.Depot.Y][g.Depot.X] = 'D'

	for _, row := range cells {
		fmt.Fprintf(w, "  %s\n", row)
	}
}
