package main

import (
	"context"
	"delivery-sim/internal/adapters/notify"
	"delivery-sim/internal/adapters/schedule"
	"delivery-sim/internal/ports"
	"delivery-sim/internal/services"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
)

func newRunCommand(opts *rootOptions) *cobra.Command {
	var (
		tick       time.Duration
		events     int
		eventEvery time.Duration
		optimize   bool
		timeout    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Drive a headless simulation until the route completes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			simCfg := cfg.Simulation.Service()
			if tick > 0 {
				simCfg.TickInterval = tick
			}
			baseline, heuristic := cfg.Planner.Planners()

			done := make(chan struct{}, 1)
			out := cmd.OutOrStdout()
			printer := ports.NotifierFunc(func(n ports.Notification) {
				switch n.Kind {
				case ports.DeliveryCompleted:
					fmt.Fprintf(out, "delivered: %s\n", n.Address)
				case ports.EventTriggered:
					fmt.Fprintf(out, "event: %s\n", n.Description)
				case ports.RouteRecomputed:
					fmt.Fprintf(out, "route recomputed: distance=%d\n", n.Distance)
				case ports.SimulationCompleted:
					fmt.Fprintf(out, "completed in %d minutes\n", n.Minutes)
					select {
					case done <- struct{}{}:
					default:
					}
				}
			})

			sim, err := services.NewSimulation(simCfg, services.SimulationDeps{
				Rand:      cfg.Simulation.Rand(),
				Scheduler: schedule.NewTickerScheduler(),
				Notifier:  notify.Multi{notify.NewLogNotifier(nil), printer},
				Baseline:  baseline,
				Heuristic: heuristic,
			})
			if err != nil {
				return err
			}
			defer sim.Close()

			if optimize {
				sim.OptimizeWithHeuristic()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			return drive(ctx, sim, done, events, eventEvery)
		},
	}

	cmd.Flags().DurationVar(&tick, "tick", 0, "tick interval (default from config)")
	cmd.Flags().IntVar(&events, "events", 0, "random disruptions to inject while running")
	cmd.Flags().DurationVar(&eventEvery, "event-every", time.Second, "delay between injected disruptions")
	cmd.Flags().BoolVar(&optimize, "optimize", false, "start on the heuristic route")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "give up after this long")

	return cmd
}

func drive(ctx context.Context, sim *services.Simulation, done <-chan struct{}, events int, every time.Duration) error {
	sim.Start()

	var inject <-chan time.Time
	if events > 0 {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		inject = ticker.C
	}

	for {
		select {
		case <-done:
			return nil
		case <-inject:
			sim.TriggerRandomEvent()
			events--
			if events == 0 {
				inject = nil
			}
		case <-ctx.Done():
			sim.Stop()
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return fmt.Errorf("run: %w: route not completed at step %d", ctx.Err(), sim.State().CurrentStep)
			}
			return nil
		}
	}
}
