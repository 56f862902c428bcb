package main

import (
	"context"
	"delivery-sim/internal/adapters/metrics"
	"delivery-sim/internal/adapters/notify"
	"delivery-sim/internal/adapters/schedule"
	"delivery-sim/internal/api"
	"delivery-sim/internal/config"
	"delivery-sim/internal/platform/obs"
	"delivery-sim/internal/services"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// main is the application composition root.
// It wires the simulation to its scheduler and notifiers and serves the HTTP API.
func main() {
	if err := run(); err != nil {
		logrus.WithField("module", "server").WithError(err).Fatal("server exited")
	}
}

func run() error {
	cfg, err := config.LoadConfig(config.Get("DSIM_CONFIG", ""))
	if err != nil {
		return err
	}
	if err := obs.Setup(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		return err
	}
	log := logrus.WithField("module", "server")

	collector := metrics.NewCollector()
	if err := collector.Register(); err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}
	feed := notify.NewFeed(cfg.HTTP.FeedSize)
	hub := notify.NewHub()
	defer hub.Close()

	baseline, heuristic := cfg.Planner.Planners()
	sim, err := services.NewSimulation(cfg.Simulation.Service(), services.SimulationDeps{
		Rand:      cfg.Simulation.Rand(),
		Scheduler: schedule.NewTickerScheduler(),
		Notifier:  notify.Multi{notify.NewLogNotifier(nil), feed, hub, collector},
		Baseline:  baseline,
		Heuristic: heuristic,
	})
	if err != nil {
		return err
	}
	defer sim.Close()
	collector.SetRouteDistance(sim.Statistics().TotalDistance)

	router := api.NewRouter(api.Deps{
		Sim:      sim,
		Feed:     feed,
		Stream:   hub,
		Metrics:  collector,
		Registry: collector.Registry(),
		Limiter:  rate.NewLimiter(rate.Limit(cfg.HTTP.CommandRate), cfg.HTTP.CommandBurst),
		OnReset:  collector.ResetEvents,
	})

	// No WriteTimeout: /ws streams are long-lived and manage their own deadlines.
	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{
			"addr":          cfg.HTTP.Addr,
			"grid_size":     cfg.Simulation.GridSize,
			"tick_interval": cfg.Simulation.TickInterval,
		}).Info("server listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	sim.Stop()
	hub.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
