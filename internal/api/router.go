package api

import (
	"delivery-sim/internal/api/handlers"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// Dependencies of the HTTP API. Optional fields may be nil.
type Deps struct {
	Sim  handlers.Simulator
	Feed handlers.NotificationSource

	// Streams notifications over WebSocket.
	Stream http.Handler

	Metrics  RequestRecorder
	Registry *prometheus.Registry

	// Throttles mutating commands.
	Limiter *rate.Limiter
	OnReset func()
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) http.Handler {
	mux := http.NewServeMux()

	sim := &handlers.SimulationHandler{Sim: d.Sim, OnReset: d.OnReset}
	routes := &handlers.RouteHandler{Sim: d.Sim}
	events := &handlers.EventHandler{Sim: d.Sim}
	cmd := func(h http.HandlerFunc) http.HandlerFunc { return rateLimited(d.Limiter, h) }

	mux.HandleFunc("/health", handlers.Health)

	mux.HandleFunc("/grid", sim.Grid)
	mux.HandleFunc("/simulation", sim.State)
	mux.HandleFunc("/statistics", sim.Statistics)
	mux.HandleFunc("/simulation/start", cmd(sim.Start))
	mux.HandleFunc("/simulation/pause", cmd(sim.Pause))
	mux.HandleFunc("/simulation/stop", cmd(sim.Stop))
	mux.HandleFunc("/simulation/reset", cmd(sim.Reset))
	mux.HandleFunc("/simulation/tick-interval", cmd(sim.TickInterval))

	mux.HandleFunc("/route", cmd(routes.Generate))
	mux.HandleFunc("/route/optimize", cmd(routes.Optimize))
	mux.HandleFunc("/route/regenerate", cmd(routes.Regenerate))

	mux.HandleFunc("/events", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			cmd(events.Events)(w, r)
			return
		}
		events.Events(w, r)
	})
	mux.HandleFunc("/events/random", cmd(events.Random))
	mux.HandleFunc("/events/{id}/resolve", cmd(events.Resolve))
	mux.HandleFunc("/events/{id}/optimize", cmd(events.Optimize))

	if d.Feed != nil {
		notifications := &handlers.NotificationHandler{Feed: d.Feed}
		mux.HandleFunc("/notifications", notifications.List)
	}
	if d.Stream != nil {
		mux.Handle("/ws", d.Stream)
	}
	if d.Registry != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}))
	}

	return loggingMiddleware(mux, d.Metrics)
}
