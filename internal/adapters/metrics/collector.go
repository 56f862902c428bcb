package metrics

import (
	"delivery-sim/internal/ports"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "delivery_sim"
	subsystem = "simulation"
)

// Collector turns simulation notifications and HTTP traffic into Prometheus
// metrics. It implements ports.Notifier.
type Collector struct {
	registry *prometheus.Registry

	notifications *prometheus.CounterVec
	deliveries    prometheus.Counter
	completions   prometheus.Counter
	activeEvents  prometheus.Gauge
	routeDistance prometheus.Gauge

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

func NewCollector() *Collector {
	return &Collector{
		registry: prometheus.NewRegistry(),

		notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "notifications_total",
				Help:      "Notifications emitted by kind",
			},
			[]string{"kind"},
		),
		deliveries: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "deliveries_total",
				Help:      "Delivery points reached",
			},
		),
		completions: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "completions_total",
				Help:      "Routes driven to the end",
			},
		),
		activeEvents: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "active_events",
				Help:      "Disruptions triggered and not yet resolved",
			},
		),
		routeDistance: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "route_distance",
				Help:      "Total distance of the most recently planned route",
			},
		),

		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"method", "route"},
		),
	}
}

// Register adds every metric to the collector's registry.
func (c *Collector) Register() error {
	metrics := []prometheus.Collector{
		c.notifications,
		c.deliveries,
		c.completions,
		c.activeEvents,
		c.routeDistance,
		c.httpRequests,
		c.httpDuration,
	}

	for _, metric := range metrics {
		if err := c.registry.Register(metric); err != nil {
			return err
		}
	}

	return nil
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) Notify(n ports.Notification) {
	c.notifications.WithLabelValues(string(n.Kind)).Inc()

	switch n.Kind {
	case ports.DeliveryCompleted:
		c.deliveries.Inc()
	case ports.SimulationCompleted:
		c.completions.Inc()
	case ports.EventTriggered:
		c.activeEvents.Inc()
	case ports.EventResolved:
		c.activeEvents.Dec()
	case ports.RouteRecomputed:
		c.routeDistance.Set(float64(n.Distance))
	}
}

// SetRouteDistance records a route planned without a notification, such as
// the initial one.
func (c *Collector) SetRouteDistance(distance int) {
	c.routeDistance.Set(float64(distance))
}

// ResetEvents zeroes the active event gauge after a simulation reset.
func (c *Collector) ResetEvents() {
	c.activeEvents.Set(0)
}

// RecordHTTPRequest records one served request.
func (c *Collector) RecordHTTPRequest(method, route string, status int, seconds float64) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(seconds)
}
