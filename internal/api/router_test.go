package api

import (
	"bytes"
	"delivery-sim/internal/adapters/metrics"
	"delivery-sim/internal/adapters/notify"
	"delivery-sim/internal/adapters/schedule"
	"delivery-sim/internal/api/dto"
	"delivery-sim/internal/services"
	"encoding/json"
	"io"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type fixture struct {
	handler http.Handler
	sim     *services.Simulation
	sched   *schedule.ManualScheduler
	feed    *notify.Feed
}

func newFixture(t *testing.T, limiter *rate.Limiter) *fixture {
	t.Helper()

	feed := notify.NewFeed(20)
	collector := metrics.NewCollector()
	require.NoError(t, collector.Register())

	sched := schedule.NewManualScheduler()
	sim, err := services.NewSimulation(services.DefaultSimulationConfig(), services.SimulationDeps{
		Rand:      rand.New(rand.NewPCG(1, 2)),
		Scheduler: sched,
		Notifier:  notify.Multi{feed, collector},
	})
	require.NoError(t, err)
	t.Cleanup(sim.Close)

	h := NewRouter(Deps{
		Sim:      sim,
		Feed:     feed,
		Metrics:  collector,
		Registry: collector.Registry(),
		Limiter:  limiter,
		OnReset:  collector.ResetEvents,
	})

	return &fixture{handler: h, sim: sim, sched: sched, feed: feed}
}

func (f *fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(bytes.NewReader(rec.Body.Bytes())).Decode(&v), rec.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = f.do(t, http.MethodPost, "/health", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"))
}

func TestGridEndpoint(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(t, http.MethodGet, "/grid", "")
	require.Equal(t, http.StatusOK, rec.Code)

	grid := decode[dto.GridResponse](t, rec)
	assert.Equal(t, 10, grid.GridSize)
	assert.Len(t, grid.DeliveryPoints, 7)
	require.NotNil(t, grid.Route)
	assert.Equal(t, "nearest_neighbor", grid.Route.OptimizedBy)
	assert.Equal(t, grid.Depot, grid.Route.Path[0])
	assert.Equal(t, "idle", grid.Vehicle.Status)
	assert.NotNil(t, grid.Obstacles)
}

func TestSimulationLifecycleEndpoints(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(t, http.MethodPost, "/simulation/start", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "running", decode[dto.SimulationStateResponse](t, rec).Status)

	f.sched.FireN(2)

	state := decode[dto.SimulationStateResponse](t, f.do(t, http.MethodGet, "/simulation", ""))
	assert.Equal(t, 2, state.CurrentStep)
	assert.Equal(t, int64(1500), state.TickIntervalMS)

	rec = f.do(t, http.MethodPost, "/simulation/pause", "")
	assert.Equal(t, "paused", decode[dto.SimulationStateResponse](t, rec).Status)

	rec = f.do(t, http.MethodPost, "/simulation/stop", "")
	state = decode[dto.SimulationStateResponse](t, rec)
	assert.Equal(t, "stopped", state.Status)
	assert.Zero(t, state.CurrentStep)

	rec = f.do(t, http.MethodPost, "/simulation/reset", "")
	require.Equal(t, http.StatusOK, rec.Code)
	grid := decode[dto.GridResponse](t, f.do(t, http.MethodGet, "/grid", ""))
	assert.Nil(t, grid.Route)

	rec = f.do(t, http.MethodGet, "/simulation/start", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestTickIntervalEndpoint(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(t, http.MethodPut, "/simulation/tick-interval", `{"tick_interval_ms":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPut, "/simulation/tick-interval", `{"tick_interval_ms":250,"extra":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPut, "/simulation/tick-interval", `{"tick_interval_ms":250}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(250), decode[dto.SimulationStateResponse](t, rec).TickIntervalMS)
	assert.Equal(t, 250*time.Millisecond, f.sim.State().TickInterval)
}

func TestRouteEndpoints(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(t, http.MethodPost, "/route/optimize", "")
	require.Equal(t, http.StatusOK, rec.Code)
	route := decode[dto.RouteResponse](t, rec)
	assert.Equal(t, "ai_heuristic", route.OptimizedBy)
	assert.Equal(t, len(route.Path)-1, route.Stops)

	rec = f.do(t, http.MethodPost, "/route/regenerate", "")
	assert.Equal(t, "ai_heuristic", decode[dto.RouteResponse](t, rec).OptimizedBy)

	rec = f.do(t, http.MethodPost, "/route", "")
	assert.Equal(t, "nearest_neighbor", decode[dto.RouteResponse](t, rec).OptimizedBy)

	stats := decode[dto.StatisticsResponse](t, f.do(t, http.MethodGet, "/statistics", ""))
	assert.True(t, stats.HasRoute)
	assert.Equal(t, "nearest_neighbor", stats.Algorithm)
	assert.Equal(t, 7, stats.Total)
}

func TestEventEndpoints(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(t, http.MethodPost, "/events", `{"type":"road_closure","x":0,"y":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPost, "/events", `{"type":"meteor","x":3,"y":3}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPost, "/events", `{"type":"road_closure","x":3,"y":4,"severity":"high"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	ev := decode[dto.EventResponse](t, rec)
	assert.Equal(t, "high", ev.Severity)
	assert.True(t, ev.Active)
	assert.Contains(t, ev.Description, "(3, 4)")

	events := decode[dto.EventsResponse](t, f.do(t, http.MethodGet, "/events", ""))
	require.Len(t, events.Active, 1)
	assert.Empty(t, events.RecentResolved)

	grid := decode[dto.GridResponse](t, f.do(t, http.MethodGet, "/grid", ""))
	assert.Equal(t, []dto.PositionResponse{{X: 3, Y: 4}}, grid.Obstacles)

	rec = f.do(t, http.MethodPost, "/events/"+ev.ID+"/optimize", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodPost, "/events/event-missing/resolve", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodPost, "/events/"+ev.ID+"/resolve", "")
	require.Equal(t, http.StatusOK, rec.Code)
	events = decode[dto.EventsResponse](t, rec)
	assert.Empty(t, events.Active)
	require.Len(t, events.RecentResolved, 1)
	assert.NotNil(t, events.RecentResolved[0].ResolvedAt)

	rec = f.do(t, http.MethodPost, "/events/random", "")
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = f.do(t, http.MethodDelete, "/events", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestNotificationsEndpoint(t *testing.T) {
	f := newFixture(t, nil)

	f.do(t, http.MethodPost, "/route/optimize", "")
	f.do(t, http.MethodPost, "/events/random", "")

	rec := f.do(t, http.MethodGet, "/notifications?limit=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[dto.NotificationsResponse](t, rec)
	require.Len(t, res.Notifications, 1)

	rec = f.do(t, http.MethodGet, "/notifications?limit=-1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCommandsAreRateLimited(t *testing.T) {
	f := newFixture(t, rate.NewLimiter(rate.Every(time.Hour), 1))

	assert.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/simulation/start", "").Code)

	rec := f.do(t, http.MethodPost, "/simulation/pause", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/simulation", "").Code)
	assert.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/events", "").Code)
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t, nil)

	f.do(t, http.MethodGet, "/grid", "")
	rec := f.do(t, http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `delivery_sim_http_requests_total{method="GET",route="/grid",status="200"} 1`)
}
