package handlers

import (
	"delivery-sim/internal/api/dto"
	"delivery-sim/internal/domain"
	"delivery-sim/internal/platform/obs"
	"delivery-sim/internal/services"
	"net/http"
	"time"
)

// Simulator is the command and query surface the API drives.
type Simulator interface {
	Start()
	Pause()
	Stop()
	Reset() error
	SetTickInterval(d time.Duration) error

	GenerateRoute() domain.Route
	OptimizeWithHeuristic() domain.Route
	RegenerateRoute() domain.Route
	OptimizeForEvent(eventID string) (domain.Route, error)

	TriggerRandomEvent() domain.DisruptionEvent
	InjectEvent(t domain.EventType, at domain.Position, severity domain.Severity) (domain.DisruptionEvent, error)
	ResolveEvent(eventID string) error

	GridState() services.GridSnapshot
	State() domain.SimulationState
	Events() services.EventsSnapshot
	Statistics() services.RouteStatistics
}

// SimulationHandler exposes the grid, run state and run controls.
type SimulationHandler struct {
	Sim Simulator
	// Called after a successful reset.
	OnReset func()
}

func (h *SimulationHandler) Grid(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, r, http.StatusOK, toGrid(h.Sim.GridState()))
}

func (h *SimulationHandler) State(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, r, http.StatusOK, toState(h.Sim.State()))
}

func (h *SimulationHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, r, http.StatusOK, toStatistics(h.Sim.Statistics()))
}

func (h *SimulationHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.command(w, r, h.Sim.Start)
}

func (h *SimulationHandler) Pause(w http.ResponseWriter, r *http.Request) {
	h.command(w, r, h.Sim.Pause)
}

func (h *SimulationHandler) Stop(w http.ResponseWriter, r *http.Request) {
	h.command(w, r, h.Sim.Stop)
}

func (h *SimulationHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var err error
	defer obs.Time(r.Context(), "reset_simulation")(&err)

	if err = h.Sim.Reset(); err != nil {
		writeServiceError(w, r, err)
		return
	}
	if h.OnReset != nil {
		h.OnReset()
	}
	writeJSON(w, r, http.StatusOK, toState(h.Sim.State()))
}

func (h *SimulationHandler) TickInterval(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPut) {
		return
	}

	var req dto.TickIntervalRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.Sim.SetTickInterval(time.Duration(req.TickIntervalMS) * time.Millisecond); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toState(h.Sim.State()))
}

func (h *SimulationHandler) command(w http.ResponseWriter, r *http.Request, fn func()) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	fn()
	writeJSON(w, r, http.StatusOK, toState(h.Sim.State()))
}
