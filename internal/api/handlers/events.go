package handlers

import (
	"delivery-sim/internal/api/dto"
	"delivery-sim/internal/domain"
	"delivery-sim/internal/platform/obs"
	"net/http"
)

// EventHandler exposes disruption injection and resolution.
type EventHandler struct {
	Sim Simulator
}

// Events serves GET (list) and POST (inject) on /events.
func (h *EventHandler) Events(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.inject(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *EventHandler) list(w http.ResponseWriter, r *http.Request) {
	snap := h.Sim.Events()
	writeJSON(w, r, http.StatusOK, dto.EventsResponse{
		Active:         toEvents(snap.Active),
		RecentResolved: toEvents(snap.RecentResolved),
	})
}

func (h *EventHandler) inject(w http.ResponseWriter, r *http.Request) {
	var req dto.InjectEventRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	severity := domain.Severity(req.Severity)
	if severity == "" {
		severity = domain.SeverityMedium
	}

	var err error
	defer obs.Time(r.Context(), "inject_event")(&err)

	ev, err := h.Sim.InjectEvent(domain.EventType(req.Type), domain.Position{X: req.X, Y: req.Y}, severity)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, toEvent(ev))
}

func (h *EventHandler) Random(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	writeJSON(w, r, http.StatusCreated, toEvent(h.Sim.TriggerRandomEvent()))
}

func (h *EventHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var err error
	defer obs.Time(r.Context(), "resolve_event")(&err)

	if err = h.Sim.ResolveEvent(r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	h.list(w, r)
}

func (h *EventHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var err error
	defer obs.Time(r.Context(), "optimize_for_event")(&err)

	route, err := h.Sim.OptimizeForEvent(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toRoute(route))
}
