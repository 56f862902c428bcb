package handlers

import (
	"delivery-sim/internal/domain"
	"delivery-sim/internal/platform/obs"
	"net/http"
)

// RouteHandler exposes route planning commands.
type RouteHandler struct {
	Sim Simulator
}

// Generate plans with the nearest-neighbor baseline.
func (h *RouteHandler) Generate(w http.ResponseWriter, r *http.Request) {
	h.plan(w, r, "generate_route", h.Sim.GenerateRoute)
}

// Optimize plans with the priority-aware heuristic.
func (h *RouteHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	h.plan(w, r, "optimize_route", h.Sim.OptimizeWithHeuristic)
}

// Regenerate replans with whichever planner is selected.
func (h *RouteHandler) Regenerate(w http.ResponseWriter, r *http.Request) {
	h.plan(w, r, "regenerate_route", h.Sim.RegenerateRoute)
}

func (h *RouteHandler) plan(w http.ResponseWriter, r *http.Request, op string, fn func() domain.Route) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	defer obs.Time(r.Context(), op)(nil)

	writeJSON(w, r, http.StatusOK, toRoute(fn()))
}
