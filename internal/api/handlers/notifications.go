package handlers

import (
	"delivery-sim/internal/api/dto"
	"delivery-sim/internal/ports"
	"net/http"
	"strconv"
)

// NotificationSource returns recent notifications, newest first.
type NotificationSource interface {
	Recent(limit int) []ports.Notification
}

type NotificationHandler struct {
	Feed NotificationSource
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, r, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	writeJSON(w, r, http.StatusOK, dto.NotificationsResponse{Notifications: h.Feed.Recent(limit)})
}
