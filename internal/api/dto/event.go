package dto

import (
	"delivery-sim/internal/ports"
	"time"
)

type EventResponse struct {
	ID          string           `json:"id"`
	Type        string           `json:"type"`
	Location    PositionResponse `json:"location"`
	Description string           `json:"description"`
	Severity    string           `json:"severity"`
	CreatedAt   time.Time        `json:"created_at"`
	ResolvedAt  *time.Time       `json:"resolved_at"`
	Active      bool             `json:"active"`
}

type EventsResponse struct {
	Active         []EventResponse `json:"active"`
	RecentResolved []EventResponse `json:"recent_resolved"`
}

type InjectEventRequest struct {
	Type     string `json:"type"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Severity string `json:"severity"`
}

type NotificationsResponse struct {
	Notifications []ports.Notification `json:"notifications"`
}
