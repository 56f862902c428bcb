package ports

import "time"

type NotificationKind string

const (
	DeliveryCompleted   NotificationKind = "delivery_completed"
	SimulationCompleted NotificationKind = "simulation_completed"
	EventTriggered      NotificationKind = "event_triggered"
	EventResolved       NotificationKind = "event_resolved"
	RouteRecomputed     NotificationKind = "route_recomputed"
)

// Fire-and-forget message describing one state transition.
// Only the fields relevant to Kind are populated.
type Notification struct {
	Kind        NotificationKind `json:"kind"`
	At          time.Time        `json:"at"`
	Address     string           `json:"address,omitempty"`
	Minutes     int              `json:"minutes,omitempty"`
	Description string           `json:"description,omitempty"`
	EventID     string           `json:"event_id,omitempty"`
	Distance    int              `json:"distance,omitempty"`
}

// Contract for consumers of simulation notifications.
// Notify is called while the simulation holds its lock and must not block.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a plain function to a Notifier.
type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }
