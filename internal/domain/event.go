package domain

import (
	"fmt"
	"time"
)

type EventType string

const (
	EventTrafficJam       EventType = "traffic_jam"
	EventRoadClosure      EventType = "road_closure"
	EventNewOrder         EventType = "new_order"
	EventVehicleBreakdown EventType = "vehicle_breakdown"
)

// Types drawn by random event injection.
var RandomEventTypes = []EventType{EventTrafficJam, EventRoadClosure, EventNewOrder}

// BlocksCell reports whether events of this type add their location to the
// obstacle set while active.
func (t EventType) BlocksCell() bool {
	return t == EventTrafficJam || t == EventRoadClosure
}

func (t EventType) Valid() bool {
	switch t {
	case EventTrafficJam, EventRoadClosure, EventNewOrder, EventVehicleBreakdown:
		return true
	}
	return false
}

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

var Severities = []Severity{SeverityLow, SeverityMedium, SeverityHigh}

func (s Severity) Valid() bool {
	return s == SeverityLow || s == SeverityMedium || s == SeverityHigh
}

// A disruption injected into the running simulation. Events are resolved,
// never deleted, so the registry keeps a full history.
type DisruptionEvent struct {
	ID          string
	Type        EventType
	Location    Position
	Description string
	Severity    Severity
	CreatedAt   time.Time
	ResolvedAt  *time.Time
	Active      bool
}

// DescribeEvent renders the human readable text shown for a disruption.
func DescribeEvent(t EventType, at Position) string {
	switch t {
	case EventTrafficJam:
		return fmt.Sprintf("Heavy traffic reported at intersection (%d, %d). Consider alternate route.", at.X, at.Y)
	case EventRoadClosure:
		return fmt.Sprintf("Road closure at (%d, %d) due to construction. Route recalculation needed.", at.X, at.Y)
	case EventNewOrder:
		return fmt.Sprintf("Urgent delivery request received near (%d, %d). Update route priorities.", at.X, at.Y)
	case EventVehicleBreakdown:
		return fmt.Sprintf("Vehicle maintenance required at (%d, %d). Backup vehicle dispatched.", at.X, at.Y)
	default:
		return fmt.Sprintf("Event detected at (%d, %d). Route optimization recommended.", at.X, at.Y)
	}
}
