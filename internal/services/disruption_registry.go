package services

import (
	"delivery-sim/internal/domain"
	"delivery-sim/internal/ports"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DisruptionRegistry owns the lifecycle of disruption events and the
// obstacle set derived from them.
//
// A cell stays an obstacle while at least one active TrafficJam or
// RoadClosure claims it. The registry is not safe for concurrent use;
// Simulation serializes every call.
type DisruptionRegistry struct {
	gridSize int
	depot    domain.Position
	rng      *rand.Rand
	clock    ports.Clock
	log      *logrus.Entry

	events   []*domain.DisruptionEvent
	byID     map[string]*domain.DisruptionEvent
	resolved []*domain.DisruptionEvent
	claims   map[domain.Position]int
	version  uint64
}

func NewDisruptionRegistry(
	gridSize int,
	depot domain.Position,
	rng *rand.Rand,
	clock ports.Clock,
) (*DisruptionRegistry, error) {
	if err := validateGrid(gridSize, depot); err != nil {
		return nil, fmt.Errorf("new disruption registry: %w", err)
	}
	if gridSize*gridSize < 2 {
		return nil, fmt.Errorf("new disruption registry: %w: grid has no cell besides the depot", domain.ErrInvalidConfiguration)
	}
	if clock == nil {
		clock = ports.SystemClock
	}

	return &DisruptionRegistry{
		gridSize: gridSize,
		depot:    depot,
		rng:      rng,
		clock:    clock,
		log:      logrus.WithField("module", "registry"),
		byID:     make(map[string]*domain.DisruptionEvent),
		claims:   make(map[domain.Position]int),
	}, nil
}

// Inject records a new active event. Blocking event types add their
// location to the obstacle set.
func (r *DisruptionRegistry) Inject(
	t domain.EventType,
	at domain.Position,
	severity domain.Severity,
) (domain.DisruptionEvent, error) {
	if !t.Valid() {
		return domain.DisruptionEvent{}, fmt.Errorf("inject event: %w: unknown type %q", domain.ErrInvalidConfiguration, t)
	}
	if !severity.Valid() {
		return domain.DisruptionEvent{}, fmt.Errorf("inject event: %w: unknown severity %q", domain.ErrInvalidConfiguration, severity)
	}
	if !at.InGrid(r.gridSize) {
		return domain.DisruptionEvent{}, fmt.Errorf("inject event: %w: %v outside grid", domain.ErrInvalidPosition, at)
	}
	if at == r.depot {
		return domain.DisruptionEvent{}, fmt.Errorf("inject event: %w: %v is the depot", domain.ErrInvalidPosition, at)
	}

	ev := &domain.DisruptionEvent{
		ID:          "event-" + uuid.NewString(),
		Type:        t,
		Location:    at,
		Description: domain.DescribeEvent(t, at),
		Severity:    severity,
		CreatedAt:   r.clock.Now(),
		Active:      true,
	}
	r.events = append(r.events, ev)
	r.byID[ev.ID] = ev

	if t.BlocksCell() {
		if r.claims[at] == 0 {
			r.version++
		}
		r.claims[at]++
	}

	r.log.WithFields(logrus.Fields{
		"event_id": ev.ID,
		"type":     ev.Type,
		"location": ev.Location.String(),
		"severity": ev.Severity,
	}).Info("disruption injected")

	return *ev, nil
}

// InjectRandom injects an event of a random type and severity at a random
// cell other than the depot.
func (r *DisruptionRegistry) InjectRandom() domain.DisruptionEvent {
	t := domain.RandomEventTypes[r.rng.IntN(len(domain.RandomEventTypes))]

	var at domain.Position
	for {
		at = domain.Position{X: r.rng.IntN(r.gridSize), Y: r.rng.IntN(r.gridSize)}
		if at != r.depot {
			break
		}
	}

	severity := domain.Severities[r.rng.IntN(len(domain.Severities))]

	// Inputs are valid by construction.
	ev, _ := r.Inject(t, at, severity)
	return ev
}

// Resolve deactivates an event. Resolving an inactive event is a no-op.
func (r *DisruptionRegistry) Resolve(id string) (domain.DisruptionEvent, error) {
	ev, ok := r.byID[id]
	if !ok {
		return domain.DisruptionEvent{}, fmt.Errorf("resolve event: %w: %q", domain.ErrUnknownEventID, id)
	}
	if !ev.Active {
		return *ev, nil
	}

	now := r.clock.Now()
	ev.Active = false
	ev.ResolvedAt = &now
	r.resolved = append(r.resolved, ev)

	if ev.Type.BlocksCell() {
		r.claims[ev.Location]--
		if r.claims[ev.Location] <= 0 {
			delete(r.claims, ev.Location)
			r.version++
		}
	}

	r.log.WithFields(logrus.Fields{
		"event_id": ev.ID,
		"type":     ev.Type,
	}).Info("disruption resolved")

	return *ev, nil
}

// Event looks up an event by id.
func (r *DisruptionRegistry) Event(id string) (domain.DisruptionEvent, bool) {
	ev, ok := r.byID[id]
	if !ok {
		return domain.DisruptionEvent{}, false
	}
	return *ev, true
}

// Active returns the active events in injection order.
func (r *DisruptionRegistry) Active() []domain.DisruptionEvent {
	out := make([]domain.DisruptionEvent, 0, len(r.events))
	for _, ev := range r.events {
		if ev.Active {
			out = append(out, *ev)
		}
	}
	return out
}

// History returns resolved events, most recently resolved first, truncated
// to limit. A non-positive limit returns every resolved event.
func (r *DisruptionRegistry) History(limit int) []domain.DisruptionEvent {
	n := len(r.resolved)
	if limit > 0 && limit < n {
		n = limit
	}

	out := make([]domain.DisruptionEvent, 0, n)
	for i := len(r.resolved) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, *r.resolved[i])
	}
	return out
}

// Obstacles returns a copy of the current obstacle set.
func (r *DisruptionRegistry) Obstacles() domain.ObstacleSet {
	s := make(domain.ObstacleSet, len(r.claims))
	for p := range r.claims {
		s[p] = struct{}{}
	}
	return s
}

// ObstacleVersion changes every time the obstacle set gains or loses a cell.
func (r *DisruptionRegistry) ObstacleVersion() uint64 {
	return r.version
}

// Clear drops every event and obstacle.
func (r *DisruptionRegistry) Clear() {
	if len(r.claims) > 0 {
		r.version++
	}
	r.events = nil
	r.resolved = nil
	r.byID = make(map[string]*domain.DisruptionEvent)
	r.claims = make(map[domain.Position]int)
}
