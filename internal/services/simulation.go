package services

import (
	"delivery-sim/internal/domain"
	"delivery-sim/internal/ports"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const DefaultTickInterval = 1500 * time.Millisecond

// Settings for a single simulation run.
type SimulationConfig struct {
	GridSize        int
	Depot           domain.Position
	DeliveryCount   int
	TickInterval    time.Duration
	VehicleID       string
	VehicleCapacity int
	HistoryLimit    int
	// Recompute the route whenever the obstacle set changes.
	AutoReplan bool
}

// DefaultSimulationConfig mirrors the stock 10x10 scenario.
func DefaultSimulationConfig() SimulationConfig {
	return SimulationConfig{
		GridSize:        domain.GridSize,
		DeliveryCount:   7,
		TickInterval:    DefaultTickInterval,
		VehicleID:       "truck-1",
		VehicleCapacity: 10,
		HistoryLimit:    3,
		AutoReplan:      true,
	}
}

// Collaborators of a Simulation. Nil fields fall back to production defaults
// except Scheduler, which is required.
type SimulationDeps struct {
	Rand      *rand.Rand
	Clock     ports.Clock
	Scheduler ports.Scheduler
	Notifier  ports.Notifier
	Baseline  RoutePlanner
	Heuristic RoutePlanner
}

// Read-only copy of everything a renderer needs.
type GridSnapshot struct {
	GridSize       int
	Depot          domain.Position
	DeliveryPoints []domain.DeliveryPoint
	Vehicle        domain.Vehicle
	Route          *domain.Route
	ObstacleCells  []domain.Position
}

type EventsSnapshot struct {
	Active         []domain.DisruptionEvent
	RecentResolved []domain.DisruptionEvent
}

// Simulation drives one vehicle along the current route and reacts to
// disruptions.
//
// All state lives behind a single mutex. Commands and ticks take the lock for
// their whole duration, so a tick never observes a half-applied command.
// Each armed tick task is tagged with a generation; disarming bumps the
// generation so a callback that was already in flight is discarded.
type Simulation struct {
	mu sync.Mutex

	cfg       SimulationConfig
	rng       *rand.Rand
	clock     ports.Clock
	scheduler ports.Scheduler
	notifier  ports.Notifier
	baseline  RoutePlanner
	heuristic RoutePlanner
	log       *logrus.Entry

	points    []*domain.DeliveryPoint
	vehicle   *domain.Vehicle
	route     *domain.Route
	algorithm domain.Algorithm
	registry  *DisruptionRegistry
	state     domain.SimulationState

	task       ports.Task
	generation uint64
}

// NewSimulation validates cfg, generates the first set of delivery points
// and plans an initial nearest-neighbor route.
func NewSimulation(cfg SimulationConfig, deps SimulationDeps) (*Simulation, error) {
	if err := ValidateSimulationConfig(cfg); err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}
	if deps.Scheduler == nil {
		return nil, errors.New("new simulation: scheduler must be non-nil")
	}

	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if deps.Clock == nil {
		deps.Clock = ports.SystemClock
	}
	if deps.Notifier == nil {
		deps.Notifier = ports.NotifierFunc(func(ports.Notification) {})
	}
	if deps.Baseline == nil {
		deps.Baseline = NewNearestNeighborPlanner()
	}
	if deps.Heuristic == nil {
		deps.Heuristic = NewHeuristicPlanner()
	}

	registry, err := NewDisruptionRegistry(cfg.GridSize, cfg.Depot, deps.Rand, deps.Clock)
	if err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}

	s := &Simulation{
		cfg:       cfg,
		rng:       deps.Rand,
		clock:     deps.Clock,
		scheduler: deps.Scheduler,
		notifier:  deps.Notifier,
		baseline:  deps.Baseline,
		heuristic: deps.Heuristic,
		log:       logrus.WithField("module", "simulation"),
		vehicle:   domain.NewVehicle(cfg.VehicleID, cfg.VehicleCapacity, cfg.Depot),
		algorithm: domain.AlgorithmNearestNeighbor,
		registry:  registry,
		state:     domain.SimulationState{TickInterval: cfg.TickInterval},
	}

	if err := s.regeneratePointsLocked(); err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}

	// Initial route is planned silently; nothing has been shown yet.
	s.route = s.baseline.PlanRoute(s.cfg.Depot, s.points, s.registry.Obstacles(), "")
	s.state.TotalSteps = len(s.route.Path)

	return s, nil
}

// ValidateSimulationConfig rejects settings that cannot produce a valid run.
func ValidateSimulationConfig(cfg SimulationConfig) error {
	if err := validateGrid(cfg.GridSize, cfg.Depot); err != nil {
		return err
	}
	if cfg.DeliveryCount < 0 || cfg.DeliveryCount >= cfg.GridSize*cfg.GridSize {
		return fmt.Errorf(
			"%w: delivery count %d must be in [0, %d)",
			domain.ErrInvalidConfiguration, cfg.DeliveryCount, cfg.GridSize*cfg.GridSize,
		)
	}
	if cfg.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval must be positive, got %s", domain.ErrInvalidConfiguration, cfg.TickInterval)
	}
	if cfg.VehicleCapacity < cfg.DeliveryCount {
		return fmt.Errorf(
			"%w: vehicle capacity %d below delivery count %d",
			domain.ErrInvalidConfiguration, cfg.VehicleCapacity, cfg.DeliveryCount,
		)
	}
	return nil
}

// Start begins or resumes ticking. Starting without a route plans one with
// the selected algorithm first.
func (s *Simulation) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Running && !s.state.Paused {
		return
	}

	if s.route == nil {
		s.replanLocked(s.algorithm, "")
	}

	s.state.Running = true
	s.state.Paused = false
	s.armLocked()

	s.log.WithFields(logrus.Fields{
		"step":  s.state.CurrentStep,
		"total": s.state.TotalSteps,
	}).Info("simulation started")
}

// Pause suspends ticking while keeping progress.
func (s *Simulation) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Running || s.state.Paused {
		return
	}

	s.disarmLocked()
	s.state.Paused = true
	s.log.WithField("step", s.state.CurrentStep).Info("simulation paused")
}

// Stop halts the run and returns the vehicle to the depot.
func (s *Simulation) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.disarmLocked()
	s.state.Running = false
	s.state.Paused = false
	s.state.CurrentStep = 0
	s.vehicle.Park(s.cfg.Depot)
	s.log.Info("simulation stopped")
}

// Reset stops the run and starts a fresh scenario: new delivery points, no
// disruptions, no route.
func (s *Simulation) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.disarmLocked()

	if err := s.regeneratePointsLocked(); err != nil {
		return fmt.Errorf("reset simulation: %w", err)
	}

	s.registry.Clear()
	s.route = nil
	s.state = domain.SimulationState{TickInterval: s.cfg.TickInterval}
	s.vehicle.Park(s.cfg.Depot)
	s.log.WithField("points", len(s.points)).Info("simulation reset")

	return nil
}

// GenerateRoute selects the nearest-neighbor planner and replans.
func (s *Simulation) GenerateRoute() domain.Route {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.replanLocked(domain.AlgorithmNearestNeighbor, "")
	return copyRoute(s.route)
}

// OptimizeWithHeuristic selects the heuristic planner and replans, passing
// the first active disruption as the hint.
func (s *Simulation) OptimizeWithHeuristic() domain.Route {
	s.mu.Lock()
	defer s.mu.Unlock()

	hint := ""
	if active := s.registry.Active(); len(active) > 0 {
		hint = active[0].Description
	}

	s.replanLocked(domain.AlgorithmHeuristic, hint)
	return copyRoute(s.route)
}

// OptimizeForEvent replans with the heuristic planner on behalf of one event.
func (s *Simulation) OptimizeForEvent(eventID string) (domain.Route, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ev, ok := s.registry.Event(eventID)
	if !ok {
		return domain.Route{}, fmt.Errorf("optimize for event: %w: %q", domain.ErrUnknownEventID, eventID)
	}

	s.replanLocked(domain.AlgorithmHeuristic, ev.Description)
	return copyRoute(s.route), nil
}

// RegenerateRoute replans with whichever planner is currently selected.
func (s *Simulation) RegenerateRoute() domain.Route {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.replanLocked(s.algorithm, "")
	return copyRoute(s.route)
}

// TriggerRandomEvent injects a random disruption.
func (s *Simulation) TriggerRandomEvent() domain.DisruptionEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.registry.ObstacleVersion()
	ev := s.registry.InjectRandom()
	s.afterInjectLocked(ev, before)
	return ev
}

// InjectEvent injects a disruption of a chosen type at a chosen cell.
func (s *Simulation) InjectEvent(
	t domain.EventType,
	at domain.Position,
	severity domain.Severity,
) (domain.DisruptionEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.registry.ObstacleVersion()
	ev, err := s.registry.Inject(t, at, severity)
	if err != nil {
		return domain.DisruptionEvent{}, err
	}
	s.afterInjectLocked(ev, before)
	return ev, nil
}

// ResolveEvent deactivates a disruption. Unknown ids change nothing.
func (s *Simulation) ResolveEvent(eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ev, ok := s.registry.Event(eventID)
	if !ok {
		return fmt.Errorf("resolve event: %w: %q", domain.ErrUnknownEventID, eventID)
	}
	if !ev.Active {
		return nil
	}

	before := s.registry.ObstacleVersion()
	if _, err := s.registry.Resolve(eventID); err != nil {
		return err
	}

	s.notifyLocked(ports.Notification{Kind: ports.EventResolved, EventID: eventID})
	s.replanOnObstacleChangeLocked(before)
	return nil
}

// SetTickInterval changes the tick period, re-arming the timer when running.
func (s *Simulation) SetTickInterval(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("set tick interval: %w: interval must be positive, got %s", domain.ErrInvalidConfiguration, d)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.TickInterval = d
	if s.state.Running && !s.state.Paused {
		s.armLocked()
	}
	return nil
}

// Close cancels any pending tick.
func (s *Simulation) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.disarmLocked()
}

// GridState returns a snapshot for rendering.
func (s *Simulation) GridState() GridSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	var route *domain.Route
	if s.route != nil {
		r := copyRoute(s.route)
		route = &r
	}

	return GridSnapshot{
		GridSize:       s.cfg.GridSize,
		Depot:          s.cfg.Depot,
		DeliveryPoints: s.pointsLocked(),
		Vehicle:        *s.vehicle,
		Route:          route,
		ObstacleCells:  s.registry.Obstacles().Cells(),
	}
}

func (s *Simulation) State() domain.SimulationState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

func (s *Simulation) Events() EventsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return EventsSnapshot{
		Active:         s.registry.Active(),
		RecentResolved: s.registry.History(s.cfg.HistoryLimit),
	}
}

func (s *Simulation) Statistics() RouteStatistics {
	s.mu.Lock()
	defer s.mu.Unlock()

	return ComputeStatistics(s.route, s.pointsLocked(), len(s.registry.Obstacles()))
}

// Algorithm reports the planner that RegenerateRoute will use.
func (s *Simulation) Algorithm() domain.Algorithm {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.algorithm
}

func (s *Simulation) armLocked() {
	s.disarmLocked()

	gen := s.generation
	s.task = s.scheduler.Every(s.state.TickInterval, func() { s.tick(gen) })
}

func (s *Simulation) disarmLocked() {
	if s.task != nil {
		s.task.Stop()
		s.task = nil
	}
	s.generation++
}

func (s *Simulation) tick(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation || !s.state.Running || s.state.Paused {
		return
	}
	s.advanceLocked()
}

// advanceLocked moves the vehicle one cell along the route, delivering to
// the point on that cell if it is still pending.
func (s *Simulation) advanceLocked() {
	if s.route == nil {
		return
	}

	next := s.state.CurrentStep + 1
	if next >= len(s.route.Path) {
		s.disarmLocked()
		s.state.Running = false
		s.state.Paused = false
		s.state.CurrentStep = 0
		s.vehicle.Status = domain.VehicleIdle

		s.log.WithField("minutes", s.route.EstimatedTime).Info("simulation completed")
		s.notifyLocked(ports.Notification{Kind: ports.SimulationCompleted, Minutes: s.route.EstimatedTime})
		return
	}

	pos := s.route.Path[next]
	s.vehicle.Position = pos
	s.vehicle.Status = domain.VehicleMoving
	s.state.CurrentStep = next

	for _, dp := range s.points {
		if dp.Delivered || dp.Position != pos {
			continue
		}
		if err := dp.MarkDelivered(); err != nil {
			s.log.WithError(err).Warn("delivery skipped")
			break
		}
		s.vehicle.Unload()
		s.vehicle.Status = domain.VehicleDelivering

		s.log.WithFields(logrus.Fields{
			"point":   dp.ID,
			"address": dp.Address,
			"step":    next,
		}).Info("package delivered")
		s.notifyLocked(ports.Notification{Kind: ports.DeliveryCompleted, Address: dp.Address})
		break
	}
}

// replanLocked installs a new route from the selected planner, returns the
// vehicle to the depot and rewinds progress. Running/paused flags are kept.
func (s *Simulation) replanLocked(alg domain.Algorithm, hint string) {
	planner := PlannerFor(alg, s.baseline, s.heuristic)

	s.algorithm = planner.Algorithm()
	s.route = planner.PlanRoute(s.cfg.Depot, s.points, s.registry.Obstacles(), hint)
	s.state.TotalSteps = len(s.route.Path)
	s.state.CurrentStep = 0

	s.vehicle.Position = s.cfg.Depot
	if !s.state.Running {
		s.vehicle.Status = domain.VehicleIdle
	}
	if err := s.vehicle.Load(len(pendingPoints(s.points))); err != nil {
		s.log.WithError(err).Warn("vehicle load not updated")
	}

	s.log.WithFields(logrus.Fields{
		"algorithm": s.route.OptimizedBy,
		"distance":  s.route.TotalDistance,
		"steps":     s.state.TotalSteps,
	}).Info("route recomputed")
	s.notifyLocked(ports.Notification{Kind: ports.RouteRecomputed, Distance: s.route.TotalDistance})
}

func (s *Simulation) afterInjectLocked(ev domain.DisruptionEvent, before uint64) {
	s.notifyLocked(ports.Notification{
		Kind:        ports.EventTriggered,
		EventID:     ev.ID,
		Description: ev.Description,
	})
	s.replanOnObstacleChangeLocked(before)
}

func (s *Simulation) replanOnObstacleChangeLocked(before uint64) {
	if !s.cfg.AutoReplan || s.route == nil {
		return
	}
	if s.registry.ObstacleVersion() == before {
		return
	}
	s.replanLocked(s.algorithm, "")
}

func (s *Simulation) regeneratePointsLocked() error {
	points, err := GenerateDeliveryPoints(s.rng, s.cfg.DeliveryCount, s.cfg.GridSize, s.cfg.Depot)
	if err != nil {
		return err
	}
	if err := s.vehicle.Load(len(points)); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfiguration, err)
	}
	s.points = points
	return nil
}

func (s *Simulation) pointsLocked() []domain.DeliveryPoint {
	out := make([]domain.DeliveryPoint, len(s.points))
	for i, dp := range s.points {
		out[i] = *dp
	}
	return out
}

func (s *Simulation) notifyLocked(n ports.Notification) {
	n.At = s.clock.Now()
	s.notifier.Notify(n)
}

func copyRoute(r *domain.Route) domain.Route {
	if r == nil {
		return domain.Route{}
	}
	out := *r
	out.Path = append([]domain.Position(nil), r.Path...)
	return out
}
