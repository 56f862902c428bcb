package domain

import "time"

type RunStatus string

const (
	StatusStopped RunStatus = "stopped"
	StatusRunning RunStatus = "running"
	StatusPaused  RunStatus = "paused"
)

// Progress of the simulation along the active route.
// CurrentStep indexes Route.Path; TotalSteps equals len(Route.Path).
type SimulationState struct {
	Running      bool
	Paused       bool
	CurrentStep  int
	TotalSteps   int
	TickInterval time.Duration
}

func (s SimulationState) Status() RunStatus {
	switch {
	case s.Running && s.Paused:
		return StatusPaused
	case s.Running:
		return StatusRunning
	default:
		return StatusStopped
	}
}
