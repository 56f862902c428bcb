package ports

import "time"

// A cancellable repeating task.
type Task interface {
	// Stop cancels future runs. Safe to call more than once.
	Stop()
}

// Contract for arming the periodic simulation tick.
type Scheduler interface {
	// Run fn every interval until the returned Task is stopped.
	Every(interval time.Duration, fn func()) Task
}
