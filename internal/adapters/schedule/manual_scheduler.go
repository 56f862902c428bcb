package schedule

import (
	"delivery-sim/internal/ports"
	"sync"
	"time"
)

// ManualScheduler hands tick control to the caller. Tasks only run when
// Fire is called, which makes tick sequences deterministic in tests.
type ManualScheduler struct {
	mu    sync.Mutex
	tasks []*manualTask
}

type manualTask struct {
	interval time.Duration
	fn       func()
	stopped  bool
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) Every(interval time.Duration, fn func()) ports.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &manualTask{interval: interval, fn: fn}
	s.tasks = append(s.tasks, t)
	return &manualHandle{s: s, t: t}
}

// Fire runs every live task once, in arming order.
func (s *ManualScheduler) Fire() {
	for _, t := range s.live() {
		t.fn()
	}
}

// FireN calls Fire n times.
func (s *ManualScheduler) FireN(n int) {
	for i := 0; i < n; i++ {
		s.Fire()
	}
}

// Active reports how many tasks are armed.
func (s *ManualScheduler) Active() int {
	return len(s.live())
}

// Interval of the most recently armed live task, zero if none.
func (s *ManualScheduler) Interval() time.Duration {
	live := s.live()
	if len(live) == 0 {
		return 0
	}
	return live[len(live)-1].interval
}

// Funcs returns the callbacks of every task ever armed, stopped or not, so
// tests can replay a stale callback.
func (s *ManualScheduler) Funcs() []func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]func(), 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, t.fn)
	}
	return out
}

func (s *ManualScheduler) live() []*manualTask {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*manualTask, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !t.stopped {
			out = append(out, t)
		}
	}
	return out
}

type manualHandle struct {
	s *ManualScheduler
	t *manualTask
}

func (h *manualHandle) Stop() {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()

	h.t.stopped = true
}
