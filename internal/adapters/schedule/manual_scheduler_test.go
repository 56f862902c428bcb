package schedule

import (
	"testing"
	"time"
)

func TestManualSchedulerFiresLiveTasks(t *testing.T) {
	s := NewManualScheduler()

	var a, b int
	ta := s.Every(time.Second, func() { a++ })
	s.Every(2*time.Second, func() { b++ })

	s.FireN(3)
	if a != 3 || b != 3 {
		t.Fatalf("fired a=%d b=%d, want 3 and 3", a, b)
	}

	ta.Stop()
	s.Fire()
	if a != 3 {
		t.Fatalf("stopped task fired: a = %d, want 3", a)
	}
	if b != 4 {
		t.Fatalf("b = %d, want 4", b)
	}

	if got := s.Active(); got != 1 {
		t.Fatalf("Active() = %d, want 1", got)
	}
	if got := s.Interval(); got != 2*time.Second {
		t.Fatalf("Interval() = %s, want 2s", got)
	}
	if got := len(s.Funcs()); got != 2 {
		t.Fatalf("len(Funcs()) = %d, want 2", got)
	}
}

func TestManualSchedulerStopFromInsideTask(t *testing.T) {
	s := NewManualScheduler()

	runs := 0
	var task interface{ Stop() }
	task = s.Every(time.Second, func() {
		runs++
		task.Stop()
	})

	s.FireN(3)

	if runs != 1 {
		t.Fatalf("runs = %d, want 1", runs)
	}
	if got := s.Active(); got != 0 {
		t.Fatalf("Active() = %d, want 0", got)
	}
	if got := s.Interval(); got != 0 {
		t.Fatalf("Interval() = %s, want 0", got)
	}
}
