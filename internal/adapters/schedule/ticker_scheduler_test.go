package schedule

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestTickerSchedulerRunsUntilStopped(t *testing.T) {
	s := NewTickerScheduler()

	var runs atomic.Int32
	task := s.Every(5*time.Millisecond, func() { runs.Add(1) })

	deadline := time.Now().Add(2 * time.Second)
	for runs.Load() < 3 {
		if time.Now().After(deadline) {
			t.Fatalf("runs = %d after 2s, want at least 3", runs.Load())
		}
		time.Sleep(time.Millisecond)
	}

	task.Stop()
	task.Stop()

	// Let an in-flight run drain before sampling.
	time.Sleep(20 * time.Millisecond)
	settled := runs.Load()
	time.Sleep(30 * time.Millisecond)

	if got := runs.Load(); got != settled {
		t.Fatalf("runs after Stop = %d, want %d", got, settled)
	}
}

func TestTickerSchedulerDropsOverlappingTicks(t *testing.T) {
	s := NewTickerScheduler()

	var inFlight, maxInFlight atomic.Int32
	task := s.Every(time.Millisecond, func() {
		n := inFlight.Add(1)
		for {
			m := maxInFlight.Load()
			if n <= m || maxInFlight.CompareAndSwap(m, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		inFlight.Add(-1)
	})

	time.Sleep(60 * time.Millisecond)
	task.Stop()

	if got := maxInFlight.Load(); got != 1 {
		t.Fatalf("max concurrent runs = %d, want 1", got)
	}
}
