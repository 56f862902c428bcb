package schedule

import (
	"context"
	"delivery-sim/internal/ports"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// TickerScheduler runs each task on its own goroutine driven by a
// time.Ticker. A tick that arrives while the previous run of the same task
// is still executing is dropped, never queued.
type TickerScheduler struct {
	log *logrus.Entry
}

func NewTickerScheduler() *TickerScheduler {
	return &TickerScheduler{log: logrus.WithField("module", "scheduler")}
}

func (s *TickerScheduler) Every(interval time.Duration, fn func()) ports.Task {
	ctx, cancel := context.WithCancel(context.Background())
	t := &tickerTask{cancel: cancel}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !t.running.CompareAndSwap(false, true) {
					s.log.Debug("tick suppressed: previous tick still running")
					continue
				}
				go func() {
					defer t.running.Store(false)
					if ctx.Err() != nil {
						return
					}
					fn()
				}()
			}
		}
	}()

	return t
}

type tickerTask struct {
	cancel  context.CancelFunc
	running atomic.Bool
	once    sync.Once
}

// Stop cancels the ticker without waiting for an in-flight run, so it is
// safe to call from inside the task itself.
func (t *tickerTask) Stop() {
	t.once.Do(t.cancel)
}
