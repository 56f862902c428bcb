package notify

import (
	"delivery-sim/internal/ports"
	"sync"
)

const DefaultFeedSize = 50

// Feed keeps the most recent notifications in a fixed-size ring.
type Feed struct {
	mu    sync.Mutex
	buf   []ports.Notification
	next  int
	count int
}

func NewFeed(size int) *Feed {
	if size <= 0 {
		size = DefaultFeedSize
	}
	return &Feed{buf: make([]ports.Notification, size)}
}

func (f *Feed) Notify(n ports.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.buf[f.next] = n
	f.next = (f.next + 1) % len(f.buf)
	if f.count < len(f.buf) {
		f.count++
	}
}

// Recent returns up to limit notifications, newest first. A non-positive
// limit returns everything retained.
func (f *Feed) Recent(limit int) []ports.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := f.count
	if limit > 0 && limit < n {
		n = limit
	}

	out := make([]ports.Notification, 0, n)
	for i := 1; i <= n; i++ {
		idx := (f.next - i + len(f.buf)) % len(f.buf)
		out = append(out, f.buf[idx])
	}
	return out
}
