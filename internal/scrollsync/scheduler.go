package scrollsync

import (
	"sync"
	"time"
)

// Scheduler defers a callback to a later tick. The synchronizer schedules
// at most one callback at a time, so a Scheduler only needs to run what it
// is given, once, in order.
type Scheduler func(fn func())

// frameInterval approximates one display frame.
const frameInterval = 16 * time.Millisecond

// FrameScheduler defers callbacks by roughly one frame, collapsing a burst
// of scroll events into a single corrective write.
func FrameScheduler() Scheduler {
	return func(fn func()) {
		time.AfterFunc(frameInterval, fn)
	}
}

// ManualScheduler queues callbacks for explicit release; tests use it to
// step the synchronizer deterministically.
type ManualScheduler struct {
	mu      sync.Mutex
	pending []func()
}

// Schedule queues fn. Expose this method as the Scheduler.
func (m *ManualScheduler) Schedule(fn func()) {
	m.mu.Lock()
	m.pending = append(m.pending, fn)
	m.mu.Unlock()
}

// Fire runs and clears all queued callbacks, returning how many ran.
func (m *ManualScheduler) Fire() int {
	m.mu.Lock()
	fns := m.pending
	m.pending = nil
	m.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	return len(fns)
}

// Pending returns the number of queued callbacks.
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}
