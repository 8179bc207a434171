package playingicon

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Scheduler runs fn once after d on the widget's owning thread.
// The returned cancel func prevents fn from running if it has not run yet.
type Scheduler interface {
	After(d time.Duration, fn func()) (cancel func())
}

// Looper serializes posted callbacks onto the goroutine that calls Run,
// the way a UI thread handler does.
type Looper struct {
	queue    chan func()
	done     chan struct{}
	stopOnce sync.Once
}

// NewLooper creates a looper with the given queue capacity.
func NewLooper(capacity int) *Looper {
	if capacity < 1 {
		capacity = 1
	}
	return &Looper{
		queue: make(chan func(), capacity),
		done:  make(chan struct{}),
	}
}

// Post enqueues fn. It returns false once the looper has stopped.
func (l *Looper) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}

	select {
	case l.queue <- fn:
		return true
	case <-l.done:
		return false
	}
}

// After posts fn to the loop once d has elapsed.
func (l *Looper) After(d time.Duration, fn func()) func() {
	var cancelled atomic.Bool
	timer := time.AfterFunc(d, func() {
		l.Post(func() {
			// Cancel runs on the loop too, so this check cannot race with it.
			if !cancelled.Load() {
				fn()
			}
		})
	})
	return func() {
		cancelled.Store(true)
		timer.Stop()
	}
}

// Run executes posted callbacks until ctx is done.
// Callbacks still queued at that point are dropped.
func (l *Looper) Run(ctx context.Context) error {
	defer l.stopOnce.Do(func() { close(l.done) })

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.queue:
			fn()
		}
	}
}

// ManualScheduler is a Scheduler driven by an explicit clock.
// It is not safe for concurrent use.
type ManualScheduler struct {
	now       time.Duration
	seq       uint64
	tasks     []*manualTask
	advancing bool
}

type manualTask struct {
	at        time.Duration
	seq       uint64
	fn        func()
	cancelled bool
	deferred  bool // scheduled with no delay during Advance
}

// NewManualScheduler creates a scheduler whose clock starts at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// After registers fn to run when the clock reaches now+d.
func (m *ManualScheduler) After(d time.Duration, fn func()) func() {
	m.seq++
	task := &manualTask{at: m.now + d, seq: m.seq, fn: fn, deferred: m.advancing && d <= 0}
	m.tasks = append(m.tasks, task)
	return func() { task.cancelled = true }
}

// Now returns the elapsed virtual time.
func (m *ManualScheduler) Now() time.Duration {
	return m.now
}

// Pending returns the number of callbacks that have not run or been cancelled.
func (m *ManualScheduler) Pending() int {
	n := 0
	for _, t := range m.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d, running due callbacks in order.
// Callbacks scheduled while advancing run too if they fall due within d,
// except those scheduled with no delay: they wait for the next Advance, so a
// callback that keeps rescheduling itself immediately cannot spin forever.
func (m *ManualScheduler) Advance(d time.Duration) {
	target := m.now + d
	m.advancing = true
	defer func() {
		m.advancing = false
		for _, t := range m.tasks {
			t.deferred = false
		}
	}()

	for {
		m.compact()
		sort.Slice(m.tasks, func(i, j int) bool {
			if m.tasks[i].at != m.tasks[j].at {
				return m.tasks[i].at < m.tasks[j].at
			}
			return m.tasks[i].seq < m.tasks[j].seq
		})

		next := -1
		for i, t := range m.tasks {
			if !t.deferred {
				next = i
				break
			}
		}
		if next < 0 || m.tasks[next].at > target {
			break
		}

		task := m.tasks[next]
		m.tasks = append(m.tasks[:next], m.tasks[next+1:]...)
		m.now = task.at
		task.fn()
	}
	m.now = target
}

func (m *ManualScheduler) compact() {
	live := m.tasks[:0]
	for _, t := range m.tasks {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	m.tasks = live
}
