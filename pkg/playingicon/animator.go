package playingicon

import "time"

// Animator repeatedly runs a frame callback on a Scheduler until stopped.
// At most one tick is pending at any time. All methods must be called from
// the scheduler's thread.
type Animator struct {
	sched   Scheduler
	delay   time.Duration
	frame   func()
	running bool
	gen     uint64 // bumped on every Start/Stop so stale callbacks drop out
	cancel  func() // cancels the pending tick, nil when none
	frames  uint64
}

// NewAnimator creates a stopped animator that calls frame every delay.
func NewAnimator(sched Scheduler, delay time.Duration, frame func()) *Animator {
	if delay <= 0 {
		delay = DefaultFrameDelay
	}
	return &Animator{
		sched: sched,
		delay: delay,
		frame: frame,
	}
}

// Start schedules the first tick. It is a no-op while running.
func (a *Animator) Start() {
	if a.running {
		return
	}
	a.running = true
	a.gen++
	a.schedule()
}

// Stop cancels the pending tick. It is a no-op while stopped.
func (a *Animator) Stop() {
	if !a.running {
		return
	}
	a.running = false
	a.gen++
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
}

// Running reports whether ticks are being scheduled.
func (a *Animator) Running() bool {
	return a.running
}

// Pending reports whether a tick is scheduled.
func (a *Animator) Pending() bool {
	return a.cancel != nil
}

// Frames returns the number of frames run so far.
func (a *Animator) Frames() uint64 {
	return a.frames
}

// Delay returns the interval between ticks.
func (a *Animator) Delay() time.Duration {
	return a.delay
}

func (a *Animator) schedule() {
	gen := a.gen
	a.cancel = a.sched.After(a.delay, func() { a.fire(gen) })
}

func (a *Animator) fire(gen uint64) {
	if !a.running || gen != a.gen {
		return
	}
	a.cancel = nil
	a.frames++
	if a.frame != nil {
		a.frame()
	}
	// The frame callback may have stopped or restarted us.
	if a.running && gen == a.gen && a.cancel == nil {
		a.schedule()
	}
}
