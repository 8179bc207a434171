package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg fires a callback registered with TickScheduler.
type FrameMsg struct {
	ID uint64
}

// TickScheduler implements playingicon.Scheduler on top of tea.Tick.
// Callbacks run inside Update, so the icon is only touched by the
// program's event loop.
type TickScheduler struct {
	nextID    uint64
	callbacks map[uint64]func()
	queued    []tea.Cmd
}

// NewTickScheduler creates an empty scheduler.
func NewTickScheduler() *TickScheduler {
	return &TickScheduler{
		callbacks: make(map[uint64]func()),
	}
}

// After registers fn and queues a tick command for it.
func (s *TickScheduler) After(d time.Duration, fn func()) func() {
	s.nextID++
	id := s.nextID
	s.callbacks[id] = fn
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return FrameMsg{ID: id}
	}))
	return func() { delete(s.callbacks, id) }
}

// Cmd hands the tick commands queued since the last call to the runtime.
func (s *TickScheduler) Cmd() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

// Fire runs the callback for id. Cancelled or unknown ids are ignored.
func (s *TickScheduler) Fire(id uint64) bool {
	fn, ok := s.callbacks[id]
	if !ok {
		return false
	}
	delete(s.callbacks, id)
	fn()
	return true
}

// Pending returns the number of callbacks waiting for their tick.
func (s *TickScheduler) Pending() int {
	return len(s.callbacks)
}
