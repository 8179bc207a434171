package playingicon

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualScheduler_RunsInOrder(t *testing.T) {
	sched := NewManualScheduler()
	var order []string

	sched.After(20*time.Millisecond, func() { order = append(order, "b") })
	sched.After(10*time.Millisecond, func() { order = append(order, "a") })
	cancel := sched.After(15*time.Millisecond, func() { order = append(order, "cancelled") })
	cancel()

	sched.Advance(30 * time.Millisecond)

	assert.Equal(t, []string{"a", "b"}, order)
	assert.Equal(t, 30*time.Millisecond, sched.Now())
	assert.Zero(t, sched.Pending())
}

func TestManualScheduler_ZeroDelayRescheduleWaitsForNextAdvance(t *testing.T) {
	sched := NewManualScheduler()
	runs := 0
	var loop func()
	loop = func() {
		runs++
		sched.After(0, loop)
	}
	sched.After(0, loop)

	sched.Advance(time.Second)
	assert.Equal(t, 1, runs)
	assert.Equal(t, 1, sched.Pending())

	sched.Advance(0)
	assert.Equal(t, 2, runs)
	assert.Equal(t, 1, sched.Pending())
}
