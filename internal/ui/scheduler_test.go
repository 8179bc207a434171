package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectMsgs runs cmd and any batched commands it returns.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collectMsgs(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func TestTickScheduler_FireRunsOnce(t *testing.T) {
	s := NewTickScheduler()
	calls := 0

	s.After(time.Millisecond, func() { calls++ })
	require.Equal(t, 1, s.Pending())

	msgs := collectMsgs(s.Cmd())
	require.Len(t, msgs, 1)
	frame, ok := msgs[0].(FrameMsg)
	require.True(t, ok)

	assert.True(t, s.Fire(frame.ID))
	assert.False(t, s.Fire(frame.ID))
	assert.Equal(t, 1, calls)
	assert.Zero(t, s.Pending())
}

func TestTickScheduler_CmdDrainsQueue(t *testing.T) {
	s := NewTickScheduler()

	assert.Nil(t, s.Cmd())

	s.After(time.Millisecond, func() {})
	s.After(time.Millisecond, func() {})
	assert.NotNil(t, s.Cmd())
	assert.Nil(t, s.Cmd())
	assert.Equal(t, 2, s.Pending())
}

func TestTickScheduler_CancelledCallbackIgnored(t *testing.T) {
	s := NewTickScheduler()
	calls := 0

	cancel := s.After(time.Millisecond, func() { calls++ })
	msgs := collectMsgs(s.Cmd())
	require.Len(t, msgs, 1)

	cancel()
	assert.False(t, s.Fire(msgs[0].(FrameMsg).ID))
	assert.Zero(t, calls)
}
