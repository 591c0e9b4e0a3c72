package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerFiresExactlyOnceWhenDue(t *testing.T) {
	timers := NewTimers()
	fired := 0
	timers.New(1000, 500, func() { fired++ })

	timers.FireDue(1400, nil)
	assert.Equal(t, 0, fired, "not yet due")

	timers.FireDue(1500, nil)
	assert.Equal(t, 1, fired)

	timers.FireDue(2000, nil)
	assert.Equal(t, 1, fired, "a fired timer must not fire again")
	assert.Equal(t, 0, timers.Len())
}

func TestFireDueInvokesOnFiredCallback(t *testing.T) {
	timers := NewTimers()
	timers.New(0, 10, func() {})
	timers.New(0, 10, func() {})

	count := 0
	timers.FireDue(100, func() { count++ })
	assert.Equal(t, 2, count)
}

func TestRemoveCancelsPendingTimer(t *testing.T) {
	timers := NewTimers()
	fired := false
	id := timers.New(0, 10, func() { fired = true })

	timers.Remove(id)
	timers.FireDue(100, nil)
	assert.False(t, fired)
	assert.Equal(t, 0, timers.Len())
}

func TestRemoveOfAlreadyFiredTimerIsNoOp(t *testing.T) {
	timers := NewTimers()
	id := timers.New(0, 10, func() {})
	timers.FireDue(100, nil)
	require.NotPanics(t, func() { timers.Remove(id) })
}

func TestLenReflectsPendingCount(t *testing.T) {
	timers := NewTimers()
	assert.Equal(t, 0, timers.Len())
	timers.New(0, 100, func() {})
	timers.New(0, 100, func() {})
	assert.Equal(t, 2, timers.Len())
}
