package binding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueRegisterSeedsCurrentValue(t *testing.T) {
	v := NewValue(7)
	hs := v.Register(func(any) {})
	assert.Equal(t, 7, hs.Value)
}

func TestValueSetNotifiesRegisteredHandlersOnChange(t *testing.T) {
	v := NewValue(0)
	var seen []any
	v.Register(func(val any) { seen = append(seen, val) })

	v.Set(1)
	v.Set(2)

	require.Len(t, seen, 2)
	assert.Equal(t, 1, seen[0])
	assert.Equal(t, 2, seen[1])
}

func TestValueSetIsNoOpWhenValueUnchanged(t *testing.T) {
	v := NewValue("a")
	calls := 0
	v.Register(func(any) { calls++ })

	v.Set("a")
	v.Set("a")

	assert.Zero(t, calls)
}

func TestValueDetachStopsFurtherNotifications(t *testing.T) {
	v := NewValue(0)
	calls := 0
	hs := v.Register(func(any) { calls++ })

	v.Set(1)
	hs.Detach()
	v.Set(2)

	assert.Equal(t, 1, calls)
}

func TestSyncValueRegisterSyncSeedsPointerToCurrentValue(t *testing.T) {
	s := NewSyncValue(5)
	hs := s.RegisterSync(func(any) {})
	ptr, ok := hs.Value.(*int)
	require.True(t, ok)
	assert.Equal(t, 5, *ptr)
}

func TestSyncValueSetNotifiesWithAddressOfStoredValue(t *testing.T) {
	s := NewSyncValue(0)
	var lastSeen int
	s.RegisterSync(func(v any) { lastSeen = *(v.(*int)) })

	s.Set(9)

	assert.Equal(t, 9, lastSeen)
}
