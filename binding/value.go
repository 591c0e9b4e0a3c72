package binding

import "github.com/newbpydev/tuifw/arena"

// handlerEntry is the per-registration payload stored in a Value's own
// handler arena, so Detach is an O(1) arena.Remove rather than a linear
// slice search.
type handlerEntry struct {
	fn Handler
}

// Value is the engine's concrete Source: a single-threaded, mutable cell of
// T that notifies every registered Handler on Set. It plays the role the
// teacher's reactive Signal plays, stripped of locking and goroutine
// dispatch — the bindings engine is cooperatively single-threaded (spec
// §5), so no synchronization is needed here.
//
// Set only notifies when the value actually changes. Without that check a
// feedback binding graph (spec §8 scenario S1's NOT/OR trigger circuit)
// would re-fire forever once it reached a fixed point.
type Value[T comparable] struct {
	value    T
	handlers *arena.Arena[handlerEntry]
}

// NewValue creates a Value seeded with initial.
func NewValue[T comparable](initial T) *Value[T] {
	return &Value[T]{value: initial, handlers: arena.New[handlerEntry]()}
}

// Get returns the current value.
func (v *Value[T]) Get() T { return v.value }

// Set replaces the value and, if it changed, notifies every registered
// handler in arena slot order (a slot freed by a detach is reused by a
// later registration).
func (v *Value[T]) Set(next T) {
	if v.value == next {
		return
	}
	v.value = next
	for _, item := range v.handlers.Items() {
		item.Value.fn(v.value)
	}
}

// Register implements Source.
func (v *Value[T]) Register(h Handler) HandledSource {
	id := arena.Insert(v.handlers, func(self arena.Id) (handlerEntry, arena.Id) {
		return handlerEntry{fn: h}, self
	})
	return HandledSource{
		Value:  v.value,
		Detach: func() { v.handlers.Remove(id) },
	}
}

// syncHandlerEntry is SyncValue's analogue of handlerEntry.
type syncHandlerEntry struct {
	fn SyncHandler
}

// SyncValue is the engine's concrete SyncSource: like Value, but each
// notification conveys the address of the stored Y as a mutable side
// channel, per spec's SyncSource<Y> contract.
type SyncValue[Y any] struct {
	value    Y
	handlers *arena.Arena[syncHandlerEntry]
}

// NewSyncValue creates a SyncValue seeded with initial.
func NewSyncValue[Y any](initial Y) *SyncValue[Y] {
	return &SyncValue[Y]{value: initial, handlers: arena.New[syncHandlerEntry]()}
}

// Get returns the current value.
func (s *SyncValue[Y]) Get() Y { return s.value }

// Set replaces the value and notifies every registered handler with &s.value.
func (s *SyncValue[Y]) Set(next Y) {
	s.value = next
	for _, item := range s.handlers.Items() {
		item.Value.fn(&s.value)
	}
}

// RegisterSync implements SyncSource.
func (s *SyncValue[Y]) RegisterSync(h SyncHandler) HandledSource {
	id := arena.Insert(s.handlers, func(self arena.Id) (syncHandlerEntry, arena.Id) {
		return syncHandlerEntry{fn: h}, self
	})
	return HandledSource{
		Value:  &s.value,
		Detach: func() { s.handlers.Remove(id) },
	}
}
