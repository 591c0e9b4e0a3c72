package router

import "github.com/newbpydev/tuifw/arena"

// Timer owns a one-shot callback due span_ms after start_ms (spec §3
// "Timers": "{start_time, span_ms, one-shot callback}"). Identifiers are
// arena-issued so deleting a timer is O(1).
type Timer struct {
	StartMS int64
	SpanMS  int64
	Fire    func()
}

// Timers is the arena of live timers owned by one Router.
type Timers struct {
	arena *arena.Arena[Timer]
}

// NewTimers creates an empty timer arena.
func NewTimers() *Timers {
	return &Timers{arena: arena.New[Timer]()}
}

// New schedules fire to run once at least spanMS after nowMS, returning its
// arena id.
func (t *Timers) New(nowMS, spanMS int64, fire func()) arena.Id {
	return arena.Insert(t.arena, func(self arena.Id) (Timer, arena.Id) {
		return Timer{StartMS: nowMS, SpanMS: spanMS, Fire: fire}, self
	})
}

// Remove cancels a pending timer. A no-op if id is already dangling (it may
// have already fired or been cancelled).
func (t *Timers) Remove(id arena.Id) {
	if t.arena.Contains(id) {
		t.arena.Remove(id)
	}
}

// FireDue removes and fires every timer whose start+span has elapsed as of
// nowMS, exactly once each (spec §3, §4.6 input-loop step 2). Order among
// simultaneously-due timers follows arena iteration order, which is
// deterministic per call but otherwise unspecified.
func (t *Timers) FireDue(nowMS int64, onFired func()) {
	var due []arena.Id
	for _, item := range t.arena.Items() {
		if nowMS-item.Value.StartMS >= item.Value.SpanMS {
			due = append(due, item.Id)
		}
	}
	for _, id := range due {
		timer := t.arena.Remove(id)
		timer.Fire()
		if onFired != nil {
			onFired()
		}
	}
}

// Len reports the number of pending timers.
func (t *Timers) Len() int { return t.arena.Len() }
