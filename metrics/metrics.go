// Package metrics provides pluggable, zero-overhead-when-disabled metrics
// collection for the router's input loop: tick duration, measure/arrange/
// render timings, timer firings, and focus changes.
package metrics

import (
	"sync"
	"time"
)

// Collector receives counters and timings from one input-loop tick. All
// methods must be safe for concurrent use and must never block.
type Collector interface {
	// RecordTick records the wall time of one full input-loop iteration.
	RecordTick(d time.Duration)

	// RecordLayout records time spent in the measure+arrange pass.
	RecordLayout(d time.Duration)

	// RecordRender records time spent in the render pass.
	RecordRender(d time.Duration)

	// RecordDispatch records one routed-event dispatch (tunnel+bubble), by
	// event kind name (e.g. "Key", "Cmd", "LmbDown").
	RecordDispatch(kind string, d time.Duration)

	// RecordTimerFired increments the count of timers that fired this tick.
	RecordTimerFired()

	// RecordFocusChange records one primary or secondary focus transfer.
	RecordFocusChange(primary bool)
}

// NoOp is the default Collector: every method is an empty, inlinable call.
type NoOp struct{}

func (NoOp) RecordTick(time.Duration)            {}
func (NoOp) RecordLayout(time.Duration)          {}
func (NoOp) RecordRender(time.Duration)          {}
func (NoOp) RecordDispatch(string, time.Duration) {}
func (NoOp) RecordTimerFired()                   {}
func (NoOp) RecordFocusChange(bool)              {}

var (
	mu      sync.RWMutex
	current Collector = NoOp{}
)

// SetGlobal installs c as the process-wide collector. Passing nil restores
// the NoOp collector.
func SetGlobal(c Collector) {
	mu.Lock()
	defer mu.Unlock()
	if c == nil {
		c = NoOp{}
	}
	current = c
}

// Global returns the currently installed collector, never nil.
func Global() Collector {
	mu.RLock()
	defer mu.RUnlock()
	return current
}
