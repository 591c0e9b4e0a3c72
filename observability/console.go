package observability

import (
	"log"
	"sync"
	"time"
)

// ConsoleReporter logs panics and errors to the standard logger. In verbose
// mode it also prints the captured stack trace.
type ConsoleReporter struct {
	verbose bool
	mu      sync.Mutex
}

// NewConsoleReporter builds a reporter that writes through log.Printf.
func NewConsoleReporter(verbose bool) *ConsoleReporter {
	return &ConsoleReporter{verbose: verbose}
}

func (r *ConsoleReporter) ReportPanic(err *PanicError, ctx *Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	log.Printf("[ERROR] panic during %s on window %s: %v", ctx.Phase, ctx.WindowID, err.Value)
	if r.verbose && len(ctx.StackTrace) > 0 {
		log.Printf("stack trace:\n%s", ctx.StackTrace)
	}
}

func (r *ConsoleReporter) ReportError(err error, ctx *Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	log.Printf("[ERROR] window %s: %v", ctx.WindowID, err)
	if r.verbose && len(ctx.StackTrace) > 0 {
		log.Printf("stack trace:\n%s", ctx.StackTrace)
	}
}

// Flush is a no-op: console output is already synchronous.
func (r *ConsoleReporter) Flush(timeout time.Duration) error { return nil }
