// Package observability is a pluggable error-reporting sink for the router's
// input loop: a widget panic, handler panic, or dispatch error is reported
// through whatever Reporter is installed, with zero overhead when none is.
package observability

import (
	"fmt"
	"sync"
	"time"
)

// PanicError wraps a recovered panic from a widget's Update, Render, or
// Measure/Arrange call, plus the window it occurred on.
type PanicError struct {
	WindowID string
	Phase    string // "update", "render", "measure", "arrange"
	Value    interface{}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic during %s on window %s: %v", e.Phase, e.WindowID, e.Value)
}

// Context carries diagnostic detail alongside a reported error.
type Context struct {
	WindowID   string
	Phase      string
	Timestamp  time.Time
	Tags       map[string]string
	StackTrace []byte
}

// Reporter is the pluggable error-tracking backend. The router does not
// read the global reporter: it reports recovered panics to the Reporter in
// its own Config (router.WithReporter) and re-panics when that is nil.
type Reporter interface {
	ReportPanic(err *PanicError, ctx *Context)
	ReportError(err error, ctx *Context)
	Flush(timeout time.Duration) error
}

var (
	mu       sync.RWMutex
	reporter Reporter
)

// SetReporter installs the global reporter, or clears it with nil.
func SetReporter(r Reporter) {
	mu.Lock()
	defer mu.Unlock()
	reporter = r
}

// GetReporter returns the installed reporter, or nil.
func GetReporter() Reporter {
	mu.RLock()
	defer mu.RUnlock()
	return reporter
}
