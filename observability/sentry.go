package observability

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// SentryReporter sends panics and errors to Sentry, tagged with the
// window id and router phase they occurred in.
type SentryReporter struct {
	hub *sentry.Hub
}

// SentryOption configures the underlying Sentry client.
type SentryOption func(*sentry.ClientOptions)

// WithDebug toggles Sentry's own debug logging.
func WithDebug(debug bool) SentryOption {
	return func(o *sentry.ClientOptions) { o.Debug = debug }
}

// WithEnvironment sets the environment tag attached to every event.
func WithEnvironment(env string) SentryOption {
	return func(o *sentry.ClientOptions) { o.Environment = env }
}

// WithRelease sets the release identifier attached to every event.
func WithRelease(release string) SentryOption {
	return func(o *sentry.ClientOptions) { o.Release = release }
}

// NewSentryReporter initializes the Sentry SDK with dsn (an empty dsn
// disables sending, useful in tests) and returns a reporter bound to the
// current hub.
func NewSentryReporter(dsn string, opts ...SentryOption) (*SentryReporter, error) {
	clientOpts := sentry.ClientOptions{Dsn: dsn}
	for _, opt := range opts {
		opt(&clientOpts)
	}
	if err := sentry.Init(clientOpts); err != nil {
		return nil, fmt.Errorf("observability: init sentry: %w", err)
	}
	return &SentryReporter{hub: sentry.CurrentHub()}, nil
}

func (r *SentryReporter) ReportPanic(err *PanicError, ctx *Context) {
	r.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("window_id", ctx.WindowID)
		scope.SetTag("phase", ctx.Phase)
		for k, v := range ctx.Tags {
			scope.SetTag(k, v)
		}
		scope.SetExtra("panic_value", fmt.Sprintf("%v", err.Value))
		r.hub.CaptureException(err)
	})
}

func (r *SentryReporter) ReportError(err error, ctx *Context) {
	r.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("window_id", ctx.WindowID)
		scope.SetTag("phase", ctx.Phase)
		for k, v := range ctx.Tags {
			scope.SetTag(k, v)
		}
		r.hub.CaptureException(err)
	})
}

// Flush blocks until pending events are sent or timeout elapses.
func (r *SentryReporter) Flush(timeout time.Duration) error {
	r.hub.Flush(timeout)
	return nil
}
