package router

import (
	"github.com/newbpydev/tuifw/metrics"
	"github.com/newbpydev/tuifw/observability"
)

// Config holds the input loop's tunable collaborators: target frame rate,
// time source, error reporter, and metrics collector. The zero Config is
// not ready to use; build one with NewConfig.
type Config struct {
	fps      int
	clock    Clock
	reporter observability.Reporter
	metrics  metrics.Collector
}

// Option configures a Config, in the functional-options style.
type Option func(*Config)

// WithFPS overrides the target tick rate (default 40, per spec §4.6 step 7).
func WithFPS(fps int) Option {
	return func(c *Config) { c.fps = fps }
}

// WithClock overrides the time source, useful for deterministic tests.
func WithClock(clock Clock) Option {
	return func(c *Config) { c.clock = clock }
}

// WithReporter installs an observability.Reporter the loop notifies on
// recovered widget/handler panics.
func WithReporter(r observability.Reporter) Option {
	return func(c *Config) { c.reporter = r }
}

// WithMetrics installs a metrics.Collector the loop records tick/layout/
// render/dispatch timings into.
func WithMetrics(m metrics.Collector) Option {
	return func(c *Config) { c.metrics = m }
}

// NewConfig builds a Config with FPS=40, SystemClock, and no-op
// reporter/metrics, then applies opts.
func NewConfig(opts ...Option) Config {
	c := Config{fps: 40, clock: SystemClock, metrics: metrics.NoOp{}}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
