package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus implements Collector, exposing every router metric prefixed
// with "tuifw_" for scraping.
type Prometheus struct {
	tick         prometheus.Histogram
	layout       prometheus.Histogram
	render       prometheus.Histogram
	dispatch     *prometheus.HistogramVec
	timerFired   prometheus.Counter
	focusChanges *prometheus.CounterVec
}

// NewPrometheus registers every router metric against reg and returns the
// collector. Panics on duplicate registration, matching the fail-fast
// convention used at process startup.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	p := &Prometheus{
		tick: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tuifw_tick_seconds",
			Help:    "Duration of one input-loop tick.",
			Buckets: prometheus.DefBuckets,
		}),
		layout: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tuifw_layout_seconds",
			Help:    "Duration of the measure+arrange pass within a tick.",
			Buckets: prometheus.DefBuckets,
		}),
		render: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tuifw_render_seconds",
			Help:    "Duration of the render pass within a tick.",
			Buckets: prometheus.DefBuckets,
		}),
		dispatch: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tuifw_dispatch_seconds",
			Help:    "Duration of one routed-event dispatch, partitioned by event kind.",
			Buckets: prometheus.DefBuckets,
		}, []string{"kind"}),
		timerFired: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tuifw_timers_fired_total",
			Help: "Total number of timers fired.",
		}),
		focusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tuifw_focus_changes_total",
			Help: "Total number of focus transfers, partitioned by primary/secondary.",
		}, []string{"kind"}),
	}
	reg.MustRegister(p.tick, p.layout, p.render, p.dispatch, p.timerFired, p.focusChanges)
	return p
}

func (p *Prometheus) RecordTick(d time.Duration)   { p.tick.Observe(d.Seconds()) }
func (p *Prometheus) RecordLayout(d time.Duration) { p.layout.Observe(d.Seconds()) }
func (p *Prometheus) RecordRender(d time.Duration) { p.render.Observe(d.Seconds()) }

func (p *Prometheus) RecordDispatch(kind string, d time.Duration) {
	p.dispatch.WithLabelValues(kind).Observe(d.Seconds())
}

func (p *Prometheus) RecordTimerFired() { p.timerFired.Inc() }

func (p *Prometheus) RecordFocusChange(primary bool) {
	kind := "secondary"
	if primary {
		kind = "primary"
	}
	p.focusChanges.WithLabelValues(kind).Inc()
}
