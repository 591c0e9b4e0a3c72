// Package router implements the event & focus router: routed dispatch,
// primary/secondary focus with deferred apply, pre/post-process handler
// chains, mouse hit testing and capture, timers, and the input loop that
// ties them together with the window package's layout/render passes
// (spec §4.6).
package router

import (
	"time"

	"github.com/newbpydev/tuifw/arena"
	"github.com/newbpydev/tuifw/observability"
	"github.com/newbpydev/tuifw/screen"
	"github.com/newbpydev/tuifw/window"
)

// Router owns one window.Tree's input loop: timers, mouse capture state,
// and the collaborators in Config.
type Router struct {
	tree   *window.Tree
	timers *Timers
	cfg    Config

	hasCapture bool
	captured   arena.Id

	pendingCursor    screen.Point
	hasPendingCursor bool

	// Action, if set, runs once per tick before layout (spec §4.6 step 3).
	Action func()
}

// New builds a Router driving tree, with cfg collaborators (use NewConfig
// to build a sensible default).
func New(tree *window.Tree, cfg Config) *Router {
	return &Router{tree: tree, timers: NewTimers(), cfg: cfg}
}

// Tree returns the window tree this router drives.
func (r *Router) Tree() *window.Tree { return r.tree }

// Timers returns the router's timer arena, for scheduling new timers.
func (r *Router) Timers() *Timers { return r.timers }

// recoverPanic turns a recovered panic into an observability report, if a
// Reporter is configured; otherwise it re-panics (no reporter means no
// attempt was made to make panics survivable).
func (r *Router) recoverPanic(id arena.Id, phase string) {
	if rec := recover(); rec != nil {
		if r.cfg.reporter == nil {
			panic(rec)
		}
		r.cfg.reporter.ReportPanic(&observability.PanicError{
			WindowID: id.String(),
			Phase:    phase,
			Value:    rec,
		}, &observability.Context{WindowID: id.String(), Phase: phase, Timestamp: time.Now()})
	}
}

// Tick runs one iteration of the input loop (spec §4.6 "Input loop").
// wait controls whether the final Screen poll blocks when idle.
func (r *Router) Tick(wait bool) {
	tickStart := r.cfg.clock.NowMS()

	r.applyDeferredFocus()
	r.fireDueTimers()

	if r.Action != nil {
		r.Action()
	}

	layoutStart := r.cfg.clock.NowMS()
	r.layout()
	r.cfg.metrics.RecordLayout(time.Duration(r.cfg.clock.NowMS()-layoutStart) * time.Millisecond)

	renderStart := r.cfg.clock.NowMS()
	r.render()
	r.cfg.metrics.RecordRender(time.Duration(r.cfg.clock.NowMS()-renderStart) * time.Millisecond)

	r.pollAndDispatch(wait)

	elapsed := r.cfg.clock.NowMS() - tickStart
	r.cfg.metrics.RecordTick(time.Duration(elapsed) * time.Millisecond)

	fps := r.cfg.fps
	if fps < 1 {
		fps = 1
	}
	budget := int64(1000 / fps)
	if !wait {
		if sleep := budget - elapsed; sleep > 0 {
			r.cfg.clock.SleepMS(sleep)
		}
	}
}

// Run drives Tick in a loop until stop reports true before a tick begins.
// It blocks on the Screen's read whenever there is no pending timer,
// pre/post-process registration, or Action (spec §4.6 step 7).
func (r *Router) Run(stop func() bool) {
	for {
		if stop != nil && stop() {
			return
		}
		idle := r.timers.Len() == 0 && len(window.PreProcessChain(r.tree)) == 0 &&
			len(window.PostProcessChain(r.tree)) == 0 && r.Action == nil
		r.Tick(idle)
	}
}

func (r *Router) applyDeferredFocus() {
	primaryChanged, secondaryChanged := window.ApplyDeferredFocus(r.tree)
	if primaryChanged {
		r.cfg.metrics.RecordFocusChange(true)
	}
	if secondaryChanged {
		r.cfg.metrics.RecordFocusChange(false)
	}
}

func (r *Router) fireDueTimers() {
	r.timers.FireDue(r.cfg.clock.NowMS(), r.cfg.metrics.RecordTimerFired)
}

func (r *Router) layout() {
	width, height := r.tree.Screen().Size()
	w, h := width, height
	window.Measure(r.tree, r.tree.Root(), &w, &h)
	window.Arrange(r.tree, r.tree.Root(), screen.Rect{X: 0, Y: 0, W: width, H: height})
}

func (r *Router) render() {
	r.pendingCursor, r.hasPendingCursor = window.Render(r.tree, r.tree.Root())
}
