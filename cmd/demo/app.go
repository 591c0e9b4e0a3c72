package main

import (
	"fmt"
	"sync/atomic"

	"github.com/newbpydev/tuifw/arena"
	"github.com/newbpydev/tuifw/binding"
	"github.com/newbpydev/tuifw/color"
	"github.com/newbpydev/tuifw/router"
	bt "github.com/newbpydev/tuifw/backend/bubbletea"
	"github.com/newbpydev/tuifw/window"
)

// quitRequested is set by vstack's PreProcessKey handler on 'q'; Run's
// stop func reads it between ticks (spec §4.6 input-loop step 7's "stop
// condition" is left to the host, here a plain flag).
var quitRequested atomic.Bool

func requestQuit() { quitRequested.Store(true) }

// app owns the window tree, router and bindings behind one running demo.
type app struct {
	tree     *window.Tree
	rt       *router.Router
	bindings *binding.Bindings

	counter   *binding.Value[int]
	counterID arena.Id
}

// buildApp wires a window tree with a title, a counter label bound
// through the binding engine to a tick-driven Value[int], and a help
// line, on top of backend.
func buildApp(backend *bt.Backend) *app {
	tree := window.NewTree(vstack{}, backend)
	root := tree.Root()
	window.RegisterPreProcess(tree, root)

	titleID := window.New(tree, label{width: 40, initial: "tuifw demo", idx: color.IdxLabel}, root, arena.Id{})
	counterID := window.New(tree, label{width: 40, initial: "Count: 0", idx: color.IdxLabel}, root, titleID)
	window.New(tree, label{width: 40, initial: "press q to quit", idx: color.IdxDisabledText}, root, counterID)

	bindings := tree.Bindings()
	counter := binding.NewValue(0)
	target := binding.FuncTarget[int]{
		Fn: func(n int) { setLabelText(tree, counterID, fmt.Sprintf("Count: %d", n)) },
	}
	id := bindings.New(1, func(sources []any, _ any, _ bool) (any, bool) {
		return sources[0].(int), true
	})
	bindings.SetTarget(id, target)
	bindings.SetSource(id, 0, counter)

	cfg := router.NewConfig(router.WithFPS(30))
	rt := router.New(tree, cfg)

	a := &app{tree: tree, rt: rt, bindings: bindings, counter: counter, counterID: counterID}
	a.scheduleTick()
	return a
}

// scheduleTick drives the counter up once a second via a self-rescheduling
// Timer, the pattern a one-shot Timer arena requires for periodic work.
func (a *app) scheduleTick() {
	now := router.SystemClock.NowMS()
	a.rt.Timers().New(now, 1000, func() {
		a.counter.Set(a.counter.Get() + 1)
		a.scheduleTick()
	})
}

func (a *app) run() {
	a.rt.Run(func() bool { return quitRequested.Load() })
}
