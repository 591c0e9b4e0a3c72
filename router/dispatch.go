package router

import (
	"time"

	"github.com/newbpydev/tuifw/arena"
	"github.com/newbpydev/tuifw/screen"
	"github.com/newbpydev/tuifw/window"
)

// pollAndDispatch implements spec §4.6 input-loop step 6: poll the Screen
// once (which also flushes this tick's buffered render output and places
// the cursor), then dispatch whatever came back.
func (r *Router) pollAndDispatch(wait bool) {
	var cp *screen.Point
	if r.hasPendingCursor {
		cp = &r.pendingCursor
	}
	ev, ok := r.tree.Screen().Update(cp, wait)
	if !ok {
		return
	}

	switch ev.Kind {
	case screen.EventResize:
		// size is re-read on the next tick's layout; nothing to dispatch.
	case screen.EventKey:
		r.dispatchKey(ev.Key, ev.RepeatCount)
	case screen.EventLmbDown:
		r.dispatchLmbDown(ev.At)
	case screen.EventLmbUp:
		r.dispatchLmbUp(ev.At)
	}
}

// dispatchKey repeats the pre-process -> primary -> secondary ->
// post-process -> focus-navigation chain RepeatCount times (spec §4.6
// step 6, "a key event is multiplied by its repeat count").
func (r *Router) dispatchKey(key screen.Key, repeatCount int) {
	if repeatCount < 1 {
		repeatCount = 1
	}
	for i := 0; i < repeatCount; i++ {
		r.dispatchKeyOnce(key)
	}
}

func (r *Router) dispatchKeyOnce(key screen.Key) {
	start := r.cfg.clock.NowMS()
	defer func() {
		r.cfg.metrics.RecordDispatch("Key", time.Duration(r.cfg.clock.NowMS()-start)*time.Millisecond)
	}()

	if r.runPreOrPostChain(window.PreProcessChain(r.tree), window.PreProcessKey, key, "preprocess") {
		return
	}

	primary := r.tree.PrimaryFocused()
	if !primary.IsNil() && r.safeRaise(primary, window.KeyEvent(key), "update") {
		r.runPreOrPostChain(window.PostProcessChain(r.tree), window.PostProcessKey, key, "postprocess")
		return
	}

	secondary := r.tree.SecondaryFocused()
	if !secondary.IsNil() {
		handled := false
		func() {
			defer r.recoverPanic(secondary, "update")
			handled = window.RaiseSkipping(r.tree, secondary, window.KeyEvent(key))
		}()
		if handled {
			if !primary.IsNil() {
				r.safeRaise(primary, window.CmdEvent(window.CmdLostAttention), "update")
			}
			r.runPreOrPostChain(window.PostProcessChain(r.tree), window.PostProcessKey, key, "postprocess")
			return
		}
	}

	if r.runPreOrPostChain(window.PostProcessChain(r.tree), window.PostProcessKey, key, "postprocess") {
		return
	}

	r.dispatchFocusNavigation(key)
}

func (r *Router) safeRaise(id arena.Id, event window.RoutedEvent, phase string) (handled bool) {
	defer r.recoverPanic(id, phase)
	return window.Raise(r.tree, id, event)
}

func (r *Router) runPreOrPostChain(chain []arena.Id, kind window.EventKind, key screen.Key, phase string) bool {
	for _, id := range chain {
		var handled bool
		func() {
			defer r.recoverPanic(id, phase)
			handled = window.Deliver(r.tree, id, window.RoutedEvent{Kind: kind, Key: key})
		}()
		if handled {
			return true
		}
	}
	return false
}

// dispatchFocusNavigation translates an unhandled Tab/arrow key into a
// deferred focus-navigation request: primary focus is tried first, then
// secondary (spec §4.6 step 6 tail).
func (r *Router) dispatchFocusNavigation(key screen.Key) {
	if target, ok := navTarget(r.tree, r.tree.PrimaryFocused(), key); ok {
		window.RequestPrimaryFocus(r.tree, target)
		return
	}
	if target, ok := navTarget(r.tree, r.tree.SecondaryFocused(), key); ok {
		window.RequestSecondaryFocus(r.tree, target)
	}
}

// navTarget maps Tab/arrow keys to focused's directional focus-navigation
// target, if focused is live and key is one of the recognized nav keys.
func navTarget(t *window.Tree, focused arena.Id, key screen.Key) (arena.Id, bool) {
	w, ok := t.TryWindow(focused)
	if !ok {
		return arena.Id{}, false
	}
	switch key.Kind {
	case screen.KeyTab:
		return w.FocusTab(), true
	case screen.KeyLeft:
		return w.FocusLeft(), true
	case screen.KeyRight:
		return w.FocusRight(), true
	case screen.KeyUp:
		return w.FocusUp(), true
	case screen.KeyDown:
		return w.FocusDown(), true
	default:
		return arena.Id{}, false
	}
}
