package router

import (
	"github.com/newbpydev/tuifw/screen"
	"github.com/newbpydev/tuifw/window"
)

// dispatchLmbDown captures the top-most window under p and raises LmbDown
// on it (spec §4.6 step 6, "Mouse LmbDown captures the top-most window
// under the cursor").
func (r *Router) dispatchLmbDown(p screen.Point) {
	target, ok := window.HitTestRoot(r.tree, p)
	if !ok {
		return
	}
	r.captured, r.hasCapture = target, true
	r.safeRaise(target, window.LmbDownEvent(p), "update")
}

// dispatchLmbUp releases any mouse capture, delivering LmbUp to the
// captured window; with no capture it instead delivers a synthetic
// LmbDown+LmbUp pair to whatever window is actually under p (spec §4.6
// step 6).
func (r *Router) dispatchLmbUp(p screen.Point) {
	if r.hasCapture {
		target := r.captured
		r.hasCapture = false
		r.safeRaise(target, window.LmbUpEvent(), "update")
		return
	}

	target, ok := window.HitTestRoot(r.tree, p)
	if !ok {
		return
	}
	r.safeRaise(target, window.LmbDownEvent(p), "update")
	r.safeRaise(target, window.LmbUpEvent(), "update")
}
