package window

import (
	"github.com/newbpydev/tuifw/arena"
	"github.com/newbpydev/tuifw/screen"
)

// HitTest finds the deepest visible window under pt (given in id's own
// local coordinate space), searching siblings front-to-back in the same
// ring order used by rendering and descending only when a child's bounds
// contain the point (spec §4.6 "Hit test").
func HitTest(t *Tree, id arena.Id, pt screen.Point) (arena.Id, bool) {
	w, ok := t.TryWindow(id)
	if !ok || w.visibility != Visible {
		return arena.Id{}, false
	}

	children := Children(t, id)
	for i := len(children) - 1; i >= 0; i-- {
		child := children[i]
		cw := t.Window(child)
		if cw.visibility != Visible {
			continue
		}
		if !cw.windowBounds.Contains(pt) {
			continue
		}
		childLocal := screen.Point{X: pt.X - cw.windowBounds.X, Y: pt.Y - cw.windowBounds.Y}
		if hit, ok := HitTest(t, child, childLocal); ok {
			return hit, true
		}
	}
	return id, true
}

// HitTestRoot hit-tests from the tree root, with pt given in screen
// coordinates (valid once the root has been arranged to fill the screen).
func HitTestRoot(t *Tree, pt screen.Point) (arena.Id, bool) {
	return HitTest(t, t.Root(), pt)
}
