package window

import (
	"github.com/newbpydev/tuifw/arena"
	"github.com/newbpydev/tuifw/screen"
)

// Render walks the subtree rooted at id depth-first, giving each visible
// window a RenderPort clipped to window_bounds ∩ clip ∩ already-invalidated
// rows (spec §4.4 input-loop step 5). cursor reports the last cell any
// widget claimed via RenderPort.Cursor, if any.
func Render(t *Tree, id arena.Id) (cursor screen.Point, hasCursor bool) {
	renderWindow(t, id, screen.Point{}, nil, &cursor, &hasCursor)
	return
}

func renderWindow(t *Tree, id arena.Id, parentOffset screen.Point, ancestorClip *screen.Rect, cursor *screen.Point, hasCursor *bool) {
	w := t.Window(id)
	if w.visibility != Visible {
		return
	}

	offset := screen.Point{X: parentOffset.X + w.windowBounds.X, Y: parentOffset.Y + w.windowBounds.Y}
	bounds := screen.Rect{X: offset.X, Y: offset.Y, W: w.windowBounds.W, H: w.windowBounds.H}

	clip := ancestorClip
	if w.hasClip {
		local := t.toScreenRect(id, w.clip)
		if clip != nil {
			local = local.Intersect(*clip)
		}
		clip = &local
	}
	effective := bounds
	if clip != nil {
		effective = effective.Intersect(*clip)
	}

	if t.scr == nil {
		return
	}
	if !effective.Empty() {
		port := newRenderPort(t.scr, offset, effective)
		w.widget.Render(t, id, port)
		if pt, ok := port.TakeCursor(); ok {
			*cursor, *hasCursor = pt, true
		}
	}

	for _, child := range Children(t, id) {
		renderWindow(t, child, offset, clip, cursor, hasCursor)
	}
}
