package window

import (
	"github.com/newbpydev/tuifw/arena"
	"github.com/newbpydev/tuifw/color"
	"github.com/newbpydev/tuifw/screen"
)

// Color resolves palette index on window id, walking up through ancestor
// palettes and finally the tree-level root palette if the chain is never
// resolved locally (spec §4.2).
func Color(t *Tree, id arena.Id, index uint8) screen.Attr {
	w := t.Window(id)
	if w.palette == nil {
		return parentColor(t, id, index)
	}
	return w.palette.Resolve(index, func(i uint8) (screen.Attr, bool) {
		return parentColor(t, id, i), true
	})
}

func parentColor(t *Tree, id arena.Id, index uint8) screen.Attr {
	w := t.Window(id)
	if w.parent.IsNil() {
		return t.rootPalette.Resolve(index, nil)
	}
	return Color(t, w.parent, index)
}

// SetPaletteEntry sets entry at index on id's own palette (creating one if
// id had none), and invalidates render for id's entire subtree — every
// descendant may consult this window's palette through EntryParent chains
// (spec §4.2 "Setting a palette entry invalidates render of the owning
// subtree").
func SetPaletteEntry(t *Tree, id arena.Id, index uint8, e color.Entry) {
	w := t.Window(id)
	if w.palette == nil {
		w.palette = color.New()
	}
	w.palette.Set(index, e)
	invalidateSubtreeRender(t, id)
}

func invalidateSubtreeRender(t *Tree, id arena.Id) {
	w := t.Window(id)
	t.invalidateRender(id, screen.Rect{X: 0, Y: 0, W: w.windowBounds.W, H: w.windowBounds.H})
	for _, child := range Children(t, id) {
		invalidateSubtreeRender(t, child)
	}
}
