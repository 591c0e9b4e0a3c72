package window

import (
	"github.com/newbpydev/tuifw/arena"
	"github.com/newbpydev/tuifw/binding"
	"github.com/newbpydev/tuifw/color"
	"github.com/newbpydev/tuifw/screen"
)

// Tree is the arena of windows plus the tree-wide singletons the spec
// assigns to "the" WindowTree: the root palette, the primary/secondary
// focus slots and their deferred-apply counterparts, and the backing
// Screen (spec §3, §4.4, §4.6).
type Tree struct {
	windows *arena.Arena[Window]
	root    arena.Id
	scr     screen.Screen

	rootPalette *color.Palette

	primaryFocused, secondaryFocused     arena.Id
	nextPrimaryFocused, nextSecondaryFocused     arena.Id
	hasNextPrimaryFocused, hasNextSecondaryFocused bool

	preProcessHead, postProcessHead arena.Id

	bindings *binding.Bindings
}

// NewTree creates an empty tree: a single, non-template root window
// carrying rootWidget. scr may be nil (useful in tests that never render);
// SetScreen can attach one later.
func NewTree(rootWidget Widget, scr screen.Screen) *Tree {
	t := &Tree{
		windows:     arena.New[Window](),
		scr:         scr,
		rootPalette: color.DefaultPalette(),
		bindings:    binding.NewBindings(),
	}
	t.root = arena.Insert(t.windows, func(self arena.Id) (Window, arena.Id) {
		w := newWindowValue(self, t, rootWidget, false)
		w.next, w.prev = self, self
		return w, self
	})
	root := t.windows.Get(t.root)
	root.widgetData = rootWidget.NewData(t, t.root)
	return t
}

func newWindowValue(self arena.Id, t *Tree, w Widget, isTemplate bool) Window {
	return Window{
		id:         self,
		tree:       t,
		isTemplate: isTemplate,
		widget:     w,
		isEnabled:  true,
		visibility: Visible,
		minWidth:   0, minHeight: 0,
		maxWidth: 1<<15 - 1, maxHeight: 1<<15 - 1,
		focusTab: self, focusLeft: self, focusRight: self, focusUp: self, focusDown: self,
	}
}

// Root returns the id of the tree's root window.
func (t *Tree) Root() arena.Id { return t.root }

// Screen returns the backing Screen, or nil.
func (t *Tree) Screen() screen.Screen { return t.scr }

// SetScreen attaches (or replaces) the backing Screen.
func (t *Tree) SetScreen(s screen.Screen) { t.scr = s }

// RootPalette returns the tree-level default palette consulted when a
// window's own palette chain is exhausted (spec §4.2).
func (t *Tree) RootPalette() *color.Palette { return t.rootPalette }

// Bindings returns the tree's embedded bindings engine (spec §5: "a single
// WindowTree (and its embedded Bindings arena)").
func (t *Tree) Bindings() *binding.Bindings { return t.bindings }

// Window returns a pointer to the live window named by id, panicking on a
// dangling id (mirrors arena.Arena.Get: the core treats a dangling window
// id as an invariant violation, not a recoverable error).
func (t *Tree) Window(id arena.Id) *Window {
	return t.windows.Get(id)
}

// TryWindow is the non-panicking counterpart, for callers holding a
// possibly-stale id (e.g. a focus-navigation target set before the
// referenced window was dropped).
func (t *Tree) TryWindow(id arena.Id) (*Window, bool) {
	if !t.windows.Contains(id) {
		return nil, false
	}
	return t.windows.Get(id), true
}

// New creates a live (or, if any ancestor is a template, template) window
// attached under parent (or at tree root if parent is the zero Id),
// positioned in the sibling ring after prev (or at the head if prev is
// zero). widget's NewData is invoked once to build its initial state.
func New(t *Tree, widget Widget, parent arena.Id, prev arena.Id) arena.Id {
	isTemplate := false
	if !parent.IsNil() {
		isTemplate = t.Window(parent).isTemplate
	}
	id := arena.Insert(t.windows, func(self arena.Id) (Window, arena.Id) {
		return newWindowValue(self, t, widget, isTemplate), self
	})
	w := t.Window(id)
	w.widgetData = widget.NewData(t, id)
	t.attach(id, parent, prev)
	t.invalidateMeasure(parentOrSelf(t, parent, id))
	return id
}

// NewTemplate creates a root-less template window. Templates are never
// measured, arranged, rendered, or focused; they exist only to be cloned
// via NewInstance.
func NewTemplate(t *Tree, widget Widget) arena.Id {
	id := arena.Insert(t.windows, func(self arena.Id) (Window, arena.Id) {
		w := newWindowValue(self, t, widget, true)
		w.next, w.prev = self, self
		return w, self
	})
	w := t.Window(id)
	w.widgetData = widget.NewData(t, id)
	return id
}

func parentOrSelf(t *Tree, parent, id arena.Id) arena.Id {
	if parent.IsNil() {
		return t.root
	}
	return parent
}

// attach links id into the sibling ring of parent (or of the tree root)
// at the position right after prev, or at the head if prev is zero.
func (t *Tree) attach(id arena.Id, parent arena.Id, prev arena.Id) {
	w := t.Window(id)
	w.parent = parent

	owner := parent
	if owner.IsNil() {
		// No parent: id joins the tree root's own sibling ring, becoming a
		// top-level window alongside the root (spec §4.4: "joins the
		// sibling ring of its parent, or of the tree root if parent=None").
		if prev.IsNil() {
			t.insertBefore(id, t.root)
			return
		}
		t.insertAfter(id, prev)
		return
	}

	ownerWin := t.Window(owner)
	if ownerWin.firstChild.IsNil() {
		w.next, w.prev = id, id
		ownerWin.firstChild = id
		return
	}
	if prev.IsNil() {
		// insert at head: splice before the current first child
		head := ownerWin.firstChild
		t.insertBefore(id, head)
		ownerWin.firstChild = id
		return
	}
	t.insertAfter(id, prev)
}

// insertAfter splices id into the ring immediately after prev.
func (t *Tree) insertAfter(id, prev arena.Id) {
	prevWin := t.Window(prev)
	nextID := prevWin.next
	nextWin := t.Window(nextID)

	w := t.Window(id)
	w.prev = prev
	w.next = nextID
	prevWin.next = id
	nextWin.prev = id
}

// insertBefore splices id into the ring immediately before next.
func (t *Tree) insertBefore(id, next arena.Id) {
	nextWin := t.Window(next)
	prevID := nextWin.prev
	t.insertAfter(id, prevID)
}

// detach removes id from its sibling ring, fixing up the parent's
// first_child pointer if necessary.
func (t *Tree) detach(id arena.Id) {
	w := t.Window(id)
	parent := w.parent

	if w.next == id {
		// solo ring member
		if !parent.IsNil() {
			t.Window(parent).firstChild = arena.Id{}
		}
		return
	}

	prevWin := t.Window(w.prev)
	nextWin := t.Window(w.next)
	prevWin.next = w.next
	nextWin.prev = w.prev

	if !parent.IsNil() {
		pw := t.Window(parent)
		if pw.firstChild == id {
			pw.firstChild = w.next
		}
	}
}

// MoveZ repositions id within its sibling ring to just after prev (or to
// the head if prev is the zero Id), implemented as detach+attach per
// spec §4.4.
func MoveZ(t *Tree, id arena.Id, prev arena.Id) {
	w := t.Window(id)
	parent := w.parent
	t.detach(id)
	t.attach(id, parent, prev)
	t.invalidateRender(id, w.windowBounds)
}

// Children returns id's children in ring order, starting at first_child.
func Children(t *Tree, id arena.Id) []arena.Id {
	w := t.Window(id)
	if w.firstChild.IsNil() {
		return nil
	}
	out := []arena.Id{w.firstChild}
	for cur := t.Window(w.firstChild).next; cur != w.firstChild; cur = t.Window(cur).next {
		out = append(out, cur)
	}
	return out
}

// Drop removes id and its entire subtree: detaches from the ring, tears
// down widget data (by clearing the data slot; widgets that need teardown
// behavior should do it from their own Dispose-like convention before
// calling Drop — the core has no generic Dispose hook per spec §3, which
// only specifies "calls widget-data teardown" structurally), clears focus
// references, and recurses into children before removing id itself.
func Drop(t *Tree, id arena.Id) {
	w := t.Window(id)
	children := Children(t, id)
	for _, c := range children {
		Drop(t, c)
	}

	if id == t.root {
		panic("window: cannot drop the tree's root window")
	}

	bounds := w.windowBounds
	parent := w.parent
	t.detach(id)

	if t.primaryFocused == id {
		t.primaryFocused = arena.Id{}
	}
	if t.secondaryFocused == id {
		t.secondaryFocused = arena.Id{}
	}
	if t.hasNextPrimaryFocused && t.nextPrimaryFocused == id {
		t.hasNextPrimaryFocused = false
	}
	if t.hasNextSecondaryFocused && t.nextSecondaryFocused == id {
		t.hasNextSecondaryFocused = false
	}
	clearFocusReferences(t, id)
	UnregisterPreProcess(t, id)
	UnregisterPostProcess(t, id)

	t.invalidateRender(parent, bounds)
	t.windows.Remove(id)
}

// clearFocusReferences resets every window's navigation target that
// pointed at id back to self-reference, so dropping a window never leaves
// a dangling focus-navigation id behind.
func clearFocusReferences(t *Tree, id arena.Id) {
	for _, item := range t.windows.Items() {
		w := item.Value
		if w.focusTab == id {
			w.focusTab = item.Id
		}
		if w.focusLeft == id {
			w.focusLeft = item.Id
		}
		if w.focusRight == id {
			w.focusRight = item.Id
		}
		if w.focusUp == id {
			w.focusUp = item.Id
		}
		if w.focusDown == id {
			w.focusDown = item.Id
		}
	}
}

// SetVisibility updates id's visibility and invalidates as required by
// spec §4.4: Visible<->Hidden invalidates render, anything involving
// Collapsed invalidates the parent's measure.
func SetVisibility(t *Tree, id arena.Id, v Visibility) {
	w := t.Window(id)
	old := w.visibility
	if old == v {
		return
	}
	w.visibility = v
	if old == Collapsed || v == Collapsed {
		t.invalidateMeasure(parentOf(t, id))
	} else {
		t.invalidateRender(id, w.windowBounds)
	}
}

// SetIsEnabled updates id's enabled state and invalidates its render
// (disabled windows are typically drawn differently, e.g. via the palette's
// *Disabled entries).
func SetIsEnabled(t *Tree, id arena.Id, enabled bool) {
	w := t.Window(id)
	if w.isEnabled == enabled {
		return
	}
	w.isEnabled = enabled
	t.invalidateRender(id, w.windowBounds)
}

// SetClip installs id's local-coordinate clip rectangle and invalidates
// its render.
func SetClip(t *Tree, id arena.Id, r screen.Rect) {
	w := t.Window(id)
	w.clip = r
	w.hasClip = true
	t.invalidateRender(id, w.windowBounds)
}

// ClearClip removes id's clip rectangle.
func ClearClip(t *Tree, id arena.Id) {
	w := t.Window(id)
	w.hasClip = false
	t.invalidateRender(id, w.windowBounds)
}

func parentOf(t *Tree, id arena.Id) arena.Id {
	return t.Window(id).parent
}

// WidgetExtension attempts to recover interface I from id's widget,
// mirroring spec §4.4's "dynamic interface cast" used to couple e.g. a
// scroll viewer with a virtualizing presenter. ok is false if the widget
// does not implement I.
func WidgetExtension[I any](t *Tree, id arena.Id) (iface I, ok bool) {
	w := t.Window(id)
	iface, ok = w.widget.(I)
	return
}
