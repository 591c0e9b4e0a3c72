package window

import (
	"github.com/newbpydev/tuifw/arena"
	"github.com/newbpydev/tuifw/screen"
)

// PrimaryFocused/SecondaryFocused return the currently-applied focus
// holders (not any as-yet-unapplied deferred request).
func (t *Tree) PrimaryFocused() arena.Id   { return t.primaryFocused }
func (t *Tree) SecondaryFocused() arena.Id { return t.secondaryFocused }

// RequestPrimaryFocus defers a primary-focus transfer to target, applied
// on the next ApplyDeferredFocus call (spec §4.6 input-loop step 1).
func RequestPrimaryFocus(t *Tree, target arena.Id) {
	t.nextPrimaryFocused, t.hasNextPrimaryFocused = target, true
}

// RequestSecondaryFocus defers a secondary-focus transfer to target.
func RequestSecondaryFocus(t *Tree, target arena.Id) {
	t.nextSecondaryFocused, t.hasNextSecondaryFocused = target, true
}

// ApplyDeferredFocus applies any pending RequestPrimaryFocus/
// RequestSecondaryFocus calls: it fires CmdGotPrimaryFocus (resp.
// secondary) on the new holder before CmdLostPrimaryFocus (resp.
// secondary) on the old, and — for a primary-focus change — updates every
// window's containsPrimaryFocus path flag and invokes BringIntoView on
// the new focus (spec §4.6 "Apply any deferred ... Focus-primary side
// effects").
func ApplyDeferredFocus(t *Tree) (primaryChanged, secondaryChanged bool) {
	if t.hasNextPrimaryFocused {
		primaryChanged = applyFocusChange(t, &t.primaryFocused, t.nextPrimaryFocused, CmdGotPrimaryFocus, CmdLostPrimaryFocus)
		t.hasNextPrimaryFocused = false
		if primaryChanged {
			updatePrimaryPath(t)
			if w, ok := t.TryWindow(t.primaryFocused); ok {
				BringIntoView(t, t.primaryFocused, w.windowBounds)
			}
		}
	}
	if t.hasNextSecondaryFocused {
		secondaryChanged = applyFocusChange(t, &t.secondaryFocused, t.nextSecondaryFocused, CmdGotSecondaryFocus, CmdLostSecondaryFocus)
		t.hasNextSecondaryFocused = false
	}
	return
}

func applyFocusChange(t *Tree, slot *arena.Id, next arena.Id, gotCmd, lostCmd uint16) bool {
	old := *slot
	if old == next {
		return false
	}
	*slot = next
	if w, ok := t.TryWindow(next); ok {
		if w.isTemplate {
			panic("window: cannot focus template window " + next.String())
		}
		deliver(t, next, CmdEvent(gotCmd))
	}
	if !old.IsNil() {
		if _, ok := t.TryWindow(old); ok {
			deliver(t, old, CmdEvent(lostCmd))
		}
	}
	return true
}

// updatePrimaryPath clears every window's containsPrimaryFocus flag, then
// sets it along the new primary focus's ancestor path.
func updatePrimaryPath(t *Tree) {
	for _, item := range t.windows.Items() {
		item.Value.containsPrimaryFocus = false
	}
	if t.primaryFocused.IsNil() {
		return
	}
	if !t.windows.Contains(t.primaryFocused) {
		return
	}
	for _, id := range ancestorPath(t, t.primaryFocused) {
		t.Window(id).containsPrimaryFocus = true
	}
}

// BringIntoView walks upward from id, offering each ancestor widget a
// chance to claim responsibility for making rect visible (e.g. a scroll
// viewer adjusting its offset); the walk continues translating rect
// through window offsets regardless of whether an ancestor claimed it
// (spec §4.6 "bring_into_view").
func BringIntoView(t *Tree, id arena.Id, rect screen.Rect) {
	cur := id
	for {
		w, ok := t.TryWindow(cur)
		if !ok {
			return
		}
		translated, claimed := w.widget.BringIntoView(t, cur, rect)
		rect = translated
		_ = claimed
		if w.parent.IsNil() {
			return
		}
		rect = screen.Rect{X: rect.X + w.windowBounds.X, Y: rect.Y + w.windowBounds.Y, W: rect.W, H: rect.H}
		cur = w.parent
	}
}
