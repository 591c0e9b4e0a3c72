package window

import "github.com/newbpydev/tuifw/arena"

// previewOf maps a base EventKind to its tunneling ("Preview...") variant.
func previewOf(kind EventKind) EventKind {
	switch kind {
	case Key:
		return PreviewKey
	case Cmd:
		return PreviewCmd
	case LmbDown:
		return PreviewLmbDown
	case LmbUp:
		return PreviewLmbUp
	default:
		return kind
	}
}

// ancestorPath returns id and every ancestor up to (and including) the
// tree root, root first.
func ancestorPath(t *Tree, id arena.Id) []arena.Id {
	var path []arena.Id
	for cur := id; ; {
		path = append(path, cur)
		w := t.Window(cur)
		if w.parent.IsNil() {
			break
		}
		cur = w.parent
	}
	// reverse to root-first
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Deliver invokes id's widget.Update then its optional Handler, returning
// true if either consumed the event (spec §4.6 "Each delivery invokes the
// widget's update, then the optional event handler"). Exported so the
// router package can use it directly for pre/post-process delivery.
func Deliver(t *Tree, id arena.Id, event RoutedEvent) bool {
	w := t.Window(id)
	if w.widget.Update(t, id, event) {
		return true
	}
	if w.handler != nil {
		return w.handler(t, id, event)
	}
	return false
}

func deliver(t *Tree, id arena.Id, event RoutedEvent) bool { return Deliver(t, id, event) }

// Raise routes event to target per spec §4.6: tunneling preview phase
// root->target, then (for LmbDown on a focus_click window) a deferred
// focus request, then the bubbling base phase target->root. It returns
// true if any delivery consumed the event.
func Raise(t *Tree, target arena.Id, event RoutedEvent) bool {
	path := ancestorPath(t, target)

	preview := RoutedEvent{Kind: previewOf(event.Kind), Key: event.Key, Num: event.Num, Pos: event.Pos, RepeatCount: event.RepeatCount}
	if preview.Kind != event.Kind {
		for _, id := range path {
			if deliver(t, id, preview) {
				return true
			}
		}
	}

	if event.Kind == LmbDown {
		w := t.Window(target)
		switch w.focusClick {
		case FocusClickPrimary:
			RequestPrimaryFocus(t, target)
		case FocusClickSecondary:
			RequestSecondaryFocus(t, target)
		}
	}

	for i := len(path) - 1; i >= 0; i-- {
		if deliver(t, path[i], event) {
			return true
		}
	}
	return false
}

// RaiseSkipping is Raise's bubbling phase restricted to ancestors that are
// NOT on the primary-focus path, per spec §4.6 step 4 ("Secondary-focus
// dispatch skips ancestors on the primary-focus path"). The tunneling
// phase and LmbDown focus-request step are not repeated — this is called
// only as the secondary-focus leg of the same physical key event.
func RaiseSkipping(t *Tree, target arena.Id, event RoutedEvent) bool {
	path := ancestorPath(t, target)
	for i := len(path) - 1; i >= 0; i-- {
		id := path[i]
		if t.Window(id).containsPrimaryFocus {
			continue
		}
		if deliver(t, id, event) {
			return true
		}
	}
	return false
}
