package window

import "github.com/newbpydev/tuifw/arena"

// RegisterPreProcess adds id to the tree's pre-process chain, consulted
// before primary/secondary focus dispatch on every key event (spec §4.6
// step 6, §3 "preprocess/postprocess registration ids").
func RegisterPreProcess(t *Tree, id arena.Id) {
	w := t.Window(id)
	if w.hasPreProcess {
		return
	}
	w.preProcessID = t.preProcessHead
	w.hasPreProcess = true
	t.preProcessHead = id
}

// UnregisterPreProcess removes id from the pre-process chain, if present.
func UnregisterPreProcess(t *Tree, id arena.Id) {
	w, ok := t.TryWindow(id)
	if !ok || !w.hasPreProcess {
		return
	}
	unlinkChain(t, id, w.preProcessID, &t.preProcessHead, func(win *Window) arena.Id { return win.preProcessID }, func(win *Window, next arena.Id) { win.preProcessID = next })
	w.hasPreProcess = false
	w.preProcessID = arena.Id{}
}

// RegisterPostProcess adds id to the tree's post-process chain, consulted
// after primary/secondary focus dispatch on every key event.
func RegisterPostProcess(t *Tree, id arena.Id) {
	w := t.Window(id)
	if w.hasPostProcess {
		return
	}
	w.postProcessID = t.postProcessHead
	w.hasPostProcess = true
	t.postProcessHead = id
}

// UnregisterPostProcess removes id from the post-process chain, if present.
func UnregisterPostProcess(t *Tree, id arena.Id) {
	w, ok := t.TryWindow(id)
	if !ok || !w.hasPostProcess {
		return
	}
	unlinkChain(t, id, w.postProcessID, &t.postProcessHead, func(win *Window) arena.Id { return win.postProcessID }, func(win *Window, next arena.Id) { win.postProcessID = next })
	w.hasPostProcess = false
	w.postProcessID = arena.Id{}
}

// unlinkChain removes id from a singly-linked chain rooted at *head, where
// next(win) reads a window's link and setNext writes it.
func unlinkChain(t *Tree, id, idNext arena.Id, head *arena.Id, next func(*Window) arena.Id, setNext func(*Window, arena.Id)) {
	if *head == id {
		*head = idNext
		return
	}
	cur := *head
	for !cur.IsNil() {
		w, ok := t.TryWindow(cur)
		if !ok {
			return
		}
		if next(w) == id {
			setNext(w, idNext)
			return
		}
		cur = next(w)
	}
}

// PreProcessChain returns the tree's pre-process windows, head first.
func PreProcessChain(t *Tree) []arena.Id { return walkChain(t, t.preProcessHead, func(w *Window) arena.Id { return w.preProcessID }) }

// PostProcessChain returns the tree's post-process windows, head first.
func PostProcessChain(t *Tree) []arena.Id { return walkChain(t, t.postProcessHead, func(w *Window) arena.Id { return w.postProcessID }) }

func walkChain(t *Tree, head arena.Id, next func(*Window) arena.Id) []arena.Id {
	var out []arena.Id
	cur := head
	for !cur.IsNil() {
		w, ok := t.TryWindow(cur)
		if !ok {
			return out
		}
		out = append(out, cur)
		cur = next(w)
	}
	return out
}
