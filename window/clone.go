package window

import "github.com/newbpydev/tuifw/arena"

// cloneMap is a transient map recording source→clone for the duration of a
// single NewInstance call (spec §3 "cloning slot", design notes "Cloning
// with intra-subtree id remap"). The mapping lives only in this side map;
// Window's own cloning field is never written.
type cloneMap map[arena.Id]arena.Id

// NewInstance deep-clones the template rooted at templateRoot into a live
// subtree attached under parent/prev, per spec §4.4's three-pass
// algorithm: allocate clones recording source→clone, copy attributes with
// focus-target remap, then forget the mapping.
func NewInstance(t *Tree, templateRoot arena.Id, parent arena.Id, prev arena.Id) arena.Id {
	src := t.Window(templateRoot)
	if !src.isTemplate {
		panic("window: NewInstance requires a template root")
	}

	clones := cloneMap{}

	// Pass (a): allocate every clone, recording source -> clone.
	allocateClones(t, templateRoot, clones)

	// Pass (b): copy attributes, remapping focus targets through clones
	// (falling back to the original id when it points outside the
	// template).
	for source, clone := range clones {
		copyAttributes(t, source, clone, clones)
	}

	// Attach the cloned root into the live tree; its descendants are
	// already linked to each other from pass (a).
	root := clones[templateRoot]
	t.attach(root, parent, prev)
	t.invalidateMeasure(parentOrSelf(t, parent, root))

	return root
}

// allocateClones walks source's subtree, allocating one live clone per
// template window and linking clone parent/sibling pointers to mirror the
// template's own topology.
func allocateClones(t *Tree, source arena.Id, clones cloneMap) arena.Id {
	srcWin := t.Window(source)
	cloneID := arena.Insert(t.windows, func(self arena.Id) (Window, arena.Id) {
		return newWindowValue(self, t, srcWin.widget, false), self
	})
	clones[source] = cloneID

	children := Children(t, source)
	var prev arena.Id
	for _, child := range children {
		childClone := allocateClones(t, child, clones)
		t.attach(childClone, cloneID, prev)
		prev = childClone
	}
	return cloneID
}

// copyAttributes copies every cloneable attribute from source to its
// clone, remapping focus-navigation targets through the clone map.
func copyAttributes(t *Tree, source, clone arena.Id, clones cloneMap) {
	s := t.Window(source)
	c := t.Window(clone)

	if s.palette != nil {
		c.palette = s.palette.Clone()
	}
	c.visibility = s.visibility
	c.layout = s.layout
	c.isEnabled = s.isEnabled
	c.halign, c.valign = s.halign, s.valign
	c.margin = s.margin
	c.width, c.height = s.width, s.height
	c.minWidth, c.minHeight, c.maxWidth, c.maxHeight = s.minWidth, s.minHeight, s.maxWidth, s.maxHeight
	c.focusClick = s.focusClick
	c.hasClip, c.clip = s.hasClip, s.clip

	c.focusTab = remapFocus(s.focusTab, clones)
	c.focusLeft = remapFocus(s.focusLeft, clones)
	c.focusRight = remapFocus(s.focusRight, clones)
	c.focusUp = remapFocus(s.focusUp, clones)
	c.focusDown = remapFocus(s.focusDown, clones)

	s.widget.CloneData(t, source, clone)
}

// remapFocus translates a focus-navigation target through the clone map:
// a reference to a node inside the template becomes a reference to the
// corresponding clone; a reference outside the template (an "external"
// focus target per spec §4.4/§8 scenario S5) passes through unchanged.
func remapFocus(target arena.Id, clones cloneMap) arena.Id {
	if mapped, ok := clones[target]; ok {
		return mapped
	}
	return target
}
