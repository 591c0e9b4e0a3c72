package window

import (
	"github.com/newbpydev/tuifw/arena"
	"github.com/newbpydev/tuifw/screen"
)

// SetAlign sets id's horizontal/vertical alignment and invalidates arrange.
func SetAlign(t *Tree, id arena.Id, h HAlign, v VAlign) {
	w := t.Window(id)
	w.halign, w.valign = h, v
	t.invalidateArrange(id)
}

// SetMargin sets id's margin and invalidates measure.
func SetMargin(t *Tree, id arena.Id, m Margin) {
	w := t.Window(id)
	if w.margin == m {
		return
	}
	w.margin = m
	t.invalidateMeasure(id)
}

// SetWidth/SetHeight set an explicit size override, or nil to clear it.
func SetWidth(t *Tree, id arena.Id, width *int16) {
	w := t.Window(id)
	w.width = width
	t.invalidateMeasure(id)
}

func SetHeight(t *Tree, id arena.Id, height *int16) {
	w := t.Window(id)
	w.height = height
	t.invalidateMeasure(id)
}

// SetMinMax sets id's min/max width/height constraints and invalidates measure.
func SetMinMax(t *Tree, id arena.Id, minW, minH, maxW, maxH int16) {
	w := t.Window(id)
	w.minWidth, w.minHeight, w.maxWidth, w.maxHeight = minW, minH, maxW, maxH
	t.invalidateMeasure(id)
}

// invalidateMeasure walks up from id clearing measure_size caches until it
// hits an already-cleared ancestor (spec §4.5 "Invalidation propagation",
// §8 property 4).
func (t *Tree) invalidateMeasure(id arena.Id) {
	for {
		w, ok := t.TryWindow(id)
		if !ok {
			return
		}
		if !w.measureValid {
			return
		}
		w.measureValid = false
		w.measureWidth, w.measureHeight = nil, nil
		w.arrangeValid = false
		if w.parent.IsNil() {
			return
		}
		id = w.parent
	}
}

// invalidateArrange clears id's arrange cache only (not its measure cache
// nor its ancestors' — arrange invalidation does not propagate upward,
// since a child's arrange result never feeds a parent's measure).
func (t *Tree) invalidateArrange(id arena.Id) {
	w, ok := t.TryWindow(id)
	if !ok {
		return
	}
	w.arrangeValid = false
}

// invalidateRender translates rect (in id's local coordinates) through
// id's accumulated ancestor offsets into screen space and unions it into
// the Screen's per-row invalidated ranges (spec §4.5, §8 property 9).
func (t *Tree) invalidateRender(id arena.Id, rect screen.Rect) {
	if t.scr == nil || id.IsNil() {
		return
	}
	if !t.windows.Contains(id) {
		return
	}
	screenRect := t.toScreenRect(id, rect)
	screenRect = t.clipToAncestors(id, screenRect)
	if screenRect.Empty() {
		return
	}
	width, height := t.scr.Size()
	screenBounds := screen.Rect{X: 0, Y: 0, W: width, H: height}
	screenRect = screenRect.Intersect(screenBounds)
	if screenRect.Empty() {
		return
	}
	for y := screenRect.Top(); y < screenRect.Bottom(); y++ {
		cur := t.scr.LineInvalidatedRange(y)
		union := cur.Union(screen.Range{Start: screenRect.Left(), End: screenRect.Right()})
		t.scr.SetLineInvalidatedRange(y, union)
	}
}

// InvalidateRect is the public surface for a widget to mark a sub-rect of
// its own local space dirty (spec §8 scenario S6).
func InvalidateRect(t *Tree, id arena.Id, rect screen.Rect) {
	t.invalidateRender(id, rect)
}

// toScreenRect translates rect, given in id's local coordinate space, into
// screen coordinates by walking id's ancestor chain and summing each
// ancestor's window_bounds top-left offset.
func (t *Tree) toScreenRect(id arena.Id, rect screen.Rect) screen.Rect {
	var dx, dy int16
	cur := id
	for {
		w, ok := t.TryWindow(cur)
		if !ok {
			break
		}
		dx += w.windowBounds.X
		dy += w.windowBounds.Y
		if w.parent.IsNil() {
			break
		}
		cur = w.parent
	}
	return rect.Translate(dx, dy)
}

// clipToAncestors intersects screenRect (already in screen coordinates)
// with every ancestor's clip rectangle (also translated to screen space),
// if one is set.
func (t *Tree) clipToAncestors(id arena.Id, screenRect screen.Rect) screen.Rect {
	cur := id
	for {
		w, ok := t.TryWindow(cur)
		if !ok {
			break
		}
		if w.hasClip {
			clipScreen := t.toScreenRect(cur, w.clip)
			screenRect = screenRect.Intersect(clipScreen)
		}
		if w.parent.IsNil() {
			break
		}
		cur = w.parent
	}
	return screenRect
}

// Measure implements spec §4.5's two-phase measure algorithm.
func Measure(t *Tree, id arena.Id, availableWidth, availableHeight *int16) {
	w := t.Window(id)

	if w.visibility == Collapsed {
		w.desiredWidth, w.desiredHeight = 0, 0
		w.measureWidth, w.measureHeight = availableWidth, availableHeight
		w.measureValid = true
		return
	}

	minW, minH, maxW, maxH := effectiveMinMax(w)

	measureW := shrinkAxis(availableWidth, w.margin.Left+w.margin.Right, minW, maxW)
	measureH := shrinkAxis(availableHeight, w.margin.Top+w.margin.Bottom, minH, maxH)

	if w.measureValid && sameConstraint(w.measureWidth, measureW) && sameConstraint(w.measureHeight, measureH) {
		return // cache hit: desired_size unchanged
	}

	innerW, innerH := w.widget.Measure(t, id, measureW, measureH)
	innerW = clamp16(innerW, minW, maxW)
	innerH = clamp16(innerH, minH, maxH)

	w.desiredWidth = innerW + w.margin.Left + w.margin.Right
	w.desiredHeight = innerH + w.margin.Top + w.margin.Bottom
	w.measureWidth, w.measureHeight = measureW, measureH
	w.measureValid = true
	w.arrangeValid = false
}

func effectiveMinMax(w *Window) (minW, minH, maxW, maxH int16) {
	minW, minH, maxW, maxH = w.minWidth, w.minHeight, w.maxWidth, w.maxHeight
	if w.width != nil {
		minW, maxW = *w.width, *w.width
	}
	if w.height != nil {
		minH, maxH = *w.height, *w.height
	}
	return
}

func shrinkAxis(available *int16, margin int16, lo, hi int16) *int16 {
	if available == nil {
		return nil
	}
	v := *available - margin
	v = clamp16(v, lo, hi)
	return &v
}

func sameConstraint(a, b *int16) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func clamp16(v, lo, hi int16) int16 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Arrange implements spec §4.5's two-phase arrange algorithm.
func Arrange(t *Tree, id arena.Id, finalBounds screen.Rect) {
	w := t.Window(id)
	old := w.windowBounds

	if w.visibility == Collapsed {
		w.renderBounds = screen.Rect{}
		w.windowBounds = screen.Rect{}
		t.invalidateRender(w.parent, old)
		return
	}

	minW, minH, maxW, maxH := effectiveMinMax(w)
	margined := shrinkRect(finalBounds, w.margin)

	arrangeW := margined.W
	if w.halign != HAlignUnset && w.halign != HAlignStretch {
		arrangeW = w.desiredWidth - w.margin.Left - w.margin.Right
	}
	arrangeH := margined.H
	if w.valign != VAlignUnset && w.valign != VAlignStretch {
		arrangeH = w.desiredHeight - w.margin.Top - w.margin.Bottom
	}
	arrangeW = clamp16(arrangeW, minW, maxW)
	arrangeH = clamp16(arrangeH, minH, maxH)

	if !(w.arrangeValid && w.arrangeWidth == arrangeW && w.arrangeHeight == arrangeH) {
		innerW, innerH := w.widget.Arrange(t, id, screen.Rect{X: 0, Y: 0, W: arrangeW, H: arrangeH})
		innerW = clamp16(innerW, minW, maxW)
		innerH = clamp16(innerH, minH, maxH)
		w.arrangeWidth, w.arrangeHeight = arrangeW, arrangeH
		w.arrangedWidth, w.arrangedHeight = innerW, innerH
		w.arrangeValid = true
	}

	placed := place(margined, w.arrangedWidth, w.arrangedHeight, w.halign, w.valign)
	placed = placed.Intersect(margined)

	w.renderBounds = finalBounds
	w.windowBounds = placed

	if placed != old {
		t.invalidateRender(w.parent, old)
		t.invalidateRender(w.parent, placed)
	}
}

func shrinkRect(r screen.Rect, m Margin) screen.Rect {
	x := r.X + m.Left
	y := r.Y + m.Top
	width := r.W - m.Left - m.Right
	if width < 0 {
		width = 0
	}
	height := r.H - m.Top - m.Bottom
	if height < 0 {
		height = 0
	}
	return screen.Rect{X: x, Y: y, W: width, H: height}
}

// place positions a box of (w,h) inside bounds using alignment, defaulting
// to Left/Top when an axis has no alignment set (spec §4.5 step 5).
func place(bounds screen.Rect, w, h int16, ha HAlign, va VAlign) screen.Rect {
	x := bounds.X
	switch ha {
	case HAlignCenter:
		x = bounds.X + (bounds.W-w)/2
	case HAlignRight:
		x = bounds.X + (bounds.W - w)
	case HAlignStretch:
		w = bounds.W
	}
	y := bounds.Y
	switch va {
	case VAlignCenter:
		y = bounds.Y + (bounds.H-h)/2
	case VAlignBottom:
		y = bounds.Y + (bounds.H - h)
	case VAlignStretch:
		h = bounds.H
	}
	return screen.Rect{X: x, Y: y, W: w, H: h}
}
