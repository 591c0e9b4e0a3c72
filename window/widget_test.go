package window

import (
	"github.com/newbpydev/tuifw/arena"
	"github.com/newbpydev/tuifw/screen"
)

// stubWidget is a minimal Widget for exercising the tree/layout/clone
// machinery without a real presentation layer: it reports a fixed desired
// size, leaves its children unarranged, and never claims bring_into_view.
type stubWidget struct {
	w, h int16
}

type stubData struct {
	measureCalls int
	arrangeCalls int
	updates      []RoutedEvent
}

func (s stubWidget) NewData(tree *Tree, id arena.Id) WidgetData { return &stubData{} }

func (s stubWidget) CloneData(tree *Tree, source, target arena.Id) {
	tree.Window(target).SetData(&stubData{})
}

func (s stubWidget) Measure(tree *Tree, id arena.Id, availableWidth, availableHeight *int16) (int16, int16) {
	if d, ok := tree.Window(id).Data().(*stubData); ok {
		d.measureCalls++
	}
	return s.w, s.h
}

func (s stubWidget) Arrange(tree *Tree, id arena.Id, finalInner screen.Rect) (int16, int16) {
	if d, ok := tree.Window(id).Data().(*stubData); ok {
		d.arrangeCalls++
	}
	return s.w, s.h
}

func (s stubWidget) Render(tree *Tree, id arena.Id, port *RenderPort) {}

func (s stubWidget) Update(tree *Tree, id arena.Id, event RoutedEvent) bool {
	if d, ok := tree.Window(id).Data().(*stubData); ok {
		d.updates = append(d.updates, event)
	}
	return false
}

func (s stubWidget) BringIntoView(tree *Tree, id arena.Id, rect screen.Rect) (screen.Rect, bool) {
	return rect, false
}

// consumingWidget consumes every event it is handed.
type consumingWidget struct{ stubWidget }

func (c consumingWidget) Update(tree *Tree, id arena.Id, event RoutedEvent) bool {
	if d, ok := tree.Window(id).Data().(*stubData); ok {
		d.updates = append(d.updates, event)
	}
	return true
}
