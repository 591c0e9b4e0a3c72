package router

import (
	"github.com/newbpydev/tuifw/arena"
	"github.com/newbpydev/tuifw/screen"
	"github.com/newbpydev/tuifw/window"
)

func zeroID() arena.Id { return arena.Id{} }

// recordingWidget is a minimal window.Widget that records every RoutedEvent
// it is handed and optionally consumes it.
type recordingWidget struct {
	w, h    int16
	consume bool
}

type recordingData struct {
	events []window.RoutedEvent
}

func (r recordingWidget) NewData(tree *window.Tree, id arena.Id) window.WidgetData {
	return &recordingData{}
}
func (r recordingWidget) CloneData(tree *window.Tree, source, target arena.Id) {}
func (r recordingWidget) Measure(tree *window.Tree, id arena.Id, w, h *int16) (int16, int16) {
	return r.w, r.h
}

// Arrange behaves like a trivial single-area container: every child is
// arranged over the whole of finalInner at its origin, and the widget
// reports its own explicit (w, h), or finalInner's size when both are zero,
// so tests can exercise hit testing without a real layout.
func (r recordingWidget) Arrange(tree *window.Tree, id arena.Id, finalInner screen.Rect) (int16, int16) {
	for _, child := range window.Children(tree, id) {
		window.Arrange(tree, child, screen.Rect{X: 0, Y: 0, W: finalInner.W, H: finalInner.H})
	}
	if r.w == 0 && r.h == 0 {
		return finalInner.W, finalInner.H
	}
	return r.w, r.h
}
func (r recordingWidget) Render(tree *window.Tree, id arena.Id, port *window.RenderPort) {}
func (r recordingWidget) Update(tree *window.Tree, id arena.Id, event window.RoutedEvent) bool {
	if d, ok := tree.Window(id).Data().(*recordingData); ok {
		d.events = append(d.events, event)
	}
	return r.consume
}
func (r recordingWidget) BringIntoView(tree *window.Tree, id arena.Id, rect screen.Rect) (screen.Rect, bool) {
	return rect, false
}

// fakeClock is a deterministic, manually-advanced Clock for tests.
type fakeClock struct {
	ms    int64
	slept []int64
}

func (c *fakeClock) NowMS() int64 { return c.ms }
func (c *fakeClock) SleepMS(ms int64) {
	c.slept = append(c.slept, ms)
	c.ms += ms
}

// fakeScreen is an in-memory screen.Screen driven by a scripted event queue.
type fakeScreen struct {
	width, height int16
	invalidated   map[int16]screen.Range
	events        []screen.Event
	updates       int
	lastWait      bool
}

func newFakeScreen(w, h int16) *fakeScreen {
	return &fakeScreen{width: w, height: h, invalidated: map[int16]screen.Range{}}
}

func (f *fakeScreen) Size() (int16, int16) { return f.width, f.height }

func (f *fakeScreen) Out(point screen.Point, attr screen.Attr, text string, hardRange, softRange screen.Range) screen.Range {
	drawn := screen.Range{Start: point.X, End: point.X + int16(len([]rune(text)))}
	drawn = drawn.Intersect(hardRange).Intersect(softRange)
	return drawn
}

func (f *fakeScreen) Update(cursor *screen.Point, wait bool) (screen.Event, bool) {
	f.updates++
	f.lastWait = wait
	if len(f.events) == 0 {
		return screen.Event{}, false
	}
	ev := f.events[0]
	f.events = f.events[1:]
	return ev, true
}

func (f *fakeScreen) LineInvalidatedRange(y int16) screen.Range {
	if r, ok := f.invalidated[y]; ok {
		return r
	}
	return screen.Range{Start: 0, End: f.width}
}

func (f *fakeScreen) SetLineInvalidatedRange(y int16, r screen.Range) {
	f.invalidated[y] = r
}
