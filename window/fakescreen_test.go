package window

import "github.com/newbpydev/tuifw/screen"

// fakeScreen is an in-memory screen.Screen for tests: it records Out calls
// and tracks per-row invalidated ranges like a real backend would.
type fakeScreen struct {
	width, height int16
	invalidated   map[int16]screen.Range
	outs          []outCall
	events        []screen.Event
}

type outCall struct {
	point screen.Point
	attr  screen.Attr
	text  string
}

func newFakeScreen(w, h int16) *fakeScreen {
	return &fakeScreen{width: w, height: h, invalidated: map[int16]screen.Range{}}
}

func (f *fakeScreen) Size() (int16, int16) { return f.width, f.height }

func (f *fakeScreen) Out(point screen.Point, attr screen.Attr, text string, hardRange, softRange screen.Range) screen.Range {
	drawn := screen.Range{Start: point.X, End: point.X + int16(len([]rune(text)))}
	drawn = drawn.Intersect(hardRange).Intersect(softRange)
	if drawn.Empty() {
		return drawn
	}
	f.outs = append(f.outs, outCall{point: point, attr: attr, text: text})
	return drawn
}

func (f *fakeScreen) Update(cursor *screen.Point, wait bool) (screen.Event, bool) {
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
