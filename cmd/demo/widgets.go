package main

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/newbpydev/tuifw/arena"
	"github.com/newbpydev/tuifw/screen"
	"github.com/newbpydev/tuifw/window"
)

// labelData is a label instance's mutable text; setLabelText (which app.go
// wraps in a binding.FuncTarget to wire a counter through) writes it and
// invalidates the render.
type labelData struct {
	text string
}

// label is a leaf widget drawing one line of text, padded/truncated to a
// fixed width so its measured size never needs to change with its text.
type label struct {
	width   int16
	initial string
	idx     uint8
}

func (l label) NewData(tree *window.Tree, id arena.Id) window.WidgetData {
	return &labelData{text: l.initial}
}

func (l label) CloneData(tree *window.Tree, source, target arena.Id) {
	d, _ := tree.Window(source).Data().(*labelData)
	text := l.initial
	if d != nil {
		text = d.text
	}
	tree.Window(target).SetData(&labelData{text: text})
}

func (l label) Measure(tree *window.Tree, id arena.Id, availableWidth, availableHeight *int16) (int16, int16) {
	return l.width, 1
}

func (l label) Arrange(tree *window.Tree, id arena.Id, finalInner screen.Rect) (int16, int16) {
	return l.width, 1
}

func (l label) Render(tree *window.Tree, id arena.Id, port *window.RenderPort) {
	d, _ := tree.Window(id).Data().(*labelData)
	text := ""
	if d != nil {
		text = d.text
	}
	attr := window.Color(tree, id, l.idx)
	port.Text(screen.Point{X: 0, Y: 0}, attr, padTo(text, l.width))
}

func (l label) Update(tree *window.Tree, id arena.Id, event window.RoutedEvent) bool { return false }

func (l label) BringIntoView(tree *window.Tree, id arena.Id, rect screen.Rect) (screen.Rect, bool) {
	return rect, false
}

// padTo pads or truncates s to exactly width display columns, so a
// shorter replacement text fully overwrites whatever a longer prior value
// left behind.
func padTo(s string, width int16) string {
	w := int16(runewidth.StringWidth(s))
	if w >= width {
		return runewidth.Truncate(s, int(width), "")
	}
	return s + strings.Repeat(" ", int(width-w))
}

// setLabelText updates id's text and invalidates its single render row;
// used directly (not via a binding.Target wrapper) where no fan-in
// computation is needed, and wrapped in binding.FuncTarget where one is.
func setLabelText(tree *window.Tree, id arena.Id, text string) {
	d, ok := tree.Window(id).Data().(*labelData)
	if !ok {
		return
	}
	if d.text == text {
		return
	}
	d.text = text
	window.InvalidateRect(tree, id, screen.Rect{X: 0, Y: 0, W: tree.Window(id).WindowBounds().W, H: 1})
}

// vstack is a container widget stacking its children top to bottom at
// full available width, each at its own desired height.
type vstack struct{}

func (vstack) NewData(tree *window.Tree, id arena.Id) window.WidgetData { return nil }
func (vstack) CloneData(tree *window.Tree, source, target arena.Id)     {}

func (vstack) Measure(tree *window.Tree, id arena.Id, availableWidth, availableHeight *int16) (int16, int16) {
	var width, height int16
	for _, child := range window.Children(tree, id) {
		window.Measure(tree, child, availableWidth, nil)
		cw, ch := tree.Window(child).DesiredSize()
		if cw > width {
			width = cw
		}
		height += ch
	}
	return width, height
}

func (vstack) Arrange(tree *window.Tree, id arena.Id, finalInner screen.Rect) (int16, int16) {
	var y int16
	var width int16 = finalInner.W
	for _, child := range window.Children(tree, id) {
		_, ch := tree.Window(child).DesiredSize()
		window.Arrange(tree, child, screen.Rect{X: 0, Y: y, W: finalInner.W, H: ch})
		y += ch
	}
	return width, y
}

func (vstack) Render(tree *window.Tree, id arena.Id, port *window.RenderPort) {}

func (vstack) Update(tree *window.Tree, id arena.Id, event window.RoutedEvent) bool {
	if event.Kind != window.PreProcessKey {
		return false
	}
	if event.Key.Kind == screen.KeyChar && (event.Key.Char == 'q' || event.Key.Char == 'Q') {
		requestQuit()
		return true
	}
	return false
}

func (vstack) BringIntoView(tree *window.Tree, id arena.Id, rect screen.Rect) (screen.Rect, bool) {
	return rect, false
}
