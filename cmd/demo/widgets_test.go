package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newbpydev/tuifw/arena"
	"github.com/newbpydev/tuifw/screen"
	"github.com/newbpydev/tuifw/window"
)

func TestPadToPadsShortText(t *testing.T) {
	assert.Equal(t, "hi  ", padTo("hi", 4))
}

func TestPadToTruncatesLongText(t *testing.T) {
	assert.Equal(t, "hell", padTo("hello", 4))
}

func TestPadToExactWidthIsUnchanged(t *testing.T) {
	assert.Equal(t, "abcd", padTo("abcd", 4))
}

func TestSetLabelTextNoOpWhenUnchanged(t *testing.T) {
	tree := window.NewTree(vstack{}, nil)
	root := tree.Root()
	id := window.New(tree, label{width: 10, initial: "hi"}, root, arena.Id{})

	setLabelText(tree, id, "hi")

	d, ok := tree.Window(id).Data().(*labelData)
	require.True(t, ok)
	assert.Equal(t, "hi", d.text)
}

func TestSetLabelTextUpdatesData(t *testing.T) {
	tree := window.NewTree(vstack{}, nil)
	root := tree.Root()
	id := window.New(tree, label{width: 10, initial: "hi"}, root, arena.Id{})

	setLabelText(tree, id, "bye")

	d, ok := tree.Window(id).Data().(*labelData)
	require.True(t, ok)
	assert.Equal(t, "bye", d.text)
}

func TestVstackMeasureSumsChildHeightsAndTakesMaxWidth(t *testing.T) {
	tree := window.NewTree(vstack{}, nil)
	root := tree.Root()
	a := window.New(tree, label{width: 10, initial: "a"}, root, arena.Id{})
	window.New(tree, label{width: 20, initial: "b"}, root, a)

	var avail int16 = 80
	window.Measure(tree, root, &avail, nil)

	w, h := tree.Window(root).DesiredSize()
	assert.Equal(t, int16(20), w)
	assert.Equal(t, int16(2), h)
}

func TestVstackArrangeStacksChildrenTopToBottom(t *testing.T) {
	tree := window.NewTree(vstack{}, nil)
	root := tree.Root()
	a := window.New(tree, label{width: 10, initial: "a"}, root, arena.Id{})
	b := window.New(tree, label{width: 10, initial: "b"}, root, a)

	var avail int16 = 40
	window.Measure(tree, root, &avail, nil)
	window.Arrange(tree, root, screen.Rect{X: 0, Y: 0, W: 40, H: 2})

	assert.Equal(t, int16(0), tree.Window(a).WindowBounds().Y)
	assert.Equal(t, int16(1), tree.Window(b).WindowBounds().Y)
}

func TestLabelUpdateNeverHandlesEvents(t *testing.T) {
	tree := window.NewTree(vstack{}, nil)
	root := tree.Root()
	id := window.New(tree, label{width: 10, initial: "hi"}, root, arena.Id{})

	handled := tree.Window(id).Widget().Update(tree, id, window.RoutedEvent{})
	assert.False(t, handled)
}

func TestVstackUpdateHandlesQuitKey(t *testing.T) {
	quitRequested.Store(false)
	tree := window.NewTree(vstack{}, nil)
	root := tree.Root()

	handled := vstack{}.Update(tree, root, window.RoutedEvent{
		Kind: window.PreProcessKey,
		Key:  screen.Char('q'),
	})

	assert.True(t, handled)
	assert.True(t, quitRequested.Load())
}

func TestVstackUpdateIgnoresOtherKeys(t *testing.T) {
	quitRequested.Store(false)
	tree := window.NewTree(vstack{}, nil)
	root := tree.Root()

	handled := vstack{}.Update(tree, root, window.RoutedEvent{
		Kind: window.PreProcessKey,
		Key:  screen.Char('x'),
	})

	assert.False(t, handled)
	assert.False(t, quitRequested.Load())
}
