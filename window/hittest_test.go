package window

import (
	"testing"

	"github.com/newbpydev/tuifw/screen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHitTestPicksDeepestVisibleDescendant(t *testing.T) {
	tr := NewTree(stubWidget{}, nil)
	tr.Window(tr.Root()).windowBounds = screen.Rect{X: 0, Y: 0, W: 40, H: 10}

	panel := New(tr, stubWidget{}, tr.Root(), zeroID())
	tr.Window(panel).windowBounds = screen.Rect{X: 5, Y: 2, W: 20, H: 5}

	button := New(tr, stubWidget{}, panel, zeroID())
	tr.Window(button).windowBounds = screen.Rect{X: 1, Y: 1, W: 4, H: 1}

	hit, ok := HitTestRoot(tr, screen.Point{X: 6, Y: 3})
	require.True(t, ok)
	assert.Equal(t, button, hit)
}

func TestHitTestFallsBackToAncestorOutsideChildBounds(t *testing.T) {
	tr := NewTree(stubWidget{}, nil)
	tr.Window(tr.Root()).windowBounds = screen.Rect{X: 0, Y: 0, W: 40, H: 10}

	panel := New(tr, stubWidget{}, tr.Root(), zeroID())
	tr.Window(panel).windowBounds = screen.Rect{X: 5, Y: 2, W: 20, H: 5}

	button := New(tr, stubWidget{}, panel, zeroID())
	tr.Window(button).windowBounds = screen.Rect{X: 1, Y: 1, W: 4, H: 1}

	hit, ok := HitTestRoot(tr, screen.Point{X: 5, Y: 2})
	require.True(t, ok)
	assert.Equal(t, panel, hit, "point inside panel but outside button must hit the panel")
}

func TestHitTestPrefersFrontMostSiblingOnOverlap(t *testing.T) {
	tr := NewTree(stubWidget{}, nil)
	tr.Window(tr.Root()).windowBounds = screen.Rect{X: 0, Y: 0, W: 40, H: 10}

	back := New(tr, stubWidget{}, tr.Root(), zeroID())
	tr.Window(back).windowBounds = screen.Rect{X: 0, Y: 0, W: 10, H: 10}

	front := New(tr, stubWidget{}, tr.Root(), back)
	tr.Window(front).windowBounds = screen.Rect{X: 0, Y: 0, W: 10, H: 10}

	hit, ok := HitTestRoot(tr, screen.Point{X: 2, Y: 2})
	require.True(t, ok)
	assert.Equal(t, front, hit, "the last sibling in ring order is front-most and wins on overlap")
}

func TestHitTestSkipsHiddenWindows(t *testing.T) {
	tr := NewTree(stubWidget{}, nil)
	tr.Window(tr.Root()).windowBounds = screen.Rect{X: 0, Y: 0, W: 40, H: 10}

	hidden := New(tr, stubWidget{}, tr.Root(), zeroID())
	tr.Window(hidden).windowBounds = screen.Rect{X: 0, Y: 0, W: 10, H: 10}
	SetVisibility(tr, hidden, Collapsed)

	hit, ok := HitTestRoot(tr, screen.Point{X: 2, Y: 2})
	require.True(t, ok)
	assert.Equal(t, tr.Root(), hit)
}
