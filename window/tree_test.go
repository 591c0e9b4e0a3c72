package window

import (
	"testing"

	"github.com/newbpydev/tuifw/arena"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zeroID() arena.Id { return arena.Id{} }

func TestNewTreeHasRoot(t *testing.T) {
	tr := NewTree(stubWidget{w: 10, h: 5}, nil)
	require.False(t, tr.Root().IsNil())
	root := tr.Window(tr.Root())
	assert.False(t, root.IsTemplate())
}

func TestNewChildAttachesUnderParent(t *testing.T) {
	tr := NewTree(stubWidget{}, nil)
	child := New(tr, stubWidget{w: 1, h: 1}, tr.Root(), zeroID())
	assert.Equal(t, tr.Root(), tr.Window(child).Parent())
	kids := Children(tr, tr.Root())
	require.Len(t, kids, 1)
	assert.Equal(t, child, kids[0])
}

func TestChildrenOrderFollowsRing(t *testing.T) {
	tr := NewTree(stubWidget{}, nil)
	a := New(tr, stubWidget{}, tr.Root(), zeroID())
	b := New(tr, stubWidget{}, tr.Root(), a)
	c := New(tr, stubWidget{}, tr.Root(), b)

	kids := Children(tr, tr.Root())
	require.Len(t, kids, 3)
	assert.Equal(t, a, kids[0])
	assert.Equal(t, b, kids[1])
	assert.Equal(t, c, kids[2])
}

func TestMultipleTopLevelWindowsShareRootRing(t *testing.T) {
	tr := NewTree(stubWidget{}, nil)
	topLevel := New(tr, stubWidget{}, zeroID(), zeroID())
	assert.True(t, tr.Window(topLevel).Parent().IsNil())
	assert.Equal(t, topLevel, tr.Window(tr.Root()).next, "a top-level window joins the root's sibling ring")

	Drop(tr, topLevel)
	assert.False(t, tr.windows.Contains(topLevel))
	assert.True(t, tr.windows.Contains(tr.Root()))
}

func TestDropRootPanics(t *testing.T) {
	tr := NewTree(stubWidget{}, nil)
	assert.Panics(t, func() { Drop(tr, tr.Root()) })
}

func TestDropRemovesSubtreeAndClearsFocusReferences(t *testing.T) {
	tr := NewTree(stubWidget{}, nil)
	parent := New(tr, stubWidget{}, tr.Root(), zeroID())
	child := New(tr, stubWidget{}, parent, zeroID())

	other := New(tr, stubWidget{}, tr.Root(), zeroID())
	tr.Window(other).focusTab = child

	Drop(tr, parent)

	assert.False(t, tr.windows.Contains(parent))
	assert.False(t, tr.windows.Contains(child))
	assert.Equal(t, other, tr.Window(other).FocusTab())
}

func TestMoveZRepositionsWithinRing(t *testing.T) {
	tr := NewTree(stubWidget{}, nil)
	a := New(tr, stubWidget{}, tr.Root(), zeroID())
	b := New(tr, stubWidget{}, tr.Root(), a)

	MoveZ(tr, a, b)
	kids := Children(tr, tr.Root())
	require.Len(t, kids, 2)
	assert.Equal(t, b, kids[0])
	assert.Equal(t, a, kids[1])
}

func TestWidgetExtensionRecoversConcreteInterface(t *testing.T) {
	tr := NewTree(stubWidget{}, nil)
	id := New(tr, consumingWidget{}, tr.Root(), zeroID())

	_, ok := WidgetExtension[Widget](tr, id)
	assert.True(t, ok)
}
