package router

import (
	"testing"

	"github.com/newbpydev/tuifw/screen"
	"github.com/newbpydev/tuifw/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLmbDownCapturesTopMostHitWindow(t *testing.T) {
	scr := newFakeScreen(40, 10)
	r, tree := newTestRouter(scr, &fakeClock{})
	button := window.New(tree, recordingWidget{w: 4, h: 1}, tree.Root(), zeroID())
	r.layout()

	r.dispatchLmbDown(screen.Point{X: 2, Y: 0})

	assert.True(t, r.hasCapture)
	assert.Equal(t, button, r.captured)

	data := tree.Window(button).Data().(*recordingData)
	require.Len(t, data.events, 2)
	assert.Equal(t, window.PreviewLmbDown, data.events[0].Kind)
	assert.Equal(t, window.LmbDown, data.events[1].Kind)
}

func TestLmbUpReleasesCaptureRegardlessOfCurrentPosition(t *testing.T) {
	scr := newFakeScreen(40, 10)
	r, tree := newTestRouter(scr, &fakeClock{})
	button := window.New(tree, recordingWidget{w: 4, h: 1}, tree.Root(), zeroID())
	r.layout()

	r.dispatchLmbDown(screen.Point{X: 2, Y: 0})
	r.dispatchLmbUp(screen.Point{X: 39, Y: 9})

	assert.False(t, r.hasCapture)
	data := tree.Window(button).Data().(*recordingData)
	require.Len(t, data.events, 4)
	assert.Equal(t, window.LmbUp, data.events[3].Kind)
}

func TestLmbUpWithNoCaptureSynthesizesDownUpPair(t *testing.T) {
	scr := newFakeScreen(40, 10)
	r, tree := newTestRouter(scr, &fakeClock{})
	button := window.New(tree, recordingWidget{w: 4, h: 1}, tree.Root(), zeroID())
	r.layout()

	r.dispatchLmbUp(screen.Point{X: 2, Y: 0})

	data := tree.Window(button).Data().(*recordingData)
	require.Len(t, data.events, 4, "PreviewLmbDown, LmbDown, PreviewLmbUp, LmbUp")
	assert.Equal(t, window.LmbDown, data.events[1].Kind)
	assert.Equal(t, window.LmbUp, data.events[3].Kind)
}

func TestLmbDownOutsideAnyChildHitsRoot(t *testing.T) {
	scr := newFakeScreen(40, 10)
	r, tree := newTestRouter(scr, &fakeClock{})
	window.New(tree, recordingWidget{w: 4, h: 1}, tree.Root(), zeroID())
	r.layout()

	r.dispatchLmbDown(screen.Point{X: 20, Y: 5})

	assert.Equal(t, tree.Root(), r.captured)
}
