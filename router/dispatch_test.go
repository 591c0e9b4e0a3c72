package router

import (
	"testing"

	"github.com/newbpydev/tuifw/screen"
	"github.com/newbpydev/tuifw/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(scr screen.Screen, clock Clock) (*Router, *window.Tree) {
	tree := window.NewTree(recordingWidget{}, scr)
	cfg := NewConfig(WithClock(clock))
	return New(tree, cfg), tree
}

func TestDispatchKeyGoesToPrimaryFocusWhenUnclaimedByPreProcess(t *testing.T) {
	scr := newFakeScreen(80, 24)
	r, tree := newTestRouter(scr, &fakeClock{})

	button := window.New(tree, recordingWidget{}, tree.Root(), zeroID())
	window.RequestPrimaryFocus(tree, button)
	window.ApplyDeferredFocus(tree)

	data := tree.Window(button).Data().(*recordingData)
	data.events = nil // drop the Got-focus Cmd noise

	r.dispatchKey(screen.Key{Kind: screen.KeyEnter}, 1)

	require.Len(t, data.events, 2)
	assert.Equal(t, window.PreviewKey, data.events[0].Kind)
	assert.Equal(t, window.Key, data.events[1].Kind)
}

func TestDispatchKeyRepeatsByRepeatCount(t *testing.T) {
	scr := newFakeScreen(80, 24)
	r, tree := newTestRouter(scr, &fakeClock{})

	button := window.New(tree, recordingWidget{}, tree.Root(), zeroID())
	window.RequestPrimaryFocus(tree, button)
	window.ApplyDeferredFocus(tree)

	data := tree.Window(button).Data().(*recordingData)
	data.events = nil // drop the Got-focus Cmd noise

	r.dispatchKey(screen.Key{Kind: screen.KeyChar, Char: 'x'}, 3)

	assert.Len(t, data.events, 6, "each of the 3 repeats delivers PreviewKey then Key")
}

func TestPreProcessChainShortCircuitsPrimaryDispatch(t *testing.T) {
	scr := newFakeScreen(80, 24)
	r, tree := newTestRouter(scr, &fakeClock{})

	pre := window.New(tree, recordingWidget{consume: true}, tree.Root(), zeroID())
	window.RegisterPreProcess(tree, pre)

	button := window.New(tree, recordingWidget{}, tree.Root(), pre)
	window.RequestPrimaryFocus(tree, button)
	window.ApplyDeferredFocus(tree)

	buttonData := tree.Window(button).Data().(*recordingData)
	buttonData.events = nil // drop the Got-focus Cmd noise

	r.dispatchKey(screen.Key{Kind: screen.KeyEnter}, 1)

	preData := tree.Window(pre).Data().(*recordingData)
	require.Len(t, preData.events, 1)
	assert.Equal(t, window.PreProcessKey, preData.events[0].Kind)
	assert.Empty(t, buttonData.events, "a consuming pre-process handler must short-circuit primary dispatch")
}

func TestSecondaryHandledSendsLostAttentionToPrimary(t *testing.T) {
	scr := newFakeScreen(80, 24)
	r, tree := newTestRouter(scr, &fakeClock{})

	shared := window.New(tree, recordingWidget{}, tree.Root(), zeroID())
	primary := window.New(tree, recordingWidget{}, shared, zeroID())
	secondary := window.New(tree, recordingWidget{consume: true}, shared, primary)

	window.RequestPrimaryFocus(tree, primary)
	window.RequestSecondaryFocus(tree, secondary)
	window.ApplyDeferredFocus(tree)

	primaryData := tree.Window(primary).Data().(*recordingData)
	primaryData.events = nil // drop the Got-focus Cmd noise

	r.dispatchKey(screen.Key{Kind: screen.KeyEnter}, 1)

	require.NotEmpty(t, primaryData.events)
	last := primaryData.events[len(primaryData.events)-1]
	assert.Equal(t, window.Cmd, last.Kind)
	assert.Equal(t, window.CmdLostAttention, last.Num)
}

func TestPostProcessChainRunsAfterFocusDispatch(t *testing.T) {
	scr := newFakeScreen(80, 24)
	r, tree := newTestRouter(scr, &fakeClock{})

	post := window.New(tree, recordingWidget{}, tree.Root(), zeroID())
	window.RegisterPostProcess(tree, post)

	r.dispatchKey(screen.Key{Kind: screen.KeyEnter}, 1)

	postData := tree.Window(post).Data().(*recordingData)
	require.Len(t, postData.events, 1)
	assert.Equal(t, window.PostProcessKey, postData.events[0].Kind)
}

func TestUnhandledKeyFallsBackToFocusNavigation(t *testing.T) {
	scr := newFakeScreen(80, 24)
	r, tree := newTestRouter(scr, &fakeClock{})

	a := window.New(tree, recordingWidget{}, tree.Root(), zeroID())
	b := window.New(tree, recordingWidget{}, tree.Root(), a)
	tree.Window(a).SetFocusNav(b, a, b, a, a)

	window.RequestPrimaryFocus(tree, a)
	window.ApplyDeferredFocus(tree)

	r.dispatchKey(screen.Key{Kind: screen.KeyTab}, 1)
	window.ApplyDeferredFocus(tree)

	assert.Equal(t, b, tree.PrimaryFocused())
}
