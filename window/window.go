// Package window implements the retained-mode window tree: an arena of
// windows linked by parent/sibling-ring pointers, the two-phase
// measure/arrange layout engine, palette inheritance, clipping, and
// template-based cloning (spec §4.4, §4.5).
package window

import (
	"fmt"

	"github.com/newbpydev/tuifw/arena"
	"github.com/newbpydev/tuifw/color"
	"github.com/newbpydev/tuifw/screen"
)

// Visibility mirrors spec §3's three-state visibility.
type Visibility int

const (
	Visible Visibility = iota
	Hidden
	Collapsed
)

// FocusClick controls whether a left-mouse-down on a window requests
// primary or secondary focus (spec §3, §4.6 step 2).
type FocusClick int

const (
	FocusClickNone FocusClick = iota
	FocusClickPrimary
	FocusClickSecondary
)

// HAlign / VAlign are the optional per-axis alignments consulted during
// arrange (spec §4.5 step 3 and 5); the zero value means "not set".
type HAlign int

const (
	HAlignUnset HAlign = iota
	HAlignLeft
	HAlignCenter
	HAlignRight
	HAlignStretch
)

type VAlign int

const (
	VAlignUnset VAlign = iota
	VAlignTop
	VAlignCenter
	VAlignBottom
	VAlignStretch
)

// Margin is the 4-sided margin applied around a window before layout
// (spec §3: "margin (4 i16)").
type Margin struct {
	Left, Top, Right, Bottom int16
}

// Widget is the behavior object attached to a window: render/measure/
// arrange/update, plus template cloning of its per-instance data (spec
// §4.4, design notes "Polymorphism"). A single Widget value may be shared
// by many windows; WidgetData is the per-instance state it manages.
type Widget interface {
	// NewData creates the fresh per-instance state for a newly created
	// (non-cloned) window.
	NewData(tree *Tree, id arena.Id) WidgetData

	// CloneData copies source's data (which may be nil for a template with
	// no data of its own) into target during new_instance (spec §4.4).
	CloneData(tree *Tree, source, target arena.Id)

	// Measure computes the widget's desired inner size given optional
	// per-axis constraints, per spec §4.5 step 5.
	Measure(tree *Tree, id arena.Id, availableWidth, availableHeight *int16) (int16, int16)

	// Arrange lays out the widget's own children within the given local
	// rect (always positioned at the origin) and returns the arranged
	// size, per spec §4.5 step 4.
	Arrange(tree *Tree, id arena.Id, finalInner screen.Rect) (int16, int16)

	// Render draws the widget's own content through port. Children are
	// rendered separately by the tree's render pass.
	Render(tree *Tree, id arena.Id, port *RenderPort)

	// Update handles a RoutedEvent delivered to this window, returning
	// true if it was consumed (spec §4.6 step 5, "widget's update").
	Update(tree *Tree, id arena.Id, event RoutedEvent) bool

	// BringIntoView lets a widget (e.g. a scroll viewer) claim
	// responsibility for making rect visible, returning the (possibly
	// translated) rect to continue the walk with, and whether it claimed
	// responsibility at all (spec §4.6 "bring_into_view").
	BringIntoView(tree *Tree, id arena.Id, rect screen.Rect) (screen.Rect, bool)
}

// WidgetData is the opaque per-instance state a Widget manages; concrete
// widgets downcast it against their own concrete type from within Update.
type WidgetData interface{}

// Window is one node of the tree (spec §3).
type Window struct {
	id         arena.Id
	tree       *Tree
	isTemplate bool

	parent     arena.Id
	firstChild arena.Id
	prev, next arena.Id

	widget     Widget
	widgetData WidgetData

	layout LayoutParams

	palette *color.Palette

	// geometry cache
	measureWidth, measureHeight   *int16
	desiredWidth, desiredHeight   int16
	measureValid                 bool
	arrangeWidth, arrangeHeight   int16
	arrangedWidth, arrangedHeight int16
	arrangeValid                  bool
	renderBounds                  screen.Rect
	windowBounds                  screen.Rect

	halign HAlign
	valign VAlign
	margin Margin
	width, height               *int16
	minWidth, minHeight         int16
	maxWidth, maxHeight         int16

	focusTab, focusLeft, focusRight, focusUp, focusDown arena.Id
	focusClick                                          FocusClick

	handler                  Handler
	preProcessID, postProcessID arena.Id
	hasPreProcess, hasPostProcess bool

	isEnabled  bool
	visibility Visibility

	sourceIndex    int
	hasSourceIndex bool

	cloning arena.Id

	containsPrimaryFocus bool

	clip    screen.Rect
	hasClip bool
}

// Handler is an optional routed-event handler a window may register in
// addition to its widget's Update (spec §3 "routed-event handler").
// Returning true consumes the event.
type Handler func(tree *Tree, id arena.Id, event RoutedEvent) bool

// LayoutParams is the opaque, widget-defined layout object a panel
// attaches to each child (spec §4.5: "Panels use DockLayout/StretchLayout/
// ... as opaque per-child layout objects"). The core never interprets it.
type LayoutParams interface{}

// ID returns w's identity.
func (w *Window) ID() arena.Id { return w.id }

// IsTemplate reports whether w belongs to a template subtree.
func (w *Window) IsTemplate() bool { return w.isTemplate }

// Parent returns w's parent id, or the zero Id if w is a root.
func (w *Window) Parent() arena.Id { return w.parent }

// FirstChild returns w's first child id, or the zero Id if w has none.
func (w *Window) FirstChild() arena.Id { return w.firstChild }

// Widget returns w's behavior object.
func (w *Window) Widget() Widget { return w.widget }

// Data returns w's per-instance widget state.
func (w *Window) Data() WidgetData { return w.widgetData }

// SetData replaces w's per-instance widget state. A Widget's CloneData
// implementation calls this on the target window to fulfill its contract
// (it otherwise has no way to write another window's data from outside
// package window, matching the original's data_mut accessor).
func (w *Window) SetData(d WidgetData) { w.widgetData = d }

// IsEnabled reports whether w currently accepts input.
func (w *Window) IsEnabled() bool { return w.isEnabled }

// Visibility returns w's current visibility.
func (w *Window) Visibility() Visibility { return w.visibility }

// ContainsPrimaryFocus reports whether w is on the path from root to the
// current primary-focused window (spec §3 invariant, §8 property 3).
func (w *Window) ContainsPrimaryFocus() bool { return w.containsPrimaryFocus }

// WindowBounds returns the rect w was actually placed at inside its
// parent, as of the last arrange pass.
func (w *Window) WindowBounds() screen.Rect { return w.windowBounds }

// DesiredSize returns the size widget.Measure produced (plus margin) as of
// the last measure pass.
func (w *Window) DesiredSize() (int16, int16) { return w.desiredWidth, w.desiredHeight }

// SetHandler installs or clears w's routed-event handler.
func (w *Window) SetHandler(h Handler) { w.handler = h }

// Handler returns w's routed-event handler, or nil.
func (w *Window) Handler() Handler { return w.handler }

// FocusClick returns which focus kind a left-mouse-down on w requests.
func (w *Window) FocusClick() FocusClick { return w.focusClick }

// SetFocusClick sets which focus kind a left-mouse-down on w requests.
func (w *Window) SetFocusClick(f FocusClick) { w.focusClick = f }

// FocusTab/FocusLeft/FocusRight/FocusUp/FocusDown return w's directional
// focus-navigation targets, defaulting to w itself.
func (w *Window) FocusTab() arena.Id   { return w.focusTab }
func (w *Window) FocusLeft() arena.Id  { return w.focusLeft }
func (w *Window) FocusRight() arena.Id { return w.focusRight }
func (w *Window) FocusUp() arena.Id    { return w.focusUp }
func (w *Window) FocusDown() arena.Id  { return w.focusDown }

// SetFocusNav sets all five directional focus-navigation targets at once.
func (w *Window) SetFocusNav(tab, left, right, up, down arena.Id) {
	w.focusTab, w.focusLeft, w.focusRight, w.focusUp, w.focusDown = tab, left, right, up, down
}

// SetLayout installs the opaque per-child layout object a parent panel
// uses; purely a storage slot for the panel widget's own benefit.
func (w *Window) SetLayout(l LayoutParams) { w.layout = l }

// Layout returns the opaque per-child layout object, or nil.
func (w *Window) Layout() LayoutParams { return w.layout }

// SourceIndex returns the opaque index a virtualizing widget attached,
// and whether one was ever set (spec §3 "optional source_index").
func (w *Window) SourceIndex() (int, bool) { return w.sourceIndex, w.hasSourceIndex }

// SetSourceIndex sets the opaque virtualization index.
func (w *Window) SetSourceIndex(i int) { w.sourceIndex = i; w.hasSourceIndex = true }

// ClearSourceIndex removes the opaque virtualization index.
func (w *Window) ClearSourceIndex() { w.hasSourceIndex = false; w.sourceIndex = 0 }

func (w *Window) String() string {
	return fmt.Sprintf("Window(%s)", w.id)
}
