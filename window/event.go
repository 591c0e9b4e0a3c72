package window

import "github.com/newbpydev/tuifw/screen"

// EventKind enumerates the routed-event variants a widget's Update (or a
// window's Handler) may see, including both tunneling ("Preview...") and
// bubbling/base variants, plus the pre/post-process-only key variants
// (spec §4.6 "Event kinds").
type EventKind int

const (
	Key EventKind = iota
	PreviewKey
	PreProcessKey
	PostProcessKey
	Cmd
	PreviewCmd
	LmbDown
	PreviewLmbDown
	LmbUp
	PreviewLmbUp
)

// Reserved Cmd numbers sent by the router itself as focus side effects
// (spec §4.6 "Reserved command numbers").
const (
	CmdGotPrimaryFocus    uint16 = 0
	CmdLostPrimaryFocus   uint16 = 1
	CmdGotSecondaryFocus  uint16 = 2
	CmdLostSecondaryFocus uint16 = 3
	CmdLostAttention      uint16 = 4
)

// RoutedEvent is the single payload type delivered through Widget.Update
// and Window.Handler for every EventKind (spec §4.6). Only the fields
// relevant to Kind are meaningful; the others are zero.
type RoutedEvent struct {
	Kind EventKind

	Key screen.Key // Key, PreviewKey, PreProcessKey, PostProcessKey
	Num uint16     // Cmd, PreviewCmd
	Pos screen.Point // LmbDown, PreviewLmbDown

	// RepeatCount is the number of times a key event multiplies through
	// the dispatch loop (spec §4.6 step 6, "multiplied by its repeat
	// count").
	RepeatCount int
}

// KeyEvent builds a bubble-phase Key routed event.
func KeyEvent(k screen.Key) RoutedEvent { return RoutedEvent{Kind: Key, Key: k} }

// PreviewKeyEvent builds a tunnel-phase PreviewKey routed event.
func PreviewKeyEvent(k screen.Key) RoutedEvent { return RoutedEvent{Kind: PreviewKey, Key: k} }

// CmdEvent builds a bubble-phase Cmd routed event.
func CmdEvent(n uint16) RoutedEvent { return RoutedEvent{Kind: Cmd, Num: n} }

// PreviewCmdEvent builds a tunnel-phase PreviewCmd routed event.
func PreviewCmdEvent(n uint16) RoutedEvent { return RoutedEvent{Kind: PreviewCmd, Num: n} }

// LmbDownEvent builds a bubble-phase LmbDown routed event at p.
func LmbDownEvent(p screen.Point) RoutedEvent { return RoutedEvent{Kind: LmbDown, Pos: p} }

// LmbUpEvent builds a bubble-phase LmbUp routed event.
func LmbUpEvent() RoutedEvent { return RoutedEvent{Kind: LmbUp} }
