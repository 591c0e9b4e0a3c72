package screen

// KeyKind enumerates the key taxonomy the core understands (spec §6).
type KeyKind int

const (
	KeyChar KeyKind = iota
	KeyEnter
	KeyTab
	KeyEscape
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyAlt
	KeyCtrl
)

// CtrlKey enumerates the control-key combinations the taxonomy supports:
// Ctrl(A..Z, @, \, ], ^, _).
type CtrlKey rune

// Key is a single logical keypress, decoded from whatever the backend's raw
// input representation is (spec §6). Char/Alt carry the rune pressed;
// Ctrl carries the control letter/symbol.
type Key struct {
	Kind KeyKind
	Char rune
	Ctrl CtrlKey
}

// IsFunction reports whether k is one of F1..F12.
func (k Key) IsFunction() bool {
	return k.Kind >= KeyF1 && k.Kind <= KeyF12
}

// Char builds a character Key.
func Char(r rune) Key { return Key{Kind: KeyChar, Char: r} }

// Alt builds an Alt(char) Key.
func Alt(r rune) Key { return Key{Kind: KeyAlt, Char: r} }

// Ctrl builds a Ctrl(key) Key.
func Ctrl(c rune) Key { return Key{Kind: KeyCtrl, Ctrl: CtrlKey(c)} }
