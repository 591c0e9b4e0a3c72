// Package color provides the Palette — an ordered indirection table
// mapping small palette indices to resolved (fg,bg) colors, inherited
// through the window tree's parent chain (spec §4.2).
package color

import "github.com/newbpydev/tuifw/screen"

// EntryKind discriminates what a palette slot holds.
type EntryKind int

const (
	// EntryParent defers resolution to the owning window's parent, same index.
	EntryParent EntryKind = iota
	// EntryPalette redirects to a different index within the same palette.
	EntryPalette
	// EntryValue is a resolved (fg,bg) pair.
	EntryValue
)

// Entry is one slot of a Palette.
type Entry struct {
	Kind    EntryKind
	Index   uint8      // meaningful when Kind == EntryPalette
	Value   screen.Attr // meaningful when Kind == EntryValue
}

// Parent builds a "defer to parent window, same index" entry.
func Parent() Entry { return Entry{Kind: EntryParent} }

// Redirect builds an "alias to a different index in this palette" entry.
func Redirect(index uint8) Entry { return Entry{Kind: EntryPalette, Index: index} }

// Value builds a resolved-color entry.
func Value(fg screen.Fg, bg screen.Bg) Entry {
	return Entry{Kind: EntryValue, Value: screen.Attr{Fg: fg, Bg: bg}}
}

// DiagnosticDefault is returned by Resolve when a lookup cannot be
// resolved anywhere in the chain — a visibly wrong (Red on Green) pair so
// misconfiguration is obvious rather than silently falling back to a
// plausible-looking color (spec §4.2).
var DiagnosticDefault = screen.Attr{Fg: screen.Red, Bg: screen.BgGreen}

// Palette is a growable, ordered table of color entries local to one
// window. Entries at indices beyond what was explicitly set behave as if
// EntryParent (defer upward).
type Palette struct {
	entries []Entry
}

// New creates an empty Palette.
func New() *Palette { return &Palette{} }

// Set assigns entry at index, growing the table as needed. Indices between
// the old and new length default to EntryParent.
func (p *Palette) Set(index uint8, e Entry) {
	for len(p.entries) <= int(index) {
		p.entries = append(p.entries, Parent())
	}
	p.entries[index] = e
}

// Clone returns an independent copy of p, used when instantiating a
// template (spec §4.4: "copy palette").
func (p *Palette) Clone() *Palette {
	clone := &Palette{entries: make([]Entry, len(p.entries))}
	copy(clone.entries, p.entries)
	return clone
}

// Get returns the raw entry at index, or EntryParent if index was never set.
func (p *Palette) Get(index uint8) Entry {
	if int(index) >= len(p.entries) {
		return Parent()
	}
	return p.entries[index]
}

// ParentLookup resolves a palette index on an ancestor window (or, once
// the root is reached, on the tree-level root palette). Resolve calls this
// whenever an entry defers upward.
type ParentLookup func(index uint8) (screen.Attr, bool)

// Resolve walks entry chains starting at index: Value terminates, Palette
// retries at a new index in the same table, Parent consults parentLookup
// (which the caller supplies — typically "ask my parent window", falling
// back to the tree-level root palette once there is no parent). If the
// chain cannot be resolved, DiagnosticDefault is returned.
func (p *Palette) Resolve(index uint8, parentLookup ParentLookup) screen.Attr {
	seen := map[uint8]bool{}
	for {
		if seen[index] {
			return DiagnosticDefault // cyclic Palette(i) chain
		}
		seen[index] = true
		e := p.Get(index)
		switch e.Kind {
		case EntryValue:
			return e.Value
		case EntryPalette:
			index = e.Index
		case EntryParent:
			if parentLookup == nil {
				return DiagnosticDefault
			}
			attr, ok := parentLookup(index)
			if !ok {
				return DiagnosticDefault
			}
			return attr
		}
	}
}
