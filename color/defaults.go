package color

import "github.com/newbpydev/tuifw/screen"

// Indices into the tree-level root Palette (spec §4.2's "predefined
// tree-level palette"; restored from original_source/window/src/lib.rs
// per SPEC_FULL.md C.1). Widgets reference these by index rather than
// hard-coding colors, so re-theming a tree means replacing one palette.
const (
	IdxDisabledText uint8 = iota
	IdxLabel
	IdxInputNormal
	IdxInputFocused
	IdxInputInvalid
	IdxInputDisabled
	IdxButtonNormal
	IdxButtonFocused
	IdxButtonHotkey
	IdxButtonDisabled
	IdxButtonPressed
	IdxFrame
)

// DefaultPalette builds the tree-level root palette every WindowTree
// starts with. Individual windows may override any index locally; an
// unresolved lookup anywhere in the tree ultimately lands here.
func DefaultPalette() *Palette {
	p := New()
	p.Set(IdxDisabledText, Value(screen.DarkGray, screen.BgNone))
	p.Set(IdxLabel, Value(screen.LightGray, screen.BgNone))
	p.Set(IdxInputNormal, Value(screen.White, screen.BgBlue))
	p.Set(IdxInputFocused, Value(screen.Yellow, screen.BgBlue))
	p.Set(IdxInputInvalid, Value(screen.White, screen.BgRed))
	p.Set(IdxInputDisabled, Value(screen.DarkGray, screen.BgBlue))
	p.Set(IdxButtonNormal, Value(screen.Black, screen.BgLightGray))
	p.Set(IdxButtonFocused, Value(screen.White, screen.BgGreen))
	p.Set(IdxButtonHotkey, Value(screen.Yellow, screen.BgLightGray))
	p.Set(IdxButtonDisabled, Value(screen.DarkGray, screen.BgLightGray))
	p.Set(IdxButtonPressed, Value(screen.Black, screen.BgWhite))
	p.Set(IdxFrame, Value(screen.LightGray, screen.BgBlue))
	return p
}
