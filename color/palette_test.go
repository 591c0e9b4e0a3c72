package color

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/newbpydev/tuifw/screen"
)

func TestResolveValue(t *testing.T) {
	p := New()
	p.Set(0, Value(screen.Red, screen.BgBlue))
	assert.Equal(t, screen.Attr{Fg: screen.Red, Bg: screen.BgBlue}, p.Resolve(0, nil))
}

func TestResolveRedirect(t *testing.T) {
	p := New()
	p.Set(0, Redirect(1))
	p.Set(1, Value(screen.Green, screen.BgBlack))
	assert.Equal(t, screen.Attr{Fg: screen.Green, Bg: screen.BgBlack}, p.Resolve(0, nil))
}

func TestResolveParentWalksUp(t *testing.T) {
	grandparent := New()
	grandparent.Set(3, Value(screen.Cyan, screen.BgNone))

	parent := New() // index 3 left as implicit EntryParent

	child := New() // also implicit EntryParent

	parentLookup := func(index uint8) (screen.Attr, bool) {
		return parent.Resolve(index, func(index uint8) (screen.Attr, bool) {
			return grandparent.Resolve(index, nil), true
		}), true
	}

	assert.Equal(t, screen.Attr{Fg: screen.Cyan, Bg: screen.BgNone}, child.Resolve(3, parentLookup))
}

func TestResolveUnresolvedReturnsDiagnosticDefault(t *testing.T) {
	p := New()
	assert.Equal(t, DiagnosticDefault, p.Resolve(0, nil))
}

func TestResolveCyclicRedirectDoesNotHang(t *testing.T) {
	p := New()
	p.Set(0, Redirect(1))
	p.Set(1, Redirect(0))
	assert.Equal(t, DiagnosticDefault, p.Resolve(0, nil))
}

func TestDefaultPaletteResolvesAllIndices(t *testing.T) {
	p := DefaultPalette()
	indices := []uint8{
		IdxDisabledText, IdxLabel,
		IdxInputNormal, IdxInputFocused, IdxInputInvalid, IdxInputDisabled,
		IdxButtonNormal, IdxButtonFocused, IdxButtonHotkey, IdxButtonDisabled, IdxButtonPressed,
		IdxFrame,
	}
	for _, idx := range indices {
		attr := p.Resolve(idx, nil)
		assert.NotEqual(t, DiagnosticDefault, attr, "index %d should resolve to a real color", idx)
	}
}
