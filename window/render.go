package window

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/newbpydev/tuifw/color"
	"github.com/newbpydev/tuifw/screen"
)

// RenderPort mediates drawing into a Screen during one window's render
// call: it owns the window's screen-space offset, its clip bounds, and an
// optional pending cursor cell (spec §4.3).
type RenderPort struct {
	scr    screen.Screen
	offset screen.Point
	bounds screen.Rect

	cursor    screen.Point
	hasCursor bool
}

// newRenderPort builds the port a single window's Render call is given,
// clipped to window_bounds ∩ clip ∩ already-invalidated rows (spec §4.5
// step 5, "render pass").
func newRenderPort(scr screen.Screen, offset screen.Point, bounds screen.Rect) *RenderPort {
	return &RenderPort{scr: scr, offset: offset, bounds: bounds}
}

// Text emits s at p (in the window's local coordinates), clipped to the
// port's bounds, the row's current invalidated range, and the screen's
// size. The row's invalidated range is then widened to cover what was
// drawn, and any pending cursor inside the drawn span is cleared (spec
// §4.3 "text").
func (p *RenderPort) Text(pt screen.Point, attr screen.Attr, s string) {
	y := p.offset.Y + pt.Y
	if y < p.bounds.Top() || y >= p.bounds.Bottom() {
		return
	}
	scrW, scrH := p.scr.Size()
	if y < 0 || y >= scrH {
		return
	}

	x := p.offset.X + pt.X
	hard := screen.Range{Start: max16(p.bounds.Left(), 0), End: min16(p.bounds.Right(), scrW)}
	if hard.Empty() {
		return
	}
	soft := p.scr.LineInvalidatedRange(y)
	if soft.Empty() {
		return
	}

	drawn := p.scr.Out(screen.Point{X: x, Y: y}, attr, s, hard, soft)
	if drawn.Empty() {
		return
	}
	union := p.scr.LineInvalidatedRange(y).Union(drawn)
	p.scr.SetLineInvalidatedRange(y, union)

	if p.hasCursor && p.cursor.Y == pt.Y && p.cursor.X >= drawn.Start-p.offset.X && p.cursor.X < drawn.End-p.offset.X {
		p.hasCursor = false
	}
}

// Cursor records p as the terminal cursor position, provided no cursor is
// already set and p falls inside an invalidated region of its row (spec
// §4.3 "cursor").
func (p *RenderPort) Cursor(pt screen.Point) {
	if p.hasCursor {
		return
	}
	y := p.offset.Y + pt.Y
	rng := p.scr.LineInvalidatedRange(y)
	x := p.offset.X + pt.X
	if x < rng.Start || x >= rng.End {
		return
	}
	p.cursor, p.hasCursor = pt, true
}

// TakeCursor returns the port's pending cursor cell (in local coordinates)
// translated to screen coordinates, for the render pass driver to thread
// through as the final Screen.Update cursor argument.
func (p *RenderPort) TakeCursor() (screen.Point, bool) {
	if !p.hasCursor {
		return screen.Point{}, false
	}
	return screen.Point{X: p.offset.X + p.cursor.X, Y: p.offset.Y + p.cursor.Y}, true
}

// Fill calls f once per (x, y) cell of rect (local coords) that is
// currently invalidated, with pt translated into local space — the more
// primitive operation FillBg is itself built from (spec §4.3 "fill").
func (p *RenderPort) Fill(rect screen.Rect, f func(p *RenderPort, pt screen.Point)) {
	if rect.Empty() {
		return
	}
	scrW, scrH := p.scr.Size()
	hard := screen.Range{Start: max16(p.bounds.Left(), 0), End: min16(p.bounds.Right(), scrW)}
	if hard.Empty() {
		return
	}
	localHard := screen.Range{Start: max16(rect.Left(), hard.Start-p.offset.X), End: min16(rect.Right(), hard.End-p.offset.X)}
	for ly := rect.Top(); ly < rect.Bottom(); ly++ {
		y := p.offset.Y + ly
		if y < p.bounds.Top() || y >= p.bounds.Bottom() || y < 0 || y >= scrH {
			continue
		}
		soft := p.scr.LineInvalidatedRange(y)
		row := screen.Range{Start: max16(localHard.Start, soft.Start-p.offset.X), End: min16(localHard.End, soft.End-p.offset.X)}
		for x := row.Start; x < row.End; x++ {
			f(p, screen.Point{X: x, Y: ly})
		}
	}
}

// FillBg fills rect (local coords) with a space character carrying attr,
// a convenience wrapper over Fill (spec §4.3 "Convenience helpers").
func (p *RenderPort) FillBg(rect screen.Rect, attr screen.Attr) {
	p.Fill(rect, func(p *RenderPort, pt screen.Point) {
		p.Text(pt, attr, " ")
	})
}

const (
	hLineChar       = '─'
	vLineChar       = '│'
	hLineDoubleChar = '═'
	vLineDoubleChar = '║'
)

// HLine draws a horizontal rule of length w starting at p, single or
// double per double.
func (p *RenderPort) HLine(pt screen.Point, w int16, attr screen.Attr, double bool) {
	ch := hLineChar
	if double {
		ch = hLineDoubleChar
	}
	if w <= 0 {
		return
	}
	p.Text(pt, attr, strings.Repeat(string(ch), int(w)))
}

// VLine draws a vertical rule of length h starting at p, single or double.
func (p *RenderPort) VLine(pt screen.Point, h int16, attr screen.Attr, double bool) {
	ch := vLineChar
	if double {
		ch = vLineDoubleChar
	}
	for i := int16(0); i < h; i++ {
		p.Text(screen.Point{X: pt.X, Y: pt.Y + i}, attr, string(ch))
	}
}

// Corner glyphs for frame drawing (spec §4.3 "corner edges"), single style.
const (
	CornerTopLeft     = '┌'
	CornerTopRight    = '┐'
	CornerBottomLeft  = '└'
	CornerBottomRight = '┘'
)

// Frame draws a box border around rect using HLine/VLine and the corner
// glyphs. The edges are single- or double-line as double says; the corners
// are always the single-line glyphs.
func (p *RenderPort) Frame(rect screen.Rect, attr screen.Attr, double bool) {
	if rect.W < 2 || rect.H < 2 {
		return
	}
	tl, tr, bl, br := CornerTopLeft, CornerTopRight, CornerBottomLeft, CornerBottomRight
	p.Text(screen.Point{X: rect.Left(), Y: rect.Top()}, attr, string(tl))
	p.Text(screen.Point{X: rect.Right() - 1, Y: rect.Top()}, attr, string(tr))
	p.Text(screen.Point{X: rect.Left(), Y: rect.Bottom() - 1}, attr, string(bl))
	p.Text(screen.Point{X: rect.Right() - 1, Y: rect.Bottom() - 1}, attr, string(br))
	p.HLine(screen.Point{X: rect.Left() + 1, Y: rect.Top()}, rect.W-2, attr, double)
	p.HLine(screen.Point{X: rect.Left() + 1, Y: rect.Bottom() - 1}, rect.W-2, attr, double)
	p.VLine(screen.Point{X: rect.Left(), Y: rect.Top() + 1}, rect.H-2, attr, double)
	p.VLine(screen.Point{X: rect.Right() - 1, Y: rect.Top() + 1}, rect.H-2, attr, double)
}

// Label draws s, interpreting a `~X` pair as a hotkey: X is drawn with
// hotAttr instead of attr, and a literal `~~` produces one `~` drawn with
// attr (spec §4.3 "label"). Cell width is measured per grapheme via
// go-runewidth so double-width glyphs consume two columns.
func (p *RenderPort) Label(pt screen.Point, attr, hotAttr color.Entry, resolve func(color.Entry) screen.Attr, s string) {
	x := pt.X
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '~' && i+1 < len(runes) {
			next := runes[i+1]
			if next == '~' {
				p.Text(screen.Point{X: x, Y: pt.Y}, resolve(attr), "~")
				x += int16(runewidth.RuneWidth('~'))
				i++
				continue
			}
			p.Text(screen.Point{X: x, Y: pt.Y}, resolve(hotAttr), string(next))
			x += int16(runewidth.RuneWidth(next))
			i++
			continue
		}
		p.Text(screen.Point{X: x, Y: pt.Y}, resolve(attr), string(r))
		x += int16(runewidth.RuneWidth(r))
	}
}

func max16(a, b int16) int16 {
	if a > b {
		return a
	}
	return b
}

func min16(a, b int16) int16 {
	if a < b {
		return a
	}
	return b
}
