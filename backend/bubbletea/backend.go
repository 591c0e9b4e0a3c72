// Package bubbletea implements the screen.Screen contract (spec §6) on top
// of Bubble Tea and Lip Gloss: it owns an in-memory cell grid that Out
// writes into and View renders from, and bridges Bubble Tea's pushed
// tea.Msg stream into the pulled Update(cursor, wait) the core expects.
package bubbletea

import (
	"sync"

	"github.com/mattn/go-runewidth"

	"github.com/newbpydev/tuifw/screen"
)

// cell is one terminal cell: either empty (width 0, never drawn) or the
// leading cell of a grapheme plus the attribute it was drawn with. Wide
// runes occupy a following "continuation" cell with an empty rune so the
// grid stays rectangular (spec §6: "must render exactly width(ch) cells
// per grapheme").
type cell struct {
	r    rune
	attr screen.Attr
}

// Backend is a screen.Screen backed by an in-memory grid, driven by a
// Bubble Tea program: Out/Size/LineInvalidatedRange etc. are called by the
// core (window/router) to mutate the grid and query damage; Update flushes
// the grid to the attached Bubble Tea program and blocks for (or polls)
// the next translated input event.
type Backend struct {
	// mu guards everything below: Out/resize/consumeDamage run on the
	// router's goroutine while View/model.Update run on Bubble Tea's own,
	// and both sides touch the grid and damage ranges.
	mu            sync.Mutex
	width, height int16
	grid          [][]cell
	rowRanges     []screen.Range

	events chan screen.Event

	// requestRender, if set, is called by Update before it waits for the
	// next event, so a fresh View() is pulled from the Bubble Tea runtime.
	requestRender func()

	// requestQuit, if set, stops the attached Bubble Tea program. Run
	// wires this; callers driving their own router loop call Quit once it
	// returns so the program actually exits.
	requestQuit func()
}

// Quit stops the attached Bubble Tea program, if one is attached.
func (b *Backend) Quit() {
	if b.requestQuit != nil {
		b.requestQuit()
	}
}

// New creates a Backend with the given initial size, appropriate for
// immediate use in tests; Run (in run.go) wires one to an actual Bubble
// Tea program and keeps it resized to the terminal.
func New(width, height int16) *Backend {
	b := &Backend{events: make(chan screen.Event, 16)}
	b.resize(width, height)
	return b
}

func (b *Backend) resize(width, height int16) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.resizeLocked(width, height)
}

func (b *Backend) resizeLocked(width, height int16) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b.width, b.height = width, height
	b.grid = make([][]cell, height)
	for y := range b.grid {
		b.grid[y] = make([]cell, width)
		for x := range b.grid[y] {
			b.grid[y][x] = cell{r: ' '}
		}
	}
	b.rowRanges = make([]screen.Range, height)
	for y := range b.rowRanges {
		b.rowRanges[y] = screen.Range{Start: 0, End: width}
	}
}

// Size implements screen.Screen.
func (b *Backend) Size() (int16, int16) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

// Out implements screen.Screen: it writes text into the grid starting at
// point.X on point.Y's row, clipped to hardRange and softRange, advancing
// one grid column per rune's display width (go-runewidth), and returns the
// horizontal span actually touched.
func (b *Backend) Out(point screen.Point, attr screen.Attr, text string, hardRange, softRange screen.Range) screen.Range {
	b.mu.Lock()
	defer b.mu.Unlock()
	if point.Y < 0 || int(point.Y) >= len(b.grid) {
		return screen.Range{}
	}
	clip := hardRange.Intersect(softRange)
	if clip.Empty() {
		return screen.Range{}
	}

	row := b.grid[point.Y]
	x := point.X
	start, end := x, x
	first := true
	for _, r := range text {
		w := int16(runewidth.RuneWidth(r))
		if w == 0 {
			w = 1
		}
		if x < clip.Start {
			x += w
			continue
		}
		if x+w > clip.End {
			break
		}
		if int(x) >= 0 && int(x) < len(row) {
			row[x] = cell{r: r, attr: attr}
			for i := int16(1); i < w; i++ {
				if int(x+i) < len(row) {
					row[x+i] = cell{r: 0, attr: attr}
				}
			}
		}
		if first {
			start = x
			first = false
		}
		x += w
		end = x
	}
	if first {
		return screen.Range{}
	}
	return screen.Range{Start: start, End: end}
}

// Update implements screen.Screen: it asks the attached Bubble Tea program
// to repaint from the current grid, then waits for (or polls) the next
// translated input event.
func (b *Backend) Update(cursor *screen.Point, wait bool) (screen.Event, bool) {
	if b.requestRender != nil {
		b.requestRender()
	}
	b.consumeDamage()
	if wait {
		ev, ok := <-b.events
		return ev, ok
	}
	select {
	case ev := <-b.events:
		return ev, true
	default:
		return screen.Event{}, false
	}
}

// LineInvalidatedRange implements screen.Screen.
func (b *Backend) LineInvalidatedRange(y int16) screen.Range {
	b.mu.Lock()
	defer b.mu.Unlock()
	if y < 0 || int(y) >= len(b.rowRanges) {
		return screen.Range{}
	}
	return b.rowRanges[y]
}

// SetLineInvalidatedRange implements screen.Screen.
func (b *Backend) SetLineInvalidatedRange(y int16, r screen.Range) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if y < 0 || int(y) >= len(b.rowRanges) {
		return
	}
	b.rowRanges[y] = r
}

// consumeDamage clears every row's invalidated range once a frame carrying
// it has been flushed to the Bubble Tea program, so the next tick only
// redraws what a fresh mutation (or resize) marks dirty again (spec §5
// "Rendering consumes damage by outputting into the ranges").
func (b *Backend) consumeDamage() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for y := range b.rowRanges {
		b.rowRanges[y] = screen.Range{}
	}
}

// push enqueues a translated input event, dropping it if the channel is
// saturated rather than blocking the Bubble Tea Update goroutine.
func (b *Backend) push(ev screen.Event) {
	select {
	case b.events <- ev:
	default:
	}
}
