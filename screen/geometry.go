// Package screen defines the contract a terminal backend must satisfy to
// host the window tree: an addressable cell grid with per-row invalidated
// ranges, and a blocking/non-blocking input event source. The core never
// implements this contract itself — see backend/bubbletea for one that
// does — it only depends on it (spec §1, §6).
package screen

import "fmt"

// Point is a cell coordinate, either in a window's local space or (once
// translated through accumulated offsets) in screen space.
type Point struct {
	X, Y int16
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int16) Point { return Point{p.X + dx, p.Y + dy} }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Range is a half-open horizontal cell range [Start, End) on a single row.
type Range struct {
	Start, End int16
}

// Empty reports whether the range contains no columns.
func (r Range) Empty() bool { return r.End <= r.Start }

// Len returns the number of columns covered.
func (r Range) Len() int16 {
	if r.Empty() {
		return 0
	}
	return r.End - r.Start
}

// Intersect returns the overlap of r and o. The result is Empty if they do
// not overlap.
func (r Range) Intersect(o Range) Range {
	start := max16(r.Start, o.Start)
	end := min16(r.End, o.End)
	if end < start {
		end = start
	}
	return Range{start, end}
}

// Union returns the smallest range covering both r and o. If either is
// empty, the other is returned unchanged (an empty ∪ x should not widen x
// to start at 0 — spec §4.3 unions damage, it never invents damage).
func (r Range) Union(o Range) Range {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	return Range{min16(r.Start, o.Start), max16(r.End, o.End)}
}

// Rect is an axis-aligned rectangle of cells, in either local or screen
// coordinates depending on context.
type Rect struct {
	X, Y, W, H int16
}

// Empty reports whether the rect covers zero cells.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Left, Top, Right, Bottom are the rect's edges; Right/Bottom are exclusive.
func (r Rect) Left() int16   { return r.X }
func (r Rect) Top() int16    { return r.Y }
func (r Rect) Right() int16  { return r.X + r.W }
func (r Rect) Bottom() int16 { return r.Y + r.H }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X < r.Right() && p.Y >= r.Top() && p.Y < r.Bottom()
}

// Intersect returns the overlapping rectangle of r and o, Empty if disjoint.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max16(r.Left(), o.Left()), max16(r.Top(), o.Top())
	x1, y1 := min16(r.Right(), o.Right()), min16(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Translate returns r shifted by (dx, dy).
func (r Rect) Translate(dx, dy int16) Rect {
	return Rect{r.X + dx, r.Y + dy, r.W, r.H}
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
