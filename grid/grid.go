// Package grid provides a sparse 2-D cell store keyed by integer coordinates.
//
// A Grid maps Points to labels of any comparable type. It is either:
//
//   - bounded: built with NewBounded or Parse; InBounds answers by rectangle;
//   - unbounded: built with New; InBounds answers by presence in the store.
//
// How an absent cell is interpreted (wall, open, unknown) is decided by each
// caller, never by the Grid itself. Set overwrites silently and never resizes
// a bounded grid.
package grid

import (
	"fmt"
	"strings"
)

// Grid is a mapping from Point to label L. At most one label is stored per point.
type Grid[L comparable] struct {
	cells   map[Point]L
	bounded bool
	width   int
	height  int

	// extent of stored cells, maintained for unbounded grids
	minX, minY, maxX, maxY int
}

// New returns an empty unbounded grid.
func New[L comparable]() *Grid[L] {
	return &Grid[L]{cells: make(map[Point]L)}
}

// NewBounded returns an empty grid whose InBounds is the rectangle
// [0,width) × [0,height).
func NewBounded[L comparable](width, height int) *Grid[L] {
	return &Grid[L]{
		cells:   make(map[Point]L, width*height),
		bounded: true,
		width:   width,
		height:  height,
	}
}

// Parse builds a bounded grid from rectangular text rows. decode converts
// each rune; returning keep=false leaves the cell absent.
// Returns ErrEmptyGrid if there are no rows or the first row is empty,
// ErrNonRectangular if row lengths differ, or the decode error wrapped
// with its position.
// Complexity: O(W×H).
func Parse[L comparable](lines []string, decode func(p Point, r rune) (l L, keep bool, err error)) (*Grid[L], error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len([]rune(lines[0]))
	for y, row := range lines {
		if n := len([]rune(row)); n != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, n, w)
		}
	}
	g := NewBounded[L](w, len(lines))
	for y, row := range lines {
		for x, r := range []rune(row) {
			p := Point{x, y}
			l, keep, err := decode(p, r)
			if err != nil {
				return nil, fmt.Errorf("grid: cell %v: %w", p, err)
			}
			if keep {
				g.Set(p, l)
			}
		}
	}
	return g, nil
}

// Runes parses rectangular lines into a grid labelled by the raw runes.
func Runes(lines []string) (*Grid[rune], error) {
	return Parse(lines, func(_ Point, r rune) (rune, bool, error) { return r, true, nil })
}

// Set stores label l at p, overwriting any previous label.
func (g *Grid[L]) Set(p Point, l L) {
	if !g.bounded {
		if len(g.cells) == 0 {
			g.minX, g.maxX, g.minY, g.maxY = p.X, p.X, p.Y, p.Y
		} else {
			g.minX, g.maxX = min(g.minX, p.X), max(g.maxX, p.X)
			g.minY, g.maxY = min(g.minY, p.Y), max(g.maxY, p.Y)
		}
	}
	g.cells[p] = l
}

// Get returns the label at p and whether one is stored.
func (g *Grid[L]) Get(p Point) (L, bool) {
	l, ok := g.cells[p]
	return l, ok
}

// Has reports whether a label is stored at p.
func (g *Grid[L]) Has(p Point) bool {
	_, ok := g.cells[p]
	return ok
}

// Delete removes the label at p, if any. The extent of an unbounded grid is
// not shrunk.
func (g *Grid[L]) Delete(p Point) { delete(g.cells, p) }

// InBounds reports whether p lies within the grid: inside the rectangle for
// bounded grids, present in the store otherwise.
// Complexity: O(1).
func (g *Grid[L]) InBounds(p Point) bool {
	if g.bounded {
		return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
	}
	_, ok := g.cells[p]
	return ok
}

// Bounded reports whether the grid has an explicit rectangle.
func (g *Grid[L]) Bounded() bool { return g.bounded }

// Len returns the number of stored cells.
func (g *Grid[L]) Len() int { return len(g.cells) }

// Width returns the rectangle width, or the width of the stored extent.
func (g *Grid[L]) Width() int {
	if g.bounded {
		return g.width
	}
	if len(g.cells) == 0 {
		return 0
	}
	return g.maxX - g.minX + 1
}

// Height returns the rectangle height, or the height of the stored extent.
func (g *Grid[L]) Height() int {
	if g.bounded {
		return g.height
	}
	if len(g.cells) == 0 {
		return 0
	}
	return g.maxY - g.minY + 1
}

// origin is the top-left corner of the iteration rectangle.
func (g *Grid[L]) origin() Point {
	if g.bounded {
		return Point{}
	}
	return Point{g.minX, g.minY}
}

// Each calls fn for every stored cell in row-major order.
func (g *Grid[L]) Each(fn func(p Point, l L)) {
	o := g.origin()
	for y := o.Y; y < o.Y+g.Height(); y++ {
		for x := o.X; x < o.X+g.Width(); x++ {
			p := Point{x, y}
			if l, ok := g.cells[p]; ok {
				fn(p, l)
			}
		}
	}
}

// Find returns the first point (row-major) labelled l.
func (g *Grid[L]) Find(l L) (Point, bool) {
	var (
		found Point
		ok    bool
	)
	g.Each(func(p Point, v L) {
		if !ok && v == l {
			found, ok = p, true
		}
	})
	return found, ok
}

// FindAll returns every point labelled l in row-major order.
func (g *Grid[L]) FindAll(l L) []Point {
	var out []Point
	g.Each(func(p Point, v L) {
		if v == l {
			out = append(out, p)
		}
	})
	return out
}

// Count returns how many cells carry label l.
func (g *Grid[L]) Count(l L) int {
	n := 0
	for _, v := range g.cells {
		if v == l {
			n++
		}
	}
	return n
}

// Neighbors returns the in-bounds neighbors of p under conn.
func (g *Grid[L]) Neighbors(p Point, conn Connectivity) []Point {
	offs := Offsets(conn)
	out := make([]Point, 0, len(offs))
	for _, d := range offs {
		if q := p.Add(d); g.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

// Clone returns a deep copy of g.
func (g *Grid[L]) Clone() *Grid[L] {
	c := *g
	c.cells = make(map[Point]L, len(g.cells))
	for p, l := range g.cells {
		c.cells[p] = l
	}
	return &c
}

// Equal reports whether g and o store exactly the same labels at the same points.
func (g *Grid[L]) Equal(o *Grid[L]) bool {
	if len(g.cells) != len(o.cells) {
		return false
	}
	for p, l := range g.cells {
		if v, ok := o.cells[p]; !ok || v != l {
			return false
		}
	}
	return true
}

// Render draws the grid extent row by row. glyph receives the label and
// whether the cell is stored.
func (g *Grid[L]) Render(glyph func(p Point, l L, ok bool) rune) string {
	var sb strings.Builder
	o := g.origin()
	for y := o.Y; y < o.Y+g.Height(); y++ {
		for x := o.X; x < o.X+g.Width(); x++ {
			p := Point{x, y}
			l, ok := g.cells[p]
			sb.WriteRune(glyph(p, l, ok))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
