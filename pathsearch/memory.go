package pathsearch

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridquest/grid"
	"github.com/katalvlaran/gridquest/input"
)

// MemorySpace is a square (Size+1)×(Size+1) grid into which bytes fall one
// at a time, corrupting their cell. The walk goes from (0,0) to (Size,Size).
type MemorySpace struct {
	Size  int
	Bytes []grid.Point
}

// ParseBytes reads one "x,y" pair per line.
func ParseBytes(lines []string) ([]grid.Point, error) {
	out := make([]grid.Point, 0, len(lines))
	for i, l := range lines {
		x, y, err := input.IntPair(l, ",")
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, grid.Pt(x, y))
	}
	return out, nil
}

// NewMemorySpace returns a space with corners (0,0) and (size,size).
func NewMemorySpace(size int, bytes []grid.Point) *MemorySpace {
	return &MemorySpace{Size: size, Bytes: bytes}
}

// Corrupted returns the first n fallen bytes as a grid. n is clamped to
// the number of known bytes.
func (m *MemorySpace) Corrupted(n int) *grid.Grid[bool] {
	n = min(max(n, 0), len(m.Bytes))
	g := grid.NewBounded[bool](m.Size+1, m.Size+1)
	for _, b := range m.Bytes[:n] {
		g.Set(b, true)
	}
	return g
}

// ExitSteps returns the fewest steps from (0,0) to (Size,Size) after n bytes
// have fallen. ok is false when the exit is cut off.
func (m *MemorySpace) ExitSteps(n int) (steps int, ok bool) {
	g := m.Corrupted(n)
	exit := grid.Pt(m.Size, m.Size)
	return Steps(grid.Pt(0, 0), exit, func(p grid.Point) bool {
		return g.InBounds(p) && !g.Has(p)
	})
}

// FirstBlocking returns the first byte after which the exit is unreachable
// and its zero-based index. ok is false if the exit stays reachable after
// every byte. Reachability only gets worse as bytes fall, so the index is
// located by binary search.
func (m *MemorySpace) FirstBlocking() (b grid.Point, index int, ok bool) {
	n := sort.Search(len(m.Bytes)+1, func(n int) bool {
		_, reachable := m.ExitSteps(n)
		return !reachable
	})
	if n == 0 || n > len(m.Bytes) {
		return grid.Point{}, 0, false
	}
	return m.Bytes[n-1], n - 1, true
}

// Route returns one shortest route after n bytes, for debug rendering.
func (m *MemorySpace) Route(n int) []grid.Point {
	g := m.Corrupted(n)
	res := BFS(grid.Pt(0, 0), func(p grid.Point) bool {
		return g.InBounds(p) && !g.Has(p)
	}, grid.Conn4)
	path, err := res.PathTo(grid.Pt(m.Size, m.Size))
	if err != nil {
		return nil
	}
	return path
}

// Render draws corrupted cells as '#', route cells as 'O', free cells as '.'.
func (m *MemorySpace) Render(n int) string {
	g := m.Corrupted(n)
	route := mapset.New[grid.Point]()
	for _, p := range m.Route(n) {
		route.Put(p)
	}
	full := grid.NewBounded[bool](m.Size+1, m.Size+1)
	for y := 0; y <= m.Size; y++ {
		for x := 0; x <= m.Size; x++ {
			full.Set(grid.Pt(x, y), g.Has(grid.Pt(x, y)))
		}
	}
	return full.Render(func(p grid.Point, corrupt bool, _ bool) rune {
		switch {
		case corrupt:
			return '#'
		case route.Has(p):
			return 'O'
		}
		return '.'
	})
}
