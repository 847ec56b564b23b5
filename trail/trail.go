// Package trail counts hiking trails on a height map.
//
// A trail starts at height 0 and climbs by exactly one per orthogonal step
// until it reaches height 9. Trace walks every trail from a source with an
// explicit stack; with dedupe it counts distinct summits, without it counts
// distinct trails.
package trail

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridquest/grid"
)

const (
	// Base is the height a trailhead has.
	Base = 0
	// Summit is the terminal height.
	Summit = 9
)

// ErrBadHeight indicates a map rune that is neither a digit nor '.'.
var ErrBadHeight = errors.New("trail: bad height")

// ParseMap reads a digit height map. '.' marks impassable cells, which stay
// absent from the grid.
func ParseMap(lines []string) (*grid.Grid[int], error) {
	return grid.Parse(lines, func(_ grid.Point, r rune) (int, bool, error) {
		switch {
		case r == '.':
			return 0, false, nil
		case r >= '0' && r <= '9':
			return int(r - '0'), true, nil
		}
		return 0, false, fmt.Errorf("%w: %q", ErrBadHeight, r)
	})
}

// Heads returns every trailhead in row-major order.
func Heads(g *grid.Grid[int]) []grid.Point {
	return g.FindAll(Base)
}

// Trace counts what a climb from source reaches. With dedupe the result is
// the number of distinct summits; the summit set lives only for this call.
// Without dedupe every distinct trail to a summit counts.
func Trace(g *grid.Grid[int], source grid.Point, dedupe bool) int {
	h, ok := g.Get(source)
	if !ok {
		return 0
	}
	if h == Summit {
		return 1
	}
	summits := mapset.New[grid.Point]()
	count := 0
	stack := []grid.Point{source}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cur, _ := g.Get(p)
		for _, q := range g.Neighbors(p, grid.Conn4) {
			if next, ok := g.Get(q); !ok || next != cur+1 {
				continue
			}
			if cur+1 < Summit {
				stack = append(stack, q)
				continue
			}
			if dedupe {
				summits.Put(q)
				continue
			}
			count++
		}
	}
	if dedupe {
		return summits.Size()
	}
	return count
}

// Score sums the number of distinct summits over all trailheads.
func Score(g *grid.Grid[int]) int {
	return sum(g, true)
}

// Rating sums the number of distinct trails over all trailheads.
func Rating(g *grid.Grid[int]) int {
	return sum(g, false)
}

func sum(g *grid.Grid[int], dedupe bool) int {
	total := 0
	for _, head := range Heads(g) {
		total += Trace(g, head, dedupe)
	}
	return total
}
