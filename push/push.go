// Package push decides whether a chain of movable boxes can shift one cell
// and performs the shift as a single relocation.
//
// The contract is two-phase:
//
//   - CanPush is a pure simulation; calling it never changes the grid.
//   - Push mutates, and must only follow a CanPush that returned true for the
//     same position and direction. Push does not re-validate.
//
// Both phases gather the chain with an explicit worklist, so arbitrarily long
// or wide chains never grow the call stack. A blocked push is not an error:
// CanPush returns false and the caller simply does not move.
package push

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridquest/grid"
)

// Tile is a warehouse cell label.
type Tile uint8

const (
	Empty Tile = iota
	Wall
	Box      // single-width box
	BoxLeft  // left half of a double-width box
	BoxRight // right half of a double-width box
	Robot
)

// Movable reports whether t is a box or box half.
func (t Tile) Movable() bool { return t == Box || t == BoxLeft || t == BoxRight }

// halves returns the cells occupied by the box covering p.
func halves(t Tile, p grid.Point) []grid.Point {
	switch t {
	case BoxLeft:
		return []grid.Point{p, p.Step(grid.Right)}
	case BoxRight:
		return []grid.Point{p.Step(grid.Left), p}
	}
	return []grid.Point{p}
}

// gather collects every box cell that must move when the cell at is pushed
// towards d. ok is false as soon as a wall, a robot or an absent cell is met
// ahead of the chain; the partial chain is then meaningless.
//
// The worklist probes the cell ahead of each gathered half, skipping cells
// that already belong to the chain, so a push along a double-width box only
// probes ahead of its leading half while a push across it probes ahead of
// both halves and recurses into every box found there.
func gather(g *grid.Grid[Tile], at grid.Point, d grid.Direction) (chain []grid.Point, ok bool) {
	inChain := mapset.New[grid.Point]()
	work := []grid.Point{at}
	for len(work) > 0 {
		p := work[len(work)-1]
		work = work[:len(work)-1]
		if inChain.Has(p) {
			continue
		}
		t, present := g.Get(p)
		switch {
		case present && t == Empty:
			continue
		case !present || !t.Movable():
			return chain, false
		}
		hs := halves(t, p)
		for _, h := range hs {
			if !inChain.Has(h) {
				inChain.Put(h)
				chain = append(chain, h)
			}
		}
		for _, h := range hs {
			if ahead := h.Step(d); !inChain.Has(ahead) {
				work = append(work, ahead)
			}
		}
	}
	return chain, true
}

// CanPush reports whether the content of at can move one cell towards d.
// An Empty cell trivially can; walls, robots and cells outside the grid
// cannot. The grid is never modified.
func CanPush(g *grid.Grid[Tile], at grid.Point, d grid.Direction) bool {
	_, ok := gather(g, at, d)
	return ok
}

// Push moves every box in the chain starting at at one cell towards d.
// Callers must have observed CanPush(g, at, d) == true on the same grid.
// All moved labels are read before any cell is written, so the relocation is
// observed as one step.
func Push(g *grid.Grid[Tile], at grid.Point, d grid.Direction) {
	chain, _ := gather(g, at, d)
	labels := make([]Tile, len(chain))
	for i, p := range chain {
		labels[i], _ = g.Get(p)
	}
	for _, p := range chain {
		g.Set(p, Empty)
	}
	for i, p := range chain {
		g.Set(p.Step(d), labels[i])
	}
}

// Chain returns the cells that a push from at towards d would move, and
// whether the push is possible.
func Chain(g *grid.Grid[Tile], at grid.Point, d grid.Direction) ([]grid.Point, bool) {
	return gather(g, at, d)
}
