package patrol

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridquest/grid"
)

// Lab is a rectangular floor; true cells are obstacles.
type Lab struct {
	Grid  *grid.Grid[bool]
	Start Guard
}

// ParseLab reads a map of '.' floor and '#' obstacles with exactly one guard
// drawn as '^', '>', 'v' or '<'.
func ParseLab(lines []string) (*Lab, error) {
	var guards []Guard
	g, err := grid.Parse(lines, func(p grid.Point, r rune) (bool, bool, error) {
		switch r {
		case '.':
			return false, true, nil
		case '#':
			return true, true, nil
		}
		d, err := grid.ParseDirection(r)
		if err != nil {
			return false, false, fmt.Errorf("%w: %q", ErrBadTile, r)
		}
		guards = append(guards, Guard{Pos: p, Facing: d})
		return false, true, nil
	})
	if err != nil {
		return nil, err
	}
	switch {
	case len(guards) == 0:
		return nil, ErrNoGuard
	case len(guards) > 1:
		return nil, fmt.Errorf("%w: %d", ErrManyGuards, len(guards))
	}
	return &Lab{Grid: g, Start: guards[0]}, nil
}

// blocked reports whether p holds an obstacle, counting extra.
func (l *Lab) blocked(p grid.Point, extra mapset.Set[grid.Point]) bool {
	if extra.Has(p) {
		return true
	}
	wall, _ := l.Grid.Get(p)
	return wall
}

// Walk runs the patrol with the obstacles in extra added to the map.
// Extra cells outside the map are ignored.
func Walk(lab *Lab, extra []grid.Point, opts ...Option) (Outcome, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Outcome{}, o.err
	}
	added := mapset.New[grid.Point]()
	for _, p := range extra {
		if p == lab.Start.Pos {
			return Outcome{}, fmt.Errorf("%w: %v", ErrObstructedStart, p)
		}
		added.Put(p)
	}

	var (
		out   Outcome
		guard = lab.Start
		seen  = mapset.New[Guard]()
		cells = mapset.New[grid.Point]()
	)
	cells.Put(guard.Pos)
	out.Route = append(out.Route, guard.Pos)
	for {
		if seen.Has(guard) {
			out.Loop = true
			return out, nil
		}
		seen.Put(guard)
		if o.MaxSteps > 0 && out.Steps >= o.MaxSteps {
			return out, fmt.Errorf("%w: %d", ErrStepLimit, o.MaxSteps)
		}
		out.Steps++

		ahead := guard.Pos.Step(guard.Facing)
		if !lab.Grid.InBounds(ahead) {
			return out, nil
		}
		if lab.blocked(ahead, added) {
			guard.Facing = guard.Facing.TurnRight()
			continue
		}
		guard.Pos = ahead
		if !cells.Has(ahead) {
			cells.Put(ahead)
			out.Route = append(out.Route, ahead)
		}
	}
}

// Visited returns how many distinct cells the unobstructed patrol covers.
func (l *Lab) Visited() (int, error) {
	out, err := Walk(l, nil)
	if err != nil {
		return 0, err
	}
	return len(out.Route), nil
}

// LoopObstructions counts the cells where one extra obstacle traps the guard
// in a loop. Only cells on the unobstructed route can change the walk, and
// the guard's own cell is excluded.
func (l *Lab) LoopObstructions(opts ...Option) (int, error) {
	base, err := Walk(l, nil, opts...)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, p := range base.Route {
		if p == l.Start.Pos {
			continue
		}
		out, err := Walk(l, []grid.Point{p}, opts...)
		if err != nil {
			return 0, err
		}
		if out.Loop {
			count++
		}
	}
	return count, nil
}
