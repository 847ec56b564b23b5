package pathsearch

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridquest/grid"
)

// Turn-penalized maze costs.
const (
	StepCost int64 = 1
	TurnCost int64 = 1000
)

var (
	// ErrMissingStart indicates a map without its 'S' cell.
	ErrMissingStart = errors.New("pathsearch: map has no start cell")
	// ErrMissingEnd indicates a map without its 'E' cell.
	ErrMissingEnd = errors.New("pathsearch: map has no end cell")
	// ErrBadTile indicates a rune outside the map alphabet.
	ErrBadTile = errors.New("pathsearch: unknown map tile")
)

// Tile is a maze or track cell.
type Tile uint8

const (
	Open Tile = iota
	Wall
)

// Pose is the facing-aware search state: a position plus heading.
type Pose struct {
	Pos    grid.Point
	Facing grid.Direction
}

// Maze is a walled map with one start and one end cell. Cells outside the
// map count as walls.
type Maze struct {
	Grid  *grid.Grid[Tile]
	Start grid.Point
	End   grid.Point
	// Facing is the heading at Start; Right unless set otherwise.
	Facing grid.Direction
}

// ParseMaze reads '#', '.', 'S' and 'E' rows.
func ParseMaze(lines []string) (*Maze, error) {
	m := &Maze{Facing: grid.Right}
	var hasStart, hasEnd bool
	g, err := grid.Parse(lines, func(p grid.Point, r rune) (Tile, bool, error) {
		switch r {
		case '#':
			return Wall, true, nil
		case '.':
			return Open, true, nil
		case 'S':
			m.Start, hasStart = p, true
			return Open, true, nil
		case 'E':
			m.End, hasEnd = p, true
			return Open, true, nil
		}
		return 0, false, fmt.Errorf("%w: %q", ErrBadTile, r)
	})
	if err != nil {
		return nil, err
	}
	if !hasStart {
		return nil, ErrMissingStart
	}
	if !hasEnd {
		return nil, ErrMissingEnd
	}
	m.Grid = g
	return m, nil
}

// Open reports whether p is a walkable cell.
func (m *Maze) Open(p grid.Point) bool {
	t, ok := m.Grid.Get(p)
	return ok && t == Open
}

// neighbors moves one cell forward or turns 90° in place.
func (m *Maze) neighbors(s Pose) []Edge[Pose] {
	out := make([]Edge[Pose], 0, 3)
	if fwd := s.Pos.Step(s.Facing); m.Open(fwd) {
		out = append(out, Edge[Pose]{To: Pose{fwd, s.Facing}, Cost: StepCost})
	}
	for _, f := range [2]grid.Direction{s.Facing.TurnRight(), s.Facing.TurnLeft()} {
		out = append(out, Edge[Pose]{To: Pose{s.Pos, f}, Cost: TurnCost})
	}
	return out
}

// Search runs the facing-aware search from Start to End with all optimal
// predecessors retained.
func (m *Maze) Search(opts ...Option) (*Result[Pose], error) {
	opts = append([]Option{WithAllOptimal()}, opts...)
	return Search(
		[]Pose{{m.Start, m.Facing}},
		func(s Pose) bool { return s.Pos == m.End },
		m.neighbors,
		opts...,
	)
}

// Best returns the lowest score from Start to End and the number of cells
// lying on at least one lowest-score route. found is false when End is
// unreachable.
func (m *Maze) Best(opts ...Option) (score int64, cells int, found bool, err error) {
	res, err := m.Search(opts...)
	if err != nil {
		return 0, 0, false, err
	}
	if !res.Found {
		return 0, 0, false, nil
	}
	seats := OptimalCells(res, func(p Pose) grid.Point { return p.Pos })
	return res.Cost, seats.Size(), true, nil
}
