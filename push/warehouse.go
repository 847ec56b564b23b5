package push

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridquest/grid"
	"github.com/katalvlaran/gridquest/input"
)

var (
	// ErrNoRobot indicates a warehouse map without '@'.
	ErrNoRobot = errors.New("push: warehouse has no robot")
	// ErrManyRobots indicates more than one '@'.
	ErrManyRobots = errors.New("push: warehouse has more than one robot")
	// ErrBadTile indicates a rune outside "#.O[]@".
	ErrBadTile = errors.New("push: unknown warehouse tile")
)

// Warehouse is a walled map with one robot and a queue of moves.
type Warehouse struct {
	Grid  *grid.Grid[Tile]
	Robot grid.Point
	Moves []grid.Direction
}

func decodeTile(r rune) (Tile, error) {
	switch r {
	case '#':
		return Wall, nil
	case '.':
		return Empty, nil
	case 'O':
		return Box, nil
	case '[':
		return BoxLeft, nil
	case ']':
		return BoxRight, nil
	case '@':
		return Robot, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadTile, r)
}

// Glyph is the inverse of the map alphabet; absent cells print as '?'.
func Glyph(t Tile, ok bool) rune {
	if !ok {
		return '?'
	}
	switch t {
	case Wall:
		return '#'
	case Box:
		return 'O'
	case BoxLeft:
		return '['
	case BoxRight:
		return ']'
	case Robot:
		return '@'
	}
	return '.'
}

// ParseWarehouse reads a map block followed by a move block. Moves may be
// split over several lines.
func ParseWarehouse(lines []string) (*Warehouse, error) {
	blocks := input.SplitBlocks(lines)
	if len(blocks) != 2 {
		return nil, fmt.Errorf("%w: want map and moves blocks, got %d blocks", input.ErrMalformed, len(blocks))
	}
	w, err := parseMap(blocks[0])
	if err != nil {
		return nil, err
	}
	for _, r := range strings.Join(blocks[1], "") {
		d, err := grid.ParseDirection(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", input.ErrMalformed, err)
		}
		w.Moves = append(w.Moves, d)
	}
	return w, nil
}

func parseMap(rows []string) (*Warehouse, error) {
	g, err := grid.Parse(rows, func(_ grid.Point, r rune) (Tile, bool, error) {
		t, err := decodeTile(r)
		return t, err == nil, err
	})
	if err != nil {
		return nil, err
	}
	if err := checkPairs(g); err != nil {
		return nil, err
	}
	robots := g.FindAll(Robot)
	switch {
	case len(robots) == 0:
		return nil, ErrNoRobot
	case len(robots) > 1:
		return nil, fmt.Errorf("%w: %d", ErrManyRobots, len(robots))
	}
	return &Warehouse{Grid: g, Robot: robots[0]}, nil
}

// checkPairs requires every '[' to be followed by ']' and every ']' to be
// preceded by '['.
func checkPairs(g *grid.Grid[Tile]) error {
	var bad []grid.Point
	g.Each(func(p grid.Point, t Tile) {
		var mate grid.Point
		var want Tile
		switch t {
		case BoxLeft:
			mate, want = p.Step(grid.Right), BoxRight
		case BoxRight:
			mate, want = p.Step(grid.Left), BoxLeft
		default:
			return
		}
		if got, ok := g.Get(mate); !ok || got != want {
			bad = append(bad, p)
		}
	})
	if len(bad) > 0 {
		return fmt.Errorf("%w: unpaired box half at %v", ErrBadTile, bad[0])
	}
	return nil
}

// Widen returns a copy where every cell is doubled horizontally: walls and
// floor double, a box becomes "[]" and the robot becomes "@.".
func (w *Warehouse) Widen() *Warehouse {
	g := grid.NewBounded[Tile](w.Grid.Width()*2, w.Grid.Height())
	w.Grid.Each(func(p grid.Point, t Tile) {
		l, r := grid.Pt(p.X*2, p.Y), grid.Pt(p.X*2+1, p.Y)
		switch t {
		case Box:
			g.Set(l, BoxLeft)
			g.Set(r, BoxRight)
		case Robot:
			g.Set(l, Robot)
			g.Set(r, Empty)
		default:
			g.Set(l, t)
			g.Set(r, t)
		}
	})
	moves := make([]grid.Direction, len(w.Moves))
	copy(moves, w.Moves)
	return &Warehouse{Grid: g, Robot: grid.Pt(w.Robot.X*2, w.Robot.Y), Moves: moves}
}

// Step tries to move the robot one cell towards d, pushing boxes ahead of
// it. It reports whether the robot moved; a blocked move changes nothing.
func (w *Warehouse) Step(d grid.Direction) bool {
	next := w.Robot.Step(d)
	if !CanPush(w.Grid, next, d) {
		return false
	}
	Push(w.Grid, next, d)
	w.Grid.Set(w.Robot, Empty)
	w.Grid.Set(next, Robot)
	w.Robot = next
	return true
}

// Run performs every queued move and returns how many succeeded.
func (w *Warehouse) Run() int {
	moved := 0
	for _, d := range w.Moves {
		if w.Step(d) {
			moved++
		}
	}
	return moved
}

// GPS sums 100*y + x over every box, measured from its left edge.
func (w *Warehouse) GPS() int {
	sum := 0
	w.Grid.Each(func(p grid.Point, t Tile) {
		if t == Box || t == BoxLeft {
			sum += 100*p.Y + p.X
		}
	})
	return sum
}

// Boxes counts boxes; a double-width box counts once.
func (w *Warehouse) Boxes() int {
	return w.Grid.Count(Box) + w.Grid.Count(BoxLeft)
}

// String renders the warehouse in its input alphabet.
func (w *Warehouse) String() string {
	return w.Grid.Render(func(_ grid.Point, t Tile, ok bool) rune { return Glyph(t, ok) })
}
