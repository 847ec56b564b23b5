// Package grid defines the coordinate, direction and sentinel error types
// shared by every grid puzzle in github.com/katalvlaran/gridquest.
package grid

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadDirection indicates a rune that does not name a direction.
	ErrBadDirection = errors.New("grid: unknown direction")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Point is an integer coordinate. X grows to the right, Y grows downwards.
// Points are comparable and are used directly as map keys.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale multiplies both components by k.
func (p Point) Scale(k int) Point { return Point{p.X * k, p.Y * k} }

// Step moves p one cell in direction d.
func (p Point) Step(d Direction) Point { return p.Add(d.Offset()) }

// Manhattan returns |p.X-q.X| + |p.Y-q.Y|.
func (p Point) Manhattan(q Point) int {
	return Abs(p.X-q.X) + Abs(p.Y-q.Y)
}

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Abs returns the absolute value of v.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Direction is one of the four orthogonal headings, ordered clockwise.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the four headings in clockwise order starting at Up.
var Directions = [4]Direction{Up, Right, Down, Left}

var directionOffsets = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Offset returns the unit vector for d.
func (d Direction) Offset() Point { return directionOffsets[d&3] }

// TurnRight rotates d 90° clockwise.
func (d Direction) TurnRight() Direction { return (d + 1) & 3 }

// TurnLeft rotates d 90° counter-clockwise.
func (d Direction) TurnLeft() Direction { return (d + 3) & 3 }

// Reverse returns the opposite heading.
func (d Direction) Reverse() Direction { return (d + 2) & 3 }

// Horizontal reports whether d is Left or Right.
func (d Direction) Horizontal() bool { return d == Left || d == Right }

func (d Direction) String() string {
	switch d {
	case Up:
		return "^"
	case Right:
		return ">"
	case Down:
		return "v"
	case Left:
		return "<"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection maps one of '^', '>', 'v', '<' to its Direction.
func ParseDirection(r rune) (Direction, error) {
	switch r {
	case '^':
		return Up, nil
	case '>':
		return Right, nil
	case 'v':
		return Down, nil
	case '<':
		return Left, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadDirection, r)
}

// Offsets returns the neighbor offsets for conn, clockwise starting at North.
func Offsets(conn Connectivity) []Point {
	if conn == Conn8 {
		return []Point{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}
	return []Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}
