// Package patrol simulates a guard walking a lab floor.
//
// The guard steps forward while the cell ahead is free, turns right in place
// when it is blocked, and leaves once it steps outside the map. Its state is
// a Guard (position + facing); seeing the same Guard twice means the patrol
// never ends.
//
// Options:
//
//	– WithMaxSteps(n): abort with ErrStepLimit after n actions (0 = no cap).
//
// Errors (sentinel):
//
//	– ErrNoGuard, ErrManyGuards, ErrBadTile   on parsing.
//	– ErrObstructedStart                      if an extra obstacle is placed on the guard.
//	– ErrOptionViolation                      if an option receives an invalid argument.
//	– ErrStepLimit                            if the cap is hit before the patrol settles.
package patrol

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridquest/grid"
)

var (
	// ErrNoGuard indicates a lab without a guard marker.
	ErrNoGuard = errors.New("patrol: lab has no guard")

	// ErrManyGuards indicates more than one guard marker.
	ErrManyGuards = errors.New("patrol: lab has more than one guard")

	// ErrBadTile indicates a rune outside ".#^>v<".
	ErrBadTile = errors.New("patrol: unknown lab tile")

	// ErrObstructedStart indicates an extra obstacle on the guard's cell.
	ErrObstructedStart = errors.New("patrol: obstacle on guard start")

	// ErrOptionViolation indicates an invalid functional option argument.
	ErrOptionViolation = errors.New("patrol: invalid option supplied")

	// ErrStepLimit indicates the step cap stopped the walk.
	ErrStepLimit = errors.New("patrol: step limit reached")
)

// Guard is the walker's full state.
type Guard struct {
	Pos    grid.Point
	Facing grid.Direction
}

// Outcome describes a finished patrol.
//
// Loop  – the guard repeated a state and never leaves.
// Steps – actions taken (moves and turns) until exit or loop detection.
// Route – distinct positions in first-visit order, start included.
type Outcome struct {
	Loop  bool
	Steps int
	Route []grid.Point
}

// Options configures Walk.
type Options struct {
	MaxSteps int

	err error
}

// Option is a functional option for Walk.
type Option func(*Options)

// WithMaxSteps caps the number of actions. n == 0 disables the cap and a
// negative n is recorded as ErrOptionViolation.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// DefaultOptions returns Options with no step cap.
func DefaultOptions() Options {
	return Options{MaxSteps: 0}
}
