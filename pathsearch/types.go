// Package pathsearch defines core types and configuration options for
// priority-first search over arbitrary comparable state keys.
//
// A state key is anything comparable: a grid.Point for plain step-count
// searches, or a Pose (point + facing) when the heading changes the cost of
// the next move. Two states with equal keys are interchangeable for cost
// comparison.
//
// Options:
//
//	– WithAllOptimal():     keep every equal-cost predecessor so the full set of
//	                        minimum-cost paths can be reconstructed.
//	– WithMaxCost(c):       states whose cost would exceed c are not explored.
//	– WithMaxExpansions(n): abort with ErrExpansionLimit after n expansions.
//
// Errors (sentinel):
//
//	– ErrNoStart          if no start state is supplied.
//	– ErrNilGoal          if the goal predicate is nil.
//	– ErrNilNeighbors     if the neighbor function is nil.
//	– ErrNegativeCost     if the neighbor function yields a negative edge cost.
//	– ErrOptionViolation  if an option receives an invalid argument.
//	– ErrExpansionLimit   if the expansion cap is hit before the search settles.
package pathsearch

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by Search and its helpers.
var (
	// ErrNoStart indicates that Search received no start states.
	ErrNoStart = errors.New("pathsearch: no start state")

	// ErrNilGoal indicates that the goal predicate is nil.
	ErrNilGoal = errors.New("pathsearch: goal predicate is nil")

	// ErrNilNeighbors indicates that the neighbor function is nil.
	ErrNilNeighbors = errors.New("pathsearch: neighbor function is nil")

	// ErrNegativeCost indicates that an edge with negative cost was produced.
	ErrNegativeCost = errors.New("pathsearch: negative edge cost encountered")

	// ErrOptionViolation indicates an invalid functional option argument.
	ErrOptionViolation = errors.New("pathsearch: invalid option supplied")

	// ErrExpansionLimit indicates the expansion cap stopped the search.
	ErrExpansionLimit = errors.New("pathsearch: expansion limit reached")
)

// Edge is one outgoing transition produced by a NeighborFunc.
type Edge[S comparable] struct {
	To   S     // successor state
	Cost int64 // non-negative transition cost
}

// NeighborFunc returns the passable successors of s with per-edge costs.
type NeighborFunc[S comparable] func(s S) []Edge[S]

// GoalFunc reports whether s satisfies the goal.
type GoalFunc[S comparable] func(s S) bool

// Options configures the behavior of Search.
//
// AllOptimal    – record every equal-cost predecessor, not just the first.
// MaxCost       – optional cap on explored cost. Default math.MaxInt64.
// MaxExpansions – optional cap on expanded states; 0 disables the cap.
type Options struct {
	AllOptimal    bool
	MaxCost       int64
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithAllOptimal keeps all equal-cost predecessors so OptimalStates can
// return the union of every minimum-cost path.
func WithAllOptimal() Option {
	return func(o *Options) {
		o.AllOptimal = true
	}
}

// WithMaxCost stops exploring states whose accumulated cost exceeds c.
// A negative c is recorded as ErrOptionViolation.
func WithMaxCost(c int64) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, c)
			return
		}
		o.MaxCost = c
	}
}

// WithMaxExpansions caps the number of expanded states.
//
//	n > 0: cap at n
//	n == 0: no cap
//	n < 0: ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// DefaultOptions returns Options with defaults:
//   - AllOptimal:    false (single predecessor per state).
//   - MaxCost:       math.MaxInt64 (no cap).
//   - MaxExpansions: 0 (no cap).
func DefaultOptions() Options {
	return Options{
		AllOptimal:    false,
		MaxCost:       math.MaxInt64,
		MaxExpansions: 0,
	}
}
