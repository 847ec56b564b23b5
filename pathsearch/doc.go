// Package pathsearch provides shortest-path search over grids whose search
// state may carry more than a position.
//
// Overview:
//
//   - Search is a lowest-cost-first engine over any comparable state key S,
//     driven by a goal predicate and a neighbor function returning
//     (successor, cost) edges.
//   - WithAllOptimal keeps every equal-cost predecessor, so the union of all
//     minimum-cost paths is rebuilt backward from the goals
//     (Result.OptimalStates, OptimalCells) without copying paths forward.
//   - BFS and Steps cover the uniform-cost case over grid points, where a
//     point is visited at most once.
//
// Puzzles built on top:
//
//   - Maze: turn-penalized walk; state = Pose (point + facing); a step costs
//     StepCost, a quarter turn in place costs TurnCost.
//   - MemorySpace: falling bytes corrupt a square grid; ExitSteps and the
//     first byte that cuts the exit (FirstBlocking).
//   - RaceTrack: a single lane with distance-by-index and cheat counting.
//
// Unreachable goals are ordinary outcomes: Result.Found is false and the
// error is nil. Errors are reserved for invalid input and caps:
//
//   - ErrNoStart, ErrNilGoal, ErrNilNeighbors, ErrNegativeCost,
//     ErrOptionViolation, ErrExpansionLimit.
//   - ErrMissingStart, ErrMissingEnd, ErrBadTile (map parsing).
//   - ErrBranchingTrack (RaceTrack.Track).
//
// Complexity:
//
//   - Search: O((V + E) log V) time, O(V + E) memory over reachable states.
//   - BFS/Steps: O(V) time and memory.
package pathsearch
