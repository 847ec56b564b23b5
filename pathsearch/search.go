// Package pathsearch implements lowest-cost-first search on implicit graphs
// whose vertices are comparable state keys.
//
// Notes on implementation choices:
//
//   - A "lazy" decrease-key strategy: improved states are pushed again and
//     stale heap entries are skipped when popped.
//   - A state is re-queued only when a strictly better cost is found. With
//     AllOptimal, an equal-cost arrival only adds a predecessor to the
//     parent multimap; the state is not queued again.
//   - No per-entry path copies: predecessors live in a map[S][]S and paths
//     are rebuilt backward from the goal states.
//   - Goal states are never expanded. Once the first goal is popped, all
//     goals at the same cost are collected and the search stops when the
//     frontier moves past that cost.
package pathsearch

import (
	"container/heap"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridquest/grid"
)

// Result holds the outcome of a Search.
//
//   - Found: false means the frontier emptied without reaching a goal. This
//     is an ordinary outcome, not an error.
//   - Cost:  minimum cost to any goal (valid only if Found).
//   - Goals: every goal state reached at Cost, in pop order.
//   - Expanded: number of states expanded.
type Result[S comparable] struct {
	Found    bool
	Cost     int64
	Goals    []S
	Expanded int

	dist    map[S]int64
	parents map[S][]S
}

// CostTo returns the best known cost of s and whether s was reached.
func (r *Result[S]) CostTo(s S) (int64, bool) {
	c, ok := r.dist[s]
	return c, ok
}

// Path returns one minimum-cost path from a start state to the first goal,
// following the first recorded predecessor at each step.
func (r *Result[S]) Path() ([]S, bool) {
	if !r.Found {
		return nil, false
	}
	path := []S{r.Goals[0]}
	// zero-cost edges back into a start can give it a parent
	onPath := mapset.New[S]()
	onPath.Put(r.Goals[0])
	for cur := r.Goals[0]; ; {
		ps := r.parents[cur]
		if len(ps) == 0 || onPath.Has(ps[0]) {
			break
		}
		cur = ps[0]
		onPath.Put(cur)
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}

// OptimalStates returns every state lying on some minimum-cost path to a
// goal. With AllOptimal disabled only one path per goal is represented.
// The walk is an explicit stack over the parent multimap.
func (r *Result[S]) OptimalStates() []S {
	if !r.Found {
		return nil
	}
	seen := mapset.New[S]()
	stack := make([]S, 0, len(r.Goals))
	var out []S
	for _, g := range r.Goals {
		if !seen.Has(g) {
			seen.Put(g)
			stack = append(stack, g)
		}
	}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, cur)
		for _, p := range r.parents[cur] {
			if !seen.Has(p) {
				seen.Put(p)
				stack = append(stack, p)
			}
		}
	}
	return out
}

// OptimalCells projects OptimalStates onto grid points, deduplicated.
func OptimalCells[S comparable](r *Result[S], project func(S) grid.Point) mapset.Set[grid.Point] {
	cells := mapset.New[grid.Point]()
	for _, s := range r.OptimalStates() {
		cells.Put(project(s))
	}
	return cells
}

// Search runs a lowest-cost-first search from starts until goal states are
// settled or the frontier empties.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. At least one start (ErrNoStart).
//  3. goal and next must be non-nil (ErrNilGoal, ErrNilNeighbors).
//
// During the run a negative edge cost aborts with ErrNegativeCost and the
// expansion cap aborts with ErrExpansionLimit.
//
// Complexity:
//
//   - Time:  O((V + E) log V) over reachable states V and edges E.
//   - Space: O(V + E) for costs, predecessors and the heap.
func Search[S comparable](starts []S, goal GoalFunc[S], next NeighborFunc[S], opts ...Option) (*Result[S], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if len(starts) == 0 {
		return nil, ErrNoStart
	}
	if goal == nil {
		return nil, ErrNilGoal
	}
	if next == nil {
		return nil, ErrNilNeighbors
	}

	r := &runner[S]{
		options: cfg,
		goal:    goal,
		next:    next,
		closed:  mapset.New[S](),
		res: &Result[S]{
			dist:    make(map[S]int64),
			parents: make(map[S][]S),
		},
	}
	r.init(starts)
	if err := r.process(); err != nil {
		return nil, err
	}
	return r.res, nil
}

// runner holds the mutable state for a single Search execution.
type runner[S comparable] struct {
	options Options
	goal    GoalFunc[S]
	next    NeighborFunc[S]
	closed  mapset.Set[S] // states whose cost is final
	pq      statePQ[S]
	seq     uint64 // insertion counter for FIFO tie-break
	res     *Result[S]
}

// init seeds every start with cost 0.
func (r *runner[S]) init(starts []S) {
	heap.Init(&r.pq)
	for _, s := range starts {
		if _, dup := r.res.dist[s]; dup {
			continue
		}
		r.res.dist[s] = 0
		r.push(s, 0)
	}
}

func (r *runner[S]) push(s S, cost int64) {
	heap.Push(&r.pq, &stateItem[S]{state: s, cost: cost, seq: r.seq})
	r.seq++
}

// process is the main loop: pop the cheapest state, settle goals, relax edges.
func (r *runner[S]) process() error {
	res := r.res
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*stateItem[S])
		s, c := item.state, item.cost

		// Stale entry or already settled.
		if c > res.dist[s] || r.closed.Has(s) {
			continue
		}
		// Every remaining entry costs more than the goal already found.
		if res.Found && c > res.Cost {
			break
		}
		if c > r.options.MaxCost {
			break
		}
		r.closed.Put(s)

		if r.goal(s) {
			if !res.Found {
				res.Found = true
				res.Cost = c
			}
			res.Goals = append(res.Goals, s)
			continue
		}

		if r.options.MaxExpansions > 0 && res.Expanded >= r.options.MaxExpansions {
			return fmt.Errorf("%w: %d states expanded", ErrExpansionLimit, res.Expanded)
		}
		res.Expanded++
		if err := r.relax(s, c); err != nil {
			return err
		}
	}
	return nil
}

// relax examines each successor of s and records better or equal arrivals.
func (r *runner[S]) relax(s S, c int64) error {
	res := r.res
	for _, e := range r.next(s) {
		if e.Cost < 0 {
			return fmt.Errorf("%w: %v→%v cost=%d", ErrNegativeCost, s, e.To, e.Cost)
		}
		nc := c + e.Cost
		if nc > r.options.MaxCost {
			continue
		}
		old, seen := res.dist[e.To]
		switch {
		case !seen || nc < old:
			res.dist[e.To] = nc
			res.parents[e.To] = append(res.parents[e.To][:0], s)
			r.push(e.To, nc)
		case nc == old && r.options.AllOptimal:
			if !containsState(res.parents[e.To], s) {
				res.parents[e.To] = append(res.parents[e.To], s)
			}
		}
	}
	return nil
}

func containsState[S comparable](list []S, s S) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// stateItem is a frontier entry: a state, its accumulated cost and the
// insertion sequence used to break cost ties in FIFO order.
type stateItem[S comparable] struct {
	state S
	cost  int64
	seq   uint64
}

// statePQ is a min-heap of *stateItem ordered by (cost, seq).
type statePQ[S comparable] []*stateItem[S]

func (pq statePQ[S]) Len() int { return len(pq) }

func (pq statePQ[S]) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].seq < pq[j].seq
}

func (pq statePQ[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *statePQ[S]) Push(x any) { *pq = append(*pq, x.(*stateItem[S])) }

func (pq *statePQ[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
