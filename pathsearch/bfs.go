package pathsearch

import (
	"fmt"

	"github.com/katalvlaran/gridquest/grid"
)

// BFSResult holds the outcome of a breadth-first walk over grid points:
//   - Order: points in visit sequence.
//   - Depth: steps from the start to each reached point.
//   - Parent: predecessor of each reached point in the BFS tree.
type BFSResult struct {
	Order  []grid.Point
	Depth  map[grid.Point]int
	Parent map[grid.Point]grid.Point
}

// Reached reports whether p was visited.
func (r *BFSResult) Reached(p grid.Point) bool {
	_, ok := r.Depth[p]
	return ok
}

// PathTo reconstructs the path from the start point to dest.
// Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest grid.Point) ([]grid.Point, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("pathsearch: no path to %v", dest)
	}
	path := []grid.Point{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// BFS walks every point reachable from start through cells accepted by
// passable, using conn neighbor offsets. Each point is visited at most once.
// The start itself is not checked against passable.
//
// Complexity: O(V·d) time and O(V) memory, V = reachable points.
func BFS(start grid.Point, passable func(grid.Point) bool, conn grid.Connectivity) *BFSResult {
	res := &BFSResult{
		Order:  make([]grid.Point, 0, 64),
		Depth:  map[grid.Point]int{start: 0},
		Parent: make(map[grid.Point]grid.Point),
	}
	offsets := grid.Offsets(conn)
	queue := []grid.Point{start}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		res.Order = append(res.Order, u)
		for _, d := range offsets {
			v := u.Add(d)
			if _, seen := res.Depth[v]; seen || !passable(v) {
				continue
			}
			res.Depth[v] = res.Depth[u] + 1
			res.Parent[v] = u
			queue = append(queue, v)
		}
	}
	return res
}

// Steps returns the fewest 4-connected steps from start to goal through
// passable cells, stopping as soon as goal is dequeued.
// ok is false when goal is unreachable, including when start itself is not
// passable.
func Steps(start, goal grid.Point, passable func(grid.Point) bool) (steps int, ok bool) {
	if !passable(start) {
		return 0, false
	}
	depth := map[grid.Point]int{start: 0}
	queue := []grid.Point{start}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == goal {
			return depth[u], true
		}
		for _, d := range grid.Directions {
			v := u.Step(d)
			if _, seen := depth[v]; seen || !passable(v) {
				continue
			}
			depth[v] = depth[u] + 1
			queue = append(queue, v)
		}
	}
	return 0, false
}
