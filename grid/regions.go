package grid

import "github.com/zyedidia/generic/mapset"

// Region is a maximal 4-connected set of cells sharing one label.
type Region[L comparable] struct {
	Label L
	Cells []Point // discovery order, first cell is the row-major minimum

	members mapset.Set[Point]
}

// Contains reports whether p belongs to the region.
func (r *Region[L]) Contains(p Point) bool { return r.members.Has(p) }

// Area is the number of cells.
func (r *Region[L]) Area() int { return len(r.Cells) }

// Perimeter counts cell edges that face a cell outside the region.
func (r *Region[L]) Perimeter() int {
	n := 0
	for _, p := range r.Cells {
		for _, d := range Directions {
			if !r.members.Has(p.Step(d)) {
				n++
			}
		}
	}
	return n
}

// Sides counts the straight fence segments around the region, including
// holes. A polygon has as many sides as corners, so each cell contributes
// its convex and concave corners.
func (r *Region[L]) Sides() int {
	corners := 0
	for _, p := range r.Cells {
		for _, d := range Directions {
			e := d.TurnRight()
			inD := r.members.Has(p.Step(d))
			inE := r.members.Has(p.Step(e))
			switch {
			case !inD && !inE:
				corners++
			case inD && inE && !r.members.Has(p.Step(d).Step(e)):
				corners++
			}
		}
	}
	return corners
}

// Regions finds every 4-connected region of equal labels among the stored
// cells. Regions are returned in row-major order of their first cell.
//
// Time:   O(N), N = stored cells.
// Memory: O(N) for the seen set and output.
func (g *Grid[L]) Regions() []*Region[L] {
	seen := mapset.New[Point]()
	var out []*Region[L]

	g.Each(func(start Point, label L) {
		if seen.Has(start) {
			return
		}
		reg := &Region[L]{Label: label, members: mapset.New[Point]()}
		queue := []Point{start}
		seen.Put(start)
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			reg.Cells = append(reg.Cells, u)
			reg.members.Put(u)
			for _, d := range Directions {
				v := u.Step(d)
				if seen.Has(v) {
					continue
				}
				if l, ok := g.cells[v]; ok && l == label {
					seen.Put(v)
					queue = append(queue, v)
				}
			}
		}
		out = append(out, reg)
	})
	return out
}

// FencePrice sums area × perimeter over regions.
func FencePrice[L comparable](regions []*Region[L]) int {
	total := 0
	for _, r := range regions {
		total += r.Area() * r.Perimeter()
	}
	return total
}

// BulkPrice sums area × sides over regions.
func BulkPrice[L comparable](regions []*Region[L]) int {
	total := 0
	for _, r := range regions {
		total += r.Area() * r.Sides()
	}
	return total
}
