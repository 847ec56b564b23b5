package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridquest/grid"
)

var gardenLarge = []string{
	"RRRRIICCFF",
	"RRRRIICCCF",
	"VVRRRCCFFF",
	"VVRCCCJFFF",
	"VVVVCJJCFE",
	"VVIVCCJJEE",
	"VVIIICJJEE",
	"MIIIIIJJEE",
	"MIIISIJEEE",
	"MMMISSJEEE",
}

// TestRegions_Small checks area, perimeter and sides on the four-letter map.
func TestRegions_Small(t *testing.T) {
	g, err := grid.Runes([]string{
		"AAAA",
		"BBCD",
		"BBCC",
		"EEEC",
	})
	require.NoError(t, err)

	regions := g.Regions()
	require.Len(t, regions, 5)

	type stat struct{ area, perimeter, sides int }
	want := map[rune]stat{
		'A': {4, 10, 4},
		'B': {4, 8, 4},
		'C': {4, 10, 8},
		'D': {1, 4, 4},
		'E': {3, 8, 4},
	}
	for _, r := range regions {
		w := want[r.Label]
		assert.Equal(t, w.area, r.Area(), "area of %c", r.Label)
		assert.Equal(t, w.perimeter, r.Perimeter(), "perimeter of %c", r.Label)
		assert.Equal(t, w.sides, r.Sides(), "sides of %c", r.Label)
	}
	assert.Equal(t, 140, grid.FencePrice(regions))
	assert.Equal(t, 80, grid.BulkPrice(regions))
}

// TestRegions_Holes checks that enclosed regions count their inner fences.
func TestRegions_Holes(t *testing.T) {
	g, err := grid.Runes([]string{
		"OOOOO",
		"OXOXO",
		"OOOOO",
		"OXOXO",
		"OOOOO",
	})
	require.NoError(t, err)
	regions := g.Regions()
	require.Len(t, regions, 5)
	assert.Equal(t, 772, grid.FencePrice(regions))
	assert.Equal(t, 436, grid.BulkPrice(regions))
}

// TestRegions_Large checks the ten-by-ten garden totals.
func TestRegions_Large(t *testing.T) {
	g, err := grid.Runes(gardenLarge)
	require.NoError(t, err)
	regions := g.Regions()
	assert.Len(t, regions, 11)
	assert.Equal(t, 1930, grid.FencePrice(regions))
	assert.Equal(t, 1206, grid.BulkPrice(regions))
}

// TestRegions_DisjointSameLabel verifies equal labels that do not touch form separate regions.
func TestRegions_DisjointSameLabel(t *testing.T) {
	g, err := grid.Runes([]string{"A.A"})
	require.NoError(t, err)
	regions := g.Regions()
	require.Len(t, regions, 3)
	assert.Equal(t, grid.Pt(0, 0), regions[0].Cells[0])
	assert.Equal(t, grid.Pt(2, 0), regions[2].Cells[0])
	assert.True(t, regions[2].Contains(grid.Pt(2, 0)))
	assert.False(t, regions[2].Contains(grid.Pt(0, 0)))
}
