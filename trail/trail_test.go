package trail_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridquest/grid"
	"github.com/katalvlaran/gridquest/trail"
)

var topo = []string{
	"89010123",
	"78121874",
	"87430965",
	"96549874",
	"45678903",
	"32019012",
	"01329801",
	"10456732",
}

func mustParse(t *testing.T, rows string) *grid.Grid[int] {
	t.Helper()
	g, err := trail.ParseMap(strings.Split(rows, "|"))
	require.NoError(t, err)
	return g
}

func TestScoreAndRating(t *testing.T) {
	g, err := trail.ParseMap(topo)
	require.NoError(t, err)
	assert.Len(t, trail.Heads(g), 9)
	assert.Equal(t, 36, trail.Score(g))
	assert.Equal(t, 81, trail.Rating(g))
}

func TestTrace(t *testing.T) {
	cases := []struct {
		name          string
		rows          string
		score, rating int
	}{
		{"corridor", "0123456789", 1, 1},
		{"fork", "...0...|...1...|...2...|6543456|7.....7|8.....8|9.....9", 2, 2},
		{"two branches one summit", "012345|1....6|2....7|3....8|456789", 1, 2},
		{"reconverging", ".....0.|..4321.|..5..2.|..6543.|..7..4.|..8765.|..9....", 1, 3},
		{"mixed", "..90..9|...1.98|...2..7|6543456|765.987|876....|987....", 4, 13},
		{"dense", "0123|1234|8765|9876", 1, 16},
		{"no summit", "012345678", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustParse(t, tc.rows)
			assert.Equal(t, tc.score, trail.Score(g), "score")
			assert.Equal(t, tc.rating, trail.Rating(g), "rating")
		})
	}
}

func TestTrace_MemoIsPerSource(t *testing.T) {
	// two heads share one summit; each must still count it
	g := mustParse(t, "0123456789876543210")
	heads := trail.Heads(g)
	require.Len(t, heads, 2)
	for _, h := range heads {
		assert.Equal(t, 1, trail.Trace(g, h, true))
	}
	assert.Equal(t, 2, trail.Score(g))
}

func TestTrace_Edges(t *testing.T) {
	g := mustParse(t, "0.9")
	assert.Equal(t, 0, trail.Trace(g, grid.Pt(1, 0), true), "absent source")
	assert.Equal(t, 1, trail.Trace(g, grid.Pt(2, 0), false), "source is a summit")
	assert.Equal(t, 0, trail.Trace(g, grid.Pt(0, 0), false))
}

func TestParseMap_Errors(t *testing.T) {
	_, err := trail.ParseMap([]string{"01x"})
	assert.ErrorIs(t, err, trail.ErrBadHeight)
	_, err = trail.ParseMap([]string{"012", "01"})
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
	_, err = trail.ParseMap(nil)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

func BenchmarkRating(b *testing.B) {
	g, _ := trail.ParseMap(topo)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		trail.Rating(g)
	}
}
