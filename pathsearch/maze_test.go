package pathsearch_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridquest/grid"
	"github.com/katalvlaran/gridquest/pathsearch"
)

var mazeSmall = []string{
	"###############",
	"#.......#....E#",
	"#.#.###.#.###.#",
	"#.....#.#...#.#",
	"#.###.#####.#.#",
	"#.#.#.......#.#",
	"#.#.#####.###.#",
	"#...........#.#",
	"###.#.#####.#.#",
	"#...#.....#.#.#",
	"#.#.#.###.#.#.#",
	"#.....#...#.#.#",
	"#.###.#.#.#.#.#",
	"#S..#.....#...#",
	"###############",
}

var mazeLarge = []string{
	"#################",
	"#...#...#...#..E#",
	"#.#.#.#.#.#.#.#.#",
	"#.#.#.#...#...#.#",
	"#.#.#.#.###.#.#.#",
	"#...#.#.#.....#.#",
	"#.#.#.#.#.#####.#",
	"#.#...#.#.#.....#",
	"#.#.#####.#.###.#",
	"#.#.#.......#...#",
	"#.#.###.#####.###",
	"#.#.#...#.....#.#",
	"#.#.#.#####.###.#",
	"#.#.#.........#.#",
	"#.#.#.#########.#",
	"#S#.............#",
	"#################",
}

// bendMaze builds a 15×15 walled map whose only corridor runs east along
// the bottom row from S and then north along the right column to E.
func bendMaze() []string {
	rows := make([][]byte, 15)
	for y := range rows {
		rows[y] = []byte(strings.Repeat("#", 15))
	}
	for x := 1; x <= 13; x++ {
		rows[13][x] = '.'
	}
	for y := 1; y <= 13; y++ {
		rows[y][13] = '.'
	}
	rows[13][1] = 'S'
	rows[1][13] = 'E'
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = string(r)
	}
	return out
}

func TestParseMaze_Errors(t *testing.T) {
	_, err := pathsearch.ParseMaze([]string{"#.E#"})
	assert.ErrorIs(t, err, pathsearch.ErrMissingStart)

	_, err = pathsearch.ParseMaze([]string{"#S.#"})
	assert.ErrorIs(t, err, pathsearch.ErrMissingEnd)

	_, err = pathsearch.ParseMaze([]string{"#S?E"})
	assert.ErrorIs(t, err, pathsearch.ErrBadTile)

	_, err = pathsearch.ParseMaze([]string{"#SE", "#"})
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
}

func TestMaze_Examples(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		score int64
		cells int
	}{
		{"Small", mazeSmall, 7036, 45},
		{"Large", mazeLarge, 11048, 64},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := pathsearch.ParseMaze(tc.lines)
			require.NoError(t, err)
			score, cells, found, err := m.Best()
			require.NoError(t, err)
			require.True(t, found)
			assert.Equal(t, tc.score, score)
			assert.Equal(t, tc.cells, cells)
		})
	}
}

// TestMaze_SingleBend checks cost = straight steps + 1000×turns and that the
// optimal cell set is exactly the unique route.
func TestMaze_SingleBend(t *testing.T) {
	m, err := pathsearch.ParseMaze(bendMaze())
	require.NoError(t, err)

	res, err := m.Search()
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 24*pathsearch.StepCost+1*pathsearch.TurnCost, res.Cost)

	cells := pathsearch.OptimalCells(res, func(p pathsearch.Pose) grid.Point { return p.Pos })
	route := make(map[grid.Point]bool)
	m.Grid.Each(func(p grid.Point, tile pathsearch.Tile) {
		if tile == pathsearch.Open {
			route[p] = true
		}
	})
	assert.Equal(t, len(route), cells.Size())
	cells.Each(func(p grid.Point) {
		assert.True(t, route[p], "cell %v off the route", p)
	})

	// Removing any cell of a unique route cuts the maze.
	for p := range route {
		if p == m.Start {
			continue
		}
		cut, err := pathsearch.ParseMaze(bendMaze())
		require.NoError(t, err)
		cut.Grid.Set(p, pathsearch.Wall)
		_, _, found, err := cut.Best()
		require.NoError(t, err)
		assert.False(t, found, "maze still solvable without %v", p)
	}
}

// TestMaze_ReverseAtStart needs two quarter turns before the first step.
func TestMaze_ReverseAtStart(t *testing.T) {
	m, err := pathsearch.ParseMaze([]string{
		"#####",
		"#E.S#",
		"#####",
	})
	require.NoError(t, err)
	score, cells, found, err := m.Best()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int64(2002), score)
	assert.Equal(t, 3, cells)
}

// TestMaze_PrefersFewerTurns has two routes of equal length; only the one
// with a single turn is optimal.
func TestMaze_PrefersFewerTurns(t *testing.T) {
	m, err := pathsearch.ParseMaze([]string{
		"#####",
		"#..E#",
		"#.#.#",
		"#S..#",
		"#####",
	})
	require.NoError(t, err)
	score, cells, found, err := m.Best()
	require.NoError(t, err)
	require.True(t, found)
	// east, turn, north / turn, north, turn, east: 4 steps + 1000 vs 4 steps + 2000
	assert.Equal(t, int64(1004), score)
	assert.Equal(t, 5, cells)
}

func TestMaze_Unreachable(t *testing.T) {
	m, err := pathsearch.ParseMaze([]string{
		"#######",
		"#S.#.E#",
		"#######",
	})
	require.NoError(t, err)
	_, _, found, err := m.Best()
	require.NoError(t, err)
	assert.False(t, found)
}

func BenchmarkMaze_Large(b *testing.B) {
	m, err := pathsearch.ParseMaze(mazeLarge)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _, _ = m.Best()
	}
}
