package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Reader = strings.NewReader(stdin)
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(context.Background(), append([]string{"gridquest"}, args...))
	return out.String(), err
}

func lines(rows ...string) string { return strings.Join(rows, "\n") + "\n" }

func TestPuzzles(t *testing.T) {
	cases := []struct {
		name  string
		args  []string
		input string
		want  string
	}{
		{
			name: "trails",
			args: []string{"trails"},
			input: lines("89010123", "78121874", "87430965", "96549874",
				"45678903", "32019012", "01329801", "10456732"),
			want: "Part 1: 36\nPart 2: 81\n",
		},
		{
			name: "garden",
			args: []string{"garden"},
			input: lines("RRRRIICCFF", "RRRRIICCCF", "VVRRRCCFFF", "VVRCCCJFFF", "VVVVCJJCFE",
				"VVIVCCJJEE", "VVIIICJJEE", "MIIIIIJJEE", "MIIISIJEEE", "MMMISSJEEE"),
			want: "Part 1: 1930\nPart 2: 1206\n",
		},
		{
			name: "patrol",
			args: []string{"patrol"},
			input: lines("....#.....", ".........#", "..........", "..#.......", ".......#..",
				"..........", ".#..^.....", "........#.", "#.........", "......#..."),
			want: "Part 1: 41\nPart 2: 6\n",
		},
		{
			name: "claw",
			args: []string{"claw"},
			input: lines(
				"Button A: X+94, Y+34", "Button B: X+22, Y+67", "Prize: X=8400, Y=5400", "",
				"Button A: X+26, Y+66", "Button B: X+67, Y+21", "Prize: X=12748, Y=12176", "",
				"Button A: X+17, Y+86", "Button B: X+84, Y+37", "Prize: X=7870, Y=6450", "",
				"Button A: X+69, Y+23", "Button B: X+27, Y+71", "Prize: X=18641, Y=10279"),
			want: "Part 1: 480\nPart 2: 875318608908\n",
		},
		{
			name: "warehouse",
			args: []string{"warehouse"},
			input: lines("#######", "#...#.#", "#.....#", "#..OO@#", "#..O..#", "#.....#", "#######",
				"", "<vvv<<^^<<^^"),
			want: "Part 1: 908\nPart 2: 618\n",
		},
		{
			name: "maze",
			args: []string{"maze"},
			input: lines("###############", "#.......#....E#", "#.#.###.#.###.#", "#.....#.#...#.#",
				"#.###.#####.#.#", "#.#.#.......#.#", "#.#.#####.###.#", "#...........#.#",
				"###.#.#####.#.#", "#...#.....#.#.#", "#.#.#.###.#.#.#", "#.....#...#.#.#",
				"#.###.#.#.#.#.#", "#S..#.....#...#", "###############"),
			want: "Part 1: 7036\nPart 2: 45\n",
		},
		{
			name: "memory",
			args: []string{"memory", "--size", "6", "--bytes", "12"},
			input: lines("5,4", "4,2", "4,5", "3,0", "2,1", "6,3", "2,4", "1,5", "0,6", "3,3",
				"2,6", "5,1", "1,2", "5,5", "2,5", "6,5", "1,4", "0,4", "6,4", "1,1",
				"6,1", "1,0", "0,5", "1,6", "2,0"),
			want: "Part 1: 22\nPart 2: 6,1\n",
		},
		{
			name: "race",
			args: []string{"race", "--min-save", "64"},
			input: lines("###############", "#...#...#.....#", "#.#.#.#.#.###.#", "#S#...#.#.#...#",
				"#######.#.#.###", "#######.#.#...#", "#######.#.###.#", "###..E#...#...#",
				"###.#######.###", "#...###...#...#", "#.#####.#.###.#", "#.#...#.#.#...#",
				"#.#.#.#.#.#.###", "#...#...#...###", "###############"),
			want: "Part 1: 1\nPart 2: 86\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := runApp(t, tc.input, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestInputFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trails.txt")
	require.NoError(t, os.WriteFile(path, []byte(lines("0123456789")), 0o600))

	out, err := runApp(t, "", "--input", path, "trails")
	require.NoError(t, err)
	assert.Equal(t, "Part 1: 1\nPart 2: 1\n", out)

	_, err = runApp(t, "", "-i", filepath.Join(t.TempDir(), "missing.txt"), "trails")
	assert.Error(t, err)
}

func TestMalformedInput(t *testing.T) {
	_, err := runApp(t, lines("#.#", "#E#", "###"), "maze")
	assert.ErrorContains(t, err, "maze")

	_, err = runApp(t, lines("1,2", "x"), "memory")
	assert.Error(t, err)
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	prevOut, prevLevel := log.Out, log.GetLevel()
	log.SetOutput(&buf)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetLevel(prevLevel)
	})

	_, err := runApp(t, lines("0123456789"), "--debug", "trails")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.Contains(t, buf.String(), "puzzle=trails")
	assert.Contains(t, buf.String(), "part=2")
}
