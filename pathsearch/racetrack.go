package pathsearch

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridquest/grid"
)

// ErrBranchingTrack indicates the track forks or dead-ends before the end.
var ErrBranchingTrack = errors.New("pathsearch: track is not a single lane")

// RaceTrack is a maze whose open cells form one lane from Start to End.
type RaceTrack struct {
	Maze *Maze
}

// ParseRaceTrack reads a track with the same alphabet as ParseMaze.
func ParseRaceTrack(lines []string) (*RaceTrack, error) {
	m, err := ParseMaze(lines)
	if err != nil {
		return nil, err
	}
	return &RaceTrack{Maze: m}, nil
}

// Track returns the lane cells from Start to End in order; the index of a
// cell is its picosecond distance from Start.
func (t *RaceTrack) Track() ([]grid.Point, error) {
	m := t.Maze
	lane := []grid.Point{m.Start}
	prev, cur := m.Start, m.Start
	for cur != m.End {
		var next []grid.Point
		for _, d := range grid.Directions {
			q := cur.Step(d)
			if q != prev && m.Open(q) {
				next = append(next, q)
			}
		}
		if len(next) != 1 {
			return nil, fmt.Errorf("%w: %d ways forward at %v", ErrBranchingTrack, len(next), cur)
		}
		prev, cur = cur, next[0]
		lane = append(lane, cur)
	}
	return lane, nil
}

// Cheats counts the cheats that save at least minSave picoseconds when
// collision is disabled for at most maxJump moves. A cheat from lane index
// i to j>i covers Manhattan distance d ≤ maxJump in d moves and saves
// (j - i) - d.
//
// Complexity: O(L²) over lane length L.
func (t *RaceTrack) Cheats(maxJump, minSave int) (int, error) {
	lane, err := t.Track()
	if err != nil {
		return 0, err
	}
	count := 0
	for i := range lane {
		// a save of minSave needs j - i ≥ minSave + d ≥ minSave + 1
		for j := i + max(minSave, 1); j < len(lane); j++ {
			d := lane[i].Manhattan(lane[j])
			if d <= maxJump && (j-i)-d >= minSave {
				count++
			}
		}
	}
	return count, nil
}

// Savings returns how many cheats achieve each positive saving.
func (t *RaceTrack) Savings(maxJump int) (map[int]int, error) {
	lane, err := t.Track()
	if err != nil {
		return nil, err
	}
	out := make(map[int]int)
	for i := range lane {
		for j := i + 1; j < len(lane); j++ {
			d := lane[i].Manhattan(lane[j])
			if save := (j - i) - d; d <= maxJump && save > 0 {
				out[save]++
			}
		}
	}
	return out, nil
}
