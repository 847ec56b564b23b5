// Package gridquest is a toolkit for 2D grid puzzles: labelled grids,
// lowest-cost search with turn penalties, chain pushing of boxes and
// trail counting on height maps.
//
// What's inside?
//
//	grid/       – Grid[L] over Point keys, directions, regions (area, perimeter, sides)
//	pathsearch/ – priority-first Search over any comparable state, BFS/Steps,
//	              turn-penalized Maze, MemorySpace, RaceTrack cheats
//	push/       – two-phase CanPush/Push for single and double-width boxes, Warehouse
//	trail/      – ascending trail counting (distinct summits or distinct trails)
//	patrol/     – guard walk with loop detection
//	claw/       – claw machines as 2x2 integer systems
//	input/      – line/block readers and integer extraction
//	cmd/gridquest – CLI running every puzzle on a file or stdin
//
// Library packages are single-threaded, never log and never do I/O beyond
// the io.Reader handed to package input. Unreachable goals, blocked pushes
// and unwinnable machines are ordinary return values; errors are reserved
// for malformed input and violated options.
//
// Quick start:
//
//	m, _ := pathsearch.ParseMaze(lines)
//	score, cells, found, err := m.Best()
package gridquest
