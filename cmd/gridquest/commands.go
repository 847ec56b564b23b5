package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/gridquest/claw"
	"github.com/katalvlaran/gridquest/grid"
	"github.com/katalvlaran/gridquest/input"
	"github.com/katalvlaran/gridquest/pathsearch"
	"github.com/katalvlaran/gridquest/patrol"
	"github.com/katalvlaran/gridquest/push"
	"github.com/katalvlaran/gridquest/trail"
)

// part computes one answer.
type part func() (any, error)

// puzzle parses the input lines and returns both parts, ready to run.
type puzzle func(cmd *cli.Command, lines []string) ([2]part, error)

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "gridquest",
		Usage: "solve grid puzzles",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "puzzle input file (default: stdin)",
				Sources: cli.EnvVars("GRIDQUEST_INPUT"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "log parse and timing details",
				Sources: cli.EnvVars("GRIDQUEST_DEBUG"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("debug") {
				log.SetLevel(logrus.DebugLevel)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:   "patrol",
				Usage:  "guard route length and loop-causing obstacles",
				Flags:  []cli.Flag{&cli.IntFlag{Name: "max-steps", Usage: "abort a walk after this many actions (0 = no cap)"}},
				Action: action(solvePatrol),
			},
			{
				Name:   "trails",
				Usage:  "trailhead scores and ratings",
				Action: action(solveTrails),
			},
			{
				Name:   "garden",
				Usage:  "fence prices by perimeter and by sides",
				Action: action(solveGarden),
			},
			{
				Name:  "claw",
				Usage: "fewest tokens to win every winnable prize",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "offset", Value: 10000000000000, Usage: "prize offset for part 2"},
					&cli.IntFlag{Name: "limit", Value: 100, Usage: "press limit per button for part 1"},
				},
				Action: action(solveClaw),
			},
			{
				Name:   "warehouse",
				Usage:  "box GPS sums after the robot moves, narrow and wide",
				Action: action(solveWarehouse),
			},
			{
				Name:   "maze",
				Usage:  "lowest turn-penalized score and cells on best routes",
				Action: action(solveMaze),
			},
			{
				Name:  "memory",
				Usage: "exit steps after falling bytes and the first blocking byte",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "size", Value: 70, Usage: "largest coordinate of the square space"},
					&cli.IntFlag{Name: "bytes", Value: 1024, Usage: "bytes fallen for part 1"},
				},
				Action: action(solveMemory),
			},
			{
				Name:  "race",
				Usage: "cheats on a single-lane race track",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "min-save", Value: 100, Usage: "minimum picoseconds a cheat must save"},
				},
				Action: action(solveRace),
			},
		},
	}
}

// action wraps p with input loading, timing and output.
func action(p puzzle) cli.ActionFunc {
	return func(_ context.Context, cmd *cli.Command) error {
		lines, err := readInput(cmd)
		if err != nil {
			return err
		}
		entry := log.WithField("puzzle", cmd.Name)
		entry.WithField("lines", len(lines)).Debug("input loaded")

		parts, err := p(cmd, lines)
		if err != nil {
			return fmt.Errorf("%s: %w", cmd.Name, err)
		}
		out := cmd.Root().Writer
		for i, run := range parts {
			start := time.Now()
			v, err := run()
			if err != nil {
				return fmt.Errorf("%s part %d: %w", cmd.Name, i+1, err)
			}
			entry.WithFields(logrus.Fields{"part": i + 1, "elapsed": time.Since(start)}).Debug("solved")
			fmt.Fprintf(out, "Part %d: %v\n", i+1, v)
		}
		return nil
	}
}

func readInput(cmd *cli.Command) ([]string, error) {
	var r io.Reader = cmd.Root().Reader
	if path := cmd.String("input"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	if r == nil {
		r = os.Stdin
	}
	return input.Lines(r)
}

func solvePatrol(cmd *cli.Command, lines []string) ([2]part, error) {
	lab, err := patrol.ParseLab(lines)
	if err != nil {
		return [2]part{}, err
	}
	opt := patrol.WithMaxSteps(int(cmd.Int("max-steps")))
	return [2]part{
		func() (any, error) {
			out, err := patrol.Walk(lab, nil, opt)
			return len(out.Route), err
		},
		func() (any, error) { return lab.LoopObstructions(opt) },
	}, nil
}

func solveTrails(_ *cli.Command, lines []string) ([2]part, error) {
	g, err := trail.ParseMap(lines)
	if err != nil {
		return [2]part{}, err
	}
	return [2]part{
		func() (any, error) { return trail.Score(g), nil },
		func() (any, error) { return trail.Rating(g), nil },
	}, nil
}

func solveGarden(_ *cli.Command, lines []string) ([2]part, error) {
	g, err := grid.Runes(lines)
	if err != nil {
		return [2]part{}, err
	}
	regions := g.Regions()
	log.WithField("regions", len(regions)).Debug("garden mapped")
	return [2]part{
		func() (any, error) { return grid.FencePrice(regions), nil },
		func() (any, error) { return grid.BulkPrice(regions), nil },
	}, nil
}

func solveClaw(cmd *cli.Command, lines []string) ([2]part, error) {
	machines, err := claw.ParseMachines(input.SplitBlocks(lines))
	if err != nil {
		return [2]part{}, err
	}
	offset, limit := int64(cmd.Int("offset")), int64(cmd.Int("limit"))
	return [2]part{
		func() (any, error) { return claw.Tokens(machines, 0, limit), nil },
		func() (any, error) { return claw.Tokens(machines, offset, 0), nil },
	}, nil
}

func solveWarehouse(_ *cli.Command, lines []string) ([2]part, error) {
	narrow, err := push.ParseWarehouse(lines)
	if err != nil {
		return [2]part{}, err
	}
	wide := narrow.Widen()
	run := func(w *push.Warehouse) part {
		return func() (any, error) {
			moved := w.Run()
			log.WithFields(logrus.Fields{"moves": len(w.Moves), "moved": moved}).Debug("robot done")
			if log.IsLevelEnabled(logrus.DebugLevel) {
				log.Debug("final map\n" + w.String())
			}
			return w.GPS(), nil
		}
	}
	return [2]part{run(narrow), run(wide)}, nil
}

func solveMaze(_ *cli.Command, lines []string) ([2]part, error) {
	m, err := pathsearch.ParseMaze(lines)
	if err != nil {
		return [2]part{}, err
	}
	var cells int
	return [2]part{
		func() (any, error) {
			score, n, found, err := m.Best()
			if err != nil {
				return nil, err
			}
			if !found {
				return nil, fmt.Errorf("no route from %v to %v", m.Start, m.End)
			}
			cells = n
			return score, nil
		},
		func() (any, error) { return cells, nil },
	}, nil
}

func solveMemory(cmd *cli.Command, lines []string) ([2]part, error) {
	bytes, err := pathsearch.ParseBytes(lines)
	if err != nil {
		return [2]part{}, err
	}
	space := pathsearch.NewMemorySpace(int(cmd.Int("size")), bytes)
	fallen := int(cmd.Int("bytes"))
	return [2]part{
		func() (any, error) {
			steps, ok := space.ExitSteps(fallen)
			if !ok {
				return nil, fmt.Errorf("exit unreachable after %d bytes", fallen)
			}
			return steps, nil
		},
		func() (any, error) {
			b, idx, ok := space.FirstBlocking()
			if !ok {
				return nil, fmt.Errorf("exit stays reachable after all %d bytes", len(bytes))
			}
			log.WithField("index", idx).Debug("blocking byte")
			return fmt.Sprintf("%d,%d", b.X, b.Y), nil
		},
	}, nil
}

func solveRace(cmd *cli.Command, lines []string) ([2]part, error) {
	rt, err := pathsearch.ParseRaceTrack(lines)
	if err != nil {
		return [2]part{}, err
	}
	minSave := int(cmd.Int("min-save"))
	return [2]part{
		func() (any, error) { return rt.Cheats(2, minSave) },
		func() (any, error) { return rt.Cheats(20, minSave) },
	}, nil
}
