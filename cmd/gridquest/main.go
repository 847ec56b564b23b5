// Command gridquest solves grid puzzles read from a file or stdin.
//
// Usage:
//
//	gridquest [--input FILE] [--debug] <puzzle> [puzzle flags]
//
// Puzzles: patrol, trails, garden, claw, warehouse, maze, memory, race.
// Every puzzle prints two lines, "Part 1: ..." and "Part 2: ...".
// GRIDQUEST_INPUT and GRIDQUEST_DEBUG may be set in the environment or in a
// .env file in the working directory.
package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.WithError(err).Warn("loading .env")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		log.WithError(err).Fatal("gridquest")
	}
}
