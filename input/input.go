// Package input turns raw puzzle text into lines, blank-line separated
// blocks and integers. It never opens files itself; callers hand it an
// io.Reader.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// ErrMalformed indicates input that cannot be parsed into the expected shape.
var ErrMalformed = errors.New("input: malformed input")

var intRx = regexp.MustCompile(`-?\d+`)

// Lines reads r and returns its lines without line terminators. Trailing
// empty lines are dropped; interior empty lines are kept.
func Lines(r io.Reader) ([]string, error) {
	var lines []string
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for s.Scan() {
		lines = append(lines, strings.TrimRight(s.Text(), "\r"))
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("input: read: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

// SplitBlocks groups lines into blocks separated by one or more blank lines.
func SplitBlocks(lines []string) [][]string {
	var (
		blocks [][]string
		cur    []string
	)
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}
	return blocks
}

// Blocks reads r and splits it on blank lines.
func Blocks(r io.Reader) ([][]string, error) {
	lines, err := Lines(r)
	if err != nil {
		return nil, err
	}
	return SplitBlocks(lines), nil
}

// Ints extracts every signed integer in s, in order.
func Ints(s string) ([]int, error) {
	matches := intRx.FindAllString(s, -1)
	out := make([]int, 0, len(matches))
	for _, m := range matches {
		v, err := strconv.Atoi(m)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMalformed, m, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// IntsN extracts integers from s and requires exactly n of them.
func IntsN(s string, n int) ([]int, error) {
	vals, err := Ints(s)
	if err != nil {
		return nil, err
	}
	if len(vals) != n {
		return nil, fmt.Errorf("%w: %q has %d numbers, want %d", ErrMalformed, s, len(vals), n)
	}
	return vals, nil
}

// IntPair parses "a<sep>b" into two integers.
func IntPair(line, sep string) (int, int, error) {
	left, right, ok := strings.Cut(strings.TrimSpace(line), sep)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q is not a %q separated pair", ErrMalformed, line, sep)
	}
	a, err := strconv.Atoi(strings.TrimSpace(left))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %v", ErrMalformed, line, err)
	}
	b, err := strconv.Atoi(strings.TrimSpace(right))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %v", ErrMalformed, line, err)
	}
	return a, b, nil
}
