// Package claw solves claw machines: two buttons move the claw by fixed
// vectors and the prize is won when some non-negative combination of presses
// lands exactly on it.
//
// Each machine is a 2x2 linear system solved with Cramer's rule. A singular
// system, a fractional solution or a negative press count all mean the prize
// cannot be won; none of them is an error.
package claw

import (
	"fmt"

	"github.com/katalvlaran/gridquest/input"
)

const (
	// CostA is the token price of one press of button A.
	CostA = 3
	// CostB is the token price of one press of button B.
	CostB = 1
)

// Vec is an integer displacement or position.
type Vec struct{ X, Y int64 }

// Machine is one claw machine.
type Machine struct {
	A, B  Vec // button displacements
	Prize Vec
}

// ParseMachines reads one machine per block: button A, button B and prize
// lines, each carrying exactly two integers.
func ParseMachines(blocks [][]string) ([]Machine, error) {
	machines := make([]Machine, 0, len(blocks))
	for i, b := range blocks {
		if len(b) != 3 {
			return nil, fmt.Errorf("%w: machine %d has %d lines, want 3", input.ErrMalformed, i, len(b))
		}
		var vs [3]Vec
		for j, line := range b {
			n, err := input.IntsN(line, 2)
			if err != nil {
				return nil, fmt.Errorf("machine %d: %w", i, err)
			}
			vs[j] = Vec{int64(n[0]), int64(n[1])}
		}
		machines = append(machines, Machine{A: vs[0], B: vs[1], Prize: vs[2]})
	}
	return machines, nil
}

// Solve returns the press counts that reach the prize exactly.
func (m Machine) Solve() (a, b int64, ok bool) {
	det := m.A.X*m.B.Y - m.A.Y*m.B.X
	if det == 0 {
		return 0, 0, false
	}
	na := m.Prize.X*m.B.Y - m.Prize.Y*m.B.X
	nb := m.A.X*m.Prize.Y - m.A.Y*m.Prize.X
	if na%det != 0 || nb%det != 0 {
		return 0, 0, false
	}
	a, b = na/det, nb/det
	if a < 0 || b < 0 {
		return 0, 0, false
	}
	return a, b, true
}

// Cost is the token price of a presses of A and b presses of B.
func (m Machine) Cost(a, b int64) int64 {
	return CostA*a + CostB*b
}

// Shift returns m with offset added to both prize coordinates.
func (m Machine) Shift(offset int64) Machine {
	m.Prize.X += offset
	m.Prize.Y += offset
	return m
}

// Tokens sums the cost of every winnable prize after shifting each prize by
// offset. A positive limit rejects solutions pressing either button more than
// limit times; 0 means no limit.
func Tokens(machines []Machine, offset, limit int64) int64 {
	var total int64
	for _, m := range machines {
		a, b, ok := m.Shift(offset).Solve()
		if !ok || (limit > 0 && (a > limit || b > limit)) {
			continue
		}
		total += m.Cost(a, b)
	}
	return total
}
