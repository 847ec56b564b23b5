package claw_test

import (
	"fmt"

	"github.com/katalvlaran/gridquest/claw"
)

func ExampleMachine_Solve() {
	m := claw.Machine{
		A:     claw.Vec{X: 94, Y: 34},
		B:     claw.Vec{X: 22, Y: 67},
		Prize: claw.Vec{X: 8400, Y: 5400},
	}
	a, b, ok := m.Solve()
	fmt.Println(a, b, ok, m.Cost(a, b))
	// Output: 80 40 true 280
}
