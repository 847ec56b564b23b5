package trail_test

import (
	"fmt"

	"github.com/katalvlaran/gridquest/trail"
)

func ExampleScore() {
	g, _ := trail.ParseMap([]string{
		"...0...",
		"...1...",
		"...2...",
		"6543456",
		"7.....7",
		"8.....8",
		"9.....9",
	})
	fmt.Println(trail.Score(g), trail.Rating(g))
	// Output: 2 2
}
