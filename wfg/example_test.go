package wfg_test

import (
	"fmt"

	"github.com/veletrack/raillock/core"
	"github.com/veletrack/raillock/wfg"
)

// ExampleDetectCycle builds the textbook circular wait — each train holds
// one track section and needs its neighbor's — and reports the cycle in
// head-to-tail order: each listed train waits for the next.
func ExampleDetectCycle() {
	s, _ := core.New(3, 3)
	for i := 0; i < 3; i++ {
		s.Allocation[i][i] = 1
		s.Maximum[i][i] = 1
		s.Maximum[i][(i+1)%3] = 1
	}
	s.RecomputeNeed()

	g := wfg.Build(s)
	found, cycle := wfg.DetectCycle(g)
	fmt.Println("deadlock:", found)
	fmt.Println("cycle:", cycle)

	// Output:
	// deadlock: true
	// cycle: [0 1 2]
}
