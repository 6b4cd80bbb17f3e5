package scenario

import "github.com/veletrack/raillock/core"

// Sample returns the fixed 5-train/5-track demonstration state: trains A–E
// competing for single-unit track sections T0–T4, with a light initial
// allocation. Its wait-for graph is cycle-free, which makes it a good
// starting point for exploring requests and recovery interactively.
func Sample() *core.State {
	s, err := core.New(5, 5,
		core.WithTrainNames("A", "B", "C", "D", "E"),
		core.WithTrackNames("T0", "T1", "T2", "T3", "T4"),
	)
	if err != nil {
		// 5×5 is inside the hard limits; this cannot happen.
		panic(err)
	}

	s.Available = []int{1, 1, 0, 1, 0}
	s.Maximum = [][]int{
		{1, 1, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 1},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	}
	s.Allocation = [][]int{
		{0, 0, 0, 0, 0},
		{0, 1, 0, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0},
		{1, 0, 0, 0, 0},
	}
	s.RecomputeNeed()

	return s
}
