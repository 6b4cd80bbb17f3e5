package banker

import "github.com/veletrack/raillock/core"

// IsSafe runs the Banker's safety algorithm over s and reports whether the
// state is safe, together with the completion order it discovered.
//
// The algorithm simulates trains running to completion: a working copy of
// Available grows as each finished train folds its Allocation back in, and
// a train is runnable once its entire Need row fits inside the working
// vector. After every grant the scan restarts from train 0, so the lowest
// runnable index always finishes next and the result is deterministic.
//
// IsSafe never mutates s. The returned sequence is a valid completion
// order only when the boolean is true; on an unsafe state it is the
// partial prefix found before the scan stalled and must be discarded.
// Complexity: O(n²·m) time, O(n+m) memory.
func IsSafe(s *core.State) (bool, []int) {
	n, m := s.Trains(), s.Tracks()

	// Working free-unit vector and per-train finish flags.
	work := append([]int(nil), s.Available...)
	finish := make([]bool, n)
	sequence := make([]int, 0, n)

	for len(sequence) < n {
		// Scan unfinished trains in index order; stop at the first whose
		// Need fits in work. Restarting from 0 on every pass keeps the
		// tie-break at the lowest runnable index.
		found := false
		for i := 0; i < n; i++ {
			if finish[i] || !fits(s.Need[i], work) {
				continue
			}

			// Simulate completion: everything train i holds becomes free.
			for j := 0; j < m; j++ {
				work[j] += s.Allocation[i][j]
			}
			finish[i] = true
			sequence = append(sequence, i)
			found = true

			break
		}

		// A full pass found no runnable train: the remaining trains can
		// never all finish from here.
		if !found {
			break
		}
	}

	return len(sequence) == n, sequence
}

// fits reports whether every entry of need is ≤ the matching entry of work.
func fits(need, work []int) bool {
	for j := range need {
		if need[j] > work[j] {
			return false
		}
	}

	return true
}
