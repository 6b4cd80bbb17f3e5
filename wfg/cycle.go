package wfg

// Visitation states for the cycle search.
const (
	white = iota // not yet visited
	gray         // on the current traversal path
	black        // fully explored
)

// frame is one level of the explicit DFS stack: the train being explored
// and the next neighbor index to try.
type frame struct {
	train int
	next  int
}

// DetectCycle searches g for a directed cycle using an explicit-stack
// depth-first traversal with three-color marking, starting from each
// unvisited train in ascending index order.
//
// On success it returns the reconstructed cycle in head-to-tail order:
// cycle[k] waits for cycle[k+1], and the final train waits for cycle[0].
// When no cycle exists (or g is nil) it returns (false, nil). The visited
// and path markers are local to one call, so DetectCycle is safe to call
// repeatedly against rebuilt graphs.
// Complexity: O(n²) time over the dense adjacency, O(n) memory.
func DetectCycle(g *Graph) (bool, []int) {
	if g == nil {
		return false, nil
	}

	n := g.Trains()
	color := make([]int, n)
	// stack holds the active frames; path mirrors it with the train
	// indices currently being explored, for cycle reconstruction.
	stack := make([]frame, 0, n)
	path := make([]int, 0, n)

	for root := 0; root < n; root++ {
		if color[root] != white {
			continue
		}

		color[root] = gray
		stack = append(stack, frame{train: root})
		path = append(path, root)

		for len(stack) > 0 {
			top := &stack[len(stack)-1]

			// All neighbors tried: backtrack and blacken.
			if top.next >= n {
				color[top.train] = black
				stack = stack[:len(stack)-1]
				path = path[:len(path)-1]

				continue
			}

			v := top.next
			top.next++
			if !g.adj[top.train][v] {
				continue
			}

			switch color[v] {
			case white:
				// Descend into an unvisited neighbor.
				color[v] = gray
				stack = append(stack, frame{train: v})
				path = append(path, v)
			case gray:
				// Back edge onto the active path: reconstruct the cycle
				// from the back-edge target through the current train.
				return true, extractCycle(path, v)
			}
		}
	}

	return false, nil
}

// extractCycle copies the path suffix that starts at target. Consecutive
// entries are wait-for edges, and the trailing train waits for target.
func extractCycle(path []int, target int) []int {
	for idx, train := range path {
		if train == target {
			return append([]int(nil), path[idx:]...)
		}
	}

	// Unreachable: a gray train is always on the path.
	return nil
}
