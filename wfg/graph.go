package wfg

import "github.com/veletrack/raillock/core"

// Graph is a directed wait-for graph over train indices, stored as a dense
// boolean adjacency matrix. It is derived data: rebuilt from a State on
// every query and never persisted.
type Graph struct {
	adj [][]bool
}

// Trains returns the number of trains (nodes) in the graph.
func (g *Graph) Trains() int {
	return len(g.adj)
}

// HasEdge reports whether train i waits for train j. Out-of-range indices
// report false.
func (g *Graph) HasEdge(i, j int) bool {
	if i < 0 || i >= len(g.adj) || j < 0 || j >= len(g.adj) {
		return false
	}

	return g.adj[i][j]
}

// WaitsFor returns the trains that i waits for, in ascending index order.
// The slice is freshly allocated and safe for the caller to keep.
func (g *Graph) WaitsFor(i int) []int {
	if i < 0 || i >= len(g.adj) {
		return nil
	}

	var out []int
	for j, waiting := range g.adj[i] {
		if waiting {
			out = append(out, j)
		}
	}

	return out
}

// Edges enumerates every wait-for edge as an ordered [from, to] pair, in
// row-major order. Intended for serializers and renderers.
func (g *Graph) Edges() [][2]int {
	var out [][2]int
	for i := range g.adj {
		for j, waiting := range g.adj[i] {
			if waiting {
				out = append(out, [2]int{i, j})
			}
		}
	}

	return out
}

// Build derives the wait-for graph from s.
//
// For each train i with outstanding Need: every needed track r with
// Available[r] == 0 contributes an edge i→j to every other train j holding
// units of r. A needed track with free units remaining is immediately
// satisfiable from supply and therefore not a wait. The adjacency is a
// set, so repeated justifications collapse into one edge.
// Complexity: O(n·m·n) worst case, O(n²) memory.
func Build(s *core.State) *Graph {
	if s == nil {
		return &Graph{}
	}

	n, m := s.Trains(), s.Tracks()
	g := &Graph{adj: make([][]bool, n)}
	for i := range g.adj {
		g.adj[i] = make([]bool, n)
	}

	for i := 0; i < n; i++ {
		for r := 0; r < m; r++ {
			if s.Need[i][r] <= 0 {
				continue
			}
			// Free units remain: train i merely wants more, it is not blocked.
			if s.Available[r] > 0 {
				continue
			}
			for j := 0; j < n; j++ {
				if j != i && s.Allocation[j][r] > 0 {
					g.adj[i][j] = true
				}
			}
		}
	}

	return g
}
