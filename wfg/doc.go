// Package wfg derives a wait-for graph from a raillock core.State and
// detects deadlock cycles in it.
//
// What:
//
//   - Graph: an ephemeral n×n boolean adjacency over train indices.
//     Edge i→j means train i is blocked waiting on a track section that
//     is fully exhausted and partly held by train j.
//   - Build: derives the Graph from a State. A train with no outstanding
//     Need contributes no edges, and a needed track with free units left
//     is a want, not a wait — only exhausted tracks produce edges. Edges
//     have set semantics: one edge per ordered pair no matter how many
//     tracks justify it, and never a self-edge.
//   - DetectCycle: iterative depth-first search with three-color marking,
//     visiting unvisited trains in index order and reconstructing the
//     cycle from the traversal path when a back edge is found.
//
// Cycle order: the returned slice reads head-to-tail — cycle[k] waits for
// cycle[k+1], and the last train waits for the first. No rotation is
// promised beyond that adjacency.
//
// Why:
//
//   - A cycle in the wait-for graph is the classic deadlock-detection
//     signal. For multi-unit tracks it is conservative: a cycle means
//     potential deadlock, while its absence does not prove safety — run
//     banker.IsSafe for the stronger verdict over the same state.
//
// Complexity:
//
//   - Build:       O(n·m + n²·m) worst case, O(n²) memory
//   - DetectCycle: O(n²) time (dense adjacency), O(n) memory
package wfg
