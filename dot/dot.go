// Package dot serializes a raillock state and its wait-for graph to
// Graphviz DOT, rendering a resource-allocation-graph diagram.
//
// Three edge kinds are visually distinguished:
//
//   - allocation edges, track → train, solid, labeled with held units;
//   - request edges, train → track, dashed, labeled with outstanding need;
//   - wait-for edges, train → train, red.
//
// Track nodes are boxes annotated with their free unit count; train nodes
// are circles. The writer is consumed read-only: Export never mutates the
// state or the graph.
package dot

import (
	"fmt"
	"io"
	"strings"

	"github.com/veletrack/raillock/core"
	"github.com/veletrack/raillock/wfg"
)

// Export writes the DOT document for (s, g) to w. The graph g should be
// freshly built from s; a nil g omits the wait-for edges. Returns the
// first write error encountered.
func Export(w io.Writer, s *core.State, g *wfg.Graph) error {
	ew := &errWriter{w: w}

	ew.printf("digraph raillock {\n")
	ew.printf("\trankdir=LR;\n")

	// Nodes: trains as circles, tracks as boxes with their free supply.
	for i := 0; i < s.Trains(); i++ {
		ew.printf("\tT%d [shape=circle,label=\"%s\"];\n", i, escape(s.TrainNames[i]))
	}
	for j := 0; j < s.Tracks(); j++ {
		ew.printf("\tR%d [shape=box,label=\"%s\\n(av:%d)\"];\n", j, escape(s.TrackNames[j]), s.Available[j])
	}

	// Resource-allocation edges: solid for holdings, dashed for requests.
	for i := 0; i < s.Trains(); i++ {
		for j := 0; j < s.Tracks(); j++ {
			if s.Allocation[i][j] > 0 {
				ew.printf("\tR%d -> T%d [label=\"%d\"];\n", j, i, s.Allocation[i][j])
			}
			if s.Need[i][j] > 0 {
				ew.printf("\tT%d -> R%d [label=\"need:%d\",style=dashed];\n", i, j, s.Need[i][j])
			}
		}
	}

	// Wait-for edges in red, straight from the derived graph.
	if g != nil {
		for _, edge := range g.Edges() {
			ew.printf("\tT%d -> T%d [color=red];\n", edge[0], edge[1])
		}
	}

	ew.printf("}\n")

	return ew.err
}

// escape neutralizes characters that would break a DOT double-quoted label.
func escape(name string) string {
	name = strings.ReplaceAll(name, `\`, `\\`)

	return strings.ReplaceAll(name, `"`, `\"`)
}

// errWriter stops formatting after the first write failure, so Export can
// check a single error at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
