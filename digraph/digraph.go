package digraph

import "github.com/vdhulst/netmat/core"

// Node is one node of the exported digraph, identified by the same
// NodeID the originating Store used.
type Node struct {
	ID core.NodeID
}

// Arc is one arc of the exported digraph, carrying the row or column id
// that originated it so callers can map back onto the source matrix.
type Arc struct {
	Tail, Head core.NodeID
	Sign       int8
	Kind       core.ElemKind
	Index      int
}

// Digraph is a read-only snapshot of the directed multigraph realizing a
// decomposition at the moment Build was called.
type Digraph struct {
	Nodes []Node
	Arcs  []Arc
}

// Build converts a Store's current state into an exported Digraph. It
// allocates a fresh value and never aliases the Store's internals.
func Build(s *core.Store) *Digraph {
	if s == nil {
		return &Digraph{}
	}

	n := s.NodeCount()
	nodes := make([]Node, n)
	for i := 0; i < n; i++ {
		nodes[i] = Node{ID: core.NodeID(i)}
	}

	srcArcs := s.Arcs()
	arcs := make([]Arc, 0, len(srcArcs))
	for _, a := range srcArcs {
		if a.Kind == core.ElemMarker {
			// Marker arcs are internal splice bookkeeping, not a realized
			// row or column; the exported digraph only shows real elements.
			continue
		}
		arcs = append(arcs, Arc{Tail: a.Tail, Head: a.Head, Sign: a.Sign, Kind: a.Kind, Index: a.Index})
	}

	return &Digraph{Nodes: nodes, Arcs: arcs}
}
