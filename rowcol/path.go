package rowcol

import "github.com/vdhulst/netmat/core"

// leg is one referenced existing arc, oriented by the new entry's sign:
// traversing from→to must agree with the direction the new row or column
// "sees" that arc.
type leg struct {
	arcID    core.ArcID
	from, to core.NodeID
}

func orient(arc core.Arc, entrySign int8) leg {
	if entrySign == arc.Sign {
		return leg{arcID: arc.ID, from: arc.Tail, to: arc.Head}
	}

	return leg{arcID: arc.ID, from: arc.Head, to: arc.Tail}
}

// adjacency is a member's internal graph viewed as undirected, keyed by
// node, used only to search for a connecting path between two legs that
// do not directly share an endpoint.
type adjacency map[core.NodeID][]core.NodeID

// memberGraph collects every arc currently belonging to root's member into
// an undirected adjacency list plus per-node in/out degree, counted over
// the member's existing arcs only (the new row/column being evaluated is
// never included: it does not exist yet).
func memberGraph(s *core.Store, root core.NodeID) (adj adjacency, indeg, outdeg map[core.NodeID]int) {
	adj = make(adjacency)
	indeg = make(map[core.NodeID]int)
	outdeg = make(map[core.NodeID]int)
	for _, a := range s.Arcs() {
		member, err := s.ArcMember(a.ID)
		if err != nil || member != root {
			continue
		}
		adj[a.Tail] = append(adj[a.Tail], a.Head)
		adj[a.Head] = append(adj[a.Head], a.Tail)
		outdeg[a.Tail]++
		indeg[a.Head]++
	}

	return adj, indeg, outdeg
}

// reachable reports whether to is reachable from from in adj, treated as
// undirected.
func reachable(adj adjacency, from, to core.NodeID) bool {
	if from == to {
		return true
	}
	seen := map[core.NodeID]bool{from: true}
	queue := []core.NodeID{from}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, next := range adj[n] {
			if next == to {
				return true
			}
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}

	return false
}

// sourceBranch reports whether some node other than from and to is a
// fan-out point of the member's existing structure — in-degree zero,
// out-degree at least three, i.e. a node whose only committed role so
// far is to be the common origin of several still-independent arcs —
// and is a connecting waypoint between from and to. This is the bridging
// a rigid member's internal BFS/DFS provides (§4.2 step 3): two legs
// that do not share an endpoint can still chain into one trail if the
// member's own structure already threads a path through such a node.
//
// A node that already has any incoming arc is excluded: it has already
// committed to being a pass-through or terminus for some earlier row or
// column, and reusing it again here would silently replay that earlier
// arc's relationship instead of witnessing an independent one — exactly
// the case that must be rejected (see TestScenarioS6 in scenarios_test.go).
func sourceBranch(adj adjacency, indeg, outdeg map[core.NodeID]int, from, to core.NodeID) bool {
	for n, out := range outdeg {
		if n == from || n == to {
			continue
		}
		if out < 3 || indeg[n] != 0 {
			continue
		}
		if reachable(adj, from, n) && reachable(adj, n, to) {
			return true
		}
	}

	return false
}

// componentEnds walks a member's cited legs in citation order, chaining
// each leg's end into the next leg's start. Legs that already share a
// node continue the chain directly (the common case: a simple series
// run). Legs that do not must be bridged through the member's own
// existing structure via sourceBranch; failing that, the legs are not
// simultaneously realizable and the new row/column must be rejected.
func componentEnds(adj adjacency, indeg, outdeg map[core.NodeID]int, legs []leg) (source, sink core.NodeID, ok bool) {
	if len(legs) == 0 {
		return 0, 0, false
	}

	source, sink = legs[0].from, legs[0].to
	for _, l := range legs[1:] {
		if l.from != sink && !sourceBranch(adj, indeg, outdeg, sink, l.from) {
			return 0, 0, false
		}
		sink = l.to
	}

	return source, sink, true
}

// spliceEnds runs the reference-gathering and path-realizability checks
// shared by trySplice and VerifyCycle: it groups entries by the member
// they reference, resolves each member's (source, sink), and — when more
// than one member is referenced — chains them into a single trail end to
// end in reference order. It mutates the Store (CreateMember/AttachArc)
// exactly as committing the result would; callers that only want to
// inspect the answer must checkpoint and roll back around the call.
func spliceEnds(s *core.Store, refKind core.ElemKind, entries []Entry) (tail, head core.NodeID, ok bool, err error) {
	legsByComponent := make(map[core.NodeID][]leg)
	var componentOrder []core.NodeID
	for _, e := range entries {
		if e.Sign != 1 && e.Sign != -1 {
			return 0, 0, false, ErrBadSign
		}
		arc, found := s.LookupArc(refKind, e.Index)
		if !found {
			return 0, 0, false, ErrReferencedMissing
		}
		root, err := s.ArcMember(arc.ID)
		if err != nil {
			return 0, 0, false, err
		}
		if _, seen := legsByComponent[root]; !seen {
			componentOrder = append(componentOrder, root)
		}
		legsByComponent[root] = append(legsByComponent[root], orient(arc, e.Sign))
	}

	if len(componentOrder) == 0 {
		// A brand new element with no references yet: a fresh, free-standing
		// arc between two new nodes. Always realizable.
		n0, err := s.CreateMember()
		if err != nil {
			return 0, 0, false, err
		}
		n1, err := s.CreateMember()
		if err != nil {
			return 0, 0, false, err
		}

		return n0, n1, true, nil
	}

	ends := make([][2]core.NodeID, 0, len(componentOrder))
	for _, root := range componentOrder {
		adj, indeg, outdeg := memberGraph(s, root)
		source, sink, ok := componentEnds(adj, indeg, outdeg, legsByComponent[root])
		if !ok {
			return 0, 0, false, nil
		}
		ends = append(ends, [2]core.NodeID{source, sink})
	}
	// Splice the components into one chain in reference order: the sink of
	// each joins the source of the next. This ordering is a deliberate
	// simplification over choosing an order that could satisfy more inputs;
	// see DESIGN.md.
	//
	// The join is a marker arc, not a bare disjoint-set union: a later row
	// or column's sourceBranch search walks the member's literal arcs, and
	// a union with no arc behind it would make this junction disjoint-set
	// connected but graph-disconnected, invisible to that search even
	// though it is a real part of the member's structure.
	for i := 1; i < len(ends); i++ {
		if _, err := s.AttachArc(ends[i-1][1], ends[i][0], 1, core.ElemMarker, 0); err != nil {
			return 0, 0, false, err
		}
	}

	return ends[0][0], ends[len(ends)-1][1], true, nil
}

// trySplice is the shared engine behind TryAddRow and TryAddCol: it
// grafts one new signed arc realizing (newKind, newIndex), whose nonzero
// pattern is entries (each referencing an already-placed element of
// refKind), onto the store, and reports whether the result still
// realizes a network matrix.
func trySplice(s *core.Store, newKind, refKind core.ElemKind, newIndex int, entries []Entry, commit bool) (bool, error) {
	if s == nil {
		return false, ErrNilStore
	}
	if _, exists := s.LookupArc(newKind, newIndex); exists {
		return false, ErrDuplicateIndex
	}

	mark := s.Checkpoint()

	tail, head, ok, err := spliceEnds(s, refKind, entries)
	if err != nil {
		s.Rollback(mark)
		return false, err
	}
	if !ok {
		s.Rollback(mark)
		return false, nil
	}

	if _, err := s.AttachArc(tail, head, 1, newKind, newIndex); err != nil {
		s.Rollback(mark)
		return false, err
	}

	if !commit {
		s.Rollback(mark)
	}

	return true, nil
}
