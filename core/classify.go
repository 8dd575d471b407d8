package core

// MemberType classifies a member (a maximal, currently-merged component
// of the realizing multigraph) the way an SPQR tree node would be
// classified: by the shape of its underlying undirected multigraph,
// rather than by an explicitly maintained tree-node tag. See DESIGN.md
// for why this Store derives the classification instead of storing it.
type MemberType uint8

const (
	// MemberSeries is a member whose underlying graph is a single cycle:
	// every node has degree exactly 2.
	MemberSeries MemberType = iota
	// MemberParallel is a member with exactly two nodes joined by three or
	// more parallel arcs.
	MemberParallel
	// MemberRigid is a member that is neither series nor parallel: a
	// genuinely 3-connected piece of structure.
	MemberRigid
)

// String renders a MemberType for diagnostics.
func (t MemberType) String() string {
	switch t {
	case MemberSeries:
		return "series"
	case MemberParallel:
		return "parallel"
	default:
		return "rigid"
	}
}

// Member is one maximal component of the current decomposition, derived
// on demand by Classify.
type Member struct {
	Root  NodeID
	Type  MemberType
	Arcs  []ArcID
	Nodes []NodeID
}

// Classify partitions the current arcs into members by disjoint-set root
// and classifies each one's shape. Complexity: O(nodes + arcs).
func (s *Store) Classify() []Member {
	byRoot := make(map[NodeID]*Member)
	nodeSeen := make(map[NodeID]bool)

	order := make([]NodeID, 0, len(byRoot))
	memberOf := func(n NodeID) *Member {
		r := s.uf.find(n)
		m, ok := byRoot[r]
		if !ok {
			m = &Member{Root: r}
			byRoot[r] = m
			order = append(order, r)
		}

		return m
	}

	degree := make(map[NodeID]int)
	for _, a := range s.arcs {
		if a.Kind == ElemMarker {
			// Marker arcs are internal splice bookkeeping (see AttachArc's
			// ElemMarker doc), not realized rows or columns; a member's
			// shape is classified from its real elements only.
			continue
		}
		m := memberOf(a.Tail)
		m.Arcs = append(m.Arcs, a.ID)
		degree[a.Tail]++
		degree[a.Head]++
		if !nodeSeen[a.Tail] {
			nodeSeen[a.Tail] = true
			m.Nodes = append(m.Nodes, a.Tail)
		}
		if !nodeSeen[a.Head] {
			nodeSeen[a.Head] = true
			m.Nodes = append(m.Nodes, a.Head)
		}
	}

	members := make([]Member, 0, len(order))
	for _, r := range order {
		m := byRoot[r]
		m.Type = classifyShape(*m, degree)
		members = append(members, *m)
	}

	return members
}

// classifyShape decides series/parallel/rigid from a member's node degrees
// within its own arc set.
func classifyShape(m Member, degree map[NodeID]int) MemberType {
	if len(m.Nodes) == 2 && len(m.Arcs) >= 3 {
		return MemberParallel
	}
	allDegreeTwo := len(m.Nodes) > 0
	for _, n := range m.Nodes {
		if degree[n] != 2 {
			allDegreeTwo = false
			break
		}
	}
	if allDegreeTwo {
		return MemberSeries
	}

	return MemberRigid
}

// IsMinimal reports whether every member of the current decomposition
// satisfies the minimality invariant: series and parallel members must
// have at least three arcs, since a two-arc series or parallel member is
// equivalent to a single arc and should already have been contracted.
func (s *Store) IsMinimal() bool {
	for _, m := range s.Classify() {
		switch m.Type {
		case MemberSeries, MemberParallel:
			if len(m.Arcs) < 3 {
				return false
			}
		}
	}

	return true
}
