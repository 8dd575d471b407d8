package core

// undoKind tags which field of an undoOp is meaningful.
type undoKind uint8

const (
	undoNode undoKind = iota
	undoArc
	undoUnion
)

// undoOp is one entry of the undo log. rowcol checkpoints before trying a
// row or column and rolls back to that checkpoint on rejection, so a
// rejected attempt never leaves a trace in the Store (§7: rejection must
// be side-effect free from the caller's perspective).
type undoOp struct {
	kind undoKind

	// undoArc fields
	arc  ArcID
	key  [2]NodeID
	ekin ElemKind
	idx  int

	// undoUnion fields: the set that was demoted under the other root, the
	// root that survived, and whether the survivor's rank was bumped, so
	// the merge is exactly reversible.
	demoted    NodeID
	survivor   NodeID
	rankBumped bool
}

// Checkpoint returns a mark that Rollback can later return the Store to.
// Complexity: O(1).
func (s *Store) Checkpoint() int {
	return len(s.undo)
}

// Rollback undvoes every operation recorded since mark, in reverse order.
// mark must be a value previously returned by Checkpoint on this Store.
func (s *Store) Rollback(mark int) error {
	if mark < 0 || mark > len(s.undo) {
		return ErrEmptyUndoLog
	}
	for i := len(s.undo) - 1; i >= mark; i-- {
		op := s.undo[i]
		switch op.kind {
		case undoNode:
			s.nodeCount--
			s.uf.parent = s.uf.parent[:s.nodeCount]
			s.uf.rank = s.uf.rank[:s.nodeCount]
		case undoArc:
			s.arcs = s.arcs[:len(s.arcs)-1]
			if ids := s.edgeIndex[op.key]; len(ids) <= 1 {
				delete(s.edgeIndex, op.key)
			} else {
				s.edgeIndex[op.key] = ids[:len(ids)-1]
			}
			switch op.ekin {
			case ElemRow:
				delete(s.rowArc, op.idx)
			case ElemCol:
				delete(s.colArc, op.idx)
			}
		case undoUnion:
			s.uf.parent[op.demoted] = op.demoted
			if op.rankBumped {
				s.uf.rank[op.survivor]--
			}
		}
	}
	s.undo = s.undo[:mark]

	return nil
}

// AllocNode allocates a fresh NodeID in the realizing multigraph's arena.
// Complexity: O(1) amortized.
func (s *Store) AllocNode() (NodeID, error) {
	if s.opts.NodeCapacity > 0 && s.nodeCount >= s.opts.NodeCapacity {
		return invalidNode, ErrOutOfMemory
	}
	id := NodeID(s.nodeCount)
	s.nodeCount++
	s.uf.grow(s.nodeCount)
	s.undo = append(s.undo, undoOp{kind: undoNode})

	return id, nil
}

// CreateMember allocates a fresh node callers can graft new arcs onto. In
// this Store's simplified single-multigraph realization (see DESIGN.md),
// a "member" is represented by the node a splice starts or ends at, rather
// than by a distinct SPQR-tree node; CreateMember is the entry point for
// obtaining one.
func (s *Store) CreateMember() (NodeID, error) {
	return s.AllocNode()
}

// AttachArc places a new, signed, directed arc between tail and head,
// recording it under the given (kind, index) so LookupArc/ArcMember can
// find it again. AttachArc also unions tail and head in the disjoint set.
// Multiple arcs may share the same (tail, head) pair, or reverse pairs of
// each other: that is exactly how a parallel member is represented.
func (s *Store) AttachArc(tail, head NodeID, sign int8, kind ElemKind, index int) (ArcID, error) {
	if int(tail) >= s.nodeCount || int(head) >= s.nodeCount || tail < 0 || head < 0 {
		return invalidArc, ErrUnknownNode
	}
	if s.opts.ArcCapacity > 0 && len(s.arcs) >= s.opts.ArcCapacity {
		return invalidArc, ErrOutOfMemory
	}
	key := [2]NodeID{tail, head}

	id := ArcID(len(s.arcs))
	s.arcs = append(s.arcs, Arc{ID: id, Tail: tail, Head: head, Sign: sign, Kind: kind, Index: index})
	s.edgeIndex[key] = append(s.edgeIndex[key], id)
	switch kind {
	case ElemRow:
		s.rowArc[index] = id
	case ElemCol:
		s.colArc[index] = id
	}

	s.undo = append(s.undo, undoOp{
		kind: undoArc,
		arc:  id, key: key, ekin: kind, idx: index,
	})
	if demoted, survivor, merged, bumped := s.uf.union(tail, head); merged {
		s.undo = append(s.undo, undoOp{
			kind: undoUnion, demoted: demoted,
			survivor: survivor, rankBumped: bumped,
		})
	}

	return id, nil
}

// LookupArc returns the Arc realizing the given row or column index, and
// whether one has been attached yet.
func (s *Store) LookupArc(kind ElemKind, index int) (Arc, bool) {
	var m map[int]ArcID
	if kind == ElemRow {
		m = s.rowArc
	} else {
		m = s.colArc
	}
	id, ok := m[index]
	if !ok {
		return Arc{}, false
	}

	return s.arcs[id], true
}

// ArcByID returns the Arc with the given ArcID.
func (s *Store) ArcByID(id ArcID) (Arc, error) {
	if id < 0 || int(id) >= len(s.arcs) {
		return Arc{}, ErrUnknownArc
	}

	return s.arcs[id], nil
}

// ArcMember returns the representative node of the member an arc
// currently belongs to (the disjoint-set root of its tail).
func (s *Store) ArcMember(id ArcID) (NodeID, error) {
	if id < 0 || int(id) >= len(s.arcs) {
		return invalidNode, ErrUnknownArc
	}

	return s.uf.find(s.arcs[id].Tail), nil
}

// SameMember reports whether two nodes currently belong to the same
// member (disjoint-set component).
func (s *Store) SameMember(a, b NodeID) bool {
	return s.uf.connected(a, b)
}

// MergeMembers identifies a and b as the same member, joining their
// disjoint sets without attaching an arc. rowcol does not call it: it
// joins members by attaching ElemMarker arcs, which union their
// endpoints through AttachArc.
func (s *Store) MergeMembers(a, b NodeID) error {
	if int(a) >= s.nodeCount || int(b) >= s.nodeCount || a < 0 || b < 0 {
		return ErrUnknownNode
	}
	if demoted, survivor, merged, bumped := s.uf.union(a, b); merged {
		s.undo = append(s.undo, undoOp{kind: undoUnion, demoted: demoted, survivor: survivor, rankBumped: bumped})
	}

	return nil
}

// NodeCount returns the number of nodes currently allocated.
func (s *Store) NodeCount() int {
	return s.nodeCount
}

// Arcs returns a read-only snapshot of every arc attached so far, ordered
// by ArcID (i.e. attachment order).
func (s *Store) Arcs() []Arc {
	out := make([]Arc, len(s.arcs))
	copy(out, s.arcs)

	return out
}
