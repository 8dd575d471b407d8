package rowcol

import "github.com/vdhulst/netmat/core"

// VerifyCycle reports whether the given nonzero pattern is realizable as
// a directed trail over already-placed opposite-kind elements.
//
// If (kind, index) has not been placed yet, this is a pure dry run of the
// splice TryAddRow/TryAddCol would perform: it runs the same feasibility
// check and discards any tentative allocation.
//
// If (kind, index) has already been accepted, this instead re-derives the
// (source, sink) its entries imply today and checks that they still
// match the arc's actual, already-realized endpoints — the diagnostic
// spec's R1/P3 call for: confirming an accepted column's support still
// equals the fundamental cycle/path its citations describe, without
// re-attaching it (re-attaching would always fail: the index already
// exists).
func VerifyCycle(s *core.Store, kind core.ElemKind, index int, entries []Entry) (bool, error) {
	if s == nil {
		return false, ErrNilStore
	}
	refKind := core.ElemCol
	if kind == core.ElemCol {
		refKind = core.ElemRow
	}

	arc, exists := s.LookupArc(kind, index)
	if !exists {
		return trySplice(s, kind, refKind, index, entries, false)
	}
	if len(entries) == 0 {
		// No citations: a lone arc trivially realizes its own trail.
		return true, nil
	}

	mark := s.Checkpoint()
	tail, head, ok, err := spliceEnds(s, refKind, entries)
	s.Rollback(mark)
	if err != nil || !ok {
		return false, err
	}

	return tail == arc.Tail && head == arc.Head, nil
}
