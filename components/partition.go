package components

import "github.com/vdhulst/netmat/core"

// Build computes the connected-components partition of every row and
// column placed so far, over a flat index space of size nrows+ncols
// (row i at index i, column j at index nrows+j). The disjoint-set here is
// the same parent/rank-map, path-compression, union-by-rank scheme
// prim_kruskal/kruskal.go inlines for its MST construction, generalized
// from string vertex IDs to this flat int space; unions are seeded from
// which rows/columns the store already considers the same member.
//
// Complexity: O((nrows+ncols)·α(nrows+ncols) + arcs).
func Build(s *core.Store, nrows, ncols int) *Partition {
	n := nrows + ncols
	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(x, y int) {
		rx, ry := find(x), find(y)
		if rx == ry {
			return
		}
		switch {
		case rank[rx] < rank[ry]:
			parent[rx] = ry
		case rank[rx] > rank[ry]:
			parent[ry] = rx
		default:
			parent[ry] = rx
			rank[rx]++
		}
	}

	combined := func(a core.Arc) int {
		if a.Kind == core.ElemCol {
			return nrows + a.Index
		}
		return a.Index
	}

	placed := make([]bool, n)
	anchorOf := make(map[core.NodeID]int)
	for _, a := range s.Arcs() {
		if a.Kind == core.ElemMarker {
			// Marker arcs are internal splice bookkeeping, not a row or
			// column; combined() only knows how to place row/column kinds.
			continue
		}
		idx := combined(a)
		if idx < 0 || idx >= n {
			continue
		}
		placed[idx] = true

		root, err := s.ArcMember(a.ID)
		if err != nil {
			continue
		}
		if anchor, ok := anchorOf[root]; ok {
			union(idx, anchor)
		} else {
			anchorOf[root] = idx
		}
	}

	compID := make(map[int]int)
	componentOf := make([]int, n)
	var order []int
	for i := 0; i < n; i++ {
		componentOf[i] = -1
		if !placed[i] {
			continue
		}
		r := find(i)
		id, ok := compID[r]
		if !ok {
			id = len(order)
			compID[r] = id
			order = append(order, r)
		}
		componentOf[i] = id
	}

	buckets := make([][]int, len(order))
	for i := 0; i < n; i++ {
		if c := componentOf[i]; c >= 0 {
			buckets[c] = append(buckets[c], i)
		}
	}

	offsets := make([]int, len(buckets)+1)
	var members []int
	for i, b := range buckets {
		offsets[i] = len(members)
		members = append(members, b...)
	}
	offsets[len(buckets)] = len(members)

	return &Partition{
		NumRows: nrows, NumCols: ncols,
		ComponentOf: componentOf,
		Offsets:     offsets,
		Members:     members,
	}
}
