package core

// unionFind is a disjoint-set over NodeIDs, tracking which nodes currently
// belong to the same member. It is the same path-compression/union-by-rank
// scheme prim_kruskal/kruskal.go inlines for its MST construction, adapted
// from a map[string]string over vertex IDs to slices over a dense NodeID
// arena, and extended with an undo-able Union so rowcol can roll a rejected
// row or column back out cleanly.
type unionFind struct {
	parent []NodeID
	rank   []int
}

func newUnionFind() unionFind {
	return unionFind{}
}

// grow extends the DSU to cover NodeIDs up to n-1, leaving existing
// entries untouched.
func (u *unionFind) grow(n int) {
	for len(u.parent) < n {
		id := NodeID(len(u.parent))
		u.parent = append(u.parent, id)
		u.rank = append(u.rank, 0)
	}
}

// find returns the representative of x's set, compressing the path walked
// to reach it.
func (u *unionFind) find(x NodeID) NodeID {
	for u.parent[x] != x {
		// Path compression: point x at its grandparent.
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}

	return x
}

// union merges the sets containing x and y, attaching the lower-rank root
// under the higher-rank one. It reports whether a merge actually occurred
// (false if x and y were already in the same set), which root was
// demoted under the other, which root survived, and whether the
// survivor's rank was bumped, so callers can build an exact undo record.
func (u *unionFind) union(x, y NodeID) (demoted, survivor NodeID, merged bool, rankBumped bool) {
	rx, ry := u.find(x), u.find(y)
	if rx == ry {
		return rx, rx, false, false
	}

	switch {
	case u.rank[rx] < u.rank[ry]:
		u.parent[rx] = ry
		return rx, ry, true, false
	case u.rank[rx] > u.rank[ry]:
		u.parent[ry] = rx
		return ry, rx, true, false
	default:
		u.parent[ry] = rx
		u.rank[rx]++
		return ry, rx, true, true
	}
}

// connected reports whether x and y are currently in the same set.
func (u *unionFind) connected(x, y NodeID) bool {
	return u.find(x) == u.find(y)
}
