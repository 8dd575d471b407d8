package rowcol

import "github.com/vdhulst/netmat/core"

// TryAddCol attempts to add a new column, identified by colIndex, whose
// nonzero pattern over already-placed rows is entries. It reports whether
// the resulting matrix is still a network matrix; a false result with a
// nil error is a genuine rejection (§7), not a failure.
func TryAddCol(s *core.Store, colIndex int, entries []Entry) (bool, error) {
	return trySplice(s, core.ElemCol, core.ElemRow, colIndex, entries, true)
}
