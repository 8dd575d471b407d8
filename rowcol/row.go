package rowcol

import "github.com/vdhulst/netmat/core"

// TryAddRow attempts to add a new row, identified by rowIndex, whose
// nonzero pattern over already-placed columns is entries. It reports
// whether the resulting matrix is still a network matrix; a false result
// with a nil error is a genuine rejection (§7), not a failure.
func TryAddRow(s *core.Store, rowIndex int, entries []Entry) (bool, error) {
	return trySplice(s, core.ElemRow, core.ElemCol, rowIndex, entries, true)
}
