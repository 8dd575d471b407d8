package netmat

import (
	"github.com/vdhulst/netmat/components"
	"github.com/vdhulst/netmat/core"
	"github.com/vdhulst/netmat/digraph"
	"github.com/vdhulst/netmat/rowcol"
)

// Entry is a nonzero of a row or column being added, re-exported from
// rowcol so callers of this package never need to import it directly.
type Entry = rowcol.Entry

// Decomp is an online network matrix decomposition: a pure value owning
// its own arena, built up one accepted row or column at a time.
type Decomp struct {
	store *core.Store
	nrows int
	ncols int
}

// Create allocates an empty Decomp ready to accept rows and columns.
func Create(opts ...core.Option) *Decomp {
	return &Decomp{store: core.Create(opts...)}
}

// Free releases a Decomp's resources.
func (d *Decomp) Free() {
	if d == nil {
		return
	}
	d.store.Free()
}

// TryAddRow attempts to add a new row; see rowcol.TryAddRow.
func (d *Decomp) TryAddRow(rowIndex int, entries []Entry) (bool, error) {
	ok, err := rowcol.TryAddRow(d.store, rowIndex, entries)
	if ok {
		if rowIndex+1 > d.nrows {
			d.nrows = rowIndex + 1
		}
	}

	return ok, err
}

// TryAddCol attempts to add a new column; see rowcol.TryAddCol.
func (d *Decomp) TryAddCol(colIndex int, entries []Entry) (bool, error) {
	ok, err := rowcol.TryAddCol(d.store, colIndex, entries)
	if ok {
		if colIndex+1 > d.ncols {
			d.ncols = colIndex + 1
		}
	}

	return ok, err
}

// VerifyCycle checks, without mutating the decomposition, whether a
// hypothetical row or column would be accepted.
func (d *Decomp) VerifyCycle(kind core.ElemKind, index int, entries []Entry) (bool, error) {
	return rowcol.VerifyCycle(d.store, kind, index, entries)
}

// IsMinimal reports whether the current decomposition satisfies the
// minimality invariant (no contractible series/parallel member remains).
func (d *Decomp) IsMinimal() bool {
	return d.store.IsMinimal()
}

// CreateDigraph exports the realizing directed multigraph behind the
// current decomposition.
func (d *Decomp) CreateDigraph() *digraph.Digraph {
	return digraph.Build(d.store)
}

// Partition returns the connected-components view of every row/column
// placed so far.
func (d *Decomp) Partition() *components.Partition {
	return components.Build(d.store, d.nrows, d.ncols)
}
