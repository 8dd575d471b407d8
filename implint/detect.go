package implint

import (
	"github.com/vdhulst/netmat/core"
	"github.com/vdhulst/netmat/rowcol"
)

// Block is one continuous-column submatrix component, already filtered by
// FilterRow and partitioned by components.Build, ready to stream into
// rowcol.
type Block struct {
	NRows, NCols int
	// RowEntries/ColEntries return the nonzero pattern of row i / column j
	// over the opposite, already-placed dimension.
	RowEntries func(i int) []rowcol.Entry
	ColEntries func(j int) []rowcol.Entry
}

// Transpose swaps a Block's row and column roles, the same swap
// presol_implint.c performs when it decomposes the transposed matrix to
// check implied integrality from the other side.
func (b Block) Transpose() Block {
	return Block{
		NRows:      b.NCols,
		NCols:      b.NRows,
		RowEntries: b.ColEntries,
		ColEntries: b.RowEntries,
	}
}

// Detect streams a Block's rows or columns into s, choosing row-major or
// column-major order per opts.RowMajor (§4.5 step 2), and stops at the
// first rejection.
func Detect(s *core.Store, opts Options, b Block) Result {
	var res Result

	tryRow := func(i int) bool {
		ok, err := rowcol.TryAddRow(s, i, b.RowEntries(i))
		if err != nil {
			res.Rejected = &RejectionInfo{Kind: core.ElemRow, Index: i, Reason: err.Error()}
			return false
		}
		if !ok {
			res.Rejected = &RejectionInfo{Kind: core.ElemRow, Index: i, Reason: "rejected"}
			return false
		}
		res.RowsAccepted++
		return true
	}
	tryCol := func(j int) bool {
		ok, err := rowcol.TryAddCol(s, j, b.ColEntries(j))
		if err != nil {
			res.Rejected = &RejectionInfo{Kind: core.ElemCol, Index: j, Reason: err.Error()}
			return false
		}
		if !ok {
			res.Rejected = &RejectionInfo{Kind: core.ElemCol, Index: j, Reason: "rejected"}
			return false
		}
		res.ColsAccepted++
		return true
	}

	// RowMajor true means "use the row-addition algorithm": columns are
	// laid down first as the base structure, and rows are incrementally
	// added against them. False means the reverse.
	first, second := tryRow, tryCol
	firstN, secondN := b.NRows, b.NCols
	if opts.RowMajor(b.NRows, b.NCols) {
		first, second = tryCol, tryRow
		firstN, secondN = b.NCols, b.NRows
	}

	for i := 0; i < firstN; i++ {
		if !first(i) {
			return res
		}
	}
	for i := 0; i < secondN; i++ {
		if !second(i) {
			return res
		}
	}

	return res
}

// DetectImpliedIntegers runs Detect on b and on its transpose, each in its
// own fresh store, and marks every column of b implied-integer if either
// side realizes as a network matrix. A network matrix's transpose need not
// itself be one, so presol_implint.c always checks both before giving up
// on a component.
func DetectImpliedIntegers(opts Options, b Block) Result {
	s := core.Create()
	defer s.Free()
	res := Detect(s, opts, b)
	res.ComponentNetwork = res.Rejected == nil

	ts := core.Create()
	defer ts.Free()
	transRes := Detect(ts, opts, b.Transpose())
	res.ComponentTransNetwork = transRes.Rejected == nil

	if res.ComponentNetwork || res.ComponentTransNetwork {
		res.MarkedCols = make([]int, b.NCols)
		for j := range res.MarkedCols {
			res.MarkedCols[j] = j
		}
	}

	return res
}
