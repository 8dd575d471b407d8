package components

// Partition is the connected-components view of a decomposition's rows
// and columns, in a CSR-like flat layout: Members lists every placed row
// (as its index) and column (as nrows+its index) grouped contiguously by
// component, with Offsets marking each component's slice boundaries.
type Partition struct {
	// NumRows/NumCols are the dimensions the partition was computed over.
	NumRows, NumCols int

	// ComponentOf maps a combined index (row i -> i, column j -> nrows+j)
	// to its component id, or -1 if that row/column has not been placed.
	ComponentOf []int

	// Offsets has len(Offsets) == number of components + 1; component c's
	// members are Members[Offsets[c]:Offsets[c+1]].
	Offsets []int

	// Members is the flat, component-grouped list of combined indices.
	Members []int
}

// Rows returns component c's member rows, by row index.
func (p *Partition) Rows(c int) []int {
	return p.selectKind(c, func(combined int) (int, bool) {
		if combined < p.NumRows {
			return combined, true
		}
		return 0, false
	})
}

// Cols returns component c's member columns, by column index.
func (p *Partition) Cols(c int) []int {
	return p.selectKind(c, func(combined int) (int, bool) {
		if combined >= p.NumRows {
			return combined - p.NumRows, true
		}
		return 0, false
	})
}

func (p *Partition) selectKind(c int, pick func(int) (int, bool)) []int {
	if c < 0 || c+1 >= len(p.Offsets) {
		return nil
	}
	var out []int
	for _, combined := range p.Members[p.Offsets[c]:p.Offsets[c+1]] {
		if v, ok := pick(combined); ok {
			out = append(out, v)
		}
	}

	return out
}

// NumComponents reports how many components the partition found.
func (p *Partition) NumComponents() int {
	if len(p.Offsets) == 0 {
		return 0
	}
	return len(p.Offsets) - 1
}
