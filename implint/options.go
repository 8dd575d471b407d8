package implint

// Option configures implied-integrality detection via functional
// arguments, the same style bfs.Option/dfs.Option use.
type Option func(*Options)

// Options holds the two knobs §6.4 of the governing specification names.
type Options struct {
	// ColumnRowRatio selects the row-addition algorithm (columns first,
	// rows streamed against them) once nrows*ColumnRowRatio < ncols, and
	// the column-addition algorithm (rows first, columns streamed against
	// them) otherwise, mirroring presol_implint.c's DEFAULT_COLUMNROWRATIO
	// threshold.
	ColumnRowRatio float64

	// ConvertIntegers records whether columns already declared integer
	// take part in detection, mirroring presol_implint.c's
	// DEFAULT_CONVERTINTEGERS. No function in this package reads it:
	// Detect and DetectImpliedIntegers process whatever columns the Block
	// holds, so including integer columns is up to whoever builds the
	// Block.
	ConvertIntegers bool
}

// DefaultOptions returns §6.4's documented defaults: ColumnRowRatio 50.0,
// ConvertIntegers false.
func DefaultOptions() Options {
	return Options{
		ColumnRowRatio:  50.0,
		ConvertIntegers: false,
	}
}

// WithColumnRowRatio overrides the row/column traversal threshold.
func WithColumnRowRatio(ratio float64) Option {
	return func(o *Options) { o.ColumnRowRatio = ratio }
}

// WithConvertIntegers sets ConvertIntegers.
func WithConvertIntegers(convert bool) Option {
	return func(o *Options) { o.ConvertIntegers = convert }
}

// RowMajor reports whether a block of the given shape should use the
// row-addition algorithm: columns laid down first as the base structure,
// rows streamed incrementally against them. This is preferred once
// columns outnumber rows by more than a factor of ColumnRowRatio, mirroring
// presol_implint.c's threshold.
func (o Options) RowMajor(nrows, ncols int) bool {
	return float64(nrows)*o.ColumnRowRatio < float64(ncols)
}
