package core

// NodeID identifies a node of the realizing directed multigraph. IDs are
// dense arena indices allocated by the Store, never pointers and never
// reused within one Store's lifetime.
type NodeID int

// ArcID identifies an arc of the realizing directed multigraph. Every
// accepted row or column owns exactly one ArcID.
type ArcID int

// invalidNode/invalidArc mark the absence of a node/arc, analogous to a
// nil pointer but representable in a flat arena.
const (
	invalidNode NodeID = -1
	invalidArc  ArcID  = -1
)

// ElemKind distinguishes whether an Arc realizes a matrix row or a matrix
// column.
type ElemKind uint8

const (
	// ElemRow marks an Arc as realizing a row of the matrix.
	ElemRow ElemKind = iota
	// ElemCol marks an Arc as realizing a column of the matrix.
	ElemCol
	// ElemMarker marks an Arc as a twin-marker link (§3 invariant 5):
	// internal bookkeeping that records a real structural connection
	// between two nodes without itself realizing any row or column.
	// rowcol uses these when it splices several previously separate
	// members into one new member's internal path, so the member's
	// internal graph stays one literally-connected piece rather than
	// several components held together only by the disjoint set.
	// Marker arcs are never registered under rowArc/colArc and never
	// surface through LookupArc.
	ElemMarker
)

// String renders an ElemKind for diagnostics.
func (k ElemKind) String() string {
	switch k {
	case ElemRow:
		return "row"
	case ElemCol:
		return "col"
	default:
		return "marker"
	}
}

// Arc is one directed, signed edge of the realizing multigraph. Its
// Tail→Head orientation and Sign together encode the +1/-1 pattern the
// corresponding row or column must reproduce on any fundamental cycle
// passing through it (§3/§4.1 of the governing specification).
type Arc struct {
	ID   ArcID
	Tail NodeID
	Head NodeID
	Sign int8 // +1 or -1; never 0
	Kind ElemKind
	// Index is the caller-facing row or column index this Arc realizes.
	Index int
}

// Options configures a Store at construction time.
type Options struct {
	// NodeCapacity, if > 0, bounds how many nodes a Store will allocate
	// before AllocNode/CreateMember start returning ErrOutOfMemory. Zero
	// means unbounded (bounded only by available memory).
	NodeCapacity int

	// ArcCapacity is the analogous bound on arcs.
	ArcCapacity int
}

// Option configures a Store before creation.
type Option func(*Options)

// DefaultOptions returns the zero-value Options: unbounded capacity.
func DefaultOptions() Options {
	return Options{}
}

// WithNodeCapacity bounds the number of nodes a Store may allocate.
func WithNodeCapacity(n int) Option {
	return func(o *Options) { o.NodeCapacity = n }
}

// WithArcCapacity bounds the number of arcs a Store may allocate.
func WithArcCapacity(n int) Option {
	return func(o *Options) { o.ArcCapacity = n }
}

// Store owns the arena of nodes and arcs realizing a decomposition, the
// disjoint-set tracking member membership, and the undo log consumed by
// rowcol on rejection. It is a pure value: no locks, no background state.
type Store struct {
	opts Options

	nodeCount int
	arcs      []Arc

	// edgeIndex maps an ordered (Tail, Head) pair to the arcs currently
	// attached between them. Several arcs may legitimately share a pair —
	// that is exactly what a parallel member is — so this is a multi-map,
	// not a uniqueness constraint.
	edgeIndex map[[2]NodeID][]ArcID

	// rowArc/colArc map a caller-facing row/column index to the ArcID
	// realizing it, once accepted.
	rowArc map[int]ArcID
	colArc map[int]ArcID

	uf unionFind

	undo []undoOp
}

// Create allocates an empty Store ready to accept rows and columns.
// Complexity: O(1).
func Create(opts ...Option) *Store {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Store{
		opts:      o,
		edgeIndex: make(map[[2]NodeID][]ArcID),
		rowArc:    make(map[int]ArcID),
		colArc:    make(map[int]ArcID),
		uf:        newUnionFind(),
	}
}

// Free releases a Store's resources. Go's garbage collector reclaims the
// backing arrays once the Store is unreferenced; Free exists only to give
// callers a symmetric counterpart to Create, matching §6.1's create/free
// pair and letting callers write deterministic cleanup in the original's
// idiom.
func (s *Store) Free() {
	if s == nil {
		return
	}
	s.arcs = nil
	s.edgeIndex = nil
	s.rowArc = nil
	s.colArc = nil
	s.uf = unionFind{}
	s.undo = nil
}
