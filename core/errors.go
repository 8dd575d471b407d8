package core

import "errors"

// Sentinel errors for the decomposition store. Every message is prefixed
// "core: ..." for consistency with the rest of this module; wrap with
// fmt.Errorf("...: %w", ErrX) only at outer (rowcol/netmat) boundaries.
var (
	// ErrNilStore indicates a nil *Store receiver was used.
	ErrNilStore = errors.New("core: nil store")

	// ErrUnknownNode indicates a NodeID not allocated by this Store.
	ErrUnknownNode = errors.New("core: unknown node id")

	// ErrUnknownArc indicates an ArcID not allocated by this Store.
	ErrUnknownArc = errors.New("core: unknown arc id")

	// ErrOutOfMemory signals the store's configured capacity would be
	// exceeded by the requested allocation (§7 "OOM" outcome class).
	ErrOutOfMemory = errors.New("core: out of memory")

	// ErrEmptyUndoLog indicates Rollback was given a mark outside the
	// current undo log (negative, or beyond its length). Rolling back to a
	// mark with nothing recorded since it is not an error.
	ErrEmptyUndoLog = errors.New("core: undo log is empty")
)
