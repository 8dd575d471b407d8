package rowcol

import "errors"

// Sentinel errors for row/column augmentation. Rejection itself is never
// an error (§7 of the governing specification: rejection is a plain
// boolean) — these are reserved for malformed input and resource limits.
var (
	// ErrNilStore indicates a nil *core.Store was passed in.
	ErrNilStore = errors.New("rowcol: nil store")

	// ErrBadSign indicates an entry's sign was something other than +1 or -1.
	ErrBadSign = errors.New("rowcol: entry sign must be +1 or -1")

	// ErrDuplicateIndex indicates TryAddRow/TryAddCol was called twice with
	// the same row/column index.
	ErrDuplicateIndex = errors.New("rowcol: index already placed")

	// ErrReferencedMissing indicates an entry referenced a row or column
	// index that has not been accepted yet.
	ErrReferencedMissing = errors.New("rowcol: referenced row/column not yet placed")
)
