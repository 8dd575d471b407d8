package implint

import "github.com/vdhulst/netmat/core"

// RejectionInfo records which row or column first failed detection within
// a block, and why, for presolver-style accounting.
type RejectionInfo struct {
	Kind   core.ElemKind
	Index  int
	Reason string
}

// Result accounts for one component's worth of detection, mirroring the
// per-component discard bookkeeping presol_implint.c keeps: how many rows
// and columns were accepted before the first rejection, and what that
// rejection was.
type Result struct {
	RowsAccepted int
	ColsAccepted int
	Rejected     *RejectionInfo

	// ComponentNetwork and ComponentTransNetwork record whether the
	// component, and its transpose, realize as network matrices.
	// presol_implint.c marks a component's columns implied-integer if
	// either side succeeds, since a network matrix's transpose need not
	// itself be a network matrix.
	ComponentNetwork      bool
	ComponentTransNetwork bool

	// MarkedCols holds the column indices marked implied-integer, set
	// only when ComponentNetwork || ComponentTransNetwork.
	MarkedCols []int
}
