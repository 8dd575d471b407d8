// Package netmat provides an online, incremental recognizer for network
// matrices: it accepts rows and columns one at a time and decides, on the
// fly, whether the matrix built so far still admits a realization as the
// node-arc incidence structure of a directed graph.
//
// Everything is organized under five subpackages:
//
//	core/       — the decomposition store: arena-indexed nodes and arcs,
//	              union-find over components, undo log, member classification
//	rowcol/     — TryAddRow / TryAddCol / VerifyCycle, the splice algorithm
//	              that accepts or rejects each new row or column
//	components/ — CSR-style connected-components partition of placed rows/cols
//	digraph/    — exports the realizing directed multigraph behind a store
//	implint/    — implied-integrality detection over network submatrices
//
// netmat/ itself is the single-import façade: Create, TryAddRow, TryAddCol,
// VerifyCycle, IsMinimal, CreateDigraph, Partition.
package netmat
