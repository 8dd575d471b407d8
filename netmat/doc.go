// Package netmat is the single-import façade over this module's
// decomposition engine: Create, Free, TryAddRow, TryAddCol, IsMinimal,
// VerifyCycle, and CreateDigraph, the complete external interface, all
// reachable from one Decomp value. Mirrors the teacher's root doc.go
// package, which documents — without reimplementing — core/matrix/
// algorithms underneath it.
package netmat
