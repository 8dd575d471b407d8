// Package components computes the connected-components partition of a
// decomposition's rows and columns: which rows and columns currently
// belong to the same weakly-connected piece of structure, returned in a
// CSR-like flat layout. Grounded on prim_kruskal/kruskal.go's disjoint
// set, generalized from string vertex IDs to a flat int index space of
// size nrows+ncols, the way §4.4 of the governing specification asks for.
package components
