// Package rowcol implements the two "hard" operations of an online network
// matrix recognizer: TryAddRow and TryAddCol. Both reduce to the same
// question — does grafting one more signed arc onto the existing
// decomposition still realize a network matrix? — answered by checking
// that the arcs referenced by the new row or column, oriented by their
// entry signs, form a realizable directed trail, then splicing that trail
// onto the decomposition as a single new arc.
//
// Mirrors prim_kruskal's shape: row.go and col.go are the two public entry
// points, sharing one core package dependency and one internal algorithm
// (path.go), the way prim.go and kruskal.go share core.Graph and differ
// only in which classical algorithm they run.
package rowcol
