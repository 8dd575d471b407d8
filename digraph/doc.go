// Package digraph exports the realizing directed multigraph behind a
// decomposition as a plain, read-only value: the §6.3 create_digraph
// operation. Build is a pure allocate-and-return converter with no
// hidden state, in the spirit of the teacher's matrix/ package
// converters between core.Graph and dense/sparse matrix forms.
package digraph
