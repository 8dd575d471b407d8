// Package implint is the narrow integration contract this module plays
// against rowcol/components the way presol_implint.c plays against
// network.c in the original: filtering which rows are eligible, choosing
// row-major or column-major traversal by a configurable size ratio, and
// streaming a component's rows or columns through rowcol to discover
// implied integrality. DetectImpliedIntegers additionally checks a
// component's transpose, since a network matrix's transpose need not
// itself be one, and marks every column of a component where either side
// succeeds. The surrounding presolver, LP interface, and branching are
// out of scope; this package's job ends at producing a Result.
package implint
