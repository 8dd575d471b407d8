package rowcol_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vdhulst/netmat/core"
	"github.com/vdhulst/netmat/rowcol"
)

// These scenarios are literal regression matrices, in the same spirit as
// _examples/original_source/tests/src/network/network.c's
// DirectedTestCase/stringToTestCase fixtures, reworked as Go table data
// instead of transliterated C.

func placeRows(t *testing.T, s *core.Store, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		ok, err := rowcol.TryAddRow(s, i, nil)
		require.NoError(t, err)
		require.True(t, ok)
	}
}

// S1: 3x1 [+1; +1; -1] -- accepted.
func TestScenarioS1(t *testing.T) {
	s := core.Create()
	placeRows(t, s, 3)

	ok, err := rowcol.TryAddCol(s, 0, []rowcol.Entry{
		{Index: 0, Sign: +1}, {Index: 1, Sign: +1}, {Index: 2, Sign: -1},
	})
	require.NoError(t, err)
	require.True(t, ok)
}

// S2: 3x2 [+1 +1; +1 0; -1 +1] -- second column rejected (sign conflict).
func TestScenarioS2(t *testing.T) {
	s := core.Create()
	placeRows(t, s, 3)

	ok, err := rowcol.TryAddCol(s, 0, []rowcol.Entry{
		{Index: 0, Sign: +1}, {Index: 1, Sign: +1}, {Index: 2, Sign: -1},
	})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = rowcol.TryAddCol(s, 1, []rowcol.Entry{
		{Index: 0, Sign: +1}, {Index: 2, Sign: +1},
	})
	require.NoError(t, err)
	require.False(t, ok)
}

// S3: 3x2 [+1 -1; +1 0; 0 0] -- both columns accepted, forming one
// series member.
func TestScenarioS3(t *testing.T) {
	s := core.Create()
	placeRows(t, s, 3)

	ok, err := rowcol.TryAddCol(s, 0, []rowcol.Entry{
		{Index: 0, Sign: +1}, {Index: 1, Sign: +1},
	})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = rowcol.TryAddCol(s, 1, []rowcol.Entry{
		{Index: 0, Sign: -1},
	})
	require.NoError(t, err)
	require.True(t, ok)
}

// S4: 3x3 [0 1 1; 1 -1 -1; -1 1 -1] -- second row rejected.
func TestScenarioS4(t *testing.T) {
	s := core.Create()
	// Columns are the pre-placed dimension here; rows stream in against them.
	ok, err := rowcol.TryAddCol(s, 0, nil)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = rowcol.TryAddCol(s, 1, nil)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = rowcol.TryAddCol(s, 2, nil)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = rowcol.TryAddRow(s, 0, []rowcol.Entry{
		{Index: 1, Sign: +1}, {Index: 2, Sign: +1},
	})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = rowcol.TryAddRow(s, 1, []rowcol.Entry{
		{Index: 0, Sign: +1}, {Index: 1, Sign: -1}, {Index: 2, Sign: -1},
	})
	require.NoError(t, err)
	require.False(t, ok)
}

func placeCols(t *testing.T, s *core.Store, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		ok, err := rowcol.TryAddCol(s, i, nil)
		require.NoError(t, err)
		require.True(t, ok)
	}
}

// S5: 4x3 [+1 0 +1; +1 +1 0; 0 -1 +1; +1 +1 0] row-wise -- all four rows
// accepted, the fourth merging into the rigid member the first three
// already built.
func TestScenarioS5(t *testing.T) {
	s := core.Create()
	placeCols(t, s, 3)

	rows := [][]rowcol.Entry{
		{{Index: 0, Sign: +1}, {Index: 2, Sign: +1}},
		{{Index: 0, Sign: +1}, {Index: 1, Sign: +1}},
		{{Index: 1, Sign: -1}, {Index: 2, Sign: +1}},
		{{Index: 0, Sign: +1}, {Index: 1, Sign: +1}},
	}
	for i, entries := range rows {
		ok, err := rowcol.TryAddRow(s, i, entries)
		require.NoError(t, err)
		require.Truef(t, ok, "row %d", i)
	}
}

// S6: same first three rows as S5, but the fourth is [-1 +1 0] instead --
// rejected. The first three rows build a branch point (the node where
// row0 and row1 both originate) that the fourth row's own pattern cannot
// be threaded through without reusing a connection row2 already
// committed, which is exactly the shape §4.2 step 3's internal BFS/DFS
// must catch.
func TestScenarioS6(t *testing.T) {
	s := core.Create()
	placeCols(t, s, 3)

	rows := [][]rowcol.Entry{
		{{Index: 0, Sign: +1}, {Index: 2, Sign: +1}},
		{{Index: 0, Sign: +1}, {Index: 1, Sign: +1}},
		{{Index: 1, Sign: -1}, {Index: 2, Sign: +1}},
	}
	for i, entries := range rows {
		ok, err := rowcol.TryAddRow(s, i, entries)
		require.NoError(t, err)
		require.Truef(t, ok, "row %d", i)
	}

	ok, err := rowcol.TryAddRow(s, 3, []rowcol.Entry{
		{Index: 0, Sign: -1}, {Index: 1, Sign: +1},
	})
	require.NoError(t, err)
	require.False(t, ok)
}

// S7: the 5x5 rigid-member case, row-wise -- every row accepted, ending
// in one rigid member spanning all five columns.
func TestScenarioS7(t *testing.T) {
	s := core.Create()
	placeCols(t, s, 5)

	rows := [][]rowcol.Entry{
		{{Index: 0, Sign: +1}, {Index: 1, Sign: +1}, {Index: 4, Sign: +1}},
		{{Index: 0, Sign: +1}, {Index: 2, Sign: +1}},
		{{Index: 1, Sign: -1}, {Index: 2, Sign: +1}, {Index: 3, Sign: +1}, {Index: 4, Sign: -1}},
		{{Index: 3, Sign: -1}, {Index: 4, Sign: +1}},
		{{Index: 0, Sign: +1}, {Index: 1, Sign: +1}},
	}
	for i, entries := range rows {
		ok, err := rowcol.TryAddRow(s, i, entries)
		require.NoError(t, err)
		require.Truef(t, ok, "row %d", i)
	}
}
