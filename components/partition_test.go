package components_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vdhulst/netmat/components"
	"github.com/vdhulst/netmat/core"
	"github.com/vdhulst/netmat/rowcol"
)

func TestBuildSingleComponent(t *testing.T) {
	s := core.Create()
	_, err := rowcol.TryAddRow(s, 0, nil)
	require.NoError(t, err)
	_, err = rowcol.TryAddRow(s, 1, nil)
	require.NoError(t, err)

	ok, err := rowcol.TryAddCol(s, 0, []rowcol.Entry{{Index: 0, Sign: +1}, {Index: 1, Sign: +1}})
	require.NoError(t, err)
	require.True(t, ok)

	p := components.Build(s, 2, 1)
	require.Equal(t, 1, p.NumComponents())
	require.ElementsMatch(t, []int{0, 1}, p.Rows(0))
	require.ElementsMatch(t, []int{0}, p.Cols(0))
}

func TestBuildDisjointComponents(t *testing.T) {
	s := core.Create()
	_, err := rowcol.TryAddRow(s, 0, nil)
	require.NoError(t, err)
	_, err = rowcol.TryAddRow(s, 1, nil)
	require.NoError(t, err)

	p := components.Build(s, 2, 0)
	require.Equal(t, 2, p.NumComponents())
}

func TestBuildUnplacedRowNotInAnyComponent(t *testing.T) {
	s := core.Create()
	_, err := rowcol.TryAddRow(s, 0, nil)
	require.NoError(t, err)

	p := components.Build(s, 2, 0)
	require.Equal(t, -1, p.ComponentOf[1])
}
