package netmat_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vdhulst/netmat/core"
	"github.com/vdhulst/netmat/netmat"
)

func TestDecompAcceptsAndExportsDigraph(t *testing.T) {
	d := netmat.Create()
	defer d.Free()

	ok, err := d.TryAddRow(0, nil)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = d.TryAddRow(1, nil)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = d.TryAddCol(0, []netmat.Entry{{Index: 0, Sign: +1}, {Index: 1, Sign: +1}})
	require.NoError(t, err)
	require.True(t, ok)

	g := d.CreateDigraph()
	require.Len(t, g.Arcs, 3)

	p := d.Partition()
	require.Equal(t, 1, p.NumComponents())
}

func TestDecompVerifyCycleDoesNotMutate(t *testing.T) {
	d := netmat.Create()
	defer d.Free()

	ok, err := d.TryAddRow(0, nil)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = d.VerifyCycle(core.ElemCol, 0, []netmat.Entry{{Index: 0, Sign: +1}})
	require.NoError(t, err)
	require.True(t, ok)

	ok2, err2 := d.TryAddCol(0, []netmat.Entry{{Index: 0, Sign: +1}})
	require.NoError(t, err2)
	require.True(t, ok2)
}
