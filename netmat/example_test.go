package netmat_test

import (
	"fmt"

	"github.com/vdhulst/netmat/netmat"
)

func ExampleDecomp_TryAddCol() {
	d := netmat.Create()
	defer d.Free()

	_, _ = d.TryAddRow(0, nil)
	_, _ = d.TryAddRow(1, nil)
	_, _ = d.TryAddRow(2, nil)

	accepted, _ := d.TryAddCol(0, []netmat.Entry{
		{Index: 0, Sign: +1}, {Index: 1, Sign: +1}, {Index: 2, Sign: -1},
	})

	fmt.Println(accepted)
	// Output: true
}
