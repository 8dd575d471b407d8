package rowcol_test

import (
	"fmt"

	"github.com/vdhulst/netmat/core"
	"github.com/vdhulst/netmat/rowcol"
)

func ExampleTryAddCol() {
	s := core.Create()
	_, _ = rowcol.TryAddRow(s, 0, nil)
	_, _ = rowcol.TryAddRow(s, 1, nil)
	_, _ = rowcol.TryAddRow(s, 2, nil)

	accepted, _ := rowcol.TryAddCol(s, 0, []rowcol.Entry{
		{Index: 0, Sign: +1}, {Index: 1, Sign: +1}, {Index: 2, Sign: -1},
	})

	fmt.Println(accepted)
	// Output: true
}
