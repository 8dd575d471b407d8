package core_test

import (
	"fmt"

	"github.com/vdhulst/netmat/core"
)

func ExampleStore_AttachArc() {
	s := core.Create()
	n0, _ := s.CreateMember()
	n1, _ := s.CreateMember()
	n2, _ := s.CreateMember()

	_, _ = s.AttachArc(n0, n1, +1, core.ElemRow, 0)
	_, _ = s.AttachArc(n1, n2, +1, core.ElemRow, 1)
	_, _ = s.AttachArc(n2, n0, +1, core.ElemRow, 2)

	fmt.Println(s.IsMinimal())
	// Output: true
}
