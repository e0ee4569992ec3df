package flatten_test

import (
	"fmt"

	"github.com/katalvlaran/ndflat/flatten"
	"github.com/katalvlaran/ndflat/nested"
)

// ExampleFlatten crops the top-left 2×2 block and reads it in both orders.
func ExampleFlatten() {
	x := nested.From2D([][]int{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	})

	fmt.Println(flatten.Flatten(x, []int{2, 2}, false))
	fmt.Println(flatten.Flatten(x, []int{2, 2}, true))
	// Output:
	// [1 2 5 6]
	// [1 5 2 6]
}

// ExampleAssign writes into every other slot of an existing buffer.
func ExampleAssign() {
	x := nested.From2D([][]float64{{1, 2}, {3, 4}})
	out := make([]float64, 8)

	flatten.Assign(x, []int{2, 2}, true, out, 2, 1)
	fmt.Println(out)
	// Output:
	// [0 1 0 3 0 2 0 4]
}

// ExampleBy labels each element with its subscripts.
func ExampleBy() {
	x := nested.From3D([][][]string{{{"a", "b"}}, {{"c", "d"}}})
	label := func(v string, idx []int) string { return fmt.Sprintf("%s%v", v, idx) }

	fmt.Println(flatten.By(x, []int{2, 1, 2}, true, label))
	// Output:
	// [a[0 0 0] c[1 0 0] b[0 0 1] d[1 0 1]]
}

// ExampleFlatten3D uses native slices without building a nested.Value.
func ExampleFlatten3D() {
	x := [][][]int{{{1, 2}, {3, 4}}, {{5, 6}, {7, 8}}}

	fmt.Println(flatten.Flatten3D(x, [3]int{2, 2, 2}, true))
	// Output:
	// [1 5 3 7 2 6 4 8]
}
