// Package ndflat flattens n-dimensional nested arrays into flat slices and
// provides the stride and index arithmetic that dense-array layouts rely on.
//
// What is inside?
//
//	strides     Order, Numel, Shape2Strides, Reverse, Strides2Offset, Iter
//	index       Vind2Bind, Bind2Vind, Ind2Sub, Sub2Ind with throw, normalize,
//	            wrap and clamp index modes
//	nested      Value[T], a typed nested array (leaf or node), plus builders,
//	            validation, shape inference and JSON
//	flatten     Flatten, Assign, By, AssignBy in lexicographic (row-major) or
//	            colexicographic (column-major) order; Flatten2D..Flatten5D
//	ndarray     Array[T], a strided view with virtual transpose and flips,
//	            and gonum/mat interop
//	cmd/ndflat  command line front end
//
// Quick example:
//
//	x := nested.From2D([][]int{{1, 2, 3}, {4, 5, 6}})
//	flatten.Flatten(x, []int{2, 2}, false) // [1 2 4 5]
//	flatten.Flatten(x, []int{2, 2}, true)  // [1 4 2 5]
//
// The shape passed to every flatten call crops the input: only the first
// shape[d] entries of each nesting level are read.
//
//	go get github.com/katalvlaran/ndflat
package ndflat
