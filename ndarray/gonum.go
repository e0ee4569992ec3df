// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ndflat/strides"
)

// ToDense copies a non-empty 2-D array into a gonum dense matrix.
// Views (transposed, flipped) are materialized in row-major order.
//
// Errors:
//   - ErrNotMatrix when a is not 2-D or has a zero extent.
func ToDense(a *Array[float64]) (*mat.Dense, error) {
	if len(a.shape) != 2 || a.shape[0] == 0 || a.shape[1] == 0 {
		return nil, fmt.Errorf("ToDense(%v): %w", a.shape, ErrNotMatrix)
	}

	return mat.NewDense(a.shape[0], a.shape[1], a.ToSlice(strides.RowMajor)), nil
}

// FromDense copies any gonum matrix into a new row-major 2-D array.
func FromDense(m mat.Matrix) *Array[float64] {
	r, c := m.Dims()
	raw := mat.DenseCopyOf(m).RawMatrix()
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		data = append(data, raw.Data[i*raw.Stride:i*raw.Stride+c]...)
	}
	shape := []int{r, c}

	return &Array[float64]{
		data:    data,
		shape:   shape,
		strides: strides.Shape2Strides(shape, strides.RowMajor),
		order:   strides.RowMajor,
		mode:    DefaultMode,
	}
}
