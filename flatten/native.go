// SPDX-License-Identifier: MIT

package flatten

// Flatten2D flattens a native 2-D slice. shape crops x as in Flatten.
func Flatten2D[T any](x [][]T, shape [2]int, colexicographic bool) []T {
	s0, s1 := shape[0], shape[1]
	out := make([]T, 0, s0*s1)
	if colexicographic {
		for i1 := 0; i1 < s1; i1++ {
			for i0 := 0; i0 < s0; i0++ {
				out = append(out, x[i0][i1])
			}
		}

		return out
	}
	for i0 := 0; i0 < s0; i0++ {
		out = append(out, x[i0][:s1]...)
	}

	return out
}

// Flatten3D flattens a native 3-D slice. shape crops x as in Flatten.
func Flatten3D[T any](x [][][]T, shape [3]int, colexicographic bool) []T {
	s0, s1, s2 := shape[0], shape[1], shape[2]
	out := make([]T, 0, s0*s1*s2)
	if colexicographic {
		for i2 := 0; i2 < s2; i2++ {
			for i1 := 0; i1 < s1; i1++ {
				for i0 := 0; i0 < s0; i0++ {
					out = append(out, x[i0][i1][i2])
				}
			}
		}

		return out
	}
	for i0 := 0; i0 < s0; i0++ {
		for i1 := 0; i1 < s1; i1++ {
			out = append(out, x[i0][i1][:s2]...)
		}
	}

	return out
}

// Flatten4D flattens a native 4-D slice. shape crops x as in Flatten.
func Flatten4D[T any](x [][][][]T, shape [4]int, colexicographic bool) []T {
	s0, s1, s2, s3 := shape[0], shape[1], shape[2], shape[3]
	out := make([]T, 0, s0*s1*s2*s3)
	if colexicographic {
		for i3 := 0; i3 < s3; i3++ {
			for i2 := 0; i2 < s2; i2++ {
				for i1 := 0; i1 < s1; i1++ {
					for i0 := 0; i0 < s0; i0++ {
						out = append(out, x[i0][i1][i2][i3])
					}
				}
			}
		}

		return out
	}
	for i0 := 0; i0 < s0; i0++ {
		for i1 := 0; i1 < s1; i1++ {
			for i2 := 0; i2 < s2; i2++ {
				out = append(out, x[i0][i1][i2][:s3]...)
			}
		}
	}

	return out
}

// Flatten5D flattens a native 5-D slice. shape crops x as in Flatten.
func Flatten5D[T any](x [][][][][]T, shape [5]int, colexicographic bool) []T {
	s0, s1, s2, s3, s4 := shape[0], shape[1], shape[2], shape[3], shape[4]
	out := make([]T, 0, s0*s1*s2*s3*s4)
	if colexicographic {
		for i4 := 0; i4 < s4; i4++ {
			for i3 := 0; i3 < s3; i3++ {
				for i2 := 0; i2 < s2; i2++ {
					for i1 := 0; i1 < s1; i1++ {
						for i0 := 0; i0 < s0; i0++ {
							out = append(out, x[i0][i1][i2][i3][i4])
						}
					}
				}
			}
		}

		return out
	}
	for i0 := 0; i0 < s0; i0++ {
		for i1 := 0; i1 < s1; i1++ {
			for i2 := 0; i2 < s2; i2++ {
				for i3 := 0; i3 < s3; i3++ {
					out = append(out, x[i0][i1][i2][i3][:s4]...)
				}
			}
		}
	}

	return out
}
