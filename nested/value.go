// SPDX-License-Identifier: MIT

// Package nested models arbitrarily nested arrays as a tagged union: every
// Value is either a leaf holding one element or a node holding an ordered
// list of child Values.
//
// The representation replaces "slice of any" trees: the element type is
// fixed by the type parameter, and leaf-vs-node is an explicit tag rather
// than a runtime type switch.
//
//	x := nested.From2D([][]int{{1, 2}, {3, 4}})
//	x.Len()                // 2
//	x.At(1).At(0).Scalar() // 3
package nested

import "fmt"

const (
	panicAtOnLeaf     = "nested: At called on a leaf"
	panicLenOnLeaf    = "nested: Len called on a leaf"
	panicScalarOnNode = "nested: Scalar called on a node"
)

// Value is one level of a nested array.
// The zero Value is an empty node.
type Value[T any] struct {
	items  []Value[T] // children when !leaf
	scalar T          // element when leaf
	leaf   bool       // tag
}

// Leaf wraps a single element.
func Leaf[T any](v T) Value[T] {
	return Value[T]{scalar: v, leaf: true}
}

// Of builds a node from child values. The slice is retained, not copied.
func Of[T any](items ...Value[T]) Value[T] {
	if items == nil {
		items = []Value[T]{}
	}

	return Value[T]{items: items}
}

// FromSlice builds a 1-D node whose children are leaves.
func FromSlice[T any](xs []T) Value[T] {
	items := make([]Value[T], len(xs))
	for i, v := range xs {
		items[i] = Leaf(v)
	}

	return Value[T]{items: items}
}

// From2D builds a 2-D node from a native nested slice.
func From2D[T any](xs [][]T) Value[T] {
	items := make([]Value[T], len(xs))
	for i, row := range xs {
		items[i] = FromSlice(row)
	}

	return Value[T]{items: items}
}

// From3D builds a 3-D node from a native nested slice.
func From3D[T any](xs [][][]T) Value[T] {
	items := make([]Value[T], len(xs))
	for i, m := range xs {
		items[i] = From2D(m)
	}

	return Value[T]{items: items}
}

// From4D builds a 4-D node from a native nested slice.
func From4D[T any](xs [][][][]T) Value[T] {
	items := make([]Value[T], len(xs))
	for i, m := range xs {
		items[i] = From3D(m)
	}

	return Value[T]{items: items}
}

// From5D builds a 5-D node from a native nested slice.
func From5D[T any](xs [][][][][]T) Value[T] {
	items := make([]Value[T], len(xs))
	for i, m := range xs {
		items[i] = From4D(m)
	}

	return Value[T]{items: items}
}

// IsLeaf reports whether v holds a single element.
func (v Value[T]) IsLeaf() bool {
	return v.leaf
}

// Len returns the number of children of a node. It panics on a leaf.
func (v Value[T]) Len() int {
	if v.leaf {
		panic(panicLenOnLeaf)
	}

	return len(v.items)
}

// At returns the i-th child of a node. It panics on a leaf and, like a
// slice, on an index outside [0, Len()).
func (v Value[T]) At(i int) Value[T] {
	if v.leaf {
		panic(panicAtOnLeaf)
	}

	return v.items[i]
}

// Scalar returns the element held by a leaf. It panics on a node.
func (v Value[T]) Scalar() T {
	if !v.leaf {
		panic(panicScalarOnNode)
	}

	return v.scalar
}

// ToAny converts v into plain Go values: leaves become T, nodes become []any.
func (v Value[T]) ToAny() any {
	if v.leaf {
		return v.scalar
	}
	out := make([]any, len(v.items))
	for i, it := range v.items {
		out[i] = it.ToAny()
	}

	return out
}

// String formats v like a nested slice literal, e.g. [[1 2] [3 4]].
func (v Value[T]) String() string {
	return fmt.Sprint(v.ToAny())
}
