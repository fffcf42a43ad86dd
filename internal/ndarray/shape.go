package ndarray

import (
	"fmt"
	"slices"
)

// Shape holds the per-axis sizes of an array. The empty shape is a scalar
// and has one element; a zero on any axis means the array is empty.
type Shape []int

// NumElements returns the product of the axis sizes (1 for a scalar).
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate rejects negative axis sizes.
func (s Shape) Validate() error {
	for axis, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: axis %d has negative size %d", ErrShapeMismatch, axis, dim)
		}
	}
	return nil
}

// Equal reports whether both shapes have the same axes and sizes.
func (s Shape) Equal(other Shape) bool {
	return slices.Equal(s, other)
}

// Clone returns an independent copy, non-nil even for a scalar shape.
func (s Shape) Clone() Shape {
	return append(make(Shape, 0, len(s)), s...)
}

// ComputeStrides returns canonical row-major strides: the last axis steps by
// one element and each earlier axis by the size of everything after it.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	step := 1
	for k := len(s) - 1; k >= 0; k-- {
		strides[k] = step
		step *= s[k]
	}
	return strides
}
