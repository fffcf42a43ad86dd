package ndarray

import "fmt"

// Transposed returns a view whose axis i is axis perm[i] of a. perm must name
// every axis exactly once. Buffer and offset are shared; no elements move.
//
// Example:
//
//	a, _ := ndarray.FromFlat([]int{1, 2, 3, 4, 5, 6}, ndarray.Shape{2, 3})
//	t, _ := a.Transposed(1, 0) // Shape: [3, 2]
func (a *NDArray[T]) Transposed(perm ...int) (*NDArray[T], error) {
	if len(perm) != len(a.shape) {
		return nil, fmt.Errorf("%w: permutation %v for %d axes", ErrRankMismatch, perm, len(a.shape))
	}

	seen := make([]bool, len(perm))
	shape := make(Shape, len(perm))
	strides := make([]int, len(perm))
	for i, axis := range perm {
		if axis < 0 || axis >= len(perm) || seen[axis] {
			return nil, fmt.Errorf("%w: %v is not a permutation of 0..%d", ErrInvalidPermutation, perm, len(perm)-1)
		}
		seen[axis] = true
		shape[i] = a.shape[axis]
		strides[i] = a.stride[axis]
	}

	return a.view(shape, strides, a.offset), nil
}

// T returns the view with its axes reversed.
func (a *NDArray[T]) T() *NDArray[T] {
	n := len(a.shape)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = n - 1 - i
	}
	t, _ := a.Transposed(perm...)
	return t
}

// InversePermutation returns q such that q[perm[i]] = i. perm must be valid.
func InversePermutation(perm []int) []int {
	inv := make([]int, len(perm))
	for i, axis := range perm {
		inv[axis] = i
	}
	return inv
}
