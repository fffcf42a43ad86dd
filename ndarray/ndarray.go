// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/born-ml/ndarray/internal/parallel"
)

// Type aliases for public API

// NDArray is a generic strided view over a shared buffer.
//
// Example:
//
//	a, _ := ndarray.FromFlat([]int{3, 30, 2, 20, 1, 10}, ndarray.Shape{3, 2})
//	b, _ := a.Index(1, 1) // 0-dimensional view of 20
type NDArray[T any] = ndarray.NDArray[T]

// Shape represents per-axis sizes. Example: Shape{2, 3} is a 2×3 array.
type Shape = ndarray.Shape

// Spec selects along one axis in Slice. Build with Idx, All, Span, From, To.
type Spec = ndarray.Spec

// Numeric is the constraint for element types with built-in arithmetic.
type Numeric = ndarray.Numeric

// Additive is the capability aggregate element types implement for AddValues.
type Additive[T any] = ndarray.Additive[T]

// ParallelConfig controls parallel elementwise evaluation.
type ParallelConfig = parallel.Config

// Range is a half-open interval [Start, End) produced by SplitRanges.
type Range = parallel.Range

// Errors. Test with errors.Is.
var (
	ErrShapeMismatch      = ndarray.ErrShapeMismatch
	ErrRankMismatch       = ndarray.ErrRankMismatch
	ErrIndexOutOfBounds   = ndarray.ErrIndexOutOfBounds
	ErrInvalidStep        = ndarray.ErrInvalidStep
	ErrInvalidPermutation = ndarray.ErrInvalidPermutation
	ErrElementType        = ndarray.ErrElementType
	ErrInvalidSplits      = parallel.ErrInvalidSplits
	ErrWorkerPanic        = parallel.ErrWorkerPanic
)

// Creation functions

// FromFlat creates an array over a copy of data with the given shape.
//
// Example:
//
//	a, err := ndarray.FromFlat([]int{1, 2, 3, 4, 5, 6}, ndarray.Shape{2, 3})
func FromFlat[T any](data []T, shape Shape) (*NDArray[T], error) {
	return ndarray.FromFlat(data, shape)
}

// FromScalar creates a 0-dimensional array.
func FromScalar[T any](v T) *NDArray[T] {
	return ndarray.FromScalar(v)
}

// FromNested creates an array from nested slices, inferring the shape.
//
// Example:
//
//	a, err := ndarray.FromNested[int]([][]int{{1, 2, 3}, {4, 5, 6}})
func FromNested[T any](v any) (*NDArray[T], error) {
	return ndarray.FromNested[T](v)
}

// MustFromFlat is FromFlat that panics on error.
func MustFromFlat[T any](data []T, shape Shape) *NDArray[T] {
	a, err := ndarray.FromFlat(data, shape)
	if err != nil {
		panic(err)
	}
	return a
}

// MustFromNested is FromNested that panics on error.
func MustFromNested[T any](v any) *NDArray[T] {
	a, err := ndarray.FromNested[T](v)
	if err != nil {
		panic(err)
	}
	return a
}

// Slice specs

// Idx selects a single position, dropping the axis.
func Idx(i int) Spec { return ndarray.Idx(i) }

// All selects a whole axis.
func All() Spec { return ndarray.All() }

// Span selects [start, end).
func Span(start, end int) Spec { return ndarray.Span(start, end) }

// From selects from start to the end of the axis.
func From(start int) Spec { return ndarray.From(start) }

// To selects from the beginning of the axis up to end.
func To(end int) Spec { return ndarray.To(end) }

// InversePermutation returns the permutation undoing perm.
func InversePermutation(perm []int) []int { return ndarray.InversePermutation(perm) }

// Elementwise functions

// Elementwise combines two same-shape arrays pairwise into a new array.
//
// Example:
//
//	c, err := ndarray.Elementwise(a, b, func(x, y int) int { return x + y })
func Elementwise[T any](a, b *NDArray[T], f func(x, y T) T) (*NDArray[T], error) {
	return ndarray.Elementwise(a, b, f)
}

// ElementwiseErr is Elementwise with a fallible combining function.
func ElementwiseErr[T any](a, b *NDArray[T], f func(x, y T) (T, error)) (*NDArray[T], error) {
	return ndarray.ElementwiseErr(a, b, f)
}

// ElementwiseInParallel is Elementwise evaluated by a pool of goroutines.
func ElementwiseInParallel[T any](a, b *NDArray[T], f func(x, y T) T) (*NDArray[T], error) {
	return ndarray.ElementwiseInParallel(a, b, f)
}

// ElementwiseInParallelWith is ElementwiseInParallel with an explicit config.
func ElementwiseInParallelWith[T any](a, b *NDArray[T], f func(x, y T) T, cfg ParallelConfig) (*NDArray[T], error) {
	return ndarray.ElementwiseInParallelWith(a, b, f, cfg)
}

// ElementwiseInParallelErr is the parallel form of ElementwiseErr.
func ElementwiseInParallelErr[T any](a, b *NDArray[T], f func(x, y T) (T, error), cfg ParallelConfig) (*NDArray[T], error) {
	return ndarray.ElementwiseInParallelErr(a, b, f, cfg)
}

// Map applies f to every element in logical order.
func Map[T, U any](a *NDArray[T], f func(T) U) *NDArray[U] {
	return ndarray.Map(a, f)
}

// Add returns a + b elementwise.
func Add[T Numeric](a, b *NDArray[T]) (*NDArray[T], error) { return ndarray.Add(a, b) }

// Sub returns a - b elementwise.
func Sub[T Numeric](a, b *NDArray[T]) (*NDArray[T], error) { return ndarray.Sub(a, b) }

// Mul returns a * b elementwise.
func Mul[T Numeric](a, b *NDArray[T]) (*NDArray[T], error) { return ndarray.Mul(a, b) }

// Div returns a / b elementwise.
func Div[T Numeric](a, b *NDArray[T]) (*NDArray[T], error) { return ndarray.Div(a, b) }

// Square returns a * a elementwise.
func Square[T Numeric](a *NDArray[T]) *NDArray[T] { return ndarray.Square(a) }

// AddParallel is Add evaluated in parallel.
func AddParallel[T Numeric](a, b *NDArray[T], cfg ParallelConfig) (*NDArray[T], error) {
	return ndarray.AddParallel(a, b, cfg)
}

// SubParallel is Sub evaluated in parallel.
func SubParallel[T Numeric](a, b *NDArray[T], cfg ParallelConfig) (*NDArray[T], error) {
	return ndarray.SubParallel(a, b, cfg)
}

// MulParallel is Mul evaluated in parallel.
func MulParallel[T Numeric](a, b *NDArray[T], cfg ParallelConfig) (*NDArray[T], error) {
	return ndarray.MulParallel(a, b, cfg)
}

// AddValues adds element types implementing Additive.
func AddValues[T Additive[T]](a, b *NDArray[T]) (*NDArray[T], error) { return ndarray.AddValues(a, b) }

// SubValues subtracts element types implementing Additive.
func SubValues[T Additive[T]](a, b *NDArray[T]) (*NDArray[T], error) { return ndarray.SubValues(a, b) }

// Utility functions

// SplitRanges divides [0, total) into splits contiguous ranges whose sizes
// differ by at most one.
//
// Example:
//
//	ranges, _ := ndarray.SplitRanges(70, 11) // 11 ranges of 6 or 7
func SplitRanges(total, splits int) ([]Range, error) {
	return parallel.SplitRanges(total, splits)
}

// DefaultParallelConfig returns the environment-derived parallel config.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}
