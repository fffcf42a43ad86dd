// Package ndarray provides the strided multi-dimensional array core: views
// over a shared buffer, slicing, transposition, elementwise evaluation, and
// materialization.
package ndarray

import (
	"fmt"
	"slices"
)

// buffer is the flat storage shared by every view derived from one array.
type buffer[T any] struct {
	data []T
}

// NDArray is a view over a shared buffer described by shape, strides, and
// offset. Slicing, indexing, and transposition return new views over the same
// buffer; Copy and the elementwise operations allocate a fresh one.
//
// Views alias: a Set through one view is visible through every view sharing
// its buffer. Use Copy to obtain independent storage.
type NDArray[T any] struct {
	buf    *buffer[T]
	shape  Shape
	stride []int
	offset int
}

// FromFlat creates a contiguous row-major array over a copy of data.
// len(data) must equal shape.NumElements().
//
// Example:
//
//	a, err := ndarray.FromFlat([]int{1, 2, 3, 4, 5, 6}, ndarray.Shape{2, 3})
func FromFlat[T any](data []T, shape Shape) (*NDArray[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrShapeMismatch, shape, shape.NumElements(), len(data))
	}

	a := newContiguous[T](shape)
	copy(a.buf.data, data)
	return a, nil
}

// FromScalar creates a 0-dimensional array holding v.
func FromScalar[T any](v T) *NDArray[T] {
	a := newContiguous[T](Shape{})
	a.buf.data[0] = v
	return a
}

// newContiguous allocates a zeroed array with canonical strides.
func newContiguous[T any](shape Shape) *NDArray[T] {
	return &NDArray[T]{
		buf:    &buffer[T]{data: make([]T, shape.NumElements())},
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		offset: 0,
	}
}

// view returns a new descriptor over the same buffer.
func (a *NDArray[T]) view(shape Shape, strides []int, offset int) *NDArray[T] {
	return &NDArray[T]{
		buf:    a.buf,
		shape:  shape,
		stride: strides,
		offset: offset,
	}
}

// Shape returns a copy of the array's shape.
func (a *NDArray[T]) Shape() Shape {
	return a.shape.Clone()
}

// Strides returns a copy of the per-axis buffer steps.
func (a *NDArray[T]) Strides() []int {
	return slices.Clone(a.stride)
}

// Offset returns the buffer position of logical index (0, ..., 0).
func (a *NDArray[T]) Offset() int {
	return a.offset
}

// Rank returns the number of axes.
func (a *NDArray[T]) Rank() int {
	return len(a.shape)
}

// NumElements returns the logical element count.
func (a *NDArray[T]) NumElements() int {
	return a.shape.NumElements()
}

// Data returns the whole shared buffer, not just the elements this view covers.
// For arrays produced by FromFlat, Copy, or an elementwise operation it is the
// logical content in row-major order.
//
// WARNING: Modifications to the returned slice are visible through every
// view sharing the buffer.
func (a *NDArray[T]) Data() []T {
	return a.buf.data
}

// SharesBuffer reports whether a and other view the same storage.
func (a *NDArray[T]) SharesBuffer(other *NDArray[T]) bool {
	return a.buf == other.buf
}

// IsContiguous reports whether the view's elements occupy a dense row-major
// run of the buffer starting at Offset. Axes of size 1 are ignored.
func (a *NDArray[T]) IsContiguous() bool {
	expected := 1
	for k := len(a.shape) - 1; k >= 0; k-- {
		if a.shape[k] == 1 {
			continue
		}
		if a.stride[k] != expected {
			return false
		}
		expected *= a.shape[k]
	}
	return true
}

// At returns the element at the given indices, one per axis.
// Negative indices count from the end of their axis.
//
// Example:
//
//	v, err := a.At(1, 2) // Row 1, column 2
func (a *NDArray[T]) At(indices ...int) (T, error) {
	pos, err := a.position(indices)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.buf.data[pos], nil
}

// Item returns the single element of a 0-dimensional array.
func (a *NDArray[T]) Item() (T, error) {
	if len(a.shape) != 0 {
		var zero T
		return zero, fmt.Errorf("%w: Item requires a scalar, got shape %v", ErrRankMismatch, a.shape)
	}
	return a.buf.data[a.offset], nil
}

// Set stores value at the given indices. The write goes to the shared buffer.
func (a *NDArray[T]) Set(value T, indices ...int) error {
	pos, err := a.position(indices)
	if err != nil {
		return err
	}
	a.buf.data[pos] = value
	return nil
}

// position validates a full multi-index and returns its buffer position.
func (a *NDArray[T]) position(indices []int) (int, error) {
	if len(indices) != len(a.shape) {
		return 0, fmt.Errorf("%w: expected %d indices, got %d", ErrRankMismatch, len(a.shape), len(indices))
	}

	pos := a.offset
	for k, idx := range indices {
		i, err := normalizeIndex(idx, a.shape[k], k)
		if err != nil {
			return 0, err
		}
		pos += i * a.stride[k]
	}
	return pos, nil
}

// normalizeIndex resolves a possibly negative index against an axis of size dim.
func normalizeIndex(idx, dim, axis int) (int, error) {
	i := idx
	if i < 0 {
		i += dim
	}
	if i < 0 || i >= dim {
		return 0, fmt.Errorf("%w: index %d for axis %d of size %d", ErrIndexOutOfBounds, idx, axis, dim)
	}
	return i, nil
}

// cursorAt returns a cursor at logical position pos (which must be in range).
func (a *NDArray[T]) cursorAt(pos int) *cursor {
	return newCursor(a.shape, a.stride, a.offset, pos)
}
