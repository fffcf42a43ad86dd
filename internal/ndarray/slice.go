package ndarray

import (
	"fmt"
	"strconv"
)

// Spec selects along one axis: either a single index, which drops the axis,
// or a range with an optional step, which keeps it.
type Spec struct {
	single   bool
	index    int
	start    int
	end      int
	hasStart bool
	hasEnd   bool
	step     int
}

// Idx selects a single position; negative values count from the end.
func Idx(i int) Spec {
	return Spec{single: true, index: i, step: 1}
}

// All selects the whole axis.
func All() Spec {
	return Spec{step: 1}
}

// Span selects the half-open range [start, end).
func Span(start, end int) Spec {
	return Spec{start: start, end: end, hasStart: true, hasEnd: true, step: 1}
}

// From selects from start to the end of the axis (or to the beginning, with a
// negative step).
func From(start int) Spec {
	return Spec{start: start, hasStart: true, step: 1}
}

// To selects from the beginning of the axis up to end, exclusive.
func To(end int) Spec {
	return Spec{end: end, hasEnd: true, step: 1}
}

// Step returns s with the given step. A negative step walks the axis backward;
// unbounded ends then default to the last element and past the first.
//
// Example:
//
//	r, _ := a.Slice(ndarray.From(-1).Step(-1)) // a reversed
func (s Spec) Step(step int) Spec {
	s.step = step
	return s
}

// String formats s in start:end:step notation.
func (s Spec) String() string {
	if s.single {
		return strconv.Itoa(s.index)
	}
	var str string
	if s.hasStart {
		str = strconv.Itoa(s.start)
	}
	str += ":"
	if s.hasEnd {
		str += strconv.Itoa(s.end)
	}
	if s.step != 1 {
		str += ":" + strconv.Itoa(s.step)
	}
	return str
}

// resolve returns the first position, element count, and step that s selects
// on an axis of size dim.
func (s Spec) resolve(dim, axis int) (first, count, step int, err error) {
	if s.step == 0 {
		return 0, 0, 0, fmt.Errorf("%w: zero step on axis %d", ErrInvalidStep, axis)
	}
	if s.single {
		if s.step != 1 {
			return 0, 0, 0, fmt.Errorf("%w: step %d on single index for axis %d", ErrInvalidStep, s.step, axis)
		}
		first, err = normalizeIndex(s.index, dim, axis)
		return first, 1, 1, err
	}

	bound := func(v int) int {
		if v < 0 {
			return v + dim
		}
		return v
	}
	outOfBounds := func() error {
		return fmt.Errorf("%w: range %v for axis %d of size %d", ErrIndexOutOfBounds, s, axis, dim)
	}

	step = s.step
	if step > 0 {
		end := dim
		if s.hasStart {
			first = bound(s.start)
		}
		if s.hasEnd {
			end = bound(s.end)
		}
		if first < 0 || first > dim || end < 0 || end > dim {
			return 0, 0, 0, outOfBounds()
		}
		if end > first {
			count = (end - first + step - 1) / step
		}
		return first, count, step, nil
	}

	// Backward: first is inclusive, end exclusive and below first.
	first, end := dim-1, -1
	if s.hasStart {
		first = bound(s.start)
		if first < 0 || first >= dim {
			return 0, 0, 0, outOfBounds()
		}
	}
	if s.hasEnd {
		end = bound(s.end)
		if end < 0 || end > dim {
			return 0, 0, 0, outOfBounds()
		}
	}
	if first > end {
		count = (first - end - step - 1) / -step
	}
	return first, count, step, nil
}

// Slice returns a view selected by one spec per leading axis; trailing axes
// without a spec are kept whole. Single-index specs drop their axis, so
// indexing every axis yields a 0-dimensional view of one element.
// No elements are copied.
//
// Example:
//
//	a, _ := ndarray.FromFlat([]int{1, 2, 3, 4, 5, 6, 7, 8}, ndarray.Shape{2, 4})
//	b, _ := a.Slice(ndarray.All(), ndarray.Span(1, 3)) // [[2 3] [6 7]]
func (a *NDArray[T]) Slice(specs ...Spec) (*NDArray[T], error) {
	if len(specs) > len(a.shape) {
		return nil, fmt.Errorf("%w: %d specs for %d axes", ErrRankMismatch, len(specs), len(a.shape))
	}

	shape := make(Shape, 0, len(a.shape))
	strides := make([]int, 0, len(a.shape))
	offset := a.offset

	for k, s := range specs {
		start, count, step, err := s.resolve(a.shape[k], k)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			offset += start * a.stride[k]
		}
		if s.single {
			continue
		}
		shape = append(shape, count)
		strides = append(strides, a.stride[k]*step)
	}

	shape = append(shape, a.shape[len(specs):]...)
	strides = append(strides, a.stride[len(specs):]...)

	return a.view(shape, strides, offset), nil
}

// Index selects single positions along leading axes, dropping each indexed
// axis. It is shorthand for Slice with Idx specs.
func (a *NDArray[T]) Index(indices ...int) (*NDArray[T], error) {
	specs := make([]Spec, len(indices))
	for i, idx := range indices {
		specs[i] = Idx(idx)
	}
	return a.Slice(specs...)
}
