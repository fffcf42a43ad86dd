package ndarray

import "fmt"

// RealIndex maps a logical (row-major) position in [0, NumElements()) to its
// position in the shared buffer returned by Data.
func (a *NDArray[T]) RealIndex(pos int) (int, error) {
	if n := a.NumElements(); pos < 0 || pos >= n {
		return 0, fmt.Errorf("%w: logical position %d for %d elements", ErrIndexOutOfBounds, pos, n)
	}
	return realIndex(a.shape, a.stride, a.offset, pos), nil
}

// realIndex decomposes pos into a multi-index, least significant axis first,
// and applies strides and offset. pos must be in range.
func realIndex(shape Shape, strides []int, offset, pos int) int {
	phys := offset
	for k := len(shape) - 1; k >= 0; k-- {
		d := shape[k]
		phys += (pos % d) * strides[k]
		pos /= d
	}
	return phys
}

// cursor walks real indices in logical order without re-dividing per element.
// Its pos always equals realIndex of the current logical position.
type cursor struct {
	shape  Shape
	stride []int
	index  []int
	pos    int
}

// newCursor positions a cursor at logical position start, which must be in range.
func newCursor(shape Shape, strides []int, offset, start int) *cursor {
	c := &cursor{
		shape:  shape,
		stride: strides,
		index:  make([]int, len(shape)),
		pos:    offset,
	}
	for k := len(shape) - 1; k >= 0; k-- {
		c.index[k] = start % shape[k]
		c.pos += c.index[k] * strides[k]
		start /= shape[k]
	}
	return c
}

// next advances to the following logical position, carrying across axes.
func (c *cursor) next() {
	for k := len(c.shape) - 1; k >= 0; k-- {
		c.index[k]++
		c.pos += c.stride[k]
		if c.index[k] < c.shape[k] {
			return
		}
		c.pos -= c.index[k] * c.stride[k]
		c.index[k] = 0
	}
}
