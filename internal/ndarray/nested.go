package ndarray

import (
	"fmt"
	"reflect"
)

// FromNested builds an array from arbitrarily nested slices or arrays whose
// leaves are T, inferring the shape. Sibling sequences must have equal
// lengths; a value of type T alone yields a scalar.
//
// Example:
//
//	a, err := ndarray.FromNested[int]([][]int{{1, 2, 3}, {4, 5, 6}}) // Shape: [2, 3]
func FromNested[T any](v any) (*NDArray[T], error) {
	n := nester[T]{elem: reflect.TypeFor[T](), rank: -1}
	if err := n.walk(reflect.ValueOf(v), 0); err != nil {
		return nil, err
	}

	a := newContiguous[T](n.shape)
	copy(a.buf.data, n.data)
	return a, nil
}

// nester flattens depth-first, fixing each axis length on first visit.
type nester[T any] struct {
	elem  reflect.Type
	shape Shape
	data  []T
	rank  int // depth of leaves; -1 until the first leaf
}

func (n *nester[T]) walk(v reflect.Value, depth int) error {
	for v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	if !v.IsValid() {
		return fmt.Errorf("%w: nil at depth %d", ErrElementType, depth)
	}

	seq := v.Kind() == reflect.Slice || v.Kind() == reflect.Array
	if v.Type().AssignableTo(n.elem) && !(seq && n.elem.Kind() == reflect.Interface) {
		return n.leaf(v, depth)
	}
	if !seq {
		return fmt.Errorf("%w: %s at depth %d, want %s", ErrElementType, v.Type(), depth, n.elem)
	}

	if n.rank >= 0 && depth >= n.rank {
		return fmt.Errorf("%w: sequence nested deeper than %d", ErrShapeMismatch, n.rank)
	}
	length := v.Len()
	switch {
	case depth == len(n.shape):
		n.shape = append(n.shape, length)
	case n.shape[depth] != length:
		return fmt.Errorf("%w: ragged nesting at depth %d: length %d, want %d",
			ErrShapeMismatch, depth, length, n.shape[depth])
	}

	for i := range length {
		if err := n.walk(v.Index(i), depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (n *nester[T]) leaf(v reflect.Value, depth int) error {
	switch {
	case n.rank < 0:
		if depth != len(n.shape) {
			return fmt.Errorf("%w: element at depth %d, want %d", ErrShapeMismatch, depth, len(n.shape))
		}
		n.rank = depth
	case depth != n.rank:
		return fmt.Errorf("%w: element at depth %d, want %d", ErrShapeMismatch, depth, n.rank)
	}

	// A nil interface element becomes T's zero value.
	x, _ := v.Interface().(T)
	n.data = append(n.data, x)
	return nil
}
