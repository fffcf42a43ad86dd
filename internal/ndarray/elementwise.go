package ndarray

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/parallel"
)

// Elementwise combines a and b pairwise in logical order into a new
// contiguous array of the same shape. The shapes must be equal; no
// broadcasting is performed.
//
// f runs on the caller's goroutine, so a panic in f propagates to the
// caller. The parallel forms instead recover it as parallel.ErrWorkerPanic.
//
// Example:
//
//	c, err := ndarray.Elementwise(a, b, func(x, y int) int { return x + y })
func Elementwise[T any](a, b *NDArray[T], f func(x, y T) T) (*NDArray[T], error) {
	return ElementwiseErr(a, b, infallible(f))
}

// ElementwiseErr is Elementwise with a fallible combining function. The first
// error stops evaluation and is returned wrapped with its logical position.
func ElementwiseErr[T any](a, b *NDArray[T], f func(x, y T) (T, error)) (*NDArray[T], error) {
	if err := sameShape(a, b); err != nil {
		return nil, err
	}

	out := newContiguous[T](a.shape)
	if err := combineRange(out.buf.data, a, b, f, parallel.Range{Start: 0, End: len(out.buf.data)}); err != nil {
		return nil, err
	}
	return out, nil
}

// ElementwiseInParallel is Elementwise evaluated by parallel.DefaultConfig
// workers. For a deterministic f the result is identical to Elementwise.
func ElementwiseInParallel[T any](a, b *NDArray[T], f func(x, y T) T) (*NDArray[T], error) {
	return ElementwiseInParallelErr(a, b, infallible(f), parallel.DefaultConfig())
}

// ElementwiseInParallelWith is ElementwiseInParallel with an explicit config.
func ElementwiseInParallelWith[T any](a, b *NDArray[T], f func(x, y T) T, cfg parallel.Config) (*NDArray[T], error) {
	return ElementwiseInParallelErr(a, b, infallible(f), cfg)
}

// ElementwiseInParallelErr splits the logical positions with
// parallel.SplitRanges and evaluates each range in its own goroutine, writing
// a disjoint segment of the output. It returns after every worker finishes.
// If any worker fails or panics, no array is returned.
//
// f must be safe for concurrent use.
func ElementwiseInParallelErr[T any](a, b *NDArray[T], f func(x, y T) (T, error), cfg parallel.Config) (*NDArray[T], error) {
	if err := sameShape(a, b); err != nil {
		return nil, err
	}

	out := newContiguous[T](a.shape)
	dst := out.buf.data
	err := parallel.ForRanges(len(dst), cfg, func(r parallel.Range) error {
		return combineRange(dst, a, b, f, r)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// combineRange writes f(a[p], b[p]) into dst[p] for every logical p in r.
func combineRange[T any](dst []T, a, b *NDArray[T], f func(x, y T) (T, error), r parallel.Range) error {
	if r.Len() <= 0 {
		return nil
	}

	if a.IsContiguous() && b.IsContiguous() {
		src1, src2 := a.buf.data[a.offset:], b.buf.data[b.offset:]
		for p := r.Start; p < r.End; p++ {
			v, err := f(src1[p], src2[p])
			if err != nil {
				return fmt.Errorf("elementwise at logical position %d: %w", p, err)
			}
			dst[p] = v
		}
		return nil
	}

	ca, cb := a.cursorAt(r.Start), b.cursorAt(r.Start)
	for p := r.Start; p < r.End; p++ {
		v, err := f(a.buf.data[ca.pos], b.buf.data[cb.pos])
		if err != nil {
			return fmt.Errorf("elementwise at logical position %d: %w", p, err)
		}
		dst[p] = v
		ca.next()
		cb.next()
	}
	return nil
}

func sameShape[T any](a, b *NDArray[T]) error {
	if !a.shape.Equal(b.shape) {
		return fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, a.shape, b.shape)
	}
	return nil
}

func infallible[T any](f func(x, y T) T) func(x, y T) (T, error) {
	return func(x, y T) (T, error) {
		return f(x, y), nil
	}
}
