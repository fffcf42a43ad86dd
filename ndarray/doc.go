// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides generic strided multi-dimensional arrays.
//
// # Overview
//
// An NDArray[T] is a view: a shared flat buffer read through a shape, per-axis
// strides, and an offset. This package provides:
//   - Construction from flat slices, scalars, and nested slices
//   - Zero-copy slicing (negative indices, steps, reversal) and transposition
//   - Elementwise binary operations, serial and parallel
//   - Copy, which materializes any view into contiguous storage
//
// # Basic Usage
//
//	import "github.com/born-ml/ndarray/ndarray"
//
//	func main() {
//	    a, _ := ndarray.FromNested[int]([][]int{{1, 2, 3}, {4, 5, 6}})
//	    b, _ := ndarray.FromFlat([]int{1, 2, 3, 4, 5, 6}, ndarray.Shape{2, 3})
//
//	    c, _ := ndarray.Add(a, b)            // [[2 4 6] [8 10 12]]
//	    t, _ := a.Transposed(1, 0)           // view, shape [3 2]
//	    r, _ := a.Slice(ndarray.All(), ndarray.All().Step(-1))
//	    fmt.Println(c, t.Copy(), r)
//	}
//
// # Element Types
//
// The engine places no constraint on T. Elementwise takes the combining
// function explicitly, so aggregate or non-numeric types work:
//
//	sum, _ := ndarray.Elementwise(a, b, func(x, y Point) Point { return x.Add(y) })
//
// Add, Sub, Mul, and Div are shorthands for Numeric types; AddValues and
// SubValues serve types implementing Additive.
//
// # Aliasing
//
// Slice, Index, and Transposed share the source buffer. Set writes through to
// that buffer and the change is visible through every view sharing it. Copy
// returns independent storage.
//
// # Parallelism
//
// ElementwiseInParallel splits the logical positions into contiguous ranges
// (see SplitRanges) and evaluates each in its own goroutine. The worker count
// defaults to the CPU count and can be set with NDARRAY_NUM_WORKERS; arrays
// smaller than NDARRAY_MIN_CHUNK elements per worker are evaluated serially.
// Results are identical to Elementwise for any deterministic function.
package ndarray
