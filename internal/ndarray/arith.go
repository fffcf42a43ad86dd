package ndarray

import "github.com/born-ml/ndarray/internal/parallel"

// Numeric is the constraint for element types with built-in arithmetic.
//
// Types that merely share an underlying integer representation, such as
// float16.Float16, satisfy it but would get integer arithmetic; use
// Elementwise with an explicit function for those.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~complex64 | ~complex128
}

// Additive is the capability an aggregate element type provides to use
// AddValues and SubValues.
type Additive[T any] interface {
	Add(other T) T
	Sub(other T) T
}

// Add returns a + b elementwise.
func Add[T Numeric](a, b *NDArray[T]) (*NDArray[T], error) {
	return Elementwise(a, b, func(x, y T) T { return x + y })
}

// Sub returns a - b elementwise.
func Sub[T Numeric](a, b *NDArray[T]) (*NDArray[T], error) {
	return Elementwise(a, b, func(x, y T) T { return x - y })
}

// Mul returns a * b elementwise.
func Mul[T Numeric](a, b *NDArray[T]) (*NDArray[T], error) {
	return Elementwise(a, b, func(x, y T) T { return x * y })
}

// Div returns a / b elementwise. Integer division by zero panics.
func Div[T Numeric](a, b *NDArray[T]) (*NDArray[T], error) {
	return Elementwise(a, b, func(x, y T) T { return x / y })
}

// Square returns a * a elementwise.
func Square[T Numeric](a *NDArray[T]) *NDArray[T] {
	return Map(a, func(x T) T { return x * x })
}

// AddParallel is Add evaluated with ElementwiseInParallelWith.
func AddParallel[T Numeric](a, b *NDArray[T], cfg parallel.Config) (*NDArray[T], error) {
	return ElementwiseInParallelWith(a, b, func(x, y T) T { return x + y }, cfg)
}

// SubParallel is Sub evaluated with ElementwiseInParallelWith.
func SubParallel[T Numeric](a, b *NDArray[T], cfg parallel.Config) (*NDArray[T], error) {
	return ElementwiseInParallelWith(a, b, func(x, y T) T { return x - y }, cfg)
}

// MulParallel is Mul evaluated with ElementwiseInParallelWith.
func MulParallel[T Numeric](a, b *NDArray[T], cfg parallel.Config) (*NDArray[T], error) {
	return ElementwiseInParallelWith(a, b, func(x, y T) T { return x * y }, cfg)
}

// AddValues returns a.Add(b) elementwise for element types implementing Additive.
func AddValues[T Additive[T]](a, b *NDArray[T]) (*NDArray[T], error) {
	return Elementwise(a, b, func(x, y T) T { return x.Add(y) })
}

// SubValues returns a.Sub(b) elementwise for element types implementing Additive.
func SubValues[T Additive[T]](a, b *NDArray[T]) (*NDArray[T], error) {
	return Elementwise(a, b, func(x, y T) T { return x.Sub(y) })
}
