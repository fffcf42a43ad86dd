package ndarray

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustFlat[T any](t *testing.T, data []T, shape Shape) *NDArray[T] {
	t.Helper()
	a, err := FromFlat(data, shape)
	require.NoError(t, err)
	return a
}

func arange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// Point is an aggregate element type with its own additive structure.
type Point struct {
	X, Y float32
}

func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }
func (p Point) Sub(o Point) Point { return Point{p.X - o.X, p.Y - o.Y} }
