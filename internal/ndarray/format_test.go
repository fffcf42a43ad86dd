package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	matrix := mustFlat(t, []int{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	cube := mustFlat(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, Shape{2, 2, 3})
	reversed, err := mustFlat(t, []int{1, 2, 3, 4}, Shape{4}).Slice(All().Step(-1))
	require.NoError(t, err)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"scalar", FromScalar(0).String(), "0"},
		{"vector", mustFlat(t, []int{1, 2, 3, 4}, Shape{4}).String(), "[1 2 3 4]"},
		{"matrix", matrix.String(), "[[1 2 3]\n [4 5 6]]"},
		{"transposed", matrix.T().String(), "[[1 4]\n [2 5]\n [3 6]]"},
		{"rank 3", cube.String(), "[[[1 2 3]\n  [4 5 6]]\n\n [[7 8 9]\n  [10 11 12]]]"},
		{"reversed", reversed.String(), "[4 3 2 1]"},
		{"empty", mustFlat(t, []int{}, Shape{0}).String(), "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestDescribe(t *testing.T) {
	a := mustFlat(t, arange(6), Shape{2, 3})
	assert.Equal(t, "NDArray[int][3 2] strides=[1 3] offset=0", a.T().Describe())
}
