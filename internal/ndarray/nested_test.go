package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromNested(t *testing.T) {
	tests := []struct {
		name  string
		input any
		shape Shape
		data  []int
	}{
		{"scalar", 5, Shape{}, []int{5}},
		{"vector", []int{1, 2, 3, 4}, Shape{4}, []int{1, 2, 3, 4}},
		{"matrix", [][]int{{1, 2, 3}, {4, 5, 6}}, Shape{2, 3}, []int{1, 2, 3, 4, 5, 6}},
		{
			"rank 3",
			[][][]int{
				{{1, 2, 3}, {4, 5, 6}},
				{{7, 8, 9}, {10, 11, 12}},
			},
			Shape{2, 2, 3},
			[]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
		},
		{"arrays", [2][2]int{{1, 2}, {3, 4}}, Shape{2, 2}, []int{1, 2, 3, 4}},
		{"interfaces", []any{[]any{1, 2}, []int{3, 4}}, Shape{2, 2}, []int{1, 2, 3, 4}},
		{"empty", []int{}, Shape{0}, []int{}},
		{"empty rows", [][]int{{}, {}}, Shape{2, 0}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := FromNested[int](tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.shape, a.Shape())
			assert.Equal(t, tt.data, a.Data())
			assert.Equal(t, tt.shape.ComputeStrides(), a.Strides())
		})
	}
}

func TestFromNested_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input any
		err   error
	}{
		{"ragged", [][]int{{1, 2, 3}, {4, 5}}, ErrShapeMismatch},
		{"ragged after empty", [][]int{{}, {1}}, ErrShapeMismatch},
		{"mixed depth", []any{1, []int{2}}, ErrShapeMismatch},
		{"element before sequence", []any{[]int{1}, 2}, ErrShapeMismatch},
		{"wrong element", []any{"a", "b"}, ErrElementType},
		{"nil", nil, ErrElementType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromNested[int](tt.input)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestFromNested_AnyElements(t *testing.T) {
	a, err := FromNested[any]([]any{[]any{1, "x"}, []any{2.5, true}})
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 2}, a.Shape())
	assert.Equal(t, []any{1, "x", 2.5, true}, a.Data())
}

func TestFromNested_NilAnyElement(t *testing.T) {
	a, err := FromNested[any]([]any{1, nil})
	require.NoError(t, err)
	assert.Equal(t, Shape{2}, a.Shape())
	assert.Equal(t, []any{1, nil}, a.Data())

	_, err = FromNested[int]([]any{1, nil})
	assert.ErrorIs(t, err, ErrElementType)
}
