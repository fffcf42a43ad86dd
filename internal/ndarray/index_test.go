package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFlat(t *testing.T) {
	a := mustFlat(t, []int{1, 2, 3, 4, 5, 6}, Shape{2, 3})

	assert.Equal(t, Shape{2, 3}, a.Shape())
	assert.Equal(t, []int{3, 1}, a.Strides())
	assert.Equal(t, 0, a.Offset())
	assert.Equal(t, 2, a.Rank())
	assert.Equal(t, 6, a.NumElements())
	assert.True(t, a.IsContiguous())
}

func TestFromFlat_CopiesInput(t *testing.T) {
	src := []int{1, 2, 3}
	a := mustFlat(t, src, Shape{3})
	src[0] = 100

	assert.Equal(t, []int{1, 2, 3}, a.Data())
}

func TestFromFlat_ShapeMismatch(t *testing.T) {
	_, err := FromFlat([]int{1, 2, 3}, Shape{2, 2})
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = FromFlat([]int{}, Shape{-1})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestFromScalar(t *testing.T) {
	a := FromScalar(0)

	assert.Equal(t, Shape{}, a.Shape())
	assert.Equal(t, []int{0}, a.Data())
	v, err := a.Item()
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}

func TestIndex(t *testing.T) {
	a := mustFlat(t, []int{
		3, 30,
		2, 20,
		1, 10,
	}, Shape{3, 2})

	b, err := a.Index(1, 1)
	require.NoError(t, err)

	realIndex, err := b.RealIndex(0)
	require.NoError(t, err)

	assert.Equal(t, Shape{}, b.Shape())
	assert.Equal(t, 3, realIndex)
	assert.Equal(t, 20, b.Data()[realIndex])
	assert.True(t, b.SharesBuffer(a))
}

func TestRealIndex_OutOfBounds(t *testing.T) {
	a := mustFlat(t, arange(6), Shape{2, 3})

	_, err := a.RealIndex(6)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)

	_, err = a.RealIndex(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
}

func TestRealIndex_Transposed(t *testing.T) {
	a := mustFlat(t, arange(6), Shape{2, 3})
	tr, err := a.Transposed(1, 0)
	require.NoError(t, err)

	want := []int{0, 3, 1, 4, 2, 5}
	for p, w := range want {
		got, err := tr.RealIndex(p)
		require.NoError(t, err)
		assert.Equal(t, w, got, "logical position %d", p)
	}
}

// The incremental cursor must agree with realIndex at every position.
func TestCursorMatchesRealIndex(t *testing.T) {
	a := mustFlat(t, arange(60), Shape{3, 4, 5})
	views := []*NDArray[int]{a, a.T()}

	s, err := a.Slice(Span(2, 0).Step(-1), All().Step(3), From(1).Step(2))
	require.NoError(t, err)
	views = append(views, s)

	p, err := a.Transposed(2, 0, 1)
	require.NoError(t, err)
	views = append(views, p)

	for _, v := range views {
		n := v.NumElements()
		c := v.cursorAt(0)
		for pos := 0; pos < n; pos++ {
			want, err := v.RealIndex(pos)
			require.NoError(t, err)
			require.Equal(t, want, c.pos, "view %s position %d", v.Describe(), pos)

			mid := v.cursorAt(pos)
			require.Equal(t, want, mid.pos)
			c.next()
		}
	}
}

func TestAt(t *testing.T) {
	a := mustFlat(t, []int{3, 30, 2, 20, 1, 10}, Shape{3, 2})

	v, err := a.At(2, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = a.At(-1, -1)
	require.NoError(t, err)
	assert.Equal(t, 10, v)

	_, err = a.At(1)
	assert.ErrorIs(t, err, ErrRankMismatch)

	_, err = a.At(3, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)

	_, err = a.At(0, -3)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
}

func TestItem_NotScalar(t *testing.T) {
	a := mustFlat(t, arange(3), Shape{3})
	_, err := a.Item()
	assert.ErrorIs(t, err, ErrRankMismatch)
}

func TestSet_VisibleThroughAliases(t *testing.T) {
	a := mustFlat(t, arange(6), Shape{2, 3})
	row, err := a.Index(1)
	require.NoError(t, err)

	require.NoError(t, row.Set(99, 0))

	v, err := a.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 99, v)

	tr := a.T()
	v, err = tr.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 99, v)

	assert.ErrorIs(t, row.Set(1, 5), ErrIndexOutOfBounds)
}

func TestIsContiguous(t *testing.T) {
	a := mustFlat(t, arange(24), Shape{2, 3, 4})
	assert.True(t, a.IsContiguous())
	assert.False(t, a.T().IsContiguous())

	row, err := a.Index(1)
	require.NoError(t, err)
	assert.True(t, row.IsContiguous())

	cols, err := a.Slice(All(), All(), Span(0, 2))
	require.NoError(t, err)
	assert.False(t, cols.IsContiguous())

	single, err := a.Slice(Span(1, 2))
	require.NoError(t, err)
	assert.True(t, single.IsContiguous())
}
