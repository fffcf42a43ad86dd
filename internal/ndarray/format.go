package ndarray

import (
	"fmt"
	"strings"
)

// String formats the view's logical content as nested brackets, one row per
// line, with blank lines separating higher-rank blocks.
//
//	[[1 2 3]
//	 [4 5 6]]
func (a *NDArray[T]) String() string {
	var sb strings.Builder
	var c *cursor
	if a.NumElements() > 0 {
		c = a.cursorAt(0)
	}
	a.format(&sb, 0, c)
	return sb.String()
}

func (a *NDArray[T]) format(sb *strings.Builder, axis int, c *cursor) {
	rank := len(a.shape)
	if axis == rank {
		fmt.Fprint(sb, a.buf.data[c.pos])
		c.next()
		return
	}

	sb.WriteByte('[')
	for i := 0; i < a.shape[axis]; i++ {
		if i > 0 {
			if axis == rank-1 {
				sb.WriteByte(' ')
			} else {
				sb.WriteString(strings.Repeat("\n", rank-axis-1))
				sb.WriteString(strings.Repeat(" ", axis+1))
			}
		}
		a.format(sb, axis+1, c)
	}
	sb.WriteByte(']')
}

// Describe returns a one-line summary of the view's layout.
func (a *NDArray[T]) Describe() string {
	return fmt.Sprintf("NDArray[%T]%v strides=%v offset=%d", *new(T), a.shape, a.stride, a.offset)
}
