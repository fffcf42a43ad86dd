package ndarray

// Copy materializes the view into fresh contiguous storage in logical
// row-major order, with canonical strides and zero offset. The result shares
// nothing with a.
//
// Example:
//
//	t, _ := a.Transposed(1, 0)
//	c := t.Copy() // c.Data() is t's content in row-major order
func (a *NDArray[T]) Copy() *NDArray[T] {
	out := newContiguous[T](a.shape)
	n := len(out.buf.data)
	if n == 0 {
		return out
	}

	if a.IsContiguous() {
		copy(out.buf.data, a.buf.data[a.offset:a.offset+n])
		return out
	}

	c := a.cursorAt(0)
	for p := range n {
		out.buf.data[p] = a.buf.data[c.pos]
		c.next()
	}
	return out
}

// Map applies f to every element in logical order and returns a contiguous
// array of the results.
func Map[T, U any](a *NDArray[T], f func(T) U) *NDArray[U] {
	out := newContiguous[U](a.shape)
	n := len(out.buf.data)
	if n == 0 {
		return out
	}

	c := a.cursorAt(0)
	for p := range n {
		out.buf.data[p] = f(a.buf.data[c.pos])
		c.next()
	}
	return out
}
