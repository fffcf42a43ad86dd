package ndarray

import "errors"

// Errors returned by array construction, indexing, and elementwise operations.
// Returned errors wrap one of these; test with errors.Is.
var (
	ErrShapeMismatch      = errors.New("shape mismatch")
	ErrRankMismatch       = errors.New("rank mismatch")
	ErrIndexOutOfBounds   = errors.New("index out of bounds")
	ErrInvalidStep        = errors.New("invalid slice step")
	ErrInvalidPermutation = errors.New("invalid permutation")
	ErrElementType        = errors.New("unexpected element type")
)
