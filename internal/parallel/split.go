package parallel

import "fmt"

// Range is a half-open interval [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of items in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// String formats the range as [start, end).
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}

// SplitRanges divides [0, total) into exactly splits contiguous ranges in
// ascending order. Sizes differ by at most one: the first total%splits ranges
// get the extra item. When splits > total the trailing ranges are empty.
//
// Example:
//
//	r, _ := parallel.SplitRanges(10, 3) // [0,4) [4,7) [7,10)
func SplitRanges(total, splits int) ([]Range, error) {
	if splits < 1 {
		return nil, fmt.Errorf("%w: splits must be positive, got %d", ErrInvalidSplits, splits)
	}
	if total < 0 {
		return nil, fmt.Errorf("%w: total must be non-negative, got %d", ErrInvalidSplits, total)
	}

	base, extra := total/splits, total%splits
	ranges := make([]Range, splits)
	start := 0
	for i := range ranges {
		size := base
		if i < extra {
			size++
		}
		ranges[i] = Range{Start: start, End: start + size}
		start += size
	}
	return ranges, nil
}
