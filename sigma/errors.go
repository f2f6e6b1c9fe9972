package sigma

import "errors"

// ErrOutOfRange indicates a row or column index outside [0, dimension).
// Insert returns this rather than panicking — out-of-range access is a
// programming error but callers are given the chance to surface it. Get
// reports an out-of-range cell as absent, and EachInRow and RowLen treat an
// out-of-range row as empty; none of the public methods panic.
var ErrOutOfRange = errors.New("sigma: index out of range")

// ErrBadDimension indicates a negative dimension was requested for New; n ==
// 0 is valid and denotes the empty problem.
var ErrBadDimension = errors.New("sigma: dimension must not be negative")
