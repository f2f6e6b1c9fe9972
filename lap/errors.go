package lap

import "errors"

// ErrSingularStructure is returned by Solve when the Σ-matrix has no perfect
// matching among its stored (finite) entries — the DAE is structurally
// singular. Fatal: callers treat this as unrecoverable (spec §2, §7).
var ErrSingularStructure = errors.New("lap: structurally singular, no perfect matching")

// ErrDimensionMismatch is returned by Solution.Verify when a Solution is
// checked against a dimension other than the one it was computed for.
var ErrDimensionMismatch = errors.New("lap: dimension mismatch")
