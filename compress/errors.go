package compress

import "errors"

// ErrInvalidDimensions indicates a builder was constructed with p < 0 or
// q <= 0: a compressible component exports at least one public variable.
var ErrInvalidDimensions = errors.New("compress: p must be >= 0 and q must be > 0")

// ErrInvalidIncidenceIndex indicates set_public_incidence/set_private_incidence
// was called with an index outside the component's column convention (spec
// §4.4.1: "0..q-1 public, q..q+p-1 private") or with i >= p+1.
var ErrInvalidIncidenceIndex = errors.New("compress: incidence index out of range for component")

// ErrBuilderSealed indicates Build was called twice, or a set_*_incidence
// call arrived after Build: both are no-ops per spec §4.4.1, surfaced here
// as an explicit sentinel so callers (and tests) can distinguish "ignored
// because sealed" from "silently accepted".
var ErrBuilderSealed = errors.New("compress: builder already sealed by Build")

// ErrInstancesNotSorted indicates a Compression's instances were not given
// in strictly increasing SurrogateRow order, which the defragment-copy in
// AnalyseCompressed relies on (spec §4.4.2).
var ErrInstancesNotSorted = errors.New("compress: compression instances must be sorted by surrogate row")

// ErrSurrogateRowOutOfRange indicates an instance's SurrogateRow does not
// fall within the outer problem's row range.
var ErrSurrogateRowOutOfRange = errors.New("compress: surrogate row out of range for outer problem")
