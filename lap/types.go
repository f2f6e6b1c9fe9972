package lap

// Solution is the result of solving a square LAP: a perfect matching plus
// dual potentials certifying its optimality.
type Solution struct {
	// RowAssign[i] is the column matched to row i.
	RowAssign []int
	// ColAssign[j] is the row matched to column j; the inverse permutation
	// of RowAssign.
	ColAssign []int
	// U, V are dual potentials satisfying U[i]-V[j] >= sigma(i,j) for every
	// stored cell, with equality on the matching.
	U, V []int64
	// Cost is the sum of matched weights, i.e. sum(sigma(i, RowAssign[i])).
	Cost int64
}

// Verify reports ErrDimensionMismatch if s was not computed for a matrix of
// dimension n. Callers that hold on to a Solution and later re-apply it
// against a Σ-matrix (e.g. compress re-reading RowAssign against the matrix
// it was solved over) use this to guard against reusing a stale Solution.
func (s *Solution) Verify(n int) error {
	if len(s.RowAssign) != n {
		return ErrDimensionMismatch
	}
	return nil
}
