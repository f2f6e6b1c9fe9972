package pryce

import "github.com/pryce-method/daestruct/sigma"

// InputProblem is the caller-built description of a DAE's structure: a
// dimension and a populated Σ-matrix. The matrix is read-only once analysis
// begins (spec §3, "Lifecycle").
type InputProblem struct {
	Dimension int
	Sigma     *sigma.Matrix
}

// NewInputProblem allocates an InputProblem with a fresh n×n, all-absent
// Σ-matrix ready for the caller to populate via Sigma.Insert.
func NewInputProblem(n int) (*InputProblem, error) {
	m, err := sigma.New(n)
	if err != nil {
		return nil, err
	}
	return &InputProblem{Dimension: n, Sigma: m}, nil
}

// InflatedMap records, for each compressible component folded into an
// inflated result, where its private rows/columns landed. Rows/Cols are
// reserved for non-component bookkeeping — unused by the core (spec §9,
// open question: "treat as reserved; do not populate").
type InflatedMap struct {
	Rows, Cols []int

	// ComponentRows[k] / ComponentCols[k] are the row/col offset at which
	// the k-th compressible instance's private block was materialised.
	ComponentRows []int
	ComponentCols []int
}

// AnalysisResult holds the outcome of a Pryce analysis: the assignment, the
// canonical offsets, and (for compressed analyses) the inflation bookkeeping
// needed to translate component-local indices back into the full problem.
type AnalysisResult struct {
	RowAssignment []int
	ColAssignment []int

	C, D []int

	Inflated InflatedMap
}

// ExtractedEquation maps a component-local equation index eq back into the
// inflated result's row space, for the k-th compressible instance.
func (r *AnalysisResult) ExtractedEquation(eq, k int) int {
	return r.Inflated.ComponentRows[k] + eq
}

// ExtractedVariable maps a component-local variable index v back into the
// inflated result's column space, for the k-th compressible instance.
func (r *AnalysisResult) ExtractedVariable(v, k int) int {
	return r.Inflated.ComponentCols[k] + v
}
