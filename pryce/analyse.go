package pryce

import "github.com/pryce-method/daestruct/lap"

// Analyse runs Pryce's Σ-method on problem: a highest-value transversal via
// lap.Solve, then the dual-minimising fixed point for the canonical offsets
// (c, d). Returns lap.ErrSingularStructure if problem.Sigma has no perfect
// matching.
//
// n == 0 is a valid, degenerate input (spec §7): Analyse returns an empty
// result rather than an error.
func Analyse(problem *InputProblem) (*AnalysisResult, error) {
	sol, err := lap.Solve(problem.Sigma)
	if err != nil {
		return nil, err
	}
	if err := sol.Verify(problem.Dimension); err != nil {
		return nil, err
	}

	c, d := FixedPoint(sol.RowAssign, problem.Sigma)

	return &AnalysisResult{
		RowAssignment: sol.RowAssign,
		ColAssignment: sol.ColAssign,
		C:             c,
		D:             d,
	}, nil
}
