package compress

import (
	"github.com/pryce-method/daestruct/lap"
	"github.com/pryce-method/daestruct/pryce"
	"github.com/pryce-method/daestruct/sigma"
)

// AnalyseCompressed runs a Pryce analysis over problem — an outer problem
// whose Σ-matrix already has every instance's surrogate row inserted via
// CompressibleInstance.InsertIncidence — and inflates the result back out
// over the original, uncompressed variable space (spec §4.4.2).
//
// Surrogate rows are removed and replaced by each component's own p+1
// equations and p fresh private variables (columns appended after the
// outer problem's own n columns: no outer column is ever removed, since
// only rows stand in for a component). With zero instances this reduces
// exactly to pryce.Analyse on problem (testable property 6, "compression
// equivalence").
//
// Translated from the original copy_defrag_noninflated / inflate pair
// (original_source/src/analysis.cpp).
func AnalyseCompressed(problem *pryce.InputProblem, c *Compression) (*Result, error) {
	for i := 1; i < len(c.Instances); i++ {
		if c.Instances[i].SurrogateRow <= c.Instances[i-1].SurrogateRow {
			return nil, ErrInstancesNotSorted
		}
	}

	n := problem.Dimension
	sol, err := lap.Solve(problem.Sigma)
	if err != nil {
		return nil, err
	}
	if err := sol.Verify(n); err != nil {
		return nil, err
	}

	n2 := n + c.Variables()
	inflated, err := sigma.New(n2)
	if err != nil {
		return nil, err
	}

	rowMap := make([]int, n)
	si := 0
	nextRow := 0
	for i := 0; i < n; i++ {
		if si < len(c.Instances) && c.Instances[si].SurrogateRow == i {
			rowMap[i] = -1
			si++
			continue
		}
		rowMap[i] = nextRow
		nextRow++
	}
	if si != len(c.Instances) {
		return nil, ErrSurrogateRowOutOfRange
	}
	numSurrogates := si

	rowAssign := make([]int, n2)
	colAssign := make([]int, n2)

	for i := 0; i < n; i++ {
		ri := rowMap[i]
		if ri < 0 {
			continue
		}
		problem.Sigma.EachInRow(i, func(col int, val int64) {
			_ = inflated.Insert(ri, col, val)
		})
		j := sol.RowAssign[i]
		rowAssign[ri] = j
		colAssign[j] = ri
	}

	rowOffset := n - numSurrogates
	colOffset := n
	componentRows := make([]int, len(c.Instances))
	componentCols := make([]int, len(c.Instances))

	for idx, inst := range c.Instances {
		comp := inst.Component
		k := sol.RowAssign[inst.SurrogateRow] - inst.QOffset
		assignRow := comp.M[k]

		for ri := 0; ri <= comp.P; ri++ {
			targetRow := rowOffset + ri

			comp.Sigma.EachInRow(ri, func(col int, val int64) {
				targetCol := inst.QOffset + col
				if col >= comp.Q {
					targetCol = colOffset + (col - comp.Q)
				}
				_ = inflated.Insert(targetRow, targetCol, val)
			})

			m := assignRow[ri]
			targetCol := inst.QOffset + m
			if m >= comp.Q {
				targetCol = colOffset + (m - comp.Q)
			}
			rowAssign[targetRow] = targetCol
			colAssign[targetCol] = targetRow
		}

		componentRows[idx] = rowOffset
		componentCols[idx] = colOffset
		rowOffset += comp.P + 1
		colOffset += comp.P
	}

	c2, d2 := pryce.FixedPoint(rowAssign, inflated)

	ratio := 1.0
	if n2 > 0 {
		ratio = float64(n) / float64(n2)
	}

	return &Result{
		AnalysisResult: &pryce.AnalysisResult{
			RowAssignment: rowAssign,
			ColAssignment: colAssign,
			C:             c2,
			D:             d2,
			Inflated: pryce.InflatedMap{
				ComponentRows: componentRows,
				ComponentCols: componentCols,
			},
		},
		CompressionRatio: ratio,
	}, nil
}
