package compress

import (
	"github.com/pryce-method/daestruct/pryce"
	"github.com/pryce-method/daestruct/sigma"
)

// Compressible is a sealed, reusable sub-component: p private equations/
// variables and q public variables, plus the per-public-variable matching
// and cost computed by CompressibleBuilder.Build.
//
// Column convention inside the component (spec §4.4.1): 0..q-1 are public,
// q..q+p-1 are private. Rows 0..p are the component's p+1 equations.
type Compressible struct {
	P, Q int

	// Sigma is the component's own (p+1)-row incidence, columns 0..q+p-1.
	Sigma *sigma.Matrix

	// M[k] is the row->column assignment (length p+1, columns in the
	// component's own index space) that results when public variable k is
	// the one the component is asked to solve for.
	M [][]int

	// Cost[k] is the total Σ-weight of that assignment: the value inserted
	// as the surrogate row's entry for public column k (spec §4.4.1).
	Cost []int64
}

// CompressibleBuilder accumulates incidences for one Compressible and seals
// it on Build. Construct with NewCompressibleBuilder; the zero value is not
// usable since it has no dimensions or backing Σ-matrix to write into.
type CompressibleBuilder struct {
	p, q   int
	sigma  *sigma.Matrix
	sealed bool
}

// CompressibleInstance is one compressible component folded into an outer
// problem: which outer columns its public variables bind to, and which
// outer row holds its surrogate.
type CompressibleInstance struct {
	Component *Compressible

	// QOffset is the outer column of the instance's public variable 0; its
	// public variables occupy QOffset..QOffset+Q-1 in the outer problem.
	QOffset int

	// SurrogateRow is the outer row standing in for the component before
	// inflation.
	SurrogateRow int
}

// InsertIncidence writes the instance's surrogate row into the outer
// Σ-matrix: outer[SurrogateRow][QOffset+k] = Component.Cost[k] for every
// public k. Callers must do this before running the outer LAP/analysis.
func (ci CompressibleInstance) InsertIncidence(outer *sigma.Matrix) error {
	for k := 0; k < ci.Component.Q; k++ {
		if err := outer.Insert(ci.SurrogateRow, ci.QOffset+k, ci.Component.Cost[k]); err != nil {
			return err
		}
	}
	return nil
}

// Compression bundles every compressible instance folded into one outer
// problem, in strictly increasing SurrogateRow order (spec §4.4.2).
type Compression struct {
	Instances []CompressibleInstance
}

// Variables returns the total number of private variables (and, equally,
// private equations) the compression will add back on inflation: sum of P
// over every instance.
func (c *Compression) Variables() int {
	total := 0
	for _, inst := range c.Instances {
		total += inst.Component.P
	}
	return total
}

// Result is a Pryce analysis run over a Compression: the fully inflated
// AnalysisResult plus a diagnostic compression ratio (spec §5, "supplemented
// diagnostic"): compressed dimension / inflated dimension.
type Result struct {
	*pryce.AnalysisResult
	CompressionRatio float64
}
