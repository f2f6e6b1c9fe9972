package pryce

import "github.com/pryce-method/daestruct/sigma"

// maxFixedPointSweeps bounds the dual-minimising fixed point (spec §7:
// "failure to converge within a sane bound ... indicates an implementation
// bug and must panic"). n² sweeps is the bound spec.md suggests; each sweep
// already visits every stored entry once, so this is generous.
func maxFixedPointSweeps(n int) int {
	bound := n * n
	if bound < 16 {
		bound = 16 // small problems still get a few sweeps of slack
	}
	return bound
}

// FixedPoint runs the dual-minimising fixed point to convergence starting
// from c = d = 0 and returns the canonical offsets as plain ints. Exported
// so package compress can run it over an inflated matrix/assignment without
// going through a full InputProblem.
func FixedPoint(assignment []int, m *sigma.Matrix) (c, d []int) {
	n := len(assignment)
	c64 := make([]int64, n)
	d64 := make([]int64, n)
	solveByFixedPoint(assignment, m, c64, d64)

	c = make([]int, n)
	d = make([]int, n)
	for i := 0; i < n; i++ {
		c[i] = int(c64[i])
		d[i] = int(d64[i])
	}
	return c, d
}

// solveByFixedPoint runs the dual-minimising fixed point (spec §4.3) to
// convergence, starting from c = d = 0. It mutates c and d in place.
//
// Each sweep:
//   - relaxes every stored entry d[j] up to at least c[i] - sigma(i,j);
//   - then recomputes c[i] = d[assignment[i]] + sigma(i, assignment[i]).
//
// Terminates when no c[i] changes during a sweep. Translated directly from
// the original solveByFixedPoint (original_source/src/analysis.cpp).
func solveByFixedPoint(assignment []int, m *sigma.Matrix, c, d []int64) {
	n := len(assignment)
	if n == 0 {
		return
	}

	bound := maxFixedPointSweeps(n)
	for sweep := 0; ; sweep++ {
		if sweep >= bound {
			panic("pryce: fixed point did not converge within the expected bound")
		}

		m.Each(func(i, j int, sigmaIJ int64) {
			a := c[i] - sigmaIJ
			if a > d[j] {
				d[j] = a
			}
		})

		converged := true
		for i := 0; i < n; i++ {
			j := assignment[i]
			sigmaIJ, _ := m.Get(i, j) // present: i is matched to j by construction
			c2 := d[j] + sigmaIJ
			if c2 != c[i] {
				converged = false
			}
			c[i] = c2
		}

		if converged {
			return
		}
	}
}
