package lap

import "github.com/pryce-method/daestruct/sigma"

// Solve finds a maximum-weight perfect matching on m, with dual potentials.
//
// Implementation: Jonker–Volgenant augmenting-path Kuhn–Munkres, run as a
// cost-minimisation over costMin[i][j] = -weight(i,j), where weight(i,j) is
// the stored Σ-matrix entry or a large negative BIG surrogate when absent.
// The minimised solution is mapped back to the maximisation contract by
// summing the stored weights of the matched cells for Cost, negating the
// row potentials (U = -u') and keeping the column potentials (V = v'): from
// u'[i]+v'[j] <= -weight(i,j) it follows that U[i]-V[j] >= weight(i,j).
//
// Complexity: O(n^3) time, O(n^2) space — LAP is necessarily dense even over
// a sparse input (spec §2: LAP is the 40% / hard-engineering share).
func Solve(m *sigma.Matrix) (*Solution, error) {
	n := m.Dimension()
	if n == 0 {
		return &Solution{RowAssign: []int{}, ColAssign: []int{}, U: []int64{}, V: []int64{}}, nil
	}

	big := bigSentinel(m, n)

	// costMin[i][j] = -weight(i,j); absent cells get a large positive cost so
	// the minimiser avoids them unless forced to (structural singularity).
	costMin := make([][]int64, n)
	for i := 0; i < n; i++ {
		costMin[i] = make([]int64, n)
		for j := 0; j < n; j++ {
			if v, ok := m.Get(i, j); ok {
				costMin[i][j] = -v
			} else {
				costMin[i][j] = big
			}
		}
	}

	rowAssign, uPrime, vPrime := jonkerVolgenant(costMin, n)

	sol := &Solution{
		RowAssign: rowAssign,
		ColAssign: make([]int, n),
		U:         make([]int64, n),
		V:         vPrime,
		Cost:      0,
	}
	for i := 0; i < n; i++ {
		sol.U[i] = -uPrime[i]
	}
	for i, j := range rowAssign {
		sol.ColAssign[j] = i
		if _, ok := m.Get(i, j); !ok {
			return nil, ErrSingularStructure
		}
		sol.Cost += -costMin[i][j]
	}

	return sol, nil
}

// bigSentinel picks BIG = 2n*max|sigma|+1 (which satisfies BIG >=
// n*max|sigma|+1, spec §6). Any matching through an absent cell then costs
// at least BIG-(n-1)*max|sigma| > n*max|sigma|, more than any matching of
// stored cells, so the minimiser never prefers an absent cell over a chain
// of real ones.
func bigSentinel(m *sigma.Matrix, n int) int64 {
	var maxAbs int64
	m.Each(func(_, _ int, val int64) {
		abs := val
		if abs < 0 {
			abs = -abs
		}
		if abs > maxAbs {
			maxAbs = abs
		}
	})
	return 2*int64(n)*maxAbs + 1
}

// jonkerVolgenant runs the classic 1-indexed potential-update augmenting
// path algorithm (Kuhn–Munkres, Jonker–Volgenant variant) to minimise
// sum(cost[i][rowAssign[i]]). Translated from the reference Hungarian
// solver's u/v/p/way/minv/used shape; tie-breaks on the lowest column index
// because the inner scan keeps the first j achieving the running minimum.
//
// Returns rowAssign (0-indexed, rowAssign[i] = matched column) and the
// 0-indexed dual potentials u', v' satisfying
// u'[i] + v'[j] <= cost[i][j], with equality on the match.
func jonkerVolgenant(cost [][]int64, n int) (rowAssign []int, u, v []int64) {
	const inf = int64(1) << 62

	u1 := make([]int64, n+1) // 1-indexed row potentials, u1[0] unused
	v1 := make([]int64, n+1) // 1-indexed column potentials
	p := make([]int, n+1)    // p[j] = row currently matched to column j (1-indexed), p[0] = "virtual"
	way := make([]int, n+1)
	minv := make([]int64, n+1)
	used := make([]bool, n+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0

		for j := 0; j <= n; j++ {
			minv[j] = inf
			used[j] = false
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := inf
			j1 := -1

			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u1[i0] - v1[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}

			for j := 0; j <= n; j++ {
				if used[j] {
					u1[p[j]] += delta
					v1[j] -= delta
				} else {
					minv[j] -= delta
				}
			}

			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		for j0 != 0 {
			p[j0] = p[way[j0]]
			j0 = way[j0]
		}
	}

	rowAssign = make([]int, n)
	for j := 1; j <= n; j++ {
		rowAssign[p[j]-1] = j - 1
	}

	u = make([]int64, n)
	v = make([]int64, n)
	for i := 1; i <= n; i++ {
		u[i-1] = u1[i]
	}
	for j := 1; j <= n; j++ {
		v[j-1] = v1[j]
	}

	return rowAssign, u, v
}
