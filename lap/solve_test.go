package lap_test

import (
	"math/rand"
	"testing"

	"github.com/pryce-method/daestruct/lap"
	"github.com/pryce-method/daestruct/sigma"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"
)

func mustMatrix(t *testing.T, n int, entries [][3]int64) *sigma.Matrix {
	t.Helper()
	m, err := sigma.New(n)
	require.NoError(t, err)
	for _, e := range entries {
		require.NoError(t, m.Insert(int(e[0]), int(e[1]), e[2]))
	}
	return m
}

// TestSolve_Pendulum exercises spec.md scenario P (n=5, cost 6).
func TestSolve_Pendulum(t *testing.T) {
	m := mustMatrix(t, 5, [][3]int64{
		{0, 0, 2}, {0, 4, 0},
		{1, 1, 2}, {1, 4, 0},
		{2, 2, 1}, {2, 4, 0},
		{3, 0, 1}, {3, 2, 1},
		{4, 1, 1}, {4, 3, 1},
	})

	sol, err := lap.Solve(m)
	require.NoError(t, err)
	require.Equal(t, int64(6), sol.Cost)
	requirePermutation(t, sol.RowAssign, sol.ColAssign, 5)
	requireDualFeasible(t, m, sol)
}

// TestSolve_Diagonal exercises spec.md scenario D (n=3, identity matching).
func TestSolve_Diagonal(t *testing.T) {
	m := mustMatrix(t, 3, [][3]int64{{0, 0, 1}, {1, 1, 1}, {2, 2, 1}})

	sol, err := lap.Solve(m)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, sol.RowAssign)
	require.Equal(t, int64(3), sol.Cost)
}

// TestSolve_Shifted exercises spec.md scenario S (n=2, cost 3).
func TestSolve_Shifted(t *testing.T) {
	m := mustMatrix(t, 2, [][3]int64{{0, 1, 2}, {1, 0, 1}})

	sol, err := lap.Solve(m)
	require.NoError(t, err)
	require.Equal(t, []int{1, 0}, sol.RowAssign)
	require.Equal(t, int64(3), sol.Cost)
}

// TestSolve_Singular exercises spec.md scenario Singular (n=2).
func TestSolve_Singular(t *testing.T) {
	m := mustMatrix(t, 2, [][3]int64{{1, 0, 1}})

	_, err := lap.Solve(m)
	require.ErrorIs(t, err, lap.ErrSingularStructure)
}

func TestSolution_Verify(t *testing.T) {
	m := mustMatrix(t, 3, [][3]int64{{0, 0, 1}, {1, 1, 1}, {2, 2, 1}})
	sol, err := lap.Solve(m)
	require.NoError(t, err)

	require.NoError(t, sol.Verify(3))
	require.ErrorIs(t, sol.Verify(4), lap.ErrDimensionMismatch)
}

func TestSolve_EmptyProblem(t *testing.T) {
	m, err := sigma.New(0)
	require.NoError(t, err)

	sol, err := lap.Solve(m)
	require.NoError(t, err)
	require.Empty(t, sol.RowAssign)
	require.Equal(t, int64(0), sol.Cost)
}

// TestSolve_MatchesBruteForce checks optimality (testable property 2) by
// exhaustively enumerating all n! permutations via gonum's combinatorics
// generator and confirming Solve never finds a worse matching.
func TestSolve_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 25; trial++ {
		n := 2 + trial%5 // sizes 2..6

		m, err := sigma.New(n)
		require.NoError(t, err)

		// Dense-ish random matrix with a few absent cells, but every row
		// keeps at least one present entry.
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if rng.Intn(4) == 0 && j != i {
					continue // leave absent
				}
				require.NoError(t, m.Insert(i, j, int64(rng.Intn(21)-10)))
			}
		}

		sol, err := lap.Solve(m)
		if err != nil {
			require.ErrorIs(t, err, lap.ErrSingularStructure)
			continue
		}

		best := bruteForceBest(t, m, n)
		require.Equal(t, best, sol.Cost, "n=%d", n)
		requirePermutation(t, sol.RowAssign, sol.ColAssign, n)
		requireDualFeasible(t, m, sol)
	}
}

// bruteForceBest enumerates every permutation of n columns via gonum's
// PermutationGenerator and returns the best achievable weight using only
// stored (present) cells; it fails the test if no permutation is fully
// present.
func bruteForceBest(t *testing.T, m *sigma.Matrix, n int) int64 {
	t.Helper()

	const unreachable = int64(-1) << 40
	best := unreachable

	gen := combin.NewPermutationGenerator(n, n)
	perm := make([]int, n)
	for gen.Next() {
		perm = gen.Permutation(perm)

		var total int64
		feasible := true
		for i, j := range perm {
			v, ok := m.Get(i, j)
			if !ok {
				feasible = false
				break
			}
			total += v
		}
		if feasible && total > best {
			best = total
		}
	}

	require.NotEqual(t, unreachable, best, "brute force found no feasible permutation")
	return best
}

func requirePermutation(t *testing.T, rowAssign, colAssign []int, n int) {
	t.Helper()
	require.Len(t, rowAssign, n)
	require.Len(t, colAssign, n)
	for i, j := range rowAssign {
		require.Equal(t, i, colAssign[j], "row/col assignment must be mutual inverses")
	}
}

func requireDualFeasible(t *testing.T, m *sigma.Matrix, sol *lap.Solution) {
	t.Helper()
	m.Each(func(i, j int, val int64) {
		require.GreaterOrEqual(t, sol.U[i]-sol.V[j], val, "dual feasibility at (%d,%d)", i, j)
	})
	for i, j := range sol.RowAssign {
		v, ok := m.Get(i, j)
		require.True(t, ok)
		require.Equal(t, v, sol.U[i]-sol.V[j], "equality on the matching at row %d", i)
	}
}
