// Package lap solves the square linear assignment problem: given a sparse
// sigma.Matrix, find the column-for-row matching that maximises the sum of
// matched weights, together with dual potentials u, v certifying optimality.
//
// Absent cells (spec: "−∞") are treated as forbidden by substituting a large
// negative surrogate, internal to this package, chosen large enough
// (BIG ≥ n·max|σ|+1) that no augmenting path ever prefers a forbidden edge
// over a real one unless the problem is structurally singular — in which
// case Solve returns ErrSingularStructure rather than a matching that uses a
// forbidden cell.
//
// The algorithm is the Jonker–Volgenant augmenting-path formulation of
// Kuhn–Munkres, run on integers only (no floating point, per the package's
// maximisation contract). Ties are broken deterministically by lowest column
// index so that repeated runs on the same input produce the same matching.
package lap
