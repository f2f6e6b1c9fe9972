// Package sigma implements the sparse integer incidence matrix used to
// describe a DAE's structural indices: σ(i,j) is the highest derivative
// order of variable j appearing in equation i, or "absent" if variable j
// does not appear in equation i at all.
//
// Matrix is square, backed by a sorted-slice-per-row store so that row
// iteration visits stored entries in ascending column order in O(nnz),
// without ever materialising the absent cells. Absent is a first-class
// sentinel at this layer: callers query presence with Get's second return
// value rather than relying on a magic numeric value. Downstream packages
// (lap, pryce, compress) pick their own internal "very negative" surrogate
// for absent cells when they need one for arithmetic — that surrogate never
// appears in this package's API.
package sigma
