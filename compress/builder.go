package compress

import (
	"github.com/pryce-method/daestruct/lap"
	"github.com/pryce-method/daestruct/sigma"
)

// NewCompressibleBuilder allocates a builder for a q-public/p-private
// compressible component. outer seeds the component's own (p+1)x(p+q)
// incidence by copying whatever it already holds in rows 0..p and columns
// 0..q+p-1 (spec §4.4.1: "an outer Σ-matrix from which the component's
// first (p+1) rows are copied"); pass nil to start from nothing and
// populate purely via SetPublicIncidence/SetPrivateIncidence.
func NewCompressibleBuilder(q, p int, outer *sigma.Matrix) (*CompressibleBuilder, error) {
	if p < 0 || q <= 0 {
		return nil, ErrInvalidDimensions
	}

	m, err := sigma.New(p + q)
	if err != nil {
		return nil, err
	}

	if outer != nil {
		for i := 0; i <= p && i < outer.Dimension(); i++ {
			outer.EachInRow(i, func(col int, val int64) {
				if col < p+q {
					_ = m.Insert(i, col, val)
				}
			})
		}
	}

	return &CompressibleBuilder{p: p, q: q, sigma: m}, nil
}

// SetPublicIncidence records that component equation i depends on public
// variable j with weight v (i < p+1, j < q).
func (b *CompressibleBuilder) SetPublicIncidence(i, j int, v int64) error {
	if b.sealed {
		return ErrBuilderSealed
	}
	if i < 0 || i > b.p || j < 0 || j >= b.q {
		return ErrInvalidIncidenceIndex
	}
	return b.sigma.Insert(i, j, v)
}

// SetPrivateIncidence records that component equation i depends on private
// variable j with weight v (i < p+1, j < p). Private variable j occupies
// column q+j in the component's own index space.
func (b *CompressibleBuilder) SetPrivateIncidence(i, j int, v int64) error {
	if b.sealed {
		return ErrBuilderSealed
	}
	if i < 0 || i > b.p || j < 0 || j >= b.p {
		return ErrInvalidIncidenceIndex
	}
	return b.sigma.Insert(i, b.q+j, v)
}

// Build computes, for every public variable k, the cheapest way the
// component can absorb k as its "solved-for" variable and seals the
// builder (spec §4.4.1).
//
// For each k it pins every OTHER public variable to its own identity row
// (rows p+1..p+q-1, weight 0) on a scratch copy of the component's matrix,
// forcing the LAP to match those columns against the identity rows and
// leaving the real p+1 rows free to match k plus the p private variables.
// M[k] is the resulting assignment restricted to rows 0..p; Cost[k] is the
// LAP's total cost (the identity rows contribute 0, so no adjustment is
// needed — spec §7 open-question decision).
//
// A scratch copy is used rather than mutating-and-restoring b.sigma in
// place (as the original implementation does) because this package's
// sealed-builder invariant forbids any post-seal mutation of the public
// Compressible.Sigma, and sigma.Matrix has no public delete to undo an
// in-place identity-row insert cleanly.
func (b *CompressibleBuilder) Build() (*Compressible, error) {
	if b.sealed {
		return nil, ErrBuilderSealed
	}

	m := make([][]int, b.q)
	cost := make([]int64, b.q)

	for k := 0; k < b.q; k++ {
		scratch, err := sigma.New(b.p + b.q)
		if err != nil {
			return nil, err
		}
		b.sigma.Each(func(i, j int, v int64) {
			_ = scratch.Insert(i, j, v)
		})

		row := b.p + 1
		for j := 0; j < b.q; j++ {
			if j == k {
				continue
			}
			if err := scratch.Insert(row, j, 0); err != nil {
				return nil, err
			}
			row++
		}

		sol, err := lap.Solve(scratch)
		if err != nil {
			return nil, err
		}
		if err := sol.Verify(b.p + b.q); err != nil {
			return nil, err
		}

		m[k] = append([]int(nil), sol.RowAssign[:b.p+1]...)
		cost[k] = sol.Cost
	}

	b.sealed = true
	return &Compressible{
		P:     b.p,
		Q:     b.q,
		Sigma: b.sigma.Clone(),
		M:     m,
		Cost:  cost,
	}, nil
}
