package main

import (
	"github.com/pryce-method/daestruct/compress"
	"github.com/pryce-method/daestruct/pryce"
	"github.com/pryce-method/daestruct/sigma"
)

// jsonEntry is one sparse Σ-matrix cell.
type jsonEntry struct {
	Row int   `json:"row"`
	Col int   `json:"col"`
	Val int64 `json:"val"`
}

// jsonInstance is the on-disk instance format: a dimension, its sparse
// entries, and an optional compression describing compressible
// sub-components folded into the problem via surrogate rows.
type jsonInstance struct {
	Dimension   int              `json:"dimension"`
	Entries     []jsonEntry      `json:"entries"`
	Compression *jsonCompression `json:"compression,omitempty"`
}

func (ins *jsonInstance) toProblem() (*pryce.InputProblem, error) {
	p, err := pryce.NewInputProblem(ins.Dimension)
	if err != nil {
		return nil, err
	}
	for _, e := range ins.Entries {
		if err := p.Sigma.Insert(e.Row, e.Col, e.Val); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// jsonComponent is one compressible sub-component: p private, q public
// variables, and its incidences in the component's own column space
// (public entries have Col < q, private entries have Col < p).
type jsonComponent struct {
	P              int         `json:"p"`
	Q              int         `json:"q"`
	PublicEntries  []jsonEntry `json:"publicEntries"`
	PrivateEntries []jsonEntry `json:"privateEntries"`
}

func (jc jsonComponent) build() (*compress.Compressible, error) {
	b, err := compress.NewCompressibleBuilder(jc.Q, jc.P, nil)
	if err != nil {
		return nil, err
	}
	for _, e := range jc.PublicEntries {
		if err := b.SetPublicIncidence(e.Row, e.Col, e.Val); err != nil {
			return nil, err
		}
	}
	for _, e := range jc.PrivateEntries {
		if err := b.SetPrivateIncidence(e.Row, e.Col, e.Val); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

// jsonInstanceBinding ties one jsonComponent into the outer problem: which
// outer column its public variable 0 binds to, and which outer row holds
// its surrogate.
type jsonInstanceBinding struct {
	Component    jsonComponent `json:"component"`
	QOffset      int           `json:"qOffset"`
	SurrogateRow int           `json:"surrogateRow"`
}

type jsonCompression struct {
	Instances []jsonInstanceBinding `json:"instances"`
}

func (jc *jsonCompression) toCompression(outer *sigma.Matrix) (*compress.Compression, error) {
	instances := make([]compress.CompressibleInstance, 0, len(jc.Instances))
	for _, b := range jc.Instances {
		comp, err := b.Component.build()
		if err != nil {
			return nil, err
		}
		inst := compress.CompressibleInstance{
			Component:    comp,
			QOffset:      b.QOffset,
			SurrogateRow: b.SurrogateRow,
		}
		if err := inst.InsertIncidence(outer); err != nil {
			return nil, err
		}
		instances = append(instances, inst)
	}
	return &compress.Compression{Instances: instances}, nil
}
