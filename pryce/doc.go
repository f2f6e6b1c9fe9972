// Package pryce implements Pryce's Σ-method structural analysis of a DAE:
// given an InputProblem (a dimension and a populated sigma.Matrix), Analyse
// runs the linear assignment problem (package lap) to find a highest-value
// transversal, then a dual-minimising fixed point to compute the canonical
// offsets (c, d) — the number of times each equation and variable must be
// differentiated before numerical integration.
//
// Analyse is a free function over *InputProblem rather than a method: that
// keeps this package independent of compress, which builds on top of it —
// a method on InputProblem defined in compress would import pryce, and
// pryce importing compress back would be a cycle.
package pryce
