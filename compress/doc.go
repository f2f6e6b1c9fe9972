// Package compress implements the compression/inflation layer (spec §4.4):
// folding a compressible sub-component — a tightly-coupled cluster of
// private equations/variables that only touches the rest of the problem
// through a handful of public variables — down to a single surrogate row in
// the outer Σ-matrix, then expanding ("inflating") the outer analysis back
// out to a full result over the original, uncompressed variable space.
//
// A Compressible is built once, via CompressibleBuilder, from the caller's
// public/private incidences; Build solves one LAP per public variable to
// find the cheapest way the component can absorb that variable, then seals
// the component. A Compression bundles the CompressibleInstances folded into
// one outer problem; AnalyseCompressed runs the outer analysis and inflates
// it in one call.
//
// AnalyseCompressed is a free function, not a method on pryce.InputProblem,
// so that pryce never needs to import compress.
package compress
