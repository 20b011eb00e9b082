// Package svd computes the full singular value decomposition of dense
// float64 matrices, A = U·Σ·Vᵀ, on top of gonum's LAPACK-derived routines.
//
// The svd package provides:
//
//   - Decompose, returning U (h×h), the singular values in descending
//     order, and Vᵀ (w×w) for any rectangular input.
//   - Values, the cheap spectrum-only variant.
//   - Decomposition.Reconstruct, rebuilding A from the three factors.
//
// Numerical caveat: singular vectors are unique only up to sign, and equal
// singular values allow arbitrary rotation of their shared subspace.
// Consumers comparing two decompositions should compare reconstructions or
// use the sign-tolerant helpers in the verify package, never raw U/Vᵀ
// entries.
//
// This package works in float64 exclusively; convert float32 data up front.
package svd
