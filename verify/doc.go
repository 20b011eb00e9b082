// Package verify provides the tolerance model and comparison helpers used
// to judge a kernel output against a recorded expectation.
//
// The verify package provides:
//
//   - Tolerance, a two-regime comparator: relative for well-scaled values,
//     absolute below a small-value threshold (where relative error is
//     meaningless).
//   - Per-kernel presets (DCT, DWT, SVD, YUV) sized to each kernel's
//     arithmetic precision.
//   - Slice, byte and matrix comparisons that name the first offending
//     element.
//   - SVD acceptance checks that sidestep sign ambiguity: reconstruction
//     and orthogonality residuals, plus sign-tolerant factor comparison.
//
// Failures surface as wrapped ErrMismatch (or the matrix package's shape
// sentinels), matched via errors.Is.
package verify
