// Package dwt computes a single-level two-dimensional Haar wavelet
// decomposition and its inverse, on matrices of arbitrary width and height.
//
// 🚀 What is the Haar DWT?
//
//	The discrete wavelet transform splits a signal into a coarse
//	approximation plus localized detail. The Haar basis is its simplest
//	member, built entirely from pairwise sums and differences:
//	  • multiresolution image analysis
//	  • compression front-ends
//	  • detail-band watermark embedding
//
// ✨ Key features:
//   - one transform level producing four quarter-size subbands:
//     CA (approximation), CH (horizontal detail), CV (vertical detail),
//     CD (diagonal detail), each ⌈w/2⌉×⌈h/2⌉
//   - normalized pair step (divisor √2), so even-size inputs preserve
//     energy across the four subbands
//   - odd edges pair the last sample with itself (symmetric extension);
//     Reconstruct collapses the duplicate and restores the exact shape
//   - generic over float32/float64 with arithmetic kept in T throughout
//
// ⚙️ Usage:
//
//	import "github.com/goldvec/goldvec/dwt"
//
//	sub, err := dwt.Decompose(m) // one level, four planes
//	back, err := sub.Reconstruct()
//
// Performance:
//
//   - Time:   O(w·h) per call, one sweep over 2×2 blocks
//   - Memory: O(w·h) for the four planes
//
// See example_test.go for runnable scenarios.
package dwt
