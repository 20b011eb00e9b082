// Package dct computes the two-dimensional Discrete Cosine Transform
// (DCT-II) and its inverse (DCT-III) with orthonormal scaling, on matrices
// of arbitrary width and height.
//
// 🚀 What is the DCT?
//
//	The DCT expresses a signal as a weighted sum of cosine basis
//	functions. The type-II form with orthonormal scaling is the workhorse
//	of image and video coding:
//	  • JPEG / MPEG block transforms
//	  • frequency-domain watermark embedding
//	  • energy compaction before quantization
//
// ✨ Key features:
//   - arbitrary sizes, square or rectangular (no power-of-two limit)
//   - orthonormal scaling α(0)=√(1/N), α(k>0)=√(2/N), so the inverse is
//     the plain transpose pass and Transform→Inverse returns the input
//   - Plan precomputes the cosine bases once per size; Cache shares plans
//     between goroutines
//   - float64 accumulation regardless of element type, for stable sums
//
// ⚙️ Usage:
//
//	import "github.com/goldvec/goldvec/dct"
//
//	plan, err := dct.New[float32](8, 8) // one plan per size
//	coef, err := plan.Transform(m)      // forward DCT-II
//	back, err := plan.Inverse(coef)     // inverse DCT-III
//
// Performance:
//
//   - Time:   O(w·h·(w+h)) per transform (separable row/column passes)
//   - Memory: O(w² + h²) per plan, O(w·h) per call
//
// See example_test.go for runnable scenarios.
package dct
