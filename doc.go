// Package goldvec is a golden-vector oracle for image and signal
// transform kernels — generate fixtures once, verify ports of the
// mathematics anywhere.
//
// 🚀 What is goldvec?
//
//	A small, deterministic reference toolkit that brings together:
//		• Matrix model: generic dense float32/float64 matrices with strict validation
//		• DCT: orthonormal 2-D DCT-II and its inverse, any width×height
//		• SVD: full singular value decomposition over float64 (via gonum)
//		• DWT: single-level 2-D Haar analysis & synthesis with edge extension
//		• YUV: BT.601 8-bit RGB↔YUV conversion with round-and-clamp semantics
//		• Fixtures: seeded, reproducible JSON test vectors for every kernel
//		• Verify: tolerance presets and sign-tolerant comparison helpers
//
// ✨ Why choose goldvec?
//
//   - Deterministic – one seed reproduces every fixture byte for byte
//   - Portable contract – fixed JSON field names, plain number arrays
//   - Honest numerics – float64 accumulation inside float32 kernels
//   - Pure Go – no cgo; the heavy lifting backed by gonum
//
// Under the hood, everything is organized under focused subpackages:
//
//	matrix/  — dense value-semantics matrices, shape & finiteness validators
//	dct/     — plans, plan cache and one-shot forward/inverse transforms
//	svd/     — full decomposition, spectrum-only path, reconstruction
//	dwt/     — Haar subband analysis (cA/cH/cV/cD) and perfect rebuild
//	yuv/     — pixel and buffer color conversions, both directions
//	fixture/ — case synthesis, JSON codec, canonical fixture files
//	verify/  — per-kernel tolerances, residuals, sign-ambiguity checks
//
// Quick taste:
//
//	g := fixture.NewGenerator(42)
//	cases, _ := g.DCTCases()
//	// replay cases against your port, judge with verify.EqualSlices
//
// Dive into the per-package docs for the full contracts, and into
// examples/ for runnable end-to-end scenarios.
//
//	go get github.com/goldvec/goldvec
package goldvec
