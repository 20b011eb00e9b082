// Package fixture generates, serializes and reloads the golden test
// vectors that anchor the four transform kernels: dct, svd, dwt and yuv.
//
// What & Why?
//
// A golden vector is a named input together with the output this
// implementation produced for it. A port of any kernel (to another
// language, SIMD path or hardware block) replays the recorded inputs and
// compares its own outputs against the recorded expectations with the
// verify package, instead of re-deriving the mathematics twice.
//
// ✨ Key features:
//   - Curated case lists per kernel: canonical small blocks, rectangular
//     and odd shapes, degenerate inputs, synthetic patterns, plus seeded
//     pseudo-random fill-ins.
//   - Deterministic by construction: a Generator owns one base seed and
//     derives an independent SplitMix64 stream per kernel, so the same
//     seed always reproduces byte-identical fixtures, no matter in which
//     order (or from how many goroutines) the lists are built.
//   - Fixed JSON schema: field names (name/input/expected, data, width,
//     height, dct, singular_values, u, vt, cA, cH, cV, cD, rgb, yuv) are
//     part of the cross-language contract and never change.
//   - 8-bit pixel buffers serialize as plain JSON number arrays rather
//     than the base64 string encoding/json would emit for []byte.
//
// ⚙️ Usage:
//
//	g := fixture.NewGenerator(42)
//	cases, err := g.DCTCases()
//	if err != nil { ... }
//	err = fixture.WriteDCTCases(w, cases)
//	...
//	cases, err = fixture.ReadDCTCases(r)
//
// WriteDir emits all four canonical fixture files into a directory in one
// call. See example_test.go and examples/generate_fixtures.go for a
// complete run.
package fixture
