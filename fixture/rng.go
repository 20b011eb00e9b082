// Package fixture - RNG utilities shared by the case generators.
//
// This file centralizes deterministic random generation for fixture
// synthesis.
//
// Goals:
//   - Determinism: the same seed must reproduce byte-identical fixtures
//     across platforms and Go versions (math/rand's generator is stable).
//   - Encapsulation: one RNG factory; no time-based or global sources
//     hidden anywhere in the package.
//   - Independence: each kernel draws from its own derived stream, so
//     case lists never perturb each other regardless of generation order.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Every case-list call builds
//     its own derived stream, which makes a shared Generator safe to use
//     from multiple goroutines without locking.
package fixture

import "math/rand"

// defaultRNGSeed is the fixed seed substituted when callers pass seed==0.
// The value is arbitrary but stable to keep "no seed" runs reproducible.
const defaultRNGSeed int64 = 1

// Per-kernel stream identifiers. Feeding them through deriveSeed yields
// decorrelated RNG streams from a single generator seed.
const (
	streamDCT uint64 = iota + 1
	streamSVD
	streamDWT
	streamYUV
)

// rngFromSeed returns a deterministic math/rand generator.
// Policy: seed==0 ⇒ defaultRNGSeed; any other value is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed with a stream identifier into a new
// 64-bit seed using a SplitMix64-style finalizer (Vigna, 2014). Small
// input deltas produce large, well-distributed output deltas, which keeps
// sibling streams statistically uncorrelated.
func deriveSeed(parent int64, stream uint64) int64 {
	var x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// streamRNG builds the deterministic generator for one kernel stream of
// the given base seed. The seed==0 default is applied before derivation
// so that NewGenerator(0) and NewGenerator(defaultRNGSeed) agree.
func streamRNG(seed int64, stream uint64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rngFromSeed(deriveSeed(s, stream))
}
