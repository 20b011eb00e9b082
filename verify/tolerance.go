package verify

import "math"

// Tolerance describes how closely two floating point values must agree.
//
// Comparison runs in two regimes: when both |want| and |got| fall below
// SmallValue the absolute difference is checked against Abs; otherwise the
// difference is checked against Rel·max(|want|, |got|). The split keeps
// relative comparison away from near-zero values, where it degenerates.
type Tolerance struct {
	Rel        float64 // relative bound for well-scaled values
	Abs        float64 // absolute bound applied near zero
	SmallValue float64 // threshold switching between the two regimes
}

// Per-kernel presets. Each reflects the arithmetic the kernel runs in:
// float32 pixel transforms earn loose bounds, the float64 SVD is held near
// machine precision, and byte-valued color conversion tolerates rounding.
var (
	// DCT covers float32 cosine transforms over pixel-scale magnitudes.
	DCT = Tolerance{Rel: 1e-4, Abs: 1e-7, SmallValue: 1e-6}

	// DWT is looser: the float32 Haar lifting accumulates more error.
	DWT = Tolerance{Rel: 1e-2, Abs: 1e-5, SmallValue: 1e-4}

	// SVD runs in float64 throughout.
	SVD = Tolerance{Rel: 1e-10, Abs: 1e-12, SmallValue: 1e-10}

	// YUV compares 8-bit channels: below level 5 a ±1 step is accepted,
	// above it a 2% relative deviation.
	YUV = Tolerance{Rel: 2e-2, Abs: 1, SmallValue: 5}
)

// SVDResidualBudget is the acceptance ceiling consumers apply to
// ReconstructionResidual when judging a full decomposition.
const SVDResidualBudget = 1e-6

// Equal reports whether got matches want under t. NaN never matches,
// including NaN-to-NaN.
func (t Tolerance) Equal(want, got float64) bool {
	if math.IsNaN(want) || math.IsNaN(got) {
		return false
	}
	diff := math.Abs(want - got)
	aw, ag := math.Abs(want), math.Abs(got)
	if aw < t.SmallValue && ag < t.SmallValue {
		return diff <= t.Abs
	}

	return diff <= t.Rel*math.Max(aw, ag)
}
