// SPDX-License-Identifier: MIT
//
// Package fixture - deterministic case synthesis.
//
// Each XxxCases method walks a fixed inventory of named inputs, runs the
// matching kernel to obtain the expectation, and records the pair. The
// curated entries pin canonical blocks, rectangular and odd shapes and
// degenerate inputs; the random fill-ins draw from the kernel's private
// stream (rng.go), so rebuilding any list is reproducible regardless of
// what was generated before it.
package fixture

import (
	"fmt"
	"math/rand"

	"github.com/goldvec/goldvec/dct"
	"github.com/goldvec/goldvec/dwt"
	"github.com/goldvec/goldvec/matrix"
	"github.com/goldvec/goldvec/svd"
	"github.com/goldvec/goldvec/yuv"
)

// Generator builds the curated fixture case lists for all four kernels.
//
// The zero seed selects the library default; any other seed yields a
// different but equally deterministic family of random cases. The only
// mutable state is the shared DCT plan cache, which synchronizes itself,
// so one instance may serve many goroutines.
type Generator struct {
	seed  int64
	plans *dct.Cache[float32]
}

// NewGenerator returns a Generator over the given base seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{seed: seed, plans: dct.NewCache[float32]()}
}

// Seed reports the base seed as passed in (0 means "library default").
func (g *Generator) Seed() int64 { return g.seed }

// planSpec is one named matrix inventory entry shared by the DCT, SVD and
// DWT builders. Case names follow the rows×cols convention, so a
// "4x2_rectangular" entry carries width=2, height=4.
type planSpec[T matrix.Float] struct {
	name          string
	width, height int
	data          []T
}

// DCTCases builds the forward-DCT inventory: canonical 2x2 and 4x4
// blocks, a non-power-of-two square, both rectangular orientations, an
// all-zero plane and one seeded random plane.
func (g *Generator) DCTCases() ([]DCTCase, error) {
	var rng = streamRNG(g.seed, streamDCT)
	var specs = []planSpec[float32]{
		{"2x2_simple", 2, 2, []float32{1, 2, 3, 4}},
		{"4x4_sequential", 4, 4, sequence[float32](16, 1)},
		{"3x3_non_power_of_two", 3, 3, []float32{1, 4, 7, 2, 5, 8, 3, 6, 9}},
		{"4x2_rectangular", 2, 4, sequence[float32](8, 1)},
		{"2x4_rectangular", 4, 2, sequence[float32](8, 1)},
		{"3x3_zeros", 3, 3, make([]float32, 9)},
		{"3x4_random", 4, 3, randomF32(rng, 12, 10)},
	}

	var cases = make([]DCTCase, 0, len(specs))
	for _, sp := range specs {
		m, err := matrix.FromSlice[float32](sp.width, sp.height, sp.data)
		if err != nil {
			return nil, fmt.Errorf("fixture: dct case %q: %w", sp.name, err)
		}
		plan, err := g.plans.Plan(sp.width, sp.height)
		if err != nil {
			return nil, fmt.Errorf("fixture: dct case %q: %w", sp.name, err)
		}
		coef, err := plan.Transform(m)
		if err != nil {
			return nil, fmt.Errorf("fixture: dct case %q: %w", sp.name, err)
		}
		cases = append(cases, DCTCase{
			Name:     sp.name,
			Input:    newInput(m),
			Expected: DCTExpected{DCT: coef.Data()},
		})
	}
	return cases, nil
}

// SVDCases builds the decomposition inventory: a symmetric 2x2, the
// rank-deficient sequential 3x3, both rectangular orientations, identity
// and diagonal spectra, plus one seeded random plane.
func (g *Generator) SVDCases() ([]SVDCase, error) {
	var rng = streamRNG(g.seed, streamSVD)
	var specs = []planSpec[float64]{
		{"2x2_simple", 2, 2, []float64{3, 1, 1, 3}},
		{"3x3_sequential", 3, 3, sequence[float64](9, 1)},
		{"3x2_tall_rectangular", 2, 3, sequence[float64](6, 1)},
		{"2x3_wide_rectangular", 3, 2, sequence[float64](6, 1)},
		{"3x3_identity", 3, 3, identity(3)},
		{"3x3_diagonal", 3, 3, []float64{5, 0, 0, 0, 3, 0, 0, 0, 1}},
		{"2x4_random", 4, 2, randomF64(rng, 8, 1)},
	}

	var cases = make([]SVDCase, 0, len(specs))
	for _, sp := range specs {
		m, err := matrix.FromSlice[float64](sp.width, sp.height, sp.data)
		if err != nil {
			return nil, fmt.Errorf("fixture: svd case %q: %w", sp.name, err)
		}
		d, err := svd.Decompose(m)
		if err != nil {
			return nil, fmt.Errorf("fixture: svd case %q: %w", sp.name, err)
		}
		cases = append(cases, SVDCase{
			Name:  sp.name,
			Input: newInput(m),
			Expected: SVDExpected{
				SingularValues: d.S,
				U:              d.U.Data(),
				Vt:             d.Vt.Data(),
			},
		})
	}
	return cases, nil
}

// DWTCases builds the Haar-decomposition inventory: small and large
// squares, a rectangle, odd and non-power-of-two shapes, a checkerboard
// that concentrates all energy in cA/cD, and one seeded random plane.
func (g *Generator) DWTCases() ([]DWTCase, error) {
	var rng = streamRNG(g.seed, streamDWT)
	var specs = []planSpec[float32]{
		{"4x4_simple", 4, 4, sequence[float32](16, 1)},
		{"6x4_rectangle", 4, 6, []float32{
			1, 3, 5, 7,
			2, 4, 6, 8,
			9, 11, 13, 15,
			10, 12, 14, 16,
			17, 19, 21, 23,
			18, 20, 22, 24,
		}},
		{"3x3_odd", 3, 3, sequence[float32](9, 1)},
		{"8x8_square", 8, 8, sequence[float32](64, 1)},
		{"16x8_random", 8, 16, randomF32(rng, 128, 100)},
		{"16x16_checkerboard", 16, 16, checkerboard(16, 16, 100)},
		{"10x12_non_power_of_two", 12, 10, sequence[float32](120, 1)},
	}

	var cases = make([]DWTCase, 0, len(specs))
	for _, sp := range specs {
		m, err := matrix.FromSlice[float32](sp.width, sp.height, sp.data)
		if err != nil {
			return nil, fmt.Errorf("fixture: dwt case %q: %w", sp.name, err)
		}
		sb, err := dwt.Decompose(m)
		if err != nil {
			return nil, fmt.Errorf("fixture: dwt case %q: %w", sp.name, err)
		}
		cases = append(cases, DWTCase{
			Name:  sp.name,
			Input: newInput(m),
			Expected: DWTExpected{
				CA: sb.CA.Data(),
				CH: sb.CH.Data(),
				CV: sb.CV.Data(),
				CD: sb.CD.Data(),
			},
		})
	}
	return cases, nil
}

// YUVCases builds the color-conversion inventory: the primary colors,
// a grayscale ramp, a seeded random frame, clamp-edge grays and a single
// mixed pixel.
func (g *Generator) YUVCases() ([]YUVCase, error) {
	var rng = streamRNG(g.seed, streamYUV)
	var specs = []struct {
		name          string
		width, height int
		rgb           Levels
	}{
		{"2x2_primary_colors", 2, 2, Levels{
			255, 0, 0, 0, 255, 0,
			0, 0, 255, 255, 255, 255,
		}},
		{"3x3_grayscale", 3, 3, grayLevels(0, 64, 128, 192, 255, 32, 96, 160, 224)},
		{"4x4_random", 4, 4, randomLevels(rng, 48)},
		{"2x2_edge_cases", 2, 2, Levels{
			0, 0, 0, 255, 255, 255,
			128, 128, 128, 127, 127, 127,
		}},
		{"1x1_single_pixel", 1, 1, Levels{100, 150, 200}},
	}

	var cases = make([]YUVCase, 0, len(specs))
	for _, sp := range specs {
		out, err := yuv.FromRGBBuffer(sp.rgb)
		if err != nil {
			return nil, fmt.Errorf("fixture: yuv case %q: %w", sp.name, err)
		}
		cases = append(cases, YUVCase{
			Name:     sp.name,
			Input:    PixelInput{RGB: sp.rgb, Width: sp.width, Height: sp.height},
			Expected: YUVExpected{YUV: out},
		})
	}
	return cases, nil
}

// sequence returns n consecutive values start, start+1, start+2, ...
func sequence[T matrix.Float](n int, start T) []T {
	var out = make([]T, n)
	for i := range out {
		out[i] = start + T(i)
	}
	return out
}

// identity returns the flattened n×n identity matrix.
func identity(n int) []float64 {
	var out = make([]float64, n*n)
	for i := 0; i < n; i++ {
		out[i*n+i] = 1
	}
	return out
}

// checkerboard returns a width×height plane holding high on even
// (row+col) parity and zero elsewhere.
func checkerboard(width, height int, high float32) []float32 {
	var out = make([]float32, width*height)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if (row+col)%2 == 0 {
				out[row*width+col] = high
			}
		}
	}
	return out
}

// grayLevels expands per-pixel gray values into interleaved RGB triplets.
func grayLevels(levels ...uint8) Levels {
	var out = make(Levels, 0, 3*len(levels))
	for _, v := range levels {
		out = append(out, v, v, v)
	}
	return out
}

// randomF32 draws n uniform float32 values in [0, scale).
func randomF32(rng *rand.Rand, n int, scale float32) []float32 {
	var out = make([]float32, n)
	for i := range out {
		out[i] = rng.Float32() * scale
	}
	return out
}

// randomF64 draws n uniform float64 values in [0, scale).
func randomF64(rng *rand.Rand, n int, scale float64) []float64 {
	var out = make([]float64, n)
	for i := range out {
		out[i] = rng.Float64() * scale
	}
	return out
}

// randomLevels draws n uniform byte levels in [0, 255].
func randomLevels(rng *rand.Rand, n int) Levels {
	var out = make(Levels, n)
	for i := range out {
		out[i] = uint8(rng.Intn(256))
	}
	return out
}
