// SPDX-License-Identifier: MIT
//
// Package fixture - serialized fixture schema.
//
// The JSON field names spelled in the struct tags below are the
// cross-language contract. Consumers in any language key on
// name/input/expected and the per-kernel payload fields; renaming a tag
// is a breaking change even when the Go identifiers stay put.
package fixture

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/goldvec/goldvec/matrix"
)

// Input carries one dense row-major matrix payload of width×height values.
type Input[T matrix.Float] struct {
	Data   []T `json:"data"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// newInput snapshots a Dense matrix into a serializable payload.
// Dense.Data already copies, so the payload never aliases the matrix.
func newInput[T matrix.Float](m *matrix.Dense[T]) Input[T] {
	return Input[T]{Data: m.Data(), Width: m.Width(), Height: m.Height()}
}

// Matrix materializes the payload as a Dense matrix (copying the data).
// Returns matrix.ErrInvalidShape when width/height disagree with the
// payload length.
func (in Input[T]) Matrix() (*matrix.Dense[T], error) {
	return matrix.FromSlice[T](in.Width, in.Height, in.Data)
}

// DCTCase pairs a float32 matrix with its forward DCT-II coefficients.
type DCTCase struct {
	Name     string         `json:"name"`
	Input    Input[float32] `json:"input"`
	Expected DCTExpected    `json:"expected"`
}

// DCTExpected holds the row-major coefficient plane, same shape as the input.
type DCTExpected struct {
	DCT []float32 `json:"dct"`
}

// SVDCase pairs a float64 matrix with its full decomposition.
type SVDCase struct {
	Name     string         `json:"name"`
	Input    Input[float64] `json:"input"`
	Expected SVDExpected    `json:"expected"`
}

// SVDExpected holds the spectrum and both factors, row-major flattened.
// U and Vt columns/rows are recorded up to sign; compare with
// verify.EqualUpToColumnSign / verify.EqualUpToRowSign, never elementwise.
type SVDExpected struct {
	SingularValues []float64 `json:"singular_values"`
	U              []float64 `json:"u"`
	Vt             []float64 `json:"vt"`
}

// DWTCase pairs a float32 matrix with its four Haar subbands.
type DWTCase struct {
	Name     string         `json:"name"`
	Input    Input[float32] `json:"input"`
	Expected DWTExpected    `json:"expected"`
}

// DWTExpected holds the half-size subband planes. The mixed-case JSON
// keys (cA/cH/cV/cD) follow the wavelet literature and stay as-is.
type DWTExpected struct {
	CA []float32 `json:"cA"`
	CH []float32 `json:"cH"`
	CV []float32 `json:"cV"`
	CD []float32 `json:"cD"`
}

// YUVCase pairs an interleaved 8-bit RGB buffer with its YUV conversion.
type YUVCase struct {
	Name     string      `json:"name"`
	Input    PixelInput  `json:"input"`
	Expected YUVExpected `json:"expected"`
}

// PixelInput carries width×height interleaved R,G,B triplets.
type PixelInput struct {
	RGB    Levels `json:"rgb"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// YUVExpected holds the matching interleaved Y,U,V triplets.
type YUVExpected struct {
	YUV Levels `json:"yuv"`
}

// Levels is a flat list of 8-bit channel values. encoding/json would
// base64-encode a plain []uint8; the fixture contract requires plain
// number arrays, so Levels carries its own codec.
type Levels []uint8

// MarshalJSON renders the levels as a JSON array of integers.
func (l Levels) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("null"), nil
	}
	var buf = make([]byte, 0, 4*len(l)+2)
	buf = append(buf, '[')
	for i, v := range l {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendUint(buf, uint64(v), 10)
	}
	return append(buf, ']'), nil
}

// UnmarshalJSON parses a JSON array of integers, rejecting any value
// outside the 0..255 byte range.
func (l *Levels) UnmarshalJSON(data []byte) error {
	var raw []int
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("fixture: decode levels: %w", err)
	}
	var out = make(Levels, len(raw))
	for i, v := range raw {
		if v < 0 || v > 255 {
			return fmt.Errorf("fixture: level %d out of byte range: %d", i, v)
		}
		out[i] = uint8(v)
	}
	*l = out
	return nil
}
