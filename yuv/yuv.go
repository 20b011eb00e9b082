package yuv

import (
	"errors"
	"math"
)

// Full-range BT.601 analysis coefficients (the JPEG YCbCr matrix).
const (
	yr, yg, yb = 0.299, 0.587, 0.114
	ur, ug, ub = -0.168736, -0.331264, 0.5
	vr, vg, vb = 0.5, -0.418688, -0.081312

	// delta recenters both chroma channels into unsigned 8-bit range.
	delta = 128
)

// Synthesis coefficients: the analysis matrix inverted, i.e. the standard
// JFIF constants. Keeping the exact inverse bounds round-trip drift to one
// quantization step per channel.
const (
	rv = 1.402
	gu = -0.344136
	gv = -0.714136
	bu = 1.772
)

// ErrBufferLength reports a flat pixel buffer whose length is not a
// multiple of 3.
var ErrBufferLength = errors.New("yuv: buffer length must be a multiple of 3")

// RGB is one full-range 8-bit RGB pixel.
type RGB struct {
	R, G, B uint8
}

// YUV is one full-range 8-bit YCbCr pixel (U = Cb, V = Cr).
type YUV struct {
	Y, U, V uint8
}

// quantize rounds half away from zero and clamps into [0,255].
func quantize(v float64) uint8 {
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}

	return uint8(r)
}

// clampLevel forces an arbitrary integer level into [0,255].
func clampLevel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}

	return uint8(v)
}

// FromRGB converts one pixel to YCbCr.
//
// Grays land at (g, 128, 128) because each chroma row of the analysis
// matrix sums to zero; saturated primaries clamp (pure red hits V=255).
func FromRGB(p RGB) YUV {
	r, g, b := float64(p.R), float64(p.G), float64(p.B)

	return YUV{
		Y: quantize(yr*r + yg*g + yb*b),
		U: quantize(ur*r + ug*g + ub*b + delta),
		V: quantize(vr*r + vg*g + vb*b + delta),
	}
}

// ToRGB converts one YCbCr pixel back to RGB.
func ToRGB(p YUV) RGB {
	y := float64(p.Y)
	u := float64(p.U) - delta
	v := float64(p.V) - delta

	return RGB{
		R: quantize(y + rv*v),
		G: quantize(y + gu*u + gv*v),
		B: quantize(y + bu*u),
	}
}

// FromRGBLevels converts integer channel levels, clamping each into
// [0,255] first. Out-of-range input is clamped, never rejected.
func FromRGBLevels(r, g, b int) YUV {
	return FromRGB(RGB{R: clampLevel(r), G: clampLevel(g), B: clampLevel(b)})
}

// ConvertRGB converts a pixel slice to YCbCr. A nil input yields nil.
func ConvertRGB(pixels []RGB) []YUV {
	if pixels == nil {
		return nil
	}

	out := make([]YUV, len(pixels))
	for i, p := range pixels {
		out[i] = FromRGB(p)
	}

	return out
}

// ConvertYUV converts a pixel slice back to RGB. A nil input yields nil.
func ConvertYUV(pixels []YUV) []RGB {
	if pixels == nil {
		return nil
	}

	out := make([]RGB, len(pixels))
	for i, p := range pixels {
		out[i] = ToRGB(p)
	}

	return out
}

// FromRGBBuffer converts a flat R,G,B,R,G,B,... buffer into the matching
// flat Y,U,V buffer. The input is left untouched.
// Returns ErrBufferLength when len(buf) is not a multiple of 3.
func FromRGBBuffer(buf []uint8) ([]uint8, error) {
	if len(buf)%3 != 0 {
		return nil, ErrBufferLength
	}

	out := make([]uint8, len(buf))
	for i := 0; i < len(buf); i += 3 {
		p := FromRGB(RGB{R: buf[i], G: buf[i+1], B: buf[i+2]})
		out[i], out[i+1], out[i+2] = p.Y, p.U, p.V
	}

	return out, nil
}

// ToRGBBuffer converts a flat Y,U,V,Y,U,V,... buffer back into the
// matching flat RGB buffer.
// Returns ErrBufferLength when len(buf) is not a multiple of 3.
func ToRGBBuffer(buf []uint8) ([]uint8, error) {
	if len(buf)%3 != 0 {
		return nil, ErrBufferLength
	}

	out := make([]uint8, len(buf))
	for i := 0; i < len(buf); i += 3 {
		p := ToRGB(YUV{Y: buf[i], U: buf[i+1], V: buf[i+2]})
		out[i], out[i+1], out[i+2] = p.R, p.G, p.B
	}

	return out, nil
}
