// Package yuv converts between full-range RGB and BT.601 YCbCr pixels,
// the 8-bit "YUV" convention used by JPEG.
//
// The yuv package provides:
//
//   - FromRGB / ToRGB for single pixels, ConvertRGB / ConvertYUV for
//     pixel slices, and the flat-buffer forms FromRGBBuffer / ToRGBBuffer
//     for interleaved triplet streams.
//   - FromRGBLevels, which clamps arbitrary integer levels into [0,255]
//     before converting — out-of-range input is clamped, never rejected.
//
// Both directions round half away from zero and clamp into [0,255]. The
// synthesis matrix is the exact inverse of the analysis matrix (the
// standard JFIF constants), so a round trip moves any channel by at most
// one quantization step, two where the forward pass clamped; it is not
// bit-exact, because each direction quantizes to 8 bits.
package yuv
