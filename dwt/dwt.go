package dwt

import (
	"math"

	"github.com/goldvec/goldvec/matrix"
)

// Subbands bundles the single-level Haar subbands of a width×height source.
// Each plane is ⌈w/2⌉×⌈h/2⌉; odd sources duplicate their last row/column
// before pairing, so no samples are lost.
//
// Build values through Decompose or NewSubbands; both record the source
// dimensions that Reconstruct needs to restore the exact original shape.
type Subbands[T matrix.Float] struct {
	CA *matrix.Dense[T] // approximation (low-low)
	CH *matrix.Dense[T] // horizontal detail: differences between row pairs
	CV *matrix.Dense[T] // vertical detail: differences between column pairs
	CD *matrix.Dense[T] // diagonal detail

	w, h int // source dimensions, kept for exact reconstruction
}

// SourceWidth returns the width of the decomposed source.
func (s *Subbands[T]) SourceWidth() int { return s.w }

// SourceHeight returns the height of the decomposed source.
func (s *Subbands[T]) SourceHeight() int { return s.h }

// half rounds n/2 up; odd dimensions keep their duplicated edge sample.
func half(n int) int { return (n + 1) / 2 }

// split is one normalized Haar pair step: a = (v1+v2)/√2, d = (v1−v2)/√2,
// computed average-first so all arithmetic stays in T precision.
func split[T matrix.Float](v1, v2 T) (a, d T) {
	avg := (v1 + v2) / 2

	return avg * math.Sqrt2, (v1 - avg) * math.Sqrt2
}

// merge inverts split up to rounding: v1 = (a+d)/√2, v2 = (a−d)/√2.
func merge[T matrix.Float](a, d T) (v1, v2 T) {
	avg := a / math.Sqrt2
	dev := d / math.Sqrt2

	return avg + dev, avg - dev
}

// Decompose runs one level of the 2-D Haar transform on m.
//
// Description:
//
//	Each 2×2 block passes through the pair step twice: once along the
//	two columns, once along the row of column outputs. The four results
//	land at the same index of the four subband planes. At an odd edge
//	the missing neighbor is the edge sample itself, so the step
//	degenerates to a = v·√2, d = 0.
//
// Errors:
//   - matrix.ErrNilMatrix — m is nil.
//   - matrix.ErrNonFinite — m contains NaN or ±Inf.
//
// Complexity: O(w·h).
func Decompose[T matrix.Float](m *matrix.Dense[T]) (*Subbands[T], error) {
	if err := matrix.ValidateInput(m); err != nil {
		return nil, err
	}
	w, h := m.Width(), m.Height()
	src := m.Data()
	hw, hh := half(w), half(h)

	ca := make([]T, hw*hh)
	ch := make([]T, hw*hh)
	cv := make([]T, hw*hh)
	cd := make([]T, hw*hh)

	for y0 := 0; y0 < h; y0 += 2 {
		y1 := y0 + 1
		if y1 >= h {
			y1 = y0 // duplicate the last row at an odd edge
		}
		for x0 := 0; x0 < w; x0 += 2 {
			x1 := x0 + 1
			if x1 >= w {
				x1 = x0 // duplicate the last column at an odd edge
			}

			// Column step on both columns of the 2×2 block.
			a1, d1 := split(src[y0*w+x0], src[y1*w+x0])
			a2, d2 := split(src[y0*w+x1], src[y1*w+x1])

			// Row step on the column outputs.
			idx := (y0/2)*hw + x0/2
			ca[idx], cv[idx] = split(a1, a2)
			ch[idx], cd[idx] = split(d1, d2)
		}
	}

	planes := make([]*matrix.Dense[T], 0, 4)
	for _, buf := range [][]T{ca, ch, cv, cd} {
		plane, err := matrix.FromSlice(hw, hh, buf)
		if err != nil {
			return nil, err
		}
		planes = append(planes, plane)
	}

	return &Subbands[T]{CA: planes[0], CH: planes[1], CV: planes[2], CD: planes[3], w: w, h: h}, nil
}

// NewSubbands assembles a Subbands value from four recorded planes and the
// source dimensions they came from, validating that every plane has the
// expected ⌈w/2⌉×⌈h/2⌉ shape. Use it to rebuild a decomposition from
// serialized data before calling Reconstruct.
func NewSubbands[T matrix.Float](width, height int, cA, cH, cV, cD *matrix.Dense[T]) (*Subbands[T], error) {
	if err := matrix.ValidateDims(width, height); err != nil {
		return nil, err
	}
	s := &Subbands[T]{CA: cA, CH: cH, CV: cV, CD: cD, w: width, h: height}
	if err := s.validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// validate checks plane presence and agreement with the source shape.
func (s *Subbands[T]) validate() error {
	hw, hh := half(s.w), half(s.h)
	for _, plane := range []*matrix.Dense[T]{s.CA, s.CH, s.CV, s.CD} {
		if err := matrix.ValidateNotNil(plane); err != nil {
			return err
		}
		if plane.Width() != hw || plane.Height() != hh {
			return matrix.ErrDimensionMismatch
		}
	}

	return nil
}

// Reconstruct inverts the decomposition back to the original width×height
// matrix. Round-trips are exact up to floating point rounding; duplicated
// edge samples collapse back into one.
//
// Errors:
//   - matrix.ErrNilMatrix         — the receiver or a plane is missing.
//   - matrix.ErrDimensionMismatch — planes disagree with the source shape.
//
// Complexity: O(w·h).
func (s *Subbands[T]) Reconstruct() (*matrix.Dense[T], error) {
	if s == nil {
		return nil, matrix.ErrNilMatrix
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	w, h := s.w, s.h
	hw := half(w)
	ca, ch, cv, cd := s.CA.Data(), s.CH.Data(), s.CV.Data(), s.CD.Data()

	out := make([]T, w*h)
	for y0 := 0; y0 < h; y0 += 2 {
		y1 := y0 + 1
		for x0 := 0; x0 < w; x0 += 2 {
			x1 := x0 + 1
			idx := (y0/2)*hw + x0/2

			// Undo the row step, then the column step.
			a1, a2 := merge(ca[idx], cv[idx])
			d1, d2 := merge(ch[idx], cd[idx])
			v00, v10 := merge(a1, d1)
			v01, v11 := merge(a2, d2)

			// Duplicated edge samples are simply not written back.
			out[y0*w+x0] = v00
			if x1 < w {
				out[y0*w+x1] = v01
			}
			if y1 < h {
				out[y1*w+x0] = v10
				if x1 < w {
					out[y1*w+x1] = v11
				}
			}
		}
	}

	return matrix.FromSlice(w, h, out)
}
