// Package matrix: Dense is a concrete, row-major matrix generic over Float,
// storing elements in a flat slice for performance and cache friendliness.
package matrix

import "fmt"

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major width×height matrix of floating point values.
// w is the number of columns, h the number of rows, and data holds
// w*h elements in row-major order (element (row,col) at data[row*w+col]).
//
// Constructors copy their input and Data returns a fresh slice, so a Dense
// never shares storage with caller-owned memory.
type Dense[T Float] struct {
	w, h int // columns, rows
	data []T // flat backing storage, length == w*h
}

// New creates a width×height Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure width and height > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidShape.
// Complexity: O(w*h) time and memory.
func New[T Float](width, height int) (*Dense[T], error) {
	// Validate dimensions
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidShape
	}

	// Return initialized Dense over a fresh zero slice
	return &Dense[T]{w: width, h: height, data: make([]T, width*height)}, nil
}

// FromSlice creates a width×height Dense from row-major data.
// The slice is copied; the caller keeps ownership of data.
// Returns ErrInvalidShape when width or height < 1 or len(data) != width*height.
// Complexity: O(w*h) time and memory.
func FromSlice[T Float](width, height int, data []T) (*Dense[T], error) {
	// Validate dimensions against the provided slice
	if width <= 0 || height <= 0 || len(data) != width*height {
		return nil, ErrInvalidShape
	}
	// Copy into private backing storage
	buf := make([]T, len(data))
	copy(buf, data)

	return &Dense[T]{w: width, h: height, data: buf}, nil
}

// FromFunc creates a width×height Dense whose element at (row, col) is
// fill(row, col). Handy for synthetic inputs such as gradients or
// checkerboards.
// Complexity: O(w*h) calls to fill.
func FromFunc[T Float](width, height int, fill func(row, col int) T) (*Dense[T], error) {
	m, err := New[T](width, height)
	if err != nil {
		return nil, err
	}
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			m.data[r*width+c] = fill(r, c)
		}
	}

	return m, nil
}

// Width returns the number of columns.
// Complexity: O(1).
func (m *Dense[T]) Width() int {
	return m.w // return stored column count
}

// Height returns the number of rows.
// Complexity: O(1).
func (m *Dense[T]) Height() int {
	return m.h // return stored row count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.h {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.w {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.w + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Data returns a copy of the backing slice in row-major order.
// Mutating the returned slice does not affect the matrix.
// Complexity: O(w*h).
func (m *Dense[T]) Data() []T {
	buf := make([]T, len(m.data))
	copy(buf, m.data)

	return buf
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(w*h) time and memory.
func (m *Dense[T]) Clone() *Dense[T] {
	buf := make([]T, len(m.data))
	copy(buf, m.data)

	return &Dense[T]{w: m.w, h: m.h, data: buf}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(w*h) for string construction.
func (m *Dense[T]) String() string {
	var s string
	for r := 0; r < m.h; r++ { // iterate over rows
		s += "["                  // open row
		for c := 0; c < m.w; c++ { // iterate over columns
			// compute flat index directly for performance
			s += fmt.Sprintf("%g", m.data[r*m.w+c])
			if c < m.w-1 {
				s += ", " // separate values with comma
			}
		}
		s += "]\n" // close row
	}

	return s
}
