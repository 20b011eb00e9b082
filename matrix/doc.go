// Package matrix provides the dense numeric matrix model shared by the
// transform kernels (dct, svd, dwt) and the fixture emitter.
//
// The matrix package provides:
//
//   - Dense[T], a generic row-major matrix over float32 or float64,
//     sized by explicit width (columns) and height (rows).
//   - Copying constructors (New, FromSlice, FromFunc) so callers can never
//     alias internal storage.
//   - Validators for nil, shape and finiteness shared by every kernel.
//
// Dense is value-oriented: constructors copy their input, Data returns a
// fresh slice, and kernels return new matrices instead of mutating their
// argument. All failures surface as the sentinel errors in errors.go,
// matched via errors.Is; nothing in this package panics on user input.
package matrix
