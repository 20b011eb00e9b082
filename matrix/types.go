// Package matrix: shared numeric constraints.
package matrix

// Float enumerates the element types a Dense matrix can carry.
//
// The kernels split precision deliberately: pixel-domain transforms
// (dct, dwt) and color conversion run on float32, while svd demands
// float64 throughout. Keeping the constraint here lets each kernel state
// its precision in signatures instead of converting at call sites.
type Float interface {
	~float32 | ~float64
}
