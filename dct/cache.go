// Package dct: Cache shares Plans between goroutines.
package dct

import (
	"sync"

	"github.com/goldvec/goldvec/matrix"
)

// Cache hands out one Plan per distinct width×height, building lazily on
// first request. Safe for concurrent use; duplicate builds under a race are
// resolved by LoadOrStore, so every caller observes the same instance.
type Cache[T matrix.Float] struct {
	plans sync.Map // [2]int{width, height} → *Plan[T]
}

// NewCache returns an empty plan cache.
func NewCache[T matrix.Float]() *Cache[T] {
	return &Cache[T]{}
}

// Plan returns the cached plan for width×height, building it if absent.
// Returns matrix.ErrInvalidShape for dimensions below 1.
func (c *Cache[T]) Plan(width, height int) (*Plan[T], error) {
	key := [2]int{width, height}
	if v, ok := c.plans.Load(key); ok {
		return v.(*Plan[T]), nil
	}
	p, err := New[T](width, height)
	if err != nil {
		return nil, err
	}
	actual, _ := c.plans.LoadOrStore(key, p)

	return actual.(*Plan[T]), nil
}
