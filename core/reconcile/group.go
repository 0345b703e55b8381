package reconcile

import (
	"golang.org/x/sync/singleflight"
)

// Group collapses concurrent calls for the same key into one execution whose
// result every caller shares. It is used for get-or-create of shared records,
// where two racing payloads must not both create.
type Group[T any] struct {
	sf singleflight.Group
}

// Do runs fn once per key among concurrent callers.
func (g *Group[T]) Do(key string, fn func() (T, error)) (T, error) {
	result, err, _ := g.sf.Do(key, func() (interface{}, error) {
		return fn()
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result.(T), nil
}
