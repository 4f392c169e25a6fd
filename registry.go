package erasure

import (
	"maps"
	"sync/atomic"
)

// registry is a copy-on-write map. Lookups never lock, inserts replace
// the whole map using compare and swap.
type registry[K comparable, V any] struct {
	values atomic.Pointer[map[K]V]
}

func (r *registry[K, V]) lookup(key K) (V, bool) {
	values := r.values.Load()
	if values == nil {
		var zero V
		return zero, false
	}

	value, ok := (*values)[key]
	return value, ok
}

// ensure returns the value for key. If there is none yet, it is created by
// calling makeValue with the number of values registered so far.
// The second return value is true if this call registered the value.
func (r *registry[K, V]) ensure(key K, makeValue func(count int) V) (V, bool) {
	for {
		previous := r.values.Load()

		var current map[K]V
		if previous != nil {
			current = *previous
			if cached, ok := current[key]; ok {
				return cached, false
			}
		}

		value := makeValue(len(current))

		next := make(map[K]V, len(current)+1)
		maps.Copy(next, current)
		next[key] = value

		if r.values.CompareAndSwap(previous, &next) {
			return value, true
		}
	}
}
