package utils

import "fmt"

// LookupCopy returns a copy of the value at key in m.
// Returns an error if the key is absent or the stored pointer is nil.
// The caller receives a detached value that later edits to m cannot reach.
func LookupCopy[K comparable, T any](m map[K]*T, key K) (T, error) {
	v := m[key]
	if v == nil {
		var zero T
		return zero, fmt.Errorf("%v not found", key)
	}
	return *v, nil
}
