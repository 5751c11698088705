/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"iter"
	"slices"
)

// Values returns the registered values in registration order.
func (r *Registry[V]) Values() []V {
	r.mu.RLock()
	defer r.mu.RUnlock()

	values := make([]V, len(r.entries))
	for i, e := range r.entries {
		values[i] = e.Value
	}
	return values
}

// All returns an iterator over the registered values. Each iteration starts
// from a fresh snapshot, so the sequence can be ranged over more than once.
func (r *Registry[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range r.Values() {
			if !yield(v) {
				return
			}
		}
	}
}

// Each calls fn for every registered value in registration order.
func (r *Registry[V]) Each(fn func(V)) {
	for v := range r.All() {
		fn(v)
	}
}

// Contains reports whether v equals any registered value.
func (r *Registry[V]) Contains(v V) bool {
	return slices.Contains(r.Values(), v)
}

// Map applies fn to every registered value of r and returns the results in
// registration order.
func Map[V comparable, R any](r *Registry[V], fn func(V) R) []R {
	values := r.Values()
	out := make([]R, 0, len(values))
	for _, v := range values {
		out = append(out, fn(v))
	}
	return out
}
