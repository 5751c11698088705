/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cast"
	"github.com/suparena/enumb/errors"
)

// Entry is a single enumerator: a name and the value registered under it.
type Entry[V comparable] struct {
	Name  string
	Value V
}

// Registry holds the enumerators of one enumerated type in registration order.
// It is safe for concurrent use.
type Registry[V comparable] struct {
	mu        sync.RWMutex
	typeName  string
	entries   []Entry[V]
	index     map[string]int
	accessors map[string]func() V
}

// New creates an empty registry. typeName is used in error messages.
func New[V comparable](typeName string) *Registry[V] {
	return &Registry[V]{
		typeName:  typeName,
		index:     make(map[string]int),
		accessors: make(map[string]func() V),
	}
}

// TypeName returns the name of the enumerated type that owns the registry.
func (r *Registry[V]) TypeName() string {
	return r.typeName
}

// Register adds the enumerator name with the given value. Registering a name
// again replaces its value in place; the existing accessor then returns the
// new value.
func (r *Registry[V]) Register(name string, value V) error {
	if name == "" {
		return errors.NewValidationError("name", "enumerator name must not be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if i, exists := r.index[name]; exists {
		r.entries[i].Value = value
		return nil
	}
	r.index[name] = len(r.entries)
	r.entries = append(r.entries, Entry[V]{Name: name, Value: value})
	r.accessors[name] = r.bind(name)
	return nil
}

// Define registers value under the string form of name. Names that cannot be
// converted to a string are rejected.
func (r *Registry[V]) Define(name any, value V) error {
	s, err := toDescriptor(name)
	if err != nil {
		return err
	}
	return r.Register(s, value)
}

// RegisterPairs registers a single name/value pair given as a map.
// Passing zero or several pairs is an error.
func (r *Registry[V]) RegisterPairs(pairs map[string]V) error {
	if len(pairs) != 1 {
		return errors.NewValidationError("pairs",
			fmt.Sprintf("%d name/value pairs passed, only a single pair is accepted", len(pairs)))
	}
	for name, value := range pairs {
		return r.Register(name, value)
	}
	return nil
}

// MustRegister panics on registration error. Useful from init() blocks.
func (r *Registry[V]) MustRegister(name string, value V) {
	if err := r.Register(name, value); err != nil {
		panic(err)
	}
}

// bind returns an accessor that reads name at call time.
func (r *Registry[V]) bind(name string) func() V {
	return func() V {
		v, _ := r.Get(name)
		return v
	}
}

// Accessor returns the zero-argument accessor bound when name was first
// registered. The accessor reads the registry on every call.
func (r *Registry[V]) Accessor(name string) (func() V, error) {
	r.mu.RLock()
	fn, ok := r.accessors[name]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.NewNotFoundError(r.typeName, name)
	}
	return fn, nil
}

// Get returns the value registered under the exact name.
func (r *Registry[V]) Get(name string) (V, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[name]
	if !ok {
		var zero V
		return zero, false
	}
	return r.entries[i].Value, true
}

// MustGet returns the value registered under name and panics with a
// NotFoundError when there is none. Generated accessors dispatch through it.
func (r *Registry[V]) MustGet(name string) V {
	v, ok := r.Get(name)
	if !ok {
		panic(errors.NewNotFoundError(r.typeName, name))
	}
	return v
}

// Parse looks up a value by descriptor, ignoring case. When several names fold
// to the same descriptor the earliest registered one wins. A descriptor with
// no match yields ok == false and a nil error.
func (r *Registry[V]) Parse(descriptor any) (V, bool, error) {
	var zero V
	s, err := toDescriptor(descriptor)
	if err != nil {
		return zero, false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if strings.EqualFold(e.Name, s) {
			return e.Value, true, nil
		}
	}
	return zero, false, nil
}

// Descriptor returns the name of the first enumerator, in registration order,
// whose value equals value.
func (r *Registry[V]) Descriptor(value V) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.Value == value {
			return e.Name, true
		}
	}
	return "", false
}

// Names returns the enumerator names in registration order.
func (r *Registry[V]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return names
}

// Entries returns a snapshot of all enumerators in registration order.
func (r *Registry[V]) Entries() []Entry[V] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry[V], len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of registered enumerators.
func (r *Registry[V]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func toDescriptor(name any) (string, error) {
	if name == nil {
		return "", errors.NewValidationError("name", "descriptor must not be nil")
	}
	s, err := cast.ToStringE(name)
	if err != nil {
		return "", errors.NewValidationError("name", fmt.Sprintf("%T is not convertible to string", name))
	}
	return s, nil
}
