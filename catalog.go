/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package enumb

import (
	"reflect"
	"sort"
	"sync"

	"github.com/suparena/enumb/registry"
)

// Catalog attaches exactly one enumerator registry to each Go type.
type Catalog struct {
	mu         sync.RWMutex
	registries map[reflect.Type]any
}

// NewCatalog creates an empty Catalog
func NewCatalog() *Catalog {
	return &Catalog{
		registries: make(map[reflect.Type]any),
	}
}

// Attach returns the registry for type T, creating it on first use
func Attach[T comparable](c *Catalog) *registry.Registry[T] {
	typ := reflect.TypeFor[T]()

	c.mu.RLock()
	r, exists := c.registries[typ]
	c.mu.RUnlock()
	if exists {
		return r.(*registry.Registry[T])
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another goroutine may have attached it between the two locks
	if r, exists := c.registries[typ]; exists {
		return r.(*registry.Registry[T])
	}
	newRegistry := registry.New[T](typeName(typ))
	c.registries[typ] = newRegistry
	return newRegistry
}

// Types returns the names of all types with an attached registry, sorted
func (c *Catalog) Types() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.registries))
	for typ := range c.registries {
		names = append(names, typeName(typ))
	}
	sort.Strings(names)
	return names
}

// Len returns the number of attached registries
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.registries)
}

func typeName(typ reflect.Type) string {
	if typ.Name() != "" {
		return typ.Name()
	}
	return typ.String()
}

var defaultCatalog = NewCatalog()

// For returns the process-wide registry of the enumerated type T.
func For[T comparable]() *registry.Registry[T] {
	return Attach[T](defaultCatalog)
}

// Types lists the types that have a registry in the process-wide catalog.
func Types() []string {
	return defaultCatalog.Types()
}

// Convenience wrappers over For[T]()

// Register adds an enumerator to T's registry
func Register[T comparable](name string, value T) error {
	return For[T]().Register(name, value)
}

// Parse looks up a T by case-insensitive descriptor
func Parse[T comparable](descriptor any) (T, bool, error) {
	return For[T]().Parse(descriptor)
}

// Descriptor returns the name registered for value
func Descriptor[T comparable](value T) (string, bool) {
	return For[T]().Descriptor(value)
}

// Values returns every registered T in registration order
func Values[T comparable]() []T {
	return For[T]().Values()
}

// Contains reports whether value is a registered T
func Contains[T comparable](value T) bool {
	return For[T]().Contains(value)
}
