// Copyright 2026 The Chime Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "sync"

// Registry is a registration point for externally supplied clock
// suppliers, in the manner of database/sql driver registration. A
// Resolver discovers "the first registered supplier, or none" from it.
//
// Registry is safe for concurrent use by multiple goroutines.
type Registry struct {
	mu      sync.Mutex
	nextID  uint64
	entries []registryEntry
}

type registryEntry struct {
	id       uint64
	supplier Supplier
}

// NewRegistry returns an empty Registry. Most callers use the package
// Registry via Register and Default; tests construct their own so
// registrations do not leak across tests.
func NewRegistry() *Registry { return &Registry{} }

// Register adds supplier to the registry and returns a function that
// removes it again. The unregister function is idempotent. Panics if
// supplier is nil.
func (r *Registry) Register(supplier Supplier) (unregister func()) {
	if supplier == nil {
		panic("clock: Register called with nil supplier")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	id := r.nextID
	r.entries = append(r.entries, registryEntry{id: id, supplier: supplier})
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		for i, entry := range r.entries {
			if entry.id == id {
				r.entries = append(r.entries[:i], r.entries[i+1:]...)
				return
			}
		}
	}
}

// Discover returns the earliest still-registered supplier, or nil when
// none is registered. The error is always nil; the signature matches
// DiscoverFunc so a Registry plugs directly into a Resolver.
func (r *Registry) Discover() (Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.entries) == 0 {
		return nil, nil
	}
	return r.entries[0].supplier, nil
}

// registry backs the package-level Register, Discover, and Default.
var registry = NewRegistry()

// Register adds supplier to the process-wide registry consulted by
// Default, and returns a function that removes it. Whether a
// registration made after the first Default call takes effect depends
// on the caching policy; see Default.
func Register(supplier Supplier) (unregister func()) {
	return registry.Register(supplier)
}

// Discover returns the process-wide registry's earliest registered
// supplier, or nil when none is registered.
func Discover() (Supplier, error) { return registry.Discover() }
