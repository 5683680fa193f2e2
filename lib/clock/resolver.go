// Copyright 2026 The Chime Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/chime-foundation/chime/lib/settings"
)

// CachedFlagKey is the settings key controlling the default resolver's
// caching policy. See Default.
const CachedFlagKey = "clock.supplier.default.cached"

// Policy is the caching policy for default-supplier resolution,
// derived once from the settings flag.
type Policy int

const (
	// Cached resolves discovery once; the result is the permanent
	// process-wide default.
	Cached Policy = iota

	// NotCached makes the default supplier re-run discovery on every
	// Now call.
	NotCached
)

func (p Policy) String() string {
	if p == Cached {
		return "cached"
	}
	return "not-cached"
}

// parsePolicy applies the flag rule: permissive on absence, strict on
// presence. Only an exact case-insensitive "true" keeps caching on.
func parsePolicy(value string, present bool) Policy {
	if !present || strings.EqualFold(value, "true") {
		return Cached
	}
	return NotCached
}

// DiscoverFunc locates an externally supplied clock supplier.
// Returning (nil, nil) means none is available. Errors propagate to
// the caller of Default (or of the non-caching supplier's Now); the
// resolver never swallows them.
type DiscoverFunc func() (Supplier, error)

// Resolver computes a default supplier exactly once and returns the
// same instance on every subsequent call. The package-level Default
// uses a process-wide Resolver; construct one directly to inject a
// different discovery mechanism or settings source.
type Resolver struct {
	discover DiscoverFunc
	logger   *slog.Logger

	// policy evaluates the caching flag exactly once, even across
	// failed resolution attempts.
	policy func() Policy

	mu    sync.Mutex
	value atomic.Pointer[supplierBox]
}

// supplierBox wraps the resolved supplier so the atomic pointer has a
// single concrete type regardless of which supplier was chosen.
type supplierBox struct {
	supplier Supplier
}

// NewResolver returns a Resolver that discovers providers through
// discover and reads the caching flag through lookup. The flag is read
// at most once, on first resolution. logger may be nil; when set, the
// resolver logs the resolution outcome at debug level.
func NewResolver(discover DiscoverFunc, lookup settings.Lookup, logger *slog.Logger) *Resolver {
	r := &Resolver{discover: discover, logger: logger}
	r.policy = sync.OnceValue(func() Policy {
		value, present := lookup(CachedFlagKey)
		return parsePolicy(value, present)
	})
	return r
}

// Default returns the resolver's default supplier, computing it on
// first call:
//
//   - Policy Cached: discovery runs once; the discovered supplier (or
//     SystemUTC when none is found) is the permanent result.
//   - Policy NotCached: the permanent result is a wrapper that re-runs
//     discovery on each Now call, falling back to SystemUTC per call.
//
// Concurrent first callers are serialized; exactly one discovery pass
// completes and every caller observes the same instance. A discovery
// failure is returned to the caller and is not memoized — the next
// call retries discovery under the already-fixed policy.
func (r *Resolver) Default() (Supplier, error) {
	if box := r.value.Load(); box != nil {
		return box.supplier, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if box := r.value.Load(); box != nil {
		return box.supplier, nil
	}

	policy := r.policy()

	var resolved Supplier
	switch policy {
	case Cached:
		discovered, err := r.discover()
		if err != nil {
			return nil, fmt.Errorf("clock: discovering default supplier: %w", err)
		}
		if discovered == nil {
			discovered = SystemUTC()
		}
		resolved = discovered
	case NotCached:
		resolved = newNonCaching(r.discover)
	}

	if r.logger != nil {
		r.logger.Debug("resolved default clock supplier",
			"policy", policy.String(),
			"supplier", resolved.String())
	}

	r.value.Store(&supplierBox{supplier: resolved})
	return resolved, nil
}

// nonCaching re-runs discovery on every Now call. Its identity is
// stable — the resolver hands out the same wrapper forever — but its
// behavior follows the discovery state at each call.
type nonCaching struct {
	discover DiscoverFunc

	// last holds the display form of the supplier chosen by the most
	// recent Now call. Diagnostic only: concurrent Now calls may
	// interleave writes, but each call's returned reading is
	// internally consistent.
	last atomic.Value
}

const nonCachingUnresolved = "unresolved - call Now first"

func newNonCaching(discover DiscoverFunc) *nonCaching {
	n := &nonCaching{discover: discover}
	n.last.Store(nonCachingUnresolved)
	return n
}

func (n *nonCaching) Now() (Reading, error) {
	supplier, err := n.discover()
	if err != nil {
		return Reading{}, fmt.Errorf("clock: discovering supplier: %w", err)
	}
	if supplier == nil {
		supplier = SystemUTC()
	}
	n.last.Store(supplier.String())
	return supplier.Now()
}

func (n *nonCaching) String() string {
	return "clock.nonCaching(" + n.last.Load().(string) + ")"
}

// defaultResolver backs the package-level Default: the process-wide
// registry plus the process settings.
var defaultResolver = NewResolver(Discover, settings.Process(), nil)

// Default returns the process-wide default clock supplier: the first
// supplier registered via Register, or SystemUTC when none is
// registered.
//
// The result is resolved lazily, exactly once per process, and the
// same instance is returned from then on. The settings flag
// CachedFlagKey (environment variable
// CHIME_CLOCK_SUPPLIER_DEFAULT_CACHED) controls whether the discovery
// result itself is cached; see the package documentation. The flag is
// evaluated once and never re-read.
func Default() (Supplier, error) { return defaultResolver.Default() }
