// Copyright 2026 The Chime Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides pluggable clock suppliers: sources of "what
// time is it, where" that production code can depend on instead of
// calling time.Now directly, so tests substitute deterministic time
// without touching call sites.
//
// A [Supplier] produces a [Reading] (an instant plus the time-zone it
// should be interpreted in) on demand. Three built-in suppliers exist:
// [SystemUTC] and [SystemDefaultZone] sample the wall clock, [Fixed]
// always returns the same reading.
//
// # Default supplier resolution
//
// [Default] returns the process-wide default supplier. It is resolved
// lazily, exactly once: the first externally registered supplier (see
// [Register]) wins, otherwise [SystemUTC]. Resolution is controlled by
// the settings flag "clock.supplier.default.cached":
//
//   - flag absent or "true" (case-insensitive): the discovery result is
//     cached forever.
//   - any other present value: Default still returns one stable
//     supplier, but that supplier re-runs discovery on every Now call,
//     so registrations made after startup take effect.
//
// The flag is evaluated once per process; caching cannot be toggled at
// runtime.
//
// # Wiring Pattern
//
// Add a Supplier field to structs that need the current time:
//
//	type Ledger struct {
//	    clock clock.Supplier
//	    // ...
//	}
//
// In production:
//
//	supplier, err := clock.Default()
//
// In tests:
//
//	supplier, err := clock.FixedUTC(time.Date(2017, 10, 2, 17, 3, 0, 0, time.UTC))
//
// Components that must not share the process-wide singleton (or that
// inject their own discovery) construct a [Resolver] directly.
package clock
