// Copyright 2026 The Chime Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for Chime packages.
//
// [RequireReceive] encapsulates the timeout safety valve pattern
// (select with time.After fallback) so that individual tests do not
// need direct time.After calls. It is the intended way to collect
// results from goroutines in concurrency tests.
//
// [UniqueID] generates monotonically increasing identifiers for test
// disambiguation, for tests that need distinguishable names without
// reading the real clock.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no Chime-internal dependencies.
package testutil
