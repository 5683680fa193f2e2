// Copyright 2026 The Chime Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides Chime's standard binary codec: CBOR with Core
// Deterministic Encoding (RFC 8949 §4.2), so the same logical value
// always produces identical bytes. Persisted clock suppliers and any
// other durable Chime values go through this package rather than
// importing a CBOR library directly.
//
// Time values encode as RFC 3339 text with nanosecond precision. The
// deterministic-encoding default of epoch microseconds would silently
// truncate instants, and a persisted fixed clock must reproduce its
// instant verbatim.
package codec
