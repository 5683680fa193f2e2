// Copyright 2026 The Chime Authors
// SPDX-License-Identifier: Apache-2.0

// Chime-now prints readings from clock suppliers. With no flags it
// resolves the process default supplier (honoring registrations and
// the CHIME_CLOCK_SUPPLIER_DEFAULT_CACHED flag) and prints its current
// reading. With --fixed it builds a fixed supplier instead, which can
// be persisted with --encode and restored with --decode.
//
// Exit codes:
//
//	0  success
//	1  bad arguments
//	2  runtime failure (discovery error, unreadable file, unknown zone)
package main
