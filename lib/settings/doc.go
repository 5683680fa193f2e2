// Copyright 2026 The Chime Authors
// SPDX-License-Identifier: Apache-2.0

// Package settings provides string-keyed process configuration lookup.
//
// Keys are dotted, lower-case names ("clock.supplier.default.cached").
// A [Lookup] resolves a key to an optional string value; interpretation
// of the value belongs to the consumer.
//
// [Process] is the standard chain: the process environment first (keys
// mangled per [EnvName]), then an optional flat YAML file named by the
// CHIME_SETTINGS environment variable. There are no other sources and
// no hidden fallbacks — configuration stays deterministic and
// auditable. The file is loaded at most once, lazily.
//
// [Map] provides an in-memory Lookup for tests and embedding callers.
package settings
