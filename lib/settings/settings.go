// Copyright 2026 The Chime Authors
// SPDX-License-Identifier: Apache-2.0

package settings

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Lookup resolves a dotted settings key to an optional string value.
type Lookup func(key string) (value string, present bool)

const envPrefix = "CHIME_"

// FileVariable names the environment variable that points at the
// optional settings file consulted by Process.
const FileVariable = "CHIME_SETTINGS"

// EnvName returns the environment variable name for a dotted settings
// key: upper-cased, dots replaced by underscores, CHIME_ prefix.
//
//	EnvName("clock.supplier.default.cached") == "CHIME_CLOCK_SUPPLIER_DEFAULT_CACHED"
func EnvName(key string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// Environ returns a Lookup over the process environment, with keys
// mangled per EnvName.
func Environ() Lookup {
	return func(key string) (string, bool) {
		return os.LookupEnv(EnvName(key))
	}
}

// File loads a settings file: a flat YAML document mapping dotted keys
// to string values. Values that are not plain scalars fail the load.
func File(path string) (Lookup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("settings: reading %s: %w", path, err)
	}
	var values map[string]string
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("settings: parsing %s: %w", path, err)
	}
	return Map(values), nil
}

// Map returns a Lookup over a fixed map.
func Map(values map[string]string) Lookup {
	return func(key string) (string, bool) {
		value, present := values[key]
		return value, present
	}
}

// Process returns the standard process-wide lookup: the environment
// first, then the file named by CHIME_SETTINGS when that variable is
// set. The file is loaded lazily, at most once; a file that cannot be
// read or parsed contributes no keys (a Lookup has no error channel to
// report through, and the clock resolver must treat every settings
// state as answerable).
func Process() Lookup {
	environ := Environ()
	file := sync.OnceValue(func() Lookup {
		path, present := os.LookupEnv(FileVariable)
		if !present || path == "" {
			return nil
		}
		lookup, err := File(path)
		if err != nil {
			return nil
		}
		return lookup
	})
	return func(key string) (string, bool) {
		if value, present := environ(key); present {
			return value, true
		}
		if lookup := file(); lookup != nil {
			return lookup(key)
		}
		return "", false
	}
}
