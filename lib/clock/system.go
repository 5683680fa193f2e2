// Copyright 2026 The Chime Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

var (
	systemUTC         Supplier = systemUTCSupplier{}
	systemDefaultZone Supplier = systemDefaultZoneSupplier{}
)

// SystemUTC returns the supplier producing wall-clock readings in UTC.
// Every call returns the same stateless instance, so suppliers obtained
// here compare equal with ==.
func SystemUTC() Supplier { return systemUTC }

// SystemDefaultZone returns the supplier producing wall-clock readings
// in the process's default zone. The zone is sampled at each Now call:
// if time.Local changes at runtime, later readings reflect the change.
// Every call returns the same stateless instance.
func SystemDefaultZone() Supplier { return systemDefaultZone }

type systemUTCSupplier struct{}

func (systemUTCSupplier) Now() (Reading, error) {
	return Reading{Instant: time.Now().UTC(), Zone: time.UTC}, nil
}

func (systemUTCSupplier) String() string { return "clock.SystemUTC()" }

type systemDefaultZoneSupplier struct{}

func (systemDefaultZoneSupplier) Now() (Reading, error) {
	return Reading{Instant: time.Now(), Zone: time.Local}, nil
}

func (systemDefaultZoneSupplier) String() string { return "clock.SystemDefaultZone()" }
