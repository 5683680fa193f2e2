// Copyright 2026 The Chime Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"fmt"
	"sync"
	"time"

	"github.com/chime-foundation/chime/lib/codec"
)

// FixedSupplier always returns the same reading. The reading is
// computed once at construction (or decode) and reused; it is never
// recomputed per call.
//
// FixedSupplier implements encoding.BinaryMarshaler and
// encoding.BinaryUnmarshaler. The persisted form stores only the
// minimal identifying data — the instant verbatim and the zone's
// canonical identifier — so it is stable across process restarts and
// across differing default time-zone environments. Derived state is
// recomputed on decode.
type FixedSupplier struct {
	reading Reading
}

// Fixed returns a supplier that always reads the given instant in the
// given zone. The instant must be non-zero and the zone non-nil;
// otherwise Fixed fails with an error wrapping ErrInvalidArgument that
// names the missing argument.
func Fixed(instant time.Time, zone *time.Location) (*FixedSupplier, error) {
	if instant.IsZero() {
		return nil, fmt.Errorf("%w: instant", ErrInvalidArgument)
	}
	if zone == nil {
		return nil, fmt.Errorf("%w: zone", ErrInvalidArgument)
	}
	return &FixedSupplier{reading: Reading{Instant: instant, Zone: zone}}, nil
}

// utcZone resolves the canonical UTC zone identifier once. time.UTC is
// not used here: its identifier is "UTC", while fixed-UTC suppliers and
// their persisted form carry the canonical "Etc/UTC".
var utcZone = sync.OnceValues(func() (*time.Location, error) {
	return time.LoadLocation("Etc/UTC")
})

// FixedUTC is Fixed with the zone "Etc/UTC".
func FixedUTC(instant time.Time) (*FixedSupplier, error) {
	zone, err := utcZone()
	if err != nil {
		return nil, fmt.Errorf("clock: loading Etc/UTC: %w", err)
	}
	return Fixed(instant, zone)
}

// Now returns the fixed reading. The error is always nil.
func (f *FixedSupplier) Now() (Reading, error) { return f.reading, nil }

// String returns "clock.Fixed(<instant>, <zone>)".
func (f *FixedSupplier) String() string {
	return "clock.Fixed(" + f.reading.Instant.Format(time.RFC3339Nano) + ", " + f.reading.Zone.String() + ")"
}

// fixedWire is the persisted form of a fixed supplier: the canonical
// identifying fields only. The derived reading is recomputed on decode,
// never stored.
type fixedWire struct {
	Instant time.Time `cbor:"instant"`
	Zone    string    `cbor:"zone"`
}

// MarshalBinary encodes the supplier's persisted form. The zone is
// stored by canonical identifier; construct fixed suppliers with zones
// from time.LoadLocation so the identifier is portable ("Local" is only
// meaningful within one environment).
func (f *FixedSupplier) MarshalBinary() ([]byte, error) {
	return codec.Marshal(fixedWire{
		Instant: f.reading.Instant,
		Zone:    f.reading.Zone.String(),
	})
}

// UnmarshalBinary reconstructs a persisted fixed supplier. Both fields
// are re-validated and the zone identifier is resolved against the
// zone database; an identifier naming no known zone fails with
// ErrUnknownZone.
func (f *FixedSupplier) UnmarshalBinary(data []byte) error {
	var wire fixedWire
	if err := codec.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("clock: decoding fixed supplier: %w", err)
	}
	if wire.Instant.IsZero() {
		return fmt.Errorf("%w: instant", ErrInvalidArgument)
	}
	if wire.Zone == "" {
		return fmt.Errorf("%w: zone", ErrInvalidArgument)
	}
	zone, err := time.LoadLocation(wire.Zone)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownZone, wire.Zone)
	}
	f.reading = Reading{Instant: wire.Instant, Zone: zone}
	return nil
}

// DecodeFixed reconstructs a fixed supplier from its persisted form.
func DecodeFixed(data []byte) (*FixedSupplier, error) {
	var f FixedSupplier
	if err := f.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return &f, nil
}
