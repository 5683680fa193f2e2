// Copyright 2026 The Chime Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/chime-foundation/chime/lib/codec"
)

var fixedInstant = time.Date(2017, 10, 2, 17, 3, 0, 0, time.UTC)

func chicago(t *testing.T) *time.Location {
	t.Helper()
	zone, err := time.LoadLocation("America/Chicago")
	if err != nil {
		t.Fatalf("loading America/Chicago: %v", err)
	}
	return zone
}

func TestFixedReadingIsIdempotent(t *testing.T) {
	supplier, err := Fixed(fixedInstant, chicago(t))
	if err != nil {
		t.Fatalf("Fixed: %v", err)
	}

	first, err := supplier.Now()
	if err != nil {
		t.Fatalf("Now: %v", err)
	}
	for i := 0; i < 100; i++ {
		reading, err := supplier.Now()
		if err != nil {
			t.Fatalf("Now (call %d): %v", i, err)
		}
		if !reading.Equal(first) {
			t.Fatalf("Now (call %d) = %v, want %v", i, reading, first)
		}
		if reading.Zone != first.Zone {
			t.Fatalf("Now (call %d) returned a different zone instance", i)
		}
	}
}

func TestFixedMissingInstant(t *testing.T) {
	_, err := Fixed(time.Time{}, chicago(t))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Fixed with zero instant: err = %v, want ErrInvalidArgument", err)
	}
	if !strings.Contains(err.Error(), "instant") {
		t.Fatalf("error %q does not name the missing argument \"instant\"", err)
	}
}

func TestFixedMissingZone(t *testing.T) {
	_, err := Fixed(fixedInstant, nil)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Fixed with nil zone: err = %v, want ErrInvalidArgument", err)
	}
	if !strings.Contains(err.Error(), "zone") {
		t.Fatalf("error %q does not name the missing argument \"zone\"", err)
	}
}

func TestFixedString(t *testing.T) {
	supplier, err := Fixed(fixedInstant, chicago(t))
	if err != nil {
		t.Fatalf("Fixed: %v", err)
	}
	want := "clock.Fixed(2017-10-02T17:03:00Z, America/Chicago)"
	if got := supplier.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestFixedUTC(t *testing.T) {
	supplier, err := FixedUTC(fixedInstant)
	if err != nil {
		t.Fatalf("FixedUTC: %v", err)
	}

	for i := 0; i < 3; i++ {
		reading, err := supplier.Now()
		if err != nil {
			t.Fatalf("Now: %v", err)
		}
		if got := reading.Zone.String(); got != "Etc/UTC" {
			t.Fatalf("zone = %q, want \"Etc/UTC\"", got)
		}
		if !reading.Instant.Equal(fixedInstant) {
			t.Fatalf("instant = %v, want %v", reading.Instant, fixedInstant)
		}
	}
}

func TestFixedUTCMissingInstant(t *testing.T) {
	_, err := FixedUTC(time.Time{})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("FixedUTC with zero instant: err = %v, want ErrInvalidArgument", err)
	}
}

func TestFixedRoundTrip(t *testing.T) {
	// America/Chicago has historical offset transitions; storing the
	// zone by identifier rather than by offset must survive them.
	original, err := Fixed(fixedInstant, chicago(t))
	if err != nil {
		t.Fatalf("Fixed: %v", err)
	}

	data, err := original.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}

	decoded, err := DecodeFixed(data)
	if err != nil {
		t.Fatalf("DecodeFixed: %v", err)
	}

	originalReading, _ := original.Now()
	decodedReading, err := decoded.Now()
	if err != nil {
		t.Fatalf("Now on decoded supplier: %v", err)
	}
	if !decodedReading.Equal(originalReading) {
		t.Fatalf("decoded reading = %v, want %v", decodedReading, originalReading)
	}
	if got, want := decoded.String(), original.String(); got != want {
		t.Fatalf("decoded String() = %q, want %q", got, want)
	}
}

func TestFixedRoundTripNanosecondInstant(t *testing.T) {
	instant := time.Date(2017, 10, 2, 17, 3, 0, 123456789, time.UTC)
	original, err := Fixed(instant, chicago(t))
	if err != nil {
		t.Fatalf("Fixed: %v", err)
	}

	data, err := original.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	decoded, err := DecodeFixed(data)
	if err != nil {
		t.Fatalf("DecodeFixed: %v", err)
	}

	reading, _ := decoded.Now()
	if !reading.Instant.Equal(instant) {
		t.Fatalf("decoded instant = %v, want %v (nanoseconds must survive)", reading.Instant, instant)
	}
}

func TestFixedRoundTripUnderDifferentDefaultZone(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatalf("loading Europe/Berlin: %v", err)
	}
	savedLocal := time.Local
	defer func() { time.Local = savedLocal }()

	original, err := Fixed(fixedInstant, chicago(t))
	if err != nil {
		t.Fatalf("Fixed: %v", err)
	}
	data, err := original.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}

	// Decode in a process whose default zone differs from the one the
	// supplier was encoded under.
	time.Local = berlin

	decoded, err := DecodeFixed(data)
	if err != nil {
		t.Fatalf("DecodeFixed: %v", err)
	}
	originalReading, _ := original.Now()
	decodedReading, _ := decoded.Now()
	if !decodedReading.Equal(originalReading) {
		t.Fatalf("decoded reading = %v, want %v", decodedReading, originalReading)
	}
}

func TestDecodeFixedUnknownZone(t *testing.T) {
	data, err := codec.Marshal(map[string]any{
		"instant": fixedInstant,
		"zone":    "Mars/Olympus_Mons",
	})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	_, err = DecodeFixed(data)
	if !errors.Is(err, ErrUnknownZone) {
		t.Fatalf("DecodeFixed: err = %v, want ErrUnknownZone", err)
	}
	if !strings.Contains(err.Error(), "Mars/Olympus_Mons") {
		t.Fatalf("error %q does not name the offending identifier", err)
	}
}

func TestDecodeFixedMissingInstant(t *testing.T) {
	data, err := codec.Marshal(map[string]any{"zone": "Etc/UTC"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	_, err = DecodeFixed(data)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("DecodeFixed: err = %v, want ErrInvalidArgument", err)
	}
	if !strings.Contains(err.Error(), "instant") {
		t.Fatalf("error %q does not name the missing field \"instant\"", err)
	}
}

func TestDecodeFixedMissingZone(t *testing.T) {
	data, err := codec.Marshal(map[string]any{"instant": fixedInstant})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	_, err = DecodeFixed(data)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("DecodeFixed: err = %v, want ErrInvalidArgument", err)
	}
	if !strings.Contains(err.Error(), "zone") {
		t.Fatalf("error %q does not name the missing field \"zone\"", err)
	}
}

func TestDecodeFixedGarbage(t *testing.T) {
	_, err := DecodeFixed([]byte{0xff, 0x00, 0x01})
	if err == nil {
		t.Fatal("DecodeFixed accepted garbage input")
	}
}

func TestFixedImplementsSupplier(t *testing.T) {
	var _ Supplier = (*FixedSupplier)(nil)
}
