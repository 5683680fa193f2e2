// Copyright 2026 The Chime Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"errors"
	"time"
)

// Reading is a single sample of a clock: an instant and the time-zone
// it should be interpreted in. Readings produced by this package always
// carry a non-nil Zone.
type Reading struct {
	// Instant is the sampled point on the time-line.
	Instant time.Time

	// Zone is the time-zone rule set the instant should be displayed
	// in. It is identified by its canonical name (Zone.String()), e.g.
	// "Etc/UTC" or "America/Chicago", not by a fixed offset.
	Zone *time.Location
}

// In returns the instant localized to the reading's zone.
func (r Reading) In() time.Time { return r.Instant.In(r.Zone) }

// Equal reports whether two readings denote the same instant in the
// same zone. Zones compare by canonical identifier, so a reading
// survives serialization and differing process default zones.
func (r Reading) Equal(other Reading) bool {
	return r.Instant.Equal(other.Instant) && r.Zone.String() == other.Zone.String()
}

// String returns "<instant> [<zone>]" with the instant in RFC 3339
// nanosecond form.
func (r Reading) String() string {
	return r.Instant.Format(time.RFC3339Nano) + " [" + r.Zone.String() + "]"
}

// Supplier produces a clock reading on demand.
//
// Now returns an error only when producing the reading requires work
// that can fail; the built-in suppliers never do. The non-caching
// default supplier surfaces discovery failures through Now (see
// Default).
//
// String returns a stable display form identifying the supplier, for
// logging and diagnostics.
type Supplier interface {
	Now() (Reading, error)
	String() string
}

// ErrInvalidArgument reports a missing required argument when
// constructing a supplier. The wrapping error names the argument.
var ErrInvalidArgument = errors.New("clock: invalid argument")

// ErrUnknownZone reports a persisted zone identifier that does not name
// a known time-zone. Decoding fails outright; no degraded supplier is
// returned.
var ErrUnknownZone = errors.New("clock: unknown zone identifier")
