// Copyright 2026 The Chime Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/chime-foundation/chime/lib/clock"
	"github.com/chime-foundation/chime/lib/codec"
	"github.com/chime-foundation/chime/lib/settings"
	"github.com/chime-foundation/chime/lib/version"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// options holds the parsed command-line flags.
type options struct {
	zoneID       string
	fixedAt      string
	encodePath   string
	decodePath   string
	diag         bool
	showSupplier bool
	verbose      bool
	showVersion  bool
}

func run(args []string) int {
	var opts options
	flags := pflag.NewFlagSet("chime-now", pflag.ContinueOnError)
	flags.StringVar(&opts.zoneID, "zone", "", "zone identifier for the reading (with --fixed: the fixed zone)")
	flags.StringVar(&opts.fixedAt, "fixed", "", "use a fixed supplier at this RFC 3339 instant instead of the default")
	flags.StringVar(&opts.encodePath, "encode", "", "write the fixed supplier's persisted form to this file (requires --fixed)")
	flags.StringVar(&opts.decodePath, "decode", "", "read a persisted fixed supplier from this file")
	flags.BoolVar(&opts.diag, "diag", false, "with --decode, also print the CBOR diagnostic notation")
	flags.BoolVar(&opts.showSupplier, "supplier", false, "print the supplier's display form instead of a reading")
	flags.BoolVar(&opts.verbose, "verbose", false, "log resolution details to stderr")
	flags.BoolVar(&opts.showVersion, "version", false, "print version and exit")

	if err := flags.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "error: unexpected argument: %s\n", flags.Arg(0))
		return 1
	}
	if opts.showVersion {
		fmt.Printf("chime-now %s\n", version.Info())
		return 0
	}
	if opts.encodePath != "" && opts.fixedAt == "" {
		fmt.Fprintf(os.Stderr, "error: --encode requires --fixed\n")
		return 1
	}
	if opts.decodePath != "" && opts.fixedAt != "" {
		fmt.Fprintf(os.Stderr, "error: --decode and --fixed are mutually exclusive\n")
		return 1
	}

	supplier, code := selectSupplier(opts)
	if code != 0 {
		return code
	}

	if opts.encodePath != "" {
		fixed, ok := supplier.(*clock.FixedSupplier)
		if !ok {
			fmt.Fprintf(os.Stderr, "error: only fixed suppliers have a persisted form\n")
			return 1
		}
		data, err := fixed.MarshalBinary()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: encoding supplier: %v\n", err)
			return 2
		}
		if err := os.WriteFile(opts.encodePath, data, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "error: writing %s: %v\n", opts.encodePath, err)
			return 2
		}
	}

	if opts.showSupplier {
		fmt.Println(supplier.String())
		return 0
	}

	reading, err := supplier.Now()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: reading clock: %v\n", err)
		return 2
	}
	return printReading(reading, opts)
}

// selectSupplier picks the supplier per the flags: a decoded persisted
// supplier, a freshly built fixed supplier, or the resolved default.
func selectSupplier(opts options) (clock.Supplier, int) {
	switch {
	case opts.decodePath != "":
		data, err := os.ReadFile(opts.decodePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: reading %s: %v\n", opts.decodePath, err)
			return nil, 2
		}
		if opts.diag {
			notation, err := codec.Diagnose(data)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: diagnosing %s: %v\n", opts.decodePath, err)
				return nil, 2
			}
			fmt.Println(notation)
		}
		supplier, err := clock.DecodeFixed(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: decoding %s: %v\n", opts.decodePath, err)
			return nil, 2
		}
		return supplier, 0

	case opts.fixedAt != "":
		instant, err := time.Parse(time.RFC3339Nano, opts.fixedAt)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: --fixed: %v\n", err)
			return nil, 1
		}
		if opts.zoneID != "" {
			zone, err := time.LoadLocation(opts.zoneID)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: --zone: %v\n", err)
				return nil, 1
			}
			supplier, err := clock.Fixed(instant, zone)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				return nil, 2
			}
			return supplier, 0
		}
		supplier, err := clock.FixedUTC(instant)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return nil, 2
		}
		return supplier, 0

	default:
		var logger *slog.Logger
		if opts.verbose {
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}))
		}
		var supplier clock.Supplier
		var err error
		if logger != nil {
			resolver := clock.NewResolver(clock.Discover, settings.Process(), logger)
			supplier, err = resolver.Default()
		} else {
			supplier, err = clock.Default()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: resolving default supplier: %v\n", err)
			return nil, 2
		}
		return supplier, 0
	}
}

// printReading prints the reading, localized to --zone when set for a
// non-fixed supplier (a fixed supplier's zone is already the --zone).
func printReading(reading clock.Reading, opts options) int {
	if opts.zoneID != "" && opts.fixedAt == "" && opts.decodePath == "" {
		zone, err := time.LoadLocation(opts.zoneID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: --zone: %v\n", err)
			return 1
		}
		reading = clock.Reading{Instant: reading.Instant, Zone: zone}
	}
	fmt.Println(reading.In().Format(time.RFC3339Nano) + " [" + reading.Zone.String() + "]")
	return 0
}
