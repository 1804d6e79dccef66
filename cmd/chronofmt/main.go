// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// chronofmt is a small companion tool over the chrono library: it prints
// the current instant, converts between the supported text layouts, and
// shows the packed hash of an instant at a chosen width.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"gonih.org/chrono"
	"gonih.org/chrono/zonefile"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chronofmt",
		Short: "Format, convert and inspect calendar timestamps",
	}

	rootCmd.AddCommand(nowCmd())
	rootCmd.AddCommand(convCmd())
	rootCmd.AddCommand(hashCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var isoFormats = map[string]chrono.ISOFormat{
	"extended":        chrono.ISOExtended,
	"extended-offset": chrono.ISOExtendedOffset,
	"space":           chrono.ISOSpace,
	"space-offset":    chrono.ISOSpaceOffset,
	"basic":           chrono.ISOBasic,
}

func isoFormat(name string) (chrono.ISOFormat, error) {
	f, ok := isoFormats[name]
	if !ok {
		names := make([]string, 0, len(isoFormats))
		for n := range isoFormats {
			names = append(names, n)
		}
		return 0, fmt.Errorf("unknown ISO format %q (one of %s)", name, strings.Join(names, ", "))
	}
	return f, nil
}

func calendar(name string) (chrono.Calendar, error) {
	switch name {
	case "gregorian":
		return chrono.Gregorian, nil
	case "fastutc":
		return chrono.FastUTC, nil
	}
	return nil, fmt.Errorf("unknown calendar %q (gregorian or fastutc)", name)
}

// zone resolves a zone name through an optional zonefile and the library's
// fallback chain.
func zone(name, dbPath string) (chrono.TimeZone, error) {
	var store chrono.ZoneStore
	if dbPath != "" {
		store = chrono.NewZoneStore()
		if err := zonefile.LoadFile(dbPath, store); err != nil {
			return chrono.UTC, err
		}
	}
	if name == "" || name == "UTC" {
		return chrono.UTC, nil
	}
	return chrono.ZoneByName(name, chrono.UTCOffset, store, true), nil
}

func nowCmd() *cobra.Command {
	var (
		calName  string
		zoneName string
		dbPath   string
		template string
		format   string
	)
	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current instant",
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := calendar(calName)
			if err != nil {
				return err
			}
			tz, err := zone(zoneName, dbPath)
			if err != nil {
				return err
			}
			dt := chrono.Now(cal, tz)
			if template != "" {
				fmt.Println(dt.Strftime(template))
				return nil
			}
			f, err := isoFormat(format)
			if err != nil {
				return err
			}
			fmt.Println(dt.ISO(f))
			return nil
		},
	}
	cmd.Flags().StringVar(&calName, "calendar", "gregorian", "calendar model")
	cmd.Flags().StringVar(&zoneName, "zone", "UTC", "zone identifier")
	cmd.Flags().StringVar(&dbPath, "zonedb", "", "YAML zone database to consult")
	cmd.Flags().StringVar(&template, "strftime", "", "strftime template (overrides --format)")
	cmd.Flags().StringVar(&format, "format", "extended-offset", "ISO output format")
	return cmd
}

func convCmd() *cobra.Command {
	var (
		calName  string
		from, to string
		template string
	)
	cmd := &cobra.Command{
		Use:   "conv <timestamp>",
		Short: "Re-format a timestamp between layouts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := calendar(calName)
			if err != nil {
				return err
			}
			ff, err := isoFormat(from)
			if err != nil {
				return err
			}
			dt, err := chrono.ParseISO(ff, args[0], cal)
			if err != nil {
				return err
			}
			if template != "" {
				fmt.Println(dt.Strftime(template))
				return nil
			}
			tf, err := isoFormat(to)
			if err != nil {
				return err
			}
			fmt.Println(dt.ISO(tf))
			return nil
		},
	}
	cmd.Flags().StringVar(&calName, "calendar", "gregorian", "calendar model")
	cmd.Flags().StringVar(&from, "from", "extended", "ISO format of the input")
	cmd.Flags().StringVar(&to, "to", "extended-offset", "ISO output format")
	cmd.Flags().StringVar(&template, "strftime", "", "strftime template (overrides --to)")
	return cmd
}

func hashCmd() *cobra.Command {
	var (
		calName string
		from    string
		width   int
	)
	cmd := &cobra.Command{
		Use:   "hash <timestamp>",
		Short: "Print the packed hash of a timestamp",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := calendar(calName)
			if err != nil {
				return err
			}
			ff, err := isoFormat(from)
			if err != nil {
				return err
			}
			dt, err := chrono.ParseISO(ff, args[0], cal)
			if err != nil {
				return err
			}
			var w chrono.HashWidth
			switch width {
			case 8:
				w = chrono.Hash8
			case 16:
				w = chrono.Hash16
			case 32:
				w = chrono.Hash32
			case 64:
				w = chrono.Hash64
			default:
				return fmt.Errorf("width must be 8, 16, 32 or 64")
			}
			fmt.Printf("%#x\n", dt.HashValue(w))
			return nil
		},
	}
	cmd.Flags().StringVar(&calName, "calendar", "gregorian", "calendar model")
	cmd.Flags().StringVar(&from, "from", "extended", "ISO format of the input")
	cmd.Flags().IntVar(&width, "width", 64, "hash width in bits")
	return cmd
}
