// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package zonefile populates a chrono.ZoneStore from a YAML zone database.
//
// Loading is the one-time, caller-driven build step of the registry: parse
// the database at process start, then treat the store as read-only. The
// schema is a map of zone names to entries:
//
//	zones:
//	  Europe/Berlin:
//	    offset: "+01:00"
//	    dst:
//	      start: {month: 3, weekday: 0, week: last, hour: 2}
//	      end: {month: 10, weekday: 0, week: last, hour: 3}
//	  Asia/Kathmandu:
//	    offset: "+05:45"
//	  Australia/Lord_Howe:
//	    offset: "+10:30"
//	    shift: 30m
//	    dst:
//	      start: {month: 10, weekday: 0, week: first, hour: 2}
//	      end: {month: 4, weekday: 0, week: first, hour: 2}
//
// week is one of first, second, last or second-to-last; shift is 1h (the
// default), 30m or 2h and selects the zone's daylight-saving delta.
package zonefile

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"gonih.org/chrono"
)

type file struct {
	Zones map[string]zoneEntry `yaml:"zones"`
}

type zoneEntry struct {
	Offset string    `yaml:"offset"`
	Shift  string    `yaml:"shift"`
	DST    *dstEntry `yaml:"dst"`
}

type dstEntry struct {
	Start ruleEntry `yaml:"start"`
	End   ruleEntry `yaml:"end"`
}

type ruleEntry struct {
	Month   int    `yaml:"month"`
	Weekday int    `yaml:"weekday"`
	Week    string `yaml:"week"`
	Hour    int    `yaml:"hour"`
}

// Load parses a zone database from r and adds every zone to store.
// Loading is all-or-nothing: on a malformed entry, store is left untouched
// and the error names the offending zone.
func Load(r io.Reader, store chrono.ZoneStore) error {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return fmt.Errorf("zonefile: %w", err)
	}

	rules := make(map[string]chrono.ZoneRule, len(f.Zones))
	for name, e := range f.Zones {
		rule, err := e.rule()
		if err != nil {
			return fmt.Errorf("zonefile: zone %q: %w", name, err)
		}
		rules[name] = rule
	}
	for name, rule := range rules {
		store.Add(name, rule)
	}
	return nil
}

// LoadFile is Load on the contents of the named file.
func LoadFile(path string, store chrono.ZoneStore) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Load(f, store)
}

func (e zoneEntry) rule() (chrono.ZoneRule, error) {
	off, err := chrono.ParseOffset(e.Offset)
	if err != nil {
		return chrono.ZoneRule{}, err
	}

	switch e.Shift {
	case "", "1h":
	case "30m":
		off, err = off.WithShift(chrono.ShiftHalfHour)
	case "2h":
		off, err = off.WithShift(chrono.ShiftDoubleHour)
	default:
		return chrono.ZoneRule{}, fmt.Errorf("unknown shift %q", e.Shift)
	}
	if err != nil {
		return chrono.ZoneRule{}, err
	}

	if e.DST == nil {
		return chrono.FixedRule(off), nil
	}

	start, err := e.DST.Start.tzdt()
	if err != nil {
		return chrono.ZoneRule{}, fmt.Errorf("start: %w", err)
	}
	end, err := e.DST.End.tzdt()
	if err != nil {
		return chrono.ZoneRule{}, fmt.Errorf("end: %w", err)
	}
	return chrono.DSTRule(chrono.ZoneDST{Start: start, End: end, Std: off}), nil
}

func (r ruleEntry) tzdt() (chrono.TzDT, error) {
	var week chrono.TzWeek
	switch r.Week {
	case "first":
		week = chrono.WeekFirst
	case "second":
		week = chrono.WeekSecond
	case "last":
		week = chrono.WeekLast
	case "second-to-last":
		week = chrono.WeekSecondToLast
	default:
		return 0, fmt.Errorf("unknown week %q", r.Week)
	}
	return chrono.NewTzDT(r.Month, r.Weekday, week, r.Hour)
}
