// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zonefile_test

import (
	"strings"
	"testing"

	"gonih.org/chrono"
	"gonih.org/chrono/zonefile"
)

const db = `
zones:
  Europe/Berlin:
    offset: "+01:00"
    dst:
      start: {month: 3, weekday: 0, week: last, hour: 2}
      end: {month: 10, weekday: 0, week: last, hour: 3}
  Asia/Kathmandu:
    offset: "+05:45"
  Australia/Lord_Howe:
    offset: "+10:30"
    shift: 30m
    dst:
      start: {month: 10, weekday: 0, week: first, hour: 2}
      end: {month: 4, weekday: 0, week: first, hour: 2}
`

func TestLoad(t *testing.T) {
	store := chrono.NewZoneStore()
	if err := zonefile.Load(strings.NewReader(db), store); err != nil {
		t.Fatalf("Load = %v", err)
	}

	berlin, ok := store.Lookup("Europe/Berlin")
	if !ok {
		t.Fatal("Europe/Berlin not loaded")
	}
	if berlin.DST == nil {
		t.Fatal("Europe/Berlin has no DST rule")
	}
	if got := berlin.Offset.String(); got != "+01:00" {
		t.Errorf("Europe/Berlin offset = %s, want +01:00", got)
	}
	if mo, d, h := berlin.DST.Start.Resolve(chrono.Gregorian, 2024); mo != 3 || d != 31 || h != 2 {
		t.Errorf("Europe/Berlin DST start resolves to (%d, %d, %d), want (3, 31, 2)", mo, d, h)
	}

	ktm, ok := store.Lookup("Asia/Kathmandu")
	if !ok {
		t.Fatal("Asia/Kathmandu not loaded")
	}
	if ktm.DST != nil || ktm.Offset.String() != "+05:45" {
		t.Errorf("Asia/Kathmandu = %+v", ktm)
	}

	lh, ok := store.Lookup("Australia/Lord_Howe")
	if !ok {
		t.Fatal("Australia/Lord_Howe not loaded")
	}
	if got := lh.Offset.Shift(); got != chrono.ShiftHalfHour {
		t.Errorf("Australia/Lord_Howe shift = %v, want %v", got, chrono.ShiftHalfHour)
	}

	// The loaded store plugs straight into zone resolution.
	tz := chrono.ZoneByName("Europe/Berlin", chrono.UTCOffset, store, false)
	if got := tz.OffsetAt(chrono.Gregorian, 2024, 7, 1, 12, 0, 0).String(); got != "+02:00" {
		t.Errorf("Berlin July offset = %s, want +02:00", got)
	}
}

func TestLoadErrors(t *testing.T) {
	tcs := []struct {
		name string
		doc  string
	}{
		{"bad offset", "zones:\n  X:\n    offset: \"+16:00\"\n"},
		{"bad shift", "zones:\n  X:\n    offset: \"+01:00\"\n    shift: 45m\n"},
		{"bad week", "zones:\n  X:\n    offset: \"+01:00\"\n    dst:\n      start: {month: 3, weekday: 0, week: third, hour: 2}\n      end: {month: 10, weekday: 0, week: last, hour: 3}\n"},
		{"bad month", "zones:\n  X:\n    offset: \"+01:00\"\n    dst:\n      start: {month: 13, weekday: 0, week: last, hour: 2}\n      end: {month: 10, weekday: 0, week: last, hour: 3}\n"},
		{"unknown field", "zones:\n  X:\n    offset: \"+01:00\"\n    tzid: X\n"},
		{"not yaml", ":\n-:-\n"},
	}
	for _, tc := range tcs {
		store := chrono.NewZoneStore()
		err := zonefile.Load(strings.NewReader(tc.doc), store)
		if err == nil {
			t.Errorf("%s: Load succeeded", tc.name)
			continue
		}
		// All-or-nothing: nothing may have been added.
		if _, ok := store.Lookup("X"); ok {
			t.Errorf("%s: store modified on error", tc.name)
		}
	}
}

func TestLoadFileMissing(t *testing.T) {
	if err := zonefile.LoadFile("testdata/does-not-exist.yaml", chrono.NewZoneStore()); err == nil {
		t.Error("LoadFile of a missing file succeeded")
	}
}
