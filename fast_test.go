// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrono

import "testing"

func TestFastValues(t *testing.T) {
	if got := NewFast8(3, 5); got != 101 {
		t.Errorf("NewFast8(3, 5) = %d, want 101", got)
	}
	if got := NewFast16(1971, 3, 7, 4); got != 19684 {
		t.Errorf("NewFast16(1971, 3, 7, 4) = %d, want 19684", got)
	}
}

func TestFastAccessors(t *testing.T) {
	t64 := NewFast64(2024, 6, 16, 18, 51, 20, 123, 456)
	if t64.Year() != 2024 || t64.Month() != 6 || t64.Day() != 16 ||
		t64.Hour() != 18 || t64.Minute() != 51 || t64.Second() != 20 ||
		t64.Milli() != 123 || t64.Micro() != 456 {
		t.Errorf("Fast64 fields = %+v", t64.Fields())
	}

	t32 := NewFast32(2024, 6, 16, 18, 51, 20)
	if t32.Year() != 2024 || t32.Month() != 6 || t32.Day() != 16 ||
		t32.Hour() != 18 || t32.Minute() != 51 || t32.Second() != 20 {
		t.Errorf("Fast32 fields = %+v", t32.Fields())
	}

	t16 := NewFast16(1972, 6, 30, 23)
	if t16.Year() != 1972 || t16.Month() != 6 || t16.Day() != 30 || t16.Hour() != 23 {
		t.Errorf("Fast16 fields = %+v", t16.Fields())
	}

	t8 := NewFast8(0, 18)
	if t8.Weekday() != 0 || t8.Hour() != 18 {
		t.Errorf("Fast8 fields = %+v", t8.Fields())
	}
}

// TestFastOrdering checks the point of the fixed-width forms: the integer's
// own operators order the instants.
func TestFastOrdering(t *testing.T) {
	seq64 := []Fast64{
		NewFast64(1970, 1, 1, 0, 0, 0, 0, 0),
		NewFast64(2024, 6, 16, 18, 51, 20, 123, 455),
		NewFast64(2024, 6, 16, 18, 51, 20, 123, 456),
		NewFast64(2024, 6, 16, 18, 51, 21, 0, 0),
		NewFast64(2025, 1, 1, 0, 0, 0, 0, 0),
	}
	for i := 1; i < len(seq64); i++ {
		if seq64[i-1] >= seq64[i] {
			t.Errorf("%v is not below %v", seq64[i-1], seq64[i])
		}
	}

	a := NewFast32(2024, 6, 16, 18, 51, 20)
	b := NewFast32(2024, 6, 16, 18, 51, 20)
	if a != b {
		t.Error("identical instants differ")
	}
	if c := NewFast32(2024, 6, 16, 18, 51, 21); c <= a {
		t.Error("later instant does not compare above")
	}
}

func TestFastAdd(t *testing.T) {
	t32 := NewFast32(2024, 6, 16, 18, 51, 20)
	if got, want := t32.Add(Delta{Seconds: 40}), NewFast32(2024, 6, 16, 18, 52, 0); got != want {
		t.Errorf("Add 40s = %v, want %v", got, want)
	}
	if got, want := t32.Add(Delta{Days: 15}), NewFast32(2024, 7, 1, 18, 51, 20); got != want {
		t.Errorf("Add 15d = %v, want %v", got, want)
	}

	t16 := NewFast16(1970, 12, 31, 23)
	if got, want := t16.Add(Delta{Hours: 1}), NewFast16(1971, 1, 1, 0); got != want {
		t.Errorf("Add 1h across new year = %v, want %v", got, want)
	}

	t64 := NewFast64(2024, 6, 16, 18, 51, 20, 999, 999)
	if got, want := t64.Add(Delta{Micros: 1}), NewFast64(2024, 6, 16, 18, 51, 21, 0, 0); got != want {
		t.Errorf("Add 1us = %v, want %v", got, want)
	}
}

func TestFastString(t *testing.T) {
	if got, want := NewFast32(2024, 6, 16, 18, 51, 20).String(), "2024-06-16T18:51:20"; got != want {
		t.Errorf("Fast32.String() = %q, want %q", got, want)
	}
	if got, want := NewFast16(1972, 6, 30, 23).String(), "1972-06-30T23:00:00"; got != want {
		t.Errorf("Fast16.String() = %q, want %q", got, want)
	}
	if got, want := NewFast8(3, 5).String(), "Wed 05h"; got != want {
		t.Errorf("Fast8.String() = %q, want %q", got, want)
	}
}
