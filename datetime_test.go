// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrono

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func date(cal Calendar, tz TimeZone, year, month, day, hour, minute, second int) DateTime {
	return New(cal, tz, year, month, day, hour, minute, second, 0, 0, 0)
}

func TestNewNormalization(t *testing.T) {
	tcs := []struct {
		in   [9]int
		want [9]int
	}{
		// already normal
		{[9]int{2024, 6, 16, 18, 51, 20, 1, 2, 3}, [9]int{2024, 6, 16, 18, 51, 20, 1, 2, 3}},
		// second carry
		{[9]int{2024, 6, 16, 18, 51, 75, 0, 0, 0}, [9]int{2024, 6, 16, 18, 52, 15, 0, 0, 0}},
		// day carry across a month boundary
		{[9]int{2024, 1, 32, 0, 0, 0, 0, 0, 0}, [9]int{2024, 2, 1, 0, 0, 0, 0, 0, 0}},
		// month carry
		{[9]int{2024, 13, 1, 0, 0, 0, 0, 0, 0}, [9]int{2025, 1, 1, 0, 0, 0, 0, 0, 0}},
		// negative minute borrows
		{[9]int{2024, 6, 16, 0, -1, 0, 0, 0, 0}, [9]int{2024, 6, 15, 23, 59, 0, 0, 0, 0}},
		// subsecond carry chains up to the second
		{[9]int{2024, 6, 16, 0, 0, 0, 999, 999, 1001}, [9]int{2024, 6, 16, 0, 0, 1, 0, 0, 1}},
		// leap day arithmetic
		{[9]int{2024, 2, 30, 0, 0, 0, 0, 0, 0}, [9]int{2024, 3, 1, 0, 0, 0, 0, 0, 0}},
		{[9]int{2023, 2, 29, 0, 0, 0, 0, 0, 0}, [9]int{2023, 3, 1, 0, 0, 0, 0, 0, 0}},
	}
	for _, tc := range tcs {
		dt := New(Gregorian, UTC, tc.in[0], tc.in[1], tc.in[2], tc.in[3], tc.in[4], tc.in[5], tc.in[6], tc.in[7], tc.in[8])
		got := [9]int{dt.Year(), dt.Month(), dt.Day(), dt.Hour(), dt.Minute(), dt.Second(), dt.Milli(), dt.Micro(), dt.Nano()}
		if got != tc.want {
			t.Errorf("New(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestWraparound(t *testing.T) {
	max := date(Gregorian, UTC, 9999, 12, 31, 23, 0, 0)
	next := max.Add(Delta{Days: 1})
	if next.Year() != 1 || next.Month() != 1 || next.Day() != 1 {
		t.Errorf("max date + 1 day = %04d-%02d-%02d, want 0001-01-01", next.Year(), next.Month(), next.Day())
	}
	if next.Hour() != 23 {
		t.Errorf("wrap changed the hour: %d", next.Hour())
	}

	min := date(Gregorian, UTC, 1, 1, 1, 0, 0, 0)
	prev := min.Sub(Delta{Days: 1})
	if prev.Year() != 9999 || prev.Month() != 12 || prev.Day() != 31 {
		t.Errorf("min date - 1 day = %04d-%02d-%02d, want 9999-12-31", prev.Year(), prev.Month(), prev.Day())
	}

	fmax := date(FastUTC, UTC, 9999, 12, 31, 0, 0, 0)
	fnext := fmax.Add(Delta{Days: 1})
	if fnext.Year() != 1970 || fnext.Month() != 1 || fnext.Day() != 1 {
		t.Errorf("fast max date + 1 day = %04d-%02d-%02d, want 1970-01-01", fnext.Year(), fnext.Month(), fnext.Day())
	}
}

func TestLeapSecondPreserved(t *testing.T) {
	dt := date(Gregorian, UTC, 2016, 12, 31, 23, 59, 60)
	if dt.Second() != 60 {
		t.Errorf("leap second normalized away: second = %d", dt.Second())
	}
	// Outside an insertion slot a :60 carries into the next minute.
	dt = date(Gregorian, UTC, 2016, 12, 30, 23, 59, 60)
	if dt.Day() != 31 || dt.Second() != 0 {
		t.Errorf("non-leap :60 = %04d-%02d-%02d %02d:%02d:%02d", dt.Year(), dt.Month(), dt.Day(), dt.Hour(), dt.Minute(), dt.Second())
	}
	// The fast calendar has no leap seconds at all.
	dt = date(FastUTC, UTC, 2016, 12, 31, 23, 59, 60)
	if dt.Year() != 2017 || dt.Second() != 0 {
		t.Errorf("fast calendar kept a leap second: %v", dt)
	}
}

func TestEqualAcrossZones(t *testing.T) {
	east, _ := NewOffset(1, 0, false)
	west, _ := NewOffset(1, 0, true)
	a := date(Gregorian, FixedZone("East", east), 2024, 6, 16, 14, 0, 0)
	b := date(Gregorian, FixedZone("West", west), 2024, 6, 16, 12, 0, 0)
	if !a.Equal(b) {
		t.Errorf("%v and %v denote the same instant but are not Equal", a, b)
	}
	if a.Compare(b) != 0 {
		t.Errorf("Compare(%v, %v) = %d, want 0", a, b, a.Compare(b))
	}
	c := date(Gregorian, FixedZone("East", east), 2024, 6, 16, 12, 0, 0)
	if a.Equal(c) || !c.Before(a) {
		t.Errorf("ordering of %v and %v wrong", a, c)
	}
}

func TestEqualAcrossCalendars(t *testing.T) {
	a := date(Gregorian, UTC, 2024, 6, 16, 18, 51, 20)
	b := date(FastUTC, UTC, 2024, 6, 16, 18, 51, 20)
	if !a.Equal(b) {
		t.Errorf("same UTC fields under different calendars are not Equal")
	}
}

func TestCompareOrdering(t *testing.T) {
	seq := []DateTime{
		date(Gregorian, UTC, 1, 1, 1, 0, 0, 0),
		date(Gregorian, UTC, 1969, 12, 31, 23, 59, 59),
		date(Gregorian, UTC, 1970, 1, 1, 0, 0, 0),
		date(Gregorian, UTC, 2024, 6, 16, 18, 51, 19),
		date(Gregorian, UTC, 2024, 6, 16, 18, 51, 20),
		date(Gregorian, UTC, 9999, 12, 31, 23, 59, 59),
	}
	for i := 1; i < len(seq); i++ {
		if !seq[i-1].Before(seq[i]) {
			t.Errorf("%v is not before %v", seq[i-1], seq[i])
		}
		if !seq[i].After(seq[i-1]) {
			t.Errorf("%v is not after %v", seq[i], seq[i-1])
		}
	}
}

func TestComparePrecision(t *testing.T) {
	a := New(Gregorian, UTC, 2024, 6, 16, 18, 51, 20, 123, 456, 1)
	b := New(Gregorian, UTC, 2024, 6, 16, 18, 51, 20, 123, 456, 999)
	if !a.Equal(b) {
		t.Error("comparison is finer than microseconds")
	}
	c := New(Gregorian, UTC, 2024, 6, 16, 18, 51, 20, 123, 457, 0)
	if a.Equal(c) {
		t.Error("differing microseconds compare equal")
	}
}

func TestAddSub(t *testing.T) {
	dt := New(Gregorian, UTC, 2024, 6, 16, 18, 51, 20, 123, 456, 789)
	d := Delta{Years: 1, Months: 7, Days: 20, Hours: 6, Minutes: 30, Seconds: 45, Millis: 900, Micros: 600, Nanos: 300}

	got := dt.Add(d)
	want := New(Gregorian, UTC, 2026, 2, 6, 1, 22, 6, 24, 57, 89)
	if !got.Equal(want) || got.Fields() != want.Fields() {
		t.Errorf("Add = %v, want %v", got, want)
	}
	if back := got.Sub(d); back.Fields() != dt.Fields() {
		t.Errorf("Sub did not invert Add: %v != %v", back, dt)
	}
}

func TestAddDateTime(t *testing.T) {
	dt := date(Gregorian, UTC, 2020, 2, 10, 8, 0, 0)
	span := date(Gregorian, UTC, 4, 4, 19, 10, 51, 20)
	got := dt.AddDateTime(span)
	want := date(Gregorian, UTC, 2024, 6, 29, 18, 51, 20)
	if got.Fields() != want.Fields() {
		t.Errorf("AddDateTime = %v, want %v", got, want)
	}
}

func TestBitwiseOps(t *testing.T) {
	a := date(Gregorian, UTC, 2024, 6, 16, 18, 51, 20)
	b := date(Gregorian, UTC, 2024, 6, 16, 18, 51, 21)
	if a.Xor(a) != 0 {
		t.Errorf("a.Xor(a) = %#x, want 0", a.Xor(a))
	}
	if a.Xor(b) == 0 {
		t.Error("distinct instants have Xor 0")
	}
	if got := a.And(b) | a.Xor(b); got != a.Or(b) {
		t.Errorf("And|Xor = %#x, Or = %#x", got, a.Or(b))
	}
}

func TestDateTimeUnix(t *testing.T) {
	want := time.Date(2024, 6, 16, 18, 51, 20, 0, time.UTC).Unix()
	dt := date(FastUTC, UTC, 2024, 6, 16, 18, 51, 20)
	if got := dt.Unix(); got != want {
		t.Errorf("Unix() = %d, want %d", got, want)
	}

	// A zoned DateTime converts to UTC before counting.
	east, _ := NewOffset(2, 0, false)
	zoned := date(FastUTC, FixedZone("East", east), 2024, 6, 16, 20, 51, 20)
	if got := zoned.Unix(); got != want {
		t.Errorf("zoned Unix() = %d, want %d", got, want)
	}

	ms := New(FastUTC, UTC, 2024, 6, 16, 18, 51, 20, 123, 456, 789)
	if got := ms.UnixMilli(); got != want*1e3+123 {
		t.Errorf("UnixMilli() = %d, want %d", got, want*1e3+123)
	}
	if got := ms.UnixNano(); got != want*1e9+123456789 {
		t.Errorf("UnixNano() = %d, want %d", got, want*1e9+123456789)
	}
}

func TestHashValueRoundTrip(t *testing.T) {
	dt := New(FastUTC, UTC, 2024, 6, 16, 18, 51, 20, 123, 456, 0)
	got := FromHashValue(FastUTC, UTC, dt.HashValue(Hash64), Hash64)
	if diff := cmp.Diff(dt.Fields(), got.Fields()); diff != "" {
		t.Errorf("64-bit hash round trip (-want +got):\n%s", diff)
	}

	// Coarse widths decode to the first matching instant.
	got = FromHashValue(FastUTC, UTC, dt.HashValue(Hash16), Hash16)
	want := date(FastUTC, UTC, 1970+(2024-1970)&3, 6, 16, 18, 0, 0)
	if diff := cmp.Diff(want.Fields(), got.Fields()); diff != "" {
		t.Errorf("16-bit hash decode (-want +got):\n%s", diff)
	}
}

func TestZeroDateTime(t *testing.T) {
	var dt DateTime
	if dt.Year() != 1 || dt.Month() != 1 || dt.Day() != 1 {
		t.Errorf("zero DateTime = %04d-%02d-%02d", dt.Year(), dt.Month(), dt.Day())
	}
	if dt.Calendar() != Gregorian {
		t.Error("zero DateTime calendar is not Gregorian")
	}
	// 0001-01-01 was a Monday.
	if dt.Weekday() != 1 {
		t.Errorf("zero DateTime weekday = %d, want 1", dt.Weekday())
	}
}

func TestWeekdayYearDay(t *testing.T) {
	dt := date(Gregorian, UTC, 2024, 6, 16, 0, 0, 0)
	if dt.Weekday() != 0 {
		t.Errorf("Weekday() = %d, want 0 (Sunday)", dt.Weekday())
	}
	if dt.YearDay() != 168 {
		t.Errorf("YearDay() = %d, want 168", dt.YearDay())
	}
}

func TestMarshalText(t *testing.T) {
	east, _ := NewOffset(5, 30, false)
	dt := date(Gregorian, FixedZone("East", east), 2024, 6, 16, 18, 51, 20)
	b, err := dt.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText = _, %v", err)
	}
	if got, want := string(b), "2024-06-16T18:51:20+05:30"; got != want {
		t.Fatalf("MarshalText = %q, want %q", got, want)
	}
	var back DateTime
	if err := back.UnmarshalText(b); err != nil {
		t.Fatalf("UnmarshalText(%q) = %v", b, err)
	}
	if !back.Equal(dt) {
		t.Errorf("round trip %v != %v", back, dt)
	}
	if err := back.UnmarshalText([]byte("2024-06-16")); err == nil {
		t.Error("UnmarshalText accepted a bare date")
	}
}
