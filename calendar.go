// Copyright 2009 The Go Authors.
// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chrono implements a calendar-aware time engine.
//
// The standard library time package is built around a single notion of an
// instant: nanoseconds on a continuous timeline, projected into a calendar
// only at the edges. That model is a poor fit when the calendar itself is
// the contract:
//
//   - Compact wire formats want a date/time packed into 8, 16, 32 or 64 bits
//     with a documented per-field bit budget, not a 128-bit wall/monotonic
//     pair.
//   - Some systems need a full proleptic Gregorian calendar with historical
//     leap seconds; others want a cheap Unix-anchored calendar that ignores
//     them. Both need to agree on the packing and text formats.
//   - Daylight-saving rules expressed as "last Sunday of March at 02:00"
//     need to be stored, round-tripped and evaluated without consulting an
//     external database.
//
// This package provides a [Calendar] abstraction with two implementations
// ([Gregorian] and [FastUTC]), byte-packed [Offset] and [TzDT] rule types, a
// [ZoneStore] registry, a [TimeZone] resolver, a fixed-width hash codec
// ([Hash]/[FromHash]), the full-precision [DateTime] type, and four compact
// fixed-width timestamps ([Fast64] through [Fast8]). Everything except
// [Now] is a pure function of its inputs.
//
// The date calculation code is largely copied from gonih.org/date (and
// through it, the standard library), so it makes the same assumptions and
// has the same edge-case behavior.
package chrono

// Computations on days are essentially copied from the standard library.
// See this comment for explanations:
// https://cs.opensource.google/go/go/+/refs/tags/go1.20.6:src/time/time.go;l=353

const (
	// The unsigned zero year for internal calculations.
	// Must be 1 mod 400, and dates before it will not compute correctly,
	// but otherwise can be changed at will.
	absoluteZeroYear = -292277022399

	// The year of day zero of the internal day count.
	internalYear = 1

	// Offsets to convert between internal and absolute day counts.
	absoluteToInternal = (absoluteZeroYear - internalYear) * 365.2425
	internalToAbsolute = -absoluteToInternal

	// Days in a given period of years.
	daysPer400Years = 146097
	daysPer100Years = 36524
	daysPer4Years   = 1461

	// Days from 0001-01-01 to 1970-01-01.
	unixEpochDays = 719162

	secondsPerDay = 86400
)

// daysBefore[m] counts the number of days in a non-leap year before month m+1
// begins. There is an entry for m=12, counting the days before January of
// next year (365).
var daysBefore = [...]int{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// norm returns nhi, nlo such that
//
//	hi * base + lo == nhi * base + nlo
//	0 <= nlo < base
func norm(hi, lo, base int) (nhi, nlo int) {
	if lo < 0 {
		n := (-lo-1)/base + 1
		hi -= n
		lo += n * base
	}
	if lo >= base {
		n := lo / base
		hi += n
		lo -= n * base
	}
	return hi, lo
}

// yearDays takes a year and returns the number of days from the absolute
// epoch to the start of that year. This is basically (year - zeroYear) * 365,
// but accounting for leap days.
func yearDays(year int) int64 {
	y := year - absoluteZeroYear

	n := y / 400
	y -= 400 * n
	d := int64(daysPer400Years) * int64(n)

	n = y / 100
	y -= 100 * n
	d += daysPer100Years * int64(n)

	n = y / 4
	y -= 4 * n
	d += daysPer4Years * int64(n)

	d += 365 * int64(y)

	return d
}

// civilDays returns the number of days from 0001-01-01 to the given date.
// month and day may be outside their usual ranges and are normalized, just
// as for [time.Date].
func civilDays(year, month, day int) int64 {
	m := month - 1
	year, m = norm(year, m, 12)
	month = m + 1

	d := yearDays(year)
	d += int64(daysBefore[month-1])
	if isLeap(year) && month >= 3 {
		d++
	}
	d += int64(day - 1)

	return d - internalToAbsolute
}

// civilFromDays computes the year, month, day and day of year in which the
// given day count (as returned by civilDays) occurs.
func civilFromDays(days int64) (year, month, day, yday int) {
	d := uint64(days + internalToAbsolute)

	// Account for 400 year cycles.
	n := d / daysPer400Years
	y := 400 * n
	d -= daysPer400Years * n

	// Cut off 100-year cycles.
	// The last cycle has one extra leap year, so on the last day of that
	// year, day / daysPer100Years will be 4 instead of 3. Cut it back down
	// to 3 by subtracting n>>2.
	n = d / daysPer100Years
	n -= n >> 2
	y += 100 * n
	d -= daysPer100Years * n

	// Cut off 4-year cycles.
	// The last cycle has a missing leap year, which does not affect the
	// computation.
	n = d / daysPer4Years
	y += 4 * n
	d -= daysPer4Years * n

	// Cut off years within a 4-year cycle.
	// The last year is a leap year, so on the last day of that year,
	// day / 365 will be 4 instead of 3. Cut it back down to 3 by
	// subtracting n>>2.
	n = d / 365
	n -= n >> 2
	y += n
	d -= 365 * n

	year = int(int64(y) + absoluteZeroYear)
	yday = int(d)

	day = yday
	if isLeap(year) {
		switch {
		case day > 31+29-1:
			// After leap day; pretend it wasn't there.
			day--
		case day == 31+29-1:
			// Leap day.
			return year, 2, 29, yday
		}
	}

	// Estimate month on assumption that every month has 31 days.
	// The estimate may be too low by at most one month, so adjust.
	month = day / 31
	end := daysBefore[month+1]
	var begin int
	if day >= end {
		month++
		begin = end
	} else {
		begin = daysBefore[month]
	}

	month++ // because January is 1
	day = day - begin + 1
	return year, month, day, yday
}

// weekdayOf returns the day of week (0=Sunday) for a day count as returned
// by civilDays. 0001-01-01 was a Monday.
func weekdayOf(days int64) int {
	wd := (days + 1) % 7
	if wd < 0 {
		wd += 7
	}
	return int(wd)
}

// A CalendarKind identifies one of the calendar models implemented by this
// package.
type CalendarKind uint8

const (
	KindGregorian CalendarKind = iota
	KindFastUTC
)

// String implements fmt.Stringer.
func (k CalendarKind) String() string {
	switch k {
	case KindGregorian:
		return "gregorian"
	case KindFastUTC:
		return "fastutc"
	}
	return "unknown"
}

// A Calendar answers the purely arithmetical questions about a calendar
// model: month lengths, leap years, weekday layout and epoch-relative
// second counts. Every method is a pure function of its integer arguments.
//
// Out-of-range month or day values are not defined at this layer; callers
// are expected to normalize first (as [DateTime] does).
type Calendar interface {
	// Kind identifies the calendar model.
	Kind() CalendarKind

	// MinYear and MaxYear bound the representable years. Arithmetic on
	// DateTime values wraps modularly at these bounds.
	MinYear() int
	MaxYear() int

	// IsLeapYear reports whether the given year has a February 29.
	IsLeapYear(year int) bool

	// DaysInMonth returns the number of days in the given month (1-12).
	DaysInMonth(year, month int) int

	// DayOfWeek returns the day of the week (0=Sunday through
	// 6=Saturday) of the given date.
	DayOfWeek(year, month, day int) int

	// DayOfYear returns the 1-based ordinal of the given date within its
	// year.
	DayOfYear(year, month, day int) int

	// LeapSeconds returns the number of leap seconds inserted between
	// the calendar's epoch and the given date (exclusive).
	LeapSeconds(year, month, day int) int

	// MaxSecond returns the number of seconds in the given minute: 61
	// for a minute that contains an inserted leap second, 60 otherwise.
	MaxSecond(year, month, day, hour, minute int) int

	// Unix, UnixMilli and UnixNano return the number of seconds,
	// milliseconds and nanoseconds between the calendar's epoch and the
	// given fields. The three counts are mutually consistent at their
	// respective precisions.
	Unix(year, month, day, hour, minute, second int) int64
	UnixMilli(year, month, day, hour, minute, second, milli int) int64
	UnixNano(year, month, day, hour, minute, second, milli, micro, nano int) int64

	// epochDays returns the number of days from 0001-01-01 to the
	// calendar's epoch.
	epochDays() int64
}

// The two calendar models.
//
// Gregorian is the full proleptic Gregorian calendar: years 1 through 9999,
// epoch 0001-01-01, with the historical leap-second table applied to its
// epoch-relative second counts.
//
// FastUTC is the simplified model: years 1970 through 9999, anchored to the
// Unix epoch, no leap seconds. It is the only calendar used by the fast
// fixed-width timestamps.
var (
	Gregorian Calendar = gregorianCalendar{}
	FastUTC   Calendar = fastCalendar{}
)

// CalendarByKind returns the Calendar for the given kind, or nil if the
// kind is unknown.
func CalendarByKind(k CalendarKind) Calendar {
	switch k {
	case KindGregorian:
		return Gregorian
	case KindFastUTC:
		return FastUTC
	}
	return nil
}

type gregorianCalendar struct{}

func (gregorianCalendar) Kind() CalendarKind { return KindGregorian }
func (gregorianCalendar) MinYear() int       { return 1 }
func (gregorianCalendar) MaxYear() int       { return 9999 }

func (gregorianCalendar) IsLeapYear(year int) bool { return isLeap(year) }

func (gregorianCalendar) DaysInMonth(year, month int) int {
	if month == 2 && isLeap(year) {
		return 29
	}
	return daysBefore[month] - daysBefore[month-1]
}

func (gregorianCalendar) DayOfWeek(year, month, day int) int {
	return weekdayOf(civilDays(year, month, day))
}

func (gregorianCalendar) DayOfYear(year, month, day int) int {
	yd := daysBefore[month-1] + day
	if isLeap(year) && month > 2 {
		yd++
	}
	return yd
}

func (gregorianCalendar) LeapSeconds(year, month, day int) int {
	return leapSecondsBefore(year, month, day)
}

func (gregorianCalendar) MaxSecond(year, month, day, hour, minute int) int {
	if hour == 23 && minute == 59 && isLeapSecondDate(year, month, day) {
		return 61
	}
	return 60
}

func (c gregorianCalendar) Unix(year, month, day, hour, minute, second int) int64 {
	d := civilDays(year, month, day)
	return d*secondsPerDay +
		int64(hour)*3600 + int64(minute)*60 + int64(second) +
		int64(leapSecondsBefore(year, month, day))
}

func (c gregorianCalendar) UnixMilli(year, month, day, hour, minute, second, milli int) int64 {
	return c.Unix(year, month, day, hour, minute, second)*1e3 + int64(milli)
}

func (c gregorianCalendar) UnixNano(year, month, day, hour, minute, second, milli, micro, nano int) int64 {
	return c.Unix(year, month, day, hour, minute, second)*1e9 +
		int64(milli)*1e6 + int64(micro)*1e3 + int64(nano)
}

func (gregorianCalendar) epochDays() int64 { return 0 }

type fastCalendar struct{}

func (fastCalendar) Kind() CalendarKind { return KindFastUTC }
func (fastCalendar) MinYear() int       { return 1970 }
func (fastCalendar) MaxYear() int       { return 9999 }

func (fastCalendar) IsLeapYear(year int) bool { return isLeap(year) }

func (fastCalendar) DaysInMonth(year, month int) int {
	if month == 2 && isLeap(year) {
		return 29
	}
	return daysBefore[month] - daysBefore[month-1]
}

func (fastCalendar) DayOfWeek(year, month, day int) int {
	return weekdayOf(civilDays(year, month, day))
}

func (fastCalendar) DayOfYear(year, month, day int) int {
	yd := daysBefore[month-1] + day
	if isLeap(year) && month > 2 {
		yd++
	}
	return yd
}

func (fastCalendar) LeapSeconds(year, month, day int) int { return 0 }

func (fastCalendar) MaxSecond(year, month, day, hour, minute int) int { return 60 }

func (fastCalendar) Unix(year, month, day, hour, minute, second int) int64 {
	d := civilDays(year, month, day) - unixEpochDays
	return d*secondsPerDay + int64(hour)*3600 + int64(minute)*60 + int64(second)
}

func (c fastCalendar) UnixMilli(year, month, day, hour, minute, second, milli int) int64 {
	return c.Unix(year, month, day, hour, minute, second)*1e3 + int64(milli)
}

func (c fastCalendar) UnixNano(year, month, day, hour, minute, second, milli, micro, nano int) int64 {
	return c.Unix(year, month, day, hour, minute, second)*1e9 +
		int64(milli)*1e6 + int64(micro)*1e3 + int64(nano)
}

func (fastCalendar) epochDays() int64 { return unixEpochDays }
