// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrono

import "golang.org/x/exp/constraints"

// A HashWidth selects one of the fixed-width integer encodings of a
// date/time field tuple.
type HashWidth uint8

const (
	Hash8  HashWidth = 8
	Hash16 HashWidth = 16
	Hash32 HashWidth = 32
	Hash64 HashWidth = 64
)

// Bits returns the width in bits.
func (w HashWidth) Bits() int { return int(w) }

// Fields is the flat field tuple the hash codec packs and unpacks. Which
// fields participate depends on the (calendar, width) layout; fields a
// layout does not carry come back zero from FromHash. Weekday is only
// stored by the 8-bit layouts and is derived from the date when hashing.
type Fields struct {
	Year    int
	Month   int
	Day     int
	Hour    int
	Minute  int
	Second  int
	Milli   int
	Micro   int
	Nano    int
	Weekday int
}

type hashField uint8

const (
	fieldYear hashField = iota
	fieldMonth
	fieldDay
	fieldHour
	fieldMinute
	fieldSecond
	fieldMilli
	fieldMicro
	fieldWeekday
)

type fieldSpec struct {
	field hashField
	bits  uint
}

// A hashLayout allocates a width's bits across fields, packed MSB-first in
// listed order and right-aligned in the integer. The year field stores
// year-yearBias.
type hashLayout struct {
	yearBias int
	fields   []fieldSpec
}

// The per-calendar, per-width bit allocations. These are the wire contract
// of the codec; see the package documentation before changing anything.
//
// Widths below 64 bits are deliberately lossy: 32 bits drop subseconds and
// narrow the year, 16 bits keep at most a coarse year plus month/day/hour,
// and 8 bits keep only weekday and hour (a coarse timestamp for recurring
// schedules).
var hashLayouts = map[CalendarKind]map[HashWidth]hashLayout{
	KindGregorian: {
		// year:14 month:4 day:5 hour:5 minute:6 second:6 milli:10
		// micro:10 — 60 of 64 bits
		Hash64: {fields: []fieldSpec{
			{fieldYear, 14}, {fieldMonth, 4}, {fieldDay, 5}, {fieldHour, 5},
			{fieldMinute, 6}, {fieldSecond, 6}, {fieldMilli, 10}, {fieldMicro, 10},
		}},
		// year:6 (1970-2033) month:4 day:5 hour:5 minute:6 second:6
		Hash32: {yearBias: 1970, fields: []fieldSpec{
			{fieldYear, 6}, {fieldMonth, 4}, {fieldDay, 5}, {fieldHour, 5},
			{fieldMinute, 6}, {fieldSecond, 6},
		}},
		// month:4 day:5 hour:5 — 14 of 16 bits, no year
		Hash16: {fields: []fieldSpec{
			{fieldMonth, 4}, {fieldDay, 5}, {fieldHour, 5},
		}},
		// weekday:3 hour:5
		Hash8: {fields: []fieldSpec{
			{fieldWeekday, 3}, {fieldHour, 5},
		}},
	},
	KindFastUTC: {
		// year:12 (1970-6065) month:4 day:5 hour:5 minute:6 second:6
		// milli:10 micro:10 — 58 of 64 bits
		Hash64: {yearBias: 1970, fields: []fieldSpec{
			{fieldYear, 12}, {fieldMonth, 4}, {fieldDay, 5}, {fieldHour, 5},
			{fieldMinute, 6}, {fieldSecond, 6}, {fieldMilli, 10}, {fieldMicro, 10},
		}},
		// year:6 (1970-2033) month:4 day:5 hour:5 minute:6 second:6
		Hash32: {yearBias: 1970, fields: []fieldSpec{
			{fieldYear, 6}, {fieldMonth, 4}, {fieldDay, 5}, {fieldHour, 5},
			{fieldMinute, 6}, {fieldSecond, 6},
		}},
		// year:2 (1970-1973) month:4 day:5 hour:5
		Hash16: {yearBias: 1970, fields: []fieldSpec{
			{fieldYear, 2}, {fieldMonth, 4}, {fieldDay, 5}, {fieldHour, 5},
		}},
		// weekday:3 hour:5
		Hash8: {fields: []fieldSpec{
			{fieldWeekday, 3}, {fieldHour, 5},
		}},
	},
}

// maskBits truncates v to its low bits. Negative values are truncated like
// their two's-complement image; feeding the codec fields outside a
// layout's domain is a caller contract violation, not an error.
func maskBits[T constraints.Integer](v T, bits uint) uint64 {
	return uint64(v) & (1<<bits - 1)
}

// Hash packs f into a width-bit unsigned integer using the layout for the
// given calendar and width. Fields outside the layout's domain are masked
// to their bit budget. The result of an unknown (calendar, width) pair is
// zero.
func Hash(cal Calendar, f Fields, w HashWidth) uint64 {
	layout, ok := hashLayouts[cal.Kind()][w]
	if !ok {
		return 0
	}
	var acc uint64
	for _, fs := range layout.fields {
		var v int
		switch fs.field {
		case fieldYear:
			v = f.Year - layout.yearBias
		case fieldMonth:
			v = f.Month
		case fieldDay:
			v = f.Day
		case fieldHour:
			v = f.Hour
		case fieldMinute:
			v = f.Minute
		case fieldSecond:
			v = f.Second
		case fieldMilli:
			v = f.Milli
		case fieldMicro:
			v = f.Micro
		case fieldWeekday:
			if f.Month != 0 {
				v = cal.DayOfWeek(f.Year, f.Month, f.Day)
			} else {
				v = f.Weekday
			}
		}
		acc = acc<<fs.bits | maskBits(v, fs.bits)
	}
	return acc
}

// FromHash unpacks a value produced by Hash with the same calendar and
// width. It is the exact inverse of Hash over the layout's representable
// domain; fields the layout does not carry are zero.
func FromHash(cal Calendar, v uint64, w HashWidth) Fields {
	layout, ok := hashLayouts[cal.Kind()][w]
	if !ok {
		return Fields{}
	}
	var f Fields
	for i := len(layout.fields) - 1; i >= 0; i-- {
		fs := layout.fields[i]
		x := int(v & (1<<fs.bits - 1))
		v >>= fs.bits
		switch fs.field {
		case fieldYear:
			f.Year = x + layout.yearBias
		case fieldMonth:
			f.Month = x
		case fieldDay:
			f.Day = x
		case fieldHour:
			f.Hour = x
		case fieldMinute:
			f.Minute = x
		case fieldSecond:
			f.Second = x
		case fieldMilli:
			f.Milli = x
		case fieldMicro:
			f.Micro = x
		case fieldWeekday:
			f.Weekday = x
		}
	}
	return f
}
