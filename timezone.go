// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrono

import "time"

// A TimeZone composes a default fixed offset with an optional
// daylight-saving rule. It is constructed once per logical timezone and
// immutable afterwards; OffsetAt is its only computed accessor.
//
// The zero TimeZone is UTC.
type TimeZone struct {
	name string
	std  Offset
	dst  *ZoneDST
}

// UTC is the zero-offset timezone.
var UTC = TimeZone{name: "UTC"}

// FixedZone returns a timezone with a constant offset and no
// daylight-saving rule.
func FixedZone(name string, std Offset) TimeZone {
	return TimeZone{name: name, std: std}
}

// DSTZone returns a timezone governed by the given daylight-saving rule.
func DSTZone(name string, rule ZoneDST) TimeZone {
	return TimeZone{name: name, std: rule.Std, dst: &rule}
}

// ZoneByName resolves a zone identifier into a TimeZone. The resolution
// chain is:
//
//  1. the registry, if one is given;
//  2. the system's IANA database, if allowIANA is set (fitting the zone's
//     rules into a ZoneDST where possible);
//  3. literal offset names such as "Etc/UTC-4" or "UTC+5:30";
//  4. the literal fallback offset.
//
// The IANA lookup runs before the literal parse so that real database
// names keep their database meaning: "Etc/GMT-7" is UTC+7 there (POSIX
// signs are inverted), and only falls back to its literal reading when
// IANA lookup is disabled or the database is unavailable.
//
// A malformed or unknown identifier never fails hard; it degrades to the
// best available static information.
func ZoneByName(name string, fallback Offset, store ZoneStore, allowIANA bool) TimeZone {
	if store != nil {
		if rule, ok := store.Lookup(name); ok {
			if rule.DST != nil {
				return DSTZone(name, *rule.DST)
			}
			return FixedZone(name, rule.Offset)
		}
	}
	if allowIANA {
		if tz, ok := ianaZone(name); ok {
			return tz
		}
	}
	if o, err := ParseOffset(name); err == nil {
		return FixedZone(name, o)
	}
	return FixedZone(name, fallback)
}

// Name returns the zone identifier the timezone was constructed with.
func (tz TimeZone) Name() string { return tz.name }

// Std returns the standard (non-DST) offset.
func (tz TimeZone) Std() Offset { return tz.std }

// Rule returns the zone's daylight-saving rule, or nil.
func (tz TimeZone) Rule() *ZoneDST { return tz.dst }

// String implements fmt.Stringer.
func (tz TimeZone) String() string {
	if tz.name != "" {
		return tz.name
	}
	return tz.std.String()
}

// OffsetAt returns the UTC offset in effect at the given local date and
// time. Without a daylight-saving rule this is always the standard offset.
// With one, both transition rules are resolved against the given year's
// weekday layout (under cal), and the shifted offset is returned inside the
// [start, end) window.
func (tz TimeZone) OffsetAt(cal Calendar, year, month, day, hour, minute, second int) Offset {
	if tz.dst == nil {
		return tz.std
	}
	if tz.dst.active(cal, year, month, day, hour, minute) {
		return tz.std.dst()
	}
	return tz.std
}

// ianaProbeYear is the reference year against which IANA zone rules are
// probed. Pinning it keeps ianaZone a pure function of the zone database;
// the fitted rules are weekday-of-month rules and carry over to other
// years by construction.
const ianaProbeYear = 2024

// ianaZone consults the system timezone database for name and fits the
// location's behavior during the reference year into a TimeZone. Zones
// whose rules cannot be expressed as a ZoneDST (irregular transition days
// or non-canonical hours) degrade to a fixed zone at their standard
// offset.
func ianaZone(name string) (TimeZone, bool) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return TimeZone{}, false
	}
	year := ianaProbeYear

	offAt := func(month, day, hour int) int {
		t := time.Date(year, time.Month(month), day, hour, 30, 0, 0, loc)
		_, off := t.Zone()
		return off / 60
	}

	jan, jul := offAt(1, 15, 12), offAt(7, 15, 12)
	if jan == jul {
		o, err := offsetFromMinutes(jan)
		if err != nil {
			return TimeZone{}, false
		}
		return FixedZone(name, o), true
	}

	stdMin, dstMin := jan, jul
	if stdMin > dstMin {
		stdMin, dstMin = dstMin, stdMin
	}
	std, err := offsetFromMinutes(stdMin)
	if err != nil {
		return TimeZone{}, false
	}
	switch dstMin - stdMin {
	case 60:
		// the usual shift
	case 30:
		std, err = std.WithShift(ShiftHalfHour)
	case 120:
		std, err = std.WithShift(ShiftDoubleHour)
	default:
		return FixedZone(name, std), true
	}
	if err != nil {
		return FixedZone(name, std), true
	}

	// Locate the month boundaries at which the offset changes, then pin
	// down each transition day and express it as a rule.
	var rules []TzDT
	prev := offAt(12, 31, 23)
	for month := 1; month <= 12; month++ {
		last := Gregorian.DaysInMonth(year, month)
		cur := offAt(month, last, 23)
		if cur == prev {
			continue
		}
		rule, ok := fitTransition(loc, year, month, cur)
		if !ok {
			return FixedZone(name, std), true
		}
		rules = append(rules, rule)
		prev = cur
	}
	if len(rules) != 2 {
		return FixedZone(name, std), true
	}

	start, end := rules[0], rules[1]
	// rules are in month order; the one entering the higher offset starts
	// DST.
	smo, sd, sh := start.Resolve(Gregorian, year)
	if offAt(smo, sd, sh+1) != dstMin {
		start, end = end, start
	}
	return DSTZone(name, ZoneDST{Start: start, End: end, Std: std}), true
}

// fitTransition finds the day within the given month on which the offset
// changes to newOff and expresses it as a TzDT, if it fits the rule shape.
func fitTransition(loc *time.Location, year, month, newOff int) (TzDT, bool) {
	offAt := func(day, hour int) int {
		t := time.Date(year, time.Month(month), day, hour, 30, 0, 0, loc)
		_, off := t.Zone()
		return off / 60
	}
	dim := Gregorian.DaysInMonth(year, month)

	lo, hi := 1, dim
	for lo < hi {
		mid := (lo + hi) / 2
		if offAt(mid, 23) == newOff {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	day := lo

	hour := -1
	for h := 0; h < 24; h++ {
		if offAt(day, h) == newOff {
			hour = h
			break
		}
	}
	canonical := false
	for _, h := range transitionHours {
		if h == hour {
			canonical = true
			break
		}
	}
	if !canonical {
		return 0, false
	}

	week := WeekFirst
	switch {
	case day+7 > dim:
		week = WeekLast
	case day <= 7:
		week = WeekFirst
	case day <= 14:
		week = WeekSecond
	case day+14 > dim:
		week = WeekSecondToLast
	default:
		return 0, false
	}
	wd := Gregorian.DayOfWeek(year, month, day)
	rule, err := NewTzDT(month, wd, week, hour)
	return rule, err == nil
}
