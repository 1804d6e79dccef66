// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrono

import "errors"

// A TzDT describes one daylight-saving transition as a rule of the form
// "the {first,second,last,second-to-last} <weekday> of <month> at <hour>",
// packed into a uint16:
//
//	bit  0-3   month, 1 through 12
//	bit  4-6   weekday, 0=Sunday through 6=Saturday
//	bit  7     end-of-month flag: count occurrences from the end
//	bit  8     week flag: second (or, from the end, second-to-last)
//	bit  9-11  index into the canonical transition hours
//	bit 12-15  zero
//
// Real-world transitions only ever happen at a small set of local hours;
// the rule stores an index into that canonical set rather than a full hour
// field. Every valid TzDT round-trips exactly through its uint16.
type TzDT uint16

// transitionHours is the closed set of local hours at which a TzDT can
// fire.
var transitionHours = [8]int{0, 1, 2, 3, 4, 5, 22, 23}

// A TzWeek selects which occurrence of the rule's weekday within the month
// the transition falls on.
type TzWeek uint8

const (
	WeekFirst        TzWeek = iota // first occurrence
	WeekSecond                     // second occurrence
	WeekLast                       // last occurrence
	WeekSecondToLast               // second-to-last occurrence
)

const (
	tzdtMonthMask   = 0x000f
	tzdtWeekdayMask = 0x0070
	tzdtEndFlag     = 0x0080
	tzdtWeekFlag    = 0x0100
	tzdtHourMask    = 0x0e00
)

var (
	errTzDTMonth   = errors.New("transition month out of range")
	errTzDTWeekday = errors.New("transition weekday out of range")
	errTzDTHour    = errors.New("transition hour not in canonical set")
	errTzDTBits    = errors.New("invalid transition rule encoding")
)

// NewTzDT builds a transition rule. hour must be one of the canonical
// transition hours (0-5, 22 or 23).
func NewTzDT(month, weekday int, week TzWeek, hour int) (TzDT, error) {
	if month < 1 || month > 12 {
		return 0, errTzDTMonth
	}
	if weekday < 0 || weekday > 6 {
		return 0, errTzDTWeekday
	}
	hi := -1
	for i, h := range transitionHours {
		if h == hour {
			hi = i
			break
		}
	}
	if hi < 0 {
		return 0, errTzDTHour
	}
	r := TzDT(month) | TzDT(weekday)<<4 | TzDT(hi)<<9
	if week == WeekLast || week == WeekSecondToLast {
		r |= tzdtEndFlag
	}
	if week == WeekSecond || week == WeekSecondToLast {
		r |= tzdtWeekFlag
	}
	return r, nil
}

// TzDTFromUint16 reconstructs a rule from its packed encoding. It is the
// exact inverse of Uint16 for every value Uint16 can produce.
func TzDTFromUint16(v uint16) (TzDT, error) {
	if v&^(tzdtMonthMask|tzdtWeekdayMask|tzdtEndFlag|tzdtWeekFlag|tzdtHourMask) != 0 {
		return 0, errTzDTBits
	}
	m := int(v & tzdtMonthMask)
	if m < 1 || m > 12 {
		return 0, errTzDTMonth
	}
	if (v&tzdtWeekdayMask)>>4 > 6 {
		return 0, errTzDTWeekday
	}
	return TzDT(v), nil
}

// Uint16 returns the packed encoding of r.
func (r TzDT) Uint16() uint16 { return uint16(r) }

// Month returns the transition month, 1 through 12.
func (r TzDT) Month() int { return int(r & tzdtMonthMask) }

// Weekday returns the transition weekday, 0=Sunday through 6=Saturday.
func (r TzDT) Weekday() int { return int((r & tzdtWeekdayMask) >> 4) }

// Week returns which occurrence of the weekday the rule selects.
func (r TzDT) Week() TzWeek {
	switch {
	case r&tzdtEndFlag != 0 && r&tzdtWeekFlag != 0:
		return WeekSecondToLast
	case r&tzdtEndFlag != 0:
		return WeekLast
	case r&tzdtWeekFlag != 0:
		return WeekSecond
	}
	return WeekFirst
}

// Hour returns the local hour at which the transition fires.
func (r TzDT) Hour() int { return transitionHours[(r&tzdtHourMask)>>9] }

// Resolve evaluates the rule against a concrete year, returning the month,
// day of month and hour of the transition under the given calendar's
// weekday layout.
func (r TzDT) Resolve(cal Calendar, year int) (month, day, hour int) {
	month = r.Month()
	switch r.Week() {
	case WeekFirst, WeekSecond:
		first := cal.DayOfWeek(year, month, 1)
		day = 1 + (r.Weekday()-first+7)%7
		if r.Week() == WeekSecond {
			day += 7
		}
	default:
		last := cal.DaysInMonth(year, month)
		lastWD := cal.DayOfWeek(year, month, last)
		day = last - (lastWD-r.Weekday()+7)%7
		if r.Week() == WeekSecondToLast {
			day -= 7
		}
	}
	return month, day, r.Hour()
}

// A ZoneDST couples the two transition rules of a zone with its standard
// (non-DST) offset. The offset in effect during the DST window is the
// standard offset plus its shift (one hour, unless the offset carries one
// of the shift exceptions).
type ZoneDST struct {
	Start TzDT // beginning of daylight-saving time
	End   TzDT // end of daylight-saving time
	Std   Offset
}

// Pack returns the 5-byte encoding of z: both rules big-endian, then the
// offset byte.
func (z ZoneDST) Pack() [5]byte {
	var b [5]byte
	b[0] = byte(z.Start >> 8)
	b[1] = byte(z.Start)
	b[2] = byte(z.End >> 8)
	b[3] = byte(z.End)
	b[4] = z.Std.Byte()
	return b
}

// ZoneDSTFromBytes is the exact inverse of Pack.
func ZoneDSTFromBytes(b [5]byte) (ZoneDST, error) {
	start, err := TzDTFromUint16(uint16(b[0])<<8 | uint16(b[1]))
	if err != nil {
		return ZoneDST{}, err
	}
	end, err := TzDTFromUint16(uint16(b[2])<<8 | uint16(b[3]))
	if err != nil {
		return ZoneDST{}, err
	}
	std, err := OffsetFromByte(b[4])
	if err != nil {
		return ZoneDST{}, err
	}
	return ZoneDST{Start: start, End: end, Std: std}, nil
}

// ruleKey orders a (month, day, hour, minute) tuple within one year.
func ruleKey(month, day, hour, minute int) int {
	return ((month*100+day)*100+hour)*100 + minute
}

// active reports whether the given local date and time fall inside the
// daylight-saving window [start, end) for its year. Windows that span the
// turn of the year (southern hemisphere rules) are handled.
func (z ZoneDST) active(cal Calendar, year, month, day, hour, minute int) bool {
	smo, sd, sh := z.Start.Resolve(cal, year)
	emo, ed, eh := z.End.Resolve(cal, year)

	t := ruleKey(month, day, hour, minute)
	start := ruleKey(smo, sd, sh, 0)
	end := ruleKey(emo, ed, eh, 0)

	if start <= end {
		return start <= t && t < end
	}
	return t >= start || t < end
}
