// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrono

import (
	"errors"
	"strings"
)

// An Offset is a fixed UTC offset packed into a single byte:
//
//	bit  0-3  hour, 0 through 15
//	bit  4-5  minute selector: 0 → :00, 1 → :30, 2 → :45 (3 is invalid)
//	bit  6-7  kind: 0 positive, 1 negative,
//	          2 positive with a 30-minute DST shift,
//	          3 positive with a 2-hour DST shift
//
// The kind values above 1 encode the two real-world exceptions to the usual
// one-hour daylight-saving shift (Lord Howe Island shifts 30 minutes, Troll
// Station shifts 2 hours). Both apply only to non-negative offsets, which
// is why sign and exception can share the field. Every valid Offset
// round-trips exactly through its byte.
//
// The zero Offset is UTC.
type Offset uint8

const (
	offsetHourMask   = 0x0f
	offsetMinuteMask = 0x30
	offsetKindMask   = 0xc0

	offsetKindNegative = 1
	offsetKindDST30    = 2
	offsetKindDST120   = 3
)

// UTCOffset is the zero offset.
const UTCOffset Offset = 0

// offsetMinuteValue maps the 2-bit minute selector to minutes. Index 3 is
// unused and rejected by OffsetFromByte.
var offsetMinuteValue = [4]int{0, 30, 45, -1}

// A DSTShift selects the daylight-saving delta an offset applies when its
// zone is inside the DST window.
type DSTShift uint8

const (
	ShiftHour       DSTShift = iota // the usual one hour
	ShiftHalfHour                   // 30 minutes (Lord Howe Island)
	ShiftDoubleHour                 // 2 hours (Troll Station)
)

// Minutes returns the shift as a number of minutes.
func (s DSTShift) Minutes() int {
	switch s {
	case ShiftHalfHour:
		return 30
	case ShiftDoubleHour:
		return 120
	}
	return 60
}

var (
	errOffsetHour   = errors.New("offset hour out of range")
	errOffsetMinute = errors.New("offset minute must be 0, 30 or 45")
	errOffsetShift  = errors.New("DST shift exception requires a non-negative offset")
	errOffsetByte   = errors.New("invalid offset byte")
)

// NewOffset returns the offset hour:minute, negated if neg is set. minute
// must be one of 0, 30 or 45 and hour must be in [0, 15].
func NewOffset(hour, minute int, neg bool) (Offset, error) {
	if hour < 0 || hour > 15 {
		return 0, errOffsetHour
	}
	var mi int
	switch minute {
	case 0:
		mi = 0
	case 30:
		mi = 1
	case 45:
		mi = 2
	default:
		return 0, errOffsetMinute
	}
	o := Offset(hour) | Offset(mi)<<4
	if neg {
		o |= offsetKindNegative << 6
	}
	return o, nil
}

// WithShift returns a copy of o carrying the given DST shift exception.
// Only non-negative offsets can carry an exception; a shift of ShiftHour
// clears any exception.
func (o Offset) WithShift(s DSTShift) (Offset, error) {
	if s == ShiftHour {
		if o.Negative() {
			return o, nil
		}
		return o &^ offsetKindMask, nil
	}
	if o.Negative() {
		return 0, errOffsetShift
	}
	o &^= offsetKindMask
	if s == ShiftHalfHour {
		return o | offsetKindDST30<<6, nil
	}
	return o | offsetKindDST120<<6, nil
}

// OffsetFromByte reconstructs an Offset from its byte encoding. It is the
// exact inverse of Byte for every value Byte can produce.
func OffsetFromByte(b byte) (Offset, error) {
	if b&offsetMinuteMask == offsetMinuteMask {
		return 0, errOffsetByte
	}
	return Offset(b), nil
}

// Byte returns the single-byte encoding of o.
func (o Offset) Byte() byte { return byte(o) }

// Hour returns the hour component, always non-negative.
func (o Offset) Hour() int { return int(o & offsetHourMask) }

// Minute returns the minute component: 0, 30 or 45.
func (o Offset) Minute() int { return offsetMinuteValue[o>>4&3] }

// Negative reports whether the offset lies west of UTC.
func (o Offset) Negative() bool { return o>>6 == offsetKindNegative }

// Shift returns the daylight-saving shift this offset applies.
func (o Offset) Shift() DSTShift {
	switch o >> 6 {
	case offsetKindDST30:
		return ShiftHalfHour
	case offsetKindDST120:
		return ShiftDoubleHour
	}
	return ShiftHour
}

// Minutes returns the signed total offset from UTC in minutes.
func (o Offset) Minutes() int {
	m := o.Hour()*60 + o.Minute()
	if o.Negative() {
		return -m
	}
	return m
}

// dst returns the offset in effect while daylight-saving time is active:
// o plus its shift. The shifted offset keeps o's exception bits cleared.
func (o Offset) dst() Offset {
	d, err := offsetFromMinutes(o.Minutes() + o.Shift().Minutes())
	if err != nil {
		// Unreachable for offsets built through the constructors; keep
		// the standard offset rather than fabricating one.
		return o
	}
	return d
}

// offsetFromMinutes converts a signed minute count into an Offset.
func offsetFromMinutes(m int) (Offset, error) {
	neg := m < 0
	if neg {
		m = -m
	}
	return NewOffset(m/60, m%60, neg)
}

// String formats o as ±HH:MM.
func (o Offset) String() string {
	var b [6]byte
	if o.Negative() {
		b[0] = '-'
	} else {
		b[0] = '+'
	}
	h, m := o.Hour(), o.Minute()
	b[1] = byte('0' + h/10)
	b[2] = byte('0' + h%10)
	b[3] = ':'
	b[4] = byte('0' + m/10)
	b[5] = byte('0' + m%10)
	return string(b[:])
}

// ParseOffset parses a textual UTC offset. Accepted forms are ±HH:MM,
// ±HHMM, ±HH, "Z", and IANA-style names of the shape "Etc/UTC-4",
// "UTC+5:30" or "GMT-7". The sign of named forms is taken literally.
func ParseOffset(s string) (Offset, error) {
	orig := s
	s = strings.TrimPrefix(s, "Etc/")
	s = strings.TrimPrefix(s, "UTC")
	s = strings.TrimPrefix(s, "GMT")
	if s == "" || s == "Z" {
		return UTCOffset, nil
	}

	neg := false
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		neg = true
		s = s[1:]
	default:
		return 0, errors.New("offset " + quote(orig) + ": missing sign")
	}
	digits := 0
	for digits < len(s) && '0' <= s[digits] && s[digits] <= '9' {
		digits++
	}
	if digits == 0 || digits > 4 {
		return 0, errors.New("offset " + quote(orig) + ": malformed hour")
	}

	var hour, minute int
	switch digits {
	case 1, 2:
		for i := 0; i < digits; i++ {
			hour = hour*10 + int(s[i]-'0')
		}
	case 4:
		// ±HHMM
		hour = int(s[0]-'0')*10 + int(s[1]-'0')
		minute = int(s[2]-'0')*10 + int(s[3]-'0')
	default:
		return 0, errors.New("offset " + quote(orig) + ": malformed hour")
	}
	s = s[digits:]

	if strings.HasPrefix(s, ":") {
		s = s[1:]
		if len(s) != 2 || !isDigit(s, 0) || !isDigit(s, 1) {
			return 0, errors.New("offset " + quote(orig) + ": malformed minute")
		}
		minute = int(s[0]-'0')*10 + int(s[1]-'0')
		s = s[2:]
	}
	if s != "" {
		return 0, errors.New("offset " + quote(orig) + ": trailing text")
	}

	o, err := NewOffset(hour, minute, neg)
	if err != nil {
		return 0, errors.New("offset " + quote(orig) + ": " + err.Error())
	}
	return o, nil
}

func quote(s string) string { return `"` + s + `"` }
