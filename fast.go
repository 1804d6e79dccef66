// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrono

// The fast fixed-width timestamps trade resolution and year range for
// footprint. Each is a single unsigned integer holding exactly the FastUTC
// hash-codec value of its width, so the integer's own comparison operators
// order instants and equality is bitwise. The timezone is always UTC and
// the calendar always [FastUTC].
//
//	Fast64  microsecond resolution, years 1970-6065
//	Fast32  second resolution, years 1970-2033
//	Fast16  hour resolution, years 1970-1973
//	Fast8   weekday and hour only (a recurring weekly slot)
type (
	Fast64 uint64
	Fast32 uint32
	Fast16 uint16
	Fast8  uint8
)

// NewFast64 packs the given fields at microsecond resolution.
func NewFast64(year, month, day, hour, minute, second, milli, micro int) Fast64 {
	dt := New(FastUTC, UTC, year, month, day, hour, minute, second, milli, micro, 0)
	return Fast64(dt.HashValue(Hash64))
}

// NewFast32 packs the given fields at second resolution.
func NewFast32(year, month, day, hour, minute, second int) Fast32 {
	dt := New(FastUTC, UTC, year, month, day, hour, minute, second, 0, 0, 0)
	return Fast32(dt.HashValue(Hash32))
}

// NewFast16 packs the given fields at hour resolution.
func NewFast16(year, month, day, hour int) Fast16 {
	dt := New(FastUTC, UTC, year, month, day, hour, 0, 0, 0, 0, 0)
	return Fast16(dt.HashValue(Hash16))
}

// NewFast8 packs a weekly slot: a weekday (0=Sunday) and an hour.
func NewFast8(weekday, hour int) Fast8 {
	return Fast8(Hash(FastUTC, Fields{Weekday: weekday, Hour: hour}, Hash8))
}

// The Now constructors read the system clock once and truncate to the
// width's resolution.

func Fast64Now() Fast64 {
	dt := Now(FastUTC, UTC)
	return Fast64(dt.HashValue(Hash64))
}

func Fast32Now() Fast32 {
	dt := Now(FastUTC, UTC)
	return Fast32(dt.HashValue(Hash32))
}

func Fast16Now() Fast16 {
	dt := Now(FastUTC, UTC)
	return Fast16(dt.HashValue(Hash16))
}

func Fast8Now() Fast8 {
	dt := Now(FastUTC, UTC)
	return Fast8(dt.HashValue(Hash8))
}

// Fields unpacks the stored value.
func (t Fast64) Fields() Fields { return FromHash(FastUTC, uint64(t), Hash64) }
func (t Fast32) Fields() Fields { return FromHash(FastUTC, uint64(t), Hash32) }
func (t Fast16) Fields() Fields { return FromHash(FastUTC, uint64(t), Hash16) }
func (t Fast8) Fields() Fields  { return FromHash(FastUTC, uint64(t), Hash8) }

// DateTime widens the timestamp to a full DateTime in UTC.
func (t Fast64) DateTime() DateTime { return FromHashValue(FastUTC, UTC, uint64(t), Hash64) }
func (t Fast32) DateTime() DateTime { return FromHashValue(FastUTC, UTC, uint64(t), Hash32) }
func (t Fast16) DateTime() DateTime { return FromHashValue(FastUTC, UTC, uint64(t), Hash16) }

func (t Fast64) Year() int   { return t.Fields().Year }
func (t Fast64) Month() int  { return t.Fields().Month }
func (t Fast64) Day() int    { return t.Fields().Day }
func (t Fast64) Hour() int   { return t.Fields().Hour }
func (t Fast64) Minute() int { return t.Fields().Minute }
func (t Fast64) Second() int { return t.Fields().Second }
func (t Fast64) Milli() int  { return t.Fields().Milli }
func (t Fast64) Micro() int  { return t.Fields().Micro }

func (t Fast32) Year() int   { return t.Fields().Year }
func (t Fast32) Month() int  { return t.Fields().Month }
func (t Fast32) Day() int    { return t.Fields().Day }
func (t Fast32) Hour() int   { return t.Fields().Hour }
func (t Fast32) Minute() int { return t.Fields().Minute }
func (t Fast32) Second() int { return t.Fields().Second }

func (t Fast16) Year() int  { return t.Fields().Year }
func (t Fast16) Month() int { return t.Fields().Month }
func (t Fast16) Day() int   { return t.Fields().Day }
func (t Fast16) Hour() int  { return t.Fields().Hour }

func (t Fast8) Weekday() int { return t.Fields().Weekday }
func (t Fast8) Hour() int    { return t.Fields().Hour }

// Add applies a duration at the timestamp's resolution, with the same
// carry and wraparound behavior as [DateTime.Add].
func (t Fast64) Add(d Delta) Fast64 {
	return Fast64(t.DateTime().Add(d).HashValue(Hash64))
}

func (t Fast32) Add(d Delta) Fast32 {
	return Fast32(t.DateTime().Add(d).HashValue(Hash32))
}

func (t Fast16) Add(d Delta) Fast16 {
	return Fast16(t.DateTime().Add(d).HashValue(Hash16))
}

// String formats the timestamp as ISO 8601 at its resolution.
func (t Fast64) String() string { return t.DateTime().ISO(ISOExtended) }
func (t Fast32) String() string { return t.DateTime().ISO(ISOExtended) }
func (t Fast16) String() string { return t.DateTime().ISO(ISOExtended) }

// String formats the weekly slot as "<weekday> <hour>h".
func (t Fast8) String() string {
	days := [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	wd := t.Weekday()
	if wd > 6 {
		wd = 6
	}
	h := t.Hour()
	return days[wd] + " " + string([]byte{byte('0' + h/10), byte('0' + h%10)}) + "h"
}
