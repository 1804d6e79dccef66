// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrono

import "time"

// A DateTime is a full-precision, calendar- and timezone-aware point in
// time. Two DateTimes compare equal exactly if their UTC-normalized
// instants are equal, regardless of which Calendar or TimeZone produced
// them.
//
// The zero DateTime is 0001-01-01 00:00:00 UTC under the Gregorian
// calendar.
type DateTime struct {
	cal Calendar
	tz  TimeZone

	year, month, day     int
	hour, minute, second int
	milli, micro, nano   int
}

// A Delta is a duration expressed in calendar fields, for use with
// [DateTime.Add] and [DateTime.Sub]. Its components may be negative and
// arbitrarily large; they are normalized with carry during application.
type Delta struct {
	Years, Months, Days     int
	Hours, Minutes, Seconds int
	Millis, Micros, Nanos   int
}

// New returns the DateTime for the given fields. The fields may be outside
// their usual ranges and are normalized component-wise with carry,
// consulting cal for month lengths. A date carried past the calendar's
// [MinYear, MaxYear] bound wraps modularly to the opposite bound: one day
// past the maximum date is the minimum date.
func New(cal Calendar, tz TimeZone, year, month, day, hour, minute, second, milli, micro, nano int) DateTime {
	if cal == nil {
		cal = Gregorian
	}
	dt := DateTime{cal: cal, tz: tz}
	dt.year, dt.month, dt.day, dt.hour, dt.minute, dt.second, dt.milli, dt.micro, dt.nano =
		normalizeFields(cal, year, month, day, hour, minute, second, milli, micro, nano)
	return dt
}

// Now returns the current instant under the given calendar and timezone.
// It is the only function in this package that reads the system clock.
func Now(cal Calendar, tz TimeZone) DateTime {
	if cal == nil {
		cal = Gregorian
	}
	t := time.Now().UTC()
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	ns := t.Nanosecond()

	// OffsetAt takes local fields, so resolve the offset against the UTC
	// fields first and refine once against the shifted result.
	off := tz.OffsetAt(cal, y, int(mo), d, h, mi, s)
	l := New(cal, tz, y, int(mo), d, h, mi+off.Minutes(), s, ns/1e6, ns/1e3%1000, ns%1000)
	off2 := tz.OffsetAt(cal, l.year, l.month, l.day, l.hour, l.minute, l.second)
	if off2 != off {
		l = New(cal, tz, y, int(mo), d, h, mi+off2.Minutes(), s, ns/1e6, ns/1e3%1000, ns%1000)
	}
	return l
}

// FromHashValue decodes a value produced by [Hash] into a DateTime in the
// given timezone. Fields the (calendar, width) layout does not carry are
// filled with the calendar minimum, so coarse widths decode to the first
// representable instant matching the stored fields.
func FromHashValue(cal Calendar, tz TimeZone, v uint64, w HashWidth) DateTime {
	if cal == nil {
		cal = Gregorian
	}
	f := FromHash(cal, v, w)
	if f.Year < cal.MinYear() {
		f.Year = cal.MinYear()
	}
	if f.Month == 0 {
		f.Month = 1
	}
	if f.Day == 0 {
		f.Day = 1
	}
	return DateTime{
		cal: cal, tz: tz,
		year: f.Year, month: f.Month, day: f.Day,
		hour: f.Hour, minute: f.Minute, second: f.Second,
		milli: f.Milli, micro: f.Micro,
	}
}

// normalizeFields implements the carry and wraparound policy shared by all
// constructors and arithmetic.
func normalizeFields(cal Calendar, year, month, day, hour, minute, second, milli, micro, nano int) (y, mo, d, h, mi, s, ms, us, ns int) {
	micro, nano = norm(micro, nano, 1000)
	milli, micro = norm(milli, micro, 1000)
	second, milli = norm(second, milli, 1000)

	// An explicit leap second stands as given, if the fields denote an
	// insertion slot exactly.
	if hour == 23 && minute == 59 && second == 60 &&
		month >= 1 && month <= 12 && day >= 1 &&
		year >= cal.MinYear() && year <= cal.MaxYear() &&
		day <= cal.DaysInMonth(year, month) &&
		cal.MaxSecond(year, month, day, hour, minute) == 61 {
		return year, month, day, hour, minute, second, milli, micro, nano
	}

	minute, second = norm(minute, second, 60)
	hour, minute = norm(hour, minute, 60)
	day, hour = norm(day, hour, 24)

	m := month - 1
	year, m = norm(year, m, 12)
	month = m + 1

	// Resolve day overflow (and the year bound) on the day count: wrap
	// modularly over the calendar's full range.
	days := civilDays(year, month, 1) + int64(day-1)
	minDays := civilDays(cal.MinYear(), 1, 1)
	span := civilDays(cal.MaxYear()+1, 1, 1) - minDays
	days = minDays + floorMod(days-minDays, span)

	y, mo, d, _ = civilFromDays(days)
	return y, mo, d, hour, minute, second, milli, micro, nano
}

func floorMod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// Calendar returns the calendar the DateTime was built with.
func (dt DateTime) Calendar() Calendar {
	if dt.cal == nil {
		return Gregorian
	}
	return dt.cal
}

// Zone returns the DateTime's timezone.
func (dt DateTime) Zone() TimeZone { return dt.tz }

// Year returns the year in which dt occurs.
func (dt DateTime) Year() int {
	if dt.cal == nil && dt.year == 0 {
		return Gregorian.MinYear()
	}
	return dt.year
}

// Month returns the month of the year, 1 through 12.
func (dt DateTime) Month() int {
	if dt.month == 0 {
		return 1
	}
	return dt.month
}

// Day returns the day of the month.
func (dt DateTime) Day() int {
	if dt.day == 0 {
		return 1
	}
	return dt.day
}

// Hour returns the hour within the day, 0 through 23.
func (dt DateTime) Hour() int { return dt.hour }

// Minute returns the minute within the hour, 0 through 59.
func (dt DateTime) Minute() int { return dt.minute }

// Second returns the second within the minute, 0 through 59, or 60 during
// an inserted leap second.
func (dt DateTime) Second() int { return dt.second }

// Milli, Micro and Nano return the three subsecond components, each 0
// through 999.
func (dt DateTime) Milli() int { return dt.milli }
func (dt DateTime) Micro() int { return dt.micro }
func (dt DateTime) Nano() int  { return dt.nano }

// Weekday returns the day of the week, 0=Sunday through 6=Saturday.
func (dt DateTime) Weekday() int {
	return dt.Calendar().DayOfWeek(dt.Year(), dt.Month(), dt.Day())
}

// YearDay returns the 1-based ordinal of the date within its year.
func (dt DateTime) YearDay() int {
	return dt.Calendar().DayOfYear(dt.Year(), dt.Month(), dt.Day())
}

// Fields returns the flat field tuple of dt, for use with the hash codec.
func (dt DateTime) Fields() Fields {
	return Fields{
		Year: dt.Year(), Month: dt.Month(), Day: dt.Day(),
		Hour: dt.hour, Minute: dt.minute, Second: dt.second,
		Milli: dt.milli, Micro: dt.micro, Nano: dt.nano,
	}
}

// HashValue packs dt's local fields at the given width.
func (dt DateTime) HashValue(w HashWidth) uint64 {
	return Hash(dt.Calendar(), dt.Fields(), w)
}

// Add returns dt shifted by the given duration, normalizing with carry and
// wrapping modularly at the calendar bounds exactly like [New].
func (dt DateTime) Add(d Delta) DateTime {
	return New(dt.Calendar(), dt.tz,
		dt.Year()+d.Years, dt.Month()+d.Months, dt.Day()+d.Days,
		dt.hour+d.Hours, dt.minute+d.Minutes, dt.second+d.Seconds,
		dt.milli+d.Millis, dt.micro+d.Micros, dt.nano+d.Nanos)
}

// Sub returns dt shifted backwards by the given duration. It wraps
// identically to Add with a negated delta.
func (dt DateTime) Sub(d Delta) DateTime {
	return dt.Add(Delta{
		Years: -d.Years, Months: -d.Months, Days: -d.Days,
		Hours: -d.Hours, Minutes: -d.Minutes, Seconds: -d.Seconds,
		Millis: -d.Millis, Micros: -d.Micros, Nanos: -d.Nanos,
	})
}

// AddDateTime interprets other's fields as a duration and adds them to dt.
// This is the addition-operator form: the right-hand side's year counts as
// that many years, its month as that many months, and so on. It wraps
// identically to Add.
func (dt DateTime) AddDateTime(other DateTime) DateTime {
	return dt.Add(Delta{
		Years: other.Year(), Months: other.Month(), Days: other.Day(),
		Hours: other.hour, Minutes: other.minute, Seconds: other.second,
		Millis: other.milli, Micros: other.micro, Nanos: other.nano,
	})
}

// utc returns dt with its fields shifted to UTC.
func (dt DateTime) utc() DateTime {
	off := dt.tz.OffsetAt(dt.Calendar(), dt.Year(), dt.Month(), dt.Day(), dt.hour, dt.minute, dt.second)
	if off == UTCOffset {
		u := dt
		u.tz = UTC
		return u
	}
	u := New(dt.Calendar(), UTC,
		dt.Year(), dt.Month(), dt.Day(),
		dt.hour, dt.minute-off.Minutes(), dt.second,
		dt.milli, dt.micro, dt.nano)
	return u
}

// cmpKey is the UTC-normalized comparison hash. It is always computed with
// the Gregorian 64-bit layout so that instants compare equal across
// calendars; field significance is descending, so unsigned ordering of the
// keys orders the instants.
func (dt DateTime) cmpKey() uint64 {
	u := dt.utc()
	return Hash(Gregorian, u.Fields(), Hash64)
}

// Equal reports whether dt and other denote the same UTC-normalized
// instant, at the comparison hash's precision (microseconds).
func (dt DateTime) Equal(other DateTime) bool {
	return dt.cmpKey() == other.cmpKey()
}

// Compare orders dt against other on their UTC-normalized instants,
// returning -1, 0 or +1.
func (dt DateTime) Compare(other DateTime) int {
	a, b := dt.cmpKey(), other.cmpKey()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Before reports whether dt is earlier than other.
func (dt DateTime) Before(other DateTime) bool { return dt.Compare(other) < 0 }

// After reports whether dt is later than other.
func (dt DateTime) After(other DateTime) bool { return dt.Compare(other) > 0 }

// Xor, Or and And combine the UTC-normalized comparison hashes of two
// DateTimes bitwise.
func (dt DateTime) Xor(other DateTime) uint64 { return dt.cmpKey() ^ other.cmpKey() }
func (dt DateTime) Or(other DateTime) uint64  { return dt.cmpKey() | other.cmpKey() }
func (dt DateTime) And(other DateTime) uint64 { return dt.cmpKey() & other.cmpKey() }

// Unix, UnixMilli and UnixNano return the epoch-relative counts of dt's
// UTC-normalized instant under its calendar.
func (dt DateTime) Unix() int64 {
	u := dt.utc()
	return u.Calendar().Unix(u.year, u.month, u.day, u.hour, u.minute, u.second)
}

func (dt DateTime) UnixMilli() int64 {
	u := dt.utc()
	return u.Calendar().UnixMilli(u.year, u.month, u.day, u.hour, u.minute, u.second, u.milli)
}

func (dt DateTime) UnixNano() int64 {
	u := dt.utc()
	return u.Calendar().UnixNano(u.year, u.month, u.day, u.hour, u.minute, u.second, u.milli, u.micro, u.nano)
}

// String returns the date formatted as ISO 8601 with an offset suffix.
//
// The returned string is meant for debugging; for a stable serialized
// representation, use MarshalText or the hash codec.
func (dt DateTime) String() string {
	return dt.ISO(ISOExtendedOffset)
}

// MarshalText implements the encoding.TextMarshaler interface, formatting
// as ISO 8601 with an offset suffix.
func (dt DateTime) MarshalText() ([]byte, error) {
	return []byte(dt.ISO(ISOExtendedOffset)), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. The
// input must be ISO 8601 with an offset suffix; the Gregorian calendar is
// assumed.
func (dt *DateTime) UnmarshalText(b []byte) error {
	v, err := ParseISO(ISOExtendedOffset, string(b), Gregorian)
	if err == nil {
		*dt = v
	}
	return err
}
