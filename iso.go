// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrono

// An ISOFormat is one of the closed set of supported ISO 8601 layouts.
// The same enumeration drives both formatting and parsing; there is no
// free-form layout string at this level.
type ISOFormat int

const (
	ISOExtended       ISOFormat = iota // 2006-01-02T15:04:05
	ISOExtendedOffset                  // 2006-01-02T15:04:05+07:00
	ISOSpace                           // 2006-01-02 15:04:05
	ISOSpaceOffset                     // 2006-01-02 15:04:05+07:00
	ISOBasic                           // 20060102150405
)

// String returns the layout in the reference-date notation of package
// time, for documentation and error messages.
func (f ISOFormat) String() string {
	switch f {
	case ISOExtended:
		return "2006-01-02T15:04:05"
	case ISOExtendedOffset:
		return "2006-01-02T15:04:05+07:00"
	case ISOSpace:
		return "2006-01-02 15:04:05"
	case ISOSpaceOffset:
		return "2006-01-02 15:04:05+07:00"
	case ISOBasic:
		return "20060102150405"
	}
	return "<invalid ISO format>"
}

func put2(b []byte, i, v int) {
	b[i] = byte('0' + v/10%10)
	b[i+1] = byte('0' + v%10)
}

func put4(b []byte, i, v int) {
	b[i] = byte('0' + v/1000%10)
	b[i+1] = byte('0' + v/100%10)
	b[i+2] = byte('0' + v/10%10)
	b[i+3] = byte('0' + v%10)
}

// ISO formats dt according to the given layout. Offset-suffixed layouts
// carry the UTC offset in effect at dt's local fields.
func (dt DateTime) ISO(f ISOFormat) string {
	switch f {
	case ISOBasic:
		var b [14]byte
		put4(b[:], 0, dt.Year())
		put2(b[:], 4, dt.Month())
		put2(b[:], 6, dt.Day())
		put2(b[:], 8, dt.hour)
		put2(b[:], 10, dt.minute)
		put2(b[:], 12, dt.second)
		return string(b[:])
	}

	sep := byte('T')
	if f == ISOSpace || f == ISOSpaceOffset {
		sep = ' '
	}
	var b [25]byte
	put4(b[:], 0, dt.Year())
	b[4] = '-'
	put2(b[:], 5, dt.Month())
	b[7] = '-'
	put2(b[:], 8, dt.Day())
	b[10] = sep
	put2(b[:], 11, dt.hour)
	b[13] = ':'
	put2(b[:], 14, dt.minute)
	b[16] = ':'
	put2(b[:], 17, dt.second)
	if f != ISOExtendedOffset && f != ISOSpaceOffset {
		return string(b[:19])
	}

	off := dt.tz.OffsetAt(dt.Calendar(), dt.Year(), dt.Month(), dt.Day(), dt.hour, dt.minute, dt.second)
	if off.Negative() {
		b[19] = '-'
	} else {
		b[19] = '+'
	}
	put2(b[:], 20, off.Hour())
	b[22] = ':'
	put2(b[:], 23, off.Minute())
	return string(b[:])
}

// ParseISO parses text against the given layout under cal. Malformed input
// yields a zero DateTime and a *ParseError; parsing never panics. Layouts
// with an offset suffix produce a DateTime in a fixed zone at that offset,
// the others in UTC.
func ParseISO(f ISOFormat, text string, cal Calendar) (DateTime, error) {
	if cal == nil {
		cal = Gregorian
	}
	layout := f.String()

	fail := func(msg string) (DateTime, error) {
		return DateTime{}, &ParseError{Layout: layout, Value: text, Message: msg}
	}

	var want int
	switch f {
	case ISOExtended, ISOSpace:
		want = 19
	case ISOExtendedOffset, ISOSpaceOffset:
		want = 25
	case ISOBasic:
		want = 14
	default:
		return fail("unknown ISO format")
	}
	if len(text) != want {
		return fail("wrong length")
	}

	var year, month, day, hour, minute, second int
	if f == ISOBasic {
		for i := 0; i < 14; i++ {
			if !isDigit(text, i) {
				return fail("malformed digits")
			}
		}
		num := func(i, n int) int {
			v := 0
			for ; n > 0; n-- {
				v = v*10 + int(text[i]-'0')
				i++
			}
			return v
		}
		year, month, day = num(0, 4), num(4, 2), num(6, 2)
		hour, minute, second = num(8, 2), num(10, 2), num(12, 2)
	} else {
		sep := byte('T')
		if f == ISOSpace || f == ISOSpaceOffset {
			sep = ' '
		}
		if text[4] != '-' || text[7] != '-' || text[10] != sep || text[13] != ':' || text[16] != ':' {
			return fail("malformed separators")
		}
		for _, i := range [...]int{0, 1, 2, 3, 5, 6, 8, 9, 11, 12, 14, 15, 17, 18} {
			if !isDigit(text, i) {
				return fail("malformed digits")
			}
		}
		toInt := func(i int) int { return int(text[i]-'0')*10 + int(text[i+1]-'0') }
		year = toInt(0)*100 + toInt(2)
		month, day = toInt(5), toInt(8)
		hour, minute, second = toInt(11), toInt(14), toInt(17)
	}

	if month < 1 || month > 12 {
		return fail("month out of range")
	}
	if year < cal.MinYear() || year > cal.MaxYear() {
		return fail("year out of range")
	}
	if day < 1 || day > cal.DaysInMonth(year, month) {
		return fail("day out of range")
	}
	if hour > 23 || minute > 59 {
		return fail("time out of range")
	}
	if second >= cal.MaxSecond(year, month, day, hour, minute) {
		return fail("second out of range")
	}

	tz := UTC
	if f == ISOExtendedOffset || f == ISOSpaceOffset {
		suffix := text[19:]
		if suffix[0] != '+' && suffix[0] != '-' {
			return fail("malformed offset")
		}
		off, err := ParseOffset(suffix)
		if err != nil {
			return fail("malformed offset")
		}
		if off != UTCOffset {
			tz = FixedZone(suffix, off)
		}
	}

	return New(cal, tz, year, month, day, hour, minute, second, 0, 0, 0), nil
}
