// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrono

// The IERS leap-second table, frozen at the 2016-12-31 insertion. Each entry
// is the last day of a month at whose end a (positive) leap second was
// inserted, encoded as year*10000 + month*100 + day. The table is fixed at
// compile time; dates past the last entry use its cumulative count.
var leapSecondDates = [...]int{
	19720630,
	19721231,
	19731231,
	19741231,
	19751231,
	19761231,
	19771231,
	19781231,
	19791231,
	19810630,
	19820630,
	19830630,
	19850630,
	19871231,
	19891231,
	19901231,
	19920630,
	19930630,
	19940630,
	19951231,
	19970630,
	19981231,
	20051231,
	20081231,
	20120630,
	20150630,
	20161231,
}

// leapSecondsBefore counts the leap seconds inserted strictly before the
// given date. A leap second inserted at the end of day D is counted from
// D+1 onward.
func leapSecondsBefore(year, month, day int) int {
	key := year*10000 + month*100 + day
	n := 0
	for _, d := range leapSecondDates {
		if d >= key {
			break
		}
		n++
	}
	return n
}

// isLeapSecondDate reports whether a leap second was inserted at the end of
// the given day.
func isLeapSecondDate(year, month, day int) bool {
	key := year*10000 + month*100 + day
	for _, d := range leapSecondDates {
		if d == key {
			return true
		}
		if d > key {
			break
		}
	}
	return false
}
