// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrono

import (
	"fmt"
	"strconv"
	"strings"

	"gonih.org/chrono/internal/cache"
)

// The strftime/strptime layer implements the conventional %-directive
// subset
//
//	%Y  four-digit year
//	%m  two-digit month
//	%d  two-digit day of month
//	%H  two-digit hour
//	%M  two-digit minute
//	%S  two-digit second
//	%f  six-digit fraction (microseconds)
//	%%  a literal percent sign
//
// Any other byte of the template is a literal and is copied (when
// formatting) or matched (when parsing) byte-exact. Literals may contain
// multi-byte characters; they are never reinterpreted.

// tinst is a single component of a compiled template, either a literal
// string or a formatting directive.
type tinst struct {
	op  tfOp
	lit string
}

// String implements fmt.Stringer, for error reporting.
func (i tinst) String() string {
	if i.op == tfLiteral {
		return i.lit
	}
	return i.op.String()
}

// tfOp is a formatting directive.
type tfOp int

const (
	tfLiteral tfOp = iota
	tfYear
	tfMonth
	tfDay
	tfHour
	tfMinute
	tfSecond
	tfFrac
)

// String returns the directive in template notation.
func (op tfOp) String() string {
	switch op {
	case tfLiteral:
		return "<literal>"
	case tfYear:
		return "%Y"
	case tfMonth:
		return "%m"
	case tfDay:
		return "%d"
	case tfHour:
		return "%H"
	case tfMinute:
		return "%M"
	case tfSecond:
		return "%S"
	case tfFrac:
		return "%f"
	}
	panic("invalid tfOp")
}

// digits returns the exact field width the directive occupies.
func (op tfOp) digits() int {
	switch op {
	case tfYear:
		return 4
	case tfFrac:
		return 6
	}
	return 2
}

// memoize compiled templates.
var templates cache.Cache[string, []tinst]

// compileTemplate parses a template into a set of instructions to format
// or parse according to it. Unknown %-directives are kept as literals.
func compileTemplate(template string) []tinst {
	var prog []tinst
	lit := []byte{}
	flush := func() {
		if len(lit) > 0 {
			prog = append(prog, tinst{lit: string(lit)})
			lit = lit[:0]
		}
	}
	for i := 0; i < len(template); i++ {
		if template[i] != '%' || i+1 == len(template) {
			lit = append(lit, template[i])
			continue
		}
		i++
		var op tfOp
		switch template[i] {
		case '%':
			lit = append(lit, '%')
			continue
		case 'Y':
			op = tfYear
		case 'm':
			op = tfMonth
		case 'd':
			op = tfDay
		case 'H':
			op = tfHour
		case 'M':
			op = tfMinute
		case 'S':
			op = tfSecond
		case 'f':
			op = tfFrac
		default:
			lit = append(lit, '%', template[i])
			continue
		}
		flush()
		prog = append(prog, tinst{op: op})
	}
	flush()
	return prog
}

// Strftime formats dt according to the template.
func (dt DateTime) Strftime(template string) string {
	prog := templates.Get(template, compileTemplate)

	b := make([]byte, 0, len(template)+16)
	for _, i := range prog {
		switch i.op {
		case tfLiteral:
			b = append(b, i.lit...)
		case tfYear:
			n := len(b)
			b = append(b, "0000"...)
			put4(b[n:], 0, dt.Year())
		case tfMonth:
			n := len(b)
			b = append(b, "00"...)
			put2(b[n:], 0, dt.Month())
		case tfDay:
			n := len(b)
			b = append(b, "00"...)
			put2(b[n:], 0, dt.Day())
		case tfHour:
			n := len(b)
			b = append(b, "00"...)
			put2(b[n:], 0, dt.hour)
		case tfMinute:
			n := len(b)
			b = append(b, "00"...)
			put2(b[n:], 0, dt.minute)
		case tfSecond:
			n := len(b)
			b = append(b, "00"...)
			put2(b[n:], 0, dt.second)
		case tfFrac:
			us := dt.milli*1000 + dt.micro
			for d := 100000; d > 0; d /= 10 {
				b = append(b, byte('0'+us/d%10))
			}
		}
	}
	return string(b)
}

// Strptime parses text against the template under cal. Fields omitted from
// the template are assumed to be zero or, when zero is impossible, one.
// Malformed input yields a zero DateTime and a *ParseError; parsing never
// panics.
func Strptime(text, template string, cal Calendar) (DateTime, error) {
	if cal == nil {
		cal = Gregorian
	}
	prog := templates.Get(template, compileTemplate)
	p := &tparser{value: text}

	var (
		year, month, day = -1, -1, -1
		hour, min, s     int
		frac             int
	)
	for _, i := range prog {
		p.setInst(i)
		switch i.op {
		case tfLiteral:
			p.accept(i.lit)
		case tfYear:
			year = p.fixed(4)
		case tfMonth:
			month = p.fixed(2)
		case tfDay:
			day = p.fixed(2)
		case tfHour:
			hour = p.fixed(2)
		case tfMinute:
			min = p.fixed(2)
		case tfSecond:
			s = p.fixed(2)
		case tfFrac:
			frac = p.fixed(6)
		}
		if p.hasErr {
			return DateTime{}, p.err(template, text, "")
		}
	}
	if len(p.value) > 0 {
		return DateTime{}, p.err(template, text, "extra text: "+strconv.Quote(p.value))
	}
	p.finish()

	if year < 0 {
		year = cal.MinYear()
	}
	if month < 0 {
		month = 1
	}
	if day < 0 {
		day = 1
	}
	if month < 1 || month > 12 {
		return DateTime{}, p.err(template, text, "month out of range")
	}
	if year < cal.MinYear() || year > cal.MaxYear() {
		return DateTime{}, p.err(template, text, "year out of range")
	}
	if day < 1 || day > cal.DaysInMonth(year, month) {
		return DateTime{}, p.err(template, text, "day out of range")
	}
	if hour > 23 || min > 59 || s >= cal.MaxSecond(year, month, day, hour, min) {
		return DateTime{}, p.err(template, text, "time out of range")
	}

	return New(cal, UTC, year, month, day, hour, min, s, frac/1000, frac%1000, 0), nil
}

func isDigit(s string, i int) bool {
	if len(s) <= i {
		return false
	}
	return '0' <= s[i] && s[i] <= '9'
}

// tparser tracks parse position and failure context through a template
// program.
type tparser struct {
	inst   tinst
	hasErr bool
	value  string
	valEl  string
}

// setInst sets the current instruction and input offset for error
// reporting.
func (p *tparser) setInst(i tinst) {
	p.inst = i
	p.valEl = p.value
}

// finish signals that parsing is finished and the parser is only being
// kept around for error reporting.
func (p *tparser) finish() {
	p.inst = tinst{}
	p.valEl = ""
}

// accept a literal string byte-exact.
func (p *tparser) accept(lit string) {
	if !strings.HasPrefix(p.value, lit) {
		p.hasErr = true
		return
	}
	p.value = p.value[len(lit):]
}

// fixed accepts the next n bytes of input as a decimal integer.
func (p *tparser) fixed(n int) int {
	v := 0
	for i := 0; i < n; i++ {
		if !isDigit(p.value, i) {
			p.hasErr = true
			return 0
		}
		v = v*10 + int(p.value[i]-'0')
	}
	p.value = p.value[n:]
	return v
}

func (p *tparser) err(template, value, msg string) error {
	// Clone what goes into the error so the happy path does not force
	// the inputs to escape.
	v := strings.Clone(value)
	if msg == "" {
		return &ParseError{
			Layout:     template,
			Value:      v,
			LayoutElem: strings.Clone(p.inst.String()),
			ValueElem:  strings.Clone(p.valEl),
		}
	}
	return &ParseError{Layout: template, Value: v, Message: msg}
}

// ParseError describes a problem parsing a date/time string.
type ParseError struct {
	Layout     string
	Value      string
	LayoutElem string
	ValueElem  string
	Message    string
}

// Error returns the string representation of a ParseError.
func (e *ParseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("parsing time %q as %q: cannot parse %q as %q", e.Value, e.Layout, e.ValueElem, e.LayoutElem)
	}
	return fmt.Sprintf("parsing time %q: %s", e.Value, e.Message)
}
