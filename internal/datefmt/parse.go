package datefmt

import (
	"strconv"
	"time"
)

// Date is a calendar point reconstructed from a matched substring.
// Hour and Minute stay zero when the source text carried no time, so a
// literal midnight and "no time given" are indistinguishable downstream.
type Date struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
}

// HasClock reports whether the date carries a non-midnight time component.
func (d Date) HasClock() bool {
	return d.Hour != 0 || d.Minute != 0
}

// In builds the wall-clock instant in the given location. Out-of-range
// days roll over the way time.Date normalizes them, so "Feb 30" lands in
// early March instead of failing.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, d.Hour, d.Minute, 0, 0, loc)
}

// Time is In with the local zone; all parsing in this package is wall-clock.
func (d Date) Time() time.Time {
	return d.In(time.Local)
}

// Parse reconstructs the calendar date from a substring previously accepted
// by this pattern's matcher. It returns nil when the substring does not
// conform to the grammar or names a month outside the twelve-name set.
// The weekday name, when present, is matched but not checked against the
// computed date.
func (p *Pattern) Parse(literal string) *Date {
	m := p.exact.FindStringSubmatch(literal)
	if m == nil {
		return nil
	}

	var d Date
	for i, name := range p.exact.SubexpNames() {
		if i == 0 || name == "" || m[i] == "" {
			continue
		}
		switch name {
		case "month":
			mon, ok := monthsByAbbr[m[i]]
			if !ok {
				return nil
			}
			d.Month = mon
		case "day":
			d.Day, _ = strconv.Atoi(m[i])
		case "year":
			d.Year, _ = strconv.Atoi(m[i])
		case "hour":
			d.Hour, _ = strconv.Atoi(m[i])
		case "min":
			d.Minute, _ = strconv.Atoi(m[i])
		}
	}
	if d.Month == 0 {
		return nil
	}
	return &d
}
