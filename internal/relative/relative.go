// Package relative turns a parsed calendar date into a short human phrase
// relative to a reference time ("Yesterday", "In 3 days", "5 mins ago").
package relative

import (
	"fmt"
	"math"
	"time"

	"github.com/datelens/datelens/internal/datefmt"
)

// Phrase formats d relative to now. It returns "" only for a nil date; every
// valid date produces a phrase. The reference time is always passed in, never
// read from the wall clock, so output is a pure function of its inputs.
//
// Dates carrying a non-midnight time within 24 hours of now use minute/hour
// precision; everything else buckets by whole calendar days with flat 7/30/365
// divisors for the week, month and year tiers.
func Phrase(d *datefmt.Date, now time.Time) string {
	if d == nil {
		return ""
	}

	t := d.In(now.Location())
	diff := t.Sub(now)
	past := diff < 0

	if d.HasClock() && math.Abs(diff.Hours()) < 24 {
		return clockPhrase(diff, past)
	}
	return dayPhrase(dayDiff(t, now))
}

// clockPhrase handles the minute and hour tiers. Anything within five
// rounded minutes reads as "Now"; hour counts truncate so 2h50m still reads
// as two hours.
func clockPhrase(diff time.Duration, past bool) string {
	mins := int(math.Round(math.Abs(diff.Minutes())))
	if mins <= 5 {
		return "Now"
	}
	if mins < 60 {
		return spell(mins, "min", "mins", past)
	}
	hours := int(math.Abs(diff.Hours()))
	if hours == 0 {
		// Just under an hour rounds to 60 mins yet truncates to zero hours.
		hours = 1
	}
	return spell(hours, "hour", "hours", past)
}

func dayPhrase(days int) string {
	abs := days
	if abs < 0 {
		abs = -abs
	}

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case abs <= 7:
		if days > 0 {
			return fmt.Sprintf("In %d days", days)
		}
		return fmt.Sprintf("%d days ago", abs)
	case abs <= 14:
		if days > 0 {
			return "Next week"
		}
		return "Last week"
	case abs <= 30:
		return spell(ceilDiv(abs, 7), "week", "weeks", days < 0)
	case abs <= 365:
		n := ceilDiv(abs, 30)
		if n == 1 {
			if days > 0 {
				return "Next month"
			}
			return "Last month"
		}
		return spell(n, "month", "months", days < 0)
	default:
		n := ceilDiv(abs, 365)
		if n == 1 {
			if days > 0 {
				return "Next year"
			}
			return "Last year"
		}
		return spell(n, "year", "years", days < 0)
	}
}

// dayDiff is the whole-day distance between the two instants truncated to
// midnight in now's zone, rounded half away from zero. Using midnights keeps
// time-of-day skew from shifting the day count.
func dayDiff(t, now time.Time) int {
	tm := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	nm := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return int(math.Round(tm.Sub(nm).Hours() / 24))
}

func ceilDiv(n, div int) int {
	return (n + div - 1) / div
}

func spell(n int, singular, plural string, past bool) string {
	unit := plural
	if n == 1 {
		unit = singular
	}
	if past {
		return fmt.Sprintf("%d %s ago", n, unit)
	}
	return fmt.Sprintf("In %d %s", n, unit)
}
