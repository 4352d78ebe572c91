// Package datefmt compiles a date format template into text matchers and
// parses matched substrings back into calendar dates.
package datefmt

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DefaultFormat is the format template used when no setting is stored.
const DefaultFormat = "ddd MMM DD YYYY HH:mm"

// Token kinds recognized in a format template.
type tokenKind int

const (
	tokLiteral tokenKind = iota
	tokWeekday           // ddd: Mon..Sun, matched but never validated
	tokMonth             // MMM: Jan..Dec
	tokDay               // DD: 1-2 digit day of month
	tokYear              // YYYY: exactly 4 digits
	tokHour              // HH: 1-2 digit hour
	tokMinute            // mm: 2 digit minute
)

type token struct {
	kind tokenKind
	lit  string // set for tokLiteral
}

// Pattern holds the compiled matchers for one format template.
//
// Plain finds unbracketed date occurrences anywhere in text. Bracketed finds
// occurrences wrapped in literal [[ ]], with the inner date literal as
// submatch 1. The anchored matcher backs Parse.
type Pattern struct {
	Format    string
	Plain     *regexp.Regexp
	Bracketed *regexp.Regexp
	exact     *regexp.Regexp
	hasClock  bool
}

var weekdayNames = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

var monthsByAbbr = map[string]time.Month{
	"Jan": time.January, "Feb": time.February, "Mar": time.March,
	"Apr": time.April, "May": time.May, "Jun": time.June,
	"Jul": time.July, "Aug": time.August, "Sep": time.September,
	"Oct": time.October, "Nov": time.November, "Dec": time.December,
}

// Compile parses a format template into a Pattern.
//
// Recognized tokens: ddd (weekday name), MMM (month name), DD (day), YYYY
// (year), HH (hour), mm (minute). Anything else is a literal separator.
// MMM, DD and YYYY are required; ddd and the time tokens are optional and
// may appear in any order the template chooses. Time tokens must be
// contiguous (separators aside) and form a single optional group in the
// compiled matcher, so text without a time still matches.
func Compile(format string) (*Pattern, error) {
	if strings.TrimSpace(format) == "" {
		return nil, fmt.Errorf("empty date format")
	}

	tokens := lex(format)
	if err := validate(tokens); err != nil {
		return nil, fmt.Errorf("date format %q: %w", format, err)
	}

	core, hasClock := assemble(tokens)

	plain, err := regexp.Compile(core)
	if err != nil {
		return nil, fmt.Errorf("compile matcher: %w", err)
	}
	bracketed, err := regexp.Compile(`\[\[(` + core + `)\]\]`)
	if err != nil {
		return nil, fmt.Errorf("compile bracketed matcher: %w", err)
	}
	exact, err := regexp.Compile(`^(?:` + core + `)$`)
	if err != nil {
		return nil, fmt.Errorf("compile exact matcher: %w", err)
	}

	return &Pattern{
		Format:    format,
		Plain:     plain,
		Bracketed: bracketed,
		exact:     exact,
		hasClock:  hasClock,
	}, nil
}

// lex splits the format template into tokens. Longer token names are tried
// first so DD never shadows ddd and mm never splits MMM.
func lex(format string) []token {
	var tokens []token
	lit := &strings.Builder{}

	flush := func() {
		if lit.Len() > 0 {
			tokens = append(tokens, token{kind: tokLiteral, lit: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(format); {
		switch {
		case strings.HasPrefix(format[i:], "YYYY"):
			flush()
			tokens = append(tokens, token{kind: tokYear})
			i += 4
		case strings.HasPrefix(format[i:], "MMM"):
			flush()
			tokens = append(tokens, token{kind: tokMonth})
			i += 3
		case strings.HasPrefix(format[i:], "ddd"):
			flush()
			tokens = append(tokens, token{kind: tokWeekday})
			i += 3
		case strings.HasPrefix(format[i:], "DD"):
			flush()
			tokens = append(tokens, token{kind: tokDay})
			i += 2
		case strings.HasPrefix(format[i:], "HH"):
			flush()
			tokens = append(tokens, token{kind: tokHour})
			i += 2
		case strings.HasPrefix(format[i:], "mm"):
			flush()
			tokens = append(tokens, token{kind: tokMinute})
			i += 2
		default:
			lit.WriteByte(format[i])
			i++
		}
	}
	flush()
	return tokens
}

func validate(tokens []token) error {
	counts := map[tokenKind]int{}
	for _, t := range tokens {
		if t.kind != tokLiteral {
			counts[t.kind]++
		}
	}
	for _, req := range []struct {
		kind tokenKind
		name string
	}{{tokMonth, "MMM"}, {tokDay, "DD"}, {tokYear, "YYYY"}} {
		if counts[req.kind] == 0 {
			return fmt.Errorf("missing required token %s", req.name)
		}
	}
	for kind, n := range counts {
		if n > 1 {
			return fmt.Errorf("token %s repeated", tokenName(kind))
		}
	}

	// Time tokens must sit next to each other so they can be made optional
	// as a unit.
	first, last := -1, -1
	for i, t := range tokens {
		if t.kind == tokHour || t.kind == tokMinute {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	for i := first; first >= 0 && i <= last; i++ {
		k := tokens[i].kind
		if k != tokHour && k != tokMinute && k != tokLiteral {
			return fmt.Errorf("time tokens must be contiguous")
		}
	}
	return nil
}

func tokenName(k tokenKind) string {
	switch k {
	case tokWeekday:
		return "ddd"
	case tokMonth:
		return "MMM"
	case tokDay:
		return "DD"
	case tokYear:
		return "YYYY"
	case tokHour:
		return "HH"
	case tokMinute:
		return "mm"
	}
	return "literal"
}

// assemble builds the core regexp source. The run of time tokens, together
// with the separator joining it to the date part, becomes one optional
// group. Digit tokens end on a word boundary so a 5-digit year or a 3-digit
// minute never half-matches.
func assemble(tokens []token) (string, bool) {
	first, last := -1, -1
	for i, t := range tokens {
		if t.kind == tokHour || t.kind == tokMinute {
			if first < 0 {
				first = i
			}
			last = i
		}
	}

	// Pull the adjacent separator into the optional group: the one before
	// the time run when the time trails, the one after when it leads.
	if first > 0 && tokens[first-1].kind == tokLiteral {
		first--
	} else if first == 0 && last+1 < len(tokens) && tokens[last+1].kind == tokLiteral {
		last++
	}

	var b strings.Builder
	for i, t := range tokens {
		if i == first {
			b.WriteString(`(?:`)
		}
		b.WriteString(fragment(t))
		if i == last {
			b.WriteString(`)?`)
		}
	}
	return b.String(), first >= 0
}

func fragment(t token) string {
	switch t.kind {
	case tokLiteral:
		return regexp.QuoteMeta(t.lit)
	case tokWeekday:
		return `(?:` + strings.Join(weekdayNames, "|") + `)`
	case tokMonth:
		return `(?P<month>Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)`
	case tokDay:
		return `(?P<day>\d{1,2})\b`
	case tokYear:
		return `(?P<year>\d{4})\b`
	case tokHour:
		return `(?P<hour>\d{1,2})`
	case tokMinute:
		return `(?P<min>\d{2})\b`
	}
	return ""
}

// HasClockTokens reports whether the template carries hour/minute tokens at
// all. A template without them can only ever produce midnight dates.
func (p *Pattern) HasClockTokens() bool {
	return p.hasClock
}
