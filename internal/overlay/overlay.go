// Package overlay locates date occurrences in a text buffer and turns them
// into replacement directives for a host presentation layer.
package overlay

import (
	"sort"
	"strings"
	"time"

	"github.com/datelens/datelens/internal/datefmt"
	"github.com/datelens/datelens/internal/relative"
)

// Occurrence is a located, grammar-conforming date substring. Offsets are
// byte offsets into the scanned text; End is exclusive. Text is the full
// matched span, brackets included; Literal is the inner date string.
type Occurrence struct {
	Start     int
	End       int
	Text      string
	Literal   string
	Bracketed bool
}

// Replacement tells the host to hide the [From,To) span and display the
// phrase instead, keeping the original text for a hover affordance.
type Replacement struct {
	From      int    `json:"from" yaml:"from"`
	To        int    `json:"to" yaml:"to"`
	Display   string `json:"display" yaml:"display"`
	Original  string `json:"original" yaml:"original"`
	Bracketed bool   `json:"bracketed" yaml:"bracketed"`
}

// Scan finds all date occurrences in text, ordered by start offset.
// Bracketed occurrences are collected first and shadow any plain occurrence
// whose span intersects theirs, so the result never overlaps.
func Scan(p *datefmt.Pattern, text string) []Occurrence {
	if text == "" {
		return nil
	}

	var occs []Occurrence
	var shadow [][2]int

	for _, m := range p.Bracketed.FindAllStringSubmatchIndex(text, -1) {
		occs = append(occs, Occurrence{
			Start:     m[0],
			End:       m[1],
			Text:      text[m[0]:m[1]],
			Literal:   text[m[2]:m[3]],
			Bracketed: true,
		})
		shadow = append(shadow, [2]int{m[0], m[1]})
	}

	for _, m := range p.Plain.FindAllStringIndex(text, -1) {
		if intersectsAny(shadow, m[0], m[1]) {
			continue
		}
		occs = append(occs, Occurrence{
			Start:   m[0],
			End:     m[1],
			Text:    text[m[0]:m[1]],
			Literal: text[m[0]:m[1]],
		})
	}

	sort.Slice(occs, func(i, j int) bool { return occs[i].Start < occs[j].Start })
	return occs
}

func intersectsAny(spans [][2]int, start, end int) bool {
	for _, s := range spans {
		if start < s[1] && s[0] < end {
			return true
		}
	}
	return false
}

// Reconcile converts occurrences into replacement directives against a
// single reference time. An occurrence containing the cursor (inclusive of
// both ends, cursor < 0 meaning no cursor) is suppressed so the original
// text shows while editing it. Occurrences whose literal fails to parse or
// format are skipped silently; the worst outcome is untransformed text.
func Reconcile(p *datefmt.Pattern, occs []Occurrence, cursor int, now time.Time) []Replacement {
	var out []Replacement
	for _, o := range occs {
		if cursor >= 0 && cursor >= o.Start && cursor <= o.End {
			continue
		}
		phrase := relative.Phrase(p.Parse(o.Literal), now)
		if phrase == "" {
			continue
		}
		out = append(out, Replacement{
			From:      o.Start,
			To:        o.End,
			Display:   phrase,
			Original:  o.Text,
			Bracketed: o.Bracketed,
		})
	}
	return out
}

// At returns the occurrence whose span contains the cursor, if any.
func At(occs []Occurrence, cursor int) (Occurrence, bool) {
	for _, o := range occs {
		if cursor >= o.Start && cursor <= o.End {
			return o, true
		}
	}
	return Occurrence{}, false
}

// Apply rewrites text with every replacement span substituted by its display
// phrase. Replacements must be ordered and non-overlapping, which is what
// Reconcile produces.
func Apply(text string, reps []Replacement) string {
	return ApplyStyled(text, reps, func(r Replacement) string { return r.Display })
}

// ApplyStyled is Apply with a caller-chosen rendering of each replacement,
// so a terminal host can wrap phrases in styling escapes.
func ApplyStyled(text string, reps []Replacement, render func(Replacement) string) string {
	var b strings.Builder
	last := 0
	for _, r := range reps {
		if r.From < last || r.To > len(text) {
			continue
		}
		b.WriteString(text[last:r.From])
		b.WriteString(render(r))
		last = r.To
	}
	b.WriteString(text[last:])
	return b.String()
}
