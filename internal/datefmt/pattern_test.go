package datefmt

import (
	"testing"
)

func TestCompileDefaultFormat(t *testing.T) {
	p, err := Compile(DefaultFormat)
	if err != nil {
		t.Fatalf("Compile(%q) failed: %v", DefaultFormat, err)
	}
	if !p.HasClockTokens() {
		t.Fatalf("expected default format to carry clock tokens")
	}

	tests := []struct {
		name    string
		text    string
		matches []string
	}{
		{
			name:    "date without time",
			text:    "meeting on Fri Aug 29 2025 with the team",
			matches: []string{"Fri Aug 29 2025"},
		},
		{
			name:    "date with time",
			text:    "due Fri Aug 29 2025 14:55 sharp",
			matches: []string{"Fri Aug 29 2025 14:55"},
		},
		{
			name:    "multiple occurrences",
			text:    "Mon Jan 6 2025 then Tue Jan 7 2025",
			matches: []string{"Mon Jan 6 2025", "Tue Jan 7 2025"},
		},
		{
			name:    "single digit day",
			text:    "Wed Feb 5 2025",
			matches: []string{"Wed Feb 5 2025"},
		},
		{
			name: "empty text",
			text: "",
		},
		{
			name: "five digit year does not half-match",
			text: "Fri Aug 29 20255",
		},
		{
			name: "unknown month name",
			text: "Fri Foo 29 2025",
		},
		{
			name: "no dates at all",
			text: "nothing to see here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Plain.FindAllString(tt.text, -1)
			if len(got) != len(tt.matches) {
				t.Fatalf("got %d matches %v, want %d %v", len(got), got, len(tt.matches), tt.matches)
			}
			for i := range got {
				if got[i] != tt.matches[i] {
					t.Errorf("match %d = %q, want %q", i, got[i], tt.matches[i])
				}
			}
		})
	}
}

func TestCompileBracketed(t *testing.T) {
	p, err := Compile(DefaultFormat)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	m := p.Bracketed.FindStringSubmatch("see [[Fri Aug 29 2025]] for details")
	if m == nil {
		t.Fatalf("bracketed matcher found nothing")
	}
	if m[0] != "[[Fri Aug 29 2025]]" {
		t.Errorf("full match = %q", m[0])
	}
	if m[1] != "Fri Aug 29 2025" {
		t.Errorf("inner literal = %q", m[1])
	}

	// A single bracket is not a bracketed occurrence.
	if p.Bracketed.MatchString("[Fri Aug 29 2025]") {
		t.Errorf("single brackets should not match")
	}
	if p.Bracketed.MatchString("[[Fri Aug 29 2025]") {
		t.Errorf("unbalanced brackets should not match")
	}
}

func TestCompileReorderedFormats(t *testing.T) {
	tests := []struct {
		format string
		text   string
		want   string
	}{
		{"DD MMM YYYY", "pay rent 1 Sep 2025 please", "1 Sep 2025"},
		{"MMM DD, YYYY", "born Mar 14, 1992 in town", "Mar 14, 1992"},
		{"YYYY MMM DD", "log 2025 Aug 29 entry", "2025 Aug 29"},
		{"HH:mm ddd MMM DD YYYY", "at 09:30 Fri Aug 29 2025 ok", "09:30 Fri Aug 29 2025"},
		{"HH:mm ddd MMM DD YYYY", "just Fri Aug 29 2025 ok", "Fri Aug 29 2025"},
	}

	for _, tt := range tests {
		p, err := Compile(tt.format)
		if err != nil {
			t.Fatalf("Compile(%q) failed: %v", tt.format, err)
		}
		got := p.Plain.FindString(tt.text)
		if got != tt.want {
			t.Errorf("format %q on %q = %q, want %q", tt.format, tt.text, got, tt.want)
		}
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name   string
		format string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"missing month", "ddd DD YYYY"},
		{"missing day", "ddd MMM YYYY"},
		{"missing year", "ddd MMM DD"},
		{"repeated token", "MMM MMM DD YYYY"},
		{"split time tokens", "HH MMM DD YYYY mm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Compile(tt.format); err == nil {
				t.Fatalf("Compile(%q) should have failed", tt.format)
			}
		})
	}
}
