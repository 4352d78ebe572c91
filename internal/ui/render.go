package ui

import (
	"strings"
	"unicode/utf8"

	"github.com/datelens/datelens/internal/overlay"
)

// renderDocument produces the styled buffer: every replacement span shows
// its phrase, raw text flows through untouched, and the rune at the cursor
// offset is highlighted. Replacements must be ordered and non-overlapping.
// A cursor of -1 renders no cursor.
func renderDocument(text string, reps []overlay.Replacement, cursor int) string {
	var b strings.Builder
	last := 0
	for _, r := range reps {
		if r.From < last || r.To > len(text) {
			continue
		}
		writeRaw(&b, text, last, r.From, cursor)
		style := PhraseStyle
		if r.Bracketed {
			style = BracketedPhraseStyle
		}
		b.WriteString(style.Render(r.Display))
		last = r.To
	}
	writeRaw(&b, text, last, len(text), cursor)
	return b.String()
}

// writeRaw copies text[from:to], highlighting the cursor rune when it falls
// inside the segment.
func writeRaw(b *strings.Builder, text string, from, to, cursor int) {
	if cursor < from || cursor >= to {
		b.WriteString(text[from:to])
		// Cursor at end of buffer renders as a trailing cell.
		if cursor == len(text) && to == len(text) {
			b.WriteString(CursorStyle.Render(" "))
		}
		return
	}

	b.WriteString(text[from:cursor])
	r, size := utf8.DecodeRuneInString(text[cursor:])
	if r == '\n' || size == 0 {
		b.WriteString(CursorStyle.Render(" "))
		b.WriteString(text[cursor:to])
		return
	}
	b.WriteString(CursorStyle.Render(text[cursor : cursor+size]))
	b.WriteString(text[cursor+size : to])
}

// lineStarts returns the byte offset of each line start, always beginning
// with 0.
func lineStarts(text string) []int {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// lineAt returns the index of the line containing the offset.
func lineAt(starts []int, offset int) int {
	line := 0
	for i, s := range starts {
		if s > offset {
			break
		}
		line = i
	}
	return line
}

// moveVertical shifts the offset one line up or down, clamping the column
// to the target line's length.
func moveVertical(text string, offset, delta int) int {
	starts := lineStarts(text)
	line := lineAt(starts, offset)
	col := offset - starts[line]

	target := line + delta
	if target < 0 || target >= len(starts) {
		return offset
	}

	start := starts[target]
	end := len(text)
	if target+1 < len(starts) {
		end = starts[target+1] - 1 // exclude the newline
	}
	if start+col > end {
		return end
	}
	return start + col
}

// moveHorizontal shifts the offset one rune left or right within the buffer.
func moveHorizontal(text string, offset, delta int) int {
	if delta > 0 {
		if offset >= len(text) {
			return offset
		}
		_, size := utf8.DecodeRuneInString(text[offset:])
		return offset + size
	}
	if offset <= 0 {
		return 0
	}
	_, size := utf8.DecodeLastRuneInString(text[:offset])
	return offset - size
}
