package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

const ansiReset = "\x1b[0m"

// dropCells removes the first n printable cells of s. Escape sequences are
// kept so the remainder renders with the style that was active at the cut.
func dropCells(s string, n int) string {
	if n <= 0 {
		return s
	}
	var b strings.Builder
	dropped := 0
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
			b.WriteRune(r)
		case inEscape:
			b.WriteRune(r)
			// CSI sequences end with a byte in @..~, except the '[' opener
			if r != '[' && r >= 0x40 && r <= 0x7e {
				inEscape = false
			}
		case dropped < n:
			dropped += runewidth.RuneWidth(r)
			// a wide rune cut in half leaves its right cell blank
			if dropped > n {
				b.WriteString(strings.Repeat(" ", dropped-n))
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// overlayAt draws glyph over line at cell x. Lines shorter than x are padded.
func overlayAt(line string, x int, glyph string) string {
	if x < 0 {
		return line
	}
	left := truncate.String(line, uint(x))
	if w := lipgloss.Width(left); w < x {
		left += strings.Repeat(" ", x-w)
	}
	right := dropCells(line, x+lipgloss.Width(glyph))
	return left + ansiReset + glyph + right
}
