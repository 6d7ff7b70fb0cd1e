// Package textclean normalizes text recovered from PDF content streams.
// Extracted text tends to carry stray control characters, inconsistent
// whitespace and decomposed Unicode sequences; Clean produces stable,
// comparison-friendly output.
package textclean

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Clean normalizes whitespace and Unicode form in extracted text.
// Each line is trimmed, runs of spaces and tabs collapse to one space,
// control characters other than newline are dropped, and runs of three or
// more blank lines collapse to one blank line. Output is NFC-normalized.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	text = norm.NFC.String(text)

	var b strings.Builder
	b.Grow(len(text))

	blankRun := 0
	for _, line := range strings.Split(text, "\n") {
		line = cleanLine(line)
		if line == "" {
			blankRun++
			if blankRun > 1 {
				continue
			}
		} else {
			blankRun = 0
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return strings.TrimRight(b.String(), "\n")
}

// cleanLine trims one line and collapses its internal whitespace.
func cleanLine(line string) string {
	var b strings.Builder
	b.Grow(len(line))

	space := false
	for _, r := range line {
		switch {
		case r == ' ' || r == '\t' || unicode.IsSpace(r):
			space = true
		case unicode.IsControl(r):
			// drop
		default:
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
		}
	}
	return b.String()
}
