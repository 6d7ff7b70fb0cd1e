package layout

import (
	"strings"
)

// ConvertHeadingsToMarkdown splices markdown heading markers into text.
// Headings are processed in order; each heading's text is located at or
// after its recorded position and the line holding it gains a level-many
// '#' prefix. A converted span is excluded from later searches, so a
// heading phrase that is a prefix of a later, longer heading is never
// double-converted. With no headings the text is returned unchanged.
func ConvertHeadingsToMarkdown(text string, headings []Heading) string {
	if len(headings) == 0 || text == "" {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + len(headings)*4)

	// cursor is how much of text has been copied out; searchFrom is the
	// start of the remaining search range.
	cursor := 0
	searchFrom := 0

	for _, h := range headings {
		if h.Text == "" {
			continue
		}

		start := searchFrom
		if h.Position > start {
			start = h.Position
		}
		if start >= len(text) {
			break
		}

		idx := strings.Index(text[start:], h.Text)
		if idx < 0 {
			continue
		}
		idx += start

		lineStart := strings.LastIndexByte(text[:idx], '\n') + 1
		if lineStart < cursor {
			lineStart = cursor
		}

		b.WriteString(text[cursor:lineStart])
		b.WriteString(headingPrefix(h.Level))
		cursor = lineStart
		searchFrom = idx + len(h.Text)
	}

	b.WriteString(text[cursor:])
	return b.String()
}

// headingPrefix returns the markdown marker for a level, clamped to H1-H6.
func headingPrefix(level HeadingLevel) string {
	if level < HeadingLevel1 {
		level = HeadingLevel1
	}
	if level > HeadingLevel6 {
		level = HeadingLevel6
	}
	return strings.Repeat("#", int(level)) + " "
}
