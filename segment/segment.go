// Package segment splits markdown text into chapters. It is the shared
// segmentation pass used by every format parser: chapters are bounded by
// ATX heading lines whose level falls within a caller-chosen range, and
// text with no qualifying headings becomes a single synthetic chapter.
package segment

import (
	"strings"

	"github.com/AutumnsGrove/OmniParser-sub001/model"
)

// DefaultMinLevel and DefaultMaxLevel bound which heading levels open a new
// chapter when the caller passes zero values.
const (
	DefaultMinLevel = 1
	DefaultMaxLevel = 2
)

// FullDocumentTitle names the synthetic chapter emitted when no heading in
// the requested range exists.
const FullDocumentTitle = "Full Document"

// headingMark is one qualifying heading line found during the scan.
type headingMark struct {
	title  string
	level  int
	offset int
}

// Segment splits markdown into chapters at ATX headings whose level lies in
// [minLevel, maxLevel]. Each chapter spans from its heading line to the next
// qualifying heading (or end of text). When no heading qualifies, one
// synthetic chapter titled FullDocumentTitle covers the whole text, tagged
// with model.MetaAutoGenerated. Empty input yields no chapters.
func Segment(markdown string, minLevel, maxLevel int) []model.Chapter {
	if strings.TrimSpace(markdown) == "" {
		return nil
	}
	if minLevel <= 0 {
		minLevel = DefaultMinLevel
	}
	if maxLevel <= 0 {
		maxLevel = DefaultMaxLevel
	}

	marks := findHeadings(markdown, minLevel, maxLevel)
	if len(marks) == 0 {
		ch := model.NewChapter(1, FullDocumentTitle, markdown, 0, len(markdown), 1)
		ch.Metadata[model.MetaAutoGenerated] = "true"
		return []model.Chapter{ch}
	}

	chapters := make([]model.Chapter, 0, len(marks))
	for i, m := range marks {
		end := len(markdown)
		if i+1 < len(marks) {
			end = marks[i+1].offset
		}
		content := markdown[m.offset:end]
		chapters = append(chapters, model.NewChapter(i+1, m.title, content, m.offset, end, m.level))
	}
	return chapters
}

// findHeadings scans markdown line by line for ATX headings in the level
// range, recording each heading's title, level and byte offset.
func findHeadings(markdown string, minLevel, maxLevel int) []headingMark {
	var marks []headingMark

	offset := 0
	for _, line := range strings.SplitAfter(markdown, "\n") {
		if level, title, ok := parseHeadingLine(line); ok && level >= minLevel && level <= maxLevel {
			marks = append(marks, headingMark{title: title, level: level, offset: offset})
		}
		offset += len(line)
	}
	return marks
}

// parseHeadingLine parses an ATX heading line ("## Title"). The marker must
// be 1-6 '#' characters followed by a space and a non-empty title.
func parseHeadingLine(line string) (level int, title string, ok bool) {
	trimmed := strings.TrimRight(line, "\n")
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	if level < 1 || level > 6 {
		return 0, "", false
	}
	if level >= len(trimmed) || trimmed[level] != ' ' {
		return 0, "", false
	}
	title = strings.TrimSpace(trimmed[level+1:])
	if title == "" {
		return 0, "", false
	}
	return level, title, true
}
