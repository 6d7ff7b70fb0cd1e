package model

import "fmt"

// MetaAutoGenerated marks a synthetic chapter created because no qualifying
// headings were found.
const MetaAutoGenerated = "auto_generated"

// Chapter is a contiguous span of document text bounded by headings (or by
// document start/end). Invariant: EndPosition > StartPosition.
type Chapter struct {
	// ID identifies the chapter within its document ("chapter_1", ...).
	ID string

	// Title is the heading text, or "Full Document" for a synthetic chapter.
	Title string

	// Content is the chapter text, including its heading line.
	Content string

	// StartPosition and EndPosition are byte offsets into the document
	// content. EndPosition is exclusive.
	StartPosition int
	EndPosition   int

	// WordCount is the number of words in Content.
	WordCount int

	// Level is the markdown heading level (1-6), or 1 for synthetic chapters.
	Level int

	// Metadata holds extra attributes such as MetaAutoGenerated.
	Metadata map[string]string
}

// NewChapter builds a Chapter with a sequential ID and computed word count.
func NewChapter(index int, title, content string, start, end, level int) Chapter {
	return Chapter{
		ID:            fmt.Sprintf("chapter_%d", index),
		Title:         title,
		Content:       content,
		StartPosition: start,
		EndPosition:   end,
		WordCount:     CountWords(content),
		Level:         level,
		Metadata:      map[string]string{},
	}
}

// IsAutoGenerated reports whether this is a synthetic fallback chapter.
func (c *Chapter) IsAutoGenerated() bool {
	return c.Metadata[MetaAutoGenerated] == "true"
}
