package model

import (
	"strings"
	"time"
)

// WordsPerMinute is the reading speed used to estimate reading time.
const WordsPerMinute = 200

// Document is the result of parsing a single PDF file.
type Document struct {
	// Title is the document title (metadata title, or the source
	// filename stem when the PDF carries none).
	Title string

	// Content is the full extracted text in markdown form, with heading
	// markers spliced in and the optional tables section appended.
	Content string

	// Chapters are the detected chapter spans. At least one chapter
	// exists for non-empty content.
	Chapters []Chapter

	// Images are references to extracted raster images, in extraction order.
	Images []ImageReference

	// Metadata is the normalized document metadata.
	Metadata Metadata

	// WordCount is the number of whitespace-separated words in Content.
	WordCount int

	// ReadingTime is the estimated reading time at WordsPerMinute.
	ReadingTime time.Duration

	// Processing records how this document was produced.
	Processing ProcessingInfo
}

// Metadata contains normalized document-level information.
type Metadata struct {
	Title        string
	Author       string
	Subject      string
	Tags         []string
	CreationDate time.Time
	HasCreated   bool // true when CreationDate was present and parseable
	Custom       map[string]string
}

// ProcessingInfo records provenance for a parse run.
type ProcessingInfo struct {
	ParserUsed    string
	ParserVersion string
	Duration      time.Duration
	OCRUsed       bool
	Options       map[string]string
}

// CountWords returns the number of whitespace-separated words in s.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

// EstimateReadingTime returns the reading time for wordCount words at
// WordsPerMinute, rounded up to the next minute, minimum one minute for
// non-empty content.
func EstimateReadingTime(wordCount int) time.Duration {
	if wordCount <= 0 {
		return 0
	}
	minutes := (wordCount + WordsPerMinute - 1) / WordsPerMinute
	return time.Duration(minutes) * time.Minute
}
