// Package layout infers document structure from font statistics. PDF exposes
// no semantic heading tags, so headings are detected statistically: blocks
// whose font size stands out above the document's mean are ranked into
// heading levels (H1-H6) and spliced into the extracted text as markdown
// heading markers.
package layout

import (
	"math"
	"sort"
	"strings"
)

// HeadingLevel represents the hierarchical level of a heading (H1-H6).
type HeadingLevel int

const (
	HeadingLevelUnknown HeadingLevel = iota
	HeadingLevel1                    // H1 - Main title/chapter
	HeadingLevel2                    // H2 - Major section
	HeadingLevel3                    // H3 - Subsection
	HeadingLevel4                    // H4 - Sub-subsection
	HeadingLevel5                    // H5 - Minor heading
	HeadingLevel6                    // H6 - Lowest level heading
)

// DefaultMaxHeadingWords is the word-count ceiling for heading candidates.
// Blocks longer than this are body text no matter how large their font.
const DefaultMaxHeadingWords = 25

// Block is one font-consistent text block from formatted extraction.
type Block struct {
	// Text is the block's text content.
	Text string

	// FontSize is the block's font size in points.
	FontSize float64

	// FontName is the PDF font name.
	FontName string

	// Bold indicates bold weight, from the font flags or the font name.
	Bold bool

	// PageNum is the 1-based page the block appears on.
	PageNum int

	// Position is the block's starting offset in the accumulated
	// extracted text, page-break markers included.
	Position int
}

// Heading is a detected heading candidate with its assigned level and the
// position of its text in the extracted output.
type Heading struct {
	Text     string
	Level    HeadingLevel
	Position int
}

// DetectHeadings finds heading candidates among blocks using font-size
// statistics. The threshold is mean + population standard deviation of all
// block font sizes; minSize, when positive, raises that floor. A block
// qualifies when its font size meets the threshold and its word count is at
// most maxWords (DefaultMaxHeadingWords when maxWords is 0).
//
// When every block shares one font size the deviation is zero and the
// threshold collapses to the mean, so all short blocks qualify. Real
// documents have font variance; uniform-font input is degenerate and the
// collapse is accepted rather than special-cased.
func DetectHeadings(blocks []Block, maxWords int, minSize float64) []Heading {
	if len(blocks) == 0 {
		return nil
	}
	if maxWords <= 0 {
		maxWords = DefaultMaxHeadingWords
	}

	threshold := headingThreshold(blocks)
	if minSize > 0 && threshold < minSize {
		threshold = minSize
	}

	var candidates []Block
	for _, b := range blocks {
		text := strings.TrimSpace(b.Text)
		if text == "" {
			continue
		}
		if b.FontSize < threshold {
			continue
		}
		if len(strings.Fields(text)) > maxWords {
			continue
		}
		c := b
		c.Text = text
		candidates = append(candidates, c)
	}
	if len(candidates) == 0 {
		return nil
	}

	sizes := uniqueSizesDescending(candidates)
	headings := make([]Heading, len(candidates))
	for i, c := range candidates {
		headings[i] = Heading{
			Text:     c.Text,
			Level:    MapFontSizeToLevel(c.FontSize, sizes),
			Position: c.Position,
		}
	}
	return headings
}

// headingThreshold returns mean + population standard deviation of the
// block font sizes.
func headingThreshold(blocks []Block) float64 {
	var sum float64
	for _, b := range blocks {
		sum += b.FontSize
	}
	mean := sum / float64(len(blocks))

	var variance float64
	for _, b := range blocks {
		d := b.FontSize - mean
		variance += d * d
	}
	variance /= float64(len(blocks))

	return mean + math.Sqrt(variance)
}

// uniqueSizesDescending returns the distinct candidate font sizes, largest
// first.
func uniqueSizesDescending(blocks []Block) []float64 {
	seen := make(map[float64]bool)
	var sizes []float64
	for _, b := range blocks {
		if !seen[b.FontSize] {
			seen[b.FontSize] = true
			sizes = append(sizes, b.FontSize)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))
	return sizes
}

// MapFontSizeToLevel maps a font size to a heading level by its 1-based rank
// among the unique candidate sizes, sorted descending. Rank is capped at
// HeadingLevel6. A size absent from the list maps to HeadingLevel3.
func MapFontSizeToLevel(size float64, sizesDescending []float64) HeadingLevel {
	for i, s := range sizesDescending {
		if s == size {
			if i >= int(HeadingLevel6) {
				return HeadingLevel6
			}
			return HeadingLevel(i + 1)
		}
	}
	return HeadingLevel3
}
