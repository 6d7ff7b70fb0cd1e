package engine

import (
	"sort"
	"strings"
)

// Row grouping and block assembly for font-level text runs. PDF text arrives
// as individual positioned runs, often one word or one glyph at a time; the
// pipeline wants visual blocks that keep their font identity so heading
// detection can reason about sizes.

// textRun is a single positioned run as delivered by the PDF text layer.
type textRun struct {
	s    string
	font string
	size float64
	x, y float64
	w    float64
}

const (
	// rowTolerance is the Y distance within which runs belong to one line.
	rowTolerance = 3.0

	// wordGapRatio is the fraction of font size treated as a word break.
	wordGapRatio = 0.3

	// sizeSplitTolerance is the font-size difference that splits a block.
	sizeSplitTolerance = 0.5
)

// groupRows clusters runs into visual lines by baseline Y, ordered top to
// bottom (PDF Y grows upward, so higher Y first), runs within a row left to
// right.
func groupRows(runs []textRun) [][]textRun {
	if len(runs) == 0 {
		return nil
	}

	type bucket struct {
		yMin, yMax float64
		runs       []textRun
	}

	var buckets []bucket
	for _, r := range runs {
		placed := false
		for i := range buckets {
			if r.y >= buckets[i].yMin-rowTolerance && r.y <= buckets[i].yMax+rowTolerance {
				buckets[i].runs = append(buckets[i].runs, r)
				if r.y < buckets[i].yMin {
					buckets[i].yMin = r.y
				}
				if r.y > buckets[i].yMax {
					buckets[i].yMax = r.y
				}
				placed = true
				break
			}
		}
		if !placed {
			buckets = append(buckets, bucket{yMin: r.y, yMax: r.y, runs: []textRun{r}})
		}
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].yMax > buckets[j].yMax
	})

	rows := make([][]textRun, len(buckets))
	for i, b := range buckets {
		sort.SliceStable(b.runs, func(a, c int) bool {
			return b.runs[a].x < b.runs[c].x
		})
		rows[i] = b.runs
	}
	return rows
}

// buildBlocks merges row runs into font-consistent text blocks. A block ends
// when the font name or size changes; within a block, a space is inserted
// when the horizontal gap between runs exceeds the word-break threshold.
func buildBlocks(rows [][]textRun) []TextBlock {
	var blocks []TextBlock

	for _, row := range rows {
		var cur *TextBlock
		var lastEnd float64

		for _, r := range row {
			s := strings.TrimSpace(r.s)
			if s == "" {
				continue
			}

			fontChanged := cur != nil &&
				(cur.FontName != r.font || abs(cur.FontSize-r.size) > sizeSplitTolerance)

			if cur == nil || fontChanged {
				if cur != nil {
					blocks = append(blocks, *cur)
				}
				cur = &TextBlock{
					Text:     s,
					FontSize: r.size,
					FontName: r.font,
					Bold:     isBoldFont(r.font),
				}
				lastEnd = r.x + r.w
				continue
			}

			gap := r.x - lastEnd
			threshold := wordGapRatio * r.size
			if threshold == 0 {
				threshold = 2.0
			}
			if gap > threshold {
				cur.Text += " "
			}
			cur.Text += s
			lastEnd = r.x + r.w
		}

		if cur != nil {
			blocks = append(blocks, *cur)
		}
	}

	return blocks
}

// isBoldFont reports whether a font name indicates a bold weight.
func isBoldFont(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "bold") ||
		strings.Contains(lower, "black") ||
		strings.Contains(lower, "heavy") ||
		strings.Contains(lower, "semibold") ||
		strings.Contains(lower, "demibold")
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
