package engine

import (
	"sort"
	"strings"
)

// Geometric table detection over positioned text runs. A table announces
// itself as cell texts whose left edges align vertically across consecutive
// rows, separated by gaps wider than normal word spacing.

const (
	// cellGapThreshold is the horizontal gap (points) between runs that
	// marks a cell boundary rather than a word break.
	cellGapThreshold = 18.0

	// columnBucket is the X bucketing (points) for aligning cell starts
	// across rows.
	columnBucket = 10.0

	// minTableRows and minTableCols bound the smallest grid worth emitting.
	minTableRows = 2
	minTableCols = 2
)

// rowCell is one cell candidate: merged run text with its starting X.
type rowCell struct {
	x    float64
	text string
}

// detectTables finds aligned-cell grids among the page's runs and returns
// them as rows of cell strings.
func detectTables(runs []textRun) [][][]string {
	rows := groupRows(runs)
	if len(rows) < minTableRows {
		return nil
	}

	// Split every visual line into cell candidates.
	cellRows := make([][]rowCell, len(rows))
	for i, row := range rows {
		cellRows[i] = splitCells(row)
	}

	// A stretch of consecutive lines with 2+ cells each is a table band.
	var grids [][][]string
	start := -1
	for i := 0; i <= len(cellRows); i++ {
		multi := i < len(cellRows) && len(cellRows[i]) >= minTableCols
		if multi && start < 0 {
			start = i
		}
		if !multi && start >= 0 {
			if grid := buildGrid(cellRows[start:i]); grid != nil {
				grids = append(grids, grid)
			}
			start = -1
		}
	}

	return grids
}

// splitCells merges a line's runs into cells, breaking on wide gaps.
func splitCells(row []textRun) []rowCell {
	var cells []rowCell
	var cur *rowCell
	var lastEnd float64

	for _, r := range row {
		s := strings.TrimSpace(r.s)
		if s == "" {
			continue
		}

		if cur == nil || r.x-lastEnd > cellGapThreshold {
			if cur != nil {
				cells = append(cells, *cur)
			}
			cur = &rowCell{x: r.x, text: s}
		} else {
			gap := r.x - lastEnd
			if gap > wordGapRatio*r.size {
				cur.text += " "
			}
			cur.text += s
		}
		lastEnd = r.x + r.w
	}
	if cur != nil {
		cells = append(cells, *cur)
	}
	return cells
}

// buildGrid aligns a band of cell rows into a rectangular grid using bucketed
// cell-start positions as column anchors. Returns nil when the band does not
// form a coherent table.
func buildGrid(band [][]rowCell) [][]string {
	if len(band) < minTableRows {
		return nil
	}

	// Count how many rows start a cell in each X bucket.
	bucketCounts := make(map[int]int)
	for _, row := range band {
		seen := make(map[int]bool)
		for _, c := range row {
			b := int(c.x / columnBucket)
			if !seen[b] {
				seen[b] = true
				bucketCounts[b]++
			}
		}
	}

	// Columns are buckets shared by at least half the band.
	minShared := len(band) / 2
	if minShared < minTableRows {
		minShared = minTableRows
	}
	var colBuckets []int
	for b, n := range bucketCounts {
		if n >= minShared {
			colBuckets = append(colBuckets, b)
		}
	}
	if len(colBuckets) < minTableCols {
		return nil
	}
	sort.Ints(colBuckets)

	grid := make([][]string, len(band))
	for i, row := range band {
		grid[i] = make([]string, len(colBuckets))
		for _, c := range row {
			col := nearestColumn(colBuckets, int(c.x/columnBucket))
			if grid[i][col] != "" {
				grid[i][col] += " "
			}
			grid[i][col] += c.text
		}
	}
	return grid
}

// nearestColumn returns the index of the column bucket closest to b.
func nearestColumn(colBuckets []int, b int) int {
	best := 0
	bestDist := -1
	for i, cb := range colBuckets {
		d := cb - b
		if d < 0 {
			d = -d
		}
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}
