// Package tables converts layout-engine table grids into GitHub-flavored
// markdown. Extraction is best-effort: an engine without a table finder, or
// a page whose finder fails, contributes nothing rather than failing the
// parse.
package tables

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/AutumnsGrove/OmniParser-sub001/engine"
)

// minRows is the smallest grid worth emitting. A single-row "table" is
// almost always a misdetected text line.
const minRows = 2

// ExtractTables walks every page of doc, collects the layout engine's table
// grids and renders each as a labeled markdown table. Grids with fewer than
// minRows rows are discarded. Returns nil when the engine has no table
// finder.
func ExtractTables(doc engine.Document, log *slog.Logger) []string {
	if log == nil {
		log = slog.Default()
	}

	var out []string
	for i := 0; i < doc.PageCount(); i++ {
		page, err := doc.Page(i)
		if err != nil {
			log.Warn("skipping page for table extraction", "page", i+1, "error", err)
			continue
		}

		grids, ok := page.FindTables()
		if !ok {
			// No table finder in this engine; nothing to extract anywhere.
			log.Debug("table finder unavailable")
			return nil
		}

		for _, grid := range grids {
			md := GridToMarkdown(grid)
			if md == "" {
				continue
			}
			out = append(out, fmt.Sprintf("**Table from page %d**\n\n%s", i+1, md))
		}
	}
	return out
}

// GridToMarkdown renders a 2-D cell grid as a markdown table: first row as
// header, then a separator row, then data rows. Grids with fewer than
// minRows rows render as "". Every row is padded to the header's column
// count.
func GridToMarkdown(grid [][]string) string {
	if len(grid) < minRows {
		return ""
	}

	cols := len(grid[0])
	if cols == 0 {
		return ""
	}

	var b strings.Builder
	writeRow(&b, grid[0], cols)

	b.WriteString("|")
	for c := 0; c < cols; c++ {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")

	for _, row := range grid[1:] {
		writeRow(&b, row, cols)
	}
	return b.String()
}

// writeRow writes one markdown table row, padded or truncated to cols cells.
// Pipes inside cell text are escaped so they cannot break the row.
func writeRow(b *strings.Builder, row []string, cols int) {
	b.WriteString("|")
	for c := 0; c < cols; c++ {
		cell := ""
		if c < len(row) {
			cell = strings.TrimSpace(row[c])
		}
		cell = strings.ReplaceAll(cell, "|", "\\|")
		b.WriteString(" ")
		b.WriteString(cell)
		b.WriteString(" |")
	}
	b.WriteString("\n")
}
