package engine

import (
	"testing"
)

// gridRow builds one visual line of cell runs at the given Y, with cells
// starting at the given X positions.
func gridRow(y float64, cells map[float64]string) []textRun {
	var runs []textRun
	for x, s := range cells {
		runs = append(runs, run(s, "Helvetica", 10, x, y))
	}
	return runs
}

func TestDetectTablesFindsAlignedGrid(t *testing.T) {
	var runs []textRun
	runs = append(runs, gridRow(700, map[float64]string{10: "Name", 100: "Role", 200: "City"})...)
	runs = append(runs, gridRow(680, map[float64]string{10: "Ada", 100: "Engineer", 200: "London"})...)
	runs = append(runs, gridRow(660, map[float64]string{10: "Grace", 100: "Admiral", 200: "Arlington"})...)

	grids := detectTables(runs)
	if len(grids) != 1 {
		t.Fatalf("expected 1 table, got %d", len(grids))
	}

	grid := grids[0]
	if len(grid) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(grid))
	}
	if len(grid[0]) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(grid[0]))
	}
	if grid[0][0] != "Name" || grid[1][1] != "Engineer" || grid[2][2] != "Arlington" {
		t.Errorf("unexpected grid contents: %v", grid)
	}
}

func TestDetectTablesIgnoresProse(t *testing.T) {
	runs := []textRun{
		run("This is an ordinary paragraph line.", "Helvetica", 10, 10, 700),
		run("And another ordinary line below it.", "Helvetica", 10, 10, 680),
	}

	if grids := detectTables(runs); len(grids) != 0 {
		t.Errorf("expected no tables in prose, got %d", len(grids))
	}
}

func TestDetectTablesIgnoresSingleRow(t *testing.T) {
	var runs []textRun
	runs = append(runs, gridRow(700, map[float64]string{10: "a", 100: "b"})...)
	runs = append(runs, run("plain prose follows the lone aligned line", "Helvetica", 10, 10, 680))

	if grids := detectTables(runs); len(grids) != 0 {
		t.Errorf("expected no tables from a single aligned row, got %d", len(grids))
	}
}

func TestSplitCells(t *testing.T) {
	row := []textRun{
		run("left", "Helvetica", 10, 10, 700),
		run("cell", "Helvetica", 10, 35, 700),
		run("right", "Helvetica", 10, 120, 700),
	}

	cells := splitCells(row)
	if len(cells) != 2 {
		t.Fatalf("expected 2 cells, got %d", len(cells))
	}
	if cells[0].text != "left cell" {
		t.Errorf("expected first cell %q, got %q", "left cell", cells[0].text)
	}
	if cells[1].text != "right" {
		t.Errorf("expected second cell %q, got %q", "right", cells[1].text)
	}
}
