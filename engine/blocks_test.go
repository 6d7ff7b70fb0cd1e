package engine

import (
	"testing"
)

// run builds a textRun for test fixtures.
func run(s, font string, size, x, y float64) textRun {
	return textRun{s: s, font: font, size: size, x: x, y: y, w: size * 0.5 * float64(len(s))}
}

func TestGroupRows(t *testing.T) {
	runs := []textRun{
		run("world", "Helvetica", 12, 40, 700),
		run("Hello", "Helvetica", 12, 10, 701),
		run("second", "Helvetica", 12, 10, 680),
	}

	rows := groupRows(runs)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if len(rows[0]) != 2 {
		t.Fatalf("expected first row to hold 2 runs, got %d", len(rows[0]))
	}
	if rows[0][0].s != "Hello" || rows[0][1].s != "world" {
		t.Errorf("first row not sorted by x: %q, %q", rows[0][0].s, rows[0][1].s)
	}
	if rows[1][0].s != "second" {
		t.Errorf("expected lower row last, got %q", rows[1][0].s)
	}
}

func TestGroupRowsEmpty(t *testing.T) {
	if rows := groupRows(nil); rows != nil {
		t.Errorf("expected nil rows for no runs, got %v", rows)
	}
}

func TestBuildBlocksMergesWords(t *testing.T) {
	runs := []textRun{
		run("Hello", "Helvetica", 12, 10, 700),
		run("world", "Helvetica", 12, 45, 700),
	}

	blocks := buildBlocks(groupRows(runs))
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Text != "Hello world" {
		t.Errorf("expected merged text %q, got %q", "Hello world", blocks[0].Text)
	}
	if blocks[0].FontSize != 12 {
		t.Errorf("expected font size 12, got %g", blocks[0].FontSize)
	}
}

func TestBuildBlocksSplitsOnFontSize(t *testing.T) {
	runs := []textRun{
		run("Title", "Helvetica-Bold", 18, 10, 700),
		run("body", "Helvetica", 10, 60, 700),
	}

	blocks := buildBlocks(groupRows(runs))
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Text != "Title" || blocks[1].Text != "body" {
		t.Errorf("unexpected block texts: %q, %q", blocks[0].Text, blocks[1].Text)
	}
	if !blocks[0].Bold {
		t.Error("expected bold-font block to be flagged bold")
	}
	if blocks[1].Bold {
		t.Error("expected plain-font block not to be flagged bold")
	}
}

func TestIsBoldFont(t *testing.T) {
	tests := []struct {
		font string
		want bool
	}{
		{"Helvetica-Bold", true},
		{"Arial-Black", true},
		{"NotoSans-SemiBold", true},
		{"Roboto-Heavy", true},
		{"Times-Roman", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isBoldFont(tt.font); got != tt.want {
			t.Errorf("isBoldFont(%q) = %v, want %v", tt.font, got, tt.want)
		}
	}
}
