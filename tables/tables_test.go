package tables

import (
	"image"
	"strings"
	"testing"

	"github.com/AutumnsGrove/OmniParser-sub001/engine"
)

// fakeDoc serves canned table grids per page for tests.
type fakeDoc struct {
	grids  [][][][]string // per page
	finder bool
}

func (d *fakeDoc) PageCount() int             { return len(d.grids) }
func (d *fakeDoc) Info() engine.Info          { return engine.Info{} }
func (d *fakeDoc) Close() error               { return nil }
func (d *fakeDoc) Page(i int) (engine.Page, error) {
	return &fakePage{doc: d, index: i}, nil
}

type fakePage struct {
	doc   *fakeDoc
	index int
}

func (p *fakePage) TextBlocks() ([]engine.TextBlock, error) { return nil, nil }
func (p *fakePage) Images() ([]engine.RawImage, error)      { return nil, nil }
func (p *fakePage) Render(float64) (image.Image, error)     { return nil, nil }
func (p *fakePage) FindTables() ([][][]string, bool) {
	return p.doc.grids[p.index], p.doc.finder
}

func TestExtractTables(t *testing.T) {
	doc := &fakeDoc{
		finder: true,
		grids: [][][][]string{
			{ // page 1: a 3x2 table
				{
					{"Name", "Role"},
					{"Ada", "Engineer"},
					{"Grace", "Admiral"},
				},
			},
			{}, // page 2: nothing
		},
	}

	got := ExtractTables(doc, nil)
	if len(got) != 1 {
		t.Fatalf("expected 1 table, got %d", len(got))
	}
	if !strings.Contains(got[0], "**Table from page 1**") {
		t.Errorf("missing page label: %q", got[0])
	}
	if !strings.Contains(got[0], "| --- | --- |") {
		t.Errorf("missing separator row: %q", got[0])
	}
	if !strings.Contains(got[0], "| Ada | Engineer |") {
		t.Errorf("missing data row: %q", got[0])
	}
}

func TestExtractTablesDiscardsSingleRow(t *testing.T) {
	doc := &fakeDoc{
		finder: true,
		grids: [][][][]string{
			{
				{{"just", "one", "row"}},
			},
		},
	}

	if got := ExtractTables(doc, nil); len(got) != 0 {
		t.Errorf("expected single-row table discarded, got %v", got)
	}
}

func TestExtractTablesNoFinder(t *testing.T) {
	doc := &fakeDoc{
		finder: false,
		grids:  [][][][]string{{}},
	}

	if got := ExtractTables(doc, nil); got != nil {
		t.Errorf("expected nil without a table finder, got %v", got)
	}
}

func TestGridToMarkdown(t *testing.T) {
	grid := [][]string{
		{"a", "b"},
		{"1", "2"},
	}

	got := GridToMarkdown(grid)
	want := "| a | b |\n| --- | --- |\n| 1 | 2 |\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGridToMarkdownPadsRaggedRows(t *testing.T) {
	grid := [][]string{
		{"h1", "h2", "h3"},
		{"only one"},
	}

	got := GridToMarkdown(grid)
	if !strings.Contains(got, "| only one |  |  |") {
		t.Errorf("expected padded data row, got %q", got)
	}
}

func TestGridToMarkdownEscapesPipes(t *testing.T) {
	grid := [][]string{
		{"a|b", "c"},
		{"d", "e"},
	}

	got := GridToMarkdown(grid)
	if !strings.Contains(got, `a\|b`) {
		t.Errorf("expected escaped pipe, got %q", got)
	}
}
