package layout

import (
	"testing"
)

func TestConvertHeadingsToMarkdown(t *testing.T) {
	text := "Chapter One\nbody text\nSection A\nmore body\n"
	headings := []Heading{
		{Text: "Chapter One", Level: HeadingLevel1, Position: 0},
		{Text: "Section A", Level: HeadingLevel2, Position: 22},
	}

	got := ConvertHeadingsToMarkdown(text, headings)
	want := "# Chapter One\nbody text\n## Section A\nmore body\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestConvertHeadingsToMarkdownNoHeadings(t *testing.T) {
	text := "plain text, nothing to do"
	if got := ConvertHeadingsToMarkdown(text, nil); got != text {
		t.Errorf("expected unchanged text, got %q", got)
	}
}

func TestConvertHeadingsToMarkdownSubstringProtection(t *testing.T) {
	// "Intro" is a prefix of the later "Introduction to Go"; converting the
	// first must not touch the second, and each heading converts exactly once.
	text := "Intro\nbody\nIntroduction to Go\nmore\n"
	headings := []Heading{
		{Text: "Intro", Level: HeadingLevel1, Position: 0},
		{Text: "Introduction to Go", Level: HeadingLevel2, Position: 11},
	}

	got := ConvertHeadingsToMarkdown(text, headings)
	want := "# Intro\nbody\n## Introduction to Go\nmore\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestConvertHeadingsToMarkdownStalePosition(t *testing.T) {
	// A heading whose text cannot be found at or after its position is
	// skipped rather than corrupting the output.
	text := "only body text here\n"
	headings := []Heading{
		{Text: "Missing Heading", Level: HeadingLevel1, Position: 0},
	}

	if got := ConvertHeadingsToMarkdown(text, headings); got != text {
		t.Errorf("expected unchanged text, got %q", got)
	}
}

func TestProcessHeadings(t *testing.T) {
	blocks := []Block{
		{Text: "Title", FontSize: 24, PageNum: 1, Position: 0},
		{Text: "some body text under the title", FontSize: 10, PageNum: 1, Position: 6},
		{Text: "more body text to anchor the mean", FontSize: 10, PageNum: 1, Position: 40},
	}
	content := "Title\nsome body text under the title\nmore body text to anchor the mean\n"

	markdown, chapters := ProcessHeadings(blocks, content, 0, 0, 1, 2)
	if want := "# Title\n"; len(markdown) < len(want) || markdown[:len(want)] != want {
		t.Errorf("expected markdown to start with %q, got %q", want, markdown)
	}
	if len(chapters) != 1 {
		t.Fatalf("expected 1 chapter, got %d", len(chapters))
	}
	if chapters[0].Title != "Title" {
		t.Errorf("expected chapter title %q, got %q", "Title", chapters[0].Title)
	}
	if chapters[0].IsAutoGenerated() {
		t.Error("chapter with a real heading should not be auto-generated")
	}
}
