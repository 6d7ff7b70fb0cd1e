// Package omniparser turns PDF files into structured documents: normalized
// markdown text, a chapter outline, extracted tables and images, and
// metadata. Structure is reconstructed statistically from font metrics,
// since PDF exposes only positioned text runs; documents without a usable
// text layer fall back to OCR under a hard wall-clock budget.
//
// Basic usage:
//
//	doc, err := omniparser.ParsePDF("report.pdf", "", nil)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(doc.Content)
//
// With options:
//
//	opts := omniparser.DefaultParseOptions()
//	opts.UseOCR = true
//	opts.ExtractImages = true
//	doc, err := omniparser.ParsePDF("scan.pdf", "out/images", &opts)
package omniparser

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/AutumnsGrove/OmniParser-sub001/engine"
	"github.com/AutumnsGrove/OmniParser-sub001/images"
	"github.com/AutumnsGrove/OmniParser-sub001/layout"
	"github.com/AutumnsGrove/OmniParser-sub001/model"
	"github.com/AutumnsGrove/OmniParser-sub001/tables"
	"github.com/AutumnsGrove/OmniParser-sub001/textclean"
)

const (
	parserName    = "PDFParser"
	parserVersion = "1.0.0"
)

// Parser runs the full PDF pipeline. A Parser is safe to reuse across
// files; each Parse call owns its own document handle.
type Parser struct {
	opts ParseOptions

	// open is the engine opener, replaceable in tests.
	open func(path string) (engine.Document, error)
}

// NewParser builds a Parser. opts may be nil for defaults.
func NewParser(opts *ParseOptions) *Parser {
	o := DefaultParseOptions()
	if opts != nil {
		o = opts.clone()
	}
	return &Parser{opts: o, open: engine.Open}
}

// ParsePDF parses the PDF at path into a Document. outputDir, when
// non-empty, receives extracted images and implies image extraction.
// opts may be nil for defaults.
func ParsePDF(path, outputDir string, opts *ParseOptions) (*model.Document, error) {
	return NewParser(opts).Parse(path, outputDir)
}

// Parse is ParseContext with a background context.
func (p *Parser) Parse(path, outputDir string) (*model.Document, error) {
	return p.ParseContext(context.Background(), path, outputDir)
}

// ParseContext validates and parses one PDF. The document handle is closed
// on every exit path, success or failure, including failures before text
// extraction runs.
func (p *Parser) ParseContext(ctx context.Context, path, outputDir string) (*model.Document, error) {
	start := time.Now()
	log := p.opts.Logger
	if log == nil {
		log = slog.Default()
	}

	if err := Validate(path); err != nil {
		return nil, err
	}

	handle, err := p.open(path)
	if err != nil {
		return nil, &FileReadError{Path: path, Reason: "Failed to open PDF", Err: err}
	}
	defer func() {
		if cerr := handle.Close(); cerr != nil {
			log.Warn("closing document", "path", path, "error", cerr)
		}
	}()

	meta := extractMetadata(handle, path)

	text, blocks, ocrUsed, err := p.extractTextContent(ctx, handle, log)
	if err != nil {
		return nil, err
	}

	markdown, chapters := layout.ProcessHeadings(blocks, text,
		p.opts.MaxHeadingWords, p.opts.MinHeadingSize,
		p.opts.MinChapterLevel, p.opts.MaxChapterLevel)

	if p.opts.ExtractTables {
		if extracted := tables.ExtractTables(handle, log); len(extracted) > 0 {
			markdown += "\n\n## Extracted Tables\n\n" + strings.Join(extracted, "\n\n")
		}
	}

	if p.opts.CleanText {
		markdown = textclean.Clean(markdown)
	}

	var imageRefs []model.ImageReference
	if p.opts.ExtractImages || outputDir != "" || p.opts.ImageOutputDir != "" {
		dir := outputDir
		if p.opts.ImageOutputDir != "" {
			dir = p.opts.ImageOutputDir
		}
		imageRefs, err = images.ExtractImages(handle, dir, p.opts.MaxImages, p.opts.MinImageSize, log)
		if err != nil {
			// Image extraction is best-effort; the parse proceeds.
			log.Warn("image extraction failed", "path", path, "error", err)
			imageRefs = nil
		}
	}

	wordCount := model.CountWords(markdown)
	doc := &model.Document{
		Title:       meta.Title,
		Content:     markdown,
		Chapters:    chapters,
		Images:      imageRefs,
		Metadata:    meta,
		WordCount:   wordCount,
		ReadingTime: model.EstimateReadingTime(wordCount),
		Processing: model.ProcessingInfo{
			ParserUsed:    parserName,
			ParserVersion: parserVersion,
			Duration:      time.Since(start),
			OCRUsed:       ocrUsed,
			Options:       p.opts.summary(),
		},
	}

	log.Info("parsed document",
		"path", path,
		"pages", handle.PageCount(),
		"chapters", len(doc.Chapters),
		"images", len(doc.Images),
		"words", doc.WordCount,
		"ocr", ocrUsed,
		"duration", doc.Processing.Duration)

	return doc, nil
}
