package omniparser

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/AutumnsGrove/OmniParser-sub001/engine"
	"github.com/AutumnsGrove/OmniParser-sub001/layout"
	"github.com/AutumnsGrove/OmniParser-sub001/ocr"
)

// scannedSamplePages is how many leading pages the scanned-document
// detector inspects.
const scannedSamplePages = 3

// IsScannedDocument samples the first pages of doc and reports whether
// their combined text layer, with all whitespace stripped, falls below
// threshold characters (DefaultOCRThreshold when threshold is 0). A
// zero-page document counts as scanned.
func IsScannedDocument(doc engine.Document, threshold int) bool {
	if threshold <= 0 {
		threshold = DefaultOCRThreshold
	}

	pageCount := doc.PageCount()
	if pageCount == 0 {
		return true
	}
	sample := pageCount
	if sample > scannedSamplePages {
		sample = scannedSamplePages
	}

	var length int
	for i := 0; i < sample; i++ {
		page, err := doc.Page(i)
		if err != nil {
			continue
		}
		blocks, err := page.TextBlocks()
		if err != nil {
			continue
		}
		for _, b := range blocks {
			for _, field := range strings.Fields(b.Text) {
				length += len(field)
			}
		}
		if length >= threshold {
			return false
		}
	}
	return length < threshold
}

// ExtractFormattedText walks doc's text layer page by page and returns the
// accumulated text plus the font-attributed blocks heading detection needs.
// Each block's Position is its starting offset in the returned text,
// page-break markers included. maxPages caps the walk when positive.
func ExtractFormattedText(doc engine.Document, maxPages int, includePageBreaks bool) (string, []layout.Block, error) {
	pageCount := doc.PageCount()
	if maxPages > 0 && maxPages < pageCount {
		pageCount = maxPages
	}

	var b strings.Builder
	var blocks []layout.Block

	for i := 0; i < pageCount; i++ {
		if includePageBreaks && i > 0 {
			b.WriteString(fmt.Sprintf("--- Page %d ---\n\n", i+1))
		}

		page, err := doc.Page(i)
		if err != nil {
			return "", nil, fmt.Errorf("loading page %d: %w", i+1, err)
		}
		pageBlocks, err := page.TextBlocks()
		if err != nil {
			return "", nil, fmt.Errorf("extracting text from page %d: %w", i+1, err)
		}

		for _, tb := range pageBlocks {
			text := strings.TrimSpace(tb.Text)
			if text == "" {
				continue
			}
			blocks = append(blocks, layout.Block{
				Text:     text,
				FontSize: tb.FontSize,
				FontName: tb.FontName,
				Bold:     tb.Bold || strings.Contains(tb.FontName, "Bold"),
				PageNum:  i + 1,
				Position: b.Len(),
			})
			b.WriteString(text)
			b.WriteString("\n\n")
		}
	}

	return strings.TrimRight(b.String(), "\n"), blocks, nil
}

// extractTextContent chooses between formatted and OCR extraction. OCR runs
// only when the document looks scanned AND OCR is enabled; in every other
// case formatted extraction is used, scanned or not. OCR yields no font
// blocks, so heading detection downstream degrades to chapter detection
// only. The returned bool reports whether OCR ran.
func (p *Parser) extractTextContent(ctx context.Context, doc engine.Document, log *slog.Logger) (string, []layout.Block, bool, error) {
	scanned := IsScannedDocument(doc, p.opts.OCRThreshold)
	if scanned && p.opts.UseOCR {
		log.Info("document classified as scanned, using OCR",
			"language", p.opts.OCRLanguage, "timeout", p.opts.OCRTimeout)

		client, err := ocr.New()
		if err != nil {
			return "", nil, false, &ParsingError{Stage: "ocr", Err: err}
		}
		defer client.Close()

		text, err := ocr.ExtractText(ctx, doc, client, p.opts.OCRLanguage,
			p.opts.OCRTimeout, p.opts.MaxPages, p.opts.IncludePageBreaks)
		if err != nil {
			return "", nil, false, &ParsingError{Stage: "ocr", Err: err}
		}
		return text, nil, true, nil
	}

	if scanned {
		log.Warn("document looks scanned but OCR is disabled, text may be sparse")
	}

	text, blocks, err := ExtractFormattedText(doc, p.opts.MaxPages, p.opts.IncludePageBreaks)
	if err != nil {
		return "", nil, false, &ParsingError{Stage: "text extraction", Err: err}
	}
	return text, blocks, false, nil
}
