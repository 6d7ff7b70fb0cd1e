package omniparser

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/AutumnsGrove/OmniParser-sub001/images"
	"github.com/AutumnsGrove/OmniParser-sub001/layout"
)

// Defaults for ParseOptions zero values.
const (
	// DefaultOCRThreshold is the character count below which the sampled
	// pages classify a document as scanned.
	DefaultOCRThreshold = 100

	// DefaultOCRTimeout bounds the whole OCR page loop.
	DefaultOCRTimeout = 300 * time.Second

	// DefaultOCRLanguage is the Tesseract language code.
	DefaultOCRLanguage = "eng"
)

// ParseOptions configures a parse. The zero value is not useful; start from
// DefaultParseOptions and override fields.
type ParseOptions struct {
	// ExtractImages enables image extraction even without an output
	// directory (a temp directory is created).
	ExtractImages bool

	// ImageOutputDir receives extracted images. Overrides the outputDir
	// argument of Parse when set.
	ImageOutputDir string

	// MaxImages caps extracted images per document.
	MaxImages int

	// MinImageSize drops images narrower or shorter than this (pixels).
	MinImageSize int

	// UseOCR enables OCR for scanned documents. Without it a scanned
	// document still goes through formatted extraction.
	UseOCR bool

	// OCRLanguage is the Tesseract language code ("eng", "eng+deu").
	OCRLanguage string

	// OCRTimeout is the hard wall-clock budget for the whole OCR run.
	OCRTimeout time.Duration

	// OCRThreshold is the scanned-document character threshold.
	OCRThreshold int

	// MaxPages caps how many pages are processed; 0 means all.
	MaxPages int

	// MinHeadingSize, when positive, is a floor under the statistical
	// heading-size threshold.
	MinHeadingSize float64

	// MaxHeadingWords is the word-count ceiling for heading candidates.
	MaxHeadingWords int

	// ExtractTables enables table extraction.
	ExtractTables bool

	// CleanText enables the whitespace/Unicode normalization pass.
	CleanText bool

	// MinChapterLevel and MaxChapterLevel bound which heading levels
	// open a new chapter.
	MinChapterLevel int
	MaxChapterLevel int

	// IncludePageBreaks inserts "--- Page N ---" markers between pages.
	IncludePageBreaks bool

	// Logger receives progress and skip diagnostics. Defaults to
	// slog.Default.
	Logger *slog.Logger
}

// DefaultParseOptions returns the standard configuration.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		ExtractImages:     false,
		MaxImages:         images.DefaultMaxImages,
		MinImageSize:      images.DefaultMinSize,
		UseOCR:            false,
		OCRLanguage:       DefaultOCRLanguage,
		OCRTimeout:        DefaultOCRTimeout,
		OCRThreshold:      DefaultOCRThreshold,
		MaxHeadingWords:   layout.DefaultMaxHeadingWords,
		ExtractTables:     true,
		CleanText:         true,
		MinChapterLevel:   1,
		MaxChapterLevel:   2,
		IncludePageBreaks: false,
	}
}

// clone creates a copy of ParseOptions.
func (o ParseOptions) clone() ParseOptions {
	return o
}

// summary renders the options for ProcessingInfo.
func (o ParseOptions) summary() map[string]string {
	return map[string]string{
		"extract_images":    strconv.FormatBool(o.ExtractImages),
		"use_ocr":           strconv.FormatBool(o.UseOCR),
		"ocr_language":      o.OCRLanguage,
		"ocr_timeout":       o.OCRTimeout.String(),
		"max_pages":         strconv.Itoa(o.MaxPages),
		"extract_tables":    strconv.FormatBool(o.ExtractTables),
		"clean_text":        strconv.FormatBool(o.CleanText),
		"min_chapter_level": strconv.Itoa(o.MinChapterLevel),
		"max_chapter_level": strconv.Itoa(o.MaxChapterLevel),
	}
}
