// Package engine defines the narrow contract the parsing pipeline consumes
// from the underlying PDF layout machinery, and an adapter that fulfils it
// with real PDF libraries.
//
// The pipeline never touches PDF byte structure directly: it sees pages as
// font-attributed text blocks, raster image descriptors, table grids, and a
// raw metadata dictionary. Open returns the production adapter; tests supply
// their own Document and Page implementations.
package engine

import "image"

// Document is an open PDF handle. It must be closed exactly once when the
// caller is done with it, on success and on failure alike.
type Document interface {
	// PageCount returns the number of pages in the document.
	PageCount() int

	// Page returns the page at index i (0-based).
	Page(i int) (Page, error)

	// Info returns the raw document information dictionary. Fields are
	// empty strings when the PDF does not carry them.
	Info() Info

	// Close releases the underlying resources. Safe to call once.
	Close() error
}

// Page exposes the content of a single PDF page.
type Page interface {
	// TextBlocks returns the page's text grouped into visual blocks with
	// font attribution, in reading order. An empty slice means the page
	// has no extractable text layer.
	TextBlocks() ([]TextBlock, error)

	// FindTables returns detected table grids as rows of cell strings.
	// ok is false when the engine has no table-finding capability, in
	// which case callers must degrade to an empty result.
	FindTables() (grids [][][]string, ok bool)

	// Images returns the raster images placed on this page, with their
	// raw encoded bytes.
	Images() ([]RawImage, error)

	// Render rasterizes the page at the given zoom factor (1.0 = 72 DPI)
	// for OCR. Returns an error when no rendering backend is available.
	Render(zoom float64) (image.Image, error)
}

// TextBlock is a run of text sharing one font, as supplied by the engine.
// Positions within the accumulated document text are assigned downstream.
type TextBlock struct {
	Text     string
	FontSize float64
	FontName string
	Bold     bool
}

// RawImage is an encoded raster image extracted from a page.
type RawImage struct {
	// Name is the engine-native identifier (XObject name or object number).
	Name string

	// Data holds the encoded image bytes (PNG, JPEG, TIFF, ...).
	Data []byte
}

// Info is the raw, unnormalized document information dictionary.
type Info struct {
	Title        string
	Author       string
	Subject      string
	Keywords     string
	Creator      string
	Producer     string
	CreationDate string // PDF date string, e.g. "D:20240101120000Z"
	Version      string // header version, e.g. "1.7"
}
