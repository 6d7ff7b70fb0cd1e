package model

import "fmt"

// ImageReference points at a raster image extracted from the document and
// persisted to disk.
type ImageReference struct {
	// ID is a document-global, zero-padded sequential identifier
	// ("img_0001", ...). IDs are never reset per page.
	ID string

	// Position orders images within the document:
	// page number * 1000 + index of the image on that page.
	Position int

	// FilePath is the on-disk location of the saved image.
	FilePath string

	// Format is the decoded image format ("png", "jpeg", ...).
	Format string

	// Width and Height are the decoded pixel dimensions.
	Width  int
	Height int

	// AltText is a short description usable as markdown alt text.
	AltText string
}

// ImageID formats a document-global image counter as a zero-padded ID.
func ImageID(counter int) string {
	return fmt.Sprintf("img_%04d", counter)
}
