// Package images extracts raster images from a document and persists them
// to disk with deterministic, document-global IDs. Images are decoded only
// to validate and measure them; undecodable or undersized payloads are
// skipped without consuming an ID.
package images

import (
	"bytes"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/AutumnsGrove/OmniParser-sub001/engine"
	"github.com/AutumnsGrove/OmniParser-sub001/model"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const (
	// DefaultMinSize is the minimum width and height (pixels) an image
	// must have to be kept.
	DefaultMinSize = 100

	// DefaultMaxImages caps how many images one document may yield.
	DefaultMaxImages = 50
)

// ExtractImages walks doc's pages in order and writes every valid raster
// image to outputDir (a fresh temp directory when outputDir is empty).
// Images smaller than minSize in either dimension are dropped without
// consuming an ID; retained images get sequential IDs shared across the
// whole document. Extraction stops as soon as maxImages have been kept,
// even mid-page. A failure to decode or save one image skips that image
// only.
func ExtractImages(doc engine.Document, outputDir string, maxImages, minSize int, log *slog.Logger) ([]model.ImageReference, error) {
	if log == nil {
		log = slog.Default()
	}
	if maxImages <= 0 {
		maxImages = DefaultMaxImages
	}
	if minSize <= 0 {
		minSize = DefaultMinSize
	}

	if outputDir == "" {
		dir, err := os.MkdirTemp("", "pdf-images-")
		if err != nil {
			return nil, fmt.Errorf("creating image output directory: %w", err)
		}
		outputDir = dir
	} else if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating image output directory: %w", err)
	}

	var refs []model.ImageReference
	counter := 1

	for i := 0; i < doc.PageCount() && len(refs) < maxImages; i++ {
		page, err := doc.Page(i)
		if err != nil {
			log.Warn("skipping page for image extraction", "page", i+1, "error", err)
			continue
		}

		raws, err := page.Images()
		if err != nil {
			log.Warn("image listing failed", "page", i+1, "error", err)
			continue
		}

		pageNum := i + 1
		for idx, raw := range raws {
			if len(refs) >= maxImages {
				break
			}

			cfg, format, err := image.DecodeConfig(bytes.NewReader(raw.Data))
			if err != nil {
				log.Debug("skipping undecodable image", "page", pageNum, "name", raw.Name, "error", err)
				continue
			}
			if cfg.Width < minSize || cfg.Height < minSize {
				log.Debug("skipping small image", "page", pageNum, "name", raw.Name,
					"width", cfg.Width, "height", cfg.Height)
				continue
			}

			id := model.ImageID(counter)
			counter++

			path := filepath.Join(outputDir, id+"."+extension(format))
			if err := os.WriteFile(path, raw.Data, 0o644); err != nil {
				log.Warn("saving image failed", "page", pageNum, "id", id, "error", err)
				continue
			}

			refs = append(refs, model.ImageReference{
				ID:       id,
				Position: pageNum*1000 + idx,
				FilePath: path,
				Format:   format,
				Width:    cfg.Width,
				Height:   cfg.Height,
				AltText:  fmt.Sprintf("Image from page %d", pageNum),
			})
		}
	}

	return refs, nil
}

// extension maps a decoder format name to a file extension.
func extension(format string) string {
	if format == "jpeg" {
		return "jpg"
	}
	return format
}
