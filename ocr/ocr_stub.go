//go:build !ocr

// Package ocr recognizes text in rendered page images.
//
// This is the stub compiled when the "ocr" build tag is not set; every
// operation fails with ErrOCRNotEnabled. Rebuild with -tags ocr (Tesseract
// must be installed) to enable recognition.
package ocr

import "errors"

// ErrOCRNotEnabled is returned when OCR support was not compiled in.
// Rebuild with -tags ocr to enable it.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client is the no-op stand-in for the Tesseract client.
type Client struct{}

// New always fails in the stub build.
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// SetLanguage always fails in the stub build.
func (c *Client) SetLanguage(string) error {
	return ErrOCRNotEnabled
}

// RecognizeImage always fails in the stub build.
func (c *Client) RecognizeImage([]byte) (string, error) {
	return "", ErrOCRNotEnabled
}

// Close is a no-op in the stub build.
func (c *Client) Close() error {
	return nil
}
