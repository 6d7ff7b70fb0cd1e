//go:build ocr

// Package ocr recognizes text in rendered page images. It wraps the
// Tesseract engine via gosseract and requires Tesseract to be installed
// on the system. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
//
// This file builds only with the "ocr" build tag; without it, a stub that
// returns ErrOCRNotEnabled is compiled instead.
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Client wraps a Tesseract session. It is not safe for concurrent use and
// must be closed to release engine resources.
type Client struct {
	client *gosseract.Client
}

// New creates an OCR client bound to a fresh Tesseract session.
func New() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

// SetLanguage selects the recognition language. Multiple languages join
// with "+" (e.g. "eng+deu"). The default is "eng".
func (c *Client) SetLanguage(lang string) error {
	if lang == "" {
		return nil
	}
	return c.client.SetLanguage(lang)
}

// RecognizeImage runs recognition over encoded image bytes (PNG, JPEG,
// TIFF) and returns the recognized text, whitespace-trimmed.
func (c *Client) RecognizeImage(img []byte) (string, error) {
	if err := c.client.SetImageFromBytes(img); err != nil {
		return "", fmt.Errorf("setting image: %w", err)
	}
	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("recognizing text: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// Close releases the Tesseract session.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}
