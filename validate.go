package omniparser

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/AutumnsGrove/OmniParser-sub001/engine"
)

// Validate checks that path names a parseable PDF file. Checks run in
// order: the path must exist, be a regular file, carry a .pdf extension
// (case-insensitively), be non-empty, and open with a %PDF- header marker.
func Validate(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &FileReadError{Path: path, Reason: "File not found"}
		}
		return &FileReadError{Path: path, Reason: "File not accessible", Err: err}
	}
	if !info.Mode().IsRegular() {
		return &FileReadError{Path: path, Reason: "Not a file"}
	}
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return &ValidationError{Path: path, Reason: "Not a PDF file"}
	}
	if info.Size() == 0 {
		return &ValidationError{Path: path, Reason: "File is empty"}
	}

	header, err := readHeader(path)
	if err != nil {
		return &FileReadError{Path: path, Reason: "File not readable", Err: err}
	}
	if !looksLikePDF(header) {
		return &ValidationError{Path: path, Reason: "Not a PDF file"}
	}
	return nil
}

// readHeader returns the leading bytes of the file, enough to find the PDF
// header marker.
func readHeader(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, 1024)
	n, err := f.Read(buf)
	if n == 0 && err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// looksLikePDF reports whether the header bytes carry a %PDF- marker. The
// marker may sit anywhere in the first kilobyte; some generators prepend
// junk before it.
func looksLikePDF(header []byte) bool {
	return bytes.Contains(header, []byte("%PDF-"))
}

// Load opens the document through the layout engine. Engine failures are
// wrapped as FileReadError. The caller owns the returned handle.
func Load(path string) (engine.Document, error) {
	doc, err := engine.Open(path)
	if err != nil {
		return nil, &FileReadError{Path: path, Reason: "Failed to open PDF", Err: err}
	}
	return doc, nil
}

// ValidateAndLoad composes Validate and Load, validation first.
func ValidateAndLoad(path string) (engine.Document, error) {
	if err := Validate(path); err != nil {
		return nil, err
	}
	return Load(path)
}
