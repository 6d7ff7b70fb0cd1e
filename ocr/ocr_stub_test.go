//go:build !ocr

package ocr

import (
	"errors"
	"testing"
)

func TestStubReportsNotEnabled(t *testing.T) {
	if _, err := New(); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("New() error = %v, want ErrOCRNotEnabled", err)
	}

	var c Client
	if err := c.SetLanguage("eng"); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("SetLanguage error = %v, want ErrOCRNotEnabled", err)
	}
	if _, err := c.RecognizeImage(nil); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("RecognizeImage error = %v, want ErrOCRNotEnabled", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close error = %v", err)
	}
}
