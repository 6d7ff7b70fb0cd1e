package ocr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"strings"
	"time"

	"github.com/AutumnsGrove/OmniParser-sub001/engine"
)

// Recognizer is the recognition surface ExtractText needs. *Client
// satisfies it; tests substitute their own.
type Recognizer interface {
	SetLanguage(lang string) error
	RecognizeImage(img []byte) (string, error)
	Close() error
}

// ErrTimeout reports that the page-recognition loop ran out of its
// wall-clock budget.
var ErrTimeout = errors.New("ocr extraction exceeded timeout")

// renderZoom is the rasterization scale for recognition. 2x (144 DPI)
// trades recognition accuracy against render time.
const renderZoom = 2.0

// ExtractText renders each page of doc and recognizes its text, returning
// the concatenated result. The whole loop runs under timeout as a hard
// wall-clock budget: when it expires, even mid-recognition of a single
// page, ExtractText returns ErrTimeout and discards any pages already
// recognized. maxPages, when positive, caps how many pages are processed.
// An in-flight recognition is abandoned on timeout, so rec must not be
// reused afterwards.
func ExtractText(ctx context.Context, doc engine.Document, rec Recognizer, language string, timeout time.Duration, maxPages int, includePageBreaks bool) (string, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if err := rec.SetLanguage(language); err != nil {
		return "", fmt.Errorf("setting ocr language %q: %w", language, err)
	}

	pageCount := doc.PageCount()
	if maxPages > 0 && maxPages < pageCount {
		pageCount = maxPages
	}

	var b strings.Builder
	for i := 0; i < pageCount; i++ {
		if ctx.Err() != nil {
			return "", fmt.Errorf("%w after %d of %d pages", ErrTimeout, i, pageCount)
		}

		page, err := doc.Page(i)
		if err != nil {
			return "", fmt.Errorf("loading page %d for ocr: %w", i+1, err)
		}

		text, err := recognizePage(ctx, page, rec)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				return "", fmt.Errorf("%w after %d of %d pages", ErrTimeout, i, pageCount)
			}
			return "", fmt.Errorf("recognizing page %d: %w", i+1, err)
		}

		if i > 0 {
			if includePageBreaks {
				b.WriteString(fmt.Sprintf("\n\n--- Page %d ---\n\n", i+1))
			} else {
				b.WriteString("\n\n")
			}
		}
		b.WriteString(text)
	}

	return b.String(), nil
}

// recognizePage renders one page and runs recognition in a goroutine so the
// context deadline can cut off a CPU-bound recognition mid-flight. On
// timeout the goroutine is abandoned with the recognizer still in its
// hands.
func recognizePage(ctx context.Context, page engine.Page, rec Recognizer) (string, error) {
	img, err := page.Render(renderZoom)
	if err != nil {
		return "", fmt.Errorf("rendering: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encoding render: %w", err)
	}

	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		text, err := rec.RecognizeImage(buf.Bytes())
		done <- result{text: text, err: err}
	}()

	select {
	case r := <-done:
		return r.text, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
