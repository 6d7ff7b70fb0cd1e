package omniparser

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/AutumnsGrove/OmniParser-sub001/engine"
)

// fakeDoc is a scriptable engine.Document for pipeline tests.
type fakeDoc struct {
	pages      []fakePageData
	info       engine.Info
	closeCalls int
	pageErr    error
}

// fakePageData holds one page's canned outputs.
type fakePageData struct {
	blocks    []engine.TextBlock
	blocksErr error
	grids     [][][]string
	tablesOK  bool
	raws      []engine.RawImage
}

func (d *fakeDoc) PageCount() int    { return len(d.pages) }
func (d *fakeDoc) Info() engine.Info { return d.info }
func (d *fakeDoc) Close() error {
	d.closeCalls++
	return nil
}

func (d *fakeDoc) Page(i int) (engine.Page, error) {
	if d.pageErr != nil {
		return nil, d.pageErr
	}
	if i < 0 || i >= len(d.pages) {
		return nil, errors.New("page out of range")
	}
	return &fakePage{data: d.pages[i]}, nil
}

type fakePage struct {
	data fakePageData
}

func (p *fakePage) TextBlocks() ([]engine.TextBlock, error) {
	return p.data.blocks, p.data.blocksErr
}

func (p *fakePage) FindTables() ([][][]string, bool) {
	return p.data.grids, p.data.tablesOK
}

func (p *fakePage) Images() ([]engine.RawImage, error) {
	return p.data.raws, nil
}

func (p *fakePage) Render(float64) (image.Image, error) {
	return image.NewRGBA(image.Rect(0, 0, 8, 8)), nil
}

// textBlock builds an engine.TextBlock for fixtures.
func textBlock(text string, size float64) engine.TextBlock {
	return engine.TextBlock{Text: text, FontSize: size, FontName: "Helvetica"}
}

// pngFixture encodes a blank PNG of the given dimensions.
func pngFixture(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	return buf.Bytes()
}
