package engine

import (
	"fmt"
	"image"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// adapterDoc implements Document over a composition of real PDF libraries:
// ledongthuc/pdf supplies the font-attributed text layer, pdfcpu supplies
// validation, the info dictionary and raster image streams, and go-fitz
// (opened lazily, only when a page is rendered for OCR) supplies
// rasterization.
type adapterDoc struct {
	path string
	file *os.File
	text *pdf.Reader
	ctx  *pdfmodel.Context

	// tablesOK is the table-finder capability, probed once at open.
	tablesOK bool

	fitzOnce sync.Once
	fitzDoc  *fitz.Document
	fitzErr  error

	closeOnce sync.Once
	closeErr  error
}

// Open opens the PDF at path and returns the production engine adapter.
// The returned Document must be closed by the caller.
func Open(path string) (Document, error) {
	f, textReader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading text layer: %w", err)
	}

	// pdfcpu reads the whole file into its context, so this handle is
	// closed again before Open returns.
	cf, err := os.Open(path)
	if err != nil {
		f.Close()
		return nil, err
	}
	ctx, err := api.ReadValidateAndOptimize(cf, pdfmodel.NewDefaultConfiguration())
	cf.Close()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("validating document: %w", err)
	}

	return &adapterDoc{
		path:     path,
		file:     f,
		text:     textReader,
		ctx:      ctx,
		tablesOK: textReader != nil,
	}, nil
}

func (d *adapterDoc) PageCount() int {
	return d.ctx.PageCount
}

func (d *adapterDoc) Page(i int) (Page, error) {
	if i < 0 || i >= d.ctx.PageCount {
		return nil, fmt.Errorf("page %d out of range (0-%d)", i, d.ctx.PageCount-1)
	}
	return &adapterPage{doc: d, index: i}, nil
}

func (d *adapterDoc) Info() Info {
	info := Info{
		Title:        d.ctx.Title,
		Author:       d.ctx.Author,
		Subject:      d.ctx.Subject,
		Keywords:     d.ctx.Keywords,
		Creator:      d.ctx.Creator,
		Producer:     d.ctx.Producer,
		CreationDate: d.ctx.XRefTable.CreationDate,
	}
	if d.ctx.HeaderVersion != nil {
		info.Version = d.ctx.HeaderVersion.String()
	}
	return info
}

func (d *adapterDoc) Close() error {
	d.closeOnce.Do(func() {
		if d.fitzDoc != nil {
			d.fitzDoc.Close()
		}
		if d.file != nil {
			d.closeErr = d.file.Close()
		}
	})
	return d.closeErr
}

// renderer opens the MuPDF backend on first use.
func (d *adapterDoc) renderer() (*fitz.Document, error) {
	d.fitzOnce.Do(func() {
		d.fitzDoc, d.fitzErr = fitz.New(d.path)
	})
	return d.fitzDoc, d.fitzErr
}

// adapterPage implements Page for one page of an adapterDoc.
type adapterPage struct {
	doc   *adapterDoc
	index int
}

// pageRuns pulls the raw positioned runs for this page. The text layer
// library can panic on malformed content streams, so the panic is converted
// into an error here.
func (p *adapterPage) pageRuns() (runs []textRun, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("text layer failed on page %d: %v", p.index+1, r)
		}
	}()

	if p.doc.text == nil || p.index+1 > p.doc.text.NumPage() {
		return nil, nil
	}

	pg := p.doc.text.Page(p.index + 1)
	if pg.V.IsNull() {
		return nil, nil
	}

	content := pg.Content()
	runs = make([]textRun, 0, len(content.Text))
	for _, t := range content.Text {
		runs = append(runs, textRun{
			s:    t.S,
			font: t.Font,
			size: t.FontSize,
			x:    t.X,
			y:    t.Y,
			w:    t.W,
		})
	}
	return runs, nil
}

func (p *adapterPage) TextBlocks() ([]TextBlock, error) {
	runs, err := p.pageRuns()
	if err != nil {
		return nil, err
	}
	return buildBlocks(groupRows(runs)), nil
}

func (p *adapterPage) FindTables() ([][][]string, bool) {
	if !p.doc.tablesOK {
		return nil, false
	}
	runs, err := p.pageRuns()
	if err != nil {
		// Capability exists; this page just yields nothing.
		return nil, true
	}
	return detectTables(runs), true
}

func (p *adapterPage) Images() ([]RawImage, error) {
	extracted, err := pdfcpu.ExtractPageImages(p.doc.ctx, p.index+1, false)
	if err != nil {
		return nil, fmt.Errorf("extracting images from page %d: %w", p.index+1, err)
	}

	objNrs := make([]int, 0, len(extracted))
	for objNr := range extracted {
		objNrs = append(objNrs, objNr)
	}
	sort.Ints(objNrs)

	images := make([]RawImage, 0, len(extracted))
	for _, objNr := range objNrs {
		im := extracted[objNr]
		data, err := io.ReadAll(im)
		if err != nil {
			continue
		}
		name := im.Name
		if name == "" {
			name = fmt.Sprintf("Im%d", objNr)
		}
		images = append(images, RawImage{Name: name, Data: data})
	}
	return images, nil
}

func (p *adapterPage) Render(zoom float64) (image.Image, error) {
	r, err := p.doc.renderer()
	if err != nil {
		return nil, fmt.Errorf("render backend unavailable: %w", err)
	}
	img, err := r.ImageDPI(p.index, 72*zoom)
	if err != nil {
		return nil, fmt.Errorf("rendering page %d: %w", p.index+1, err)
	}
	return img, nil
}
