// Package pdf exports a rendered invoice document as a paginated A4 PDF.
//
// The pipeline runs Idle -> Rendering -> Rasterizing -> Paginating -> Saved,
// or back to Idle on any failure with no partial file exposed. The document
// is laid out at a fixed logical width so mobile and desktop callers produce
// byte-identical output.
//
// Pagination policy: downscale-to-one-page. A raster taller than the usable
// page height is scaled down as a whole and centered horizontally; content
// is never truncated and never sliced across pages.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"image/jpeg"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/rezonia/invoicemate/internal/model"
	"github.com/rezonia/invoicemate/internal/render"
)

// State is the pipeline's lifecycle position.
type State int

const (
	Idle State = iota
	Rendering
	Rasterizing
	Paginating
	Saved
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Rendering:
		return "rendering"
	case Rasterizing:
		return "rasterizing"
	case Paginating:
		return "paginating"
	case Saved:
		return "saved"
	}
	return "unknown"
}

const (
	// DefaultWidth is the fixed logical capture width in layout units.
	DefaultWidth = 800
	// DefaultScale is the raster upscale factor for print sharpness.
	DefaultScale = 2

	pageMargin  = 10.0 // mm, left/right/top
	bottomGuard = 40.0 // mm reserved below the image
	jpegQuality = 90
)

// Pipeline snapshots a renderer's output into a downloadable PDF.
type Pipeline struct {
	renderer *render.Renderer
	rast     Rasterizer
	width    int
	scale    int
	state    State
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithRasterizer substitutes the raster collaborator.
func WithRasterizer(r Rasterizer) Option {
	return func(p *Pipeline) { p.rast = r }
}

// WithWidth overrides the logical capture width.
func WithWidth(w int) Option {
	return func(p *Pipeline) { p.width = w }
}

// WithScale overrides the raster upscale factor.
func WithScale(s int) Option {
	return func(p *Pipeline) { p.scale = s }
}

// NewPipeline creates an export pipeline over the given renderer.
func NewPipeline(r *render.Renderer, opts ...Option) *Pipeline {
	p := &Pipeline{
		renderer: r,
		rast:     NewBasicRasterizer(),
		width:    DefaultWidth,
		scale:    DefaultScale,
		state:    Idle,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// State returns the pipeline's current lifecycle position.
func (p *Pipeline) State() State {
	return p.state
}

// Result is a completed export.
type Result struct {
	PDF      []byte
	Filename string
	Pages    int
}

// Export runs the full pipeline for one document snapshot. Synchronous from
// the caller's perspective; ctx is honored between stages but a stage in
// flight runs to completion (no cancellation mid-raster).
func (p *Pipeline) Export(ctx context.Context, inv *model.Invoice) (*Result, error) {
	p.state = Rendering
	lines := p.renderer.Lines(inv)
	if err := ctx.Err(); err != nil {
		return nil, p.fail("rendering", "context done", err)
	}

	p.state = Rasterizing
	img, err := p.rast.Rasterize(ctx, lines, p.width, p.scale)
	if err != nil {
		return nil, p.fail("rasterizing", "capture failed", err)
	}

	var jpg bytes.Buffer
	if err := jpeg.Encode(&jpg, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, p.fail("rasterizing", "image encoding failed", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, p.fail("rasterizing", "context done", err)
	}

	p.state = Paginating
	pdfBytes, err := paginate(jpg.Bytes(), img.Bounds().Dx(), img.Bounds().Dy())
	if err != nil {
		return nil, p.fail("paginating", "page assembly failed", err)
	}

	pages, err := verify(pdfBytes)
	if err != nil {
		return nil, p.fail("paginating", "output verification failed", err)
	}

	p.state = Saved
	return &Result{
		PDF:      pdfBytes,
		Filename: fmt.Sprintf("invoice-%s.pdf", inv.Number),
		Pages:    pages,
	}, nil
}

func (p *Pipeline) fail(stage, msg string, cause error) error {
	p.state = Idle
	return model.NewExportError(stage, msg, cause)
}

// paginate places the raster onto a single A4 portrait page. The image is
// drawn at page width minus the side margins; when taller than the usable
// height it is downscaled whole and centered horizontally.
func paginate(jpg []byte, imgW, imgH int) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	pageW, pageH := doc.GetPageSize()

	w := pageW - 2*pageMargin
	h := w * float64(imgH) / float64(imgW)
	x := pageMargin
	maxH := pageH - bottomGuard

	if h > maxH {
		factor := maxH / h
		w *= factor
		h = maxH
		x = (pageW - w) / 2
	}

	opt := gofpdf.ImageOptions{ImageType: "JPEG"}
	doc.RegisterImageOptionsReader("document", opt, bytes.NewReader(jpg))
	doc.ImageOptions("document", x, pageMargin, w, h, false, opt, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// verify runs the finished file through pdfcpu before it is handed to the
// caller, returning the page count.
func verify(pdfBytes []byte) (int, error) {
	rs := bytes.NewReader(pdfBytes)
	if err := api.Validate(rs, nil); err != nil {
		return 0, err
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	return api.PageCount(rs, nil)
}
