package pdf_test

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoicemate/internal/model"
	"github.com/rezonia/invoicemate/internal/pdf"
	"github.com/rezonia/invoicemate/internal/render"
)

// fakeRasterizer returns a fixed-size white image or a canned error.
type fakeRasterizer struct {
	width  int
	height int
	err    error
}

func (f fakeRasterizer) Rasterize(ctx context.Context, lines []string, width, scale int) (image.Image, error) {
	if f.err != nil {
		return nil, f.err
	}
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img, nil
}

func testInvoice() *model.Invoice {
	inv := model.NewInvoice()
	inv.Number = "042"
	inv.Date = time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	return &inv
}

func TestExport_ProducesValidPDF(t *testing.T) {
	p := pdf.NewPipeline(render.MustNew(render.Classic))

	result, err := p.Export(context.Background(), testInvoice())
	require.NoError(t, err)

	assert.Equal(t, "invoice-042.pdf", result.Filename)
	assert.Equal(t, 1, result.Pages)
	require.GreaterOrEqual(t, len(result.PDF), 4)
	assert.Equal(t, "%PDF", string(result.PDF[:4]))
	assert.Equal(t, pdf.Saved, p.State())
}

func TestExport_TallRasterStaysOnOnePage(t *testing.T) {
	// An 800x6000 raster is far taller than a portrait A4 page; the pipeline
	// downscales it whole instead of slicing it across pages.
	p := pdf.NewPipeline(render.MustNew(render.Classic),
		pdf.WithRasterizer(fakeRasterizer{width: 800, height: 6000}))

	result, err := p.Export(context.Background(), testInvoice())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Pages)
}

func TestExport_RasterFailureResetsToIdle(t *testing.T) {
	boom := errors.New("capture backend unavailable")
	p := pdf.NewPipeline(render.MustNew(render.Classic),
		pdf.WithRasterizer(fakeRasterizer{err: boom}))

	_, err := p.Export(context.Background(), testInvoice())
	require.Error(t, err)

	var exportErr *model.ExportError
	require.ErrorAs(t, err, &exportErr)
	assert.Equal(t, "rasterizing", exportErr.Stage)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, pdf.Idle, p.State())
}

func TestExport_CancelledContext(t *testing.T) {
	p := pdf.NewPipeline(render.MustNew(render.Classic))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Export(ctx, testInvoice())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, pdf.Idle, p.State())
}

func TestExport_Repeatable(t *testing.T) {
	// A failed export leaves the pipeline reusable.
	boom := errors.New("transient")
	fake := &toggleRasterizer{err: boom}
	p := pdf.NewPipeline(render.MustNew(render.Classic), pdf.WithRasterizer(fake))

	_, err := p.Export(context.Background(), testInvoice())
	require.Error(t, err)

	fake.err = nil
	result, err := p.Export(context.Background(), testInvoice())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Pages)
}

type toggleRasterizer struct {
	err error
}

func (f *toggleRasterizer) Rasterize(ctx context.Context, lines []string, width, scale int) (image.Image, error) {
	if f.err != nil {
		return nil, f.err
	}
	img := image.NewRGBA(image.Rect(0, 0, 400, 300))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img, nil
}

func TestBasicRasterizer_Dimensions(t *testing.T) {
	r := pdf.NewBasicRasterizer()

	img, err := r.Rasterize(context.Background(), []string{"a", "b", "c"}, 400, 2)
	require.NoError(t, err)

	// (2*20 margin + 3*18 lines) * scale 2 = 188 high, 800 wide.
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 188, img.Bounds().Dy())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", pdf.Idle.String())
	assert.Equal(t, "saved", pdf.Saved.String())
	assert.Equal(t, "rasterizing", pdf.Rasterizing.String())
}
