package invoicelib

import (
	"context"

	"github.com/rezonia/invoicemate/internal/model"
	"github.com/rezonia/invoicemate/internal/render"
)

// Renderer produces a document body from an invoice
type Renderer interface {
	// HTML produces the full HTML document
	HTML(inv *model.Invoice) (string, error)

	// Lines produces the flattened text used by the rasterizer
	Lines(inv *model.Invoice) []string
}

// NewRenderer returns a renderer for the given layout variant.
func NewRenderer(variant Variant) (Renderer, error) {
	return render.New(variant)
}

// Exporter turns an invoice into a downloadable PDF
type Exporter interface {
	// Export renders, rasterizes and paginates one invoice
	Export(ctx context.Context, inv *model.Invoice) (*ExportResult, error)
}

// ExportResult represents one exported document
type ExportResult struct {
	// PDF is the finished file content
	PDF []byte

	// Filename is the suggested download name, invoice-{number}.pdf
	Filename string

	// Pages is the verified page count
	Pages int
}

// ExporterOptions configures exporter behavior
type ExporterOptions struct {
	// Variant selects the document layout (default: VariantClassic)
	Variant Variant

	// Width is the rendered document width in pixels (default: 800)
	Width int

	// Scale is the raster oversampling factor (default: 2)
	Scale int
}

// DefaultExporterOptions returns default exporter options
func DefaultExporterOptions() ExporterOptions {
	return ExporterOptions{
		Variant: VariantClassic,
		Width:   800,
		Scale:   2,
	}
}
