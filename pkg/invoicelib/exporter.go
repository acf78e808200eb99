package invoicelib

import (
	"context"

	"github.com/rezonia/invoicemate/internal/model"
	"github.com/rezonia/invoicemate/internal/pdf"
	"github.com/rezonia/invoicemate/internal/render"
)

// PDFExporter implements Exporter using the internal pipeline
type PDFExporter struct {
	pipeline *pdf.Pipeline
	options  ExporterOptions
}

// NewExporter creates a new PDF exporter with the given options
func NewExporter(opts ExporterOptions) (*PDFExporter, error) {
	if opts.Variant == "" {
		opts.Variant = VariantClassic
	}
	if opts.Width <= 0 {
		opts.Width = pdf.DefaultWidth
	}
	if opts.Scale <= 0 {
		opts.Scale = pdf.DefaultScale
	}

	renderer, err := render.New(opts.Variant)
	if err != nil {
		return nil, err
	}

	pipeline := pdf.NewPipeline(renderer,
		pdf.WithWidth(opts.Width),
		pdf.WithScale(opts.Scale),
	)

	return &PDFExporter{
		pipeline: pipeline,
		options:  opts,
	}, nil
}

// NewDefaultExporter creates an exporter with default options
func NewDefaultExporter() *PDFExporter {
	exporter, err := NewExporter(DefaultExporterOptions())
	if err != nil {
		// Default options are always valid.
		panic(err)
	}
	return exporter
}

// Export renders, rasterizes and paginates one invoice
func (e *PDFExporter) Export(ctx context.Context, inv *model.Invoice) (*ExportResult, error) {
	result, err := e.pipeline.Export(ctx, inv)
	if err != nil {
		return nil, err
	}

	return &ExportResult{
		PDF:      result.PDF,
		Filename: result.Filename,
		Pages:    result.Pages,
	}, nil
}
