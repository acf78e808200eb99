// Package invoicelib provides a public API for authoring invoice documents.
//
// This package exposes the core types for building an invoice, computing its
// totals, rendering it as HTML and exporting it as an A4 PDF.
//
// Example usage:
//
//	exporter := invoicelib.NewDefaultExporter()
//	result, err := exporter.Export(ctx, inv)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(result.Filename, result.PDF, 0o644)
package invoicelib

import (
	"github.com/rezonia/invoicemate/internal/items"
	"github.com/rezonia/invoicemate/internal/model"
	"github.com/rezonia/invoicemate/internal/render"
	"github.com/rezonia/invoicemate/internal/totals"
)

// Re-export core types for public API
type (
	Invoice       = model.Invoice
	Item          = model.Item
	InvoiceType   = model.InvoiceType
	Terms         = model.Terms
	Totals        = totals.Totals
	Variant       = render.Variant
	ItemStore     = items.Store
	RemovalPolicy = items.RemovalPolicy
)

// Re-export document types
const (
	TypeInvoice  = model.TypeInvoice
	TypeQuote    = model.TypeQuote
	TypeEstimate = model.TypeEstimate
)

// Re-export payment terms
const (
	TermsDueOnReceipt = model.TermsDueOnReceipt
	TermsNet15        = model.TermsNet15
	TermsNet30        = model.TermsNet30
	TermsNet60        = model.TermsNet60
)

// Re-export layout variants
const (
	VariantClassic = render.Classic
	VariantModern  = render.Modern
)

// Re-export removal policies
const (
	KeepLast   = items.KeepLast
	AllowEmpty = items.AllowEmpty
)

// Re-export error types
type (
	ValidationError = model.ValidationError
	ExportError     = model.ExportError
)

// NewInvoice returns a blank invoice with one sample item, dated today.
func NewInvoice() *Invoice {
	inv := model.NewInvoice()
	return &inv
}

// Calculate computes subtotal, tax amount and total for an invoice.
func Calculate(inv *Invoice) Totals {
	return totals.ForInvoice(inv)
}

// NewItemStore returns an empty line-item store with the given removal policy.
func NewItemStore(policy RemovalPolicy) *ItemStore {
	return items.NewStore(policy)
}

// NewSeededItemStore returns a store pre-filled with the sample row new
// documents start with.
func NewSeededItemStore(policy RemovalPolicy) *ItemStore {
	return items.NewSeeded(policy)
}
