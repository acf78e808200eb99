// Package render turns an invoice document into its presentation layout:
// HTML for the on-screen preview and a flattened line view consumed by the
// raster stage of the PDF pipeline.
//
// Two visual variants exist, a ledger-style classic layout and a card-style
// modern layout. A binary wires exactly one in at construction time. The
// data-to-text rules (currency at two decimals, percentages at stored
// precision, placeholder substitution for empty fields) are shared by both
// variants so preview, PDF and email stay numerically identical.
package render

import (
	"bytes"
	"html/template"
	"io"
	"strings"

	"github.com/rezonia/invoicemate/internal/model"
	"github.com/rezonia/invoicemate/internal/money"
	"github.com/rezonia/invoicemate/internal/totals"
)

// Variant selects the visual skin.
type Variant string

const (
	Classic Variant = "classic"
	Modern  Variant = "modern"
)

// Placeholder strings substituted for empty fields so empty-state previews
// stay legible. These are designed behavior and part of the document
// contract.
const (
	placeholderSenderName  = "Your Company Name"
	placeholderSender      = "Your Company Name\nYour Company Address\nCity, State ZIP\nCountry"
	placeholderRecipient   = "Client Name\nClient Address\nCity, State ZIP\nCountry"
	placeholderNotes       = "Note: The sender will write additional details here"
	placeholderOffice      = "123 Progress Lane, Seattle, Washington, 98101, United States"
	modernFooterLine       = "Thank you for your business!"
	headerDateFormat       = "1/2/2006"
)

// Renderer produces the document layout for one variant.
type Renderer struct {
	variant Variant
	tmpl    *template.Template
}

// New returns a renderer for the given variant.
func New(variant Variant) (*Renderer, error) {
	src := classicTemplate
	if variant == Modern {
		src = modernTemplate
	}
	tmpl, err := template.New(string(variant)).Parse(src)
	if err != nil {
		return nil, err
	}
	return &Renderer{variant: variant, tmpl: tmpl}, nil
}

// MustNew is New for wire-up paths where the templates are known good.
func MustNew(variant Variant) *Renderer {
	r, err := New(variant)
	if err != nil {
		panic(err)
	}
	return r
}

// Variant returns the renderer's visual variant.
func (r *Renderer) Variant() Variant {
	return r.variant
}

// Render writes the document HTML to w.
func (r *Renderer) Render(w io.Writer, inv *model.Invoice) error {
	return r.tmpl.Execute(w, buildView(inv, r.variant))
}

// HTML returns the document HTML as a string.
func (r *Renderer) HTML(inv *model.Invoice) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, inv); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Lines returns the document's text content flattened in layout order. The
// built-in rasterizer draws exactly these lines, which keeps PDF output
// independent of the HTML skin.
func (r *Renderer) Lines(inv *model.Invoice) []string {
	v := buildView(inv, r.variant)

	var out []string
	out = append(out, v.TypeLabel)
	out = append(out, v.SenderName)
	out = append(out, v.SenderLines...)
	out = append(out, "Invoice Date  "+v.DateText)
	out = append(out, "Invoice Number  "+v.Number)
	out = append(out, "Payment Terms  "+v.TermsText)
	out = append(out, "Due Date  "+v.DueDateText)
	out = append(out, "")
	out = append(out, "Description | Unit Price | Quantity | Amount")
	for _, row := range v.Rows {
		out = append(out, row.Name+" | "+row.UnitPrice+" | "+row.Quantity+" | "+row.Amount)
	}
	out = append(out, "")
	out = append(out, "Subtotal  "+v.Subtotal)
	if v.ShowDiscount {
		out = append(out, "Discount  -"+v.Discount)
	}
	if v.ShowShipping {
		out = append(out, "Shipping  "+v.Shipping)
	}
	if v.ShowTax {
		out = append(out, v.TaxLabel+"  "+v.TaxAmount)
	}
	out = append(out, "TOTAL  "+v.Total)
	out = append(out, "")
	out = append(out, "PAYMENT ADVICE")
	out = append(out, "To:")
	out = append(out, v.RecipientLines...)
	out = append(out, v.NoteLines...)
	out = append(out, "Amount Enclosed: "+v.AmountEnclosed)
	out = append(out, "Registered Office: "+v.RegisteredOffice)
	if v.FooterLine != "" {
		out = append(out, v.FooterLine)
	}
	return out
}

type row struct {
	Name      string
	UnitPrice string
	Quantity  string
	Amount    string
}

type view struct {
	TypeLabel        string
	SenderName       string
	SenderLines      []string
	LogoURI          template.URL
	DateText         string
	Number           string
	TermsText        string
	DueDateText      string
	Rows             []row
	Subtotal         string
	ShowDiscount     bool
	Discount         string
	ShowShipping     bool
	Shipping         string
	ShowTax          bool
	TaxLabel         string
	TaxAmount        string
	Total            string
	RecipientLines   []string
	NoteLines        []string
	AmountEnclosed   string
	RegisteredOffice string
	FooterLine       string
}

func buildView(inv *model.Invoice, variant Variant) view {
	t := totals.ForInvoice(inv)

	sender := orPlaceholder(inv.FromDetails, placeholderSender)
	senderName := inv.SenderName()
	if senderName == "" {
		senderName = placeholderSenderName
	}
	recipient := orPlaceholder(inv.ToDetails, placeholderRecipient)
	notes := orPlaceholder(inv.Notes, placeholderNotes)

	terms := inv.Terms
	if terms == "" {
		terms = model.TermsDueOnReceipt
	}

	v := view{
		TypeLabel:        strings.ToUpper(string(inv.Type)),
		SenderName:       senderName,
		SenderLines:      splitLines(sender),
		DateText:         inv.Date.Format(headerDateFormat),
		Number:           inv.Number,
		TermsText:        string(terms),
		DueDateText:      terms.DueDate(inv.Date).Format(headerDateFormat),
		Subtotal:         money.FormatUSD(t.Subtotal),
		Total:            money.FormatUSD(t.Total),
		AmountEnclosed:   money.FormatUSD(t.Total),
		RegisteredOffice: strings.ReplaceAll(orPlaceholder(inv.FromDetails, placeholderOffice), "\n", ", "),
	}
	if inv.Logo != "" {
		v.LogoURI = template.URL(inv.Logo)
	}

	for _, it := range inv.Items {
		v.Rows = append(v.Rows, row{
			Name:      it.Name,
			UnitPrice: money.FormatUSD(it.UnitPrice),
			Quantity:  money.FromInt(it.Quantity).String(),
			Amount:    money.FormatUSD(it.Amount),
		})
	}

	// Adjustment rows appear only when strictly positive.
	if money.IsPositive(inv.Discount) {
		v.ShowDiscount = true
		v.Discount = money.FormatUSD(inv.Discount)
	}
	if money.IsPositive(inv.Shipping) {
		v.ShowShipping = true
		v.Shipping = money.FormatUSD(inv.Shipping)
	}
	if money.IsPositive(inv.TaxRate) {
		v.ShowTax = true
		v.TaxLabel = "Tax (" + money.FormatPercent(inv.TaxRate) + ")"
		v.TaxAmount = money.FormatUSD(t.TaxAmount)
	}

	v.NoteLines = splitLines(notes)
	if v.ShowDiscount {
		v.NoteLines = append(v.NoteLines, "Discount: "+v.Discount)
	}
	if v.ShowShipping {
		v.NoteLines = append(v.NoteLines, "Shipping: "+v.Shipping)
	}
	if v.ShowTax {
		v.NoteLines = append(v.NoteLines, "Tax Rate: "+money.FormatPercent(inv.TaxRate))
	}

	v.RecipientLines = splitLines(recipient)

	if variant == Modern {
		v.FooterLine = modernFooterLine
	}
	return v
}

func orPlaceholder(s, placeholder string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

func splitLines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}
