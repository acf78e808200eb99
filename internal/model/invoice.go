// Package model defines the invoice document, its line items and the
// enumerations shared by the renderer, the PDF pipeline and the mail
// dispatcher. The document is ephemeral: it lives in process memory only and
// derived totals are never stored on it.
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceType is the document-type label printed in the header.
type InvoiceType string

const (
	TypeInvoice  InvoiceType = "Invoice"
	TypeQuote    InvoiceType = "Quote"
	TypeEstimate InvoiceType = "Estimate"
)

// Valid reports whether t is one of the known document types.
func (t InvoiceType) Valid() bool {
	switch t {
	case TypeInvoice, TypeQuote, TypeEstimate:
		return true
	}
	return false
}

// Terms is the payment-terms selection.
type Terms string

const (
	TermsDueOnReceipt Terms = "Due On Receipt"
	TermsNet15        Terms = "Net 15"
	TermsNet30        Terms = "Net 30"
	TermsNet60        Terms = "Net 60"
)

// Days returns the number of days the terms add to the invoice date.
// Unknown terms behave like Due On Receipt.
func (t Terms) Days() int {
	switch t {
	case TermsNet15:
		return 15
	case TermsNet30:
		return 30
	case TermsNet60:
		return 60
	default:
		return 0
	}
}

// DueDate computes the payment due date from the invoice date.
func (t Terms) DueDate(invoiceDate time.Time) time.Time {
	return invoiceDate.AddDate(0, 0, t.Days())
}

// Item is one billable row. Amount is derived and must never be set
// directly; use SetUnitPrice / SetQuantity which keep the invariant
// Amount == UnitPrice * Quantity.
type Item struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
	Amount    decimal.Decimal `json:"amount"`
}

// NewItem returns an empty item with a fresh id: no name, zero price,
// quantity one, zero amount.
func NewItem() Item {
	return Item{
		ID:       uuid.NewString(),
		Quantity: 1,
	}
}

// SampleItem returns the pre-filled row new documents start with.
func SampleItem() Item {
	it := NewItem()
	it.Name = "Sample Item"
	it.SetUnitPrice(decimal.NewFromInt(100))
	return it
}

// SetUnitPrice updates the unit price and recomputes Amount.
func (it *Item) SetUnitPrice(p decimal.Decimal) {
	it.UnitPrice = p
	it.recalc()
}

// SetQuantity updates the quantity and recomputes Amount.
func (it *Item) SetQuantity(q int64) {
	it.Quantity = q
	it.recalc()
}

func (it *Item) recalc() {
	it.Amount = it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity))
}

// Invoice is the full document state as edited by the user.
type Invoice struct {
	Type        InvoiceType     `json:"invoiceType"`
	Number      string          `json:"invoiceNumber"`
	Date        time.Time       `json:"invoiceDate"`
	Terms       Terms           `json:"terms"`
	FromDetails string          `json:"fromDetails"`
	ToDetails   string          `json:"toDetails"`
	Items       []Item          `json:"items"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	Discount    decimal.Decimal `json:"discount"`
	Shipping    decimal.Decimal `json:"shipping"`
	Notes       string          `json:"extraNotes"`
	Logo        string          `json:"logo,omitempty"` // data URI, optional
}

// NewInvoice returns a document with the defaults the editor starts from:
// type Invoice, number "001", today's date, due on receipt, one sample item.
func NewInvoice() Invoice {
	return Invoice{
		Type:   TypeInvoice,
		Number: "001",
		Date:   time.Now().UTC().Truncate(24 * time.Hour),
		Terms:  TermsDueOnReceipt,
		Items:  []Item{SampleItem()},
	}
}

// SenderName returns the first line of FromDetails, or "" when unset.
func (inv *Invoice) SenderName() string {
	return firstLine(inv.FromDetails)
}

// RecipientName returns the first line of ToDetails, or "" when unset.
func (inv *Invoice) RecipientName() string {
	return firstLine(inv.ToDetails)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
