package server

import (
	"github.com/shopspring/decimal"

	"github.com/rezonia/invoicemate/internal/model"
)

// ItemPayload is one line item as submitted on the wire.
type ItemPayload struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"`
}

// SendEmailRequest is the email submission payload. Required fields mirror
// the submission contract; a nil items list fails validation, an empty one
// does not.
type SendEmailRequest struct {
	To            string          `json:"to" binding:"required"`
	InvoiceNumber string          `json:"invoiceNumber" binding:"required"`
	InvoiceType   string          `json:"invoiceType" binding:"required"`
	FromDetails   string          `json:"fromDetails" binding:"required"`
	ToDetails     string          `json:"toDetails" binding:"required"`
	InvoiceDate   string          `json:"invoiceDate"`
	Items         []ItemPayload   `json:"items" binding:"required"`
	TaxRate       decimal.Decimal `json:"taxRate"`
	Discount      decimal.Decimal `json:"discount"`
	Shipping      decimal.Decimal `json:"shipping"`
	ExtraNotes    string          `json:"extraNotes"`
	Logo          string          `json:"logo"`
	PDFAttachment string          `json:"pdfAttachment"`
}

// ModelItems converts the wire items to model items. Amounts are taken as
// submitted; totals are recomputed from them server-side regardless of any
// client arithmetic.
func (r *SendEmailRequest) ModelItems() []model.Item {
	items := make([]model.Item, 0, len(r.Items))
	for _, p := range r.Items {
		items = append(items, model.Item{
			ID:        p.ID,
			Name:      p.Name,
			UnitPrice: p.Price,
			Quantity:  p.Quantity,
			Amount:    p.Amount,
		})
	}
	return items
}

// SendEmailResponse confirms a delivered submission.
type SendEmailResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Duration  string `json:"duration"`
}

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error     string `json:"error"`
	Timestamp string `json:"timestamp,omitempty"`
	Duration  string `json:"duration,omitempty"`
}
