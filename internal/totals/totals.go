// Package totals computes the derived amounts of an invoice document.
//
// The arithmetic is deliberately literal:
//
//	subtotal  = sum of item amounts
//	taxAmount = (subtotal - discount) * taxRate/100
//	total     = subtotal - discount + taxAmount + shipping
//
// There are no guards and no clamping. An empty item list with a nonzero
// discount or shipping yields a negative or positive total exactly as the
// formulas say; callers that want input ranges enforced must do so at the
// editing boundary.
package totals

import (
	"github.com/shopspring/decimal"

	"github.com/rezonia/invoicemate/internal/model"
	"github.com/rezonia/invoicemate/internal/money"
)

// Totals is the derived-value triple. It is recomputed from current state on
// every call and never cached.
type Totals struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxAmount decimal.Decimal `json:"taxAmount"`
	Total     decimal.Decimal `json:"total"`
}

// Calculate returns the totals for the given items and rates. Pure and
// idempotent: identical input yields identical output, O(len(items)).
func Calculate(items []model.Item, taxRatePercent, discount, shipping decimal.Decimal) Totals {
	subtotal := money.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Amount)
	}

	taxAmount := money.Percent(subtotal.Sub(discount), taxRatePercent)
	total := subtotal.Sub(discount).Add(taxAmount).Add(shipping)

	return Totals{
		Subtotal:  subtotal,
		TaxAmount: taxAmount,
		Total:     total,
	}
}

// ForInvoice computes the totals of a whole document.
func ForInvoice(inv *model.Invoice) Totals {
	return Calculate(inv.Items, inv.TaxRate, inv.Discount, inv.Shipping)
}
