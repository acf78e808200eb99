package render_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoicemate/internal/model"
	"github.com/rezonia/invoicemate/internal/render"
)

func testInvoice() *model.Invoice {
	inv := model.NewInvoice()
	inv.Date = time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	return &inv
}

func TestRender_EmptyFieldsUsePlaceholders(t *testing.T) {
	r := render.MustNew(render.Classic)
	inv := testInvoice()

	html, err := r.HTML(inv)
	require.NoError(t, err)

	assert.Contains(t, html, "Your Company Name")
	assert.Contains(t, html, "Client Name")
	assert.Contains(t, html, "Note: The sender will write additional details here")
	assert.Contains(t, html, "123 Progress Lane, Seattle, Washington, 98101, United States")
}

func TestRender_RealDetailsReplacePlaceholders(t *testing.T) {
	r := render.MustNew(render.Classic)
	inv := testInvoice()
	inv.FromDetails = "Acme Corp\n1 Main St"
	inv.ToDetails = "Client Co\n2 Side St"
	inv.Notes = "Payment via bank transfer"

	html, err := r.HTML(inv)
	require.NoError(t, err)

	assert.Contains(t, html, "Acme Corp")
	assert.Contains(t, html, "Client Co")
	assert.Contains(t, html, "Payment via bank transfer")
	assert.NotContains(t, html, "Your Company Name")
	assert.NotContains(t, html, "Client Name")
	// Registered office comes from the sender details, comma-joined.
	assert.Contains(t, html, "Acme Corp, 1 Main St")
	assert.NotContains(t, html, "123 Progress Lane")
}

func TestLines_HeaderAndTotals(t *testing.T) {
	r := render.MustNew(render.Classic)
	inv := testInvoice()
	inv.Terms = model.TermsNet30

	lines := r.Lines(inv)
	joined := strings.Join(lines, "\n")

	assert.Equal(t, "INVOICE", lines[0])
	assert.Contains(t, joined, "Invoice Date  3/5/2026")
	assert.Contains(t, joined, "Invoice Number  001")
	assert.Contains(t, joined, "Payment Terms  Net 30")
	assert.Contains(t, joined, "Due Date  4/4/2026")
	assert.Contains(t, joined, "Sample Item | $100.00 | 1 | $100.00")
	assert.Contains(t, joined, "Subtotal  $100.00")
	assert.Contains(t, joined, "TOTAL  $100.00")
	assert.Contains(t, joined, "Amount Enclosed: $100.00")
}

func TestLines_AdjustmentRowsOnlyWhenPositive(t *testing.T) {
	r := render.MustNew(render.Classic)
	inv := testInvoice()

	joined := strings.Join(r.Lines(inv), "\n")
	assert.NotContains(t, joined, "Discount")
	assert.NotContains(t, joined, "Shipping")
	assert.NotContains(t, joined, "Tax (")

	inv.Discount = decimal.NewFromInt(20)
	inv.Shipping = decimal.NewFromInt(15)
	inv.TaxRate = decimal.NewFromInt(10)

	joined = strings.Join(r.Lines(inv), "\n")
	assert.Contains(t, joined, "Discount  -$20.00")
	assert.Contains(t, joined, "Shipping  $15.00")
	// (100 - 20) * 10% = 8
	assert.Contains(t, joined, "Tax (10%)  $8.00")
	// 100 - 20 + 8 + 15 = 103
	assert.Contains(t, joined, "TOTAL  $103.00")
	// The payment advice echoes the adjustments.
	assert.Contains(t, joined, "Discount: $20.00")
	assert.Contains(t, joined, "Shipping: $15.00")
	assert.Contains(t, joined, "Tax Rate: 10%")
}

func TestLines_FractionalTaxRateKeepsPrecision(t *testing.T) {
	r := render.MustNew(render.Classic)
	inv := testInvoice()
	inv.TaxRate = decimal.NewFromFloat(8.25)

	joined := strings.Join(r.Lines(inv), "\n")
	assert.Contains(t, joined, "Tax (8.25%)")
	assert.Contains(t, joined, "Tax Rate: 8.25%")
}

func TestVariants_SameDataToText(t *testing.T) {
	inv := testInvoice()
	inv.TaxRate = decimal.NewFromInt(10)
	inv.Discount = decimal.NewFromInt(5)

	classic := strings.Join(render.MustNew(render.Classic).Lines(inv), "\n")
	modern := strings.Join(render.MustNew(render.Modern).Lines(inv), "\n")

	// The modern skin adds a footer line; everything else is identical.
	assert.Equal(t, classic+"\nThank you for your business!", modern)
}

func TestRender_TypeLabels(t *testing.T) {
	r := render.MustNew(render.Modern)

	for _, typ := range []model.InvoiceType{model.TypeInvoice, model.TypeQuote, model.TypeEstimate} {
		inv := testInvoice()
		inv.Type = typ
		lines := r.Lines(inv)
		assert.Equal(t, strings.ToUpper(string(typ)), lines[0])
	}
}

func TestRender_BothTemplatesParse(t *testing.T) {
	_, err := render.New(render.Classic)
	require.NoError(t, err)
	_, err = render.New(render.Modern)
	require.NoError(t, err)
}

func TestRender_EscapesUserContent(t *testing.T) {
	r := render.MustNew(render.Classic)
	inv := testInvoice()
	inv.Items[0].Name = `<script>alert("x")</script>`

	html, err := r.HTML(inv)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert")
}
