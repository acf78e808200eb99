package totals_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rezonia/invoicemate/internal/model"
	"github.com/rezonia/invoicemate/internal/money"
	"github.com/rezonia/invoicemate/internal/totals"
)

func item(price int64, qty int64) model.Item {
	it := model.NewItem()
	it.Name = "Widget"
	it.SetUnitPrice(decimal.NewFromInt(price))
	it.SetQuantity(qty)
	return it
}

func TestCalculate_SingleItem(t *testing.T) {
	tot := totals.Calculate([]model.Item{item(100, 1)}, money.Zero, money.Zero, money.Zero)

	assert.True(t, tot.Subtotal.Equal(decimal.NewFromInt(100)),
		"Expected subtotal 100, got %s", tot.Subtotal.String())
	assert.True(t, tot.TaxAmount.IsZero())
	assert.Equal(t, "$100.00", money.FormatUSD(tot.Total))
}

func TestCalculate_DiscountBeforeTax(t *testing.T) {
	// Two items of 100 each, discount 20, tax 10%, shipping 15.
	// Tax applies to the discounted base: (200-20)*0.10 = 18.
	items := []model.Item{item(100, 1), item(100, 1)}
	tot := totals.Calculate(items,
		decimal.NewFromInt(10),
		decimal.NewFromInt(20),
		decimal.NewFromInt(15),
	)

	assert.True(t, tot.Subtotal.Equal(decimal.NewFromInt(200)))
	assert.True(t, tot.TaxAmount.Equal(decimal.NewFromInt(18)),
		"Expected tax 18, got %s", tot.TaxAmount.String())
	// 200 - 20 + 18 + 15 = 213
	assert.True(t, tot.Total.Equal(decimal.NewFromInt(213)),
		"Expected total 213, got %s", tot.Total.String())
}

func TestCalculate_EmptyItemsNoClamping(t *testing.T) {
	// No items, discount 10, shipping 5: the formulas run as written and the
	// total goes negative.
	tot := totals.Calculate(nil, money.Zero, decimal.NewFromInt(10), decimal.NewFromInt(5))

	assert.True(t, tot.Subtotal.IsZero())
	assert.True(t, tot.TaxAmount.IsZero())
	assert.True(t, tot.Total.Equal(decimal.NewFromInt(-5)))
	assert.Equal(t, "$-5.00", money.FormatUSD(tot.Total))
}

func TestCalculate_Idempotent(t *testing.T) {
	items := []model.Item{item(33, 3)}
	rate := decimal.NewFromFloat(7.5)
	discount := decimal.NewFromInt(9)
	shipping := decimal.NewFromFloat(4.25)

	first := totals.Calculate(items, rate, discount, shipping)
	second := totals.Calculate(items, rate, discount, shipping)

	assert.True(t, first.Subtotal.Equal(second.Subtotal))
	assert.True(t, first.TaxAmount.Equal(second.TaxAmount))
	assert.True(t, first.Total.Equal(second.Total))
}

func TestCalculate_FractionalRate(t *testing.T) {
	// 8.25% of 100 = 8.25, no rounding until display.
	tot := totals.Calculate([]model.Item{item(100, 1)},
		decimal.NewFromFloat(8.25), money.Zero, money.Zero)

	assert.Equal(t, "8.25", tot.TaxAmount.String())
	assert.Equal(t, "$108.25", money.FormatUSD(tot.Total))
}

func TestForInvoice(t *testing.T) {
	inv := model.NewInvoice()
	inv.Items = []model.Item{item(50, 2)}
	inv.TaxRate = decimal.NewFromInt(10)

	tot := totals.ForInvoice(&inv)

	assert.True(t, tot.Subtotal.Equal(decimal.NewFromInt(100)))
	assert.True(t, tot.Total.Equal(decimal.NewFromInt(110)))
}
