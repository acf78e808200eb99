package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoicemate/internal/money"
)

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"whole", "100", "$100.00"},
		{"fractional", "8.25", "$8.25"},
		{"rounds to two places", "1.005", "$1.01"},
		{"zero", "0", "$0.00"},
		{"negative keeps sign after symbol", "-5", "$-5.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, money.FormatUSD(money.MustFromString(tt.value)))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	// Percent formatting keeps the stored precision: no trailing zeros are
	// added and none are stripped beyond what decimal stores.
	assert.Equal(t, "10%", money.FormatPercent(money.FromInt(10)))
	assert.Equal(t, "8.25%", money.FormatPercent(money.MustFromString("8.25")))
	assert.Equal(t, "0%", money.FormatPercent(money.Zero))
}

func TestPercent_FullPrecision(t *testing.T) {
	// 8.25% of 99.99 = 8.249175, kept exact until display.
	got := money.Percent(money.MustFromString("99.99"), money.MustFromString("8.25"))
	assert.Equal(t, "8.249175", got.String())
	assert.Equal(t, "$8.25", money.FormatUSD(got))
}

func TestFromString(t *testing.T) {
	d, err := money.FromString("12.34")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.NewFromFloat(12.34)))

	_, err = money.FromString("not a number")
	assert.Error(t, err)
}

func TestSum(t *testing.T) {
	got := money.Sum([]decimal.Decimal{
		money.FromInt(1),
		money.FromFloat(2.5),
		money.MustFromString("-0.5"),
	})
	assert.True(t, got.Equal(decimal.NewFromInt(3)))
	assert.True(t, money.Sum(nil).IsZero())
}

func TestIsPositive(t *testing.T) {
	assert.True(t, money.IsPositive(money.FromInt(1)))
	assert.False(t, money.IsPositive(money.Zero))
	assert.False(t, money.IsPositive(money.FromInt(-1)))
}
