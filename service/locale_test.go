package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrencyPtBR(t *testing.T) {
	locale := PtBR()

	assert.Equal(t, "R$ 244,40", locale.FormatCurrency(decimal.NewFromFloat(244.4)))
	assert.Equal(t, "R$ 206,80", locale.FormatCurrency(decimal.NewFromFloat(206.8)))
	assert.Equal(t, "R$ 0,00", locale.FormatCurrency(decimal.Zero))
}

func TestFormatCurrencyGroupsThousands(t *testing.T) {
	locale := PtBR()

	assert.Equal(t, "R$ 1.244,40", locale.FormatCurrency(decimal.NewFromFloat(1244.4)))
	assert.Equal(t, "R$ 1.000.000,00", locale.FormatCurrency(decimal.NewFromInt(1_000_000)))
}

func TestFormatCurrencyRoundsToTwoDecimals(t *testing.T) {
	locale := PtBR()

	// 37.6 * 1.15 * 3 = 129.72 exactly in decimal; a float chain would drift.
	total := decimal.NewFromFloat(37.6).
		Mul(decimal.NewFromFloat(1.15)).
		Mul(decimal.NewFromInt(3))

	assert.Equal(t, "R$ 129,72", locale.FormatCurrency(total))
}

func TestFormatLongDate(t *testing.T) {
	locale := PtBR()
	date := time.Date(2020, time.November, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "10 de novembro de 2020", locale.FormatLongDate(date))
}
