package service

import (
	"car-rental/domain"

	"github.com/shopspring/decimal"
)

const (
	MinRentalDays = 1
	MaxRentalDays = 365 // one year per receipt
)

// DefaultTaxBrackets is the production age-to-multiplier table. Brackets
// are ordered and both bounds are inclusive; the first match wins. The
// table is plain data so policy changes never touch the pricing engine.
func DefaultTaxBrackets() []domain.AgeTaxBracket {
	return []domain.AgeTaxBracket{
		{From: 18, To: 25, Then: decimal.NewFromFloat(1.1)},
		{From: 26, To: 30, Then: decimal.NewFromFloat(1.5)},
		{From: 31, To: 100, Then: decimal.NewFromFloat(1.3)},
	}
}
