package domain

import "github.com/shopspring/decimal"

// AgeTaxBracket maps an age range to a daily-price multiplier.
// Both bounds are inclusive: a bracket {From: 40, To: 50} matches age 50.
type AgeTaxBracket struct {
	From int             `json:"from"`
	To   int             `json:"to"`
	Then decimal.Decimal `json:"then"`
}

func (b AgeTaxBracket) Matches(age int) bool {
	return age >= b.From && age <= b.To
}
