package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Locale carries the formatting rules for amounts and due dates.
type Locale struct {
	CurrencySymbol string
	DecimalSep     string
	ThousandsSep   string
	Months         [12]string
}

// PtBR formats the way the Brazilian storefront expects:
// "R$ 1.244,40" and "10 de novembro de 2020".
func PtBR() Locale {
	return Locale{
		CurrencySymbol: "R$ ",
		DecimalSep:     ",",
		ThousandsSep:   ".",
		Months: [12]string{
			"janeiro", "fevereiro", "março", "abril",
			"maio", "junho", "julho", "agosto",
			"setembro", "outubro", "novembro", "dezembro",
		},
	}
}

// FormatCurrency rounds to two decimals and applies the locale's
// separators. Rounding happens here and nowhere else.
func (l Locale) FormatCurrency(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	return sign + l.CurrencySymbol + groupDigits(intPart, l.ThousandsSep) + l.DecimalSep + fracPart
}

// FormatLongDate renders a calendar date as a human-readable locale
// string, e.g. "10 de novembro de 2020".
func (l Locale) FormatLongDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), l.Months[t.Month()-1], t.Year())
}

func groupDigits(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
