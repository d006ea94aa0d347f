// Package money holds amount validation and display formatting shared by the
// ledger and the presentation layer.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount validates operator-entered text as a positive money amount.
// Both "." and "," are accepted as the fractional separator.
func ParseAmount(text string) (decimal.Decimal, bool) {
	normalized := strings.TrimSpace(strings.ReplaceAll(text, ",", "."))
	if normalized == "" {
		return decimal.Decimal{}, false
	}
	amount, err := decimal.NewFromString(normalized)
	if err != nil || amount.Sign() <= 0 {
		return decimal.Decimal{}, false
	}
	return amount, true
}

// Format renders an amount with exactly two fractional digits, thousands
// grouped by spaces and a trailing currency code:
//
//	Format(1234567.5, "RUB") == "1 234 567.50 RUB"
func Format(amount decimal.Decimal, currency string) string {
	fixed := amount.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign, intPart = "-", intPart[1:]
	}

	groups := []string{}
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	return sign + strings.Join(groups, " ") + "." + frac + " " + currency
}

// MaskAccount shortens an account number to its last four characters for
// on-screen display.
func MaskAccount(number string) string {
	if len(number) <= 4 {
		return number
	}
	return number[len(number)-4:]
}
