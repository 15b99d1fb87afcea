package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders an amount in cents as US dollars, e.g. 123456 as
// "$1,234.56". Negative amounts get a leading minus: "-$10.50".
func FormatCurrency(cents int64) string {
	amount := decimal.New(cents, -2)

	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}

	fixed := amount.StringFixed(2)
	whole, fraction := fixed[:len(fixed)-3], fixed[len(fixed)-2:]
	return sign + "$" + groupThousands(whole) + "." + fraction
}

// CentsToUnits converts minor currency units to major units.
func CentsToUnits(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

func groupThousands(digits string) string {
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
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
