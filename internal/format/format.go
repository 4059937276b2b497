// Package format renders prices, percentages and quantities for terminal output.
package format

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money formats amount in currency with the currency's symbol and fraction,
// e.g. "$1,234.56" or "-$150.00". Unknown currencies fall back to
// "1234.56 XYZ".
func Money(amount decimal.Decimal, currency string) string {
	code := strings.ToUpper(currency)
	cur := money.GetCurrency(code)
	if cur == nil {
		return amount.StringFixed(2) + " " + code
	}

	factor := decimal.New(1, int32(cur.Fraction))
	return money.New(amount.Mul(factor).Round(0).IntPart(), code).Display()
}

// Price formats a market price. Prices below one cent keep eight decimals so
// that micro-cap coins do not render as zero.
func Price(price float64, currency string) string {
	d := decimal.NewFromFloat(price)
	if !d.IsZero() && d.Abs().LessThan(decimal.New(1, -2)) {
		return symbol(currency) + d.StringFixed(8)
	}
	return Money(d, currency)
}

// MarketCap formats a large amount compactly: "$1.02 T", "$385.00 B",
// "$12.30 M", or the plain amount below a million.
func MarketCap(value float64, currency string) string {
	sym := symbol(currency)
	switch {
	case value >= 1e12:
		return fmt.Sprintf("%s%.2f T", sym, value/1e12)
	case value >= 1e9:
		return fmt.Sprintf("%s%.2f B", sym, value/1e9)
	case value >= 1e6:
		return fmt.Sprintf("%s%.2f M", sym, value/1e6)
	default:
		return fmt.Sprintf("%s%.2f", sym, value)
	}
}

// Percent formats a percentage with an explicit sign, e.g. "+15.56%".
func Percent(p decimal.Decimal) string {
	f, _ := p.Float64()
	return PercentFloat(f)
}

// PercentFloat is Percent for float values.
func PercentFloat(p float64) string {
	return fmt.Sprintf("%+.2f%%", p)
}

// Quantity formats a holding quantity with eight decimals.
func Quantity(q decimal.Decimal) string {
	return q.StringFixed(8)
}

func symbol(currency string) string {
	if cur := money.GetCurrency(strings.ToUpper(currency)); cur != nil {
		return cur.Grapheme
	}
	return strings.ToUpper(currency) + " "
}
