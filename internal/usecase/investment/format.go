package investment

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

const (
	// CurrencyCode is the in-game currency every price is expressed in
	CurrencyCode = "PKD"

	currencyGrapheme = "$"
)

// maxDisplayAmount is the largest whole amount go-money can hold (int64)
var maxDisplayAmount = decimal.NewFromInt(math.MaxInt64)

func init() {
	money.AddCurrency(CurrencyCode, currencyGrapheme, "$1", ".", ",", 0)
}

// FormatAmount renders an amount in the in-game currency.
// The fractional part is dropped, e.g. 12345.9 -> "$12,345".
// Amounts beyond int64 are printed without grouping.
func FormatAmount(amount decimal.Decimal) string {
	whole := amount.Truncate(0)
	if whole.Abs().GreaterThan(maxDisplayAmount) {
		if whole.IsNegative() {
			return "-" + currencyGrapheme + whole.Abs().String()
		}
		return currencyGrapheme + whole.String()
	}
	return money.New(whole.IntPart(), CurrencyCode).Display()
}

// FormatPercent renders a percentage with one decimal place, e.g. "12.5%"
func FormatPercent(pct decimal.Decimal) string {
	return pct.StringFixed(1) + "%"
}
