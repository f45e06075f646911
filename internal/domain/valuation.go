package domain

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// PriceQuote is the live market price of an item as delivered by the price feed.
// While IsLoading is true, Min and Change carry no meaning.
type PriceQuote struct {
	Min       decimal.Decimal // Lowest current listing
	Change    decimal.Decimal
	IsLoading bool
}

// LoadingQuote returns a quote that gates every gain figure
func LoadingQuote() PriceQuote {
	return PriceQuote{IsLoading: true}
}

// InvestmentSummary holds the figures derived from an investment and a quote.
// Values that would need a division by zero, or a price that has not loaded,
// are left invalid instead of becoming NaN/Inf.
type InvestmentSummary struct {
	BoughtTotal    decimal.Decimal
	BoughtQuantity decimal.Decimal
	AvgBoughtPrice decimal.NullDecimal // Rounded to 2 places
	SellTotal      decimal.NullDecimal
	GainTotal      decimal.NullDecimal
	GainPercent    decimal.NullDecimal // Rounded to 1 place
}

// EntrySummary holds the same figures for a single purchase lot
type EntrySummary struct {
	Entry       InvestmentEntry
	BoughtTotal decimal.Decimal
	SellTotal   decimal.NullDecimal
	GainTotal   decimal.NullDecimal
	GainPercent decimal.NullDecimal
}

// Summarize computes the aggregate figures of an investment
// Logic:
//   - BoughtTotal = Σ(boughtPrice × quantity)
//   - BoughtQuantity = Σ quantity
//   - AvgBoughtPrice = BoughtTotal / BoughtQuantity
//   - GainTotal = quote.Min × BoughtQuantity − BoughtTotal
//   - GainPercent = GainTotal / BoughtTotal × 100
func Summarize(inv Investment, quote PriceQuote) InvestmentSummary {
	var s InvestmentSummary
	for _, entry := range inv.Entries {
		s.BoughtTotal = s.BoughtTotal.Add(entry.BoughtPrice.Mul(entry.Quantity))
		s.BoughtQuantity = s.BoughtQuantity.Add(entry.Quantity)
	}

	if !s.BoughtQuantity.IsZero() {
		s.AvgBoughtPrice = valid(s.BoughtTotal.DivRound(s.BoughtQuantity, 2))
	}

	if quote.IsLoading {
		return s
	}

	sellTotal := quote.Min.Mul(s.BoughtQuantity)
	gain := sellTotal.Sub(s.BoughtTotal)
	s.SellTotal = valid(sellTotal)
	s.GainTotal = valid(gain)
	s.GainPercent = percent(gain, s.BoughtTotal)
	return s
}

// SummarizeEntry computes the per-lot figures of one entry
func SummarizeEntry(entry InvestmentEntry, quote PriceQuote) EntrySummary {
	s := EntrySummary{
		Entry:       entry,
		BoughtTotal: entry.BoughtPrice.Mul(entry.Quantity),
	}
	if quote.IsLoading {
		return s
	}

	sellTotal := quote.Min.Mul(entry.Quantity)
	gain := sellTotal.Sub(s.BoughtTotal)
	s.SellTotal = valid(sellTotal)
	s.GainTotal = valid(gain)
	s.GainPercent = percent(gain, s.BoughtTotal)
	return s
}

// PortfolioSummary aggregates every investment whose price has loaded
type PortfolioSummary struct {
	BoughtTotal  decimal.Decimal
	GainTotal    decimal.Decimal
	GainPercent  decimal.NullDecimal
	PricedCount  int
	PendingCount int
}

// Include folds one investment summary into the portfolio totals.
// Investments still waiting for a price are only counted as pending.
func (p *PortfolioSummary) Include(s InvestmentSummary) {
	if !s.GainTotal.Valid {
		p.PendingCount++
		return
	}
	p.PricedCount++
	p.BoughtTotal = p.BoughtTotal.Add(s.BoughtTotal)
	p.GainTotal = p.GainTotal.Add(s.GainTotal.Decimal)
	p.GainPercent = percent(p.GainTotal, p.BoughtTotal)
}

func percent(part, total decimal.Decimal) decimal.NullDecimal {
	if total.IsZero() {
		return decimal.NullDecimal{}
	}
	return valid(part.Div(total).Mul(hundred).Round(1))
}

func valid(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
