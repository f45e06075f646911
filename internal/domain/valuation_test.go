package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quote(min int64) PriceQuote {
	return PriceQuote{Min: decimal.NewFromInt(min)}
}

func TestSummarize_WorkedExample(t *testing.T) {
	inv := Investment{
		ItemID:  5,
		Entries: []InvestmentEntry{entry("a", 100, 2), entry("b", 200, 1)},
	}

	s := Summarize(inv, quote(150))

	assert.True(t, decimal.NewFromInt(400).Equal(s.BoughtTotal))
	assert.True(t, decimal.NewFromInt(3).Equal(s.BoughtQuantity))
	require.True(t, s.AvgBoughtPrice.Valid)
	assert.Equal(t, "133.33", s.AvgBoughtPrice.Decimal.String())
	require.True(t, s.GainTotal.Valid)
	assert.True(t, decimal.NewFromInt(50).Equal(s.GainTotal.Decimal)) // 150*3 - 400
	require.True(t, s.GainPercent.Valid)
	assert.Equal(t, "12.5", s.GainPercent.Decimal.String())
	assert.True(t, decimal.NewFromInt(450).Equal(s.SellTotal.Decimal))
}

func TestSummarize_Loss(t *testing.T) {
	inv := Investment{ItemID: 1, Entries: []InvestmentEntry{entry("a", 1000, 1)}}

	s := Summarize(inv, quote(900))

	assert.True(t, decimal.NewFromInt(-100).Equal(s.GainTotal.Decimal))
	assert.Equal(t, "-10", s.GainPercent.Decimal.String())
}

func TestSummarize_LoadingQuoteGatesGains(t *testing.T) {
	inv := Investment{ItemID: 1, Entries: []InvestmentEntry{entry("a", 100, 2)}}

	s := Summarize(inv, LoadingQuote())

	assert.True(t, decimal.NewFromInt(200).Equal(s.BoughtTotal))
	assert.True(t, s.AvgBoughtPrice.Valid)
	assert.False(t, s.SellTotal.Valid)
	assert.False(t, s.GainTotal.Valid)
	assert.False(t, s.GainPercent.Valid)
}

func TestSummarize_GuardedDivision(t *testing.T) {
	// An empty investment never exists in a stored market, but the math must not blow up
	s := Summarize(Investment{ItemID: 1}, quote(10))

	assert.True(t, s.BoughtTotal.IsZero())
	assert.False(t, s.AvgBoughtPrice.Valid)
	assert.True(t, s.GainTotal.Valid)
	assert.True(t, s.GainTotal.Decimal.IsZero())
	assert.False(t, s.GainPercent.Valid)
}

func TestSummarizeEntry(t *testing.T) {
	tests := []struct {
		name        string
		entry       InvestmentEntry
		quote       PriceQuote
		wantBought  string
		wantGain    string
		wantPercent string
	}{
		{name: "Profit", entry: entry("a", 100, 2), quote: quote(150), wantBought: "200", wantGain: "100", wantPercent: "50"},
		{name: "Loss", entry: entry("b", 200, 1), quote: quote(150), wantBought: "200", wantGain: "-50", wantPercent: "-25"},
		{name: "Break even", entry: entry("c", 150, 4), quote: quote(150), wantBought: "600", wantGain: "0", wantPercent: "0"},
		{name: "Rounded percent", entry: entry("d", 3, 1), quote: quote(4), wantBought: "3", wantGain: "1", wantPercent: "33.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := SummarizeEntry(tt.entry, tt.quote)
			assert.Equal(t, tt.entry, s.Entry)
			assert.Equal(t, tt.wantBought, s.BoughtTotal.String())
			require.True(t, s.GainTotal.Valid)
			assert.Equal(t, tt.wantGain, s.GainTotal.Decimal.String())
			require.True(t, s.GainPercent.Valid)
			assert.Equal(t, tt.wantPercent, s.GainPercent.Decimal.String())
		})
	}
}

func TestSummarizeEntry_Loading(t *testing.T) {
	s := SummarizeEntry(entry("a", 100, 2), LoadingQuote())

	assert.Equal(t, "200", s.BoughtTotal.String())
	assert.False(t, s.GainTotal.Valid)
	assert.False(t, s.GainPercent.Valid)
}

func TestPortfolioSummary_Include(t *testing.T) {
	var p PortfolioSummary

	p.Include(Summarize(Investment{ItemID: 1, Entries: []InvestmentEntry{entry("a", 100, 2)}}, quote(150)))
	p.Include(Summarize(Investment{ItemID: 2, Entries: []InvestmentEntry{entry("b", 200, 1)}}, quote(100)))
	p.Include(Summarize(Investment{ItemID: 3, Entries: []InvestmentEntry{entry("c", 50, 1)}}, LoadingQuote()))

	assert.Equal(t, 2, p.PricedCount)
	assert.Equal(t, 1, p.PendingCount)
	assert.Equal(t, "400", p.BoughtTotal.String())
	assert.Equal(t, "0", p.GainTotal.String()) // +100 and -100
	require.True(t, p.GainPercent.Valid)
	assert.True(t, p.GainPercent.Decimal.IsZero())
}

func TestPortfolioSummary_Empty(t *testing.T) {
	var p PortfolioSummary

	assert.True(t, p.BoughtTotal.IsZero())
	assert.False(t, p.GainPercent.Valid)
}
