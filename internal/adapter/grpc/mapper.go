package grpc

import (
	"github.com/shopspring/decimal"

	marketv1 "github.com/simaogato/marketfolio-backend/internal/adapter/grpc/market/v1"
	"github.com/simaogato/marketfolio-backend/internal/domain"
	"github.com/simaogato/marketfolio-backend/internal/usecase/investment"
	"github.com/simaogato/marketfolio-backend/internal/usecase/market"
)

func toEntryMessage(e domain.InvestmentEntry) *marketv1.Entry {
	return &marketv1.Entry{
		Id:          e.ID,
		BoughtPrice: e.BoughtPrice.String(),
		Quantity:    e.Quantity.String(),
	}
}

func toMarketMessage(m domain.Market) *marketv1.Market {
	msg := &marketv1.Market{
		Investments: make([]*marketv1.Investment, 0, len(m.Investments)),
		Wishlist:    make([]int64, 0, len(m.Wishlist)),
	}
	for _, inv := range m.Investments {
		out := &marketv1.Investment{
			ItemId:  int64(inv.ItemID),
			Entries: make([]*marketv1.Entry, 0, len(inv.Entries)),
		}
		for _, e := range inv.Entries {
			out.Entries = append(out.Entries, toEntryMessage(e))
		}
		msg.Investments = append(msg.Investments, out)
	}
	for _, id := range m.Wishlist {
		msg.Wishlist = append(msg.Wishlist, int64(id))
	}
	return msg
}

func toModalMessage(state domain.ModalState) *marketv1.Modal {
	switch s := state.(type) {
	case domain.ModalAdding:
		return &marketv1.Modal{State: marketv1.ModalStateAdding, ItemId: int64(s.ItemID)}
	case domain.ModalEditing:
		return &marketv1.Modal{State: marketv1.ModalStateEditing, ItemId: int64(s.ItemID), Entry: toEntryMessage(s.Entry)}
	default:
		return &marketv1.Modal{State: marketv1.ModalStateClosed}
	}
}

func toRowMessage(row investment.InvestmentRow) *marketv1.InvestmentRow {
	msg := &marketv1.InvestmentRow{
		ItemId:             int64(row.ItemID),
		Name:               row.Name,
		Category:           row.Category,
		ImageId:            row.ImageID,
		DetailPath:         row.DetailPath,
		PriceLoading:       row.Quote.IsLoading,
		BoughtTotal:        row.Summary.BoughtTotal.String(),
		BoughtQuantity:     row.Summary.BoughtQuantity.String(),
		AvgBoughtPrice:     nullString(row.Summary.AvgBoughtPrice),
		SellTotal:          nullString(row.Summary.SellTotal),
		GainTotal:          nullString(row.Summary.GainTotal),
		GainPercent:        nullString(row.Summary.GainPercent),
		BoughtTotalDisplay: investment.FormatAmount(row.Summary.BoughtTotal),
		Entries:            make([]*marketv1.EntryRow, 0, len(row.Entries)),
	}

	if !row.Quote.IsLoading {
		msg.CurrentPrice = row.Quote.Min.String()
		msg.PriceChange = row.Quote.Change.String()
	}
	msg.AvgBoughtPriceDisplay = amountDisplay(row.Summary.AvgBoughtPrice)
	msg.SellTotalDisplay = amountDisplay(row.Summary.SellTotal)
	msg.GainTotalDisplay = amountDisplay(row.Summary.GainTotal)
	msg.GainPercentDisplay = percentDisplay(row.Summary.GainPercent)

	for _, e := range row.Entries {
		msg.Entries = append(msg.Entries, &marketv1.EntryRow{
			Entry:              toEntryMessage(e.Entry),
			BoughtTotal:        e.BoughtTotal.String(),
			SellTotal:          nullString(e.SellTotal),
			GainTotal:          nullString(e.GainTotal),
			GainPercent:        nullString(e.GainPercent),
			BoughtPriceDisplay: investment.FormatAmount(e.Entry.BoughtPrice),
			BoughtTotalDisplay: investment.FormatAmount(e.BoughtTotal),
			GainTotalDisplay:   amountDisplay(e.GainTotal),
			GainPercentDisplay: percentDisplay(e.GainPercent),
		})
	}
	return msg
}

func toCatalogItemMessage(c market.CatalogItem, lang string) *marketv1.CatalogItem {
	return &marketv1.CatalogItem{
		ItemId:     int64(c.Item.ID),
		Name:       c.Item.Name(lang),
		Category:   c.Item.Category,
		ImageId:    c.Item.ImageID,
		DetailPath: c.Item.DetailPath(),
		Wishlisted: c.Wishlisted,
		Invested:   c.Invested,
	}
}

func amountDisplay(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return investment.FormatAmount(d.Decimal)
}

func percentDisplay(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return investment.FormatPercent(d.Decimal)
}

// nullString renders an unavailable figure as ""
func nullString(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}
