package postgres

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/simaogato/marketfolio-backend/internal/domain"
)

// marketDocument is the JSON shape of the market key stored on an account
type marketDocument struct {
	Investments []investmentDocument `json:"investments"`
	Wishlist    []int64              `json:"wishlist"`
}

type investmentDocument struct {
	ItemID  int64           `json:"i"`
	Entries []entryDocument `json:"entries"`
}

type entryDocument struct {
	ID          string          `json:"id"`
	BoughtPrice decimal.Decimal `json:"boughtPrice"`
	Quantity    decimal.Decimal `json:"quantity"`
}

func encodeMarket(m domain.Market) ([]byte, error) {
	doc := marketDocument{
		Investments: make([]investmentDocument, 0, len(m.Investments)),
		Wishlist:    make([]int64, 0, len(m.Wishlist)),
	}
	for _, inv := range m.Investments {
		invDoc := investmentDocument{
			ItemID:  int64(inv.ItemID),
			Entries: make([]entryDocument, 0, len(inv.Entries)),
		}
		for _, e := range inv.Entries {
			invDoc.Entries = append(invDoc.Entries, entryDocument{ID: e.ID, BoughtPrice: e.BoughtPrice, Quantity: e.Quantity})
		}
		doc.Investments = append(doc.Investments, invDoc)
	}
	for _, id := range m.Wishlist {
		doc.Wishlist = append(doc.Wishlist, int64(id))
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode market: %w", err)
	}
	return data, nil
}

func decodeMarket(data []byte) (domain.Market, error) {
	var doc marketDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.Market{}, fmt.Errorf("failed to decode market: %w", err)
	}

	m := domain.Market{
		Investments: make([]domain.Investment, 0, len(doc.Investments)),
		Wishlist:    make([]domain.ItemID, 0, len(doc.Wishlist)),
	}
	for _, invDoc := range doc.Investments {
		inv := domain.Investment{
			ItemID:  domain.ItemID(invDoc.ItemID),
			Entries: make([]domain.InvestmentEntry, 0, len(invDoc.Entries)),
		}
		for _, e := range invDoc.Entries {
			inv.Entries = append(inv.Entries, domain.InvestmentEntry{ID: e.ID, BoughtPrice: e.BoughtPrice, Quantity: e.Quantity})
		}
		m.Investments = append(m.Investments, inv)
	}
	for _, id := range doc.Wishlist {
		m.Wishlist = append(m.Wishlist, domain.ItemID(id))
	}
	return m, nil
}
