package investment

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/simaogato/marketfolio-backend/internal/domain"
)

// InvestmentRow is one investment joined with its catalog item and live price
type InvestmentRow struct {
	ItemID     domain.ItemID
	Name       string // Localized display name
	Category   string
	ImageID    string
	DetailPath string
	Quote      domain.PriceQuote
	Summary    domain.InvestmentSummary
	Entries    []domain.EntrySummary
}

// InvestmentService handles read-side valuation of an account's investments
type InvestmentService struct {
	AccountRepo domain.AccountRepository
	Catalog     domain.ItemCatalog
	PriceFeed   domain.PriceFeed
}

// NewInvestmentService creates a new InvestmentService instance
func NewInvestmentService(accountRepo domain.AccountRepository, catalog domain.ItemCatalog, priceFeed domain.PriceFeed) *InvestmentService {
	return &InvestmentService{
		AccountRepo: accountRepo,
		Catalog:     catalog,
		PriceFeed:   priceFeed,
	}
}

// ListInvestmentRows returns one row per investment, in market order
func (s *InvestmentService) ListInvestmentRows(ctx context.Context, accountID uuid.UUID, lang string) ([]InvestmentRow, error) {
	account, err := s.AccountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	rows := make([]InvestmentRow, 0, len(account.Market.Investments))
	for _, inv := range account.Market.Investments {
		rows = append(rows, s.buildRow(ctx, inv, lang))
	}
	return rows, nil
}

// GetInvestmentRow returns the row of a single investment
func (s *InvestmentService) GetInvestmentRow(ctx context.Context, accountID uuid.UUID, itemID domain.ItemID, lang string) (*InvestmentRow, error) {
	account, err := s.AccountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	inv, ok := account.Market.Investment(itemID)
	if !ok {
		return nil, fmt.Errorf("%w: item %d", domain.ErrInvestmentNotFound, itemID)
	}

	row := s.buildRow(ctx, inv, lang)
	return &row, nil
}

// Quote fetches the live price of an item
// A failing feed is reported as a loading quote so gains stay unavailable
func (s *InvestmentService) Quote(ctx context.Context, itemID domain.ItemID) domain.PriceQuote {
	quote, err := s.PriceFeed.GetPrice(ctx, itemID)
	if err != nil {
		log.Printf("price feed: item %d: %v", itemID, err)
		return domain.LoadingQuote()
	}
	return quote
}

func (s *InvestmentService) buildRow(ctx context.Context, inv domain.Investment, lang string) InvestmentRow {
	quote := s.Quote(ctx, inv.ItemID)

	row := InvestmentRow{
		ItemID:  inv.ItemID,
		Name:    fmt.Sprintf("Item #%d", inv.ItemID),
		Quote:   quote,
		Summary: domain.Summarize(inv, quote),
		Entries: make([]domain.EntrySummary, 0, len(inv.Entries)),
	}

	// Catalog data is display-only; a missing item still yields a usable row
	item, err := s.Catalog.GetByID(ctx, inv.ItemID)
	if err == nil {
		row.Name = item.Name(lang)
		row.Category = item.Category
		row.ImageID = item.ImageID
		row.DetailPath = item.DetailPath()
	}

	for _, entry := range inv.Entries {
		row.Entries = append(row.Entries, domain.SummarizeEntry(entry, quote))
	}
	return row
}
