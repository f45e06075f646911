package pricefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/marketfolio-backend/internal/domain"
)

// quoteResponse is the body returned by the price service
type quoteResponse struct {
	Min    decimal.Decimal `json:"min"`
	Change decimal.Decimal `json:"change"`
}

// HTTPFeed fetches live quotes from the market price service
type HTTPFeed struct {
	baseURL string
	client  *http.Client
}

var _ domain.PriceFeed = (*HTTPFeed)(nil)

// NewHTTPFeed creates a feed reading from baseURL, e.g. "https://prices.example.com"
func NewHTTPFeed(baseURL string, timeout time.Duration) *HTTPFeed {
	return &HTTPFeed{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// GetPrice returns the current quote of an item
func (f *HTTPFeed) GetPrice(ctx context.Context, itemID domain.ItemID) (domain.PriceQuote, error) {
	url := fmt.Sprintf("%s/items/%d/price", f.baseURL, itemID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.PriceQuote{}, fmt.Errorf("failed to build price request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return domain.PriceQuote{}, fmt.Errorf("failed to fetch price for item %d: %w", itemID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.PriceQuote{}, fmt.Errorf("%w: no price for item %d", domain.ErrItemNotFound, itemID)
	}
	if resp.StatusCode != http.StatusOK {
		return domain.PriceQuote{}, fmt.Errorf("price service returned %s for item %d", resp.Status, itemID)
	}

	var body quoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.PriceQuote{}, fmt.Errorf("failed to decode price for item %d: %w", itemID, err)
	}

	return domain.PriceQuote{Min: body.Min, Change: body.Change}, nil
}
