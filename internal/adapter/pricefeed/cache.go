package pricefeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/simaogato/marketfolio-backend/internal/domain"
)

const keyPrefix = "market:price:"

// CachedFeed serves quotes from Redis and falls back to the wrapped feed on a miss.
// Redis errors are logged and never fail a lookup.
type CachedFeed struct {
	client *redis.Client
	next   domain.PriceFeed
	ttl    time.Duration
}

var _ domain.PriceFeed = (*CachedFeed)(nil)

// NewCachedFeed wraps next with a Redis cache holding quotes for ttl
func NewCachedFeed(client *redis.Client, next domain.PriceFeed, ttl time.Duration) *CachedFeed {
	return &CachedFeed{client: client, next: next, ttl: ttl}
}

// GetPrice returns the cached quote of an item, fetching it on a miss
func (c *CachedFeed) GetPrice(ctx context.Context, itemID domain.ItemID) (domain.PriceQuote, error) {
	key := cacheKey(itemID)

	cached, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var body quoteResponse
		if err := json.Unmarshal(cached, &body); err == nil {
			return domain.PriceQuote{Min: body.Min, Change: body.Change}, nil
		}
		log.Printf("price cache: discarding corrupt entry %s", key)
	case !errors.Is(err, redis.Nil):
		log.Printf("price cache: get %s: %v", key, err)
	}

	quote, err := c.next.GetPrice(ctx, itemID)
	if err != nil {
		return domain.PriceQuote{}, err
	}

	data, err := json.Marshal(quoteResponse{Min: quote.Min, Change: quote.Change})
	if err == nil {
		if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
			log.Printf("price cache: set %s: %v", key, err)
		}
	}

	return quote, nil
}

func cacheKey(itemID domain.ItemID) string {
	return fmt.Sprintf("%s%d", keyPrefix, itemID)
}
