package pricefeed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/simaogato/marketfolio-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPriceFeed is a mock implementation of PriceFeed for testing
type MockPriceFeed struct {
	mock.Mock
}

func (m *MockPriceFeed) GetPrice(ctx context.Context, itemID domain.ItemID) (domain.PriceQuote, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(domain.PriceQuote), args.Error(1)
}

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestCachedFeed_MissThenHit(t *testing.T) {
	ctx := context.Background()
	mr, client := newRedis(t)
	next := new(MockPriceFeed)
	next.On("GetPrice", ctx, domain.ItemID(5)).
		Return(domain.PriceQuote{Min: decimal.NewFromInt(150), Change: decimal.NewFromInt(3)}, nil).Once()

	feed := NewCachedFeed(client, next, time.Minute)

	first, err := feed.GetPrice(ctx, 5)
	require.NoError(t, err)
	second, err := feed.GetPrice(ctx, 5)
	require.NoError(t, err)

	assert.Equal(t, "150", first.Min.String())
	assert.Equal(t, "150", second.Min.String())
	assert.Equal(t, "3", second.Change.String())
	assert.True(t, mr.Exists("market:price:5"))
	next.AssertNumberOfCalls(t, "GetPrice", 1)
}

func TestCachedFeed_Expiry(t *testing.T) {
	ctx := context.Background()
	mr, client := newRedis(t)
	next := new(MockPriceFeed)
	next.On("GetPrice", ctx, domain.ItemID(5)).Return(domain.PriceQuote{Min: decimal.NewFromInt(150)}, nil)

	feed := NewCachedFeed(client, next, time.Minute)

	_, err := feed.GetPrice(ctx, 5)
	require.NoError(t, err)
	mr.FastForward(2 * time.Minute)
	_, err = feed.GetPrice(ctx, 5)
	require.NoError(t, err)

	next.AssertNumberOfCalls(t, "GetPrice", 2)
}

func TestCachedFeed_UpstreamError(t *testing.T) {
	ctx := context.Background()
	mr, client := newRedis(t)
	next := new(MockPriceFeed)
	next.On("GetPrice", ctx, domain.ItemID(6)).Return(domain.PriceQuote{}, errors.New("feed down"))

	feed := NewCachedFeed(client, next, time.Minute)

	_, err := feed.GetPrice(ctx, 6)

	assert.Error(t, err)
	assert.False(t, mr.Exists("market:price:6"))
}

func TestCachedFeed_RedisDownFallsThrough(t *testing.T) {
	ctx := context.Background()
	mr, client := newRedis(t)
	mr.Close()

	next := new(MockPriceFeed)
	next.On("GetPrice", ctx, domain.ItemID(5)).Return(domain.PriceQuote{Min: decimal.NewFromInt(99)}, nil)

	feed := NewCachedFeed(client, next, time.Minute)

	quote, err := feed.GetPrice(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, "99", quote.Min.String())
}

func TestCachedFeed_CorruptEntry(t *testing.T) {
	ctx := context.Background()
	mr, client := newRedis(t)
	require.NoError(t, mr.Set("market:price:5", "garbage"))

	next := new(MockPriceFeed)
	next.On("GetPrice", ctx, domain.ItemID(5)).Return(domain.PriceQuote{Min: decimal.NewFromInt(42)}, nil)

	feed := NewCachedFeed(client, next, time.Minute)

	quote, err := feed.GetPrice(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, "42", quote.Min.String())
	next.AssertExpectations(t)
}
