package investment

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/marketfolio-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAccountRepository is a mock implementation of AccountRepository for testing
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateMarket(ctx context.Context, accountID uuid.UUID, market domain.Market) error {
	args := m.Called(ctx, accountID, market)
	return args.Error(0)
}

// MockItemCatalog is a mock implementation of ItemCatalog for testing
type MockItemCatalog struct {
	mock.Mock
}

func (m *MockItemCatalog) GetByID(ctx context.Context, id domain.ItemID) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemCatalog) List(ctx context.Context) ([]*domain.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Item), args.Error(1)
}

func (m *MockItemCatalog) Upsert(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

// MockPriceFeed is a mock implementation of PriceFeed for testing
type MockPriceFeed struct {
	mock.Mock
}

func (m *MockPriceFeed) GetPrice(ctx context.Context, itemID domain.ItemID) (domain.PriceQuote, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(domain.PriceQuote), args.Error(1)
}

func entry(id string, price, qty int64) domain.InvestmentEntry {
	return domain.InvestmentEntry{ID: id, BoughtPrice: decimal.NewFromInt(price), Quantity: decimal.NewFromInt(qty)}
}

func TestListInvestmentRows(t *testing.T) {
	ctx := context.Background()
	mockAccountRepo := new(MockAccountRepository)
	mockCatalog := new(MockItemCatalog)
	mockPriceFeed := new(MockPriceFeed)

	service := NewInvestmentService(mockAccountRepo, mockCatalog, mockPriceFeed)

	// Setup: item 5 bought twice, item 6 with no catalog entry and a failing feed
	accountID := uuid.New()
	account := &domain.Account{ID: accountID, Name: "Ash", Market: domain.Market{
		Investments: []domain.Investment{
			{ItemID: 5, Entries: []domain.InvestmentEntry{entry("a", 100, 2), entry("b", 200, 1)}},
			{ItemID: 6, Entries: []domain.InvestmentEntry{entry("c", 10, 10)}},
		},
	}}
	item := &domain.Item{
		ID:       5,
		Names:    map[string]string{"en": "Leftovers", "fr": "Restes"},
		Slug:     "leftovers",
		Category: "items",
		ImageID:  "234",
	}

	mockAccountRepo.On("GetByID", ctx, accountID).Return(account, nil)
	mockCatalog.On("GetByID", ctx, domain.ItemID(5)).Return(item, nil)
	mockCatalog.On("GetByID", ctx, domain.ItemID(6)).Return(nil, domain.ErrItemNotFound)
	mockPriceFeed.On("GetPrice", ctx, domain.ItemID(5)).Return(domain.PriceQuote{Min: decimal.NewFromInt(150)}, nil)
	mockPriceFeed.On("GetPrice", ctx, domain.ItemID(6)).Return(domain.PriceQuote{}, errors.New("feed timeout"))

	// Execute
	rows, err := service.ListInvestmentRows(ctx, accountID, "fr")

	// Assert
	require.NoError(t, err)
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, "Restes", first.Name)
	assert.Equal(t, "/items/leftovers", first.DetailPath)
	assert.Equal(t, "items", first.Category)
	assert.Equal(t, "400", first.Summary.BoughtTotal.String())
	assert.Equal(t, "133.33", first.Summary.AvgBoughtPrice.Decimal.String())
	assert.Equal(t, "50", first.Summary.GainTotal.Decimal.String())
	assert.Equal(t, "12.5", first.Summary.GainPercent.Decimal.String())
	require.Len(t, first.Entries, 2)
	assert.Equal(t, "100", first.Entries[0].GainTotal.Decimal.String())
	assert.Equal(t, "-50", first.Entries[1].GainTotal.Decimal.String())

	second := rows[1]
	assert.Equal(t, "Item #6", second.Name)
	assert.True(t, second.Quote.IsLoading)
	assert.False(t, second.Summary.GainTotal.Valid)
	assert.Equal(t, "100", second.Summary.BoughtTotal.String())

	mockAccountRepo.AssertExpectations(t)
	mockPriceFeed.AssertExpectations(t)
}

func TestGetInvestmentRow_NotFound(t *testing.T) {
	ctx := context.Background()
	mockAccountRepo := new(MockAccountRepository)
	mockCatalog := new(MockItemCatalog)
	mockPriceFeed := new(MockPriceFeed)

	service := NewInvestmentService(mockAccountRepo, mockCatalog, mockPriceFeed)

	accountID := uuid.New()
	mockAccountRepo.On("GetByID", ctx, accountID).Return(&domain.Account{ID: accountID, Name: "Ash"}, nil)

	row, err := service.GetInvestmentRow(ctx, accountID, 5, "en")

	assert.Nil(t, row)
	assert.ErrorIs(t, err, domain.ErrInvestmentNotFound)
	mockPriceFeed.AssertNotCalled(t, "GetPrice")
}

func TestGetInvestmentRow_AccountNotFound(t *testing.T) {
	ctx := context.Background()
	mockAccountRepo := new(MockAccountRepository)

	service := NewInvestmentService(mockAccountRepo, new(MockItemCatalog), new(MockPriceFeed))

	accountID := uuid.New()
	mockAccountRepo.On("GetByID", ctx, accountID).Return(nil, domain.ErrAccountNotFound)

	_, err := service.GetInvestmentRow(ctx, accountID, 5, "en")

	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount   decimal.Decimal
		expected string
	}{
		{decimal.NewFromInt(400), "$400"},
		{decimal.NewFromInt(1234567), "$1,234,567"},
		{decimal.RequireFromString("12345.9"), "$12,345"},
		{decimal.NewFromInt(-50), "-$50"},
		{decimal.Zero, "$0"},
		{decimal.NewFromInt(math.MaxInt64), "$9,223,372,036,854,775,807"},
		{decimal.RequireFromString("10000000000000000000"), "$10000000000000000000"},
		{decimal.RequireFromString("-10000000000000000000.5"), "-$10000000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatAmount(tt.amount))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "12.5%", FormatPercent(decimal.RequireFromString("12.5")))
	assert.Equal(t, "-10.0%", FormatPercent(decimal.NewFromInt(-10)))
}
