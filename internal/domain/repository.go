package domain

import (
	"context"

	"github.com/google/uuid"
)

// AccountRepository defines the interface for account persistence operations
type AccountRepository interface {
	// GetByID retrieves an account by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*Account, error)

	// Create creates a new account
	Create(ctx context.Context, account *Account) error

	// UpdateMarket replaces the whole market document of an account
	// This is a full replace of the market key, not a deep merge
	UpdateMarket(ctx context.Context, accountID uuid.UUID, market Market) error
}

// ItemCatalog defines the interface for the read-mostly item catalog
type ItemCatalog interface {
	// GetByID retrieves an item by its ID
	GetByID(ctx context.Context, id ItemID) (*Item, error)

	// List retrieves every item ordered by ID
	List(ctx context.Context) ([]*Item, error)

	// Upsert creates or replaces an item
	Upsert(ctx context.Context, item *Item) error
}

// PriceFeed delivers live prices per item
type PriceFeed interface {
	// GetPrice returns the current quote for an item
	GetPrice(ctx context.Context, itemID ItemID) (PriceQuote, error)
}

// Notifier shows a message to the user. Fire-and-forget.
type Notifier interface {
	Notify(ctx context.Context, accountID uuid.UUID, message string)
}

// EffectTrigger plays a celebratory visual effect. Fire-and-forget.
type EffectTrigger interface {
	Celebrate(ctx context.Context, accountID uuid.UUID, intensity int)
}
