package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/simaogato/marketfolio-backend/internal/domain"
)

// AccountRepository keeps accounts in-memory. Useful for tests or ephemeral runs.
// Values are cloned on the way in and out so callers never share state.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]domain.Account
}

var _ domain.AccountRepository = (*AccountRepository)(nil)

// NewAccountRepository creates an empty in-memory account repository
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: make(map[uuid.UUID]domain.Account)}
}

// GetByID retrieves an account by its ID
func (r *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, id)
	}
	return clone(account), nil
}

// Create creates a new account
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if account == nil {
		return errors.New("account is required")
	}
	if _, exists := r.accounts[account.ID]; exists {
		return fmt.Errorf("account %s already exists", account.ID)
	}
	r.accounts[account.ID] = *clone(*account)
	return nil
}

// UpdateMarket replaces the market document of an account
func (r *AccountRepository) UpdateMarket(ctx context.Context, accountID uuid.UUID, market domain.Market) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[accountID]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrAccountNotFound, accountID)
	}
	account.Market = market.Clone()
	r.accounts[accountID] = account
	return nil
}

func clone(a domain.Account) *domain.Account {
	cp := a
	cp.Market = a.Market.Clone()
	return &cp
}
