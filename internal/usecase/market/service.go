package market

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/marketfolio-backend/internal/domain"
)

const (
	// CreatedMessage is shown to the user after a new entry is recorded
	CreatedMessage = "Investment created! View it at the investments page."

	// celebrationIntensity is the strength of the effect played after a new entry
	celebrationIntensity = 2
)

// MarketService handles investment and wishlist operations on an account's market
type MarketService struct {
	AccountRepo domain.AccountRepository
	Catalog     domain.ItemCatalog
	Notifier    domain.Notifier
	Effects     domain.EffectTrigger

	locks  accountLocks
	modals *ModalStore
}

// NewMarketService creates a new MarketService instance
func NewMarketService(
	accountRepo domain.AccountRepository,
	catalog domain.ItemCatalog,
	notifier domain.Notifier,
	effects domain.EffectTrigger,
) *MarketService {
	return &MarketService{
		AccountRepo: accountRepo,
		Catalog:     catalog,
		Notifier:    notifier,
		Effects:     effects,
		modals:      NewModalStore(),
	}
}

// GetMarket returns the market document of an account
func (s *MarketService) GetMarket(ctx context.Context, accountID uuid.UUID) (domain.Market, error) {
	account, err := s.AccountRepo.GetByID(ctx, accountID)
	if err != nil {
		return domain.Market{}, err
	}
	return account.Market, nil
}

// CatalogItem is a catalog entry seen from one account's market
type CatalogItem struct {
	Item       *domain.Item
	Wishlisted bool
	Invested   bool
}

// ListCatalog returns every catalog item flagged with the account's wishlist and investments
func (s *MarketService) ListCatalog(ctx context.Context, accountID uuid.UUID) ([]CatalogItem, error) {
	market, err := s.GetMarket(ctx, accountID)
	if err != nil {
		return nil, err
	}

	items, err := s.Catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog: %w", err)
	}

	result := make([]CatalogItem, 0, len(items))
	for _, item := range items {
		_, invested := market.Investment(item.ID)
		result = append(result, CatalogItem{
			Item:       item,
			Wishlisted: market.InWishlist(item.ID),
			Invested:   invested,
		})
	}
	return result, nil
}

// CreateAccount opens an account with an empty market
func (s *MarketService) CreateAccount(ctx context.Context, name string) (*domain.Account, error) {
	account := &domain.Account{
		ID:   uuid.New(),
		Name: name,
		Market: domain.Market{
			Investments: []domain.Investment{},
			Wishlist:    []domain.ItemID{},
		},
	}
	if err := account.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidAccount, err)
	}

	if err := s.AccountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return account, nil
}

// AddEntry records a new purchase lot for an item
// Logic:
//  1. Verify the item exists in the catalog
//  2. Assign an entry ID if the caller did not provide one
//  3. Append to the item's investment (creating it if needed) and persist the market
//  4. Celebrate, notify, and close the modal
func (s *MarketService) AddEntry(ctx context.Context, accountID uuid.UUID, itemID domain.ItemID, entry domain.InvestmentEntry) (domain.InvestmentEntry, error) {
	if err := entry.Validate(); err != nil {
		return domain.InvestmentEntry{}, err
	}

	if _, err := s.Catalog.GetByID(ctx, itemID); err != nil {
		return domain.InvestmentEntry{}, err
	}

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	err := s.mutate(ctx, accountID, func(m domain.Market) (domain.Market, error) {
		return m.AddEntry(itemID, entry)
	})
	if err != nil {
		return domain.InvestmentEntry{}, err
	}

	s.Effects.Celebrate(ctx, accountID, celebrationIntensity)
	s.Notifier.Notify(ctx, accountID, CreatedMessage)
	s.modals.Set(accountID, domain.ModalClosed{})

	return entry, nil
}

// EditEntry replaces an existing purchase lot, matched by entry ID
func (s *MarketService) EditEntry(ctx context.Context, accountID uuid.UUID, itemID domain.ItemID, entry domain.InvestmentEntry) error {
	err := s.mutate(ctx, accountID, func(m domain.Market) (domain.Market, error) {
		return m.EditEntry(itemID, entry)
	})
	if err != nil {
		return err
	}

	s.modals.Set(accountID, domain.ModalClosed{})
	return nil
}

// RemoveEntry deletes a purchase lot
// Removing the last lot of an item removes the whole investment
func (s *MarketService) RemoveEntry(ctx context.Context, accountID uuid.UUID, itemID domain.ItemID, entryID string) error {
	return s.mutate(ctx, accountID, func(m domain.Market) (domain.Market, error) {
		return m.RemoveEntry(itemID, entryID)
	})
}

// ToggleWishlist adds or removes an item from the wishlist
// Returns true if the item is on the wishlist afterwards
func (s *MarketService) ToggleWishlist(ctx context.Context, accountID uuid.UUID, itemID domain.ItemID) (bool, error) {
	var inWishlist bool
	err := s.mutate(ctx, accountID, func(m domain.Market) (domain.Market, error) {
		var updated domain.Market
		updated, inWishlist = m.ToggleWishlist(itemID)
		return updated, nil
	})
	return inWishlist, err
}

// mutate runs a read-modify-write of the market document under the account lock
func (s *MarketService) mutate(ctx context.Context, accountID uuid.UUID, fn func(domain.Market) (domain.Market, error)) error {
	unlock := s.locks.lock(accountID)
	defer unlock()

	account, err := s.AccountRepo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}

	updated, err := fn(account.Market)
	if err != nil {
		return err
	}

	if err := s.AccountRepo.UpdateMarket(ctx, accountID, updated); err != nil {
		return fmt.Errorf("failed to update market: %w", err)
	}
	return nil
}

// OpenAddModal opens the modal to add a new entry to itemID
func (s *MarketService) OpenAddModal(ctx context.Context, accountID uuid.UUID, itemID domain.ItemID) (domain.ModalState, error) {
	if _, err := s.AccountRepo.GetByID(ctx, accountID); err != nil {
		return nil, err
	}
	if _, err := s.Catalog.GetByID(ctx, itemID); err != nil {
		return nil, err
	}

	state := domain.ModalAdding{ItemID: itemID}
	s.modals.Set(accountID, state)
	return state, nil
}

// OpenEditModal opens the modal prefilled with an existing entry
func (s *MarketService) OpenEditModal(ctx context.Context, accountID uuid.UUID, itemID domain.ItemID, entryID string) (domain.ModalState, error) {
	market, err := s.GetMarket(ctx, accountID)
	if err != nil {
		return nil, err
	}

	inv, ok := market.Investment(itemID)
	if !ok {
		return nil, fmt.Errorf("%w: item %d", domain.ErrInvestmentNotFound, itemID)
	}
	entry, ok := inv.Entry(entryID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrEntryNotFound, entryID)
	}

	state := domain.ModalEditing{ItemID: itemID, Entry: entry}
	s.modals.Set(accountID, state)
	return state, nil
}

// CloseModal closes the modal without saving
func (s *MarketService) CloseModal(accountID uuid.UUID) {
	s.modals.Set(accountID, domain.ModalClosed{})
}

// Modal returns the current modal state of an account
func (s *MarketService) Modal(accountID uuid.UUID) domain.ModalState {
	return s.modals.Get(accountID)
}

// SubmitModal saves the values typed in the modal
// Adding records a new entry, Editing replaces the prefilled entry (keeping its ID)
func (s *MarketService) SubmitModal(ctx context.Context, accountID uuid.UUID, boughtPrice, quantity decimal.Decimal) (domain.InvestmentEntry, error) {
	switch state := s.modals.Get(accountID).(type) {
	case domain.ModalAdding:
		return s.AddEntry(ctx, accountID, state.ItemID, domain.InvestmentEntry{
			BoughtPrice: boughtPrice,
			Quantity:    quantity,
		})
	case domain.ModalEditing:
		entry := domain.InvestmentEntry{
			ID:          state.Entry.ID,
			BoughtPrice: boughtPrice,
			Quantity:    quantity,
		}
		if err := s.EditEntry(ctx, accountID, state.ItemID, entry); err != nil {
			return domain.InvestmentEntry{}, err
		}
		return entry, nil
	default:
		return domain.InvestmentEntry{}, domain.ErrModalClosed
	}
}

// accountLocks hands out one mutex per account.
// An entry lives only while some caller holds or waits for it.
type accountLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*accountLock
}

type accountLock struct {
	mu   sync.Mutex
	refs int
}

func (l *accountLocks) lock(accountID uuid.UUID) (unlock func()) {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[uuid.UUID]*accountLock)
	}
	al, ok := l.locks[accountID]
	if !ok {
		al = &accountLock{}
		l.locks[accountID] = al
	}
	al.refs++
	l.mu.Unlock()

	al.mu.Lock()
	return func() {
		al.mu.Unlock()

		l.mu.Lock()
		al.refs--
		if al.refs == 0 {
			delete(l.locks, accountID)
		}
		l.mu.Unlock()
	}
}

// size returns the number of live lock entries
func (l *accountLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
