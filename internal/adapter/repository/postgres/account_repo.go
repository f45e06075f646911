package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/simaogato/marketfolio-backend/internal/domain"
)

// accountRepository implements domain.AccountRepository
type accountRepository struct {
	db *DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *DB) domain.AccountRepository {
	return &accountRepository{db: db}
}

// GetByID retrieves an account by its ID
func (r *accountRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	query := `
		SELECT id, name, market
		FROM accounts
		WHERE id = $1
	`

	var account domain.Account
	var marketJSON []byte

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&account.ID,
		&account.Name,
		&marketJSON,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, id)
		}
		return nil, fmt.Errorf("failed to get account by ID: %w", err)
	}

	market, err := decodeMarket(marketJSON)
	if err != nil {
		return nil, err
	}
	account.Market = market

	return &account, nil
}

// Create creates a new account
func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	query := `
		INSERT INTO accounts (id, name, market)
		VALUES ($1, $2, $3)
	`

	marketJSON, err := encodeMarket(account.Market)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query,
		account.ID,
		account.Name,
		string(marketJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

// UpdateMarket replaces the market document of an account
func (r *accountRepository) UpdateMarket(ctx context.Context, accountID uuid.UUID, market domain.Market) error {
	query := `
		UPDATE accounts
		SET market = $2
		WHERE id = $1
	`

	marketJSON, err := encodeMarket(market)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, accountID, string(marketJSON))
	if err != nil {
		return fmt.Errorf("failed to update market: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrAccountNotFound, accountID)
	}

	return nil
}
