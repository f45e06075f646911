package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/simaogato/marketfolio-backend/internal/domain"
)

// itemRepository implements domain.ItemCatalog
type itemRepository struct {
	db *DB
}

// NewItemRepository creates a new item catalog repository
func NewItemRepository(db *DB) domain.ItemCatalog {
	return &itemRepository{db: db}
}

// GetByID retrieves an item by its ID
func (r *itemRepository) GetByID(ctx context.Context, id domain.ItemID) (*domain.Item, error) {
	query := `
		SELECT id, slug, category, image_id, names
		FROM items
		WHERE id = $1
	`

	item, err := scanItem(r.db.QueryRowContext(ctx, query, int64(id)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", domain.ErrItemNotFound, id)
		}
		return nil, fmt.Errorf("failed to get item by ID: %w", err)
	}
	return item, nil
}

// List retrieves every item ordered by ID
func (r *itemRepository) List(ctx context.Context) ([]*domain.Item, error) {
	query := `
		SELECT id, slug, category, image_id, names
		FROM items
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	return items, nil
}

// Upsert creates or replaces an item
func (r *itemRepository) Upsert(ctx context.Context, item *domain.Item) error {
	query := `
		INSERT INTO items (id, slug, category, image_id, names)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET slug = EXCLUDED.slug,
			category = EXCLUDED.category,
			image_id = EXCLUDED.image_id,
			names = EXCLUDED.names
	`

	namesJSON, err := json.Marshal(item.Names)
	if err != nil {
		return fmt.Errorf("failed to encode item names: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query,
		int64(item.ID),
		item.Slug,
		item.Category,
		item.ImageID,
		string(namesJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert item: %w", err)
	}

	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row rowScanner) (*domain.Item, error) {
	var item domain.Item
	var id int64
	var namesJSON []byte

	if err := row.Scan(&id, &item.Slug, &item.Category, &item.ImageID, &namesJSON); err != nil {
		return nil, err
	}
	item.ID = domain.ItemID(id)

	if err := json.Unmarshal(namesJSON, &item.Names); err != nil {
		return nil, fmt.Errorf("failed to decode item names: %w", err)
	}
	return &item, nil
}
