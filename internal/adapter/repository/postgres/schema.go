package postgres

import (
	"context"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS accounts (
	id     UUID PRIMARY KEY,
	name   TEXT NOT NULL,
	market JSONB NOT NULL DEFAULT '{"investments": [], "wishlist": []}'
);

CREATE TABLE IF NOT EXISTS items (
	id       BIGINT PRIMARY KEY,
	slug     TEXT NOT NULL UNIQUE,
	category TEXT NOT NULL DEFAULT '',
	image_id TEXT NOT NULL DEFAULT '',
	names    JSONB NOT NULL
);
`

// Migrate creates the tables used by the repositories if they do not exist
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
