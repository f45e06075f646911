package seeder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/simaogato/marketfolio-backend/internal/domain"
)

// catalogRecord mirrors one node of the exported item catalog file
type catalogRecord struct {
	ID       int64             `json:"i"`
	Names    map[string]string `json:"n"`
	Slug     string            `json:"slug"`
	ImageID  string            `json:"_id"`
	Category string            `json:"category"`
}

// CatalogSeeder handles seeding of the item catalog
type CatalogSeeder struct {
	catalog domain.ItemCatalog
}

// NewCatalogSeeder creates a new CatalogSeeder instance
func NewCatalogSeeder(catalog domain.ItemCatalog) *CatalogSeeder {
	return &CatalogSeeder{
		catalog: catalog,
	}
}

// LoadCatalogFile reads items from a JSON array file
func LoadCatalogFile(path string) ([]*domain.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var records []catalogRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode catalog file: %w", err)
	}

	items := make([]*domain.Item, 0, len(records))
	for _, r := range records {
		items = append(items, &domain.Item{
			ID:       domain.ItemID(r.ID),
			Names:    r.Names,
			Slug:     r.Slug,
			Category: r.Category,
			ImageID:  r.ImageID,
		})
	}
	return items, nil
}

// Seed ensures every given item exists in the catalog
// Items already present are left untouched
// Returns the number of items created
func (s *CatalogSeeder) Seed(ctx context.Context, items []*domain.Item) (int, error) {
	created := 0
	for _, item := range items {
		// Try to get the item by ID; only a missing item is created
		_, err := s.catalog.GetByID(ctx, item.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrItemNotFound) {
			return created, fmt.Errorf("failed to look up item %d: %w", item.ID, err)
		}

		// Validate before creating
		if err := item.Validate(); err != nil {
			return created, err
		}

		if err := s.catalog.Upsert(ctx, item); err != nil {
			return created, err
		}
		created++
	}

	return created, nil
}
