package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/simaogato/marketfolio-backend/internal/domain"
)

// ItemCatalog keeps catalog items in-memory
type ItemCatalog struct {
	mu    sync.RWMutex
	items map[domain.ItemID]domain.Item
}

var _ domain.ItemCatalog = (*ItemCatalog)(nil)

// NewItemCatalog creates an in-memory catalog holding the given items
func NewItemCatalog(items ...*domain.Item) *ItemCatalog {
	c := &ItemCatalog{items: make(map[domain.ItemID]domain.Item, len(items))}
	for _, item := range items {
		c.items[item.ID] = cloneItem(*item)
	}
	return c
}

// GetByID retrieves an item by its ID
func (c *ItemCatalog) GetByID(ctx context.Context, id domain.ItemID) (*domain.Item, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrItemNotFound, id)
	}
	cp := cloneItem(item)
	return &cp, nil
}

// List retrieves every item ordered by ID
func (c *ItemCatalog) List(ctx context.Context) ([]*domain.Item, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]*domain.Item, 0, len(c.items))
	for _, item := range c.items {
		cp := cloneItem(item)
		items = append(items, &cp)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// Upsert creates or replaces an item
func (c *ItemCatalog) Upsert(ctx context.Context, item *domain.Item) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if item == nil {
		return errors.New("item is required")
	}
	c.items[item.ID] = cloneItem(*item)
	return nil
}

func cloneItem(item domain.Item) domain.Item {
	names := make(map[string]string, len(item.Names))
	for lang, name := range item.Names {
		names[lang] = name
	}
	item.Names = names
	return item
}
