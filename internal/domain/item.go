package domain

import (
	"errors"
	"fmt"
)

// DefaultLanguage is used when an item has no name in the requested language
const DefaultLanguage = "en"

// Item is a read-only catalog entry for a tradeable item
type Item struct {
	ID       ItemID
	Names    map[string]string // Localized display names keyed by language code
	Slug     string
	Category string
	ImageID  string
}

// Validate ensures the item adheres to domain rules
func (it *Item) Validate() error {
	if it.ID <= 0 {
		return errors.New("item ID must be positive")
	}
	if it.Slug == "" {
		return errors.New("item slug cannot be empty")
	}
	if it.Names[DefaultLanguage] == "" {
		return fmt.Errorf("item %d must have a name for language %q", it.ID, DefaultLanguage)
	}
	return nil
}

// Name returns the display name for lang, falling back to DefaultLanguage
func (it *Item) Name(lang string) string {
	if name, ok := it.Names[lang]; ok && name != "" {
		return name
	}
	return it.Names[DefaultLanguage]
}

// DetailPath returns the detail page path of the item
func (it *Item) DetailPath() string {
	return "/items/" + it.Slug
}
