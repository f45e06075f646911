package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ItemID identifies a tradeable item in the catalog
type ItemID int64

// InvestmentEntry represents one purchase lot of an item
type InvestmentEntry struct {
	ID          string
	BoughtPrice decimal.Decimal // Price paid per unit
	Quantity    decimal.Decimal
}

// Investment aggregates every purchase lot of a single item
// Invariant: at most one Investment per ItemID inside a Market
type Investment struct {
	ItemID  ItemID
	Entries []InvestmentEntry
}

// Validate ensures the entry adheres to domain rules
// Returns an error wrapping ErrInvalidEntry if validation fails
func (e InvestmentEntry) Validate() error {
	if e.BoughtPrice.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: bought price must be positive", ErrInvalidEntry)
	}

	if e.Quantity.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidEntry)
	}

	return nil
}

// Entry returns the entry with the given ID
func (inv Investment) Entry(entryID string) (InvestmentEntry, bool) {
	for _, entry := range inv.Entries {
		if entry.ID == entryID {
			return entry, true
		}
	}
	return InvestmentEntry{}, false
}

func (inv Investment) clone() Investment {
	entries := make([]InvestmentEntry, len(inv.Entries))
	copy(entries, inv.Entries)
	return Investment{ItemID: inv.ItemID, Entries: entries}
}
