package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Account represents a user account in the domain layer.
// The market feature owns only the Market document stored on it.
type Account struct {
	ID     uuid.UUID
	Name   string
	Market Market
}

// Validate ensures the account adheres to domain rules
// Returns an error if validation fails
func (a *Account) Validate() error {
	if a.ID == uuid.Nil {
		return errors.New("account ID cannot be empty")
	}

	if a.Name == "" {
		return errors.New("account name cannot be empty")
	}

	// Every investment must be unique per item and carry valid entries
	seen := make(map[ItemID]bool, len(a.Market.Investments))
	for _, inv := range a.Market.Investments {
		if seen[inv.ItemID] {
			return errors.New("market must have at most one investment per item")
		}
		seen[inv.ItemID] = true

		if len(inv.Entries) == 0 {
			return errors.New("investment must have at least one entry")
		}
		for _, entry := range inv.Entries {
			if err := entry.Validate(); err != nil {
				return err
			}
		}
	}

	return nil
}
