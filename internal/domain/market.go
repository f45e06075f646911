package domain

import "fmt"

// Market is the market document persisted on an account.
// Operations never mutate the receiver: each returns a new Market that
// replaces the stored one wholesale.
type Market struct {
	Investments []Investment
	Wishlist    []ItemID
}

// Clone returns a deep copy of the market
func (m Market) Clone() Market {
	out := Market{
		Investments: make([]Investment, len(m.Investments)),
		Wishlist:    make([]ItemID, len(m.Wishlist)),
	}
	for i, inv := range m.Investments {
		out.Investments[i] = inv.clone()
	}
	copy(out.Wishlist, m.Wishlist)
	return out
}

// Investment returns the investment held for itemID
func (m Market) Investment(itemID ItemID) (Investment, bool) {
	idx := m.indexOf(itemID)
	if idx == -1 {
		return Investment{}, false
	}
	return m.Investments[idx], true
}

func (m Market) indexOf(itemID ItemID) int {
	for i, inv := range m.Investments {
		if inv.ItemID == itemID {
			return i
		}
	}
	return -1
}

// AddEntry appends entry to the investment for itemID, creating the
// investment when this is its first entry.
func (m Market) AddEntry(itemID ItemID, entry InvestmentEntry) (Market, error) {
	if err := entry.Validate(); err != nil {
		return m, err
	}

	out := m.Clone()
	idx := out.indexOf(itemID)
	if idx == -1 {
		out.Investments = append(out.Investments, Investment{
			ItemID:  itemID,
			Entries: []InvestmentEntry{entry},
		})
		return out, nil
	}

	if _, exists := out.Investments[idx].Entry(entry.ID); exists {
		return m, fmt.Errorf("%w: %s", ErrDuplicateEntry, entry.ID)
	}
	out.Investments[idx].Entries = append(out.Investments[idx].Entries, entry)
	return out, nil
}

// EditEntry replaces the entry whose ID matches updated.ID.
// Sibling entries are left untouched.
func (m Market) EditEntry(itemID ItemID, updated InvestmentEntry) (Market, error) {
	if err := updated.Validate(); err != nil {
		return m, err
	}

	idx := m.indexOf(itemID)
	if idx == -1 {
		return m, fmt.Errorf("%w: item %d", ErrInvestmentNotFound, itemID)
	}

	out := m.Clone()
	entries := out.Investments[idx].Entries
	for i := range entries {
		if entries[i].ID == updated.ID {
			entries[i] = updated
			return out, nil
		}
	}
	return m, fmt.Errorf("%w: %s", ErrEntryNotFound, updated.ID)
}

// RemoveEntry deletes one entry. Removing the sole remaining entry removes
// the whole investment from the market.
func (m Market) RemoveEntry(itemID ItemID, entryID string) (Market, error) {
	idx := m.indexOf(itemID)
	if idx == -1 {
		return m, fmt.Errorf("%w: item %d", ErrInvestmentNotFound, itemID)
	}
	if _, ok := m.Investments[idx].Entry(entryID); !ok {
		return m, fmt.Errorf("%w: %s", ErrEntryNotFound, entryID)
	}

	out := m.Clone()
	if len(out.Investments[idx].Entries) == 1 {
		out.Investments = append(out.Investments[:idx], out.Investments[idx+1:]...)
		return out, nil
	}

	remaining := make([]InvestmentEntry, 0, len(out.Investments[idx].Entries)-1)
	for _, entry := range out.Investments[idx].Entries {
		if entry.ID != entryID {
			remaining = append(remaining, entry)
		}
	}
	out.Investments[idx].Entries = remaining
	return out, nil
}

// InWishlist reports whether itemID is wishlisted
func (m Market) InWishlist(itemID ItemID) bool {
	for _, id := range m.Wishlist {
		if id == itemID {
			return true
		}
	}
	return false
}

// ToggleWishlist adds itemID to the wishlist if absent, otherwise removes it.
// The returned bool reports whether the item is wishlisted afterwards.
func (m Market) ToggleWishlist(itemID ItemID) (Market, bool) {
	out := m.Clone()
	if !m.InWishlist(itemID) {
		out.Wishlist = append(out.Wishlist, itemID)
		return out, true
	}

	filtered := make([]ItemID, 0, len(out.Wishlist))
	for _, id := range out.Wishlist {
		if id != itemID {
			filtered = append(filtered, id)
		}
	}
	out.Wishlist = filtered
	return out, false
}
