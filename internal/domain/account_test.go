package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAccount_Validate(t *testing.T) {
	tests := []struct {
		name    string
		account Account
		wantErr bool
		errMsg  string
	}{
		{
			name:    "Account with empty market should pass",
			account: Account{ID: uuid.New(), Name: "Ash"},
			wantErr: false,
		},
		{
			name:    "Account without ID should fail",
			account: Account{Name: "Ash"},
			wantErr: true,
			errMsg:  "account ID cannot be empty",
		},
		{
			name:    "Account without name should fail",
			account: Account{ID: uuid.New()},
			wantErr: true,
			errMsg:  "account name cannot be empty",
		},
		{
			name: "Duplicate investment per item should fail",
			account: Account{
				ID:   uuid.New(),
				Name: "Ash",
				Market: Market{Investments: []Investment{
					{ItemID: 1, Entries: []InvestmentEntry{entry("a", 1, 1)}},
					{ItemID: 1, Entries: []InvestmentEntry{entry("b", 1, 1)}},
				}},
			},
			wantErr: true,
			errMsg:  "at most one investment per item",
		},
		{
			name: "Investment without entries should fail",
			account: Account{
				ID:     uuid.New(),
				Name:   "Ash",
				Market: Market{Investments: []Investment{{ItemID: 1}}},
			},
			wantErr: true,
			errMsg:  "at least one entry",
		},
		{
			name: "Invalid entry should fail",
			account: Account{
				ID:     uuid.New(),
				Name:   "Ash",
				Market: Market{Investments: []Investment{{ItemID: 1, Entries: []InvestmentEntry{entry("a", 0, 1)}}}},
			},
			wantErr: true,
			errMsg:  "bought price must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.account.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestItem_NameAndPath(t *testing.T) {
	item := Item{
		ID:    12,
		Names: map[string]string{"en": "Leftovers", "de": "Überreste", "fr": ""},
		Slug:  "leftovers",
	}

	assert.Equal(t, "Überreste", item.Name("de"))
	assert.Equal(t, "Leftovers", item.Name("fr")) // empty translation falls back
	assert.Equal(t, "Leftovers", item.Name("cn"))
	assert.Equal(t, "/items/leftovers", item.DetailPath())
	assert.NoError(t, item.Validate())

	item.Names = map[string]string{"de": "Überreste"}
	assert.Error(t, item.Validate())
}
