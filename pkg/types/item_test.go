package types

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarketItemMarkSold(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		item    MarketItem
		buyer   Address
		wantErr error
	}{
		{
			name: "open item sells once",
			item: MarketItem{
				ItemID: 1,
				Seller: "alice",
				Price:  decimal.NewFromInt(1),
			},
			buyer: "bob",
		},
		{
			name: "sold item rejects a second sale",
			item: MarketItem{
				ItemID: 2,
				Seller: "alice",
				Owner:  "bob",
				Price:  decimal.NewFromInt(1),
				Sold:   true,
			},
			buyer:   "carol",
			wantErr: ErrAlreadySold,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.item
			err := tt.item.MarkSold(tt.buyer, now)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, before, tt.item, "failed transition must not mutate the item")
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.item.Sold)
			assert.Equal(t, tt.buyer, tt.item.Owner)
			assert.Equal(t, now, tt.item.SoldAt)
			assert.False(t, tt.item.Open())
		})
	}
}

func TestMarketItemSoldOwnerInvariant(t *testing.T) {
	// Sold is true if and only if Owner is not None.
	item := &MarketItem{ItemID: 1, Seller: "alice", Price: decimal.NewFromInt(2)}
	assert.True(t, item.Owner.IsNone())
	assert.False(t, item.Sold)

	require.NoError(t, item.MarkSold("bob", time.Now()))
	assert.False(t, item.Owner.IsNone())
	assert.True(t, item.Sold)
}

func TestMarketItemClone(t *testing.T) {
	item := &MarketItem{ItemID: 3, Seller: "alice", Price: decimal.NewFromInt(5)}
	clone := item.Clone()
	clone.Seller = "mallory"
	clone.Sold = true

	assert.Equal(t, Address("alice"), item.Seller)
	assert.False(t, item.Sold)
}
