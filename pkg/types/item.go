package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarketItem is a listing on the marketplace ledger. ItemID is assigned
// monotonically from 1. Price is fixed at listing time and immutable.
// Owner is None while the item is listed and becomes the buyer on sale;
// Sold is true if and only if Owner is not None. Items are never
// deleted: sold items persist as history.
type MarketItem struct {
	ItemID   uint64          `json:"item_id"`
	TokenRef TokenRef        `json:"token_ref"`
	Seller   Address         `json:"seller"`
	Owner    Address         `json:"owner"`
	Price    decimal.Decimal `json:"price"`
	Sold     bool            `json:"sold"`
	ListedAt time.Time       `json:"listed_at"`
	SoldAt   time.Time       `json:"sold_at,omitzero"`
}

// Open reports whether the item is still listed for sale.
func (m *MarketItem) Open() bool {
	return !m.Sold
}

// MarkSold transitions the item from listed to sold. The transition
// happens exactly once per item; a second attempt returns ErrAlreadySold
// and leaves the item unchanged.
func (m *MarketItem) MarkSold(buyer Address, at time.Time) error {
	if m.Sold {
		return ErrAlreadySold
	}
	m.Sold = true
	m.Owner = buyer
	m.SoldAt = at
	return nil
}

// Clone returns a copy of the item.
func (m *MarketItem) Clone() *MarketItem {
	c := *m
	return &c
}
