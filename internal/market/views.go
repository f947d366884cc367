package market

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mintline/mintline/pkg/types"
)

func errSparseItems(index int, itemID uint64) error {
	return fmt.Errorf("restore: item at index %d has id %d: %w",
		index, itemID, types.ErrUnknownItem)
}

// Item returns a copy of the market item, sold or not.
func (l *Ledger) Item(itemID uint64) (*types.MarketItem, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	item, err := l.get(itemID)
	if err != nil {
		return nil, err
	}
	return item.Clone(), nil
}

// OpenItems returns every unsold item in ascending ItemID order.
func (l *Ledger) OpenItems() []*types.MarketItem {
	return l.filter(func(item *types.MarketItem) bool {
		return item.Open()
	})
}

// ItemsBySeller returns every item listed by the seller, sold and
// unsold, in ascending ItemID order.
func (l *Ledger) ItemsBySeller(seller types.Address) []*types.MarketItem {
	return l.filter(func(item *types.MarketItem) bool {
		return item.Seller == seller
	})
}

// ItemsOwnedBy returns every sold item owned by the address, in
// ascending ItemID order.
func (l *Ledger) ItemsOwnedBy(owner types.Address) []*types.MarketItem {
	return l.filter(func(item *types.MarketItem) bool {
		return item.Sold && item.Owner == owner
	})
}

// Items returns a copy of every item, used for persistence snapshots.
func (l *Ledger) Items() []*types.MarketItem {
	return l.filter(func(*types.MarketItem) bool { return true })
}

// FeeAmount returns the current listing fee.
func (l *Ledger) FeeAmount() decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.policy.Amount
}

// AccruedFees returns the collected fees not yet withdrawn.
func (l *Ledger) AccruedFees() decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.policy.Accrued
}

// Policy returns a copy of the fee policy, used for persistence.
func (l *Ledger) Policy() *types.FeePolicy {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.policy.Clone()
}

// Restore replaces the ledger's items and fee policy with previously
// persisted state. The item slice must be dense and ordered: item N at
// index N-1. A nil policy keeps the constructed one.
func (l *Ledger) Restore(items []*types.MarketItem, policy *types.FeePolicy) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	restored := make([]*types.MarketItem, len(items))
	for i, item := range items {
		if item.ItemID != uint64(i)+1 {
			return errSparseItems(i, item.ItemID)
		}
		restored[i] = item.Clone()
	}
	l.items = restored
	if policy != nil {
		l.policy = policy.Clone()
	}
	return nil
}

// filter returns copies of the items the predicate accepts, in
// ascending ItemID order. The read lock gives every caller a consistent
// snapshot: no view ever observes a partially applied sale.
func (l *Ledger) filter(keep func(*types.MarketItem) bool) []*types.MarketItem {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*types.MarketItem, 0, len(l.items))
	for _, item := range l.items {
		if keep(item) {
			out = append(out, item.Clone())
		}
	}
	return out
}
