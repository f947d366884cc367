// Package funds implements an in-process account book satisfying the
// ledger's ValueTransfer capability: a balance per address and an
// atomic, all-or-nothing transfer between two addresses. The CLI uses
// it as the local wallet; tests use it as the settlement double.
package funds

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/mintline/mintline/pkg/types"
)

// Account book errors.
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("amount must not be negative")
)

// AccountBook tracks decimal balances per address.
type AccountBook struct {
	mu       sync.RWMutex
	balances map[types.Address]decimal.Decimal
}

// Compile-time interface check: AccountBook must implement ValueTransfer.
var _ types.ValueTransfer = (*AccountBook)(nil)

// NewAccountBook creates an empty account book.
func NewAccountBook() *AccountBook {
	return &AccountBook{balances: make(map[types.Address]decimal.Decimal)}
}

// Deposit credits an address. Negative amounts are rejected.
func (b *AccountBook) Deposit(addr types.Address, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("deposit to %s: %w", addr, ErrInvalidAmount)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.balances[addr] = b.balances[addr].Add(amount)
	return nil
}

// Balance returns the current balance of an address. Unknown addresses
// have a zero balance.
func (b *AccountBook) Balance(addr types.Address) decimal.Decimal {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.balances[addr]
}

// Transfer moves amount from one address to the other. It fails with
// ErrInsufficientFunds when the source balance does not cover the
// amount, with no effect on either balance.
func (b *AccountBook) Transfer(from, to types.Address, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("transfer %s -> %s: %w", from, to, ErrInvalidAmount)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.balances[from].LessThan(amount) {
		return fmt.Errorf("transfer %s -> %s: %w", from, to, ErrInsufficientFunds)
	}

	b.balances[from] = b.balances[from].Sub(amount)
	b.balances[to] = b.balances[to].Add(amount)
	return nil
}

// Balances returns a copy of every non-zero balance.
func (b *AccountBook) Balances() map[types.Address]decimal.Decimal {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make(map[types.Address]decimal.Decimal, len(b.balances))
	for addr, balance := range b.balances {
		if !balance.IsZero() {
			out[addr] = balance
		}
	}
	return out
}

// Addresses returns every address with a non-zero balance, sorted for
// deterministic output.
func (b *AccountBook) Addresses() []types.Address {
	b.mu.RLock()
	defer b.mu.RUnlock()

	addrs := make([]types.Address, 0, len(b.balances))
	for addr, balance := range b.balances {
		if !balance.IsZero() {
			addrs = append(addrs, addr)
		}
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	return addrs
}

// Restore replaces the book's contents with persisted balances.
func (b *AccountBook) Restore(balances map[types.Address]decimal.Decimal) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.balances = make(map[types.Address]decimal.Decimal, len(balances))
	for addr, balance := range balances {
		b.balances[addr] = balance
	}
}
