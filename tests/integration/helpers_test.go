// Package integration provides shared test helpers for integration tests.
package integration

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mintline/mintline/internal/event"
	"github.com/mintline/mintline/internal/funds"
	"github.com/mintline/mintline/internal/market"
	"github.com/mintline/mintline/internal/registry"
	"github.com/mintline/mintline/internal/sqlite"
	"github.com/mintline/mintline/pkg/types"
)

const (
	admin = types.Address("admin")
	alice = types.Address("alice")
	bob   = types.Address("bob")
	carol = types.Address("carol")
)

// world bundles the in-memory components a marketplace needs.
type world struct {
	registry *registry.Registry
	book     *funds.AccountBook
	bus      *event.Manager
	ledger   *market.Ledger
}

// setupStore creates a sqlite store attached to an isolated temp directory.
func setupStore(t *testing.T) *sqlite.Store {
	t.Helper()
	dir := t.TempDir()
	s := sqlite.NewStore()
	if err := s.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	t.Cleanup(func() { s.Detach() })
	return s
}

// setupWorld builds a marketplace with the default listing fee and every
// test identity funded with 10 units.
func setupWorld(t *testing.T) *world {
	t.Helper()
	return setupWorldWithFee(t, market.DefaultListingFee)
}

// setupWorldWithFee builds a marketplace with an explicit listing fee.
func setupWorldWithFee(t *testing.T, fee decimal.Decimal) *world {
	t.Helper()
	reg := registry.New("mintline", nil)
	book := funds.NewAccountBook()
	bus := event.NewManager(nil)
	ledger, err := market.New(market.Config{Admin: admin, ListingFee: fee}, reg, book, bus, nil)
	if err != nil {
		t.Fatalf("market.New: %v", err)
	}
	for _, addr := range []types.Address{admin, alice, bob, carol} {
		if err := book.Deposit(addr, dec("10")); err != nil {
			t.Fatalf("Deposit(%s): %v", addr, err)
		}
	}
	return &world{registry: reg, book: book, bus: bus, ledger: ledger}
}

// mustMint mints a token for the given owner or fails the test.
func mustMint(t *testing.T, w *world, owner types.Address, uri string) uint64 {
	t.Helper()
	id, err := w.registry.Mint(owner, uri)
	if err != nil {
		t.Fatalf("Mint(%s, %q): %v", owner, uri, err)
	}
	return id
}

// mustList mints a token for the seller and lists it at the given price,
// paying the current listing fee. Returns the item ID.
func mustList(t *testing.T, w *world, seller types.Address, price decimal.Decimal) uint64 {
	t.Helper()
	tokenID := mustMint(t, w, seller, "ipfs://listing")
	ref := types.TokenRef{Collection: w.registry.Collection(), TokenID: tokenID}
	itemID, err := w.ledger.CreateItem(seller, ref, price, w.ledger.FeeAmount())
	if err != nil {
		t.Fatalf("CreateItem(%s): %v", seller, err)
	}
	return itemID
}

// saveWorld persists the full world state into the store.
func saveWorld(t *testing.T, w *world, s *sqlite.Store) {
	t.Helper()
	for _, tok := range w.registry.Tokens() {
		if err := s.SaveToken(tok); err != nil {
			t.Fatalf("SaveToken(%d): %v", tok.TokenID, err)
		}
	}
	for _, item := range w.ledger.Items() {
		if err := s.SaveItem(item); err != nil {
			t.Fatalf("SaveItem(%d): %v", item.ItemID, err)
		}
	}
	if err := s.SaveFeePolicy(w.ledger.Policy()); err != nil {
		t.Fatalf("SaveFeePolicy: %v", err)
	}
	for addr, bal := range w.book.Balances() {
		if err := s.SaveBalance(addr, bal); err != nil {
			t.Fatalf("SaveBalance(%s): %v", addr, err)
		}
	}
}

// loadWorld rebuilds a world from the store's persisted state.
func loadWorld(t *testing.T, s *sqlite.Store) *world {
	t.Helper()
	reg := registry.New("mintline", nil)
	tokens, err := s.LoadTokens()
	if err != nil {
		t.Fatalf("LoadTokens: %v", err)
	}
	if err := reg.Restore(tokens); err != nil {
		t.Fatalf("registry.Restore: %v", err)
	}

	book := funds.NewAccountBook()
	balances, err := s.LoadBalances()
	if err != nil {
		t.Fatalf("LoadBalances: %v", err)
	}
	book.Restore(balances)

	policy, err := s.LoadFeePolicy()
	if err != nil {
		t.Fatalf("LoadFeePolicy: %v", err)
	}
	if policy == nil {
		t.Fatal("LoadFeePolicy: no policy persisted")
	}

	bus := event.NewManager(nil)
	ledger, err := market.New(market.Config{Admin: policy.Admin, ListingFee: policy.Amount}, reg, book, bus, nil)
	if err != nil {
		t.Fatalf("market.New: %v", err)
	}
	items, err := s.LoadItems()
	if err != nil {
		t.Fatalf("LoadItems: %v", err)
	}
	if err := ledger.Restore(items, policy); err != nil {
		t.Fatalf("ledger.Restore: %v", err)
	}
	return &world{registry: reg, book: book, bus: bus, ledger: ledger}
}

// dec parses a decimal literal or panics. Test-only shorthand.
func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

// assertBalance fails the test unless the address holds exactly want.
func assertBalance(t *testing.T, w *world, addr types.Address, want string) {
	t.Helper()
	got := w.book.Balance(addr)
	if !got.Equal(dec(want)) {
		t.Errorf("balance(%s) = %s, want %s", addr, got, want)
	}
}
