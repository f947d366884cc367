// End-to-end marketplace scenarios: listing, settlement, views, and
// fee administration over a fully wired registry, account book, and
// ledger.
package integration

import (
	"errors"
	"testing"

	"github.com/mintline/mintline/internal/market"
	"github.com/mintline/mintline/pkg/types"
)

// TestDefaultDeployment verifies a freshly built marketplace starts
// with the default fee and no state.
func TestDefaultDeployment(t *testing.T) {
	w := setupWorld(t)

	if got := w.ledger.FeeAmount(); !got.Equal(market.DefaultListingFee) {
		t.Errorf("FeeAmount = %s, want %s", got, market.DefaultListingFee)
	}
	if got := w.ledger.Custodian(); got != types.Address("escrow:mintline") {
		t.Errorf("Custodian = %s, want escrow:mintline", got)
	}
	if got := w.ledger.Admin(); got != admin {
		t.Errorf("Admin = %s, want %s", got, admin)
	}
	if n := len(w.ledger.Items()); n != 0 {
		t.Errorf("Items = %d entries, want 0", n)
	}
	if got := w.ledger.AccruedFees(); !got.IsZero() {
		t.Errorf("AccruedFees = %s, want 0", got)
	}
}

// TestListAndSellLifecycle walks a single token through mint, listing,
// and settlement, checking custody and balances at each stage.
func TestListAndSellLifecycle(t *testing.T) {
	w := setupWorld(t)

	tokenID := mustMint(t, w, alice, "ipfs://token-1")
	ref := types.TokenRef{Collection: "mintline", TokenID: tokenID}

	itemID, err := w.ledger.CreateItem(alice, ref, dec("1"), w.ledger.FeeAmount())
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if itemID != 1 {
		t.Errorf("itemID = %d, want 1", itemID)
	}

	// Listing escrows the token but does not change ownership.
	tok, err := w.registry.Token(tokenID)
	if err != nil {
		t.Fatalf("Token: %v", err)
	}
	if tok.Owner != alice {
		t.Errorf("owner while listed = %s, want %s", tok.Owner, alice)
	}
	if tok.HeldBy != w.ledger.Custodian() {
		t.Errorf("HeldBy = %s, want %s", tok.HeldBy, w.ledger.Custodian())
	}

	item, err := w.ledger.Item(itemID)
	if err != nil {
		t.Fatalf("Item: %v", err)
	}
	if item.Sold {
		t.Error("item sold immediately after listing")
	}
	if item.Seller != alice || !item.Owner.IsNone() {
		t.Errorf("item seller/owner = %s/%s, want %s/none", item.Seller, item.Owner, alice)
	}
	assertBalance(t, w, alice, "9.975")
	if got := w.ledger.AccruedFees(); !got.Equal(dec("0.025")) {
		t.Errorf("AccruedFees = %s, want 0.025", got)
	}

	if err := w.ledger.Settle(bob, itemID, dec("1")); err != nil {
		t.Fatalf("Settle: %v", err)
	}

	owner, err := w.registry.OwnerOf(tokenID)
	if err != nil {
		t.Fatalf("OwnerOf: %v", err)
	}
	if owner != bob {
		t.Errorf("owner after sale = %s, want %s", owner, bob)
	}
	tok, _ = w.registry.Token(tokenID)
	if !tok.HeldBy.IsNone() {
		t.Errorf("HeldBy after sale = %s, want none", tok.HeldBy)
	}

	item, _ = w.ledger.Item(itemID)
	if !item.Sold || item.Owner != bob {
		t.Errorf("item after sale = sold %v owner %s, want sold true owner %s",
			item.Sold, item.Owner, bob)
	}
	if item.SoldAt.IsZero() {
		t.Error("SoldAt not recorded")
	}

	assertBalance(t, w, alice, "10.975")
	assertBalance(t, w, bob, "9")
	assertBalance(t, w, w.ledger.Custodian(), "0.025")
}

// TestMarketViews verifies the three query surfaces against a market
// with mixed open and sold items from different sellers.
func TestMarketViews(t *testing.T) {
	w := setupWorld(t)

	first := mustList(t, w, alice, dec("1"))
	second := mustList(t, w, alice, dec("2"))
	third := mustList(t, w, bob, dec("3"))

	if err := w.ledger.Settle(carol, second, dec("2")); err != nil {
		t.Fatalf("Settle: %v", err)
	}

	open := w.ledger.OpenItems()
	if len(open) != 2 {
		t.Fatalf("OpenItems = %d entries, want 2", len(open))
	}
	if open[0].ItemID != first || open[1].ItemID != third {
		t.Errorf("OpenItems ids = %d,%d, want %d,%d",
			open[0].ItemID, open[1].ItemID, first, third)
	}

	created := w.ledger.ItemsBySeller(alice)
	if len(created) != 2 {
		t.Fatalf("ItemsBySeller(alice) = %d entries, want 2", len(created))
	}
	for _, it := range created {
		if it.Seller != alice {
			t.Errorf("item %d seller = %s, want %s", it.ItemID, it.Seller, alice)
		}
	}

	owned := w.ledger.ItemsOwnedBy(carol)
	if len(owned) != 1 {
		t.Fatalf("ItemsOwnedBy(carol) = %d entries, want 1", len(owned))
	}
	if owned[0].ItemID != second || !owned[0].Sold {
		t.Errorf("owned item = %d sold %v, want %d sold true",
			owned[0].ItemID, owned[0].Sold, second)
	}
}

// TestExactMatching verifies fee and price must match the required
// amounts exactly, in both directions.
func TestExactMatching(t *testing.T) {
	w := setupWorld(t)
	tokenID := mustMint(t, w, alice, "ipfs://token")
	ref := types.TokenRef{Collection: "mintline", TokenID: tokenID}

	feeTests := []struct {
		name string
		fee  string
	}{
		{"fee below required", "0.02"},
		{"fee above required", "0.03"},
	}
	for _, tt := range feeTests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := w.ledger.CreateItem(alice, ref, dec("1"), dec(tt.fee))
			if !errors.Is(err, types.ErrFeeMismatch) {
				t.Errorf("CreateItem(fee=%s) error = %v, want ErrFeeMismatch", tt.fee, err)
			}
		})
	}

	itemID, err := w.ledger.CreateItem(alice, ref, dec("1"), dec("0.025"))
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}

	priceTests := []struct {
		name  string
		value string
	}{
		{"value below asking", "0.5"},
		{"value above asking", "1.5"},
	}
	for _, tt := range priceTests {
		t.Run(tt.name, func(t *testing.T) {
			err := w.ledger.Settle(bob, itemID, dec(tt.value))
			if !errors.Is(err, types.ErrPriceMismatch) {
				t.Errorf("Settle(value=%s) error = %v, want ErrPriceMismatch", tt.value, err)
			}
		})
	}

	// The item is still open and sells at the exact price.
	if err := w.ledger.Settle(bob, itemID, dec("1")); err != nil {
		t.Fatalf("Settle at asking price: %v", err)
	}
}

// TestFeeAdministration covers fee updates, admin gating, and
// withdrawal of accrued fees.
func TestFeeAdministration(t *testing.T) {
	w := setupWorld(t)

	if err := w.ledger.SetFee(alice, dec("0.05")); !errors.Is(err, types.ErrNotAdmin) {
		t.Errorf("SetFee by non-admin error = %v, want ErrNotAdmin", err)
	}

	if err := w.ledger.SetFee(admin, dec("0.05")); err != nil {
		t.Fatalf("SetFee: %v", err)
	}
	if got := w.ledger.FeeAmount(); !got.Equal(dec("0.05")) {
		t.Errorf("FeeAmount = %s, want 0.05", got)
	}

	// The old fee no longer clears; the new one does.
	tokenID := mustMint(t, w, alice, "ipfs://token")
	ref := types.TokenRef{Collection: "mintline", TokenID: tokenID}
	if _, err := w.ledger.CreateItem(alice, ref, dec("1"), dec("0.025")); !errors.Is(err, types.ErrFeeMismatch) {
		t.Errorf("CreateItem with stale fee error = %v, want ErrFeeMismatch", err)
	}
	if _, err := w.ledger.CreateItem(alice, ref, dec("1"), dec("0.05")); err != nil {
		t.Fatalf("CreateItem with updated fee: %v", err)
	}

	if _, err := w.ledger.WithdrawFees(bob); !errors.Is(err, types.ErrNotAdmin) {
		t.Errorf("WithdrawFees by non-admin error = %v, want ErrNotAdmin", err)
	}

	amount, err := w.ledger.WithdrawFees(admin)
	if err != nil {
		t.Fatalf("WithdrawFees: %v", err)
	}
	if !amount.Equal(dec("0.05")) {
		t.Errorf("withdrawn = %s, want 0.05", amount)
	}
	if got := w.ledger.AccruedFees(); !got.IsZero() {
		t.Errorf("AccruedFees after withdrawal = %s, want 0", got)
	}
	assertBalance(t, w, admin, "10.05")
	assertBalance(t, w, w.ledger.Custodian(), "0")

	// Nothing left: withdrawing again is a zero no-op.
	amount, err = w.ledger.WithdrawFees(admin)
	if err != nil {
		t.Fatalf("WithdrawFees on empty accrual: %v", err)
	}
	if !amount.IsZero() {
		t.Errorf("second withdrawal = %s, want 0", amount)
	}
}

// TestHeldTokenIsImmobile verifies a listed token cannot be moved or
// re-approved by its owner while in escrow.
func TestHeldTokenIsImmobile(t *testing.T) {
	w := setupWorld(t)
	itemID := mustList(t, w, alice, dec("1"))

	item, err := w.ledger.Item(itemID)
	if err != nil {
		t.Fatalf("Item: %v", err)
	}
	tokenID := item.TokenRef.TokenID

	if err := w.registry.Transfer(alice, tokenID, bob); !errors.Is(err, types.ErrTokenHeld) {
		t.Errorf("Transfer of held token error = %v, want ErrTokenHeld", err)
	}
	if err := w.registry.Approve(alice, tokenID, bob); !errors.Is(err, types.ErrTokenHeld) {
		t.Errorf("Approve of held token error = %v, want ErrTokenHeld", err)
	}

	// Re-listing the same token fails while the first listing is open.
	ref := types.TokenRef{Collection: "mintline", TokenID: tokenID}
	if _, err := w.ledger.CreateItem(alice, ref, dec("2"), w.ledger.FeeAmount()); err == nil {
		t.Error("CreateItem on escrowed token succeeded, want error")
	}
}
