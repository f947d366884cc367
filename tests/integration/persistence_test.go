// Persistence scenarios: full marketplace state and the event journal
// surviving a store detach and reattach.
package integration

import (
	"encoding/json"
	"testing"

	"github.com/mintline/mintline/internal/sqlite"
	"github.com/mintline/mintline/pkg/types"
)

// TestWorldSurvivesReattach persists a live market, reopens the same
// data directory, and verifies the rebuilt world matches and keeps
// working where the old one left off.
func TestWorldSurvivesReattach(t *testing.T) {
	dir := t.TempDir()
	store := sqlite.NewStore()
	if err := store.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}); err != nil {
		t.Fatalf("Attach: %v", err)
	}

	w := setupWorld(t)
	first := mustList(t, w, alice, dec("1"))
	second := mustList(t, w, bob, dec("2"))
	if err := w.ledger.Settle(carol, first, dec("1")); err != nil {
		t.Fatalf("Settle: %v", err)
	}
	if err := w.ledger.SetFee(admin, dec("0.1")); err != nil {
		t.Fatalf("SetFee: %v", err)
	}

	saveWorld(t, w, store)
	if err := store.Detach(); err != nil {
		t.Fatalf("Detach: %v", err)
	}

	reopened := sqlite.NewStore()
	if err := reopened.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}); err != nil {
		t.Fatalf("reattach: %v", err)
	}
	t.Cleanup(func() { reopened.Detach() })

	restored := loadWorld(t, reopened)

	if got := restored.registry.Count(); got != 2 {
		t.Errorf("token count = %d, want 2", got)
	}
	if got := restored.ledger.FeeAmount(); !got.Equal(dec("0.1")) {
		t.Errorf("FeeAmount = %s, want 0.1", got)
	}
	if got := restored.ledger.AccruedFees(); !got.Equal(dec("0.05")) {
		t.Errorf("AccruedFees = %s, want 0.05", got)
	}

	soldItem, err := restored.ledger.Item(first)
	if err != nil {
		t.Fatalf("Item(%d): %v", first, err)
	}
	if !soldItem.Sold || soldItem.Owner != carol {
		t.Errorf("restored item %d = sold %v owner %s, want sold true owner %s",
			first, soldItem.Sold, soldItem.Owner, carol)
	}

	open := restored.ledger.OpenItems()
	if len(open) != 1 || open[0].ItemID != second {
		t.Fatalf("OpenItems after restore = %v, want just item %d", open, second)
	}

	// The escrow hold came back with the token, so the open listing
	// still settles.
	if err := restored.ledger.Settle(alice, second, dec("2")); err != nil {
		t.Fatalf("Settle after restore: %v", err)
	}
	assertBalance(t, restored, bob, "11.975")

	// New listings continue the identifier sequence.
	third := mustList(t, restored, carol, dec("3"))
	if third != 3 {
		t.Errorf("next itemID = %d, want 3", third)
	}
}

// TestEventJournalPersists appends every ledger event to the store and
// verifies the journal reads back complete and ordered.
func TestEventJournalPersists(t *testing.T) {
	store := setupStore(t)
	w := setupWorld(t)

	appendRecord := func(eventType types.EventType) func(any) {
		return func(payload any) {
			data, err := json.Marshal(payload)
			if err != nil {
				t.Errorf("marshal %s payload: %v", eventType, err)
				return
			}
			var meta struct {
				RecordID string `json:"record_id"`
			}
			if err := json.Unmarshal(data, &meta); err != nil {
				t.Errorf("extract record id: %v", err)
				return
			}
			if err := store.AppendEvent(types.EventRecord{
				RecordID: meta.RecordID,
				Type:     eventType,
				Payload:  data,
			}); err != nil {
				t.Errorf("AppendEvent: %v", err)
			}
		}
	}
	for _, et := range []types.EventType{
		types.EventItemCreated,
		types.EventItemSold,
		types.EventFeeUpdated,
		types.EventFeesWithdrawn,
	} {
		w.bus.Subscribe(et, appendRecord(et))
	}

	itemID := mustList(t, w, alice, dec("1"))
	if err := w.ledger.Settle(bob, itemID, dec("1")); err != nil {
		t.Fatalf("Settle: %v", err)
	}
	if err := w.ledger.SetFee(admin, dec("0.03")); err != nil {
		t.Fatalf("SetFee: %v", err)
	}
	if _, err := w.ledger.WithdrawFees(admin); err != nil {
		t.Fatalf("WithdrawFees: %v", err)
	}

	records, err := store.Events()
	if err != nil {
		t.Fatalf("Events: %v", err)
	}

	wantTypes := []types.EventType{
		types.EventItemCreated,
		types.EventItemSold,
		types.EventFeeUpdated,
		types.EventFeesWithdrawn,
	}
	if len(records) != len(wantTypes) {
		t.Fatalf("journal has %d records, want %d", len(records), len(wantTypes))
	}
	for i, rec := range records {
		if rec.Type != wantTypes[i] {
			t.Errorf("record %d type = %s, want %s", i, rec.Type, wantTypes[i])
		}
		if rec.RecordID == "" {
			t.Errorf("record %d has empty record id", i)
		}
	}

	var sold types.ItemSold
	if err := json.Unmarshal(records[1].Payload, &sold); err != nil {
		t.Fatalf("unmarshal sold payload: %v", err)
	}
	if sold.ItemID != itemID || sold.Buyer != bob || !sold.Price.Equal(dec("1")) {
		t.Errorf("sold payload = item %d buyer %s price %s, want item %d buyer %s price 1",
			sold.ItemID, sold.Buyer, sold.Price, itemID, bob)
	}
}
