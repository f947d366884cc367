// Shared helpers for mintline CLI commands: building the ledger world
// from the store and persisting state after mutations.
package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mintline/mintline/internal/event"
	"github.com/mintline/mintline/internal/funds"
	"github.com/mintline/mintline/internal/log"
	"github.com/mintline/mintline/internal/market"
	"github.com/mintline/mintline/internal/registry"
	"github.com/mintline/mintline/internal/sqlite"
	"github.com/mintline/mintline/pkg/types"
)

// world bundles the store with the in-memory ledger rebuilt from it.
type world struct {
	store    *sqlite.Store
	registry *registry.Registry
	book     *funds.AccountBook
	ledger   *market.Ledger
	logger   *zap.Logger
}

// openWorld attaches the store, rebuilds the registry, account book,
// and ledger from persisted state, and wires the event journal. The
// caller must defer w.close().
func openWorld() (*world, error) {
	dataDir := resolveDataDir()

	logger := log.New(filepath.Join(dataDir, "mintline.log"), loadedConfig.LogLevel == "debug")

	store := sqlite.NewStore()
	if err := store.Attach(types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}

	reg := registry.New(loadedConfig.Collection, logger)
	tokens, err := store.LoadTokens()
	if err != nil {
		store.Detach()
		return nil, fmt.Errorf("load tokens: %w", err)
	}
	if err := reg.Restore(tokens); err != nil {
		store.Detach()
		return nil, fmt.Errorf("restore registry: %w", err)
	}

	book := funds.NewAccountBook()
	balances, err := store.LoadBalances()
	if err != nil {
		store.Detach()
		return nil, fmt.Errorf("load balances: %w", err)
	}
	book.Restore(balances)

	bus := event.NewManager(logger)
	journalEvents(bus, store, logger)

	ledger, err := market.New(market.Config{
		Admin:      types.Address(loadedConfig.Admin),
		ListingFee: loadedConfig.ListingFee,
	}, reg, book, bus, logger)
	if err != nil {
		store.Detach()
		return nil, fmt.Errorf("build ledger: %w", err)
	}

	items, err := store.LoadItems()
	if err != nil {
		store.Detach()
		return nil, fmt.Errorf("load items: %w", err)
	}
	policy, err := store.LoadFeePolicy()
	if err != nil {
		store.Detach()
		return nil, fmt.Errorf("load fee policy: %w", err)
	}
	// The persisted policy wins over config defaults: fee changes and
	// accrued fees survive restarts.
	if err := ledger.Restore(items, policy); err != nil {
		store.Detach()
		return nil, fmt.Errorf("restore ledger: %w", err)
	}

	return &world{
		store:    store,
		registry: reg,
		book:     book,
		ledger:   ledger,
		logger:   logger,
	}, nil
}

// close detaches the store and flushes the logger.
func (w *world) close() {
	_ = w.store.Detach()
	_ = w.logger.Sync()
}

// journalEvents appends every ledger event to the store's journal.
func journalEvents(bus *event.Manager, store *sqlite.Store, logger *zap.Logger) {
	appendRecord := func(recordID string, eventType types.EventType, at time.Time, payload any) {
		data, err := json.Marshal(payload)
		if err != nil {
			logger.Error("marshal event payload", zap.Error(err))
			return
		}
		record := types.EventRecord{
			RecordID: recordID,
			Type:     eventType,
			Payload:  data,
			At:       at,
		}
		if err := store.AppendEvent(record); err != nil {
			logger.Error("append event record", zap.Error(err))
		}
	}

	bus.Subscribe(types.EventItemCreated, func(p any) {
		evt := p.(types.ItemCreated)
		appendRecord(evt.RecordID, types.EventItemCreated, evt.At, evt)
	})
	bus.Subscribe(types.EventItemSold, func(p any) {
		evt := p.(types.ItemSold)
		appendRecord(evt.RecordID, types.EventItemSold, evt.At, evt)
	})
	bus.Subscribe(types.EventFeeUpdated, func(p any) {
		evt := p.(types.FeeUpdated)
		appendRecord(evt.RecordID, types.EventFeeUpdated, evt.At, evt)
	})
	bus.Subscribe(types.EventFeesWithdrawn, func(p any) {
		evt := p.(types.FeesWithdrawn)
		appendRecord(evt.RecordID, types.EventFeesWithdrawn, evt.At, evt)
	})
}

// saveToken persists one token row.
func (w *world) saveToken(tokenID uint64) error {
	token, err := w.registry.Token(tokenID)
	if err != nil {
		return err
	}
	return w.store.SaveToken(token)
}

// saveItem persists one item row.
func (w *world) saveItem(itemID uint64) error {
	item, err := w.ledger.Item(itemID)
	if err != nil {
		return err
	}
	return w.store.SaveItem(item)
}

// savePolicy persists the fee policy.
func (w *world) savePolicy() error {
	return w.store.SaveFeePolicy(w.ledger.Policy())
}

// saveBalances persists the balances of the given addresses.
func (w *world) saveBalances(addrs ...types.Address) error {
	for _, addr := range addrs {
		if err := w.store.SaveBalance(addr, w.book.Balance(addr)); err != nil {
			return err
		}
	}
	return nil
}

// parseID parses a numeric token or item identifier argument.
func parseID(arg string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", arg, err)
	}
	return id, nil
}

// parseAmount parses a decimal CLI argument.
func parseAmount(arg string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(arg)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", arg, err)
	}
	return amount, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// printItem writes a market item in the human-readable format.
func printItem(item *types.MarketItem) {
	status := "open"
	if item.Sold {
		status = "sold to " + string(item.Owner)
	}
	fmt.Printf("item %d: token %d (%s)  price %s  seller %s  %s\n",
		item.ItemID, item.TokenRef.TokenID, item.TokenRef.Collection,
		item.Price, item.Seller, status)
}
