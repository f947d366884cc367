package market

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mintline/mintline/internal/event"
	"github.com/mintline/mintline/internal/registry"
	"github.com/mintline/mintline/pkg/types"
)

// Config carries the ledger's construction parameters. Admin is the
// sole identity allowed to change the listing fee or withdraw accrued
// fees. Custodian is the ledger's escrow identity; it holds listed
// tokens and the collected fees until withdrawal.
type Config struct {
	Admin      types.Address
	Custodian  types.Address
	ListingFee decimal.Decimal
}

// DefaultListingFee is charged per listing unless configured otherwise.
var DefaultListingFee = decimal.RequireFromString("0.025")

// Ledger is the marketplace ledger. It owns the market item collection
// and the fee policy, holds a reference into the token registry for
// escrow, and calls the ValueTransfer capability to move value.
type Ledger struct {
	mu        sync.RWMutex
	registry  *registry.Registry
	transfers types.ValueTransfer
	events    *event.Manager
	policy    *types.FeePolicy
	items     []*types.MarketItem
	custodian types.Address
	log       *zap.Logger
}

// New constructs a ledger. The registry and transfer capability are
// required; a nil event manager disables event dispatch.
func New(cfg Config, reg *registry.Registry, transfers types.ValueTransfer, events *event.Manager, log *zap.Logger) (*Ledger, error) {
	if reg == nil {
		return nil, fmt.Errorf("new ledger: registry is required")
	}
	if transfers == nil {
		return nil, fmt.Errorf("new ledger: value transfer capability is required")
	}
	if cfg.Admin.IsNone() {
		return nil, fmt.Errorf("new ledger: admin: %w", types.ErrInvalidInput)
	}
	if cfg.ListingFee.IsNegative() {
		return nil, fmt.Errorf("new ledger: %w", types.ErrInvalidFee)
	}
	if events == nil {
		events = event.NewManager(nil)
	}
	if log == nil {
		log = zap.NewNop()
	}

	custodian := cfg.Custodian
	if custodian.IsNone() {
		custodian = types.Address("escrow:" + reg.Collection())
	}

	return &Ledger{
		registry:  reg,
		transfers: transfers,
		events:    events,
		policy:    types.NewFeePolicy(cfg.Admin, cfg.ListingFee),
		custodian: custodian,
		log:       log,
	}, nil
}

// Custodian returns the ledger's escrow identity.
func (l *Ledger) Custodian() types.Address {
	return l.custodian
}

// Admin returns the fee policy's administrator.
func (l *Ledger) Admin() types.Address {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.policy.Admin
}

// CreateItem lists a token for sale. The caller must own the token, the
// price must be positive, and the supplied fee must equal the current
// listing fee exactly; underpayment and overpayment are both rejected
// with no partial accept. On success the fee accrues to the policy, the
// token moves into escrow, and a new item is appended with the next
// identifier. All sub-steps succeed or none take effect.
func (l *Ledger) CreateItem(caller types.Address, ref types.TokenRef, price, fee decimal.Decimal) (uint64, error) {
	created, err := l.createItem(caller, ref, price, fee)
	if err != nil {
		return 0, err
	}

	l.events.Emit(types.EventItemCreated, created)
	return created.ItemID, nil
}

func (l *Ledger) createItem(caller types.Address, ref types.TokenRef, price, fee decimal.Decimal) (types.ItemCreated, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var none types.ItemCreated

	if !price.IsPositive() {
		return none, fmt.Errorf("create item: %w", types.ErrInvalidPrice)
	}
	if !fee.Equal(l.policy.Amount) {
		return none, fmt.Errorf("create item: supplied %s, required %s: %w",
			fee, l.policy.Amount, types.ErrFeeMismatch)
	}
	if ref.Collection != l.registry.Collection() {
		return none, fmt.Errorf("create item: collection %q: %w",
			ref.Collection, types.ErrUnknownToken)
	}

	owner, err := l.registry.OwnerOf(ref.TokenID)
	if err != nil {
		return none, fmt.Errorf("create item: %w", err)
	}
	if owner != caller {
		return none, fmt.Errorf("create item: token %d: %w",
			ref.TokenID, types.ErrNotTokenOwner)
	}

	// Escrow first, fee second: the hold is ours to roll back, the fee
	// transfer is not.
	if err := l.registry.Hold(caller, ref.TokenID, l.custodian); err != nil {
		return none, fmt.Errorf("create item: %w", err)
	}
	if fee.IsPositive() {
		if err := l.transfers.Transfer(caller, l.custodian, fee); err != nil {
			if uerr := l.registry.Unhold(l.custodian, ref.TokenID); uerr != nil {
				l.log.Error("failed to roll back escrow hold",
					zap.Uint64("tokenId", ref.TokenID), zap.Error(uerr))
			}
			return none, fmt.Errorf("create item: collect fee: %w", err)
		}
	}

	now := time.Now().UTC()
	item := &types.MarketItem{
		ItemID:   uint64(len(l.items)) + 1,
		TokenRef: ref,
		Seller:   caller,
		Owner:    types.None,
		Price:    price,
		ListedAt: now,
	}
	l.items = append(l.items, item)
	l.policy.Accrue(fee)

	l.log.Info("market item created",
		zap.Uint64("itemId", item.ItemID),
		zap.Uint64("tokenId", ref.TokenID),
		zap.String("seller", string(caller)),
		zap.String("price", price.String()),
	)

	return types.ItemCreated{
		RecordID: uuid.Must(uuid.NewV7()).String(),
		ItemID:   item.ItemID,
		TokenRef: ref,
		Seller:   caller,
		Price:    price,
		At:       now,
	}, nil
}

// Settle sells an open item to the caller. The supplied value must
// equal the asking price exactly. The full value moves to the seller —
// the marketplace takes no cut beyond the listing fee already collected
// — the token leaves escrow to the buyer, and the item flips to sold.
// A rejected value transfer leaves every entity unchanged.
func (l *Ledger) Settle(caller types.Address, itemID uint64, value decimal.Decimal) error {
	sold, err := l.settle(caller, itemID, value)
	if err != nil {
		return err
	}

	l.events.Emit(types.EventItemSold, sold)
	return nil
}

func (l *Ledger) settle(caller types.Address, itemID uint64, value decimal.Decimal) (types.ItemSold, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var none types.ItemSold

	item, err := l.get(itemID)
	if err != nil {
		return none, err
	}
	if item.Sold {
		return none, fmt.Errorf("settle item %d: %w", itemID, types.ErrAlreadySold)
	}
	if !value.Equal(item.Price) {
		return none, fmt.Errorf("settle item %d: supplied %s, asking %s: %w",
			itemID, value, item.Price, types.ErrPriceMismatch)
	}

	// The escrow hold is established at listing time and only this
	// ledger releases it; verify before moving money.
	token, err := l.registry.Token(item.TokenRef.TokenID)
	if err != nil {
		return none, fmt.Errorf("settle item %d: %w", itemID, err)
	}
	if token.HeldBy != l.custodian {
		return none, fmt.Errorf("settle item %d: token %d not in escrow: %w",
			itemID, item.TokenRef.TokenID, types.ErrNotAuthorized)
	}

	if err := l.transfers.Transfer(caller, item.Seller, value); err != nil {
		return none, fmt.Errorf("settle item %d: value transfer: %w", itemID, err)
	}
	if err := l.registry.Release(l.custodian, item.TokenRef.TokenID, caller); err != nil {
		// Undo the payment so a registry refusal cannot strand value.
		if rerr := l.transfers.Transfer(item.Seller, caller, value); rerr != nil {
			l.log.Error("failed to refund settlement payment",
				zap.Uint64("itemId", itemID), zap.Error(rerr))
		}
		return none, fmt.Errorf("settle item %d: release escrow: %w", itemID, err)
	}

	now := time.Now().UTC()
	if err := item.MarkSold(caller, now); err != nil {
		return none, fmt.Errorf("settle item %d: %w", itemID, err)
	}

	l.log.Info("market item sold",
		zap.Uint64("itemId", itemID),
		zap.String("seller", string(item.Seller)),
		zap.String("buyer", string(caller)),
		zap.String("price", item.Price.String()),
	)

	return types.ItemSold{
		RecordID: uuid.Must(uuid.NewV7()).String(),
		ItemID:   itemID,
		TokenRef: item.TokenRef,
		Seller:   item.Seller,
		Buyer:    caller,
		Price:    item.Price,
		At:       now,
	}, nil
}

// SetFee updates the listing fee. Admin only; any non-negative amount
// is accepted, including zero. Listings already created keep the fee
// they paid.
func (l *Ledger) SetFee(caller types.Address, amount decimal.Decimal) error {
	updated, err := l.setFee(caller, amount)
	if err != nil {
		return err
	}

	l.events.Emit(types.EventFeeUpdated, updated)
	return nil
}

func (l *Ledger) setFee(caller types.Address, amount decimal.Decimal) (types.FeeUpdated, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var none types.FeeUpdated

	if caller != l.policy.Admin {
		return none, fmt.Errorf("set fee: %w", types.ErrNotAdmin)
	}
	if err := l.policy.SetAmount(amount); err != nil {
		return none, fmt.Errorf("set fee: %w", err)
	}

	l.log.Info("listing fee updated", zap.String("amount", amount.String()))

	return types.FeeUpdated{
		RecordID: uuid.Must(uuid.NewV7()).String(),
		Admin:    caller,
		Amount:   amount,
		At:       time.Now().UTC(),
	}, nil
}

// WithdrawFees transfers every accrued listing fee to the admin and
// resets the accrual to zero. Admin only. A zero accrual is a no-op,
// not an error: it returns zero and emits nothing.
func (l *Ledger) WithdrawFees(caller types.Address) (decimal.Decimal, error) {
	withdrawn, err := l.withdrawFees(caller)
	if err != nil {
		return decimal.Zero, err
	}
	if withdrawn.Amount.IsZero() {
		return decimal.Zero, nil
	}

	l.events.Emit(types.EventFeesWithdrawn, withdrawn)
	return withdrawn.Amount, nil
}

func (l *Ledger) withdrawFees(caller types.Address) (types.FeesWithdrawn, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var none types.FeesWithdrawn

	if caller != l.policy.Admin {
		return none, fmt.Errorf("withdraw fees: %w", types.ErrNotAdmin)
	}
	if l.policy.Accrued.IsZero() {
		return types.FeesWithdrawn{Amount: decimal.Zero}, nil
	}

	amount := l.policy.Accrued
	if err := l.transfers.Transfer(l.custodian, l.policy.Admin, amount); err != nil {
		return none, fmt.Errorf("withdraw fees: %w", err)
	}
	l.policy.Drain()

	l.log.Info("fees withdrawn", zap.String("amount", amount.String()))

	return types.FeesWithdrawn{
		RecordID: uuid.Must(uuid.NewV7()).String(),
		Admin:    caller,
		Amount:   amount,
		At:       time.Now().UTC(),
	}, nil
}

// get returns the live item struct. Callers must hold l.mu.
func (l *Ledger) get(itemID uint64) (*types.MarketItem, error) {
	if itemID == 0 || itemID > uint64(len(l.items)) {
		return nil, fmt.Errorf("item %d: %w", itemID, types.ErrUnknownItem)
	}
	return l.items[itemID-1], nil
}
