package types

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// EventRecord is a persisted ledger event: the event type plus the
// marshaled payload struct from events.go.
type EventRecord struct {
	RecordID string          `json:"record_id"`
	Type     EventType       `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	At       time.Time       `json:"at"`
}

// Store persists ledger state between processes. Callers attach to a
// backend, save and load entities, and detach when done. The ledger
// itself never touches the store: the embedding application decides
// when to persist.
type Store interface {
	// Attach connects the store to the backend described by config.
	// Creates the DataDir if it does not exist. Returns
	// ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, operations return ErrStoreDetached.
	Detach() error

	// SaveToken inserts or replaces a token row.
	SaveToken(token *Token) error

	// LoadTokens returns every persisted token in ascending TokenID order.
	LoadTokens() ([]*Token, error)

	// SaveItem inserts or replaces a market item row.
	SaveItem(item *MarketItem) error

	// LoadItems returns every persisted item in ascending ItemID order.
	LoadItems() ([]*MarketItem, error)

	// SaveFeePolicy persists the singleton fee policy.
	SaveFeePolicy(policy *FeePolicy) error

	// LoadFeePolicy returns the persisted policy, or nil when none has
	// been saved yet.
	LoadFeePolicy() (*FeePolicy, error)

	// SaveBalance persists one account balance.
	SaveBalance(addr Address, balance decimal.Decimal) error

	// LoadBalances returns every persisted account balance.
	LoadBalances() (map[Address]decimal.Decimal, error)

	// AppendEvent appends an event record to the journal.
	AppendEvent(record EventRecord) error

	// Events returns the journal in append order.
	Events() ([]EventRecord, error)
}
