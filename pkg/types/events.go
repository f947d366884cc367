package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventType names a kind of ledger event record.
type EventType string

// Event types emitted by the marketplace ledger. Each fires exactly once
// per successful mutating call, never on failed calls.
const (
	EventItemCreated   EventType = "item_created"
	EventItemSold      EventType = "item_sold"
	EventFeeUpdated    EventType = "fee_updated"
	EventFeesWithdrawn EventType = "fees_withdrawn"
)

// ItemCreated records a successful listing.
type ItemCreated struct {
	RecordID string          `json:"record_id"`
	ItemID   uint64          `json:"item_id"`
	TokenRef TokenRef        `json:"token_ref"`
	Seller   Address         `json:"seller"`
	Price    decimal.Decimal `json:"price"`
	At       time.Time       `json:"at"`
}

// ItemSold records a successful settlement.
type ItemSold struct {
	RecordID string          `json:"record_id"`
	ItemID   uint64          `json:"item_id"`
	TokenRef TokenRef        `json:"token_ref"`
	Seller   Address         `json:"seller"`
	Buyer    Address         `json:"buyer"`
	Price    decimal.Decimal `json:"price"`
	At       time.Time       `json:"at"`
}

// FeeUpdated records an administrative change to the listing fee.
type FeeUpdated struct {
	RecordID string          `json:"record_id"`
	Admin    Address         `json:"admin"`
	Amount   decimal.Decimal `json:"amount"`
	At       time.Time       `json:"at"`
}

// FeesWithdrawn records a withdrawal of accrued listing fees.
type FeesWithdrawn struct {
	RecordID string          `json:"record_id"`
	Admin    Address         `json:"admin"`
	Amount   decimal.Decimal `json:"amount"`
	At       time.Time       `json:"at"`
}
