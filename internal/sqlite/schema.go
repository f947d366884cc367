// Package sqlite implements the SQLite-backed Store for mintline:
// tokens, market items, the fee policy, account balances, and the
// event journal.
package sqlite

// Schema DDL for all tables.
const (
	createTokens = `CREATE TABLE IF NOT EXISTS tokens (
    token_id INTEGER PRIMARY KEY,
    owner TEXT NOT NULL,
    uri TEXT NOT NULL,
    approved TEXT NOT NULL DEFAULT '',
    held_by TEXT NOT NULL DEFAULT '',
    minted_at TEXT NOT NULL
);`

	createMarketItems = `CREATE TABLE IF NOT EXISTS market_items (
    item_id INTEGER PRIMARY KEY,
    collection TEXT NOT NULL,
    token_id INTEGER NOT NULL,
    seller TEXT NOT NULL,
    owner TEXT NOT NULL DEFAULT '',
    price TEXT NOT NULL,
    sold INTEGER NOT NULL DEFAULT 0,
    listed_at TEXT NOT NULL,
    sold_at TEXT
);`

	createFeePolicy = `CREATE TABLE IF NOT EXISTS fee_policy (
    policy_id INTEGER PRIMARY KEY CHECK (policy_id = 1),
    amount TEXT NOT NULL,
    admin TEXT NOT NULL,
    accrued TEXT NOT NULL
);`

	createBalances = `CREATE TABLE IF NOT EXISTS balances (
    address TEXT PRIMARY KEY,
    balance TEXT NOT NULL
);`

	createMarketEvents = `CREATE TABLE IF NOT EXISTS market_events (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    record_id TEXT NOT NULL UNIQUE,
    event_type TEXT NOT NULL,
    payload TEXT NOT NULL,
    at TEXT NOT NULL
);`
)

// schemaDDL lists every table creation statement run on Attach.
var schemaDDL = []string{
	createTokens,
	createMarketItems,
	createFeePolicy,
	createBalances,
	createMarketEvents,
}
