// Package types defines the public domain types, capability interfaces,
// and standard errors for the mintline token registry and marketplace
// ledger: addresses, tokens, market items, the fee policy, event
// records, and the Store and ValueTransfer interfaces.
package types
