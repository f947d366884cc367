// Package market implements the marketplace ledger: listings, escrow,
// settlement, fee administration, and the query views over market
// items.
//
// An item moves through exactly two states: listed (unsold, no owner)
// and sold (owner set to the buyer). There is no reverse transition and
// no unlisting path: a listed token stays in escrow until it sells.
//
// Every mutating operation runs under a single mutual-exclusion domain
// covering the item collection, the fee policy, and the escrow state of
// the affected token, so no reader ever observes a partially applied
// sale and no two sales can claim the same item. A failed precondition
// is terminal for that call; nothing is retried and nothing partially
// applies.
package market
