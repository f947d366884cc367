package types

// Address identifies a party on the ledger: a minter, seller, buyer,
// administrator, or the marketplace's custodial identity. Addresses are
// opaque strings; the ledger never interprets their format.
type Address string

// None is the sentinel "no address". A market item's Owner is None until
// the item is sold; a token's Approved operator is None when no approval
// is in force.
const None Address = ""

// IsNone reports whether the address is the None sentinel.
func (a Address) IsNone() bool {
	return a == None
}
