package types

import "github.com/shopspring/decimal"

// ValueTransfer is the external value-transfer capability the ledger
// calls to move value between two parties. A transfer is atomic: it
// either fully succeeds or fully fails with no partial effect. The
// ledger reacts to failure by aborting the enclosing operation with all
// of its own state unchanged.
type ValueTransfer interface {
	// Transfer moves amount from one party to the other. It returns an
	// error without any effect when the transfer cannot be completed.
	Transfer(from, to Address, amount decimal.Decimal) error
}
