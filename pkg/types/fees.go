package types

import "github.com/shopspring/decimal"

// FeePolicy is the marketplace's listing-fee configuration: the fee
// charged to create a listing, the sole administrator allowed to change
// it or withdraw collected fees, and the running total of fees collected
// and not yet withdrawn. The policy is constructed once with the ledger;
// there is no ambient global configuration.
type FeePolicy struct {
	Amount  decimal.Decimal `json:"amount"`
	Admin   Address         `json:"admin"`
	Accrued decimal.Decimal `json:"accrued"`
}

// NewFeePolicy builds a policy with the given admin and listing fee.
func NewFeePolicy(admin Address, amount decimal.Decimal) *FeePolicy {
	return &FeePolicy{Amount: amount, Admin: admin}
}

// SetAmount updates the listing fee. Any non-negative amount is valid,
// including zero. Returns ErrInvalidFee for negative amounts.
func (p *FeePolicy) SetAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidFee
	}
	p.Amount = amount
	return nil
}

// Accrue adds a collected listing fee to the running total.
func (p *FeePolicy) Accrue(fee decimal.Decimal) {
	p.Accrued = p.Accrued.Add(fee)
}

// Drain resets the accrued total to zero and returns the drained amount.
func (p *FeePolicy) Drain() decimal.Decimal {
	out := p.Accrued
	p.Accrued = decimal.Zero
	return out
}

// Clone returns a copy of the policy.
func (p *FeePolicy) Clone() *FeePolicy {
	c := *p
	return &c
}
