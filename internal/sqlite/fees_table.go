// This file persists the singleton fee policy and the account balances
// backing the value-transfer capability.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mintline/mintline/pkg/types"
)

// SaveFeePolicy persists the fee policy. The table holds one row.
func (s *Store) SaveFeePolicy(policy *types.FeePolicy) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	_, err = db.Exec(
		`INSERT OR REPLACE INTO fee_policy (policy_id, amount, admin, accrued)
         VALUES (1, ?, ?, ?)`,
		policy.Amount.String(),
		string(policy.Admin),
		policy.Accrued.String(),
	)
	if err != nil {
		return fmt.Errorf("saving fee policy: %w", err)
	}
	return nil
}

// LoadFeePolicy returns the persisted policy, or nil when none exists.
func (s *Store) LoadFeePolicy() (*types.FeePolicy, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(`SELECT amount, admin, accrued FROM fee_policy WHERE policy_id = 1`)

	var amount, admin, accrued string
	if err := row.Scan(&amount, &admin, &accrued); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading fee policy: %w", err)
	}

	policy := &types.FeePolicy{Admin: types.Address(admin)}
	if policy.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("parsing fee amount: %w", err)
	}
	if policy.Accrued, err = decimal.NewFromString(accrued); err != nil {
		return nil, fmt.Errorf("parsing accrued fees: %w", err)
	}
	return policy, nil
}

// SaveBalance persists one account balance.
func (s *Store) SaveBalance(addr types.Address, balance decimal.Decimal) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	_, err = db.Exec(
		`INSERT OR REPLACE INTO balances (address, balance) VALUES (?, ?)`,
		string(addr), balance.String())
	if err != nil {
		return fmt.Errorf("saving balance for %s: %w", addr, err)
	}
	return nil
}

// LoadBalances returns every persisted account balance.
func (s *Store) LoadBalances() (map[types.Address]decimal.Decimal, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT address, balance FROM balances`)
	if err != nil {
		return nil, fmt.Errorf("loading balances: %w", err)
	}
	defer rows.Close()

	balances := make(map[types.Address]decimal.Decimal)
	for rows.Next() {
		var addr, balance string
		if err := rows.Scan(&addr, &balance); err != nil {
			return nil, fmt.Errorf("scanning balance row: %w", err)
		}
		parsed, err := decimal.NewFromString(balance)
		if err != nil {
			return nil, fmt.Errorf("parsing balance for %s: %w", addr, err)
		}
		balances[types.Address(addr)] = parsed
	}
	return balances, rows.Err()
}
