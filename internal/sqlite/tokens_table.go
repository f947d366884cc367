// This file implements token row persistence: save, bulk load, and
// hydration between rows and *types.Token.
package sqlite

import (
	"fmt"
	"time"

	"github.com/mintline/mintline/pkg/types"
)

// SaveToken inserts or replaces a token row.
func (s *Store) SaveToken(token *types.Token) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	_, err = db.Exec(
		`INSERT OR REPLACE INTO tokens (token_id, owner, uri, approved, held_by, minted_at)
         VALUES (?, ?, ?, ?, ?, ?)`,
		token.TokenID,
		string(token.Owner),
		token.URI,
		string(token.Approved),
		string(token.HeldBy),
		token.MintedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("saving token %d: %w", token.TokenID, err)
	}
	return nil
}

// LoadTokens returns every persisted token in ascending TokenID order.
func (s *Store) LoadTokens() ([]*types.Token, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT token_id, owner, uri, approved, held_by, minted_at
         FROM tokens ORDER BY token_id`)
	if err != nil {
		return nil, fmt.Errorf("loading tokens: %w", err)
	}
	defer rows.Close()

	var tokens []*types.Token
	for rows.Next() {
		var (
			token    types.Token
			owner    string
			approved string
			heldBy   string
			mintedAt string
		)
		if err := rows.Scan(&token.TokenID, &owner, &token.URI, &approved, &heldBy, &mintedAt); err != nil {
			return nil, fmt.Errorf("scanning token row: %w", err)
		}
		token.Owner = types.Address(owner)
		token.Approved = types.Address(approved)
		token.HeldBy = types.Address(heldBy)
		token.MintedAt, err = time.Parse(time.RFC3339Nano, mintedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing minted_at for token %d: %w", token.TokenID, err)
		}
		tokens = append(tokens, &token)
	}
	return tokens, rows.Err()
}
