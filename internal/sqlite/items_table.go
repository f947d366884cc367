// This file implements market item row persistence. Prices are stored
// as TEXT and parsed back through shopspring/decimal, so amounts like
// 0.025 round-trip exactly.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mintline/mintline/pkg/types"
)

// SaveItem inserts or replaces a market item row.
func (s *Store) SaveItem(item *types.MarketItem) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	var soldAt any
	if !item.SoldAt.IsZero() {
		soldAt = item.SoldAt.UTC().Format(time.RFC3339Nano)
	}

	_, err = db.Exec(
		`INSERT OR REPLACE INTO market_items
         (item_id, collection, token_id, seller, owner, price, sold, listed_at, sold_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ItemID,
		item.TokenRef.Collection,
		item.TokenRef.TokenID,
		string(item.Seller),
		string(item.Owner),
		item.Price.String(),
		boolToInt(item.Sold),
		item.ListedAt.UTC().Format(time.RFC3339Nano),
		soldAt,
	)
	if err != nil {
		return fmt.Errorf("saving item %d: %w", item.ItemID, err)
	}
	return nil
}

// LoadItems returns every persisted item in ascending ItemID order.
func (s *Store) LoadItems() ([]*types.MarketItem, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT item_id, collection, token_id, seller, owner, price, sold, listed_at, sold_at
         FROM market_items ORDER BY item_id`)
	if err != nil {
		return nil, fmt.Errorf("loading items: %w", err)
	}
	defer rows.Close()

	var items []*types.MarketItem
	for rows.Next() {
		item, err := hydrateItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// hydrateItem converts a market_items row to *types.MarketItem.
func hydrateItem(rows *sql.Rows) (*types.MarketItem, error) {
	var (
		item     types.MarketItem
		seller   string
		owner    string
		price    string
		sold     int
		listedAt string
		soldAt   sql.NullString
	)
	if err := rows.Scan(&item.ItemID, &item.TokenRef.Collection, &item.TokenRef.TokenID,
		&seller, &owner, &price, &sold, &listedAt, &soldAt); err != nil {
		return nil, fmt.Errorf("scanning item row: %w", err)
	}

	item.Seller = types.Address(seller)
	item.Owner = types.Address(owner)
	item.Sold = sold != 0

	parsed, err := decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("parsing price for item %d: %w", item.ItemID, err)
	}
	item.Price = parsed

	item.ListedAt, err = time.Parse(time.RFC3339Nano, listedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing listed_at for item %d: %w", item.ItemID, err)
	}
	if soldAt.Valid {
		item.SoldAt, err = time.Parse(time.RFC3339Nano, soldAt.String)
		if err != nil {
			return nil, fmt.Errorf("parsing sold_at for item %d: %w", item.ItemID, err)
		}
	}
	return &item, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
