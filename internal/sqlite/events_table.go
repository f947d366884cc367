// This file implements the append-only event journal.
package sqlite

import (
	"fmt"
	"time"

	"github.com/mintline/mintline/pkg/types"
)

// AppendEvent appends an event record to the journal.
func (s *Store) AppendEvent(record types.EventRecord) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	_, err = db.Exec(
		`INSERT INTO market_events (record_id, event_type, payload, at)
         VALUES (?, ?, ?, ?)`,
		record.RecordID,
		string(record.Type),
		string(record.Payload),
		record.At.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("appending event %s: %w", record.RecordID, err)
	}
	return nil
}

// Events returns the journal in append order.
func (s *Store) Events() ([]types.EventRecord, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT record_id, event_type, payload, at FROM market_events ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("loading events: %w", err)
	}
	defer rows.Close()

	var records []types.EventRecord
	for rows.Next() {
		var (
			record    types.EventRecord
			eventType string
			payload   string
			at        string
		)
		if err := rows.Scan(&record.RecordID, &eventType, &payload, &at); err != nil {
			return nil, fmt.Errorf("scanning event row: %w", err)
		}
		record.Type = types.EventType(eventType)
		record.Payload = []byte(payload)
		record.At, err = time.Parse(time.RFC3339Nano, at)
		if err != nil {
			return nil, fmt.Errorf("parsing event timestamp %s: %w", record.RecordID, err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
