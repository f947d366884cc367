// Package sqlite provides the public API for the SQLite-backed Store.
// It exposes the factory function while keeping implementation details
// internal.
package sqlite

import (
	"github.com/mintline/mintline/internal/sqlite"
	"github.com/mintline/mintline/pkg/types"
)

// NewStore creates a new SQLite store instance. The store is not
// attached; call Attach with a Config to initialize.
//
// Example:
//
//	store := sqlite.NewStore()
//	err := store.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".mintline-db",
//	})
//	defer store.Detach()
func NewStore() types.Store {
	return sqlite.NewStore()
}
