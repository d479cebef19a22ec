package db

import (
	"database/sql"
	"fmt"
)

// migrations is a list of SQL statements applied in order after schema creation.
// Each migration must be idempotent. Append new migrations at the end.
var migrations = []string{
	// Migration 1: Ensure the unique item code index exists on databases
	// created before the index was part of the base schema.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_items_code ON items(code)`,
	// Migration 2: Index reservations by status for the reservation page,
	// which always partitions RESERVED from ISSUED.
	`CREATE INDEX IF NOT EXISTS idx_reservations_status ON reservations(status)`,
}

// Migrate runs the database schema migrations.
func Migrate(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}

	return nil
}
