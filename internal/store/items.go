package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/matejg/invtrack/internal/code"
	"github.com/matejg/invtrack/internal/model"
)

// codeRetries is how many times item creation regenerates the code after a
// uniqueness conflict before giving up.
const codeRetries = 3

// ItemFilter selects items for ListItems. Zero values mean "no constraint".
type ItemFilter struct {
	// Status restricts results to items with this exact status.
	Status string
	// Search matches a case-insensitive substring against name, serial
	// and location.
	Search string
	// Limit caps the number of returned items; 0 means unbounded.
	Limit int
}

// CreateItem creates a new item with status IN. If itemCode is empty a code
// is generated, retrying on the (vanishingly rare) uniqueness conflict. A
// caller-supplied code that already exists yields ErrDuplicateCode.
func CreateItem(ctx context.Context, db *sql.DB, name, serial, location, itemCode string) (*model.Item, error) {
	generated := itemCode == ""

	for attempt := 0; ; attempt++ {
		if generated {
			var err error
			itemCode, err = code.Generate()
			if err != nil {
				return nil, fmt.Errorf("generating item code: %w", err)
			}
		}

		result, err := db.ExecContext(ctx,
			`INSERT INTO items (name, serial, location, code) VALUES (?, ?, ?, ?)`,
			name, serial, location, itemCode,
		)
		if isUniqueViolation(err) {
			if generated && attempt < codeRetries {
				continue
			}
			return nil, ErrDuplicateCode
		}
		if err != nil {
			return nil, fmt.Errorf("creating item: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("getting item id: %w", err)
		}

		return GetItem(ctx, db, id)
	}
}

// GetItem returns an item by ID, or nil if no such item exists.
func GetItem(ctx context.Context, db *sql.DB, id int64) (*model.Item, error) {
	item := &model.Item{}
	err := db.QueryRowContext(ctx,
		`SELECT id, name, serial, location, code, status, created_at, updated_at
		 FROM items WHERE id = ?`, id,
	).Scan(&item.ID, &item.Name, &item.Serial, &item.Location, &item.Code, &item.Status, &item.CreatedAt, &item.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return item, nil
}

// GetItemByCode returns an item by its code, or nil if no such item exists.
func GetItemByCode(ctx context.Context, db *sql.DB, itemCode string) (*model.Item, error) {
	item := &model.Item{}
	err := db.QueryRowContext(ctx,
		`SELECT id, name, serial, location, code, status, created_at, updated_at
		 FROM items WHERE code = ?`, itemCode,
	).Scan(&item.ID, &item.Name, &item.Serial, &item.Location, &item.Code, &item.Status, &item.CreatedAt, &item.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item by code: %w", err)
	}
	return item, nil
}

// ListItems returns items matching the filter, newest first.
func ListItems(ctx context.Context, db *sql.DB, filter ItemFilter) ([]model.Item, error) {
	query := `SELECT id, name, serial, location, code, status, created_at, updated_at
	          FROM items WHERE 1=1`
	var args []any

	if filter.Status != "" {
		query += ` AND status = ?`
		args = append(args, filter.Status)
	}
	if filter.Search != "" {
		// LIKE is case-insensitive for ASCII by default in SQLite.
		query += ` AND (name LIKE ? OR serial LIKE ? OR location LIKE ?)`
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern, pattern)
	}
	query += ` ORDER BY created_at DESC, id DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var item model.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Serial, &item.Location, &item.Code, &item.Status, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// MarkOutgoing sets an item's status to OUT and refreshes its timestamp.
// Returns ErrNotFound if no item with the given ID exists.
func MarkOutgoing(ctx context.Context, db *sql.DB, id int64) error {
	result, err := db.ExecContext(ctx,
		`UPDATE items SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		model.ItemStatusOut, id,
	)
	if err != nil {
		return fmt.Errorf("marking item outgoing: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
