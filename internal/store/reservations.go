package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/matejg/invtrack/internal/model"
)

// CreateReservation inserts a new reservation with status RESERVED and
// returns its ID.
func CreateReservation(ctx context.Context, db *sql.DB, propertyCode, location, reason string) (int64, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO reservations (property_code, location, reason) VALUES (?, ?, ?)`,
		propertyCode, location, reason,
	)
	if err != nil {
		return 0, fmt.Errorf("creating reservation: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting reservation id: %w", err)
	}
	return id, nil
}

// GetReservation returns a reservation by ID, or nil if no such reservation exists.
func GetReservation(ctx context.Context, db *sql.DB, id int64) (*model.Reservation, error) {
	r := &model.Reservation{}
	err := db.QueryRowContext(ctx,
		`SELECT id, property_code, location, reason, status, reserved_at, issued_at
		 FROM reservations WHERE id = ?`, id,
	).Scan(&r.ID, &r.PropertyCode, &r.Location, &r.Reason, &r.Status, &r.ReservedAt, &r.IssuedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting reservation: %w", err)
	}
	return r, nil
}

// ListReservations returns all reservations, optionally filtered by status,
// newest first.
func ListReservations(ctx context.Context, db *sql.DB, status string) ([]model.Reservation, error) {
	var rows *sql.Rows
	var err error

	if status != "" {
		rows, err = db.QueryContext(ctx,
			`SELECT id, property_code, location, reason, status, reserved_at, issued_at
			 FROM reservations WHERE status = ? ORDER BY reserved_at DESC, id DESC`, status,
		)
	} else {
		rows, err = db.QueryContext(ctx,
			`SELECT id, property_code, location, reason, status, reserved_at, issued_at
			 FROM reservations ORDER BY reserved_at DESC, id DESC`,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("listing reservations: %w", err)
	}
	defer rows.Close()

	var reservations []model.Reservation
	for rows.Next() {
		var r model.Reservation
		if err := rows.Scan(&r.ID, &r.PropertyCode, &r.Location, &r.Reason, &r.Status, &r.ReservedAt, &r.IssuedAt); err != nil {
			return nil, fmt.Errorf("scanning reservation: %w", err)
		}
		reservations = append(reservations, r)
	}
	return reservations, rows.Err()
}

// IssueReservation moves a reservation from RESERVED to ISSUED and records
// the issue time. Returns ErrNotFound if the reservation does not exist or
// has already been issued.
func IssueReservation(ctx context.Context, db *sql.DB, id int64) error {
	result, err := db.ExecContext(ctx,
		`UPDATE reservations SET status = ?, issued_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND status = ?`,
		model.ReservationStatusIssued, id, model.ReservationStatusReserved,
	)
	if err != nil {
		return fmt.Errorf("issuing reservation: %w", err)
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
