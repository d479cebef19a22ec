package store

import (
	"context"
	"errors"
	"testing"

	"github.com/matejg/invtrack/internal/db"
	"github.com/matejg/invtrack/internal/model"
)

func TestCreateAndListReservations(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	id, err := CreateReservation(ctx, database, "PC-001", "Warehouse 2", "Project Alpha")
	if err != nil {
		t.Fatalf("CreateReservation: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero reservation id")
	}

	reservations, err := ListReservations(ctx, database, "")
	if err != nil {
		t.Fatalf("ListReservations: %v", err)
	}
	if len(reservations) != 1 {
		t.Fatalf("expected 1 reservation, got %d", len(reservations))
	}

	r := reservations[0]
	if r.Status != model.ReservationStatusReserved {
		t.Errorf("expected status RESERVED, got %q", r.Status)
	}
	if r.IssuedAt != nil {
		t.Errorf("expected nil issued_at on new reservation, got %v", r.IssuedAt)
	}
	if r.PropertyCode != "PC-001" || r.Location != "Warehouse 2" || r.Reason != "Project Alpha" {
		t.Errorf("unexpected reservation fields: %+v", r)
	}
}

func TestIssueReservation(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	id, _ := CreateReservation(ctx, database, "PC-001", "Warehouse 2", "Project Alpha")

	if err := IssueReservation(ctx, database, id); err != nil {
		t.Fatalf("IssueReservation: %v", err)
	}

	r, _ := GetReservation(ctx, database, id)
	if r.Status != model.ReservationStatusIssued {
		t.Errorf("expected status ISSUED, got %q", r.Status)
	}
	if r.IssuedAt == nil {
		t.Error("expected issued_at to be set")
	}

	// Issuing twice is a no-match, not a second transition.
	err := IssueReservation(ctx, database, id)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on double issue, got %v", err)
	}
}

func TestIssueReservationMissing(t *testing.T) {
	database := db.NewTestDB(t)

	err := IssueReservation(context.Background(), database, 42)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListReservationsByStatus(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	id1, _ := CreateReservation(ctx, database, "PC-001", "Warehouse 2", "Project Alpha")
	CreateReservation(ctx, database, "PC-002", "Warehouse 3", "Maintenance")
	IssueReservation(ctx, database, id1)

	reserved, _ := ListReservations(ctx, database, model.ReservationStatusReserved)
	if len(reserved) != 1 || reserved[0].PropertyCode != "PC-002" {
		t.Errorf("expected only PC-002 to be RESERVED, got %+v", reserved)
	}

	issued, _ := ListReservations(ctx, database, model.ReservationStatusIssued)
	if len(issued) != 1 || issued[0].PropertyCode != "PC-001" {
		t.Errorf("expected only PC-001 to be ISSUED, got %+v", issued)
	}
}
