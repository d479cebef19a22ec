package model

import "time"

// Reservation represents a hold on a property code at a location.
type Reservation struct {
	ID           int64      `json:"id"`
	PropertyCode string     `json:"property_code"`
	Location     string     `json:"location"`
	Reason       string     `json:"reason"`
	Status       string     `json:"status"`
	ReservedAt   time.Time  `json:"reserved_at"`
	IssuedAt     *time.Time `json:"issued_at,omitempty"`
}

// Reservation statuses. Reservations are created RESERVED and move to
// ISSUED once handed out.
const (
	ReservationStatusReserved = "RESERVED"
	ReservationStatusIssued   = "ISSUED"
)
