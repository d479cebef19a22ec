package model

import "time"

// Item represents an individually tracked physical item. Each item carries a
// generated human-readable code that is printed as a barcode label.
type Item struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Serial    string    `json:"serial"`
	Location  string    `json:"location"`
	Code      string    `json:"code"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Item statuses. Items are created IN and move to OUT exactly once;
// there is no return transition.
const (
	ItemStatusIn  = "IN"
	ItemStatusOut = "OUT"
)
