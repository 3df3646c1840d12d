package models

import "errors"

// ErrInvalidStatus rejects status filter values outside the fixed vocabulary.
var ErrInvalidStatus = errors.New("invalid booking status")

// Booking status vocabulary. Adapters normalize upstream spellings into
// these values; anything else is passed through raw and logged.
const (
	BookingPending   = "PENDING"
	BookingConfirmed = "CONFIRMED"
	BookingCancelled = "CANCELLED"
	BookingCompleted = "COMPLETED"
)

// ValidBookingStatus reports whether s belongs to the fixed status vocabulary.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// Booking is the canonical booking entity, normalized from the Catalog Service.
type Booking struct {
	ID         string  `json:"id"`
	TourID     string  `json:"tour_id"`
	UserID     string  `json:"user_id"`
	Date       string  `json:"date"` // "YYYY-MM-DD"
	PartySize  int     `json:"party_size"`
	TotalPrice float64 `json:"total_price"`
	Status     string  `json:"status"`
	Comments   string  `json:"comments,omitempty"`
	CreatedAt  string  `json:"created_at,omitempty"`
	UpdatedAt  string  `json:"updated_at,omitempty"`

	// Lazily resolved relationships, nil unless expansion was requested.
	Tour *Tour `json:"tour,omitempty"`
	User *User `json:"user,omitempty"`
}
